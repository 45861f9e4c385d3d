// Package tui provides a Bubble Tea viewer for recorded transcripts.
package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nikocevicstefan/term-chat/internal/transcript"
)

// ── Styles ────────────

var (
	// Title bar at the very top
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Padding(0, 2)

	// Active tab: bright, underlined
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	// Inactive tab: muted
	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245")).
				Background(lipgloss.Color("235")).
				Padding(0, 1)

	// Separator between tabs
	tabSepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238")).
			Background(lipgloss.Color("235"))

	// Section heading inside a tab
	sectionHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("33")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	commandStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)

	outputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	statusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("245")).
			Padding(0, 1)
)

// ── Tab definitions ─────────────────

type tabID int

const (
	tabInteraction tabID = iota
	tabCleaned
	tabRaw
	tabCount
)

var tabNames = [tabCount]string{"Last Interaction", "Cleaned", "Raw"}

// ── Model ────────────────────

// Model is the root Bubble Tea model for the transcript viewer.
type Model struct {
	filename    string
	raw         string
	cleaned     []string
	interaction transcript.Interaction
	activeTab   tabID
	viewports   [tabCount]viewport.Model
	width       int
	height      int
	ready       bool
}

// New creates a viewer for a raw transcript read from filename. Cleaning
// and extraction happen here once; the tabs render the three views.
func New(raw, filename string) Model {
	cleaned := transcript.Clean(raw)
	return Model{
		filename:    filepath.Base(filename),
		raw:         raw,
		cleaned:     cleaned,
		interaction: transcript.Extract(cleaned),
	}
}

// ── Bubble Tea interface ───────────────

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "tab", "l", "right":
			m.activeTab = (m.activeTab + 1) % tabCount
		case "shift+tab", "h", "left":
			m.activeTab = (m.activeTab - 1 + tabCount) % tabCount
		case "1", "2", "3":
			m.activeTab = tabID(msg.String()[0] - '1')
		}
		var cmd tea.Cmd
		m.viewports[m.activeTab], cmd = m.viewports[m.activeTab].Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.initViewports()
		return m, nil
	}
	return m, nil
}

func (m Model) View() string {
	if !m.ready {
		return "Loading…"
	}

	title := titleStyle.Width(m.width).Render("  term-chat  " + m.filename)

	var tabParts []string
	for i := tabID(0); i < tabCount; i++ {
		label := fmt.Sprintf(" %d %s ", i+1, tabNames[i])
		if i == m.activeTab {
			tabParts = append(tabParts, activeTabStyle.Render(label))
		} else {
			tabParts = append(tabParts, inactiveTabStyle.Render(label))
		}
		if i < tabCount-1 {
			tabParts = append(tabParts, tabSepStyle.Render("│"))
		}
	}
	tabRow := lipgloss.NewStyle().
		Background(lipgloss.Color("235")).
		Width(m.width).
		Render(lipgloss.JoinHorizontal(lipgloss.Top, tabParts...))

	content := m.viewports[m.activeTab].View()

	hint := "  ←/→ tab  ↑/↓ scroll  1-3 jump  q quit"
	pct := fmt.Sprintf("%3.0f%%", m.viewports[m.activeTab].ScrollPercent()*100)
	pad := m.width - lipgloss.Width(hint) - len(pct) - 2
	if pad < 1 {
		pad = 1
	}
	statusBar := statusBarStyle.Width(m.width).Render(
		hint + strings.Repeat(" ", pad) + pct,
	)

	return lipgloss.JoinVertical(lipgloss.Left, title, tabRow, content, statusBar)
}

// ── Viewport management ───────────────────────────────────────────────────────

func (m *Model) initViewports() {
	// title(1) + tabRow(1) + statusBar(1) = 3 fixed rows
	vpHeight := m.height - 3
	if vpHeight < 1 {
		vpHeight = 1
	}
	for i := tabID(0); i < tabCount; i++ {
		vp := viewport.New(m.width, vpHeight)
		vp.SetContent(m.renderTab(i))
		m.viewports[i] = vp
	}
}

// ── Tab renderers ─────────────────────────────────────────────────────────────

func (m *Model) renderTab(t tabID) string {
	switch t {
	case tabInteraction:
		return m.renderInteraction()
	case tabCleaned:
		return m.renderCleaned()
	case tabRaw:
		return m.raw
	}
	return ""
}

func heading(s string) string {
	return "\n" + sectionHeader.Render("  "+s) + "\n\n"
}

func (m *Model) renderInteraction() string {
	var sb strings.Builder
	sb.WriteString(heading("Last Interaction"))

	if !m.interaction.HasCommand() {
		sb.WriteString(dimStyle.Render("  (no complete command/output pair found in this transcript)") + "\n")
		if len(m.interaction.Output) > 0 {
			sb.WriteString(heading("Collected Output"))
			for _, line := range m.interaction.Output {
				sb.WriteString(outputStyle.Render("  "+line) + "\n")
			}
		}
		return sb.String()
	}

	sb.WriteString(labelStyle.Render("  Command:") + "  " + commandStyle.Render(*m.interaction.Command) + "\n")
	sb.WriteString(heading(fmt.Sprintf("Output (%d lines)", len(m.interaction.Output))))
	if len(m.interaction.Output) == 0 {
		sb.WriteString(dimStyle.Render("  (no output)") + "\n")
		return sb.String()
	}
	for _, line := range m.interaction.Output {
		sb.WriteString(outputStyle.Render("  "+line) + "\n")
	}
	return sb.String()
}

func (m *Model) renderCleaned() string {
	var sb strings.Builder
	sb.WriteString(heading(fmt.Sprintf("Cleaned Transcript (%d lines)", len(m.cleaned))))
	if len(m.cleaned) == 0 {
		sb.WriteString(dimStyle.Render("  (empty transcript)") + "\n")
		return sb.String()
	}
	for _, line := range m.cleaned {
		sb.WriteString("  " + line + "\n")
	}
	return sb.String()
}

// Run starts the viewer for the given raw transcript text.
func Run(raw, filename string) error {
	p := tea.NewProgram(New(raw, filename), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
