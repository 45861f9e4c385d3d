package assistant

import (
	"fmt"
	"strings"

	"github.com/nikocevicstefan/term-chat/internal/transcript"
)

const explainSystemPrompt = "You are a terminal assistant. The user shows you " +
	"a shell command they just ran and the output it produced. Explain what " +
	"happened in plain language, point out errors if there are any, and " +
	"suggest a fix when the command failed. Answer in markdown."

const askSystemPrompt = "You are a terminal assistant. Answer questions about " +
	"shell commands and tools concisely, in markdown, with example commands " +
	"where useful."

// BuildExplainPrompt formats an interaction as a natural-language request,
// embedding the command and its output as plain text.
func BuildExplainPrompt(in transcript.Interaction) string {
	var sb strings.Builder
	command := ""
	if in.Command != nil {
		command = *in.Command
	}
	fmt.Fprintf(&sb, "I ran this command in my terminal:\n\n```\n%s\n```\n\n", command)
	if len(in.Output) == 0 {
		sb.WriteString("It produced no output. What did it do?")
		return sb.String()
	}
	sb.WriteString("It printed this output:\n\n```\n")
	for _, line := range in.Output {
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	sb.WriteString("```\n\nWhat happened here?")
	return sb.String()
}
