// Package transcript extracts command/output interactions from recorded
// terminal sessions. The parser is a pure backward scan over pre-split
// lines; reading and cleaning the transcript file is the caller's job.
package transcript

import "strings"

// Interaction is the most recent command and its output found in a
// transcript. Command is nil when the scan found at most one prompt
// boundary, which is a normal outcome rather than an error.
type Interaction struct {
	Command *string
	Output  []string
}

// HasCommand reports whether a command boundary was found.
func (in Interaction) HasCommand() bool {
	return in.Command != nil
}

// PromptDetector reports whether a line is a shell prompt. The detection
// heuristic is injectable so alternative prompt formats can be matched
// without touching the scan itself.
type PromptDetector func(line string) bool

// DefaultPromptDetector matches the conventional prompt suffixes of zsh
// (" % ") and bash (" $ "). It is substring-based: an output line that
// happens to contain either separator will be misclassified as a prompt.
func DefaultPromptDetector(line string) bool {
	return strings.Contains(line, " % ") || strings.Contains(line, " $ ")
}

// scanState tracks which prompt boundary the backward scan is looking for.
type scanState int

const (
	// seekingEndPrompt: no prompt seen yet. The first prompt found (from
	// the end) is the one printed after the command's output, waiting for
	// new input. Lines in this state are trailing noise and are skipped.
	seekingEndPrompt scanState = iota
	// seekingStartPrompt: inside the output region between two prompts.
	// The next prompt found starts the interaction; the line preceding it
	// is the command.
	seekingStartPrompt
)

// Extract scans lines backwards and returns the last complete interaction,
// using DefaultPromptDetector.
func Extract(lines []string) Interaction {
	return ExtractWith(lines, DefaultPromptDetector)
}

// ExtractWith is Extract with a caller-supplied prompt detector.
//
// Callers must pass lines already split on line boundaries with blank
// lines removed (see Lines). The input is not mutated; the scan is a
// single backward pass.
//
// The command is taken positionally: the line immediately before the
// second prompt found. Nothing validates that this line is not itself a
// prompt, so a transcript that deviates from "command line directly
// followed by its prompt echo" yields a wrong command rather than an
// error. When the second prompt is the very first line there is no
// preceding line and Command stays nil.
func ExtractWith(lines []string, isPrompt PromptDetector) Interaction {
	var in Interaction
	state := seekingEndPrompt

	for i := len(lines) - 1; i >= 0; i-- {
		line := lines[i]
		switch state {
		case seekingEndPrompt:
			if isPrompt(line) {
				state = seekingStartPrompt
			}
		case seekingStartPrompt:
			if isPrompt(line) {
				if i > 0 {
					cmd := lines[i-1]
					in.Command = &cmd
				}
				reverse(in.Output)
				return in
			}
			// Collected in reverse scan order; reversed once on return so
			// the result preserves original transcript order.
			in.Output = append(in.Output, line)
		}
	}

	reverse(in.Output)
	return in
}

func reverse(s []string) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
