package transcript

import (
	"regexp"
	"strings"
)

// csiPattern matches ANSI CSI escape sequences: ESC [ parameter bytes,
// intermediate bytes, then a final byte in @–~. script(1) records these
// verbatim, so raw transcripts are full of cursor and color codes.
var csiPattern = regexp.MustCompile(`\x1b\[[0-9;?]*[ -/]*[@-~]`)

// oscPattern matches OSC sequences (window title updates and the like),
// terminated by BEL or ST.
var oscPattern = regexp.MustCompile(`\x1b\][^\x07\x1b]*(\x07|\x1b\\)`)

// StripEscapes removes terminal escape sequences from raw transcript text.
// This is an optional preprocessing step: the parser itself treats its
// input as already display-clean and passes unstripped sequences through.
func StripEscapes(raw string) string {
	s := csiPattern.ReplaceAllString(raw, "")
	s = oscPattern.ReplaceAllString(s, "")
	return s
}

// Lines splits raw transcript text into lines suitable for Extract:
// split on newlines, carriage returns trimmed, blank lines dropped.
func Lines(raw string) []string {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// Clean applies StripEscapes followed by Lines.
func Clean(raw string) []string {
	return Lines(StripEscapes(raw))
}
