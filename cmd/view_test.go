package cmd

import (
	"strings"
	"testing"
)

func TestViewPlain(t *testing.T) {
	isolateState(t)
	path := writeTranscript(t, sampleTranscript)

	rootCmd.ResetFlags()
	out, err := executeCommand(rootCmd, "view", "--plain", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{"Command: ls", "file1.txt", "file2.txt"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestViewPlainNoInteraction(t *testing.T) {
	isolateState(t)
	path := writeTranscript(t, "just output\nno prompts here\n")

	rootCmd.ResetFlags()
	out, err := executeCommand(rootCmd, "view", "--plain", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Command: (none found)") {
		t.Errorf("expected no-command marker, got:\n%s", out)
	}
}

func TestViewMissingFile(t *testing.T) {
	isolateState(t)

	rootCmd.ResetFlags()
	out, err := executeCommand(rootCmd, "view", "--plain", "/nonexistent/transcript.log")
	if err == nil {
		t.Fatal("expected an error for a missing transcript, got nil")
	}
	combined := out + err.Error()
	if !strings.Contains(combined, "transcript not found") {
		t.Errorf("expected %q, got: %q", "transcript not found", combined)
	}
}
