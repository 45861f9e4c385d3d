package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleTranscript = "ls\r\nuser@host $ \r\nfile1.txt\r\nfile2.txt\r\nuser@host $ \r\n"

func writeTranscript(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.log")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func isolateState(t *testing.T) {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_DATA_HOME", tmp)
	t.Setenv("HOME", tmp)
	t.Setenv("TERMCHAT_API_KEY", "")
	t.Setenv("TERMCHAT_MODEL", "")
	t.Setenv("TERMCHAT_BASE_URL", "")
}

func TestExplainWithoutSession(t *testing.T) {
	isolateState(t)

	rootCmd.ResetFlags()
	out, err := executeCommand(rootCmd, "explain")
	if err == nil {
		t.Fatal("expected an error when no session exists, got nil")
	}
	combined := out + err.Error()
	if !strings.Contains(combined, "no recorded session") {
		t.Errorf("expected error to mention missing session, got: %q", combined)
	}
}

func TestExplainNothingToExplain(t *testing.T) {
	isolateState(t)
	// A transcript with a single prompt has no complete interaction; the
	// command must report that without needing an API key.
	path := writeTranscript(t, "user@host $ \r\npartial inp")

	rootCmd.ResetFlags()
	out, err := executeCommand(rootCmd, "explain", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "nothing to explain") {
		t.Errorf("expected %q in output, got: %q", "nothing to explain", out)
	}
}

func TestExplainWithoutAPIKey(t *testing.T) {
	isolateState(t)
	path := writeTranscript(t, sampleTranscript)

	rootCmd.ResetFlags()
	out, err := executeCommand(rootCmd, "explain", path)
	if err == nil {
		t.Fatal("expected an error without an API key, got nil")
	}
	combined := out + err.Error()
	if !strings.Contains(combined, "API key") {
		t.Errorf("expected error to mention the API key, got: %q", combined)
	}
}

func TestExplainMissingTranscriptFile(t *testing.T) {
	isolateState(t)

	rootCmd.ResetFlags()
	out, err := executeCommand(rootCmd, "explain", "/nonexistent/transcript.log")
	if err == nil {
		t.Fatal("expected an error for a missing transcript, got nil")
	}
	combined := out + err.Error()
	if !strings.Contains(combined, "transcript not found") {
		t.Errorf("expected %q, got: %q", "transcript not found", combined)
	}
}
