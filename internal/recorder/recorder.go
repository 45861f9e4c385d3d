// Package recorder wraps the script(1) utility to capture a terminal
// session transcript. The recorder only runs the subprocess to completion;
// it does not read or interpret the transcript it produces.
package recorder

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// Recorder records an interactive shell session into a transcript file.
type Recorder struct {
	// Shell is the command run inside the recording. Empty means the
	// user's login shell from $SHELL, falling back to sh.
	Shell string
	// GOOS overrides runtime.GOOS for flag selection (used in tests).
	GOOS string
}

// CheckInstalled verifies that script(1) is available on PATH.
func CheckInstalled() error {
	if _, err := exec.LookPath("script"); err != nil {
		return fmt.Errorf("the 'script' utility was not found in $PATH — it is required for recording")
	}
	return nil
}

// Command builds the script(1) invocation writing to transcriptPath.
// util-linux script takes the command via -c and the file as an argument;
// the BSD variant shipped with macOS takes the file first and the command
// after it.
func (r *Recorder) Command(ctx context.Context, transcriptPath string) *exec.Cmd {
	shell := r.Shell
	if shell == "" {
		shell = os.Getenv("SHELL")
	}
	if shell == "" {
		shell = "sh"
	}

	goos := r.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}

	var cmd *exec.Cmd
	if goos == "darwin" {
		cmd = exec.CommandContext(ctx, "script", "-q", transcriptPath, shell)
	} else {
		cmd = exec.CommandContext(ctx, "script", "-q", "-c", shell, transcriptPath)
	}
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd
}

// Record runs the recording subprocess until the wrapped shell exits.
// The transcript file is created (and grows) as a side effect.
func (r *Recorder) Record(ctx context.Context, transcriptPath string) error {
	if err := CheckInstalled(); err != nil {
		return err
	}
	if err := r.Command(ctx, transcriptPath).Run(); err != nil {
		return fmt.Errorf("recording session: %w", err)
	}
	return nil
}
