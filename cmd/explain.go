package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nikocevicstefan/term-chat/internal/assistant"
	"github.com/nikocevicstefan/term-chat/internal/render"
	"github.com/nikocevicstefan/term-chat/internal/session"
	"github.com/nikocevicstefan/term-chat/internal/transcript"
)

var explainRaw bool

var explainCmd = &cobra.Command{
	Use:   "explain [transcript]",
	Short: "Explain the last command and its output from a recorded session",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := transcriptArg(args)
		if err != nil {
			return err
		}

		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return fmt.Errorf("transcript not found: %s", path)
			}
			return err
		}

		// Escape stripping is a preprocessing step the scan itself never
		// applies; --raw skips it for transcripts that are already clean.
		var lines []string
		if explainRaw {
			lines = transcript.Lines(string(data))
		} else {
			lines = transcript.Clean(string(data))
		}

		in := transcript.Extract(lines)
		if !in.HasCommand() {
			cmd.Println("No completed command found in the transcript — nothing to explain.")
			return nil
		}

		client, err := assistant.New(GetConfig())
		if err != nil {
			return err
		}

		reply, err := client.Explain(cmd.Context(), in)
		if err != nil {
			return err
		}

		fmt.Print(render.Markdown(reply))
		return nil
	},
}

// transcriptArg resolves the transcript to operate on: an explicit path
// argument, or the latest recorded session's transcript.
func transcriptArg(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	store, err := session.NewSessionStore()
	if err != nil {
		return "", err
	}
	s, err := store.Load()
	if err != nil {
		if errors.Is(err, session.ErrNoSession) {
			return "", fmt.Errorf("no recorded session — run 'term-chat record' first, or pass a transcript path")
		}
		return "", err
	}
	return s.TranscriptPath, nil
}

func init() {
	explainCmd.Flags().BoolVar(&explainRaw, "raw", false, "skip terminal escape stripping before parsing")
	rootCmd.AddCommand(explainCmd)
}
