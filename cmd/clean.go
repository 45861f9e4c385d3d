package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nikocevicstefan/term-chat/internal/session"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Delete recorded transcripts and session state",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := session.NewSessionStore()
		if err != nil {
			return err
		}

		s, err := store.Load()
		if err != nil && !errors.Is(err, session.ErrNoSession) {
			return err
		}
		if s.Active() {
			return fmt.Errorf("recording in progress — stop it before cleaning")
		}

		removed := 0

		// The tracked session's transcript may live outside the default
		// directory when transcript_dir is configured.
		if s != nil && s.TranscriptPath != "" {
			if err := os.Remove(s.TranscriptPath); err == nil {
				removed++
			}
		}

		dir, err := session.TranscriptsDir()
		if err != nil {
			return err
		}
		matches, err := filepath.Glob(filepath.Join(dir, "session-*.log"))
		if err != nil {
			return err
		}
		for _, m := range matches {
			if err := os.Remove(m); err == nil {
				removed++
			}
		}

		if err := store.Delete(); err != nil {
			return err
		}

		cmd.Printf("Removed %d transcript(s).\n", removed)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cleanCmd)
}
