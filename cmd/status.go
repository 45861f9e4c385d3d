package cmd

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/nikocevicstefan/term-chat/internal/session"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current recording session status",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := session.NewSessionStore()
		if err != nil {
			return err
		}

		s, err := store.Load()
		if err != nil {
			if errors.Is(err, session.ErrNoSession) {
				cmd.Println("no recorded session")
				return nil
			}
			return err
		}

		if s.Active() {
			cmd.Println("Recording: active")
		} else {
			cmd.Println("Recording: stopped")
		}
		cmd.Printf("Started: %s\n", s.StartTime.Format(time.RFC3339))
		cmd.Printf("Duration: %s\n", s.Duration().Round(time.Second).String())
		cmd.Printf("Shell: %s\n", s.Shell)
		cmd.Printf("Transcript: %s\n", s.TranscriptPath)
		cmd.Printf("Transcript size: %d bytes\n", s.TranscriptBytes)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
