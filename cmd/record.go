package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/nikocevicstefan/term-chat/internal/config"
	"github.com/nikocevicstefan/term-chat/internal/recorder"
	"github.com/nikocevicstefan/term-chat/internal/session"
)

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record a terminal session to a transcript",
	Long: `Record wraps your shell inside script(1) and captures everything
shown in the terminal to a transcript file. Exit the shell to stop
recording, then run 'term-chat explain' to ask about the last command.`,
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
			return fmt.Errorf("recording already in progress (started at %s)", s.StartTime.Format(time.RFC3339))
		}

		cwd, err := os.Getwd()
		if err != nil {
			return err
		}

		dir := GetConfig().TranscriptDir
		if dir == "" {
			dir, err = session.TranscriptsDir()
			if err != nil {
				return err
			}
		}

		shell := GetConfig().Shell
		if shell == "" {
			shell = config.DetectShell()
		}

		id := uuid.New().String()
		newSession := &session.Session{
			ID:             id,
			StartTime:      time.Now(),
			Shell:          shell,
			WorkDir:        cwd,
			TranscriptPath: filepath.Join(dir, "session-"+id+".log"),
		}

		if err := store.Save(newSession); err != nil {
			return err
		}

		fmt.Printf("Recording started (%s). Exit the shell to stop.\n", shell)

		// Track transcript growth while the recording runs so status can
		// show live progress.
		ctx, cancel := context.WithCancel(cmd.Context())
		watchDone := make(chan struct{})
		go func() {
			defer close(watchDone)
			_ = recorder.Watch(ctx, newSession.TranscriptPath, func(size int64) {
				snap := *newSession
				snap.TranscriptBytes = size
				_ = store.Save(&snap)
			})
		}()

		rec := &recorder.Recorder{Shell: shell}
		runErr := rec.Record(ctx, newSession.TranscriptPath)
		cancel()
		<-watchDone

		now := time.Now()
		newSession.StopTime = &now
		if info, err := os.Stat(newSession.TranscriptPath); err == nil {
			newSession.TranscriptBytes = info.Size()
		}
		if err := store.Save(newSession); err != nil {
			return err
		}

		if runErr != nil {
			return runErr
		}

		fmt.Printf("Recording stopped. Transcript: %s\n", newSession.TranscriptPath)
		fmt.Println("Run 'term-chat explain' to ask about the last command.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(recordCmd)
}
