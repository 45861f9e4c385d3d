package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nikocevicstefan/term-chat/internal/config"
	"github.com/nikocevicstefan/term-chat/internal/recorder"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Configure term-chat (re-run anytime to edit settings)",
	// Bypass the normal PersistentPreRunE so setup works before config exists.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSetup(false)
	},
}

// runSetup runs the interactive setup wizard.
// If firstRun is true, a welcome message is shown.
func runSetup(firstRun bool) error {
	if firstRun {
		fmt.Println()
		fmt.Println("  Welcome to term-chat! Let's get you set up.")
	}

	// Load existing config as defaults if present.
	var existing *config.Config
	if config.Exists() {
		c, err := config.LoadGlobal()
		if err == nil {
			existing = c
		}
	}

	c, err := config.RunSetup(existing)
	if err != nil {
		return fmt.Errorf("setup cancelled: %w", err)
	}

	if err := config.Save(c); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	fmt.Println("  ✓ Config saved.")

	if err := recorder.CheckInstalled(); err != nil {
		fmt.Printf("  ⚠ %v\n", err)
	}

	fmt.Println("  Setup complete. Run 'term-chat record' to record a session.")
	fmt.Println()
	return nil
}

func init() {
	rootCmd.AddCommand(setupCmd)
}
