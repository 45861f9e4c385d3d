package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nikocevicstefan/term-chat/internal/transcript"
	"github.com/nikocevicstefan/term-chat/internal/tui"
)

var plainOutput bool

var viewCmd = &cobra.Command{
	Use:   "view [transcript]",
	Short: "View a recorded transcript and its extracted interaction",
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

		if plainOutput {
			printInteraction(cmd, string(data))
			return nil
		}
		return tui.Run(string(data), path)
	},
}

// printInteraction writes a plain-text summary of the extraction to stdout.
func printInteraction(cmd *cobra.Command, raw string) {
	lines := transcript.Clean(raw)
	in := transcript.Extract(lines)

	cmd.Println("## Last Interaction")
	if in.HasCommand() {
		cmd.Printf("  Command: %s\n", *in.Command)
	} else {
		cmd.Println("  Command: (none found)")
	}
	cmd.Println()

	cmd.Printf("## Output (%d lines)\n", len(in.Output))
	if len(in.Output) == 0 {
		cmd.Println("  (none)")
	} else {
		for _, line := range in.Output {
			cmd.Printf("  %s\n", line)
		}
	}
	cmd.Println()

	cmd.Printf("## Transcript (%d lines after cleaning)\n", len(lines))
	for _, line := range lines {
		cmd.Printf("  %s\n", line)
	}
}

func init() {
	viewCmd.Flags().BoolVar(&plainOutput, "plain", false, "plain text output instead of TUI")
	rootCmd.AddCommand(viewCmd)
}
