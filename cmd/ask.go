package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nikocevicstefan/term-chat/internal/assistant"
	"github.com/nikocevicstefan/term-chat/internal/render"
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask the assistant a free-form question",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := assistant.New(GetConfig())
		if err != nil {
			return err
		}

		reply, err := client.Ask(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}

		fmt.Print(render.Markdown(reply))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(askCmd)
}
