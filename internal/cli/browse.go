package cli

import (
	"github.com/spf13/cobra"

	"adminctl/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Start the interactive console",
	Long:  "browse opens the full-screen console for managing users, roles, products and uploads.",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(cmd)
		if err != nil {
			return err
		}
		return tui.Run(client)
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
