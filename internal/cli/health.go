package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Probe the API status endpoint",
	Run: func(cmd *cobra.Command, args []string) {
		client, err := newClient(cmd)
		if err != nil {
			er(err)
		}
		h, err := client.Health(context.Background())
		if err != nil {
			er(fmt.Sprintf("API unreachable at %s: %v", client.BaseURL(), err))
		}
		if h.Status {
			color.Green("OK: %s\n", normalizeText(h.Message, "N/A"))
		} else {
			color.Red("DEGRADED: %s\n", normalizeText(h.Message, "N/A"))
		}
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
}
