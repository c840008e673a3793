package main

import (
	"github.com/spf13/cobra"

	"indicomp/internal/tui"
)

func (c *cli) dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive terminal dashboard",
		Long: `Open the interactive terminal dashboard. Logs are discarded unless
logging.file is set in the config, so they do not corrupt the display.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := c.bootstrap(true)
			if err != nil {
				return err
			}
			defer a.Close()

			return tui.Run(cmd.Context(), a)
		},
	}
}
