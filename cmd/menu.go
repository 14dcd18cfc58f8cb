package cmd

import (
	"github.com/jsphweid/notation/console"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(menuCmd)
}

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Interactive menu",
	Long:  `Interactive menu for viewing scales and chords and building progressions.`,
	Args:  cobra.NoArgs,
	RunE:  runMenu,
}

func runMenu(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	menu := console.NewMenu(cmd.InOrStdin(), cmd.OutOrStdout(), a.adapter, a.store, settings.Output.Scale, logger)
	return menu.Run(cmd.Context())
}
