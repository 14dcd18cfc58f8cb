package cmd

import (
	"fmt"

	"github.com/jsphweid/notation/acquire"
	"github.com/jsphweid/notation/console"
	"github.com/jsphweid/notation/model"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(scaleCmd)
}

var scaleCmd = &cobra.Command{
	Use:     "scale <tonic> <mode> [direction]",
	Short:   "Prints a scale and writes it to the scale file",
	Long:    `Prints a scale and writes it to the scale file. Direction is asc or desc and defaults to asc.`,
	Example: "  notation scale c ionian desc",
	Args:    cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		tonic, err := acquire.Strict(args[0], acquire.Tonic)
		if err != nil {
			return err
		}
		mode, err := acquire.Strict(args[1], acquire.Mode)
		if err != nil {
			return err
		}
		direction := model.Ascending
		if len(args) == 3 {
			direction = acquire.Direction(args[2], logger)
		}

		a, err := newApp()
		if err != nil {
			return err
		}
		notes, err := a.adapter.ExpandScale(tonic, mode, direction)
		if err != nil {
			return err
		}
		return printAndSave(cmd, a, fmt.Sprintf("%v %v", tonic, mode), "Scale", notes)
	},
}

// printAndSave prints one note per line and writes the notes to the scale
// file.
func printAndSave(cmd *cobra.Command, a *app, name string, what string, notes []model.Note) error {
	r := console.NewRenderer(cmd.OutOrStdout())
	for _, n := range notes {
		r.Line(n.String())
	}
	if err := a.store.SaveNotes(settings.Output.Scale, name, notes); err != nil {
		return err
	}
	r.Written(what, settings.Output.Scale)
	return nil
}
