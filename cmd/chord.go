package cmd

import (
	"github.com/jsphweid/notation/acquire"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(chordCmd)
}

var chordCmd = &cobra.Command{
	Use:     "chord <root> <quality> <extension>",
	Short:   "Prints a chord and writes it to the scale file",
	Long:    `Prints a chord and writes it to the scale file.`,
	Example: "  notation chord a minor seventh",
	Args:    cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		spec, err := acquire.StrictChord(args[0], args[1], args[2])
		if err != nil {
			return err
		}

		a, err := newApp()
		if err != nil {
			return err
		}
		notes, err := a.adapter.ExpandSpec(spec)
		if err != nil {
			return err
		}
		return printAndSave(cmd, a, spec.String(), "Chord", notes)
	},
}
