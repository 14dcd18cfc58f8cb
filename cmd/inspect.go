package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jsphweid/notation/constants"
	"github.com/jsphweid/notation/file"
	"github.com/jsphweid/notation/midi"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <path>",
	Short: "Inspects a progression or .mid file",
	Long:  `Inspects a progression file block by block, or lists the keys of a .mid file.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		out := cmd.OutOrStdout()

		if filepath.Ext(path) == constants.MidiExt {
			keys, err := midi.ReadNotes(path)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "keys: %v\n", keys)
			return nil
		}

		doc, err := file.ReadProgressionFile(path)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "chords: %v\n", len(doc.Blocks))
		fmt.Fprintf(out, "notes: %v\n", doc.NumNotes())
		for i, block := range doc.Blocks {
			names := make([]string, 0, len(block.Notes))
			for _, n := range block.Notes {
				names = append(names, fmt.Sprintf("%s%d", n.Name, n.Octave))
			}
			fmt.Fprintf(out, "%d: %s\n", i+1, strings.Join(names, " "))
		}
		return nil
	},
}
