package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/jsphweid/notation/file"
	"github.com/jsphweid/notation/model"
	"github.com/jsphweid/notation/util"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Summarises the progressions directory",
	Long:  `Lists every progression in the progressions directory with its chord and note counts. Files that do not parse are skipped with a warning.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := settings.Output.Progressions
		overviews, err := file.ListProgressions(dir)
		var storageErr *file.StorageError
		if errors.As(err, &storageErr) && storageErr.Path == dir {
			return err
		}
		if err != nil {
			logger.Warn("skipped unreadable progressions", zap.Error(err))
		}
		report(cmd.OutOrStdout(), overviews)
		return nil
	},
}

func report(out io.Writer, overviews []model.ProgressionOverview) {
	chords := make([]int, 0, len(overviews))
	notes := make([]int, 0, len(overviews))
	for _, o := range overviews {
		fmt.Fprintf(out, "%-24s chords: %-4d notes: %d\n", o.Name, o.Chords, o.NumNotes)
		chords = append(chords, o.Chords)
		notes = append(notes, o.NumNotes)
	}
	fmt.Fprintf(out, "progressions: %v\n", len(overviews))
	fmt.Fprintf(out, "chords: %v\n", util.Sum(chords))
	fmt.Fprintf(out, "notes: %v\n", util.Sum(notes))
}
