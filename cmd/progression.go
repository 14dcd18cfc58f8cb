package cmd

import (
	"fmt"
	"os"

	"github.com/jsphweid/notation/acquire"
	"github.com/jsphweid/notation/chord"
	"github.com/jsphweid/notation/console"
	"github.com/jsphweid/notation/model"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	progressionFile string
	progressionName string
)

func init() {
	progressionWriteCmd.Flags().StringVarP(&progressionFile, "file", "f", "", "yaml progression definition")
	progressionWriteCmd.Flags().StringVar(&progressionName, "name", "", "progression name (overrides the name in the file)")
	cobra.CheckErr(progressionWriteCmd.MarkFlagRequired("file"))

	progressionCmd.AddCommand(progressionWriteCmd)
	progressionCmd.AddCommand(progressionFetchCmd)
	rootCmd.AddCommand(progressionCmd)
}

var progressionCmd = &cobra.Command{
	Use:   "progression",
	Short: "Writes and fetches chord progressions",
	Long:  `Writes and fetches chord progressions.`,
}

var progressionWriteCmd = &cobra.Command{
	Use:   "write -f <file>",
	Short: "Writes a progression defined in a yaml file",
	Long: `Writes a progression defined in a yaml file of the form

  name: turnaround
  chords:
    - {root: c, quality: major, extension: triad}
    - {root: a, quality: minor, extension: seventh}

to <progressions-dir>/<name>.txt, and to the archive when one is configured.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadProgression(progressionFile, progressionName)
		if err != nil {
			return err
		}
		a, err := newApp()
		if err != nil {
			return err
		}
		path, err := a.store.SaveProgression(cmd.Context(), p)
		if err != nil {
			return err
		}
		console.NewRenderer(cmd.OutOrStdout()).Written("Progression", path)
		return nil
	},
}

var progressionFetchCmd = &cobra.Command{
	Use:   "fetch <name>",
	Short: "Restores an archived progression into the progressions directory",
	Long:  `Restores an archived progression into the progressions directory. Requires archive.table.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		path, err := a.store.Restore(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		console.NewRenderer(cmd.OutOrStdout()).Written("Progression", path)
		return nil
	},
}

// loadProgression reads a yaml definition and validates every chord. name,
// when set, replaces the name given in the file.
func loadProgression(path string, name string) (*chord.Progression, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var def model.ProgressionRequestBody
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if name != "" {
		def.Name = name
	}

	p := chord.New(def.Name)
	for i, c := range def.Chords {
		spec, err := acquire.StrictChord(c.Root, c.Quality, c.Extension)
		if err != nil {
			return nil, fmt.Errorf("chord %d: %w", i+1, err)
		}
		p.Append(spec)
	}
	return p, nil
}
