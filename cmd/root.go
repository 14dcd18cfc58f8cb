package cmd

import (
	"context"
	"io"

	"github.com/jsphweid/notation/config"
	"github.com/jsphweid/notation/constants"
	"github.com/jsphweid/notation/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

var (
	cfgFile  string
	settings *config.Settings
	logger   = zap.NewNop()
)

// flagBinding ties a config key to the flag that overrides it. Bindings are
// applied to a fresh viper on every execution.
type flagBinding struct {
	key  string
	flag *pflag.Flag
}

var bindings []flagBinding

func bindFlag(key string, flag *pflag.Flag) {
	bindings = append(bindings, flagBinding{key: key, flag: flag})
}

var rootCmd = &cobra.Command{
	Use:   "notation",
	Short: "Scales, chords and chord progressions",
	Long: `Notation prints the notes of scales and chords and writes them, along
with whole chord progressions, to plain text files. Run without a subcommand
for the interactive menu.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: runMenu,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (yaml)")
	flags.String("scale-file", constants.DefaultScalePath, "file that scales and chords are written to")
	flags.String("progressions-dir", constants.DefaultProgressionsDir, "directory progressions are written to")
	flags.Bool("midi", false, "also write a .mid file next to every text file")
	flags.String("log-level", "info", "debug, info, warn or error")
	flags.String("log-format", "console", "console or json")

	bindFlag("output.scale", flags.Lookup("scale-file"))
	bindFlag("output.progressions", flags.Lookup("progressions-dir"))
	bindFlag("output.midi", flags.Lookup("midi"))
	bindFlag("log.level", flags.Lookup("log-level"))
	bindFlag("log.format", flags.Lookup("log-format"))
}

func setup(cmd *cobra.Command, args []string) error {
	v := config.New()
	for _, b := range bindings {
		if err := v.BindPFlag(b.key, b.flag); err != nil {
			return err
		}
	}
	s, err := config.Load(v, cfgFile)
	if err != nil {
		return err
	}
	l, err := logging.New(s.Log.Level, s.Log.Format)
	if err != nil {
		return err
	}
	settings, logger = s, l
	return nil
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

// Run executes the command line in args against the given streams. Flags
// start from their defaults on every call, so nothing set by an earlier
// call carries over.
func Run(ctx context.Context, args []string, in io.Reader, out io.Writer) error {
	resetFlags(rootCmd)
	rootCmd.SetArgs(args)
	rootCmd.SetIn(in)
	rootCmd.SetOut(out)
	return rootCmd.ExecuteContext(ctx)
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}
