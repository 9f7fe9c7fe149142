package main

import (
	"os"

	"github.com/spf13/cobra"

	"git.lolli.tech/lollipopkit/kl/config"
	"git.lolli.tech/lollipopkit/kl/consts"
	"git.lolli.tech/lollipopkit/kl/logger"
	"git.lolli.tech/lollipopkit/kl/term"
)

var (
	cfgFile string
	debug   bool
	narrow  bool

	cfg      config.Config
	closeLog = func() error { return nil }
)

var rootCmd = &cobra.Command{
	Use:   "kl [file]",
	Short: "Parser front-end for a tiny Kaleidoscope-style language",
	Long: `kl tokenizes and parses source files into function definitions,
extern declarations and top-level expressions.

With a file it prints one status line per top-level form.
Without arguments it starts the REPL.`,
	Version:           consts.VERSION,
	Args:              cobra.MaximumNArgs(1),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(*cobra.Command, []string) {
		closeLog()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return runRepl()
		}
		return run(args[0])
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (.json, .toml or .yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log parser recovery at debug level")
	rootCmd.PersistentFlags().BoolVar(&narrow, "narrow", false, "only scan identifiers of one or two characters")
	rootCmd.AddCommand(astCmd, fmtCmd, replCmd)
}

func setup(cmd *cobra.Command, _ []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("debug") {
		cfg.Debug = debug
	}
	if cmd.Flags().Changed("narrow") {
		cfg.NarrowIdentifiers = narrow
	}

	closeLog, err = logger.Setup(cfg.Debug, cfg.LogFile)
	if err != nil {
		return err
	}
	if cfgFile != "" {
		logger.D("[config] loaded %s", cfgFile)
	}
	if cfg.NarrowIdentifiers {
		term.Warn("narrow identifiers: names longer than two characters are split")
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if _, ok := err.(*formErrors); !ok {
			term.Err("%v", err)
		}
		os.Exit(1)
	}
}
