package main

import (
	"github.com/spf13/cobra"

	"git.lolli.tech/lollipopkit/kl/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Parse forms typed on stdin",
	Args:  cobra.NoArgs,
	RunE: func(*cobra.Command, []string) error {
		return runRepl()
	},
}

func runRepl() error {
	return repl.Repl(cfg)
}
