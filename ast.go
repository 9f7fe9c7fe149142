package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"git.lolli.tech/lollipopkit/kl/compiler"
	"git.lolli.tech/lollipopkit/kl/compiler/ast"
	"git.lolli.tech/lollipopkit/kl/term"
	"git.lolli.tech/lollipopkit/kl/utils"
)

var astCmd = &cobra.Command{
	Use:   "ast <file>",
	Short: "Write the AST of <file> to <file>.ast.json",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return WriteAst(args[0])
	},
}

var fmtCmd = &cobra.Command{
	Use:   "fmt <file>",
	Short: "Print every top-level form of <file> in canonical form",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		forms, err := parseFile(args[0])
		for _, form := range forms {
			fmt.Fprintln(cmd.OutOrStdout(), ast.Format(form))
		}
		return err
	},
}

// parseFile returns the forms that parsed; the error counts the rest.
func parseFile(path string) ([]ast.Form, error) {
	chunk, err := utils.ReadSource(path)
	if err != nil {
		return nil, err
	}
	forms, errs := compiler.ParseAll(chunk, path, cfg.CompilerOptions())
	for _, err := range errs {
		term.Err("Error: %v", err)
	}
	if len(errs) > 0 {
		return forms, &formErrors{len(errs)}
	}
	return forms, nil
}

func WriteAst(path string) error {
	forms, err := parseFile(path)
	if err != nil {
		return err
	}

	j, err := ast.Dump(forms)
	if err != nil {
		return errors.Wrap(err, "encode ast")
	}

	if err := os.WriteFile(path+".ast.json", j, 0644); err != nil {
		return errors.Wrap(err, "write ast")
	}
	term.Info("wrote %s.ast.json", path)
	return nil
}
