package main

import (
	"fmt"

	"git.lolli.tech/lollipopkit/kl/compiler"
	"git.lolli.tech/lollipopkit/kl/term"
	"git.lolli.tech/lollipopkit/kl/utils"
)

// formErrors is returned when some top-level forms failed to parse. The
// errors were already reported line by line.
type formErrors struct {
	n int
}

func (e *formErrors) Error() string {
	return fmt.Sprintf("%d top-level form(s) failed to parse", e.n)
}

func run(source string) error {
	chunk, err := utils.ReadSource(source)
	if err != nil {
		term.Error("[run] " + err.Error())
		return err
	}

	failed := 0
	p := compiler.NewParser(chunk, source, cfg.CompilerOptions())
	for form, err := range p.Forms() {
		if err != nil {
			failed++
			term.Err("Error: %v", err)
			continue
		}
		term.Suc("%s", compiler.Describe(form))
	}
	if failed > 0 {
		return &formErrors{failed}
	}
	return nil
}
