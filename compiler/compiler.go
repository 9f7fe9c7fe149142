package compiler

import (
	"git.lolli.tech/lollipopkit/kl/compiler/ast"
	"git.lolli.tech/lollipopkit/kl/compiler/lexer"
	"git.lolli.tech/lollipopkit/kl/compiler/parser"
	"git.lolli.tech/lollipopkit/kl/logger"
)

type Options struct {
	Precedence        parser.Precedence
	NarrowIdentifiers bool
}

func DefaultOptions() Options {
	return Options{Precedence: parser.DefaultPrecedence()}
}

func (o Options) lexerOptions() []lexer.Option {
	if o.NarrowIdentifiers {
		return []lexer.Option{lexer.NarrowIdentifiers()}
	}
	return nil
}

// NewParser returns a parser over chunk configured by opts.
func NewParser(chunk, chunkName string, opts Options) *parser.Parser {
	return parser.Parse(chunk, chunkName, opts.Precedence, opts.lexerOptions()...)
}

// ParseAll parses every top-level form in chunk. A malformed form costs
// one error and one skipped token; parsing then resumes.
func ParseAll(chunk, chunkName string, opts Options) (forms []ast.Form, errs []error) {
	for form, err := range NewParser(chunk, chunkName, opts).Forms() {
		if err != nil {
			logger.D("[compile] %v", err)
			errs = append(errs, err)
			continue
		}
		forms = append(forms, form)
	}
	return forms, errs
}

// Describe returns the status line reported for a parsed form.
func Describe(form ast.Form) string {
	switch f := form.(type) {
	case *ast.Prototype:
		return "Parsed an extern."
	case *ast.Function:
		if f.Proto.IsAnonymous() {
			return "Parsed a top-level expression."
		}
		return "Parsed a function definition."
	}
	panic("unreachable!")
}
