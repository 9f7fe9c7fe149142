package parser

import (
	"iter"
	"maps"

	. "git.lolli.tech/lollipopkit/kl/compiler/ast"
	. "git.lolli.tech/lollipopkit/kl/compiler/lexer"
	"git.lolli.tech/lollipopkit/kl/logger"
)

/* recursive descent parser with operator-precedence climbing */

// Precedence maps a binary operator to its binding strength. Higher binds
// tighter. Characters missing from the table are not binary operators.
type Precedence map[rune]int

func DefaultPrecedence() Precedence {
	return Precedence{
		'<': 10,
		'+': 20,
		'-': 20,
		'*': 40,
	}
}

type Parser struct {
	lexer      *Lexer
	current    Token
	precedence Precedence
}

// New takes ownership of l and reads the first token.
func New(l *Lexer, precedence Precedence) *Parser {
	p := &Parser{
		lexer:      l,
		precedence: maps.Clone(precedence),
	}
	// a fresh lexer yields at least EOF
	p.current, _ = l.NextToken()
	return p
}

// Parse is a shorthand for New(NewLexer(chunk, chunkName), precedence).
func Parse(chunk, chunkName string, precedence Precedence, opts ...Option) *Parser {
	return New(NewLexer(chunk, chunkName, opts...), precedence)
}

func (p *Parser) Current() Token {
	return p.current
}

func (p *Parser) AtEOF() bool {
	return p.current.Kind == TOKEN_EOF
}

// next consumes the current token. It fails only once EOF was consumed.
func (p *Parser) next() error {
	tok, err := p.lexer.NextToken()
	if err != nil {
		return err
	}
	p.current = tok
	return nil
}

// Recover discards the current token. At EOF there is nothing to skip.
func (p *Parser) Recover() {
	if p.AtEOF() {
		return
	}
	skipped := p.current
	if err := p.next(); err != nil {
		return
	}
	logger.D("[parser] %s:%d: skipped %s", p.lexer.ChunkName(), skipped.Line, skipped)
}

// Forms parses top-level forms until EOF. Each failure is yielded as an
// error and followed by the skip of exactly one token.
func (p *Parser) Forms() iter.Seq2[Form, error] {
	return func(yield func(Form, error) bool) {
		for !p.AtEOF() {
			form, err := p.ParseTopLevelForm()
			if err != nil {
				if !yield(nil, err) {
					return
				}
				p.Recover()
				continue
			}
			if !yield(form, nil) {
				return
			}
		}
	}
}

func (p *Parser) unexpected(expected string) error {
	return &UnexpectedTokenError{
		ChunkName: p.lexer.ChunkName(),
		Line:      p.current.Line,
		Expected:  expected,
		Actual:    p.current,
	}
}

// precedence of the current token, -1 if it is not a binary operator
func (p *Parser) tokenPrecedence() int {
	switch p.current.Kind {
	case TOKEN_CHAR:
		if prec, ok := p.precedence[p.current.Char]; ok {
			return prec
		}
		return -1
	case TOKEN_EOF, TOKEN_KW_DEF, TOKEN_KW_EXTERN, TOKEN_IDENTIFIER, TOKEN_NUMBER:
		return -1
	}
	panic("unreachable!")
}
