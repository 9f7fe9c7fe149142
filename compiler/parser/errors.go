package parser

import (
	"errors"
	"fmt"

	. "git.lolli.tech/lollipopkit/kl/compiler/lexer"
)

// ParseError is implemented by every syntax error the parser returns.
type ParseError interface {
	error
	Position() (chunkName string, line int)
}

// UnexpectedTokenError reports a grammar mismatch: Expected describes
// what the rule needed, Actual is the token found instead.
type UnexpectedTokenError struct {
	ChunkName string
	Line      int
	Expected  string
	Actual    Token
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("%s:%d: syntax error, expected %s but got %s", e.ChunkName, e.Line, e.Expected, e.Actual)
}

func (e *UnexpectedTokenError) Position() (string, int) {
	return e.ChunkName, e.Line
}

// UnknownTokenError reports a token that cannot start an expression.
type UnknownTokenError struct {
	ChunkName string
	Line      int
	Token     Token
}

func (e *UnknownTokenError) Error() string {
	return fmt.Sprintf("%s:%d: unknown token encountered: %s", e.ChunkName, e.Line, e.Token)
}

func (e *UnknownTokenError) Position() (string, int) {
	return e.ChunkName, e.Line
}

// IsUnexpectedEOF reports whether err is a syntax error raised because
// the input ended in the middle of a form.
func IsUnexpectedEOF(err error) bool {
	var unexpected *UnexpectedTokenError
	if errors.As(err, &unexpected) {
		return unexpected.Actual.Kind == TOKEN_EOF
	}
	var unknown *UnknownTokenError
	if errors.As(err, &unknown) {
		return unknown.Token.Kind == TOKEN_EOF
	}
	return false
}
