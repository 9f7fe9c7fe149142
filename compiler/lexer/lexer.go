package lexer

import (
	"errors"
	"regexp"
	"strconv"
	"unicode"
	"unicode/utf8"

	"git.lolli.tech/lollipopkit/kl/consts"
)

// ErrExhausted is returned by NextToken once EOF has been handed out.
var ErrExhausted = errors.New("lexer: token stream exhausted")

type Option func(*Lexer)

// NarrowIdentifiers restricts identifiers to a letter followed by at most
// one alphanumeric character. `def` and `extern` are still keywords.
func NarrowIdentifiers() Option {
	return func(l *Lexer) {
		l.reIdentifier = consts.NarrowIdentifierRe
	}
}

type Lexer struct {
	chunk        string // source code
	chunkName    string // source name
	line         int    // current line number
	reIdentifier *regexp.Regexp
	done         bool // EOF already emitted
}

func NewLexer(chunk, chunkName string, opts ...Option) *Lexer {
	l := &Lexer{
		chunk:        chunk,
		chunkName:    chunkName,
		line:         1,
		reIdentifier: consts.IdentifierRe,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (self *Lexer) Line() int {
	return self.line
}

func (self *Lexer) ChunkName() string {
	return self.chunkName
}

// NextToken scans the next token. The stream ends with exactly one
// TOKEN_EOF; any call after that returns ErrExhausted.
func (self *Lexer) NextToken() (Token, error) {
	if self.done {
		return Token{Line: self.line, Kind: TOKEN_EOF}, ErrExhausted
	}

	for {
		self.skipWhiteSpaces()
		if len(self.chunk) == 0 {
			self.done = true
			return Token{Line: self.line, Kind: TOKEN_EOF}, nil
		}
		if comment := consts.CommentRe.FindString(self.chunk); comment != "" {
			self.next(len(comment))
			continue
		}
		break
	}

	if token := consts.NumberRe.FindString(self.chunk); token != "" {
		self.next(len(token))
		// ErrRange still yields ±Inf, which is what the literal denotes.
		num, _ := strconv.ParseFloat(token, 64)
		return Token{Line: self.line, Kind: TOKEN_NUMBER, Num: num}, nil
	}

	if token := self.reIdentifier.FindString(self.chunk); token != "" {
		self.next(len(token))
		if kind, found := keywords[token]; found {
			return Token{Line: self.line, Kind: kind}, nil
		}
		return Token{Line: self.line, Kind: TOKEN_IDENTIFIER, Name: token}, nil
	}

	c, size := utf8.DecodeRuneInString(self.chunk)
	self.next(size)
	return Token{Line: self.line, Kind: TOKEN_CHAR, Char: c}, nil
}

func (self *Lexer) next(n int) {
	self.chunk = self.chunk[n:]
}

func (self *Lexer) skipWhiteSpaces() {
	for len(self.chunk) > 0 {
		c, size := utf8.DecodeRuneInString(self.chunk)
		if !unicode.IsSpace(c) {
			return
		}
		if c == '\n' {
			self.line += 1
		}
		self.next(size)
	}
}
