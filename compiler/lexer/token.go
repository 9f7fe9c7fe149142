package lexer

import (
	"fmt"
	"strconv"
)

// token kind
const (
	TOKEN_EOF = iota
	TOKEN_KW_DEF
	TOKEN_KW_EXTERN
	TOKEN_IDENTIFIER
	TOKEN_NUMBER
	TOKEN_CHAR
)

var tokenNames = map[int]string{
	TOKEN_EOF:        "EOF",
	TOKEN_KW_DEF:     "def",
	TOKEN_KW_EXTERN:  "extern",
	TOKEN_IDENTIFIER: "identifier",
	TOKEN_NUMBER:     "number literal",
	TOKEN_CHAR:       "character",
}

func TokenName(kind int) string {
	name, ok := tokenNames[kind]
	if !ok {
		return "unknown"
	}
	return name
}

var keywords = map[string]int{
	"def":    TOKEN_KW_DEF,
	"extern": TOKEN_KW_EXTERN,
}

// Token is one lexeme. Only the field matching Kind is meaningful:
// Name for identifiers, Num for numbers, Char for single characters.
type Token struct {
	Line int
	Kind int
	Name string
	Num  float64
	Char rune
}

// IsChar reports whether t is the single-character token c.
func (t Token) IsChar(c rune) bool {
	return t.Kind == TOKEN_CHAR && t.Char == c
}

func (t Token) String() string {
	switch t.Kind {
	case TOKEN_IDENTIFIER:
		return fmt.Sprintf("identifier '%s'", t.Name)
	case TOKEN_NUMBER:
		return "number " + strconv.FormatFloat(t.Num, 'f', -1, 64)
	case TOKEN_CHAR:
		return fmt.Sprintf("'%c'", t.Char)
	default:
		return TokenName(t.Kind)
	}
}
