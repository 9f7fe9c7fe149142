package consts

import "regexp"

const (
	CommentReStr          = `^#.*`
	NumberReStr           = `^[0-9]+(\.[0-9]*)?`
	IdentifierReStr       = `^[a-zA-Z][a-zA-Z0-9]*`
	NarrowIdentifierReStr = `^(extern|def|[a-zA-Z][a-zA-Z0-9]?)`
)

var (
	CommentRe          = _re(CommentReStr)
	NumberRe           = _re(NumberReStr)
	IdentifierRe       = _re(IdentifierReStr)
	NarrowIdentifierRe = _re(NarrowIdentifierReStr)
)

func _re(s string) *regexp.Regexp {
	return regexp.MustCompile(s)
}
