package ast

import (
	"math"
	"strconv"
	"strings"
)

var infLiteral = "1" + strings.Repeat("0", 309)

// Format renders a Form or an Exp as source text. Binary operations are
// fully parenthesized, so parsing the result gives back the same tree.
func Format(node any) string {
	var sb strings.Builder
	switch n := node.(type) {
	case *Function:
		if n.Proto.IsAnonymous() {
			writeExp(&sb, n.Body)
			break
		}
		sb.WriteString("def ")
		writePrototype(&sb, n.Proto)
		sb.WriteByte(' ')
		writeExp(&sb, n.Body)
	case *Prototype:
		sb.WriteString("extern ")
		writePrototype(&sb, n)
	case Exp:
		writeExp(&sb, n)
	default:
		panic("unreachable!")
	}
	return sb.String()
}

func writePrototype(sb *strings.Builder, p *Prototype) {
	sb.WriteString(p.Name)
	sb.WriteByte('(')
	sb.WriteString(strings.Join(p.Params, " "))
	sb.WriteByte(')')
}

func writeExp(sb *strings.Builder, exp Exp) {
	switch e := exp.(type) {
	case *NumberExp:
		if math.IsInf(e.Val, 1) {
			// no literal spells +Inf, but any numeral past MaxFloat64 scans as one
			sb.WriteString(infLiteral)
			break
		}
		sb.WriteString(strconv.FormatFloat(e.Val, 'f', -1, 64))
	case *VariableExp:
		sb.WriteString(e.Name)
	case *BinopExp:
		sb.WriteByte('(')
		writeExp(sb, e.Left)
		sb.WriteByte(' ')
		sb.WriteRune(e.Op)
		sb.WriteByte(' ')
		writeExp(sb, e.Right)
		sb.WriteByte(')')
	case *CallExp:
		sb.WriteString(e.Callee)
		sb.WriteByte('(')
		for i, arg := range e.Args {
			if i > 0 {
				sb.WriteString(", ")
			}
			writeExp(sb, arg)
		}
		sb.WriteByte(')')
	default:
		panic("unreachable!")
	}
}
