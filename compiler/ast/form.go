package ast

/*
toplevel   ::= definition | external | expression
definition ::= def prototype expression
external   ::= extern prototype
prototype  ::= Name ‘(’ {Name} ‘)’
*/

// Form is a top-level form: *Function for definitions and top-level
// expressions, *Prototype for externs.
type Form interface {
	formNode()
}

type Prototype struct {
	Line   int
	Name   string // "" for the wrapper of a top-level expression
	Params []string
}

// IsAnonymous reports whether p wraps a top-level expression.
func (p *Prototype) IsAnonymous() bool {
	return p.Name == ""
}

type Function struct {
	Proto *Prototype
	Body  Exp
}

func (*Prototype) formNode() {}
func (*Function) formNode()  {}
