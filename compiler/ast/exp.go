package ast

/*
expression  ::= primary {binop primary}
primary     ::= identifierexpr | numberexpr | parenexpr
identifierexpr ::= Name | Name ‘(’ [expression {‘,’ expression}] ‘)’
numberexpr  ::= Numeral
parenexpr   ::= ‘(’ expression ‘)’
*/

// Exp is implemented by NumberExp, VariableExp, BinopExp and CallExp only.
type Exp interface {
	expNode()
}

// Numeral
type NumberExp struct {
	Line int
	Val  float64
}

type VariableExp struct {
	Line int
	Name string
}

// exp1 op exp2
type BinopExp struct {
	Line  int  // line of operator
	Op    rune // operator
	Left  Exp
	Right Exp
}

// Name ‘(’ args ‘)’
type CallExp struct {
	Line     int // line of callee
	LastLine int // line of ‘)’
	Callee   string
	Args     []Exp
}

func (*NumberExp) expNode()   {}
func (*VariableExp) expNode() {}
func (*BinopExp) expNode()    {}
func (*CallExp) expNode()     {}
