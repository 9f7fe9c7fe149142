package parser

import (
	. "git.lolli.tech/lollipopkit/kl/compiler/ast"
	. "git.lolli.tech/lollipopkit/kl/compiler/lexer"
)

// toplevel ::= definition | external | expression
func (p *Parser) ParseTopLevelForm() (Form, error) {
	switch p.current.Kind {
	case TOKEN_KW_DEF:
		return p.ParseDefinition()
	case TOKEN_KW_EXTERN:
		return p.ParseExtern()
	case TOKEN_EOF, TOKEN_IDENTIFIER, TOKEN_NUMBER, TOKEN_CHAR:
		return p.ParseTopLevelExpr()
	}
	panic("unreachable!")
}

// definition ::= def prototype expression
func (p *Parser) ParseDefinition() (*Function, error) {
	if err := p.next(); err != nil { // def
		return nil, err
	}
	proto, err := p.ParsePrototype()
	if err != nil {
		return nil, err
	}
	body, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	return &Function{Proto: proto, Body: body}, nil
}

// external ::= extern prototype
func (p *Parser) ParseExtern() (*Prototype, error) {
	if err := p.next(); err != nil { // extern
		return nil, err
	}
	return p.ParsePrototype()
}

// ParseTopLevelExpr wraps an expression in a function with an anonymous
// prototype.
func (p *Parser) ParseTopLevelExpr() (*Function, error) {
	line := p.current.Line
	body, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	return &Function{Proto: &Prototype{Line: line}, Body: body}, nil
}

// prototype ::= Name ‘(’ {Name} ‘)’
func (p *Parser) ParsePrototype() (*Prototype, error) {
	if p.current.Kind != TOKEN_IDENTIFIER {
		return nil, p.unexpected("function name in prototype")
	}
	proto := &Prototype{Line: p.current.Line, Name: p.current.Name}
	if err := p.next(); err != nil {
		return nil, err
	}

	if !p.current.IsChar('(') {
		return nil, p.unexpected("'(' in prototype")
	}
	if err := p.next(); err != nil { // (
		return nil, err
	}

	for p.current.Kind == TOKEN_IDENTIFIER {
		proto.Params = append(proto.Params, p.current.Name)
		if err := p.next(); err != nil {
			return nil, err
		}
	}

	if !p.current.IsChar(')') {
		return nil, p.unexpected("')' in prototype")
	}
	if err := p.next(); err != nil { // )
		return nil, err
	}
	return proto, nil
}
