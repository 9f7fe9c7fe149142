package parser

import (
	. "git.lolli.tech/lollipopkit/kl/compiler/ast"
	. "git.lolli.tech/lollipopkit/kl/compiler/lexer"
)

// expression ::= primary {binop primary}
func (p *Parser) ParseExpression() (Exp, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	return p.parseBinopRHS(left, 0)
}

/*
primary ::= identifierexpr | numberexpr | parenexpr
*/
func (p *Parser) parsePrimary() (Exp, error) {
	switch p.current.Kind {
	case TOKEN_IDENTIFIER:
		return p.parseIdentifierExp()
	case TOKEN_NUMBER:
		return p.parseNumberExp()
	case TOKEN_CHAR:
		if p.current.IsChar('(') {
			return p.parseParenExp()
		}
	case TOKEN_EOF, TOKEN_KW_DEF, TOKEN_KW_EXTERN:
	default:
		panic("unreachable!")
	}
	return nil, &UnknownTokenError{
		ChunkName: p.lexer.ChunkName(),
		Line:      p.current.Line,
		Token:     p.current,
	}
}

// numberexpr ::= Numeral
func (p *Parser) parseNumberExp() (Exp, error) {
	exp := &NumberExp{Line: p.current.Line, Val: p.current.Num}
	if err := p.next(); err != nil {
		return nil, err
	}
	return exp, nil
}

// parenexpr ::= ‘(’ expression ‘)’
func (p *Parser) parseParenExp() (Exp, error) {
	if err := p.next(); err != nil { // (
		return nil, err
	}
	exp, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	if !p.current.IsChar(')') {
		return nil, p.unexpected("')'")
	}
	if err := p.next(); err != nil { // )
		return nil, err
	}
	return exp, nil
}

// identifierexpr ::= Name | Name ‘(’ [expression {‘,’ expression}] ‘)’
func (p *Parser) parseIdentifierExp() (Exp, error) {
	line, name := p.current.Line, p.current.Name
	if err := p.next(); err != nil {
		return nil, err
	}

	if !p.current.IsChar('(') {
		return &VariableExp{Line: line, Name: name}, nil
	}
	if err := p.next(); err != nil { // (
		return nil, err
	}

	var args []Exp
	if !p.current.IsChar(')') {
		for {
			arg, err := p.ParseExpression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)

			if p.current.IsChar(')') {
				break
			}
			if !p.current.IsChar(',') {
				return nil, p.unexpected("')' or ',' in argument list")
			}
			if err := p.next(); err != nil { // ,
				return nil, err
			}
		}
	}

	lastLine := p.current.Line
	if err := p.next(); err != nil { // )
		return nil, err
	}
	return &CallExp{Line: line, LastLine: lastLine, Callee: name, Args: args}, nil
}

// binoprhs ::= {binop primary}
//
// Folds operators binding at least as tight as minPrec onto left. A
// stronger operator to the right of the new operand is folded into that
// operand first, so `1+2*3` is `1+(2*3)` and `1-2-3` is `(1-2)-3`.
func (p *Parser) parseBinopRHS(left Exp, minPrec int) (Exp, error) {
	for {
		prec := p.tokenPrecedence()
		if prec < minPrec {
			return left, nil
		}

		line, op := p.current.Line, p.current.Char
		if err := p.next(); err != nil {
			return nil, err
		}

		right, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}

		if prec < p.tokenPrecedence() {
			right, err = p.parseBinopRHS(right, prec+1)
			if err != nil {
				return nil, err
			}
		}

		left = &BinopExp{Line: line, Op: op, Left: left, Right: right}
	}
}
