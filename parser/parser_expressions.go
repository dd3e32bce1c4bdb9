package parser

import "github.com/akashmaji946/tully/lexer"

// expression is the entry point for any expression context; assignment
// sits at the bottom of precedence per spec §4.2.
func (p *Parser) expression() (Expr, error) {
	return p.assignment()
}

// assignment parses `target = value`, right-associative, but only
// accepts a bare VariableExpr as the target — anything else built by
// equality() and below is a parse error, never a runtime one.
func (p *Parser) assignment() (Expr, error) {
	expr, err := p.equality()
	if err != nil {
		return nil, err
	}

	if p.match(lexer.EQUAL) {
		equals := p.previous()
		value, err := p.assignment()
		if err != nil {
			return nil, err
		}

		if variable, ok := expr.(*VariableExpr); ok {
			return &AssignExpr{Name: variable.Name, Value: value}, nil
		}
		return nil, &Error{Token: equals, Message: "invalid assignment target"}
	}

	return expr, nil
}

func (p *Parser) equality() (Expr, error) {
	expr, err := p.comparison()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.EQUAL_EQUAL, lexer.BANG_EQUAL) {
		operator := p.previous()
		right, err := p.comparison()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr, nil
}

func (p *Parser) comparison() (Expr, error) {
	expr, err := p.addition()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.GREATER, lexer.GREATER_EQUAL, lexer.LESS, lexer.LESS_EQUAL) {
		operator := p.previous()
		right, err := p.addition()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr, nil
}

func (p *Parser) addition() (Expr, error) {
	expr, err := p.multiplication()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.PLUS, lexer.MINUS) {
		operator := p.previous()
		right, err := p.multiplication()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr, nil
}

func (p *Parser) multiplication() (Expr, error) {
	expr, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.STAR, lexer.SLASH) {
		operator := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr, nil
}

func (p *Parser) unary() (Expr, error) {
	if p.match(lexer.BANG, lexer.MINUS, lexer.PLUS) {
		operator := p.previous()
		operand, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{Operator: operator, Operand: operand}, nil
	}
	return p.call()
}

// call parses a primary expression followed by zero or more `(args)`
// suffixes, so `f()()` chains naturally.
func (p *Parser) call() (Expr, error) {
	expr, err := p.primary()
	if err != nil {
		return nil, err
	}

	for p.match(lexer.LEFT_PAREN) {
		expr, err = p.finishCall(expr)
		if err != nil {
			return nil, err
		}
	}
	return expr, nil
}

func (p *Parser) finishCall(callee Expr) (Expr, error) {
	var args []Expr
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			if len(args) >= maxArgs {
				return nil, &Error{Token: p.peek(), Message: "can't have more than 255 arguments"}
			}
			arg, err := p.expression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}

	paren, err := p.consume(lexer.RIGHT_PAREN, "expected ')' after arguments")
	if err != nil {
		return nil, err
	}

	return &CallExpr{Callee: callee, Paren: paren, Args: args}, nil
}
