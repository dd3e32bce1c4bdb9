package parser

import "github.com/akashmaji946/tully/lexer"

// forStatement desugars `for (init; cond; incr) body` into
// `{ init; while (cond) { body; incr; } }` at parse time (spec §4.2), so
// the evaluator never needs a distinct for-loop node. A missing condition
// desugars to the literal `true`.
func (p *Parser) forStatement() (Stmt, error) {
	if _, err := p.consume(lexer.LEFT_PAREN, "expected '(' after 'for'"); err != nil {
		return nil, err
	}

	var initializer Stmt
	var err error
	switch {
	case p.match(lexer.SEMICOLON):
		initializer = nil
	case p.match(lexer.VAR):
		initializer, err = p.varDeclaration()
	default:
		initializer, err = p.expressionStatement()
	}
	if err != nil {
		return nil, err
	}

	var condition Expr
	if !p.check(lexer.SEMICOLON) {
		condition, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(lexer.SEMICOLON, "expected ';' after loop condition"); err != nil {
		return nil, err
	}

	var increment Expr
	if !p.check(lexer.RIGHT_PAREN) {
		increment, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(lexer.RIGHT_PAREN, "expected ')' after for clauses"); err != nil {
		return nil, err
	}

	body, err := p.statement()
	if err != nil {
		return nil, err
	}

	if increment != nil {
		body = &BlockStmt{Statements: []Stmt{body, &ExpressionStmt{Expr: increment}}}
	}

	if condition == nil {
		condition = &LiteralExpr{Value: LiteralValue{Kind: LiteralBool, Bool: true}}
	}
	body = &WhileStmt{Condition: condition, Body: body}

	if initializer != nil {
		body = &BlockStmt{Statements: []Stmt{initializer, body}}
	}

	return body, nil
}
