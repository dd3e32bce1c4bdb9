package parser

import "github.com/akashmaji946/tully/lexer"

// declaration parses one top-level-or-block statement, including the
// declaration forms (`var`, `fun`) that may only appear where a statement
// is expected (spec §4.2).
func (p *Parser) declaration() (Stmt, error) {
	switch {
	case p.match(lexer.VAR):
		return p.varDeclaration()
	case p.match(lexer.FUN):
		return p.functionDeclaration("function")
	default:
		return p.statement()
	}
}

func (p *Parser) varDeclaration() (Stmt, error) {
	name, err := p.consume(lexer.IDENTIFIER, "expected variable name")
	if err != nil {
		return nil, err
	}

	var init Expr
	if p.match(lexer.EQUAL) {
		init, err = p.expression()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.consume(lexer.SEMICOLON, "expected ';' after variable declaration"); err != nil {
		return nil, err
	}
	return &VarStmt{Name: name, Init: init}, nil
}

func (p *Parser) statement() (Stmt, error) {
	switch {
	case p.match(lexer.PRINT):
		return p.printStatement()
	case p.match(lexer.IF):
		return p.ifStatement()
	case p.match(lexer.WHILE):
		return p.whileStatement()
	case p.match(lexer.FOR):
		return p.forStatement()
	case p.match(lexer.RETURN):
		return p.returnStatement()
	case p.match(lexer.LEFT_BRACE):
		return p.block()
	default:
		return p.expressionStatement()
	}
}

func (p *Parser) printStatement() (Stmt, error) {
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.SEMICOLON, "expected ';' after value"); err != nil {
		return nil, err
	}
	return &PrintStmt{Expr: value}, nil
}

func (p *Parser) expressionStatement() (Stmt, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.SEMICOLON, "expected ';' after expression"); err != nil {
		return nil, err
	}
	return &ExpressionStmt{Expr: expr}, nil
}

// block parses the body of `{ ... }` after the opening brace has already
// been consumed by the caller's match.
func (p *Parser) block() (*BlockStmt, error) {
	var statements []Stmt
	for !p.check(lexer.RIGHT_BRACE) && !p.isAtEnd() {
		stmt, err := p.declaration()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}
	if _, err := p.consume(lexer.RIGHT_BRACE, "expected '}' after block"); err != nil {
		return nil, err
	}
	return &BlockStmt{Statements: statements}, nil
}
