package parser

import "github.com/akashmaji946/tully/lexer"

func (p *Parser) ifStatement() (Stmt, error) {
	if _, err := p.consume(lexer.LEFT_PAREN, "expected '(' after 'if'"); err != nil {
		return nil, err
	}
	condition, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.RIGHT_PAREN, "expected ')' after if condition"); err != nil {
		return nil, err
	}

	thenBranch, err := p.statement()
	if err != nil {
		return nil, err
	}

	var elseBranch Stmt
	if p.match(lexer.ELSE) {
		elseBranch, err = p.statement()
		if err != nil {
			return nil, err
		}
	}

	return &IfStmt{Condition: condition, Then: thenBranch, Else: elseBranch}, nil
}

func (p *Parser) whileStatement() (Stmt, error) {
	if _, err := p.consume(lexer.LEFT_PAREN, "expected '(' after 'while'"); err != nil {
		return nil, err
	}
	condition, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.RIGHT_PAREN, "expected ')' after while condition"); err != nil {
		return nil, err
	}
	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	return &WhileStmt{Condition: condition, Body: body}, nil
}

func (p *Parser) returnStatement() (Stmt, error) {
	keyword := p.previous()

	var value Expr
	if !p.check(lexer.SEMICOLON) {
		var err error
		value, err = p.expression()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.consume(lexer.SEMICOLON, "expected ';' after return value"); err != nil {
		return nil, err
	}
	return &ReturnStmt{Keyword: keyword, Value: value}, nil
}
