package parser

import "github.com/akashmaji946/tully/lexer"

// functionDeclaration parses `fun name(params) { body }`. kind names the
// construct in error messages ("function") so the same helper could later
// serve methods without changing its diagnostics — spec only needs plain
// functions today.
func (p *Parser) functionDeclaration(kind string) (Stmt, error) {
	name, err := p.consume(lexer.IDENTIFIER, "expected "+kind+" name")
	if err != nil {
		return nil, err
	}

	if _, err := p.consume(lexer.LEFT_PAREN, "expected '(' after "+kind+" name"); err != nil {
		return nil, err
	}

	var params []lexer.Token
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			if len(params) >= maxArgs {
				return nil, &Error{Token: p.peek(), Message: "can't have more than 255 parameters"}
			}
			param, err := p.consume(lexer.IDENTIFIER, "expected parameter name")
			if err != nil {
				return nil, err
			}
			params = append(params, param)
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	if _, err := p.consume(lexer.RIGHT_PAREN, "expected ')' after parameters"); err != nil {
		return nil, err
	}

	if _, err := p.consume(lexer.LEFT_BRACE, "expected '{' before "+kind+" body"); err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}

	return &FunctionStmt{Name: name, Params: params, Body: body}, nil
}
