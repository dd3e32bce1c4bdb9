package parser

import (
	"fmt"

	"github.com/akashmaji946/tully/lexer"
)

// maxArgs is the parser-enforced ceiling on call arguments and function
// parameters (spec §4.2).
const maxArgs = 255

// Error is a single parse failure, formatted to match spec §7's
// diagnostic shape: `<message> at "<lexeme>" (line <N>)`.
type Error struct {
	Token   lexer.Token
	Message string
}

func (e *Error) Error() string {
	where := fmt.Sprintf("%q", e.Token.Lexeme)
	if e.Token.Type == lexer.EOF {
		where = "end of input"
	}
	return fmt.Sprintf("%s at %s (line %d)", e.Message, where, e.Token.Line)
}

// Parser consumes a fixed token slice and builds statement nodes one at a
// time via recursive descent, one method per precedence level (spec
// §4.2), rather than the teacher's table-driven Pratt parser — a tree
// this shallow needs no operator-precedence table.
type Parser struct {
	tokens  []lexer.Token
	current int
}

// New builds a Parser over tokens. lexer.Tokenize does not itself append
// an EOF sentinel, so New adds one here if the caller's slice doesn't
// already end with one — the rest of the parser relies on always being
// able to peek one past the last real token.
func New(tokens []lexer.Token) *Parser {
	line := 1
	if n := len(tokens); n > 0 {
		line = tokens[n-1].Line
		if tokens[n-1].Type == lexer.EOF {
			return &Parser{tokens: tokens}
		}
	}
	return &Parser{tokens: append(tokens, lexer.NewToken(lexer.EOF, "", line))}
}

// Parse consumes the whole token stream and returns the program as a
// sequence of statements. Parsing stops at the first error rather than
// attempting the teacher's multi-error recovery/synchronization, per the
// simpler single-shot contract spec §7 describes.
func (p *Parser) Parse() ([]Stmt, error) {
	var statements []Stmt
	for !p.isAtEnd() {
		stmt, err := p.declaration()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}
	return statements, nil
}

// --- token cursor helpers ---------------------------------------------

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == lexer.EOF
}

func (p *Parser) peek() lexer.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() lexer.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) advance() lexer.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(kind lexer.TokenType) bool {
	if p.isAtEnd() {
		return kind == lexer.EOF
	}
	return p.peek().Type == kind
}

func (p *Parser) match(kinds ...lexer.TokenType) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) consume(kind lexer.TokenType, message string) (lexer.Token, error) {
	if p.check(kind) {
		return p.advance(), nil
	}
	return lexer.Token{}, &Error{Token: p.peek(), Message: message}
}
