// Package parser implements the hand-written recursive-descent,
// precedence-climbing parser described in SPEC_FULL.md §4.1.
//
// Grounded on the AST shape the teacher (Fl0k3n-gocc) uses — concrete
// structs behind an empty marker interface — but NOT on the teacher's
// control algorithm: the teacher drives an LALR(1) table-driven engine
// (parser/tablebuilder.go, lalr1structs.go), which is a different parsing
// strategy than the one-token-lookahead recursive descent this subset's
// typedef-ambiguity resolution and `for`-loop lowering depend on. The
// peek/advance/match/check/expect primitive names follow the shape common
// to the pack's other hand-written recursive-descent front ends.
package parser

import (
	"fmt"

	"github.com/fl0k3n-style/ccx/ast"
	"github.com/fl0k3n-style/ccx/token"
)

// SyntaxError is raised for any unexpected token; the parser does not
// attempt recovery (SPEC_FULL.md §4.1 "Failure").
type SyntaxError struct {
	Line   int
	Column int
	Lexeme string
	Want   string
}

func (e *SyntaxError) Error() string {
	if e.Want != "" {
		return fmt.Sprintf("%d:%d: unexpected token %q, expected %s", e.Line, e.Column, e.Lexeme, e.Want)
	}
	return fmt.Sprintf("%d:%d: unexpected token %q", e.Line, e.Column, e.Lexeme)
}

// Parser consumes a token stream and produces an *ast.Program.
type Parser struct {
	toks    []token.Token
	pos     int
	aliases *ast.TypeAliasTable
}

// New creates a Parser over a complete token stream (terminated by a
// single token.EOF, as Tokenize produces).
func New(toks []token.Token) *Parser {
	return &Parser{toks: toks, aliases: ast.NewTypeAliasTable()}
}

// Parse runs the parser to completion and returns the resulting program.
func Parse(toks []token.Token) (*ast.Program, error) {
	return New(toks).ParseProgram()
}

// --- one-token-lookahead primitives ---

func (p *Parser) peek() token.Token {
	return p.toks[p.pos]
}

func (p *Parser) peekAt(offset int) token.Token {
	idx := p.pos + offset
	if idx >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[idx]
}

func (p *Parser) advance() token.Token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *Parser) check(k token.Kind) bool {
	return p.peek().Kind == k
}

// match consumes the current token and returns true if it is of kind k;
// otherwise it leaves the position untouched and returns false.
func (p *Parser) match(k token.Kind) bool {
	if p.check(k) {
		p.advance()
		return true
	}
	return false
}

// expect consumes the current token if it is of kind k, or raises a fatal
// SyntaxError naming what was expected.
func (p *Parser) expect(k token.Kind) (token.Token, error) {
	if p.check(k) {
		return p.advance(), nil
	}
	t := p.peek()
	return token.Token{}, &SyntaxError{Line: t.Line, Column: t.Column, Lexeme: t.String(), Want: k.String()}
}

func unexpected(t token.Token) error {
	return &SyntaxError{Line: t.Line, Column: t.Column, Lexeme: t.String()}
}

// ParseProgram parses the whole token stream: a sequence of typedef
// declarations (side-effecting the alias table, emitting no node) and
// function declarations, terminated by end-of-input.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	prog := &ast.Program{}
	for !p.check(token.EOF) {
		if p.check(token.KW_TYPEDEF) {
			if err := p.parseTypedef(); err != nil {
				return nil, err
			}
			continue
		}
		fn, err := p.parseFunctionDecl()
		if err != nil {
			return nil, err
		}
		prog.Functions = append(prog.Functions, fn)
	}
	return prog, nil
}

// parseTypedef consumes `typedef T new_name ;` and records new_name -> T
// in the alias table.
func (p *Parser) parseTypedef() error {
	p.advance() // 'typedef'
	dt, err := p.parseType()
	if err != nil {
		return err
	}
	nameTok, err := p.expect(token.IDENT)
	if err != nil {
		return err
	}
	p.match(token.SEMI)
	p.aliases.Define(nameTok.Lexeme, dt)
	return nil
}
