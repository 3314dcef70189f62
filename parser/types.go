package parser

import "github.com/fl0k3n-style/ccx/ast"
import "github.com/fl0k3n-style/ccx/token"

// startsType reports whether the current token begins a type: an optional
// `unsigned` qualifier, a builtin type keyword, or a registered typedef
// alias. Consulting the alias table here is what resolves the classic
// typedef ambiguity locally and deterministically (SPEC_FULL.md §4.1).
func (p *Parser) startsType() bool {
	t := p.peek()
	switch t.Kind {
	case token.KW_UNSIGNED, token.KW_INT, token.KW_LONG, token.KW_FLOAT, token.KW_VOID:
		return true
	case token.IDENT:
		return p.aliases.IsAlias(t.Lexeme)
	default:
		return false
	}
}

// parseType consumes an optional `unsigned` qualifier followed by one of
// int/long/float/void or a registered alias, and yields the resulting
// DataType per SPEC_FULL.md §4.1's promotion table: `unsigned int` and bare
// `unsigned` both become UINT; `unsigned long` is flattened to UINT in this
// subset (SPEC_FULL.md §9).
func (p *Parser) parseType() (ast.DataType, error) {
	unsigned := p.match(token.KW_UNSIGNED)

	switch {
	case p.match(token.KW_INT):
		if unsigned {
			return ast.UINT, nil
		}
		return ast.INT, nil
	case p.match(token.KW_LONG):
		if unsigned {
			return ast.UINT, nil
		}
		return ast.LONG, nil
	case p.match(token.KW_FLOAT):
		return ast.FLOAT, nil
	case p.match(token.KW_VOID):
		return ast.VOID, nil
	case p.check(token.IDENT) && p.aliases.IsAlias(p.peek().Lexeme):
		name := p.advance().Lexeme
		dt, _ := p.aliases.Resolve(name)
		return dt, nil
	}

	if unsigned {
		return ast.UINT, nil
	}
	t := p.peek()
	return ast.UNKNOWN, unexpected(t)
}

// parseDimensions consumes zero or more `[ NUM? ]` suffixes, recording a
// concrete length for `[ NUM ]` and -1 for the unknown-length `[ ]` form
// (array parameters decaying to a pointer-like reference).
func (p *Parser) parseDimensions() ([]int, error) {
	var dims []int
	for p.check(token.LBRACKET) {
		p.advance()
		if p.check(token.INT_LIT) {
			dims = append(dims, int(p.advance().IntVal))
		} else {
			dims = append(dims, -1)
		}
		if _, err := p.expect(token.RBRACKET); err != nil {
			return nil, err
		}
	}
	return dims, nil
}
