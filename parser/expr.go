package parser

import (
	"github.com/fl0k3n-style/ccx/ast"
	"github.com/fl0k3n-style/ccx/token"
)

// parseExpression is the entry point into the precedence-climbing
// expression grammar of SPEC_FULL.md §4.1, lowest precedence first.
func (p *Parser) parseExpression() (ast.Expr, error) {
	return p.parseTernary()
}

// parseTernary handles `cond ? a : b`, right-associative.
func (p *Parser) parseTernary() (ast.Expr, error) {
	cond, err := p.parseLogicalOr()
	if err != nil {
		return nil, err
	}
	if p.match(token.QUESTION) {
		line := cond.Meta().Line
		trueExpr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.COLON); err != nil {
			return nil, err
		}
		falseExpr, err := p.parseTernary()
		if err != nil {
			return nil, err
		}
		return &ast.TernaryExpr{
			ExprMeta:  ast.ExprMeta{Line: line},
			Cond:      cond,
			TrueExpr:  trueExpr,
			FalseExpr: falseExpr,
		}, nil
	}
	return cond, nil
}

func (p *Parser) binaryLevel(next func() (ast.Expr, error), ops map[token.Kind]string) (ast.Expr, error) {
	left, err := next()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := ops[p.peek().Kind]
		if !ok {
			return left, nil
		}
		line := p.advance().Line
		right, err := next()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{ExprMeta: ast.ExprMeta{Line: line}, Op: op, Left: left, Right: right}
	}
}

func (p *Parser) parseLogicalOr() (ast.Expr, error) {
	return p.binaryLevel(p.parseLogicalAnd, map[token.Kind]string{token.OR_OR: "||"})
}

func (p *Parser) parseLogicalAnd() (ast.Expr, error) {
	return p.binaryLevel(p.parseEquality, map[token.Kind]string{token.AND_AND: "&&"})
}

func (p *Parser) parseEquality() (ast.Expr, error) {
	return p.binaryLevel(p.parseRelational, map[token.Kind]string{token.EQ: "==", token.NEQ: "!="})
}

func (p *Parser) parseRelational() (ast.Expr, error) {
	return p.binaryLevel(p.parseAdditive, map[token.Kind]string{
		token.LT: "<", token.LE: "<=", token.GT: ">", token.GE: ">=",
	})
}

func (p *Parser) parseAdditive() (ast.Expr, error) {
	return p.binaryLevel(p.parseMultiplicative, map[token.Kind]string{token.PLUS: "+", token.MINUS: "-"})
}

func (p *Parser) parseMultiplicative() (ast.Expr, error) {
	return p.binaryLevel(p.parseUnary, map[token.Kind]string{
		token.STAR: "*", token.SLASH: "/", token.PERCENT: "%",
	})
}

func (p *Parser) parseUnary() (ast.Expr, error) {
	switch {
	case p.check(token.MINUS) || p.check(token.NOT):
		t := p.advance()
		op := "-"
		if t.Kind == token.NOT {
			op = "!"
		}
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{ExprMeta: ast.ExprMeta{Line: t.Line}, Op: op, Operand: operand}, nil
	default:
		return p.parsePostfix()
	}
}

// parsePostfix handles `[ expr ]` (possibly repeated, collapsed into one
// ArrayAccessExpr) and `( args )` — the latter recognized as a call only
// when the postfix base is a bare identifier, since this subset has no
// first-class function values.
func (p *Parser) parsePostfix() (ast.Expr, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	if ident, ok := base.(*ast.IdentifierExpr); ok && p.check(token.LPAREN) {
		return p.parseCall(ident)
	}

	for p.check(token.LBRACKET) {
		var indices []ast.Expr
		for p.match(token.LBRACKET) {
			idx, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.RBRACKET); err != nil {
				return nil, err
			}
			indices = append(indices, idx)
			if !p.check(token.LBRACKET) {
				break
			}
		}
		base = &ast.ArrayAccessExpr{ExprMeta: ast.ExprMeta{Line: base.Meta().Line}, Base: base, Indices: indices}
	}
	return base, nil
}

func (p *Parser) parseCall(callee *ast.IdentifierExpr) (ast.Expr, error) {
	p.advance() // '('
	var args []ast.Expr
	if !p.check(token.RPAREN) {
		for {
			arg, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return &ast.CallExpr{ExprMeta: ast.ExprMeta{Line: callee.Meta().Line}, Callee: callee.Name, Args: args}, nil
}

func (p *Parser) parsePrimary() (ast.Expr, error) {
	t := p.peek()
	switch t.Kind {
	case token.INT_LIT:
		p.advance()
		return &ast.LiteralExpr{ExprMeta: ast.ExprMeta{Type: ast.INT, Line: t.Line}, Kind: ast.IntLiteral, Text: t.Lexeme, IntVal: t.IntVal}, nil
	case token.FLOAT_LIT:
		p.advance()
		return &ast.LiteralExpr{ExprMeta: ast.ExprMeta{Type: ast.FLOAT, Line: t.Line}, Kind: ast.FloatLiteral, Text: t.Lexeme, FltVal: t.FloatVal}, nil
	case token.STRING_LIT:
		p.advance()
		return &ast.LiteralExpr{ExprMeta: ast.ExprMeta{Type: ast.STRING, Line: t.Line}, Kind: ast.StringLiteral, Text: t.Lexeme, StrVal: t.Lexeme}, nil
	case token.IDENT:
		p.advance()
		return &ast.IdentifierExpr{ExprMeta: ast.ExprMeta{Line: t.Line}, Name: t.Lexeme}, nil
	case token.LPAREN:
		p.advance()
		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return inner, nil
	default:
		return nil, unexpected(t)
	}
}
