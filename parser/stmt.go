package parser

import (
	"github.com/fl0k3n-style/ccx/ast"
	"github.com/fl0k3n-style/ccx/token"
)

// parseFunctionDecl parses `type ID ( paramList? ) block`.
func (p *Parser) parseFunctionDecl() (*ast.FuncDecl, error) {
	line := p.peek().Line
	retType, err := p.parseType()
	if err != nil {
		return nil, err
	}
	nameTok, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	params, err := p.parseParamList()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.FuncDecl{Name: nameTok.Lexeme, Params: params, ReturnType: retType, Body: body, Line: line}, nil
}

// parseParamList parses a comma-separated list of `type ID ([NUM]|[])*`
// parameters.
func (p *Parser) parseParamList() ([]ast.Param, error) {
	var params []ast.Param
	if p.check(token.RPAREN) {
		return params, nil
	}
	for {
		pt, err := p.parseType()
		if err != nil {
			return nil, err
		}
		nameTok, err := p.expect(token.IDENT)
		if err != nil {
			return nil, err
		}
		dims, err := p.parseDimensions()
		if err != nil {
			return nil, err
		}
		params = append(params, ast.Param{Name: nameTok.Lexeme, Type: pt, Dimensions: dims})
		if !p.match(token.COMMA) {
			break
		}
	}
	return params, nil
}

// parseBlock parses `{ stmt* }`.
func (p *Parser) parseBlock() (*ast.BlockStmt, error) {
	openTok, err := p.expect(token.LBRACE)
	if err != nil {
		return nil, err
	}
	block := &ast.BlockStmt{StmtMeta: ast.StmtMeta{Line: openTok.Line}}
	for !p.check(token.RBRACE) && !p.check(token.EOF) {
		if err := p.parseStatementInto(&block.Stmts); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.RBRACE); err != nil {
		return nil, err
	}
	return block, nil
}

// parseStatementInto parses one source statement and appends the one or
// more ast.Stmt nodes it produces to list. A declaration line with several
// comma-separated declarators (`int x=10, y=5;`) produces one VarDeclStmt
// per declarator.
func (p *Parser) parseStatementInto(list *[]ast.Stmt) error {
	if p.startsType() {
		decls, err := p.parseVarDeclGroup()
		if err != nil {
			return err
		}
		*list = append(*list, decls...)
		return nil
	}
	stmt, err := p.parseStatement()
	if err != nil {
		return err
	}
	*list = append(*list, stmt)
	return nil
}

// parseVarDeclGroup parses `type ID ([NUM])* (= expr)? (, ID ([NUM])* (= expr)?)* ;?`.
func (p *Parser) parseVarDeclGroup() ([]ast.Stmt, error) {
	line := p.peek().Line
	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	var decls []ast.Stmt
	for {
		nameTok, err := p.expect(token.IDENT)
		if err != nil {
			return nil, err
		}
		dims, err := p.parseDimensions()
		if err != nil {
			return nil, err
		}
		var init ast.Expr
		if p.match(token.ASSIGN) {
			init, err = p.parseExpression()
			if err != nil {
				return nil, err
			}
		}
		decls = append(decls, &ast.VarDeclStmt{
			StmtMeta:   ast.StmtMeta{Line: line},
			Mutable:    true,
			Name:       nameTok.Lexeme,
			Type:       typ,
			Init:       init,
			Dimensions: dims,
		})
		if !p.match(token.COMMA) {
			break
		}
	}
	p.match(token.SEMI)
	return decls, nil
}

// parseStatement parses a single non-declaration statement.
func (p *Parser) parseStatement() (ast.Stmt, error) {
	switch {
	case p.check(token.KW_IF):
		return p.parseIf()
	case p.check(token.KW_WHILE):
		return p.parseWhile()
	case p.check(token.KW_FOR):
		return p.parseFor()
	case p.check(token.LBRACE):
		return p.parseBlock()
	case p.check(token.KW_RETURN):
		return p.parseReturn()
	default:
		return p.parseExprOrAssignStatement()
	}
}

func (p *Parser) parseIf() (ast.Stmt, error) {
	line := p.advance().Line // 'if'
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	then, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	var elseStmt ast.Stmt
	if p.match(token.KW_ELSE) {
		elseStmt, err = p.parseStatement()
		if err != nil {
			return nil, err
		}
	}
	return &ast.IfStmt{StmtMeta: ast.StmtMeta{Line: line}, Cond: cond, Then: then, Else: elseStmt}, nil
}

func (p *Parser) parseWhile() (ast.Stmt, error) {
	line := p.advance().Line // 'while'
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return &ast.WhileStmt{StmtMeta: ast.StmtMeta{Line: line}, Cond: cond, Body: body}, nil
}

// parseFor recognizes `for (type v = E0 ; Ec ; Einc) S` and lowers it at
// parse time into the counted construct SPEC_FULL.md §4.1 describes: Eend
// is the right operand of Ec when Ec is `v < Eend` or `v <= Eend`, and
// defaults to the literal 10 for any other condition shape — a documented
// limitation, not a bug. The increment expression is scanned through and
// discarded; the lowered form implies unit step.
func (p *Parser) parseFor() (ast.Stmt, error) {
	line := p.advance().Line // 'for'
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	varType, err := p.parseType()
	if err != nil {
		return nil, err
	}
	nameTok, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.ASSIGN); err != nil {
		return nil, err
	}
	start, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMI); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMI); err != nil {
		return nil, err
	}
	if err := p.skipIncrementExpression(); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}

	end := extractLoopBound(cond, nameTok.Lexeme)
	return &ast.ForStmt{
		StmtMeta: ast.StmtMeta{Line: line},
		VarName:  nameTok.Lexeme,
		VarType:  varType,
		Start:    start,
		End:      end,
		Body:     body,
	}, nil
}

// extractLoopBound implements the Eend extraction rule: the right operand
// of `v < Eend` or `v <= Eend` becomes the (always-exclusive) upper bound;
// any other shape defaults to the literal 10.
func extractLoopBound(cond ast.Expr, varName string) ast.Expr {
	if bin, ok := cond.(*ast.BinaryExpr); ok && (bin.Op == "<" || bin.Op == "<=") {
		if id, ok := bin.Left.(*ast.IdentifierExpr); ok && id.Name == varName {
			return bin.Right
		}
	}
	return &ast.LiteralExpr{ExprMeta: ast.ExprMeta{Type: ast.INT, Line: cond.Meta().Line}, Kind: ast.IntLiteral, Text: "10", IntVal: 10}
}

// skipIncrementExpression consumes tokens up to (but not including) the
// closing ')' of the for-header, tracking nested parens so a parenthesized
// increment expression doesn't terminate early. The increment is never
// evaluated — SPEC_FULL.md §4.1/§9 document this as parsed-through only.
func (p *Parser) skipIncrementExpression() error {
	depth := 0
	for {
		t := p.peek()
		if t.Kind == token.EOF {
			return unexpected(t)
		}
		if depth == 0 && t.Kind == token.RPAREN {
			return nil
		}
		if t.Kind == token.LPAREN {
			depth++
		} else if t.Kind == token.RPAREN {
			depth--
		}
		p.advance()
	}
}

func (p *Parser) parseReturn() (ast.Stmt, error) {
	line := p.advance().Line // 'return'
	var value ast.Expr
	if !p.check(token.SEMI) && !p.check(token.RBRACE) {
		var err error
		value, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	p.match(token.SEMI)
	return &ast.ReturnStmt{StmtMeta: ast.StmtMeta{Line: line}, Value: value}, nil
}

// parseExprOrAssignStatement parses an expression; if `=` follows, it
// becomes an assignment, otherwise a bare expression statement. The
// trailing `;` is optional, per SPEC_FULL.md §4.1.
func (p *Parser) parseExprOrAssignStatement() (ast.Stmt, error) {
	line := p.peek().Line
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if p.match(token.ASSIGN) {
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		p.match(token.SEMI)
		return &ast.AssignStmt{StmtMeta: ast.StmtMeta{Line: line}, Target: expr, Value: value}, nil
	}
	p.match(token.SEMI)
	return &ast.ExprStmt{StmtMeta: ast.StmtMeta{Line: line}, X: expr}, nil
}
