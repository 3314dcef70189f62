package codegen

import "github.com/fl0k3n-style/ccx/ast"

func (g *Generator) genStmtList(stmts []ast.Stmt) {
	for _, s := range stmts {
		g.genStmt(s)
	}
}

func (g *Generator) genStmt(s ast.Stmt) {
	switch v := s.(type) {
	case *ast.VarDeclStmt:
		g.genVarDecl(v)
	case *ast.AssignStmt:
		g.genAssign(v)
	case *ast.ExprStmt:
		g.genExpr(v.X)
	case *ast.IfStmt:
		g.genIf(v)
	case *ast.WhileStmt:
		g.genWhile(v)
	case *ast.ForStmt:
		g.genFor(v)
	case *ast.BlockStmt:
		g.tab.EnterScope()
		g.genStmtList(v.Stmts)
		g.tab.LeaveScope()
	case *ast.ReturnStmt:
		g.genReturn(v)
	}
}

// genVarDecl allocates the declared variable's slot in this pass's own
// symbol table — the same AllocLocal call frame.Plan already made during
// sizing, reproduced here in the identical structural order so the
// offset matches — then, if an initializer is present, evaluates it,
// converts it to the declared type, and stores it.
func (g *Generator) genVarDecl(v *ast.VarDeclStmt) {
	sym := g.tab.AllocLocal(v.Name, v.Type, v.Dimensions, v.Mutable)
	if v.Init == nil {
		return
	}
	g.genExpr(v.Init)
	g.convert(v.Init.Meta().Type, v.Type)
	g.buf.Inst("mov [%s], rax", slotAddress(sym))
}

// convert emits the numeric conversion instructions needed to turn a
// value of type from already sitting in rax into the bit pattern type to
// expects, per SPEC_FULL.md §4.3's `cvtsi2sd`/`cvttsd2si`/`cdqe` mention.
func (g *Generator) convert(from, to ast.DataType) {
	if from == to {
		return
	}
	switch {
	case to == ast.FLOAT && from != ast.FLOAT:
		g.buf.Inst("cvtsi2sd %s, rax", xmmLeft)
		g.buf.Inst("movq rax, %s", xmmLeft)
	case to != ast.FLOAT && from == ast.FLOAT:
		g.buf.Inst("movq %s, rax", xmmLeft)
		g.buf.Inst("cvttsd2si rax, %s", xmmLeft)
	case to == ast.LONG && (from == ast.INT || from == ast.UINT):
		g.buf.Inst("cdqe")
	}
}

func (g *Generator) genAssign(v *ast.AssignStmt) {
	g.genExpr(v.Value)
	g.convert(v.Value.Meta().Type, v.Target.Meta().Type)
	g.buf.Inst("push rax")

	switch target := v.Target.(type) {
	case *ast.IdentifierExpr:
		sym, ok := g.tab.Lookup(target.Name)
		if !ok {
			g.buf.Inst("pop rax")
			return
		}
		g.buf.Inst("pop rax")
		g.buf.Inst("mov [%s], rax", slotAddress(sym))
	case *ast.ArrayAccessExpr:
		g.genArrayAddress(target)
		g.buf.Inst("pop rax")
		g.buf.Inst("mov [%s], rax", regOperand)
	}
}

// genArrayAddress computes target's effective element address into rbx,
// mirroring genArrayAccess's linearization but stopping before the final
// load, since the caller needs the address to store into, not the value.
func (g *Generator) genArrayAddress(target *ast.ArrayAccessExpr) {
	base, ok := target.Base.(*ast.IdentifierExpr)
	if !ok {
		return
	}
	sym, ok := g.tab.Lookup(base.Name)
	if !ok {
		return
	}
	g.buf.Inst("mov rax, 0")
	for i, idx := range target.Indices {
		g.genExpr(idx)
		stride := trailingStride(sym.Dimensions, i)
		if stride != 1 {
			g.buf.Inst("imul rax, %d", stride)
		}
		if i == 0 {
			g.buf.Inst("mov %s, rax", regOperand)
		} else {
			g.buf.Inst("add %s, rax", regOperand)
		}
	}
	g.buf.Inst("mov rax, %s", regOperand)
	g.buf.Inst("imul rax, 8")
	if sym.IsParameter {
		g.buf.Inst("mov %s, [%s]", regOperand, slotAddress(sym))
	} else {
		g.buf.Inst("lea %s, [%s]", regOperand, slotAddress(sym))
	}
	g.buf.Inst("add %s, rax", regOperand)
}

// genIf implements dead-code elimination (SPEC_FULL.md §4.3, testable
// property 7) when the condition is an integer literal: only the taken
// branch's code is emitted. Otherwise it emits the full test/jump
// sequence.
func (g *Generator) genIf(v *ast.IfStmt) {
	if g.opts.EliminateDeadBranches {
		if isLit, isZero := literalIsZero(v.Cond); isLit {
			if isZero {
				if v.Else != nil {
					g.genStmt(v.Else)
				}
			} else {
				g.genStmt(v.Then)
			}
			return
		}
	}

	g.genExpr(v.Cond)
	endLabel := g.buf.NewControlLabel()
	if v.Else == nil {
		g.buf.Inst("test rax, rax")
		g.buf.Inst("jz %s", endLabel)
		g.genStmt(v.Then)
		g.buf.Label(endLabel)
		return
	}

	elseLabel := g.buf.NewControlLabel()
	g.buf.Inst("test rax, rax")
	g.buf.Inst("jz %s", elseLabel)
	g.genStmt(v.Then)
	g.buf.Inst("jmp %s", endLabel)
	g.buf.Label(elseLabel)
	g.genStmt(v.Else)
	g.buf.Label(endLabel)
}

func (g *Generator) genWhile(v *ast.WhileStmt) {
	startLabel := g.buf.NewControlLabel()
	endLabel := g.buf.NewControlLabel()
	g.buf.Label(startLabel)
	g.genExpr(v.Cond)
	g.buf.Inst("test rax, rax")
	g.buf.Inst("jz %s", endLabel)
	g.genStmt(v.Body)
	g.buf.Inst("jmp %s", startLabel)
	g.buf.Label(endLabel)
}

// genFor lowers the counted loop the parser already reduced a `for`
// header to: store the start value, then on every iteration re-evaluate
// the end expression (not hoisted, per SPEC_FULL.md §9), compare against
// the loop variable with an exclusive upper bound, run the body, and
// increment.
func (g *Generator) genFor(v *ast.ForStmt) {
	g.tab.EnterScope()
	defer g.tab.LeaveScope()
	sym := g.tab.AllocLocal(v.VarName, v.VarType, nil, true)
	g.genExpr(v.Start)
	g.buf.Inst("mov [%s], rax", slotAddress(sym))

	startLabel := g.buf.NewControlLabel()
	endLabel := g.buf.NewControlLabel()
	g.buf.Label(startLabel)
	g.buf.Inst("mov rax, [%s]", slotAddress(sym))
	g.buf.Inst("push rax")
	g.genExpr(v.End)
	g.buf.Inst("mov %s, rax", regOperand)
	g.buf.Inst("pop rax")
	g.buf.Inst("cmp %s, rax", regOperand)
	g.buf.Inst("jle %s", endLabel)

	g.genStmt(v.Body)

	g.buf.Inst("mov rax, [%s]", slotAddress(sym))
	g.buf.Inst("inc rax")
	g.buf.Inst("mov [%s], rax", slotAddress(sym))
	g.buf.Inst("jmp %s", startLabel)
	g.buf.Label(endLabel)
}

func (g *Generator) genReturn(v *ast.ReturnStmt) {
	if v.Value != nil {
		g.genExpr(v.Value)
		g.convert(v.Value.Meta().Type, g.currentReturnType)
	}
	g.emitEpilogue()
}
