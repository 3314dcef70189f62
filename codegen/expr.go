package codegen

import (
	"strconv"

	"github.com/fl0k3n-style/ccx/ast"
	"github.com/fl0k3n-style/ccx/symtab"
)

// genExpr lowers e, leaving its result in rax — scalars directly, floats
// as the raw 64-bit bit pattern a caller reinterprets with movq — per the
// fixed accumulator scheme of SPEC_FULL.md §4.3.
func (g *Generator) genExpr(e ast.Expr) {
	switch v := e.(type) {
	case *ast.LiteralExpr:
		g.genLiteral(v)
	case *ast.IdentifierExpr:
		g.genIdentifier(v)
	case *ast.BinaryExpr:
		g.genBinary(v)
	case *ast.UnaryExpr:
		g.genUnary(v)
	case *ast.TernaryExpr:
		g.genTernary(v)
	case *ast.ArrayAccessExpr:
		g.genArrayAccess(v)
	case *ast.CallExpr:
		g.genCall(v)
	}
}

func (g *Generator) genLiteral(v *ast.LiteralExpr) {
	switch v.Kind {
	case ast.IntLiteral:
		g.buf.Inst("mov rax, %d", v.IntVal)
	case ast.FloatLiteral:
		label := g.buf.InternDouble(v.FltVal)
		g.buf.Inst("movsd %s, [rip+%s]", xmmLeft, label)
		g.buf.Inst("movq rax, %s", xmmLeft)
	case ast.StringLiteral:
		label := g.buf.InternString(v.StrVal)
		g.buf.Inst("lea rax, [rip+%s]", label)
	}
}

// genIdentifier loads the symbol's 8-byte slot into rax. A lookup miss —
// an identifier the semantic pass would have rejected — is treated as a
// silent no-op, per SPEC_FULL.md §7/§9's documented robustness gap: rax
// is left whatever it already held.
func (g *Generator) genIdentifier(v *ast.IdentifierExpr) {
	sym, ok := g.tab.Lookup(v.Name)
	if !ok {
		return
	}
	g.loadSlot(sym)
}

func (g *Generator) loadSlot(sym *symtab.Symbol) {
	g.buf.Inst("mov rax, [%s]", slotAddress(sym))
}

// slotAddress renders the `[rbp +/- N]` operand for sym's stack slot —
// positive offsets for parameters, negative (as a subtraction of the
// absolute value) for locals, per SPEC_FULL.md §4.3.
func slotAddress(sym *symtab.Symbol) string {
	if sym.IsParameter {
		return "rbp + " + strconv.Itoa(sym.Offset)
	}
	return "rbp - " + strconv.Itoa(-sym.Offset)
}

func (g *Generator) genBinary(v *ast.BinaryExpr) {
	if g.opts.FoldConstants {
		if result, ok := tryFoldInt(v); ok {
			g.buf.Inst("mov rax, %d", result)
			return
		}
	}

	switch v.Op {
	case "&&", "||":
		g.genShortCircuit(v)
		return
	}

	if v.Left.Meta().Type == ast.FLOAT || v.Right.Meta().Type == ast.FLOAT {
		g.genFloatBinary(v)
		return
	}

	g.genExpr(v.Left)
	g.buf.Inst("push rax")
	g.genExpr(v.Right)
	g.buf.Inst("mov %s, rax", regOperand)
	g.buf.Inst("pop rax")

	switch v.Op {
	case "+", "-", "*":
		g.buf.Inst("%s rax, %s", intBinOps[v.Op], regOperand)
	case "/":
		g.buf.Inst("cqo")
		g.buf.Inst("idiv %s", regOperand)
	case "%":
		g.buf.Inst("cqo")
		g.buf.Inst("idiv %s", regOperand)
		g.buf.Inst("mov rax, rdx")
	case "<", "<=", ">", ">=", "==", "!=":
		table := signedSetCC
		if v.Left.Meta().Type == ast.UINT {
			table = unsignedSetCC
		}
		g.buf.Inst("cmp rax, %s", regOperand)
		g.buf.Inst("%s %s", table[v.Op], regAccumLow)
		g.buf.Inst("movzx rax, %s", regAccumLow)
	}
}

// genShortCircuit evaluates both operands (already normalized 0/1 values
// from a comparison, per SPEC_FULL.md §4.3) and combines them with a
// bitwise and/or — no actual short-circuit skip is performed, matching
// the spec's literal instruction sequence for these two operators.
func (g *Generator) genShortCircuit(v *ast.BinaryExpr) {
	g.genExpr(v.Left)
	g.buf.Inst("push rax")
	g.genExpr(v.Right)
	g.buf.Inst("mov %s, rax", regOperand)
	g.buf.Inst("pop rax")
	if v.Op == "&&" {
		g.buf.Inst("and rax, %s", regOperand)
	} else {
		g.buf.Inst("or rax, %s", regOperand)
	}
}

func (g *Generator) genFloatBinary(v *ast.BinaryExpr) {
	g.genExpr(v.Left)
	g.buf.Inst("movq %s, rax", xmmLeft)
	g.genExpr(v.Right)
	g.buf.Inst("movq %s, rax", xmmRight)
	g.buf.Inst("%s %s, %s", floatBinOps[v.Op], xmmLeft, xmmRight)
	g.buf.Inst("movq rax, %s", xmmLeft)
}

func (g *Generator) genUnary(v *ast.UnaryExpr) {
	g.genExpr(v.Operand)
	switch v.Op {
	case "-":
		if v.Operand.Meta().Type == ast.FLOAT {
			g.buf.Inst("movq %s, rax", xmmLeft)
			g.buf.Inst("pxor %s, %s", xmmRight, xmmRight)
			g.buf.Inst("subsd %s, %s", xmmRight, xmmLeft)
			g.buf.Inst("movq rax, %s", xmmRight)
		} else {
			g.buf.Inst("neg rax")
		}
	case "!":
		g.buf.Inst("test rax, rax")
		g.buf.Inst("setz %s", regAccumLow)
		g.buf.Inst("movzx rax, %s", regAccumLow)
	}
}

func (g *Generator) genTernary(v *ast.TernaryExpr) {
	g.genExpr(v.Cond)
	falseLabel := g.buf.NewControlLabel()
	endLabel := g.buf.NewControlLabel()
	g.buf.Inst("test rax, rax")
	g.buf.Inst("jz %s", falseLabel)
	g.genExpr(v.TrueExpr)
	g.buf.Inst("jmp %s", endLabel)
	g.buf.Label(falseLabel)
	g.genExpr(v.FalseExpr)
	g.buf.Label(endLabel)
}

// genArrayAccess linearizes a multi-dimensional index by Horner-like
// unrolling over the declared dimension list, then loads the element at
// the computed address (SPEC_FULL.md §4.3).
func (g *Generator) genArrayAccess(v *ast.ArrayAccessExpr) {
	base, ok := v.Base.(*ast.IdentifierExpr)
	if !ok {
		return
	}
	sym, ok := g.tab.Lookup(base.Name)
	if !ok {
		return
	}

	g.buf.Inst("mov rax, 0")
	for i, idx := range v.Indices {
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
	g.buf.Inst("add rax, %s", regOperand)
	g.buf.Inst("mov rax, [rax]")
}

// trailingStride returns the product of dims[i+1:], skipping non-positive
// (unknown-length) entries, matching §4.3's
// `idx0*(d1*...*dn-1) + idx1*(d2*...*dn-1) + ...` linearization.
func trailingStride(dims []int, i int) int {
	stride := 1
	for j := i + 1; j < len(dims); j++ {
		if dims[j] > 0 {
			stride *= dims[j]
		}
	}
	return stride
}
