package codegen

import "github.com/fl0k3n-style/ccx/ast"

// genCall dispatches to the three call shapes SPEC_FULL.md §4.3
// distinguishes: the println builtin, the variadic printf builtin, and a
// user-declared function using the stack-push calling convention.
func (g *Generator) genCall(v *ast.CallExpr) {
	switch v.Callee {
	case "println":
		g.genPrintln(v)
	case "printf":
		g.genPrintf(v)
	default:
		g.genUserCall(v)
	}
}

func (g *Generator) genPrintln(v *ast.CallExpr) {
	if len(v.Args) != 1 {
		return
	}
	g.genExpr(v.Args[0])
	g.buf.Inst("mov rsi, rax")
	g.buf.Inst("lea rdi, [rip+.IFMT]")
	g.buf.Inst("xor eax, eax")
	g.buf.Inst("sub rsp, 8")
	g.buf.Inst("call printf")
	g.buf.Inst("add rsp, 8")
}

// genPrintf special-cases the variadic printf builtin per SPEC_FULL.md
// §4.3: when any non-format argument is FLOAT, the format loads to rdi,
// the first such float argument loads to xmm0, and eax is set to 1 (one
// XMM register used); the remaining non-format arguments are not passed.
// Otherwise every argument evaluates left-to-right,
// pushes to the stack, and is popped into the integer argument registers
// in order, with eax set to 0. Neither shape touches rsp beyond its own
// balanced pushes/pops: the float shape pushes nothing at all, and the
// non-float shape's push loop is always matched by an equal number of
// pops before `call`, so rsp is already wherever the caller left it.
func (g *Generator) genPrintf(v *ast.CallExpr) {
	if len(v.Args) == 0 {
		return
	}
	floatIdx := -1
	for i := 1; i < len(v.Args); i++ {
		if v.Args[i].Meta().Type == ast.FLOAT {
			floatIdx = i
			break
		}
	}

	g.genExpr(v.Args[0])
	g.buf.Inst("mov rdi, rax")

	if floatIdx >= 0 {
		g.genExpr(v.Args[floatIdx])
		g.buf.Inst("movq %s, rax", xmmLeft)
		g.buf.Inst("mov eax, 1")
		g.buf.Inst("call printf")
		return
	}

	fmtReg := "rdi"
	g.buf.Inst("push %s", fmtReg)
	for i := 1; i < len(v.Args); i++ {
		g.genExpr(v.Args[i])
		g.buf.Inst("push rax")
	}
	for i := len(v.Args) - 1; i >= 1; i-- {
		g.buf.Inst("pop %s", argRegs[i])
	}
	g.buf.Inst("pop rdi")
	g.buf.Inst("mov eax, 0")
	g.buf.Inst("call printf")
}

// genUserCall implements the stack-push convention SPEC_FULL.md §4.3
// names as primary: arguments evaluate right-to-left and push onto the
// stack so the callee's frame reads them starting at +16 in left-to-right
// order, matching symtab.AllocParam's offset assignment; the call site
// pads with an extra 8 bytes when the slot count is odd, to keep rsp
// 16-byte aligned at the `call` instruction.
func (g *Generator) genUserCall(v *ast.CallExpr) {
	n := len(v.Args)
	padded := n%2 == 1
	if padded {
		g.buf.Inst("sub rsp, 8")
	}
	for i := n - 1; i >= 0; i-- {
		g.genExpr(v.Args[i])
		g.buf.Inst("push rax")
	}
	g.buf.Inst("call %s", v.Callee)
	total := n * 8
	if padded {
		total += 8
	}
	if total > 0 {
		g.buf.Inst("add rsp, %d", total)
	}
}
