// Package codegen walks a semantically analyzed ast.Program a second time
// and produces textual x86-64 assembly (SPEC_FULL.md §4.3). It uses its
// own fresh symtab.Table per function rather than the one the semantic
// pass built — the two-symbol-table duplication SPEC_FULL.md §9 names —
// but both passes allocate offsets through the identical symtab.Table
// primitives and the identical frame.Plan walk order, which is what keeps
// them from disagreeing (see DESIGN.md).
//
// Grounded on the teacher's codegen/generator.go for the overall shape of
// a Generator struct driving one generateFunction call per declaration
// (the teacher's own body was a near-empty stub deferring to a register
// allocator this subset doesn't need — replaced outright with the fixed
// accumulator scheme's real lowering).
package codegen

import (
	"github.com/fl0k3n-style/ccx/ast"
	"github.com/fl0k3n-style/ccx/emit"
	"github.com/fl0k3n-style/ccx/frame"
	"github.com/fl0k3n-style/ccx/symtab"
)

// Options toggles the two peephole optimizations; the zero value turns
// both off, while config.Default turns both on.
type Options struct {
	FoldConstants         bool
	EliminateDeadBranches bool
}

// Generator holds the per-compilation state: the emission buffer, the
// symbol table for the function currently being generated, and the
// optimization toggles.
type Generator struct {
	buf  *emit.Buffer
	tab  *symtab.Table
	opts Options

	currentReturnType ast.DataType
	funcReturnTypes   map[string]ast.DataType
}

// Generate lowers an entire program to assembly text.
func Generate(prog *ast.Program, opts Options) string {
	g := &Generator{
		buf:             emit.New(),
		opts:            opts,
		funcReturnTypes: make(map[string]ast.DataType),
	}
	g.funcReturnTypes["println"] = ast.VOID
	g.funcReturnTypes["printf"] = ast.INT
	for _, fn := range prog.Functions {
		g.funcReturnTypes[fn.Name] = fn.ReturnType
	}

	g.buf.Raw(".intel_syntax noprefix")
	g.buf.Raw(".text")
	g.buf.Raw(".global main")
	g.buf.Blank()

	for _, fn := range prog.Functions {
		g.generateFunction(fn)
		g.buf.Blank()
	}

	g.emitPrintIntHelper()

	return g.buf.Render()
}

// generateFunction plans the frame size with the shared frame.Plan
// helper, builds a fresh symtab.Table for this function, allocates
// parameters into it immediately (their offsets are needed the moment the
// body starts referencing them), emits the prologue, walks the body — the
// same structural order frame.Plan uses, so locals land at the offsets it
// already accounted for — and emits the epilogue at body end for void
// functions.
func (g *Generator) generateFunction(fn *ast.FuncDecl) {
	frameSize := frame.Plan(fn)

	g.tab = symtab.NewTable()
	g.tab.ResetFrame()
	for i, prm := range fn.Params {
		g.tab.AllocParam(prm.Name, prm.Type, prm.Dimensions, i)
	}
	g.currentReturnType = fn.ReturnType

	g.buf.Label(fn.Name)
	g.buf.Inst("push rbp")
	g.buf.Inst("mov rbp, rsp")
	if frameSize > 0 {
		g.buf.Inst("sub rsp, %d", frameSize)
	}

	g.genStmtList(fn.Body.Stmts)

	if fn.ReturnType == ast.VOID {
		g.emitEpilogue()
	}
}

// emitEpilogue emits the fixed three-instruction function exit sequence,
// used both at every `return` and, for a void function, unconditionally
// at body end.
func (g *Generator) emitEpilogue() {
	g.buf.Inst("mov rsp, rbp")
	g.buf.Inst("pop rbp")
	g.buf.Inst("ret")
}

// emitPrintIntHelper emits the trivial helper SPEC_FULL.md §4.3 requires
// in the output's fixed structure. println does not call it: genPrintln
// emits its own printf call with the same `%ld\n` format string. The
// helper is kept as a named, callable symbol for parity with the spec's
// described output shape and for direct use from hand-written test
// harnesses linking against the produced assembly.
func (g *Generator) emitPrintIntHelper() {
	g.buf.Label("print_int")
	g.buf.Inst("mov rsi, rdi")
	g.buf.Inst("lea rdi, [rip+.IFMT]")
	g.buf.Inst("xor eax, eax")
	g.buf.Inst("sub rsp, 8")
	g.buf.Inst("call printf")
	g.buf.Inst("add rsp, 8")
	g.buf.Inst("ret")
}
