// Package frame computes the stack-frame size a function body requires,
// following exactly the declaration order the semantic analyzer and the
// code generator both walk (SPEC_FULL.md §4.2 step 3, §4.3 "Frame
// planning"). Both passes allocate offsets through the very same
// symtab.Table.AllocParam/AllocLocal primitives in this same structural
// order, which is what keeps their layouts from drifting apart — the risk
// SPEC_FULL.md §9 calls out by name.
package frame

import (
	"github.com/fl0k3n-style/ccx/ast"
	"github.com/fl0k3n-style/ccx/symtab"
)

// Plan walks fn's parameter list and body on a throwaway symbol table and
// returns the 16-byte-aligned frame size its locals require. The code
// generator calls this before emitting a function's prologue, since the
// `sub rsp, N` instruction must name the total size up front.
func Plan(fn *ast.FuncDecl) int {
	tab := symtab.NewTable()
	tab.ResetFrame()
	for i, prm := range fn.Params {
		tab.AllocParam(prm.Name, prm.Type, prm.Dimensions, i)
	}
	walkStmts(tab, fn.Body.Stmts)
	return tab.FrameSize()
}

func walkStmts(tab *symtab.Table, stmts []ast.Stmt) {
	for _, s := range stmts {
		walkStmt(tab, s)
	}
}

func walkStmt(tab *symtab.Table, s ast.Stmt) {
	switch v := s.(type) {
	case *ast.VarDeclStmt:
		tab.AllocLocal(v.Name, v.Type, v.Dimensions, v.Mutable)
	case *ast.BlockStmt:
		walkStmts(tab, v.Stmts)
	case *ast.IfStmt:
		walkStmt(tab, v.Then)
		if v.Else != nil {
			walkStmt(tab, v.Else)
		}
	case *ast.WhileStmt:
		walkStmt(tab, v.Body)
	case *ast.ForStmt:
		tab.AllocLocal(v.VarName, v.VarType, nil, true)
		walkStmt(tab, v.Body)
	}
}
