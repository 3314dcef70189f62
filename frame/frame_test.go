package frame

import (
	"testing"

	"github.com/fl0k3n-style/ccx/ast"
)

func TestPlanFlatLocals(t *testing.T) {
	fn := &ast.FuncDecl{
		Name: "f",
		Body: &ast.BlockStmt{Stmts: []ast.Stmt{
			&ast.VarDeclStmt{Name: "a", Type: ast.INT, Mutable: true},
			&ast.VarDeclStmt{Name: "b", Type: ast.LONG, Mutable: true},
		}},
	}
	if got := Plan(fn); got != 16 {
		t.Errorf("Plan() = %d; want 16 (two 8-byte locals)", got)
	}
}

func TestPlanDescendsIntoNestedBlocksAndBranches(t *testing.T) {
	fn := &ast.FuncDecl{
		Name: "f",
		Body: &ast.BlockStmt{Stmts: []ast.Stmt{
			&ast.IfStmt{
				Then: &ast.BlockStmt{Stmts: []ast.Stmt{
					&ast.VarDeclStmt{Name: "a", Type: ast.INT, Mutable: true},
				}},
				Else: &ast.BlockStmt{Stmts: []ast.Stmt{
					&ast.VarDeclStmt{Name: "b", Type: ast.INT, Mutable: true},
				}},
			},
			&ast.WhileStmt{
				Body: &ast.BlockStmt{Stmts: []ast.Stmt{
					&ast.VarDeclStmt{Name: "c", Type: ast.INT, Mutable: true},
				}},
			},
		}},
	}
	// a, b, c: three locals planned across both if-branches and the while body.
	if got := Plan(fn); got != 32 {
		t.Errorf("Plan() = %d; want 32 (three 8-byte locals rounded up)", got)
	}
}

func TestPlanCountsForLoopVariable(t *testing.T) {
	fn := &ast.FuncDecl{
		Name: "f",
		Body: &ast.BlockStmt{Stmts: []ast.Stmt{
			&ast.ForStmt{
				VarName: "i",
				VarType: ast.INT,
				Body:    &ast.BlockStmt{},
			},
		}},
	}
	if got := Plan(fn); got != 16 {
		t.Errorf("Plan() = %d; want 16 (one local rounded up to 16)", got)
	}
}

func TestPlanIncludesParamsInFrameButNotInSize(t *testing.T) {
	// Parameters occupy positive offsets and never contribute to the
	// negative-offset frame size the `sub rsp, N` prologue needs.
	fn := &ast.FuncDecl{
		Name:   "f",
		Params: []ast.Param{{Name: "x", Type: ast.INT}, {Name: "y", Type: ast.INT}},
		Body:   &ast.BlockStmt{},
	}
	if got := Plan(fn); got != 0 {
		t.Errorf("Plan() with only parameters = %d; want 0", got)
	}
}
