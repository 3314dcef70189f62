// Package semantics implements the single pre-order AST walk that binds
// names, resolves expression types, checks operator/call compatibility,
// plans stack-frame layout, and enforces scoping rules — SPEC_FULL.md
// §4.2.
//
// Grounded on the teacher's semantics/analyzer.go (an analyzer struct
// holding a symbol table and an error tracker, walking the AST once) and
// semantics/errortracker.go (accumulate-then-report), both narrowed from
// C's full type system down to this subset's closed DataType set.
package semantics

import (
	"errors"

	"github.com/fl0k3n-style/ccx/ast"
	"github.com/fl0k3n-style/ccx/symtab"
	"github.com/fl0k3n-style/ccx/utils"
)

// Analyzer performs the single semantic pass.
type Analyzer struct {
	tab           *symtab.Table
	errs          *ErrorTracker
	currentReturn ast.DataType
}

// NewAnalyzer creates an Analyzer with builtins pre-registered. Builtin
// registration is idempotent: a fresh Analyzer always starts from the same
// state, so re-running it across compilations in a test process is safe
// (SPEC_FULL.md §9 "Builtin function registration").
func NewAnalyzer() *Analyzer {
	a := &Analyzer{
		tab:  symtab.NewTable(),
		errs: NewErrorTracker(),
	}
	a.registerBuiltins()
	return a
}

// registerBuiltins declares `println(INT) -> VOID` and
// `printf(STRING, INT, ...) -> INT`, the latter flagged variadic, which
// exempts it from arity checking and from type-checking any argument past
// the format string (SPEC_FULL.md §4.2 "Builtin declarations").
func (a *Analyzer) registerBuiltins() {
	a.tab.DefineFunction(&symtab.FunctionSymbol{
		Name:       "println",
		ReturnType: ast.VOID,
		ParamTypes: []ast.DataType{ast.INT},
		ParamNames: []string{"value"},
	})
	a.tab.DefineFunction(&symtab.FunctionSymbol{
		Name:       "printf",
		ReturnType: ast.INT,
		ParamTypes: []ast.DataType{ast.STRING, ast.INT},
		ParamNames: []string{"format", "arg0"},
		Variadic:   true,
	})
}

// Analyze runs the pass over an entire program and returns an error
// summarizing every accumulated diagnostic if any occurred; code
// generation must not proceed when this returns non-nil
// (SPEC_FULL.md §5).
func Analyze(prog *ast.Program) (*ErrorTracker, error) {
	a := NewAnalyzer()
	a.analyzeProgram(prog)
	if a.errs.HasErrors() {
		return a.errs, errors.New("semantic analysis failed")
	}
	return a.errs, nil
}

// analyzeProgram pre-registers every function signature in one pass, so
// later bodies can call functions declared further down the file or
// recurse, then analyzes each body in a second pass. seen guards against
// two functions (or a function and a builtin) sharing a name, since
// DefineFunction itself silently overwrites rather than reporting a
// collision.
func (a *Analyzer) analyzeProgram(prog *ast.Program) {
	foundMain := false
	seen := utils.NewSet[string]()
	seen.Add("println")
	seen.Add("printf")
	registered := make([]bool, len(prog.Functions))
	for i, fn := range prog.Functions {
		if fn.Name == "main" {
			foundMain = true
		}
		if seen.Has(fn.Name) {
			a.errs.Errorf(fn.Line, "'%s' is already declared", fn.Name)
			continue
		}
		seen.Add(fn.Name)
		registered[i] = true
		a.tab.DefineFunction(&symtab.FunctionSymbol{
			Name:       fn.Name,
			ReturnType: fn.ReturnType,
			ParamTypes: paramTypes(fn.Params),
			ParamNames: paramNames(fn.Params),
		})
	}
	if !foundMain {
		a.errs.Errorf(0, "program is missing a 'main' function")
	}
	for i, fn := range prog.Functions {
		if !registered[i] {
			continue
		}
		a.analyzeFunction(fn)
	}
}

func paramTypes(params []ast.Param) []ast.DataType {
	out := make([]ast.DataType, len(params))
	for i, p := range params {
		out[i] = p.Type
	}
	return out
}

func paramNames(params []ast.Param) []string {
	out := make([]string, len(params))
	for i, p := range params {
		out[i] = p.Name
	}
	return out
}

// analyzeFunction implements the frame-layout steps of SPEC_FULL.md §4.2:
// reset the offset allocator, assign each parameter a positive offset
// starting at +16, then traverse the body assigning each declared local
// the next negative offset.
func (a *Analyzer) analyzeFunction(fn *ast.FuncDecl) {
	prevReturn := a.currentReturn
	a.currentReturn = fn.ReturnType
	defer func() { a.currentReturn = prevReturn }()

	a.tab.ResetFrame()
	a.tab.EnterScope()
	paramNamesSet := utils.NewSet[string]()
	for i, prm := range fn.Params {
		if paramNamesSet.Has(prm.Name) {
			a.errs.Errorf(fn.Line, "duplicate parameter name '%s' in '%s'", prm.Name, fn.Name)
			continue
		}
		paramNamesSet.Add(prm.Name)
		a.tab.AllocParam(prm.Name, prm.Type, prm.Dimensions, i)
	}
	a.analyzeStmtList(fn.Body.Stmts)
	a.tab.LeaveScope()
}

func (a *Analyzer) analyzeStmtList(stmts []ast.Stmt) {
	for _, s := range stmts {
		a.analyzeStmt(s)
	}
}

func (a *Analyzer) analyzeStmt(s ast.Stmt) {
	switch v := s.(type) {
	case *ast.VarDeclStmt:
		a.analyzeVarDecl(v)
	case *ast.AssignStmt:
		a.analyzeAssign(v)
	case *ast.ExprStmt:
		a.analyzeExpr(v.X)
	case *ast.IfStmt:
		a.analyzeIf(v)
	case *ast.WhileStmt:
		a.analyzeWhile(v)
	case *ast.ForStmt:
		a.analyzeFor(v)
	case *ast.BlockStmt:
		a.tab.EnterScope()
		a.analyzeStmtList(v.Stmts)
		a.tab.LeaveScope()
	case *ast.ReturnStmt:
		a.analyzeReturn(v)
	}
}

func (a *Analyzer) analyzeVarDecl(v *ast.VarDeclStmt) {
	var initType ast.DataType = ast.UNKNOWN
	if v.Init != nil {
		initType = a.analyzeExpr(v.Init)
		if initType != ast.UNKNOWN && !Compatible(v.Type, initType) {
			a.errs.Errorf(v.Line, "cannot initialize %s with value of type %s", v.Type, initType)
		}
	}
	if a.tab.DefinedInScope(v.Name) {
		a.errs.Errorf(v.Line, "'%s' is already declared in this scope", v.Name)
	}
	a.tab.AllocLocal(v.Name, v.Type, v.Dimensions, v.Mutable)
}

func (a *Analyzer) analyzeAssign(v *ast.AssignStmt) {
	targetType := a.analyzeExpr(v.Target)
	valueType := a.analyzeExpr(v.Value)
	if !exprIsLValue(v.Target) {
		a.errs.Errorf(v.Line, "assignment target is not an lvalue")
		return
	}
	if targetType != ast.UNKNOWN && valueType != ast.UNKNOWN && !Compatible(targetType, valueType) {
		a.errs.Errorf(v.Line, "cannot assign value of type %s to target of type %s", valueType, targetType)
	}
}

func exprIsLValue(e ast.Expr) bool {
	switch e.(type) {
	case *ast.IdentifierExpr, *ast.ArrayAccessExpr:
		return true
	default:
		return false
	}
}

func (a *Analyzer) analyzeIf(v *ast.IfStmt) {
	a.analyzeExpr(v.Cond)
	a.analyzeStmt(v.Then)
	if v.Else != nil {
		a.analyzeStmt(v.Else)
	}
}

func (a *Analyzer) analyzeWhile(v *ast.WhileStmt) {
	a.analyzeExpr(v.Cond)
	a.analyzeStmt(v.Body)
}

func (a *Analyzer) analyzeFor(v *ast.ForStmt) {
	a.tab.EnterScope()
	startType := a.analyzeExpr(v.Start)
	if startType != ast.UNKNOWN && !Compatible(v.VarType, startType) {
		a.errs.Errorf(v.Line, "cannot initialize loop variable of type %s with value of type %s", v.VarType, startType)
	}
	if a.tab.DefinedInScope(v.VarName) {
		a.errs.Errorf(v.Line, "'%s' is already declared in this scope", v.VarName)
	}
	a.tab.AllocLocal(v.VarName, v.VarType, nil, true)
	a.analyzeExpr(v.End)
	a.analyzeStmt(v.Body)
	a.tab.LeaveScope()
}

func (a *Analyzer) analyzeReturn(v *ast.ReturnStmt) {
	if a.currentReturn == ast.VOID {
		if v.Value != nil {
			a.errs.Errorf(v.Line, "function returning void cannot return a value")
		}
		return
	}
	if v.Value == nil {
		a.errs.Errorf(v.Line, "function must return a value of type %s", a.currentReturn)
		return
	}
	valType := a.analyzeExpr(v.Value)
	if valType != ast.UNKNOWN && !Compatible(a.currentReturn, valType) {
		a.errs.Errorf(v.Line, "cannot return value of type %s from function declared to return %s", valType, a.currentReturn)
	}
}
