package semantics

import (
	"github.com/fl0k3n-style/ccx/ast"
	"github.com/fl0k3n-style/ccx/utils"
)

// analyzeExpr resolves e's type, stamps it (and, for lvalues, IsLValue)
// into e's ExprMeta, and returns the resolved type so callers higher in
// the walk (var decls, assignments, returns, calls) can type-check against
// it without re-deriving it. ast.UNKNOWN is returned after an error has
// already been recorded, which suppresses cascading diagnostics at call
// sites that check against ast.UNKNOWN before comparing.
func (a *Analyzer) analyzeExpr(e ast.Expr) ast.DataType {
	switch v := e.(type) {
	case *ast.LiteralExpr:
		return a.analyzeLiteral(v)
	case *ast.IdentifierExpr:
		return a.analyzeIdentifier(v)
	case *ast.BinaryExpr:
		return a.analyzeBinary(v)
	case *ast.UnaryExpr:
		return a.analyzeUnary(v)
	case *ast.TernaryExpr:
		return a.analyzeTernary(v)
	case *ast.ArrayAccessExpr:
		return a.analyzeArrayAccess(v)
	case *ast.CallExpr:
		return a.analyzeCall(v)
	default:
		return ast.UNKNOWN
	}
}

func (a *Analyzer) analyzeLiteral(v *ast.LiteralExpr) ast.DataType {
	var t ast.DataType
	switch v.Kind {
	case ast.IntLiteral:
		t = ast.INT
	case ast.FloatLiteral:
		t = ast.FLOAT
	case ast.StringLiteral:
		t = ast.STRING
	default:
		t = ast.UNKNOWN
	}
	v.Type = t
	return t
}

func (a *Analyzer) analyzeIdentifier(v *ast.IdentifierExpr) ast.DataType {
	sym, ok := a.tab.Lookup(v.Name)
	if !ok {
		a.errs.Errorf(v.Line, "undeclared identifier '%s'", v.Name)
		v.Type = ast.UNKNOWN
		return ast.UNKNOWN
	}
	v.Type = sym.Type
	v.IsLValue = true
	return sym.Type
}

func (a *Analyzer) analyzeBinary(v *ast.BinaryExpr) ast.DataType {
	lt := a.analyzeExpr(v.Left)
	rt := a.analyzeExpr(v.Right)
	if lt == ast.UNKNOWN || rt == ast.UNKNOWN {
		v.Type = ast.UNKNOWN
		return ast.UNKNOWN
	}

	switch v.Op {
	case "&&", "||":
		v.Type = ast.INT
		return ast.INT
	case "==", "!=", "<", "<=", ">", ">=":
		if !IsNumeric(lt) || !IsNumeric(rt) {
			a.errs.Errorf(v.Line, "cannot compare %s with %s", lt, rt)
		}
		v.Type = ast.INT
		return ast.INT
	default: // +, -, *, /, %
		if !IsNumeric(lt) || !IsNumeric(rt) {
			a.errs.Errorf(v.Line, "operator '%s' requires numeric operands, got %s and %s", v.Op, lt, rt)
			v.Type = ast.UNKNOWN
			return ast.UNKNOWN
		}
		result := Common(lt, rt)
		v.Type = result
		return result
	}
}

func (a *Analyzer) analyzeUnary(v *ast.UnaryExpr) ast.DataType {
	t := a.analyzeExpr(v.Operand)
	if t == ast.UNKNOWN {
		v.Type = ast.UNKNOWN
		return ast.UNKNOWN
	}
	switch v.Op {
	case "!":
		v.Type = ast.INT
		return ast.INT
	case "-":
		if !IsNumeric(t) {
			a.errs.Errorf(v.Line, "operator '-' requires a numeric operand, got %s", t)
			v.Type = ast.UNKNOWN
			return ast.UNKNOWN
		}
		v.Type = t
		return t
	default:
		v.Type = t
		return t
	}
}

func (a *Analyzer) analyzeTernary(v *ast.TernaryExpr) ast.DataType {
	a.analyzeExpr(v.Cond)
	tt := a.analyzeExpr(v.TrueExpr)
	ft := a.analyzeExpr(v.FalseExpr)
	if tt == ast.UNKNOWN || ft == ast.UNKNOWN {
		v.Type = ast.UNKNOWN
		return ast.UNKNOWN
	}
	if !Compatible(tt, ft) && !Compatible(ft, tt) {
		a.errs.Errorf(v.Line, "ternary branches have incompatible types %s and %s", tt, ft)
	}
	result := Common(tt, ft)
	v.Type = result
	return result
}

func (a *Analyzer) analyzeArrayAccess(v *ast.ArrayAccessExpr) ast.DataType {
	base, ok := v.Base.(*ast.IdentifierExpr)
	if !ok {
		a.errs.Errorf(v.Line, "array access base must be a variable")
		v.Type = ast.UNKNOWN
		return ast.UNKNOWN
	}
	sym, ok := a.tab.Lookup(base.Name)
	if !ok {
		a.errs.Errorf(v.Line, "undeclared identifier '%s'", base.Name)
		v.Type = ast.UNKNOWN
		return ast.UNKNOWN
	}
	if len(sym.Dimensions) == 0 {
		a.errs.Errorf(v.Line, "'%s' is not an array", base.Name)
	}
	for _, idx := range v.Indices {
		idxType := a.analyzeExpr(idx)
		if idxType != ast.UNKNOWN && !IsNumeric(idxType) {
			a.errs.Errorf(v.Line, "array index must be numeric, got %s", idxType)
		}
	}
	base.Type = sym.Type
	base.IsLValue = true
	v.Type = sym.Type
	v.IsLValue = true
	return sym.Type
}

func (a *Analyzer) analyzeCall(v *ast.CallExpr) ast.DataType {
	fn, ok := a.tab.LookupFunction(v.Callee)
	if !ok {
		a.errs.Errorf(v.Line, "call to undeclared function '%s'", v.Callee)
		for _, arg := range v.Args {
			a.analyzeExpr(arg)
		}
		v.Type = ast.UNKNOWN
		return ast.UNKNOWN
	}

	if fn.Variadic {
		// printf-style: only the first argument (the format string) is
		// checked; anything past it is accepted regardless of type or count.
		for i, arg := range v.Args {
			argType := a.analyzeExpr(arg)
			if i == 0 && len(fn.ParamTypes) > 0 && argType != ast.UNKNOWN && !Compatible(fn.ParamTypes[i], argType) {
				a.errs.Errorf(v.Line, "argument %d to '%s' has type %s, want %s", i+1, v.Callee, argType, fn.ParamTypes[i])
			}
		}
	} else {
		if len(v.Args) != len(fn.ParamTypes) {
			a.errs.Errorf(v.Line, "'%s' expects %d argument(s), got %d", v.Callee, len(fn.ParamTypes), len(v.Args))
		}
		argTypes := make([]ast.DataType, len(v.Args))
		for i, arg := range v.Args {
			argTypes[i] = a.analyzeExpr(arg)
		}
		for i, pair := range utils.Zip(fn.ParamTypes, argTypes) {
			if pair.Second != ast.UNKNOWN && !Compatible(pair.First, pair.Second) {
				a.errs.Errorf(v.Line, "argument %d to '%s' has type %s, want %s", i+1, v.Callee, pair.Second, pair.First)
			}
		}
	}

	v.Type = fn.ReturnType
	return fn.ReturnType
}
