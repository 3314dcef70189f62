package codegen

import "github.com/fl0k3n-style/ccx/ast"

// tryFoldInt implements constant folding (SPEC_FULL.md §4.3, testable
// property 6): when both operands of an arithmetic binary expression are
// integer literals and the result type is not float, evaluate the
// operation at compile time. Division or modulo by a literal zero
// disables the fold, leaving the runtime instruction sequence in place.
func tryFoldInt(v *ast.BinaryExpr) (int64, bool) {
	if v.Type == ast.FLOAT {
		return 0, false
	}
	l, ok := v.Left.(*ast.LiteralExpr)
	if !ok || l.Kind != ast.IntLiteral {
		return 0, false
	}
	r, ok := v.Right.(*ast.LiteralExpr)
	if !ok || r.Kind != ast.IntLiteral {
		return 0, false
	}

	switch v.Op {
	case "+":
		return l.IntVal + r.IntVal, true
	case "-":
		return l.IntVal - r.IntVal, true
	case "*":
		return l.IntVal * r.IntVal, true
	case "/":
		if r.IntVal == 0 {
			return 0, false
		}
		return l.IntVal / r.IntVal, true
	case "%":
		if r.IntVal == 0 {
			return 0, false
		}
		return l.IntVal % r.IntVal, true
	default:
		return 0, false
	}
}

// literalIsZero reports whether e is the integer literal 0, used by
// dead-code elimination to decide an `if` branch outcome at compile time.
func literalIsZero(e ast.Expr) (isLiteral bool, zero bool) {
	lit, ok := e.(*ast.LiteralExpr)
	if !ok || lit.Kind != ast.IntLiteral {
		return false, false
	}
	return true, lit.IntVal == 0
}
