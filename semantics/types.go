package semantics

import "github.com/fl0k3n-style/ccx/ast"

// Compatible implements SPEC_FULL.md §4.2's compatible(expected, actual)
// relation: equal types, the promotions INT->LONG, INT->FLOAT,
// LONG->FLOAT, UINT->LONG, and the cross-sign relaxations INT<->UINT.
func Compatible(expected, actual ast.DataType) bool {
	if expected == actual {
		return true
	}
	switch {
	case expected == ast.LONG && actual == ast.INT:
		return true
	case expected == ast.FLOAT && (actual == ast.INT || actual == ast.LONG):
		return true
	case expected == ast.LONG && actual == ast.UINT:
		return true
	case expected == ast.INT && actual == ast.UINT:
		return true
	case expected == ast.UINT && actual == ast.INT:
		return true
	default:
		return false
	}
}

// Common implements SPEC_FULL.md §4.2's common(t1, t2): t1 if equal, else
// FLOAT if either operand is float, else LONG if either is long, else LONG
// if the pair is {INT, UINT}, else t1.
func Common(t1, t2 ast.DataType) ast.DataType {
	if t1 == t2 {
		return t1
	}
	if t1 == ast.FLOAT || t2 == ast.FLOAT {
		return ast.FLOAT
	}
	if t1 == ast.LONG || t2 == ast.LONG {
		return ast.LONG
	}
	if (t1 == ast.INT && t2 == ast.UINT) || (t1 == ast.UINT && t2 == ast.INT) {
		return ast.LONG
	}
	return t1
}

// IsNumeric reports whether t is one of the arithmetic DataTypes this
// subset operates on.
func IsNumeric(t ast.DataType) bool {
	switch t {
	case ast.INT, ast.LONG, ast.UINT, ast.FLOAT:
		return true
	default:
		return false
	}
}
