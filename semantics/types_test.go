package semantics

import (
	"testing"

	"github.com/fl0k3n-style/ccx/ast"
)

func TestCompatible(t *testing.T) {
	tests := []struct {
		expected, actual ast.DataType
		want             bool
	}{
		{ast.INT, ast.INT, true},
		{ast.LONG, ast.INT, true},
		{ast.INT, ast.LONG, false},
		{ast.FLOAT, ast.INT, true},
		{ast.FLOAT, ast.LONG, true},
		{ast.FLOAT, ast.UINT, false},
		{ast.LONG, ast.UINT, true},
		{ast.INT, ast.UINT, true},
		{ast.UINT, ast.INT, true},
		{ast.STRING, ast.INT, false},
		{ast.INT, ast.FLOAT, false},
	}
	for _, tc := range tests {
		if got := Compatible(tc.expected, tc.actual); got != tc.want {
			t.Errorf("Compatible(%v, %v) = %v; want %v", tc.expected, tc.actual, got, tc.want)
		}
	}
}

func TestCommon(t *testing.T) {
	tests := []struct {
		t1, t2 ast.DataType
		want   ast.DataType
	}{
		{ast.INT, ast.INT, ast.INT},
		{ast.INT, ast.FLOAT, ast.FLOAT},
		{ast.FLOAT, ast.INT, ast.FLOAT},
		{ast.INT, ast.LONG, ast.LONG},
		{ast.LONG, ast.FLOAT, ast.FLOAT},
		{ast.INT, ast.UINT, ast.LONG},
		{ast.UINT, ast.INT, ast.LONG},
	}
	for _, tc := range tests {
		if got := Common(tc.t1, tc.t2); got != tc.want {
			t.Errorf("Common(%v, %v) = %v; want %v", tc.t1, tc.t2, got, tc.want)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	tests := []struct {
		typ  ast.DataType
		want bool
	}{
		{ast.INT, true}, {ast.LONG, true}, {ast.UINT, true}, {ast.FLOAT, true},
		{ast.STRING, false}, {ast.VOID, false}, {ast.ARRAY, false}, {ast.UNKNOWN, false},
	}
	for _, tc := range tests {
		if got := IsNumeric(tc.typ); got != tc.want {
			t.Errorf("IsNumeric(%v) = %v; want %v", tc.typ, got, tc.want)
		}
	}
}
