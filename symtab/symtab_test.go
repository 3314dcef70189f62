package symtab

import (
	"testing"

	"github.com/fl0k3n-style/ccx/ast"
)

func TestAllocParamOffsets(t *testing.T) {
	tab := NewTable()
	a := tab.AllocParam("a", ast.INT, nil, 0)
	b := tab.AllocParam("b", ast.INT, nil, 1)
	c := tab.AllocParam("c", ast.INT, nil, 2)

	if a.Offset != 16 || b.Offset != 24 || c.Offset != 32 {
		t.Errorf("param offsets = %d, %d, %d; want 16, 24, 32", a.Offset, b.Offset, c.Offset)
	}
}

func TestAllocLocalOffsetsAndFrameSize(t *testing.T) {
	tab := NewTable()
	tab.ResetFrame()
	x := tab.AllocLocal("x", ast.INT, nil, true)
	y := tab.AllocLocal("y", ast.INT, nil, true)

	if x.Offset != -8 || y.Offset != -16 {
		t.Errorf("local offsets = %d, %d; want -8, -16", x.Offset, y.Offset)
	}
	if got := tab.FrameSize(); got != 16 {
		t.Errorf("FrameSize() = %d; want 16", got)
	}
}

func TestAllocLocalArraySize(t *testing.T) {
	tab := NewTable()
	tab.ResetFrame()
	arr := tab.AllocLocal("arr", ast.INT, []int{3}, true)
	if arr.Offset != -24 {
		t.Errorf("array local offset = %d; want -24 (3*8 bytes)", arr.Offset)
	}
}

func TestAllocLocalUnknownDimensionSkipped(t *testing.T) {
	tab := NewTable()
	tab.ResetFrame()
	// a [-1] (unknown-length) dimension contributes nothing to the size.
	p := tab.AllocLocal("p", ast.INT, []int{-1}, true)
	if p.Offset != -8 {
		t.Errorf("offset with unknown dimension = %d; want -8", p.Offset)
	}
}

func TestFrameSizeRoundsUpTo16(t *testing.T) {
	tab := NewTable()
	tab.ResetFrame()
	tab.AllocLocal("a", ast.INT, nil, true) // 8 bytes
	if got := tab.FrameSize(); got != 16 {
		t.Errorf("FrameSize() = %d; want 16 (rounded up from 8)", got)
	}
}

func TestScopeShadowingAndLookup(t *testing.T) {
	tab := NewTable()
	outer := tab.AllocLocal("x", ast.INT, nil, true)

	tab.EnterScope()
	inner := tab.AllocLocal("x", ast.FLOAT, nil, true)
	got, ok := tab.Lookup("x")
	if !ok || got != inner {
		t.Errorf("Lookup(x) in inner scope did not resolve to the shadowing symbol")
	}
	tab.LeaveScope()

	got, ok = tab.Lookup("x")
	if !ok || got != outer {
		t.Errorf("Lookup(x) after LeaveScope did not resolve back to the outer symbol")
	}
}

func TestDefinedInScopeOnlyChecksInnermost(t *testing.T) {
	tab := NewTable()
	tab.AllocLocal("x", ast.INT, nil, true)

	tab.EnterScope()
	if tab.DefinedInScope("x") {
		t.Error("DefinedInScope(x) in a fresh inner scope should be false")
	}
	tab.AllocLocal("x", ast.INT, nil, true)
	if !tab.DefinedInScope("x") {
		t.Error("DefinedInScope(x) after defining it in this scope should be true")
	}
}

func TestDefineRejectsDuplicateInSameScope(t *testing.T) {
	tab := NewTable()
	ok1 := tab.Define(&Symbol{Name: "x", Type: ast.INT})
	ok2 := tab.Define(&Symbol{Name: "x", Type: ast.INT})
	if !ok1 {
		t.Error("first Define(x) should succeed")
	}
	if ok2 {
		t.Error("second Define(x) in the same scope should report a collision")
	}
}

func TestFunctionTable(t *testing.T) {
	tab := NewTable()
	tab.DefineFunction(&FunctionSymbol{Name: "f", ReturnType: ast.INT})
	fs, ok := tab.LookupFunction("f")
	if !ok || fs.ReturnType != ast.INT {
		t.Error("LookupFunction(f) did not return the registered signature")
	}
	if _, ok := tab.LookupFunction("missing"); ok {
		t.Error("LookupFunction(missing) should report not found")
	}
}
