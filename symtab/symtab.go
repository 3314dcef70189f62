// Package symtab implements the scoped symbol table shared, as two
// independent instances, by the semantic analyzer and the code generator
// (SPEC_FULL.md §9: the two passes must stay in lock-step; this package is
// the single place their frame-layout arithmetic lives, so they can't
// drift apart).
//
// The scope-stack shape is grounded on the teacher's generic
// Symtab[T]/SymtabScope[T] (symtab/symtab.go in the retrieved sources),
// narrowed from an arbitrary-payload generic table to this subset's two
// concrete record kinds.
package symtab

import (
	"github.com/fl0k3n-style/ccx/ast"
	"github.com/fl0k3n-style/ccx/utils"
)

// Symbol is one declared variable or parameter.
type Symbol struct {
	Name        string
	Type        ast.DataType
	Mutable     bool
	IsParameter bool
	Offset      int // bytes, relative to rbp; positive for parameters, negative for locals
	Dimensions  []int
}

// FunctionSymbol is one declared (or builtin) function.
type FunctionSymbol struct {
	Name       string
	ReturnType ast.DataType
	ParamTypes []ast.DataType
	ParamNames []string
	Variadic   bool
}

// Table is a stack of lexical scopes plus a separate global function table
// and the monotonic frame-offset allocator for the function currently being
// analyzed or generated.
//
// Invariant: the scope stack is never empty once NewTable returns — a
// global scope is always present.
type Table struct {
	scopes        *utils.Stack[map[string]*Symbol]
	funcs         map[string]*FunctionSymbol
	currentOffset int
}

// NewTable creates a Table with its global scope already pushed.
func NewTable() *Table {
	t := &Table{
		scopes: utils.NewStack[map[string]*Symbol](),
		funcs:  make(map[string]*FunctionSymbol),
	}
	t.EnterScope()
	return t
}

// EnterScope pushes a fresh, empty scope onto the stack. Called on entry to
// a block, a function body, and a `for` header (SPEC_FULL.md §4.2).
func (t *Table) EnterScope() {
	t.scopes.Push(make(map[string]*Symbol))
}

// LeaveScope pops the innermost scope. The caller must guarantee this is
// balanced with EnterScope on every exit path, including error returns.
func (t *Table) LeaveScope() {
	t.scopes.Pop()
}

// Define adds sym to the innermost scope and reports whether it was added:
// it returns false, leaving the scope unchanged, when a symbol of that name
// already exists in that same scope (single-declaration-per-scope,
// SPEC_FULL.md §4.2); an outer-scope symbol of the same name is shadowed,
// not an error.
func (t *Table) Define(sym *Symbol) bool {
	innermost := t.scopes.Peek()
	if _, exists := innermost[sym.Name]; exists {
		return false
	}
	innermost[sym.Name] = sym
	return true
}

// DefinedInScope reports whether name is already bound in the innermost
// scope, without searching outer scopes. Callers use this ahead of
// AllocLocal/AllocParam to detect a redeclaration before it's masked by
// those helpers' own (silently-ignored) Define call.
func (t *Table) DefinedInScope(name string) bool {
	innermost := t.scopes.Peek()
	_, exists := innermost[name]
	return exists
}

// Lookup walks the scope stack from innermost to outermost.
func (t *Table) Lookup(name string) (*Symbol, bool) {
	levels := t.scopes.All()
	for i := len(levels) - 1; i >= 0; i-- {
		if sym, ok := levels[i][name]; ok {
			return sym, true
		}
	}
	return nil, false
}

// DefineFunction registers a function in the global function table. Used
// both for builtins (println, printf) and for user-declared functions.
func (t *Table) DefineFunction(fs *FunctionSymbol) {
	t.funcs[fs.Name] = fs
}

// LookupFunction looks up a function by name in the global table.
func (t *Table) LookupFunction(name string) (*FunctionSymbol, bool) {
	fs, ok := t.funcs[name]
	return fs, ok
}

const (
	slotSize     = 8
	paramBase    = 16
	frameAlign   = 16
)

// ResetFrame resets the offset allocator to 0, as required on entering a
// new function body (SPEC_FULL.md §4.2 step 1).
func (t *Table) ResetFrame() {
	t.currentOffset = 0
}

// AllocParam assigns the next parameter its positive offset, starting at
// +16 and incrementing by 8 per parameter (two 8-byte slots reserved below
// it for the saved base pointer and return address), and defines it in the
// current (function-body) scope.
func (t *Table) AllocParam(name string, typ ast.DataType, dims []int, paramIndex int) *Symbol {
	sym := &Symbol{
		Name:        name,
		Type:        typ,
		Mutable:     true,
		IsParameter: true,
		Offset:      paramBase + paramIndex*slotSize,
		Dimensions:  dims,
	}
	t.Define(sym)
	return sym
}

// AllocLocal assigns the next local variable the next negative offset and
// defines it in the current scope. Size is 8 bytes for a scalar, or
// 8*product(dimensions) for an array (non-positive dimensions — the `[]`
// unknown-length marker, -1 — are skipped in the product, per
// SPEC_FULL.md §4.2).
func (t *Table) AllocLocal(name string, typ ast.DataType, dims []int, mutable bool) *Symbol {
	size := sizeOf(dims)
	t.currentOffset -= size
	sym := &Symbol{
		Name:       name,
		Type:       typ,
		Mutable:    mutable,
		Offset:     t.currentOffset,
		Dimensions: dims,
	}
	t.Define(sym)
	return sym
}

func sizeOf(dims []int) int {
	size := slotSize
	for _, d := range dims {
		if d > 0 {
			size *= d
		}
	}
	return size
}

// FrameSize returns the 16-byte-aligned size required for the current
// function's local frame, derived from the current (most negative)
// currentOffset value.
func (t *Table) FrameSize() int {
	abs := -t.currentOffset
	if abs <= 0 {
		return 0
	}
	return ((abs + frameAlign - 1) / frameAlign) * frameAlign
}
