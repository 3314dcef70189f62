// Package ast defines the abstract syntax tree this compiler's parser
// produces and its semantic analyzer and code generator both walk.
//
// Every node is a concrete struct implementing one of two marker
// interfaces (Expr, Stmt); dispatch across a pass is a single type switch
// per node, never a visitor with double dispatch — see DESIGN.md's notes on
// SPEC_FULL.md §9's redesign recommendation.
package ast

// DataType is the closed set of types this subset recognizes.
type DataType int

const (
	UNKNOWN DataType = iota
	INT
	LONG
	UINT
	FLOAT
	STRING
	VOID
	ARRAY
)

func (d DataType) String() string {
	switch d {
	case INT:
		return "int"
	case LONG:
		return "long"
	case UINT:
		return "unsigned int"
	case FLOAT:
		return "float"
	case STRING:
		return "string"
	case VOID:
		return "void"
	case ARRAY:
		return "array"
	default:
		return "unknown"
	}
}

// TypeAliasTable records `typedef` names seen at program top level and is
// consulted by the parser while deciding whether an identifier starts a
// type (SPEC_FULL.md §4.1 "Typedef handling").
type TypeAliasTable struct {
	aliases map[string]DataType
}

func NewTypeAliasTable() *TypeAliasTable {
	return &TypeAliasTable{aliases: make(map[string]DataType)}
}

func (t *TypeAliasTable) Define(name string, dt DataType) {
	t.aliases[name] = dt
}

func (t *TypeAliasTable) Resolve(name string) (DataType, bool) {
	dt, ok := t.aliases[name]
	return dt, ok
}

func (t *TypeAliasTable) IsAlias(name string) bool {
	_, ok := t.aliases[name]
	return ok
}
