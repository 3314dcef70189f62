package ast

// Stmt is the marker interface every statement node implements.
type Stmt interface {
	stmtLine() int
}

// StmtMeta carries the one piece of data every statement needs for
// diagnostics: its source line.
type StmtMeta struct {
	Line int
}

func (m StmtMeta) stmtLine() int { return m.Line }

// VarDeclStmt declares a local variable, optionally an array, optionally
// initialized.
type VarDeclStmt struct {
	StmtMeta
	Mutable     bool
	Name        string
	Type        DataType
	Init        Expr // nil if uninitialized
	Dimensions  []int
}

// AssignStmt assigns Value into the lvalue expression Target (an
// IdentifierExpr or ArrayAccessExpr).
type AssignStmt struct {
	StmtMeta
	Target Expr
	Value  Expr
}

// ExprStmt evaluates an expression and discards the result (e.g. a bare
// call like `printf(...)`).
type ExprStmt struct {
	StmtMeta
	X Expr
}

// IfStmt is `if (Cond) Then [else Else]`.
type IfStmt struct {
	StmtMeta
	Cond Expr
	Then Stmt
	Else Stmt // nil if no else-branch
}

// WhileStmt is `while (Cond) Body`.
type WhileStmt struct {
	StmtMeta
	Cond Expr
	Body Stmt
}

// ForStmt is the lowered counted loop SPEC_FULL.md §4.1 describes:
// `for (var = Start; var < End; var++) Body`, with End defaulting to the
// literal 10 when the source condition wasn't `v < E` or `v <= E`, and the
// increment expression parsed-through and discarded (unit step implied).
type ForStmt struct {
	StmtMeta
	VarName string
	VarType DataType
	Start   Expr
	End     Expr
	Body    Stmt
}

// BlockStmt is an ordered sequence of statements forming one lexical scope.
type BlockStmt struct {
	StmtMeta
	Stmts []Stmt
}

// ReturnStmt is `return [Value];`.
type ReturnStmt struct {
	StmtMeta
	Value Expr // nil for a valueless return
}

// Param is one function parameter: its name, declared type, and array
// dimensions (SPEC_FULL.md §4.1: a `[]` dimension is recorded as -1).
type Param struct {
	Name       string
	Type       DataType
	Dimensions []int
}

// FuncDecl is a top-level function definition.
type FuncDecl struct {
	Name       string
	Params     []Param
	ReturnType DataType
	Body       *BlockStmt
	Line       int
}

// Program is the root node: an ordered list of function declarations.
// Typedef declarations are consumed by the parser and never produce a node
// (SPEC_FULL.md §4.1 "Typedef handling").
type Program struct {
	Functions []*FuncDecl
}
