// Package token defines the lexical token kinds the lexer produces and the
// parser consumes.
package token

// Kind classifies a Token.
type Kind int

const (
	EOF Kind = iota
	ERROR

	// literals and names
	IDENT
	INT_LIT
	FLOAT_LIT
	STRING_LIT

	// keywords
	KW_IF
	KW_ELSE
	KW_WHILE
	KW_FOR
	KW_RETURN
	KW_INT
	KW_LONG
	KW_FLOAT
	KW_DOUBLE
	KW_CHAR
	KW_SHORT
	KW_UNSIGNED
	KW_VOID
	KW_STRUCT
	KW_TYPEDEF
	KW_CONST
	KW_STATIC
	KW_BREAK
	KW_CONTINUE
	KW_SWITCH
	KW_CASE
	KW_DEFAULT
	KW_DO

	// operators
	PLUS
	MINUS
	STAR
	SLASH
	PERCENT
	ASSIGN
	EQ
	NEQ
	LT
	LE
	GT
	GE
	AND_AND
	OR_OR
	NOT
	QUESTION
	COLON
	INC
	DEC
	PLUS_ASSIGN
	MINUS_ASSIGN

	// delimiters
	LPAREN
	RPAREN
	LBRACE
	RBRACE
	LBRACKET
	RBRACKET
	SEMI
	COMMA
	DOT
	ARROW
)

var names = map[Kind]string{
	EOF: "eof", ERROR: "error", IDENT: "identifier",
	INT_LIT: "int literal", FLOAT_LIT: "float literal", STRING_LIT: "string literal",
	KW_IF: "if", KW_ELSE: "else", KW_WHILE: "while", KW_FOR: "for", KW_RETURN: "return",
	KW_INT: "int", KW_LONG: "long", KW_FLOAT: "float", KW_DOUBLE: "double", KW_CHAR: "char",
	KW_SHORT: "short", KW_UNSIGNED: "unsigned", KW_VOID: "void", KW_STRUCT: "struct",
	KW_TYPEDEF: "typedef", KW_CONST: "const", KW_STATIC: "static", KW_BREAK: "break",
	KW_CONTINUE: "continue", KW_SWITCH: "switch", KW_CASE: "case", KW_DEFAULT: "default",
	KW_DO: "do",
	PLUS: "+", MINUS: "-", STAR: "*", SLASH: "/", PERCENT: "%", ASSIGN: "=",
	EQ: "==", NEQ: "!=", LT: "<", LE: "<=", GT: ">", GE: ">=",
	AND_AND: "&&", OR_OR: "||", NOT: "!", QUESTION: "?", COLON: ":",
	INC: "++", DEC: "--", PLUS_ASSIGN: "+=", MINUS_ASSIGN: "-=",
	LPAREN: "(", RPAREN: ")", LBRACE: "{", RBRACE: "}", LBRACKET: "[", RBRACKET: "]",
	SEMI: ";", COMMA: ",", DOT: ".", ARROW: "->",
}

func (k Kind) String() string {
	if s, ok := names[k]; ok {
		return s
	}
	return "unknown"
}

// Keywords maps a lexeme to its keyword Kind, consulted by the lexer after
// an identifier has been scanned.
var Keywords = map[string]Kind{
	"if": KW_IF, "else": KW_ELSE, "while": KW_WHILE, "for": KW_FOR, "return": KW_RETURN,
	"int": KW_INT, "long": KW_LONG, "float": KW_FLOAT, "double": KW_DOUBLE, "char": KW_CHAR,
	"short": KW_SHORT, "unsigned": KW_UNSIGNED, "void": KW_VOID, "struct": KW_STRUCT,
	"typedef": KW_TYPEDEF, "const": KW_CONST, "static": KW_STATIC, "break": KW_BREAK,
	"continue": KW_CONTINUE, "switch": KW_SWITCH, "case": KW_CASE, "default": KW_DEFAULT,
	"do": KW_DO,
}

// Token is a single lexical unit: its kind, the exact source text it came
// from, its source position, and a numeric payload for literal kinds.
type Token struct {
	Kind   Kind
	Lexeme string
	Line   int
	Column int

	// IntVal/FloatVal carry the decoded literal value for INT_LIT/FLOAT_LIT
	// tokens respectively; unused for every other kind.
	IntVal   int64
	FloatVal float64
}

func (t Token) String() string {
	if t.Lexeme != "" {
		return t.Lexeme
	}
	return t.Kind.String()
}
