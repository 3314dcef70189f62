package token

import "testing"

func TestKindStringKnownAndUnknown(t *testing.T) {
	tests := []struct {
		k    Kind
		want string
	}{
		{PLUS, "+"},
		{KW_RETURN, "return"},
		{ARROW, "->"},
		{EOF, "eof"},
		{Kind(9999), "unknown"},
	}
	for _, tc := range tests {
		if got := tc.k.String(); got != tc.want {
			t.Errorf("Kind(%d).String() = %q; want %q", tc.k, got, tc.want)
		}
	}
}

func TestKeywordsMapsEveryReservedWord(t *testing.T) {
	if len(Keywords) == 0 {
		t.Fatal("Keywords table should not be empty")
	}
	if Keywords["return"] != KW_RETURN {
		t.Errorf("Keywords[return] = %v; want KW_RETURN", Keywords["return"])
	}
	if Keywords["unsigned"] != KW_UNSIGNED {
		t.Errorf("Keywords[unsigned] = %v; want KW_UNSIGNED", Keywords["unsigned"])
	}
	for _, w := range []string{
		"if", "else", "while", "for", "return", "int", "long", "float", "double",
		"char", "short", "unsigned", "void", "struct", "typedef", "const", "static",
		"break", "continue", "switch", "case", "default", "do",
	} {
		if k, ok := Keywords[w]; !ok || k.String() != w {
			t.Errorf("Keywords[%q] = %v, %v; want the keyword kind named %q", w, k, ok, w)
		}
	}
}

func TestTokenStringPrefersLexeme(t *testing.T) {
	tok := Token{Kind: IDENT, Lexeme: "foo"}
	if tok.String() != "foo" {
		t.Errorf("Token.String() = %q; want foo", tok.String())
	}
}

func TestTokenStringFallsBackToKindWhenLexemeEmpty(t *testing.T) {
	tok := Token{Kind: EOF}
	if tok.String() != "eof" {
		t.Errorf("Token.String() = %q; want eof", tok.String())
	}
}
