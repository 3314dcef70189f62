package codegen

import (
	"strings"
	"testing"

	"github.com/fl0k3n-style/ccx/ast"
	"github.com/fl0k3n-style/ccx/lexer"
	"github.com/fl0k3n-style/ccx/parser"
	"github.com/fl0k3n-style/ccx/semantics"
)

var defaultOpts = Options{FoldConstants: true, EliminateDeadBranches: true}

func mustGenerate(t *testing.T, src string, opts Options) string {
	t.Helper()
	toks, err := lexer.Tokenize(src)
	if err != nil {
		t.Fatalf("Tokenize: unexpected error: %v", err)
	}
	prog, err := parser.Parse(toks)
	if err != nil {
		t.Fatalf("Parse: unexpected error: %v", err)
	}
	if _, err := semantics.Analyze(prog); err != nil {
		t.Fatalf("Analyze: unexpected error: %v", err)
	}
	return Generate(prog, opts)
}

func TestGenerateEmitsFixedPreambleAndHelper(t *testing.T) {
	out := mustGenerate(t, "int main() { return 0; }", defaultOpts)
	for _, want := range []string{
		".intel_syntax noprefix",
		".global main",
		"main:",
		"print_int:",
		".IFMT",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Generate() missing %q:\n%s", want, out)
		}
	}
}

func TestGenerateFunctionPrologueOmitsSubRspWhenFrameIsEmpty(t *testing.T) {
	out := mustGenerate(t, "int main() { return 0; }", defaultOpts)
	body := mainBody(t, out)
	if strings.Contains(body, "sub rsp") {
		t.Errorf("expected no sub rsp for a frame with no locals:\n%s", body)
	}
}

func TestGenerateFunctionPrologueSizesFrameForLocals(t *testing.T) {
	out := mustGenerate(t, "int main() { int a = 1; long b = 2; return 0; }", defaultOpts)
	if !strings.Contains(out, "sub rsp, 16") {
		t.Errorf("expected a 16-byte frame for two 8-byte locals:\n%s", out)
	}
}

func TestGenerateVoidFunctionGetsImplicitEpilogue(t *testing.T) {
	out := mustGenerate(t, "void f() { int x = 1; } int main() { f(); return 0; }", defaultOpts)
	fIdx := strings.Index(out, "f:")
	mainIdx := strings.Index(out, "main:")
	if fIdx < 0 || mainIdx < 0 {
		t.Fatalf("missing f: or main: label:\n%s", out)
	}
	body := out[fIdx:mainIdx]
	if !strings.Contains(body, "ret") {
		t.Errorf("void function body should fall through to an implicit epilogue:\n%s", body)
	}
}

func TestGenerateConstantFoldingDisabledLeavesArithmeticInstructions(t *testing.T) {
	out := mustGenerate(t, "int main() { return 1 + 2; }", Options{FoldConstants: false, EliminateDeadBranches: true})
	if !strings.Contains(out, "add rax") {
		t.Errorf("folding disabled should emit a runtime add:\n%s", out)
	}
}

func TestGenerateConstantFoldingEnabledComputesLiteralSum(t *testing.T) {
	out := mustGenerate(t, "int main() { return 1 + 2; }", defaultOpts)
	if strings.Contains(out, "add rax") {
		t.Errorf("folding enabled should not emit an add for two literals:\n%s", out)
	}
	if !strings.Contains(out, "mov rax, 3") {
		t.Errorf("expected the folded sum 3 in the output:\n%s", out)
	}
}

func TestGenerateDivisionByLiteralZeroDisablesFold(t *testing.T) {
	out := mustGenerate(t, "int main() { return 1 / 0; }", defaultOpts)
	if !strings.Contains(out, "idiv") {
		t.Errorf("division by a literal zero must fall back to the runtime idiv sequence:\n%s", out)
	}
}

func TestGenerateDeadBranchEliminationDropsUnreachableElse(t *testing.T) {
	out := mustGenerate(t, "int main() { if (1) { return 1; } else { return 2; } }", defaultOpts)
	if strings.Contains(out, "mov rax, 2") {
		t.Errorf("dead else branch should not be emitted:\n%s", out)
	}
	if !strings.Contains(out, "mov rax, 1") {
		t.Errorf("expected the live then-branch in the output:\n%s", out)
	}
}

func TestGenerateDeadBranchEliminationDisabledKeepsBothArms(t *testing.T) {
	out := mustGenerate(t, "int main() { if (1) { return 1; } else { return 2; } }", Options{FoldConstants: true, EliminateDeadBranches: false})
	if !strings.Contains(out, "mov rax, 1") || !strings.Contains(out, "mov rax, 2") {
		t.Errorf("with elimination disabled both arms should be emitted:\n%s", out)
	}
	if !strings.Contains(out, "test rax, rax") {
		t.Errorf("with elimination disabled the runtime test/jump must still be emitted:\n%s", out)
	}
}

func TestGenerateUserCallPadsOddArgumentCount(t *testing.T) {
	out := mustGenerate(t, "int f(int a, int b, int c) { return a + b + c; } int main() { return f(1, 2, 3); }", defaultOpts)
	callIdx := strings.Index(out, "call f")
	if callIdx < 0 {
		t.Fatalf("missing call to f:\n%s", out)
	}
	before := out[:callIdx]
	lastPush := strings.LastIndex(before, "sub rsp, 8")
	if lastPush < 0 {
		t.Errorf("odd argument count (3) should pad with sub rsp, 8 before the call:\n%s", before)
	}
}

func TestGenerateUserCallEvenArgumentCountNoPadding(t *testing.T) {
	out := mustGenerate(t, "int f(int a, int b) { return a + b; } int main() { return f(1, 2); }", defaultOpts)
	callIdx := strings.Index(out, "call f")
	fnIdx := strings.Index(out, "main:")
	body := out[fnIdx:callIdx]
	if strings.Contains(body, "sub rsp, 8") {
		t.Errorf("even argument count (2) should not pad with sub rsp, 8:\n%s", body)
	}
}

func mainBody(t *testing.T, out string) string {
	t.Helper()
	start := strings.Index(out, "main:")
	if start < 0 {
		t.Fatalf("missing main: label:\n%s", out)
	}
	end := strings.Index(out[start:], "print_int:")
	if end < 0 {
		t.Fatalf("missing print_int: label:\n%s", out)
	}
	return out[start : start+end]
}

func TestGeneratePrintfFloatArgumentSetsEaxToOne(t *testing.T) {
	out := mustGenerate(t, `int main() { printf("%f", 1.5); return 0; }`, defaultOpts)
	if !strings.Contains(out, "mov eax, 1") {
		t.Errorf("a single float printf argument should set eax to 1:\n%s", out)
	}
}

func TestGeneratePrintfFloatArgumentDoesNotAdjustRsp(t *testing.T) {
	out := mustGenerate(t, `int main() { printf("%f", 1.5); return 0; }`, defaultOpts)
	body := mainBody(t, out)
	if strings.Contains(body, "sub rsp") || strings.Contains(body, "add rsp") {
		t.Errorf("a float printf argument needs no rsp adjustment of its own (rsp is already 16-byte aligned with an empty frame):\n%s", body)
	}
}

func TestGeneratePrintfIntArgumentsSetEaxToZero(t *testing.T) {
	out := mustGenerate(t, `int main() { printf("%ld %ld", 1, 2); return 0; }`, defaultOpts)
	if !strings.Contains(out, "mov eax, 0") {
		t.Errorf("integer-only printf arguments should set eax to 0:\n%s", out)
	}
}

func TestGeneratePrintfOddArgumentCountDoesNotAdjustRsp(t *testing.T) {
	// 3 total args (format + 2 ints): the push/pop sequence is already
	// self-balancing, so no sub/add rsp should appear despite the odd count.
	out := mustGenerate(t, `int main() { printf("%ld %ld", 1, 2); return 0; }`, defaultOpts)
	body := mainBody(t, out)
	if strings.Contains(body, "sub rsp") || strings.Contains(body, "add rsp") {
		t.Errorf("printf's balanced push/pop sequence needs no rsp adjustment:\n%s", body)
	}
}

func TestGenerateUnsignedComparisonUsesUnsignedSetCC(t *testing.T) {
	out := mustGenerate(t, "int main() { unsigned int a = 1; unsigned int b = 2; return a < b; }", defaultOpts)
	if !strings.Contains(out, "setb") {
		t.Errorf("comparing two unsigned operands should use setb, not setl:\n%s", out)
	}
}

func TestGenerateSignedComparisonUsesSignedSetCC(t *testing.T) {
	out := mustGenerate(t, "int main() { int a = 1; int b = 2; return a < b; }", defaultOpts)
	if !strings.Contains(out, "setl") {
		t.Errorf("comparing two signed operands should use setl:\n%s", out)
	}
}

func TestGenerateForLoopUsesExclusiveBoundInstructionShape(t *testing.T) {
	out := mustGenerate(t, "int main() { int s = 0; for (int i = 0; i < 10; i = i + 1) { s = s + i; } return s; }", defaultOpts)
	for _, want := range []string{"jle", "inc rax"} {
		if !strings.Contains(out, want) {
			t.Errorf("for-loop lowering missing %q:\n%s", want, out)
		}
	}
}

func TestGenerateArrayAccessLinearizesMultiDimensionalIndex(t *testing.T) {
	out := mustGenerate(t, "int main() { int a[2][3]; a[1][2] = 5; return a[1][2]; }", defaultOpts)
	if !strings.Contains(out, "imul rax, 3") {
		t.Errorf("second dimension's stride (3) should appear as an imul multiplier:\n%s", out)
	}
	if !strings.Contains(out, "imul rax, 8") {
		t.Errorf("element size (8 bytes) should appear as an imul multiplier:\n%s", out)
	}
}

func TestGenerateFloatLiteralInternsDoubleAndMovesViaXmm(t *testing.T) {
	out := mustGenerate(t, "float f() { return 1.5; } int main() { f(); return 0; }", defaultOpts)
	if !strings.Contains(out, "movsd") || !strings.Contains(out, ".double 1.5") {
		t.Errorf("expected a pooled double literal moved via movsd:\n%s", out)
	}
}

func TestGenerateStringLiteralIsInternedAndLoadedWithLea(t *testing.T) {
	out := mustGenerate(t, `int main() { printf("hi"); return 0; }`, defaultOpts)
	if !strings.Contains(out, `.asciz "hi"`) {
		t.Errorf("string literal should be pooled into the data section:\n%s", out)
	}
	if !strings.Contains(out, "lea rax, [rip+.STR") {
		t.Errorf("string literal load should use lea with a data label:\n%s", out)
	}
}

func TestTryFoldIntDisabledByFloatResultType(t *testing.T) {
	v := &ast.BinaryExpr{
		ExprMeta: ast.ExprMeta{Type: ast.FLOAT},
		Op:       "+",
		Left:     &ast.LiteralExpr{Kind: ast.IntLiteral, IntVal: 1, ExprMeta: ast.ExprMeta{Type: ast.INT}},
		Right:    &ast.LiteralExpr{Kind: ast.IntLiteral, IntVal: 2, ExprMeta: ast.ExprMeta{Type: ast.INT}},
	}
	if _, ok := tryFoldInt(v); ok {
		t.Error("tryFoldInt should refuse to fold when the result type is FLOAT")
	}
}

func TestTryFoldIntModuloByLiteralZero(t *testing.T) {
	v := &ast.BinaryExpr{
		ExprMeta: ast.ExprMeta{Type: ast.INT},
		Op:       "%",
		Left:     &ast.LiteralExpr{Kind: ast.IntLiteral, IntVal: 5, ExprMeta: ast.ExprMeta{Type: ast.INT}},
		Right:    &ast.LiteralExpr{Kind: ast.IntLiteral, IntVal: 0, ExprMeta: ast.ExprMeta{Type: ast.INT}},
	}
	if _, ok := tryFoldInt(v); ok {
		t.Error("tryFoldInt should refuse to fold modulo by a literal zero")
	}
}

func TestLiteralIsZeroReportsNonLiteralAsNotALiteral(t *testing.T) {
	isLit, _ := literalIsZero(&ast.IdentifierExpr{Name: "x"})
	if isLit {
		t.Error("literalIsZero should report false for a non-literal expression")
	}
}

func TestTrailingStrideSkipsUnknownLengthDimension(t *testing.T) {
	if got := trailingStride([]int{-1, 4}, 0); got != 4 {
		t.Errorf("trailingStride with an unknown first dimension = %d; want 4", got)
	}
}
