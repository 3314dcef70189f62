package codegen

// Register names for the fixed accumulator/temporary scheme SPEC_FULL.md
// §4.3 mandates — a narrowing of the teacher's full multi-size
// IntegralRegisterFamily table (the original registers.go modeled every
// qword/dword/word/byte alias for sixteen GPRs, backing a general-purpose
// allocator) down to exactly the registers this generator ever names: with
// no register allocator, the rest of that table has no caller.
const (
	regAccumulator = "rax" // expression result register, function return register
	regOperand     = "rbx" // right-operand holding register for binary ops
	regAccumLow    = "al"

	xmmLeft  = "xmm0"
	xmmRight = "xmm1"
)

// argRegs is the System V AMD64 integer-argument register order, read only
// by genPrintf for the variadic printf call per SPEC_FULL.md §4.3 —
// println names rdi/rsi directly, and user functions use the stack-push
// convention and never read these.
var argRegs = []string{"rdi", "rsi", "rdx", "rcx", "r8", "r9"}

// intBinOps maps a textual arithmetic operator to its integer opcode
// mnemonic, for the operators with a direct one-instruction mapping.
// '/' and '%' need the extra `cqo` step and are handled separately.
var intBinOps = map[string]string{
	"+": "add",
	"-": "sub",
	"*": "imul",
}

var floatBinOps = map[string]string{
	"+": "addsd",
	"-": "subsd",
	"*": "mulsd",
	"/": "divsd",
}

// signedSetCC maps a relational/equality operator to the `setCC`
// mnemonic used when the left operand's type is signed.
var signedSetCC = map[string]string{
	"<":  "setl",
	"<=": "setle",
	">":  "setg",
	">=": "setge",
	"==": "sete",
	"!=": "setne",
}

// unsignedSetCC is the same table for UINT-typed left operands, per
// SPEC_FULL.md §4.3's "unsigned comparison" boundary behavior.
var unsignedSetCC = map[string]string{
	"<":  "setb",
	"<=": "setbe",
	">":  "seta",
	">=": "setae",
	"==": "sete",
	"!=": "setne",
}
