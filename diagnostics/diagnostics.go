// Package diagnostics renders pipeline progress and compilation
// diagnostics to stderr, colorized with github.com/pterm/pterm —
// SPEC_FULL.md §4.6. No package below cmd/ccx imports this one; every
// pass returns a plain Go error, and cmd/ccx alone decides what to print
// and what exit code to return (SPEC_FULL.md §7).
//
// Grounded on the teacher's logging/display.go: the same banner-style
// colored-background-tag-plus-message shapes (PrintErrorMessage,
// PrintWarningMessage, PrintInfoMessage) and the same phase-spinner
// begin/end pairing, narrowed from the teacher's full compile-message
// positional-highlighting machinery (which needs multi-file import
// contexts this single-file compiler has no use for) down to a flat
// tag+line reporter.
package diagnostics

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
)

var (
	successFG = pterm.FgLightGreen
	successBG = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	warnFG    = pterm.FgYellow
	warnBG    = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	errorFG   = pterm.FgRed
	errorBG   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	infoFG    = pterm.FgCyan
)

// Level is a log-level gate, from least to most verbose.
type Level int

const (
	LevelSilent Level = iota
	LevelError
	LevelWarn
	LevelVerbose
)

func ParseLevel(name string) Level {
	switch name {
	case "silent":
		return LevelSilent
	case "error":
		return LevelError
	case "verbose":
		return LevelVerbose
	default:
		return LevelWarn
	}
}

// Reporter prints stage markers and diagnostics to stderr, gated by a
// configured Level, mirroring the teacher's global logger/display split:
// this type accumulates no state about the compilation itself (that's
// semantics.ErrorTracker's job) — it only knows how to put lines on the
// screen.
type Reporter struct {
	level Level
}

func New(level Level) *Reporter {
	return &Reporter{level: level}
}

// Stage prints a stage-progress marker (reading, lexing, parsing,
// semantic analysis, code generation, writing) at LevelVerbose.
func (r *Reporter) Stage(name string) {
	if r.level < LevelVerbose {
		return
	}
	fmt.Fprintln(os.Stderr, infoFG.Sprint("-- "+name))
}

// Error prints a red error banner followed by msg, at LevelError or
// above.
func (r *Reporter) Error(tag, msg string) {
	if r.level < LevelError {
		return
	}
	fmt.Fprint(os.Stderr, errorBG.Sprint(" "+tag+" "))
	fmt.Fprintln(os.Stderr, errorFG.Sprint(" "+msg))
}

// Warning prints a yellow warning banner, at LevelWarn or above.
func (r *Reporter) Warning(tag, msg string) {
	if r.level < LevelWarn {
		return
	}
	fmt.Fprint(os.Stderr, warnBG.Sprint(" "+tag+" "))
	fmt.Fprintln(os.Stderr, warnFG.Sprint(" "+msg))
}

// Success prints a green success banner, at LevelWarn or above.
func (r *Reporter) Success(msg string) {
	if r.level < LevelWarn {
		return
	}
	fmt.Fprint(os.Stderr, successBG.Sprint(" ok "))
	fmt.Fprintln(os.Stderr, successFG.Sprint(" "+msg))
}

// SemanticErrors prints every accumulated semantic diagnostic, one per
// line, followed by a final count — SPEC_FULL.md §4.6.
func (r *Reporter) SemanticErrors(messages []string) {
	if r.level < LevelError {
		return
	}
	for _, m := range messages {
		r.Error("Semantic Error", m)
	}
	fmt.Fprintln(os.Stderr, errorFG.Sprint(fmt.Sprintf("%d error(s)", len(messages))))
}
