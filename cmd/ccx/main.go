// Command ccx is the compiler's CLI entry point: argument parsing,
// pipeline wiring (read -> lex -> parse -> analyze -> generate -> write),
// and exit-code discipline — SPEC_FULL.md §6/§7. No package below this
// one calls os.Exit; every pipeline stage returns a Go error that this
// file alone turns into a process exit code.
//
// Grounded on the teacher's cmd/execute.go for CLI-argument-builder usage
// (github.com/ComedicChimera/olive), narrowed from chai's subcommand tree
// (build/mod/version) down to this tool's flat
// `compiler <input> [-o <output>]` contract.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ComedicChimera/olive"

	"github.com/fl0k3n-style/ccx/ast"
	"github.com/fl0k3n-style/ccx/codegen"
	"github.com/fl0k3n-style/ccx/config"
	"github.com/fl0k3n-style/ccx/diagnostics"
	"github.com/fl0k3n-style/ccx/lexer"
	"github.com/fl0k3n-style/ccx/parser"
	"github.com/fl0k3n-style/ccx/semantics"
	"github.com/fl0k3n-style/ccx/token"
	"github.com/fl0k3n-style/ccx/utils"
)

func main() {
	os.Exit(run())
}

func run() int {
	cli := olive.NewCLI("ccx", "an ahead-of-time compiler targeting x86-64 assembly", true)
	cli.AddPrimaryArg("input", "the source file to compile", true)
	cli.AddStringArg("output", "o", "the output assembly path", false)
	cli.AddStringArg("config", "", "an explicit ccxconfig.toml path", false)
	cli.AddSelectorArg("loglevel", "", "the diagnostics log level", false,
		[]string{"silent", "error", "warn", "verbose"})
	cli.AddFlag("no-fold", "", "disable constant folding")
	cli.AddFlag("no-dce", "", "disable dead-code elimination of literal-condition branches")

	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, "usage error:", err)
		return 1
	}

	inputPath, _ := result.PrimaryArg()

	configPath := ""
	if v, ok := result.Arguments["config"]; ok {
		configPath = v.(string)
	} else {
		configPath = filepath.Join(filepath.Dir(inputPath), "ccxconfig.toml")
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		return 1
	}

	outputOverride := ""
	if v, ok := result.Arguments["output"]; ok {
		outputOverride = v.(string)
	}
	logLevelOverride := ""
	if v, ok := result.Arguments["loglevel"]; ok {
		logLevelOverride = v.(string)
	}
	cfg.ApplyOverrides(result.HasFlag("no-fold"), result.HasFlag("no-dce"), outputOverride, logLevelOverride)

	reporter := diagnostics.New(diagnostics.ParseLevel(cfg.LogLevel))
	return compile(inputPath, cfg, reporter)
}

// driver holds the pipeline's intermediate values between stages, chained
// with utils.Monad the same way the teacher's grammar.Reader.Read chains
// Pipeline().Then(...) calls: each stage reads/writes driver fields and
// reports its own diagnostic on failure, and the chain short-circuits on
// the first error per Monad.Then's semantics.
type driver struct {
	inputPath string
	cfg       config.Config
	reporter  *diagnostics.Reporter

	src     string
	tokens  []token.Token
	prog    *ast.Program
	semErrs *semantics.ErrorTracker
	asm     string
}

func (d *driver) read() error {
	d.reporter.Stage("reading")
	src, err := os.ReadFile(d.inputPath)
	if err != nil {
		d.reporter.Error("I/O Error", err.Error())
		return err
	}
	d.src = string(src)
	return nil
}

func (d *driver) lex() error {
	d.reporter.Stage("lexing")
	tokens, err := lexer.Tokenize(d.src)
	if err != nil {
		d.reporter.Error("Lex Error", err.Error())
		return err
	}
	d.tokens = tokens
	return nil
}

func (d *driver) parse() error {
	d.reporter.Stage("parsing")
	prog, err := parser.Parse(d.tokens)
	if err != nil {
		d.reporter.Error("Parse Error", err.Error())
		return err
	}
	d.prog = prog
	return nil
}

func (d *driver) analyze() error {
	d.reporter.Stage("semantic analysis")
	errs, err := semantics.Analyze(d.prog)
	if err != nil {
		d.reporter.SemanticErrors(errs.Messages())
		return err
	}
	d.semErrs = errs
	return nil
}

func (d *driver) generate() error {
	d.reporter.Stage("code generation")
	d.asm = codegen.Generate(d.prog, codegen.Options{
		FoldConstants:         d.cfg.FoldConstants,
		EliminateDeadBranches: d.cfg.EliminateDeadBranches,
	})
	return nil
}

func (d *driver) write() error {
	d.reporter.Stage("writing")
	if err := os.WriteFile(d.cfg.DefaultOutput, []byte(d.asm), 0o644); err != nil {
		d.reporter.Error("I/O Error", err.Error())
		return err
	}
	return nil
}

func compile(inputPath string, cfg config.Config, reporter *diagnostics.Reporter) int {
	d := &driver{inputPath: inputPath, cfg: cfg, reporter: reporter}

	err := utils.Pipeline().
		Then(d.read).
		Then(d.lex).
		Then(d.parse).
		Then(d.analyze).
		Then(d.generate).
		Then(d.write).
		Error()
	if err != nil {
		return 1
	}

	outputPath := cfg.DefaultOutput
	reporter.Success(fmt.Sprintf("Compilation successful -> %s (assemble with: gcc -no-pie %s -o program)", outputPath, outputPath))
	return 0
}
