/*
Command weave is the entry point for the Weave interpreter. It provides
two modes of operation:

 1. REPL mode (default): interactive read-eval-print loop.
 2. File mode: execute a Weave source file given on the command line.

--help/--version handling and panic-recovered file execution. There is no
networked/multi-client server mode: nothing in this interpreter's external
interfaces names a socket surface to serve. --no-color, parsed with the
standard flag package, gates internal/logging's colorized handler.
*/
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/fatih/color"

	"github.com/ashgrove/weave/eval"
	"github.com/ashgrove/weave/internal/logging"
	"github.com/ashgrove/weave/parser"
	"github.com/ashgrove/weave/repl"
	"github.com/ashgrove/weave/value"
)

const version = "v0.1.0"
const author = "ashgrove"
const license = "MIT"
const prompt = "weave >>> "
const line = "----------------------------------------------------------------"

const banner = `
 █     █░▓█████ ▄▄▄    ██▒   █▓▓█████
▓█░ █ ░█░▓█   ▀▒████▄ ▓██░   █▒▓█   ▀
▒█░ █ ░█ ▒███  ▒██  ▀█▄▓██  █▒░▒███
░█░ █ ░█ ▒▓█  ▄░██▄▄▄▄██▒██ █░░▒▓█  ▄
░░██▒██▓ ░▒████▒▓█   ▓██▒▒▀█░  ░▒████▒
`

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

func main() {
	noColor := flag.Bool("no-color", false, "disable colorized REPL/log output")
	showVer := flag.Bool("version", false, "print version and exit")
	flag.BoolVar(showVer, "v", false, "print version and exit (shorthand)")
	flag.Usage = showHelp
	flag.Parse()

	if *noColor {
		color.NoColor = true
	}
	slog.SetDefault(logging.NewLogger(os.Stderr, slog.LevelWarn, !*noColor))

	if *showVer {
		showVersion()
		return
	}

	args := flag.Args()
	if len(args) == 0 {
		r := repl.NewRepl(banner, version, author, line, license, prompt)
		r.Start(os.Stdin, os.Stdout)
		return
	}
	runFile(args[0])
}

func showHelp() {
	cyanColor.Println("Weave - a small dynamically typed expression language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  weave                      Start interactive REPL mode")
	yellowColor.Println("  weave <path-to-file>       Execute a Weave source file")
	yellowColor.Println("  weave --no-color           Disable colorized output")
	yellowColor.Println("  weave --help               Display this help message")
	yellowColor.Println("  weave --version            Display version information")
}

func showVersion() {
	cyanColor.Println("Weave - a small dynamically typed expression language")
	cyanColor.Printf("Version: %s\n", version)
	cyanColor.Printf("License: %s\n", license)
	cyanColor.Printf("Author : %s\n", author)
}

func runFile(fileName string) {
	src, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not read file %q: %v\n", fileName, err)
		os.Exit(1)
	}
	executeFileWithRecovery(string(src))
}

func executeFileWithRecovery(source string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(os.Stderr, "[RUNTIME ERROR] %v\n", recovered)
			os.Exit(1)
		}
	}()

	p := parser.NewParser(source)
	seq, errs := p.Parse()
	if len(errs) > 0 {
		for _, e := range errs {
			redColor.Fprintf(os.Stderr, "[PARSE ERROR] %s\n", e)
		}
		slog.Warn("parse failed", "errors", len(errs))
		os.Exit(1)
	}

	evaluator := eval.NewEvaluator()
	result, evalErr := evaluator.EvalProgram(seq)
	if evalErr != nil {
		redColor.Fprintf(os.Stderr, "%s\n", evalErr)
		slog.Warn("evaluation failed", "kind", string(evalErr.Kind))
		os.Exit(1)
	}
	if result != nil && result.Kind() != value.NilKind {
		yellowColor.Fprintf(os.Stdout, "%s\n", result.Display())
	}
}
