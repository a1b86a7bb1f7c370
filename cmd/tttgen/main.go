// Command tttgen prints the bitmask expressions for a tic-tac-toe board packed
// two bits per cell: per-player win checks, the tie check and the nine cell
// display expressions.
//
// Run without arguments for the plain text output, or from a go:generate
// directive with -emit=go:
//
//	//go:generate go run tttgen/cmd/tttgen -emit=go -package=board -o board_gen.go
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"tttgen/internal/cexpr"
	"tttgen/internal/diag"
	"tttgen/internal/goemit"
	"tttgen/internal/ir"
	"tttgen/internal/validate"
)

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) > 0 {
		switch args[0] {
		case "lint":
			return runLint(args[1:])
		case "help":
			printGlobalUsage()
			return nil
		}
	}
	return runGenerate(args)
}

func runGenerate(args []string) error {
	fs := flag.NewFlagSet("tttgen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = printGlobalUsage

	symbol := fs.String("symbol", ir.DefaultSymbol, "board variable name used in the generated expressions")
	emit := fs.String("emit", "text", "output format (text|ir|go)")
	output := fs.String("o", "", "output file path (stdout when omitted)")
	pkg := fs.String("package", goemit.DefaultPackage, "package clause for -emit=go")
	check := fs.Bool("check", false, "validate the design before emitting")
	levelStr := fs.String("log-level", "warn", "debug|info|warn|error")
	diagFormat := fs.String("diag-format", "text", "diagnostic output format (text|json)")
	color := fs.Bool("color", false, "colour text diagnostics")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	logger, err := newLogger(*levelStr)
	if err != nil {
		return err
	}
	if err := checkDiagFormat(*diagFormat); err != nil {
		return err
	}
	design := ir.BuildDesign(*symbol)
	logDesign(logger, design)

	if *check {
		reporter := diag.NewReporter(stderr, *diagFormat)
		reporter.SetColor(*color)
		if err := validate.CheckDesign(design, reporter); err != nil {
			return err
		}
	}

	logger.Info("emitting", "format", *emit, "output", outputName(*output))
	switch *emit {
	case "text":
		return withOutputWriter(*output, func(w io.Writer) error {
			return cexpr.Emit(design, w)
		})
	case "ir":
		return withOutputWriter(*output, func(w io.Writer) error {
			ir.Dump(design, w)
			return nil
		})
	case "go":
		opts := goemit.Options{
			Package: *pkg,
			Source:  "tttgen " + strings.Join(args, " "),
		}
		return withOutputWriter(*output, func(w io.Writer) error {
			return goemit.Emit(design, w, opts)
		})
	default:
		return fmt.Errorf("unknown emit format: %s", *emit)
	}
}

func runLint(args []string) error {
	fs := flag.NewFlagSet("lint", flag.ContinueOnError)
	fs.SetOutput(stderr)

	symbol := fs.String("symbol", ir.DefaultSymbol, "board variable name used in the generated expressions")
	levelStr := fs.String("log-level", "warn", "debug|info|warn|error")
	diagFormat := fs.String("diag-format", "text", "diagnostic output format (text|json)")
	color := fs.Bool("color", false, "colour text diagnostics")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	logger, err := newLogger(*levelStr)
	if err != nil {
		return err
	}
	if err := checkDiagFormat(*diagFormat); err != nil {
		return err
	}
	design := ir.BuildDesign(*symbol)
	logDesign(logger, design)

	reporter := diag.NewReporter(stderr, *diagFormat)
	reporter.SetColor(*color)
	if err := validate.CheckDesign(design, reporter); err != nil {
		return err
	}
	logger.Info("design ok", "blocks", len(design.Blocks))
	return nil
}

func printGlobalUsage() {
	fmt.Fprintf(stderr, "tttgen: tic-tac-toe bitmask expression generator\n\n")
	fmt.Fprintf(stderr, "Usage:\n")
	fmt.Fprintf(stderr, "  tttgen [options]        print the expressions\n")
	fmt.Fprintf(stderr, "  tttgen lint [options]   check the mask invariants only\n\n")
	fmt.Fprintf(stderr, "Options:\n")
	fmt.Fprintf(stderr, "  -symbol name        board variable (default %q)\n", ir.DefaultSymbol)
	fmt.Fprintf(stderr, "  -emit text|ir|go    output format (default text)\n")
	fmt.Fprintf(stderr, "  -o path             output file (default stdout)\n")
	fmt.Fprintf(stderr, "  -package name       package for -emit=go (default %q)\n", goemit.DefaultPackage)
	fmt.Fprintf(stderr, "  -check              validate before emitting\n")
	fmt.Fprintf(stderr, "  -log-level level    debug|info|warn|error (default warn)\n")
	fmt.Fprintf(stderr, "  -diag-format fmt    text|json (default text)\n")
	fmt.Fprintf(stderr, "  -color              colour text diagnostics\n")
}

func newLogger(level string) (*slog.Logger, error) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		return nil, fmt.Errorf("unknown log level: %s", level)
	}
	return slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: lvl})), nil
}

func checkDiagFormat(format string) error {
	switch format {
	case "text", "json":
		return nil
	default:
		return fmt.Errorf("unknown diagnostic format: %s", format)
	}
}

func logDesign(logger *slog.Logger, design *ir.Design) {
	logger.Debug("design built", "symbol", design.Symbol, "blocks", len(design.Blocks))
	for _, block := range design.Blocks {
		logger.Debug("block", "label", block.Label, "clauses", len(block.Clauses), "sep", block.Sep.String())
	}
}

func outputName(path string) string {
	if path == "" || path == "-" {
		return "stdout"
	}
	return path
}

func withOutputWriter(path string, fn func(io.Writer) error) error {
	w, cleanup, err := outputWriter(path)
	if err != nil {
		return err
	}
	if cleanup == nil {
		return fn(w)
	}
	err = fn(w)
	if closeErr := cleanup(); err == nil && closeErr != nil {
		err = closeErr
	}
	return err
}

func outputWriter(path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return stdout, nil, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output: %w", err)
	}
	return f, f.Close, nil
}
