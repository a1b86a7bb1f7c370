// Package goemit renders a design as a gofmt'd Go source file, for use behind
// a go:generate directive.
package goemit

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"io"

	"golang.org/x/tools/imports"

	"tttgen/internal/cexpr"
	"tttgen/internal/ir"
)

// DefaultPackage is the package clause used when Options.Package is empty.
const DefaultPackage = "board"

// Options configures Go emission.
type Options struct {
	Package string
	// Source is the command line recorded in the generated header.
	Source string
}

// Emit writes the Go rendering of design to w.
func Emit(design *ir.Design, w io.Writer, opts Options) error {
	src, err := Render(design, opts)
	if err != nil {
		return err
	}
	_, err = w.Write(src)
	return err
}

// Render returns the formatted Go source for design.
func Render(design *ir.Design, opts Options) ([]byte, error) {
	if design == nil {
		return nil, fmt.Errorf("no design available to emit")
	}
	pkg := opts.Package
	if pkg == "" {
		pkg = DefaultPackage
	}
	symbol := design.Symbol
	if symbol == "" {
		symbol = ir.DefaultSymbol
	}
	source := opts.Source
	if source == "" {
		source = "tttgen"
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by %s; DO NOT EDIT.\n\n", source)
	fmt.Fprintf(&buf, "package %s\n", pkg)
	for _, block := range design.Blocks {
		if block == nil {
			continue
		}
		switch block.Kind {
		case ir.WinCheck:
			fmt.Fprintf(&buf, "\n// Player%dWins reports whether player %d owns a row, column or diagonal.\n", block.Player, block.Player)
			fmt.Fprintf(&buf, "func Player%dWins(%s uint32) bool {\n\treturn %s\n}\n", block.Player, symbol, cexpr.Expression(block, symbol))
		case ir.TieCheck:
			buf.WriteString("\n// Tie reports whether every cell is occupied.\n")
			fmt.Fprintf(&buf, "func Tie(%s uint32) bool {\n\treturn %s\n}\n", symbol, cexpr.Expression(block, symbol))
		case ir.GridFormat:
			writeCells(&buf, block, symbol)
		}
	}

	out, err := imports.Process("generated.go", buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("format generated go: %w", err)
	}
	if err := typeCheck(pkg, out); err != nil {
		return nil, fmt.Errorf("type check generated go: %w", err)
	}
	return out, nil
}

// typeCheck rejects output that parses but does not compile, e.g. a symbol
// that shadows cell or byte inside the generated functions.
func typeCheck(pkg string, src []byte) error {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "generated.go", src, 0)
	if err != nil {
		return err
	}
	conf := types.Config{}
	_, err = conf.Check(pkg, fset, []*ast.File{file}, nil)
	return err
}

func writeCells(buf *bytes.Buffer, block *ir.Block, symbol string) {
	fmt.Fprintf(buf, "\n// Cells renders the %d cells in row-major order.\n", len(block.Clauses))
	fmt.Fprintf(buf, "func Cells(%s uint32) [%d]byte {\n\treturn [%d]byte{\n", symbol, len(block.Clauses), len(block.Clauses))
	for _, clause := range block.Clauses {
		cell, ok := clause.(*ir.CellRender)
		if !ok {
			continue
		}
		if cell.Shift == 0 {
			fmt.Fprintf(buf, "\t\tcell(%s),\n", symbol)
		} else {
			fmt.Fprintf(buf, "\t\tcell(%s >> %d),\n", symbol, cell.Shift)
		}
	}
	buf.WriteString("\t}\n}\n")
	buf.WriteString(`
func cell(v uint32) byte {
	switch {
	case v&3 == 0:
		return ' '
	case v&1 == 1:
		return 'x'
	default:
		return 'o'
	}
}
`)
}
