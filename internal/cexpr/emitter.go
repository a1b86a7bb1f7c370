// Package cexpr renders a design as C-style boolean and ternary expressions
// ready to paste into source code that holds the packed board in a variable.
package cexpr

import (
	"fmt"
	"io"
	"strings"

	"tttgen/internal/board"
	"tttgen/internal/ir"
)

// Emit writes every block of the design: a label line followed by the joined
// expression. Win blocks are followed by a blank line and the grid block is
// preceded by one.
func Emit(design *ir.Design, w io.Writer) error {
	if design == nil {
		return fmt.Errorf("no design available to emit")
	}
	p := &printer{w: w, symbol: symbolOf(design)}
	for _, block := range design.Blocks {
		p.emitBlock(block)
	}
	return p.err
}

// Expression joins the clauses of block into a single expression over symbol.
func Expression(block *ir.Block, symbol string) string {
	if symbol == "" {
		symbol = ir.DefaultSymbol
	}
	parts := make([]string, 0, len(block.Clauses))
	for _, c := range block.Clauses {
		parts = append(parts, Clause(c, symbol))
	}
	return strings.Join(parts, block.Sep.Token())
}

// Clause renders a single clause over symbol.
func Clause(c ir.Clause, symbol string) string {
	switch o := c.(type) {
	case *ir.MaskEquals:
		return fmt.Sprintf("(%s&%d)==%d", symbol, o.Mask, o.Mask)
	case *ir.MaskNonZero:
		return fmt.Sprintf("(%s&%d)!=0", symbol, o.Mask)
	case *ir.CellRender:
		ref := symbol
		if o.Shift != 0 {
			ref = fmt.Sprintf("%s>>%d", symbol, o.Shift)
		}
		return fmt.Sprintf("((%s)&3)==0?' ':(((%s)&1)==1?'x':'o')", ref, ref)
	default:
		return fmt.Sprintf("/* unknown clause %T */", c)
	}
}

// Rows returns the row win checks for player.
func Rows(symbol string, player board.Player) string {
	return Expression(ir.CategoryBlock(board.Row, player), symbol)
}

// Columns returns the column win checks for player.
func Columns(symbol string, player board.Player) string {
	return Expression(ir.CategoryBlock(board.Column, player), symbol)
}

// Diagonals returns the two diagonal win checks for player.
func Diagonals(symbol string, player board.Player) string {
	return Expression(ir.CategoryBlock(board.Diagonal, player), symbol)
}

// AllCellsUsed returns the tie condition: every slot non-empty.
func AllCellsUsed(symbol string) string {
	return Expression(ir.TieBlock(), symbol)
}

// CellFormats returns the nine cell display expressions in row-major order.
func CellFormats(symbol string) []string {
	if symbol == "" {
		symbol = ir.DefaultSymbol
	}
	block := ir.GridBlock()
	out := make([]string, 0, len(block.Clauses))
	for _, c := range block.Clauses {
		out = append(out, Clause(c, symbol))
	}
	return out
}

type printer struct {
	w      io.Writer
	symbol string
	err    error
}

func (p *printer) emitBlock(block *ir.Block) {
	if block == nil {
		return
	}
	if block.Kind == ir.GridFormat {
		p.printf("\n")
	}
	p.printf("%s\n%s\n", block.Label, Expression(block, p.symbol))
	if block.Kind == ir.WinCheck {
		p.printf("\n")
	}
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func symbolOf(design *ir.Design) string {
	if design.Symbol == "" {
		return ir.DefaultSymbol
	}
	return design.Symbol
}
