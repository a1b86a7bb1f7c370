package ir

import (
	"fmt"
	"io"
)

// Dump writes a simple human-readable representation of the design.
func Dump(design *Design, w io.Writer) {
	if design == nil {
		fmt.Fprintln(w, "<nil design>")
		return
	}
	fmt.Fprintf(w, "design symbol=%s\n", design.Symbol)
	for idx, block := range design.Blocks {
		fmt.Fprintf(w, "  block %d %s %q (%s, %d clauses)\n",
			idx,
			blockKind(block.Kind),
			block.Label,
			block.Sep,
			len(block.Clauses),
		)
		for _, clause := range block.Clauses {
			fmt.Fprintf(w, "    %s\n", renderClause(clause))
		}
	}
}

func renderClause(c Clause) string {
	switch o := c.(type) {
	case *MaskEquals:
		return fmt.Sprintf("eq   %-8d %018b %s %v p%d", o.Mask, o.Mask, o.Line.Category, o.Line.Cells, o.Player)
	case *MaskNonZero:
		return fmt.Sprintf("nz   %-8d %018b cell %d", o.Mask, o.Mask, o.Index)
	case *CellRender:
		return fmt.Sprintf("cell %-8d shift %d", o.Index, o.Shift)
	default:
		return fmt.Sprintf("<unknown clause %T>", c)
	}
}

func blockKind(k BlockKind) string {
	switch k {
	case WinCheck:
		return "win"
	case TieCheck:
		return "tie"
	case GridFormat:
		return "grid"
	default:
		return "?"
	}
}

// Token returns the text placed between clauses.
func (s Separator) Token() string {
	switch s {
	case Or:
		return " || "
	case And:
		return " && "
	case List:
		return ", "
	default:
		return " "
	}
}

func (s Separator) String() string {
	switch s {
	case Or:
		return "or"
	case And:
		return "and"
	case List:
		return "list"
	default:
		return "?"
	}
}
