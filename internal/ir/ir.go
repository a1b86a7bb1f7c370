package ir

import "tttgen/internal/board"

// DefaultSymbol is the board variable name used when none is configured.
const DefaultSymbol = "game"

// Design is the complete generated program: labelled blocks in output order.
type Design struct {
	Symbol string
	Blocks []*Block
}

// Block is one output section whose clauses are joined by a separator.
type Block struct {
	Kind    BlockKind
	Label   string
	Player  board.Player
	Sep     Separator
	Clauses []Clause
}

// BlockKind classifies a block.
type BlockKind int

const (
	WinCheck BlockKind = iota
	TieCheck
	GridFormat
)

// Separator enumerates the joiners used between clauses.
type Separator int

const (
	Or Separator = iota
	And
	List
)

// Clause is implemented by every clause node.
type Clause interface {
	isClause()
}

// MaskEquals tests that every bit of Mask is set: (sym&M)==M.
type MaskEquals struct {
	Mask   board.Mask
	Line   board.Line
	Player board.Player
}

func (MaskEquals) isClause() {}

// MaskNonZero tests that a cell slot is occupied: (sym&M)!=0.
type MaskNonZero struct {
	Mask  board.Mask
	Index int
}

func (MaskNonZero) isClause() {}

// CellRender maps a cell slot to ' ', 'x' or 'o'.
type CellRender struct {
	Index int
	Shift uint
}

func (CellRender) isClause() {}
