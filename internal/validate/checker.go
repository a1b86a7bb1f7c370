package validate

import (
	"fmt"
	"go/token"
	"maps"
	"math/bits"
	"slices"
	"strings"

	"tttgen/internal/board"
	"tttgen/internal/diag"
	"tttgen/internal/ir"
)

// CheckDesign re-derives the mask invariants from the design and reports every
// clause that disagrees with the board geometry.
func CheckDesign(design *ir.Design, reporter *diag.Reporter) error {
	if design == nil {
		return fmt.Errorf("no design provided for validation")
	}
	if reporter == nil {
		return fmt.Errorf("no reporter provided for validation")
	}

	c := &checker{
		reporter: reporter,
		wins:     make(map[board.Player][]*ir.MaskEquals),
	}
	c.run(design)
	if reporter.HasErrors() {
		return fmt.Errorf("validation failed with %d issue(s)", reporter.ErrorCount())
	}
	return nil
}

type checker struct {
	reporter *diag.Reporter
	wins     map[board.Player][]*ir.MaskEquals
	grid     []*ir.CellRender
}

func (c *checker) errorf(format string, args ...any) {
	c.reporter.Errorf(format, args...)
}

func (c *checker) run(design *ir.Design) {
	if !token.IsIdentifier(design.Symbol) {
		c.reporter.Warnf("symbol %q is not a plain identifier", design.Symbol)
	}
	var ties, grids int
	for _, block := range design.Blocks {
		if block == nil {
			continue
		}
		switch block.Kind {
		case ir.WinCheck:
			c.checkWinBlock(block)
		case ir.TieCheck:
			ties++
			c.checkTieBlock(block)
		case ir.GridFormat:
			grids++
			c.checkGridBlock(block)
		}
	}
	if ties != 1 || grids != 1 {
		c.errorf("expected one tie and one grid block, got %d and %d", ties, grids)
	}
	c.checkDisjoint()
	c.checkExhaustive()
}

func (c *checker) checkWinBlock(block *ir.Block) {
	label := strings.TrimSuffix(block.Label, ":")
	if block.Player != board.Player1 && block.Player != board.Player2 {
		c.errorf("%s: player code %d is not 1 or 2", label, block.Player)
	}
	if block.Sep != ir.Or {
		c.errorf("%s: win clauses must be joined with or", label)
	}
	for _, clause := range block.Clauses {
		eq, ok := clause.(*ir.MaskEquals)
		if !ok {
			c.errorf("%s: unexpected clause %T", label, clause)
			continue
		}
		c.checkLineMask(label, eq)
		c.wins[block.Player] = append(c.wins[block.Player], eq)
	}
}

func (c *checker) checkLineMask(label string, eq *ir.MaskEquals) {
	cells := eq.Line.Cells
	seen := make(map[board.Position]bool, len(cells))
	for _, pos := range cells {
		if pos < 1 || pos > board.Cells {
			c.errorf("%s: position %d out of range", label, pos)
			return
		}
		if seen[pos] {
			c.errorf("%s: position %d repeated in %v", label, pos, cells)
			return
		}
		seen[pos] = true
	}
	if want := eq.Line.Mask(eq.Player); eq.Mask != want {
		c.errorf("%s: %s %v mask %d, want %d", label, eq.Line.Category, cells, eq.Mask, want)
		return
	}
	if n := bits.OnesCount32(uint32(eq.Mask)); n != len(cells)*bits.OnesCount32(uint32(eq.Player)) {
		c.errorf("%s: %v mask %d has %d bits set", label, cells, eq.Mask, n)
	}
	for pos := board.Position(1); pos <= board.Cells; pos++ {
		got := board.Board(eq.Mask).At(pos)
		want := board.Empty
		if seen[pos] {
			want = eq.Player
		}
		if got != want {
			c.errorf("%s: %v mask %d holds %d at cell %d, want %d", label, cells, eq.Mask, got, pos, want)
		}
	}
}

func (c *checker) checkDisjoint() {
	for _, player := range board.Players {
		if len(c.wins[player]) == 0 {
			c.errorf("no win checks for player %d", player)
		}
	}
	players := slices.Sorted(maps.Keys(c.wins))
	for i, pa := range players {
		for _, pb := range players[i+1:] {
			for _, a := range c.wins[pa] {
				for _, b := range c.wins[pb] {
					if a.Line.Cells == b.Line.Cells && a.Mask&b.Mask != 0 {
						c.errorf("%v: masks %d (player %d) and %d (player %d) overlap", a.Line.Cells, a.Mask, pa, b.Mask, pb)
					}
				}
			}
		}
	}
}

func (c *checker) checkTieBlock(block *ir.Block) {
	if len(block.Clauses) != board.Cells {
		c.errorf("%s: expected %d clauses, got %d", block.Label, board.Cells, len(block.Clauses))
	}
	for i, clause := range block.Clauses {
		nz, ok := clause.(*ir.MaskNonZero)
		if !ok {
			c.errorf("%s: unexpected clause %T", block.Label, clause)
			continue
		}
		if nz.Index != i || nz.Mask != board.SlotMask(i) {
			c.errorf("%s: clause %d tests mask %d, want %d", block.Label, i, nz.Mask, board.SlotMask(i))
		}
	}
}

func (c *checker) checkGridBlock(block *ir.Block) {
	if len(block.Clauses) != board.Cells {
		c.errorf("%s: expected %d cells, got %d", block.Label, board.Cells, len(block.Clauses))
	}
	for i, clause := range block.Clauses {
		cell, ok := clause.(*ir.CellRender)
		if !ok {
			c.errorf("%s: unexpected clause %T", block.Label, clause)
			continue
		}
		if cell.Index != i || cell.Shift != uint(i)*board.BitsPerCell {
			c.errorf("%s: cell %d uses shift %d", block.Label, i, cell.Shift)
		}
		c.grid = append(c.grid, cell)
	}
}

// checkExhaustive evaluates the win masks and the cell renderers against every
// board with cells drawn from {empty, 1, 2} and compares with direct cell
// inspection.
func (c *checker) checkExhaustive() {
	total := 1
	for range board.Cells {
		total *= 3
	}
	failed := make(map[board.Player]bool)
	gridFailed := false
	for n := range total {
		b := decodeTernary(n)
		for _, player := range board.Players {
			masks := c.wins[player]
			if len(masks) == 0 || failed[player] {
				continue
			}
			if got, want := anyMatch(b, masks), ownsLine(b, player); got != want {
				c.errorf("player %d: masks give %v on board %018b, cells give %v", player, got, b, want)
				failed[player] = true
			}
		}
		if gridFailed {
			continue
		}
		for _, cell := range c.grid {
			if got, want := renderSlot(uint32(b)>>cell.Shift), b.Render(board.Position(cell.Index+1)); got != want {
				c.errorf("cell %d: renders %q on board %018b, want %q", cell.Index, got, b, want)
				gridFailed = true
				break
			}
		}
	}
}

// renderSlot mirrors the emitted ternary: low two bits zero is empty, low bit
// set is x, anything else is o.
func renderSlot(v uint32) byte {
	switch {
	case v&3 == 0:
		return ' '
	case v&1 == 1:
		return 'x'
	default:
		return 'o'
	}
}

func decodeTernary(n int) board.Board {
	var b board.Board
	for pos := board.Position(1); pos <= board.Cells; pos++ {
		b = b.Set(pos, board.Player(n%3))
		n /= 3
	}
	return b
}

func anyMatch(b board.Board, masks []*ir.MaskEquals) bool {
	for _, eq := range masks {
		if b.Matches(eq.Mask) {
			return true
		}
	}
	return false
}

func ownsLine(b board.Board, player board.Player) bool {
	for _, line := range board.AllLines() {
		owned := true
		for _, pos := range line.Cells {
			if b.At(pos) != player {
				owned = false
				break
			}
		}
		if owned {
			return true
		}
	}
	return false
}
