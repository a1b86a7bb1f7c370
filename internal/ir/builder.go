package ir

import (
	"fmt"

	"tttgen/internal/board"
)

// BuildDesign assembles the fixed program: one win block per player, the tie
// block and the grid block. An empty symbol selects DefaultSymbol.
func BuildDesign(symbol string) *Design {
	if symbol == "" {
		symbol = DefaultSymbol
	}
	design := &Design{Symbol: symbol}
	for _, player := range board.Players {
		design.Blocks = append(design.Blocks, WinBlock(player))
	}
	design.Blocks = append(design.Blocks, TieBlock(), GridBlock())
	return design
}

// WinBlock joins the row, column and diagonal checks of player with Or.
func WinBlock(player board.Player) *Block {
	block := &Block{
		Kind:   WinCheck,
		Label:  fmt.Sprintf("Player %d check:", player),
		Player: player,
		Sep:    Or,
	}
	for _, cat := range board.Categories {
		block.Clauses = append(block.Clauses, CategoryBlock(cat, player).Clauses...)
	}
	return block
}

// CategoryBlock holds the win checks of a single line category.
func CategoryBlock(cat board.Category, player board.Player) *Block {
	block := &Block{
		Kind:   WinCheck,
		Label:  fmt.Sprintf("%s check player %d", cat, player),
		Player: player,
		Sep:    Or,
	}
	for _, line := range board.Lines(cat) {
		block.Clauses = append(block.Clauses, &MaskEquals{
			Mask:   line.Mask(player),
			Line:   line,
			Player: player,
		})
	}
	return block
}

// TieBlock requires every slot to be non-empty.
func TieBlock() *Block {
	block := &Block{Kind: TieCheck, Label: "Tie game check", Sep: And}
	for i := range board.Cells {
		block.Clauses = append(block.Clauses, &MaskNonZero{Mask: board.SlotMask(i), Index: i})
	}
	return block
}

// GridBlock renders the nine cells in row-major order.
func GridBlock() *Block {
	block := &Block{Kind: GridFormat, Label: "Grid formats", Sep: List}
	for i := range board.Cells {
		block.Clauses = append(block.Clauses, &CellRender{
			Index: i,
			Shift: uint(i) * board.BitsPerCell,
		})
	}
	return block
}
