package board

// Cells is the number of positions on the board.
const Cells = 9

// BitsPerCell is the width of one cell slot in the packed encoding.
const BitsPerCell = 2

const slotBits = 1<<BitsPerCell - 1

// Position is a 1-indexed cell number in row-major order (1..9).
type Position int

// Offset returns the bit offset of the position's slot.
func (p Position) Offset() uint {
	return uint(p-1) * BitsPerCell
}

// Player is the 2-bit code written into a cell slot.
type Player uint32

const (
	Empty   Player = 0
	Player1 Player = 1
	Player2 Player = 2
)

// Players lists the two players in driver order.
var Players = [...]Player{Player1, Player2}

// Mask is a packed bit pattern over the 18-bit board.
type Mask uint32

// CheckPositions returns the mask asserting that cells a, b and c all hold
// the player's mark. Inputs are not validated.
func CheckPositions(a, b, c Position, player Player) Mask {
	p := Mask(player)
	return p<<a.Offset() | p<<b.Offset() | p<<c.Offset()
}

// SlotMask returns both bits of the slot at the 0-based cell index.
func SlotMask(index int) Mask {
	return Mask(slotBits) << (uint(index) * BitsPerCell)
}

// Board is a packed board value, 2 bits per cell.
type Board uint32

// Set returns a copy of b with pos holding player.
func (b Board) Set(pos Position, player Player) Board {
	off := pos.Offset()
	b &^= Board(slotBits) << off
	return b | Board(player)<<off
}

// At returns the code stored at pos.
func (b Board) At(pos Position) Player {
	return Player(b>>pos.Offset()) & slotBits
}

// Matches reports whether every bit of m is set in b.
func (b Board) Matches(m Mask) bool {
	return Mask(b)&m == m
}

// Wins reports whether player owns any complete line.
func (b Board) Wins(player Player) bool {
	for _, line := range AllLines() {
		if b.Matches(line.Mask(player)) {
			return true
		}
	}
	return false
}

// Full reports whether no cell slot is empty.
func (b Board) Full() bool {
	for i := range Cells {
		if Mask(b)&SlotMask(i) == 0 {
			return false
		}
	}
	return true
}

// Render returns the display character for pos: ' ' when empty, 'x' when the
// low bit is set, 'o' otherwise.
func (b Board) Render(pos Position) byte {
	v := b.At(pos)
	switch {
	case v == Empty:
		return ' '
	case v&1 == 1:
		return 'x'
	default:
		return 'o'
	}
}
