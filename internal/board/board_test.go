package board

import (
	"math/bits"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCheckPositionsColumn(t *testing.T) {
	got := CheckPositions(1, 4, 7, Player1)
	if want := Mask(1 | 1<<6 | 1<<12); got != want || got != 4161 {
		t.Fatalf("CheckPositions(1,4,7,1)=%d, want %d", got, want)
	}
}

func TestCheckPositionsSetsPlayerPairs(t *testing.T) {
	for _, player := range Players {
		for _, line := range AllLines() {
			m := line.Mask(player)
			if n := bits.OnesCount32(uint32(m)); n != 3*bits.OnesCount32(uint32(player)) {
				t.Fatalf("%v %v player %d: %d bits set", line.Category, line.Cells, player, n)
			}
			var rebuilt Mask
			for _, pos := range line.Cells {
				if got := Player(m>>pos.Offset()) & slotBits; got != player {
					t.Fatalf("%v slot %d holds %d, want %d", line.Cells, pos, got, player)
				}
				rebuilt |= Mask(player) << (2 * uint(pos-1))
			}
			if rebuilt != m {
				t.Fatalf("%v mask=%d, want %d", line.Cells, m, rebuilt)
			}
		}
	}
}

func TestPlayerMasksDisjoint(t *testing.T) {
	for _, line := range AllLines() {
		if line.Mask(Player1)&line.Mask(Player2) != 0 {
			t.Fatalf("%v masks overlap", line.Cells)
		}
	}
}

func TestSlotMasks(t *testing.T) {
	want := []Mask{3, 12, 48, 192, 768, 3072, 12288, 49152, 196608}
	got := make([]Mask, 0, Cells)
	for i := range Cells {
		got = append(got, SlotMask(i))
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("slot masks mismatch (-want +got):\n%s", diff)
	}
}

func TestLinesByCategory(t *testing.T) {
	tests := []struct {
		cat  Category
		want [][3]Position
	}{
		{Row, [][3]Position{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}},
		{Column, [][3]Position{{1, 4, 7}, {2, 5, 8}, {3, 6, 9}}},
		{Diagonal, [][3]Position{{1, 5, 9}, {3, 5, 7}}},
	}
	for _, tc := range tests {
		t.Run(tc.cat.String(), func(t *testing.T) {
			var got [][3]Position
			for _, l := range Lines(tc.cat) {
				got = append(got, l.Cells)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("lines mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBoardWins(t *testing.T) {
	tests := []struct {
		name  string
		moves map[Position]Player
		p1    bool
		p2    bool
	}{
		{name: "empty"},
		{name: "top row p1", moves: map[Position]Player{1: Player1, 2: Player1, 3: Player1}, p1: true},
		{name: "anti diagonal p2", moves: map[Position]Player{3: Player2, 5: Player2, 7: Player2}, p2: true},
		{name: "mixed column", moves: map[Position]Player{1: Player1, 4: Player2, 7: Player1}},
		{name: "middle column p2", moves: map[Position]Player{2: Player2, 5: Player2, 8: Player2, 1: Player1}, p2: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var b Board
			for pos, pl := range tc.moves {
				b = b.Set(pos, pl)
			}
			if got := b.Wins(Player1); got != tc.p1 {
				t.Fatalf("Wins(1)=%v, want %v", got, tc.p1)
			}
			if got := b.Wins(Player2); got != tc.p2 {
				t.Fatalf("Wins(2)=%v, want %v", got, tc.p2)
			}
		})
	}
}

func TestBoardFullAndRender(t *testing.T) {
	var b Board
	for pos := Position(1); pos <= Cells; pos++ {
		if b.Full() {
			t.Fatalf("board reported full before position %d", pos)
		}
		pl := Player1
		if pos%2 == 0 {
			pl = Player2
		}
		b = b.Set(pos, pl)
	}
	if !b.Full() {
		t.Fatalf("board %018b not full", b)
	}
	var got []byte
	for pos := Position(1); pos <= Cells; pos++ {
		got = append(got, b.Render(pos))
	}
	if string(got) != "xoxoxoxox" {
		t.Fatalf("render=%q", got)
	}
	if r := Board(0).Render(5); r != ' ' {
		t.Fatalf("empty render=%q", r)
	}
}

func TestBoardSetOverwrites(t *testing.T) {
	b := Board(0).Set(5, Player1).Set(5, Player2)
	if got := b.At(5); got != Player2 {
		t.Fatalf("At(5)=%d, want 2", got)
	}
	if b != Board(2<<8) {
		t.Fatalf("board=%b", b)
	}
}
