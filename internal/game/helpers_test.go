package game

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/segunkayode1/chess/internal/board"
)

// sq parses a square name such as "e4". Rank 8 is board rank 0.
func sq(name string) board.Square {
	return board.NewSquare(int(name[0]-'a'), board.Size-int(name[1]-'0'))
}

func mv(src, dst string) board.Move {
	return board.NewMove(sq(src), sq(dst))
}

// mustState builds a game from a FEN piece placement with turn to move.
func mustState(t *testing.T, placement string, turn board.Color) *State {
	t.Helper()
	b, err := board.ParsePlacement(placement)
	if err != nil {
		t.Fatalf("ParsePlacement(%q): %v", placement, err)
	}
	s, err := NewWithBoard(b, WithTurn(turn))
	if err != nil {
		t.Fatalf("NewWithBoard: %v", err)
	}
	return s
}

// fromFEN builds a game from the placement and side-to-move fields of fen.
func fromFEN(t *testing.T, fen string) *State {
	t.Helper()
	fields := strings.Fields(fen)
	if len(fields) < 2 {
		t.Fatalf("short FEN %q", fen)
	}
	turn := board.White
	if fields[1] == "b" {
		turn = board.Black
	}
	return mustState(t, fields[0], turn)
}

// play applies moves after checking each one is legal.
func play(t *testing.T, s *State, moves ...board.Move) {
	t.Helper()
	for _, m := range moves {
		if !s.ValidPieceMoves(m.Src).Has(m.Dst) {
			t.Fatalf("move %v is not legal in\n%s", m, s.board)
		}
		s.applyMove(m)
	}
}

// squares builds a set from square names.
func squares(names ...string) board.SquareSet {
	set := board.SquareSet{}
	for _, n := range names {
		set.Add(sq(n))
	}
	return set
}

// checkOccupancy verifies the per-color occupancy sets against the grid.
func checkOccupancy(t *testing.T, b *board.Board) {
	t.Helper()
	want := [2]board.SquareSet{{}, {}}
	grid := b.Grid()
	for rank := 0; rank < board.Size; rank++ {
		for file := 0; file < board.Size; file++ {
			if tile := grid[rank][file]; tile.Occupied {
				want[tile.Piece.Color].Add(board.NewSquare(file, rank))
			}
		}
	}
	for _, c := range []board.Color{board.White, board.Black} {
		if diff := cmp.Diff(want[c], b.Occupancy(c)); diff != "" {
			t.Errorf("%s occupancy mismatch (-want +got):\n%s", c, diff)
		}
	}
}

// center returns device coordinates in the middle of square name.
func center(s *State, name string) (int, int) {
	square := sq(name)
	return square.File*s.tileSize + s.tileSize/2, square.Rank*s.tileSize + s.tileSize/2
}
