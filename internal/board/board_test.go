package board

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/segunkayode1/chess/internal/errs"
)

// checkOccupancy verifies that the occupancy sets hold exactly the occupied
// tiles of each color and never overlap.
func checkOccupancy(t *testing.T, b *Board) {
	t.Helper()
	want := [2]SquareSet{{}, {}}
	grid := b.Grid()
	for rank := 0; rank < Size; rank++ {
		for file := 0; file < Size; file++ {
			if tile := grid[rank][file]; tile.Occupied {
				want[tile.Piece.Color].Add(NewSquare(file, rank))
			}
		}
	}
	for _, c := range []Color{White, Black} {
		if diff := cmp.Diff(want[c], b.Occupancy(c)); diff != "" {
			t.Errorf("%s occupancy mismatch (-want +got):\n%s", c, diff)
		}
	}
	for sq := range b.Occupancy(White) {
		if b.Occupancy(Black).Has(sq) {
			t.Errorf("square %v in both occupancy sets", sq)
		}
	}
}

func TestNewStandard(t *testing.T) {
	b := NewStandard()
	checkOccupancy(t, b)

	tests := []struct {
		name  string
		sq    Square
		piece Piece
	}{
		{"black rook a8", NewSquare(0, 0), NewPiece(Rook, Black)},
		{"black knight b8", NewSquare(1, 0), NewPiece(Knight, Black)},
		{"black queen d8", NewSquare(3, 0), NewPiece(Queen, Black)},
		{"black king e8", NewSquare(4, 0), NewPiece(King, Black)},
		{"black pawn e7", NewSquare(4, 1), NewPiece(Pawn, Black)},
		{"white pawn e2", NewSquare(4, 6), NewPiece(Pawn, White)},
		{"white rook a1", NewSquare(0, 7), NewPiece(Rook, White)},
		{"white bishop f1", NewSquare(5, 7), NewPiece(Bishop, White)},
		{"white queen d1", NewSquare(3, 7), NewPiece(Queen, White)},
		{"white king e1", NewSquare(4, 7), NewPiece(King, White)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := b.Tile(tc.sq)
			if got != Occupied(tc.piece) {
				t.Errorf("Tile(%v) = %v; want %v", tc.sq, got, tc.piece)
			}
		})
	}

	if b.Count(White) != 16 || b.Count(Black) != 16 {
		t.Errorf("Count = %d/%d; want 16/16", b.Count(White), b.Count(Black))
	}
	for rank := 2; rank < 6; rank++ {
		for file := 0; file < Size; file++ {
			if !b.IsEmpty(NewSquare(file, rank)) {
				t.Errorf("square %v not empty", NewSquare(file, rank))
			}
		}
	}
}

func TestPlaceAndClear(t *testing.T) {
	b := New()
	sq := NewSquare(3, 4)

	if b.Place(sq, Occupied(NewPiece(Knight, White))) {
		t.Error("Place on empty square reported previous occupant")
	}
	checkOccupancy(t, b)

	if !b.Place(sq, Occupied(NewPiece(Bishop, Black))) {
		t.Error("Place over a piece did not report previous occupant")
	}
	checkOccupancy(t, b)
	if c, ok := b.TileColor(sq); !ok || c != Black {
		t.Errorf("TileColor = %v, %v; want Black, true", c, ok)
	}

	if !b.Clear(sq) {
		t.Error("Clear on occupied square returned false")
	}
	if b.Clear(sq) {
		t.Error("Clear on empty square returned true")
	}
	checkOccupancy(t, b)

	if b.Place(sq, Empty) {
		t.Error("placing Empty on an empty square reported an occupant")
	}
	checkOccupancy(t, b)
}

func TestIsEnemy(t *testing.T) {
	b := New()
	w := NewSquare(0, 0)
	bl := NewSquare(1, 0)
	b.Place(w, Occupied(NewPiece(Rook, White)))
	b.Place(bl, Occupied(NewPiece(Rook, Black)))

	if !b.IsEnemy(bl, White) {
		t.Error("black piece is not an enemy of White")
	}
	if b.IsEnemy(w, White) {
		t.Error("own piece reported as enemy")
	}
	if b.IsEnemy(NewSquare(2, 0), White) {
		t.Error("empty square reported as enemy")
	}
}

func TestInBounds(t *testing.T) {
	tests := []struct {
		sq   Square
		want bool
	}{
		{NewSquare(0, 0), true},
		{NewSquare(7, 7), true},
		{NewSquare(-1, 0), false},
		{NewSquare(0, -1), false},
		{NewSquare(8, 3), false},
		{NewSquare(3, 8), false},
	}
	for _, tc := range tests {
		if got := InBounds(tc.sq); got != tc.want {
			t.Errorf("InBounds(%v) = %v; want %v", tc.sq, got, tc.want)
		}
	}
}

func TestSquareString(t *testing.T) {
	if got := NewSquare(4, 7).String(); got != "e1" {
		t.Errorf("String() = %q; want e1", got)
	}
	if got := NewSquare(0, 0).String(); got != "a8" {
		t.Errorf("String() = %q; want a8", got)
	}
	if got := NewMove(NewSquare(4, 6), NewSquare(4, 4)).String(); got != "e2-e4" {
		t.Errorf("Move.String() = %q; want e2-e4", got)
	}
}

func TestClone(t *testing.T) {
	b := NewStandard()
	c := b.Clone()
	c.Clear(NewSquare(4, 6))
	c.Place(NewSquare(4, 4), Occupied(NewPiece(Pawn, White).Moved()))

	if diff := cmp.Diff(NewStandard().Grid(), b.Grid()); diff != "" {
		t.Errorf("original changed after clone mutation (-want +got):\n%s", diff)
	}
	if b.Occupancy(White).Has(NewSquare(4, 4)) {
		t.Error("clone shares occupancy set with original")
	}
	checkOccupancy(t, b)
	checkOccupancy(t, c)
}

func TestSquareSetSorted(t *testing.T) {
	s := NewSquareSet(NewSquare(3, 2), NewSquare(1, 2), NewSquare(7, 0))
	want := []Square{NewSquare(7, 0), NewSquare(1, 2), NewSquare(3, 2)}
	if diff := cmp.Diff(want, s.Sorted()); diff != "" {
		t.Errorf("Sorted() mismatch (-want +got):\n%s", diff)
	}
}

func TestParsePlacement(t *testing.T) {
	b, err := ParsePlacement(StartPlacement + " w KQkq - 0 1")
	if err != nil {
		t.Fatalf("ParsePlacement: %v", err)
	}
	if diff := cmp.Diff(NewStandard().Grid(), b.Grid()); diff != "" {
		t.Errorf("start placement mismatch (-want +got):\n%s", diff)
	}
	checkOccupancy(t, b)

	t.Run("moved flags", func(t *testing.T) {
		b, err := ParsePlacement("4k3/8/8/8/4P3/8/P7/R3K1R1")
		if err != nil {
			t.Fatalf("ParsePlacement: %v", err)
		}
		tests := []struct {
			sq    Square
			moved bool
		}{
			{NewSquare(4, 0), false}, // black king e8
			{NewSquare(4, 4), true},  // pawn e4
			{NewSquare(0, 6), false}, // pawn a2
			{NewSquare(0, 7), false}, // rook a1
			{NewSquare(6, 7), true},  // rook g1
			{NewSquare(4, 7), false}, // king e1
		}
		for _, tc := range tests {
			if got := b.Tile(tc.sq).Piece.HasMoved; got != tc.moved {
				t.Errorf("HasMoved at %v = %v; want %v", tc.sq, got, tc.moved)
			}
		}
	})

	t.Run("errors", func(t *testing.T) {
		for _, s := range []string{
			"",
			"8/8/8",
			"9/8/8/8/8/8/8/8",
			"8/8/8/8/8/8/8/7",
			"8/8/8/8/8/8/8/7x",
		} {
			if _, err := ParsePlacement(s); !errors.Is(err, errs.ErrInvalidPlacement) {
				t.Errorf("ParsePlacement(%q) error = %v; want ErrInvalidPlacement", s, err)
			}
		}
	})
}

func TestString(t *testing.T) {
	b := NewStandard()
	want := "r n b q k b n r\n" +
		"p p p p p p p p\n" +
		". . . . . . . .\n" +
		". . . . . . . .\n" +
		". . . . . . . .\n" +
		". . . . . . . .\n" +
		"P P P P P P P P\n" +
		"R N B Q K B N R\n"
	if got := b.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}
