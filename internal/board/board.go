package board

import "strings"

// Board is a Size×Size grid of tiles plus one occupancy set per color.
// The sets always hold exactly the squares whose tile carries a piece of
// that color; Place and Clear are the only writers.
type Board struct {
	tiles    [Size][Size]Tile // [rank][file]
	occupied [2]SquareSet
}

// New creates an empty board.
func New() *Board {
	return &Board{
		occupied: [2]SquareSet{{}, {}},
	}
}

// backRankKinds lists the back-rank pieces from file 0 to file 7.
var backRankKinds = [Size]PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewStandard creates a board with the standard starting arrangement.
func NewStandard() *Board {
	b := New()
	for _, c := range []Color{Black, White} {
		back := c.BackRank()
		pawns := back + c.Forward()
		for file := 0; file < Size; file++ {
			b.Place(NewSquare(file, back), Occupied(NewPiece(backRankKinds[file], c)))
			b.Place(NewSquare(file, pawns), Occupied(NewPiece(Pawn, c)))
		}
	}
	return b
}

// homeKind returns the kind the standard arrangement puts on sq for c.
func homeKind(sq Square, c Color) (PieceKind, bool) {
	switch sq.Rank {
	case c.BackRank():
		return backRankKinds[sq.File], true
	case c.BackRank() + c.Forward():
		return Pawn, true
	}
	return 0, false
}

// Tile returns the tile at sq. sq must be in bounds.
func (b *Board) Tile(sq Square) Tile {
	return b.tiles[sq.Rank][sq.File]
}

// IsEmpty returns true if no piece stands on sq. sq must be in bounds.
func (b *Board) IsEmpty(sq Square) bool {
	return b.tiles[sq.Rank][sq.File].IsEmpty()
}

// TileColor returns the color of the piece on sq, if any.
func (b *Board) TileColor(sq Square) (Color, bool) {
	t := b.tiles[sq.Rank][sq.File]
	if t.IsEmpty() {
		return 0, false
	}
	return t.Piece.Color, true
}

// IsEnemy returns true if sq holds a piece not of color c.
// Empty squares are never enemies. Callers bounds-check first.
func (b *Board) IsEnemy(sq Square, c Color) bool {
	color, ok := b.TileColor(sq)
	return ok && color != c
}

// Place overwrites the tile at sq and keeps the occupancy sets in step.
// It reports whether the square was occupied before the write.
func (b *Board) Place(sq Square, t Tile) bool {
	wasOccupied := b.Clear(sq)
	if t.Occupied {
		b.occupied[t.Piece.Color].Add(sq)
	}
	b.tiles[sq.Rank][sq.File] = t
	return wasOccupied
}

// Clear empties sq. It reports whether the square was occupied.
func (b *Board) Clear(sq Square) bool {
	t := b.tiles[sq.Rank][sq.File]
	if t.IsEmpty() {
		return false
	}
	b.occupied[t.Piece.Color].Remove(sq)
	b.tiles[sq.Rank][sq.File] = Empty
	return true
}

// Squares returns the squares occupied by color c, ordered by rank then file.
func (b *Board) Squares(c Color) []Square {
	return b.occupied[c].Sorted()
}

// Occupancy returns a copy of the occupancy set for color c.
func (b *Board) Occupancy(c Color) SquareSet {
	return b.occupied[c].Clone()
}

// Count returns the number of pieces of color c.
func (b *Board) Count(c Color) int {
	return b.occupied[c].Len()
}

// Grid returns a copy of the tile grid, indexed [rank][file].
func (b *Board) Grid() [Size][Size]Tile {
	return b.tiles
}

// Clone creates a deep copy of the board.
func (b *Board) Clone() *Board {
	return &Board{
		tiles:    b.tiles,
		occupied: [2]SquareSet{b.occupied[White].Clone(), b.occupied[Black].Clone()},
	}
}

// String returns an ASCII diagram of the board with rank 0 on top.
func (b *Board) String() string {
	var sb strings.Builder
	for rank := 0; rank < Size; rank++ {
		for file := 0; file < Size; file++ {
			if file > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(b.tiles[rank][file].String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
