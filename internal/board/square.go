// Package board implements the chess board model: squares, pieces, tiles
// and a grid that keeps per-color occupancy sets in step with every write.
package board

import (
	"fmt"
	"sort"

	"golang.org/x/exp/maps"
)

// Size is the side length of the board.
const Size = 8

// Square is a (file, rank) coordinate pair.
// File 0 is the left-hand file; rank 0 is Black's back rank.
type Square struct {
	File int
	Rank int
}

// NewSquare creates a square from file and rank.
func NewSquare(file, rank int) Square {
	return Square{File: file, Rank: rank}
}

// InBounds returns true iff both coordinates lie in [0, Size).
func InBounds(sq Square) bool {
	return sq.File >= 0 && sq.Rank >= 0 && sq.File < Size && sq.Rank < Size
}

// InBounds is the method form of the package-level InBounds.
func (sq Square) InBounds() bool {
	return InBounds(sq)
}

// Offset returns the square shifted by df files and dr ranks.
// The result may be off the board.
func (sq Square) Offset(df, dr int) Square {
	return Square{File: sq.File + df, Rank: sq.Rank + dr}
}

// String returns a readable name for the square, e.g. "e1" for the white
// king's start. Off-board squares print as raw coordinates.
func (sq Square) String() string {
	if !sq.InBounds() {
		return fmt.Sprintf("(%d,%d)", sq.File, sq.Rank)
	}
	return fmt.Sprintf("%c%d", 'a'+sq.File, Size-sq.Rank)
}

// Move describes a relocation from Src to Dst. Castling, en passant and
// captures are inferred from the board when the move is applied.
type Move struct {
	Src Square
	Dst Square
}

// NewMove creates a move.
func NewMove(src, dst Square) Move {
	return Move{Src: src, Dst: dst}
}

// String returns "src-dst".
func (m Move) String() string {
	return m.Src.String() + "-" + m.Dst.String()
}

// SquareSet is a set of squares.
type SquareSet map[Square]struct{}

// NewSquareSet creates a set holding the given squares.
func NewSquareSet(squares ...Square) SquareSet {
	s := make(SquareSet, len(squares))
	for _, sq := range squares {
		s.Add(sq)
	}
	return s
}

// Add inserts sq.
func (s SquareSet) Add(sq Square) {
	s[sq] = struct{}{}
}

// Remove deletes sq.
func (s SquareSet) Remove(sq Square) {
	delete(s, sq)
}

// Has reports whether sq is in the set.
func (s SquareSet) Has(sq Square) bool {
	_, ok := s[sq]
	return ok
}

// Len returns the number of squares in the set.
func (s SquareSet) Len() int {
	return len(s)
}

// Union adds every square of other to s.
func (s SquareSet) Union(other SquareSet) {
	for sq := range other {
		s.Add(sq)
	}
}

// Clone returns an independent copy of the set.
func (s SquareSet) Clone() SquareSet {
	if s == nil {
		return SquareSet{}
	}
	return maps.Clone(s)
}

// Sorted returns the squares ordered by rank, then file.
func (s SquareSet) Sorted() []Square {
	squares := maps.Keys(s)
	sort.Slice(squares, func(i, j int) bool {
		if squares[i].Rank != squares[j].Rank {
			return squares[i].Rank < squares[j].Rank
		}
		return squares[i].File < squares[j].File
	})
	return squares
}
