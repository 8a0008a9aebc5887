package game

import "github.com/segunkayode1/chess/internal/board"

// offset is a (file, rank) step.
type offset struct {
	df, dr int
}

var (
	kingOffsets = []offset{
		{-1, -1}, {0, -1}, {1, -1},
		{-1, 0}, {1, 0},
		{-1, 1}, {0, 1}, {1, 1},
	}
	knightOffsets = []offset{
		{1, 2}, {2, 1}, {2, -1}, {1, -2},
		{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
	}
	rookDirections   = []offset{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	bishopDirections = []offset{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	queenDirections  = append(append([]offset{}, rookDirections...), bishopDirections...)
)

// castleSide is the direction of travel of a castling king: +1 toward
// file 7, -1 toward file 0.
type castleSide int

const (
	kingSide  castleSide = 1
	queenSide castleSide = -1
)

// rookFile returns the corner file the castling rook starts on.
func (cs castleSide) rookFile() int {
	if cs == kingSide {
		return board.Size - 1
	}
	return 0
}

// pieceMoves returns the squares the piece on sq reaches without capturing.
func (s *State) pieceMoves(sq board.Square) board.SquareSet {
	t := s.board.Tile(sq)
	if t.IsEmpty() {
		return board.SquareSet{}
	}

	switch t.Piece.Kind {
	case board.King:
		moves := s.stepMoves(sq, kingOffsets)
		s.addCastleMoves(moves, sq, t.Piece)
		return moves
	case board.Queen:
		return s.slideMoves(sq, queenDirections)
	case board.Rook:
		return s.slideMoves(sq, rookDirections)
	case board.Bishop:
		return s.slideMoves(sq, bishopDirections)
	case board.Knight:
		return s.stepMoves(sq, knightOffsets)
	case board.Pawn:
		return s.pawnMoves(sq, t.Piece)
	}
	return board.SquareSet{}
}

// stepMoves collects the in-bounds empty squares one offset away.
func (s *State) stepMoves(sq board.Square, offsets []offset) board.SquareSet {
	moves := board.SquareSet{}
	for _, o := range offsets {
		dst := sq.Offset(o.df, o.dr)
		if dst.InBounds() && s.board.IsEmpty(dst) {
			moves.Add(dst)
		}
	}
	return moves
}

// slideMoves walks each direction collecting empty squares and stops at
// the first occupied square or the edge. The occupied square is left to
// the attack pass.
func (s *State) slideMoves(sq board.Square, directions []offset) board.SquareSet {
	moves := board.SquareSet{}
	for _, d := range directions {
		dst := sq.Offset(d.df, d.dr)
		for dst.InBounds() && s.board.IsEmpty(dst) {
			moves.Add(dst)
			dst = dst.Offset(d.df, d.dr)
		}
	}
	return moves
}

// addCastleMoves offers castling for an unmoved king. Both the rook's
// square and the square two files toward it denote the same castle.
func (s *State) addCastleMoves(moves board.SquareSet, sq board.Square, king board.Piece) {
	if king.HasMoved {
		return
	}

	for _, side := range []castleSide{kingSide, queenSide} {
		rookSq := board.NewSquare(side.rookFile(), sq.Rank)
		t := s.board.Tile(rookSq)
		if t.IsEmpty() || t.Piece.Kind != board.Rook || t.Piece.Color != king.Color || t.Piece.HasMoved {
			continue
		}
		if !s.emptyBetween(sq, rookSq) {
			continue
		}

		two := sq.Offset(2*int(side), 0)
		if !two.InBounds() {
			continue
		}
		moves.Add(rookSq)
		moves.Add(two)
	}
}

// emptyBetween reports whether every square strictly between a and b on
// the same rank is empty.
func (s *State) emptyBetween(a, b board.Square) bool {
	lo, hi := a.File, b.File
	if lo > hi {
		lo, hi = hi, lo
	}
	for file := lo + 1; file < hi; file++ {
		if !s.board.IsEmpty(board.NewSquare(file, a.Rank)) {
			return false
		}
	}
	return true
}

func (s *State) pawnMoves(sq board.Square, pawn board.Piece) board.SquareSet {
	moves := board.SquareSet{}
	fwd := pawn.Color.Forward()

	one := sq.Offset(0, fwd)
	if !one.InBounds() || !s.board.IsEmpty(one) {
		return moves
	}
	moves.Add(one)

	if pawn.HasMoved {
		return moves
	}
	two := sq.Offset(0, 2*fwd)
	if two.InBounds() && s.board.IsEmpty(two) {
		moves.Add(two)
	}
	return moves
}
