package game

import "github.com/segunkayode1/chess/internal/board"

// pieceAttackMoves returns the squares the piece on sq can capture on.
func (s *State) pieceAttackMoves(sq board.Square) board.SquareSet {
	t := s.board.Tile(sq)
	if t.IsEmpty() {
		return board.SquareSet{}
	}

	c := t.Piece.Color
	switch t.Piece.Kind {
	case board.King:
		return s.stepAttacks(sq, c, kingOffsets)
	case board.Queen:
		return s.slideAttacks(sq, c, queenDirections)
	case board.Rook:
		return s.slideAttacks(sq, c, rookDirections)
	case board.Bishop:
		return s.slideAttacks(sq, c, bishopDirections)
	case board.Knight:
		return s.stepAttacks(sq, c, knightOffsets)
	case board.Pawn:
		return s.pawnAttacks(sq, c)
	}
	return board.SquareSet{}
}

func (s *State) stepAttacks(sq board.Square, c board.Color, offsets []offset) board.SquareSet {
	moves := board.SquareSet{}
	for _, o := range offsets {
		dst := sq.Offset(o.df, o.dr)
		if dst.InBounds() && s.board.IsEnemy(dst, c) {
			moves.Add(dst)
		}
	}
	return moves
}

// slideAttacks walks past empty squares and keeps only the square that
// ends each ray, when it holds an enemy.
func (s *State) slideAttacks(sq board.Square, c board.Color, directions []offset) board.SquareSet {
	moves := board.SquareSet{}
	for _, d := range directions {
		dst := sq.Offset(d.df, d.dr)
		for dst.InBounds() && s.board.IsEmpty(dst) {
			dst = dst.Offset(d.df, d.dr)
		}
		if dst.InBounds() && s.board.IsEnemy(dst, c) {
			moves.Add(dst)
		}
	}
	return moves
}

func (s *State) pawnAttacks(sq board.Square, c board.Color) board.SquareSet {
	moves := board.SquareSet{}
	fwd := c.Forward()
	for _, df := range []int{-1, 1} {
		dst := sq.Offset(df, fwd)
		if !dst.InBounds() {
			continue
		}
		if s.board.IsEnemy(dst, c) || s.canEnPassant(sq, dst, c) {
			moves.Add(dst)
		}
	}
	return moves
}

// canEnPassant reports whether a pawn of color c on from may capture en
// passant onto the empty diagonal dst: the enemy pawn beside it must have
// double-stepped past dst on the move that produced the snapshot.
func (s *State) canEnPassant(from, dst board.Square, c board.Color) bool {
	if s.prev == nil || !s.board.IsEmpty(dst) {
		return false
	}

	beside := board.NewSquare(dst.File, from.Rank)
	origin := beside.Offset(0, 2*c.Forward())
	if !origin.InBounds() {
		return false
	}

	if !isEnemyPawn(s.board.Tile(beside), c) || !s.board.IsEmpty(origin) {
		return false
	}
	return isEnemyPawn(s.prev.board.Tile(origin), c) && s.prev.board.IsEmpty(beside)
}

func isEnemyPawn(t board.Tile, c board.Color) bool {
	return t.Occupied && t.Piece.Kind == board.Pawn && t.Piece.Color != c
}

// allPieceMoves is the union of quiet and attack moves of the piece on sq.
func (s *State) allPieceMoves(sq board.Square) board.SquareSet {
	moves := s.pieceMoves(sq)
	moves.Union(s.pieceAttackMoves(sq))
	return moves
}

// allPiecesMoves is the pseudo-legal union over every piece of color c.
// Check detection uses it unfiltered.
func (s *State) allPiecesMoves(c board.Color) board.SquareSet {
	moves := board.SquareSet{}
	for _, sq := range s.board.Squares(c) {
		moves.Union(s.allPieceMoves(sq))
	}
	return moves
}
