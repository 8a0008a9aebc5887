package game

import "github.com/segunkayode1/chess/internal/board"

// moveKind is the special-move classification of a move, resolved from
// the board at application time.
type moveKind uint8

const (
	moveNormal moveKind = iota
	moveCastle
	moveEnPassant
)

// classify decides how m is applied for the piece p standing on m.Src.
func (s *State) classify(m board.Move, p board.Piece) (moveKind, castleSide) {
	df := m.Dst.File - m.Src.File
	switch p.Kind {
	case board.Pawn:
		if (df == 1 || df == -1) && s.board.IsEmpty(m.Dst) {
			return moveEnPassant, 0
		}
	case board.King:
		if df > 1 || df < -1 {
			side := queenSide
			if df > 0 {
				side = kingSide
			}
			if !s.board.IsEmpty(board.NewSquare(side.rookFile(), m.Dst.Rank)) {
				return moveCastle, side
			}
		}
	}
	return moveNormal, 0
}

// applyMove is the single mutator of the game. It does not check
// legality: callers pass only moves taken from the legal set.
func (s *State) applyMove(m board.Move) {
	t := s.board.Tile(m.Src)
	if t.IsEmpty() {
		return
	}
	piece := t.Piece

	prev := s.snapshot()
	s.lastMove = &m
	s.movesSince++

	kind, side := s.classify(m, piece)
	switch kind {
	case moveEnPassant:
		s.board.Clear(board.NewSquare(m.Dst.File, m.Dst.Rank-piece.Color.Forward()))
		s.movesSince = 0
	case moveCastle:
		s.castle(m, piece, side)
		s.lastMove = &board.Move{Src: m.Src, Dst: board.NewSquare(side.rookFile(), m.Dst.Rank)}
		s.finishMove(prev)
		return
	}

	if s.board.Place(m.Dst, board.Occupied(piece.Moved())) {
		s.movesSince = 0
	}
	s.board.Clear(m.Src)
	if piece.Kind == board.Pawn {
		s.movesSince = 0
	}

	s.finishMove(prev)
}

// castle moves the rook next to the king's origin and the king two files
// toward the rook. The rook keeps HasMoved cleared.
func (s *State) castle(m board.Move, king board.Piece, side castleSide) {
	rookSq := board.NewSquare(side.rookFile(), m.Dst.Rank)
	rook := s.board.Tile(rookSq).Piece
	rook.HasMoved = false

	dir := int(side)
	s.board.Place(m.Src.Offset(dir, 0), board.Occupied(rook))
	s.board.Place(m.Src.Offset(2*dir, 0), board.Occupied(king.Moved()))
	s.board.Clear(m.Src)
	s.board.Clear(rookSq)
}

func (s *State) finishMove(prev *State) {
	s.turn = s.turn.Other()
	s.selected = nil
	s.prev = prev
	s.plies++
}
