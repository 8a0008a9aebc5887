package game

import (
	"image"

	"github.com/segunkayode1/chess/internal/board"
)

// SquareAt maps device coordinates to a board square. Negative
// coordinates map off the board.
func (s *State) SquareAt(x, y int) board.Square {
	return board.NewSquare(floorDiv(x, s.tileSize), floorDiv(y, s.tileSize))
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

// MouseDown handles a pointer press. With a piece selected and a legal
// destination under the pointer the move is committed at once; otherwise
// the press tries to pick up a piece of the side to move.
func (s *State) MouseDown(x, y int) {
	sq := s.SquareAt(x, y)
	if s.selected != nil && s.LegalMoves().Has(sq) {
		s.applyMove(board.NewMove(s.selected.Start, sq))
		return
	}
	s.selectTile(x, y)
}

// MouseUp handles a pointer release. Releasing a held piece on a legal
// destination commits the move; anywhere else the piece stays selected
// but is no longer held.
func (s *State) MouseUp(x, y int) {
	if s.selected == nil || !s.selected.Held {
		return
	}
	sq := s.SquareAt(x, y)
	if s.LegalMoves().Has(sq) {
		s.applyMove(board.NewMove(s.selected.Start, sq))
		return
	}
	s.selected.Held = false
}

// MouseMove updates the drag point of the selection. It never changes
// the board.
func (s *State) MouseMove(x, y int) {
	if s.selected != nil {
		s.selected.Point = image.Pt(x, y)
	}
}

// Cancel drops the current selection.
func (s *State) Cancel() {
	s.selected = nil
}

// selectTile replaces the selection when (x, y) is over a piece of the
// side to move. Off-board, empty and enemy squares are ignored.
func (s *State) selectTile(x, y int) {
	sq := s.SquareAt(x, y)
	if !sq.InBounds() {
		return
	}
	t := s.board.Tile(sq)
	if t.IsEmpty() || t.Piece.Color != s.turn {
		return
	}
	s.selected = &Selection{
		Start: sq,
		Point: image.Pt(x, y),
		Piece: t.Piece,
		Held:  true,
	}
}

// LegalMoves returns the legal destinations of the selected piece, or an
// empty set with nothing selected.
func (s *State) LegalMoves() board.SquareSet {
	if s.selected == nil {
		return board.SquareSet{}
	}
	return s.ValidPieceMoves(s.selected.Start)
}

// Selection returns a copy of the current selection.
func (s *State) Selection() (Selection, bool) {
	if s.selected == nil {
		return Selection{}, false
	}
	return *s.selected, true
}

// SelectedSquare returns the square the selected piece was picked up from.
func (s *State) SelectedSquare() (board.Square, bool) {
	if s.selected == nil {
		return board.Square{}, false
	}
	return s.selected.Start, true
}

// SelectedTile returns the square under the selection's live drag point.
func (s *State) SelectedTile() (board.Square, bool) {
	if s.selected == nil {
		return board.Square{}, false
	}
	return s.SquareAt(s.selected.Point.X, s.selected.Point.Y), true
}

// MovingPiece returns the held piece and its drag point. A selected piece
// that is not held is drawn on its square instead.
func (s *State) MovingPiece() (board.Piece, image.Point, bool) {
	if s.selected == nil || !s.selected.Held {
		return board.Piece{}, image.Point{}, false
	}
	return s.selected.Piece, s.selected.Point, true
}
