// Package game implements the chess rules engine: move generation, legality
// filtering by simulation, move application and the pointer-driven
// selection state machine a front end talks to.
package game

import (
	"fmt"
	"image"

	"github.com/segunkayode1/chess/internal/board"
	"github.com/segunkayode1/chess/internal/errs"
)

// DefaultTileSize is the edge length of one square in device pixels.
const DefaultTileSize = 96

// Selection is the piece picked up by the pointer.
type Selection struct {
	Start board.Square // square the piece was picked up from
	Point image.Point  // live pointer position in device coordinates
	Piece board.Piece
	Held  bool // pointer button still down
}

// State is a single game session.
type State struct {
	board      *board.Board
	lastMove   *board.Move
	selected   *Selection
	turn       board.Color
	prev       *State // pre-move snapshot; its own prev is always nil
	movesSince int    // half-moves since the last pawn move or capture
	plies      int
	tileSize   int
}

// Option configures a State.
type Option func(*State)

// WithTileSize sets the device-pixel edge of one square used for hit-testing.
// Non-positive sizes are ignored.
func WithTileSize(px int) Option {
	return func(s *State) {
		if px > 0 {
			s.tileSize = px
		}
	}
}

// WithTurn sets the side to move.
func WithTurn(c board.Color) Option {
	return func(s *State) {
		s.turn = c
	}
}

// New creates a game with the standard starting arrangement and White to move.
func New(opts ...Option) *State {
	s := &State{
		board:    board.NewStandard(),
		turn:     board.White,
		tileSize: DefaultTileSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewWithBoard creates a game on a copy of b. The board must hold exactly
// one king of each color.
func NewWithBoard(b *board.Board, opts ...Option) (*State, error) {
	for _, c := range []board.Color{board.White, board.Black} {
		kings := 0
		for _, sq := range b.Squares(c) {
			if b.Tile(sq).Piece.Kind == board.King {
				kings++
			}
		}
		if kings != 1 {
			return nil, fmt.Errorf("%w: %s has %d", errs.ErrMissingKing, c, kings)
		}
	}

	s := New(opts...)
	s.board = b.Clone()
	return s, nil
}

// clone deep-copies the state. The snapshot pointer is shared: snapshots
// are never written after they are taken.
func (s *State) clone() *State {
	c := *s
	c.board = s.board.Clone()
	if s.lastMove != nil {
		m := *s.lastMove
		c.lastMove = &m
	}
	if s.selected != nil {
		sel := *s.selected
		c.selected = &sel
	}
	return &c
}

// snapshot returns a copy of the state with its history cleared.
func (s *State) snapshot() *State {
	c := s.clone()
	c.prev = nil
	return c
}

// Tile returns the tile at sq. sq must be in bounds.
func (s *State) Tile(sq board.Square) board.Tile {
	return s.board.Tile(sq)
}

// Board returns a copy of the current board.
func (s *State) Board() *board.Board {
	return s.board.Clone()
}

// Turn returns the side to move.
func (s *State) Turn() board.Color {
	return s.turn
}

// TileSize returns the device-pixel edge of one square.
func (s *State) TileSize() int {
	return s.tileSize
}

// LastMove returns the most recently applied move. For castling this is
// the king's origin and the rook's original square.
func (s *State) LastMove() (board.Move, bool) {
	if s.lastMove == nil {
		return board.Move{}, false
	}
	return *s.lastMove, true
}

// MovesSinceProgress returns the half-move counter of the fifty-move rule.
func (s *State) MovesSinceProgress() int {
	return s.movesSince
}

// Plies returns the number of moves applied since the game started.
func (s *State) Plies() int {
	return s.plies
}

// KingSquare returns the square of the side to move's king.
func (s *State) KingSquare() board.Square {
	return s.kingSquare(s.turn)
}

// kingSquare panics if color c has no king. A king never leaves the board,
// so a missing one means the board is corrupt.
func (s *State) kingSquare(c board.Color) board.Square {
	for _, sq := range s.board.Squares(c) {
		if s.board.Tile(sq).Piece.Kind == board.King {
			return sq
		}
	}
	panic("no king on board")
}
