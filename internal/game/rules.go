package game

import "github.com/segunkayode1/chess/internal/board"

// Outcome is the coarse result of EndGame.
type Outcome uint8

const (
	Continue Outcome = iota
	Draw
	Win
)

// Reason says why a game left Continue.
type Reason uint8

const (
	ReasonNone Reason = iota
	ReasonCheckmate
	ReasonStalemate
	ReasonFiftyMove
)

// String returns a human-readable reason.
func (r Reason) String() string {
	switch r {
	case ReasonCheckmate:
		return "checkmate"
	case ReasonStalemate:
		return "stalemate"
	case ReasonFiftyMove:
		return "fifty-move rule"
	default:
		return "none"
	}
}

// Status is the end-of-game verdict. Winner is meaningful only for Win.
type Status struct {
	Outcome Outcome
	Winner  board.Color
	Reason  Reason
}

// String returns "White won", "Black won", "Draw" or "In progress".
func (st Status) String() string {
	switch st.Outcome {
	case Win:
		return st.Winner.String() + " won"
	case Draw:
		return "Draw"
	default:
		return "In progress"
	}
}

// isValidMove simulates m on a deep copy and reports whether the mover's
// king is safe afterwards. The live state is never touched.
func (s *State) isValidMove(m board.Move) bool {
	t := s.board.Tile(m.Src)
	if t.IsEmpty() {
		return false
	}
	sim := s.clone()
	sim.applyMove(m)
	return !sim.inCheckColor(t.Piece.Color)
}

// ValidPieceMoves returns the legal destinations of the piece on sq.
// Pieces of the side not to move have none.
func (s *State) ValidPieceMoves(sq board.Square) board.SquareSet {
	legal := board.SquareSet{}
	if !sq.InBounds() {
		return legal
	}
	t := s.board.Tile(sq)
	if t.IsEmpty() || t.Piece.Color != s.turn {
		return legal
	}

	for _, dst := range s.allPieceMoves(sq).Sorted() {
		if s.isValidMove(board.NewMove(sq, dst)) {
			legal.Add(dst)
		}
	}
	return legal
}

// allValidPiecesMoves is the union of legal destinations over every piece
// of color c.
func (s *State) allValidPiecesMoves(c board.Color) board.SquareSet {
	moves := board.SquareSet{}
	if c != s.turn {
		return moves
	}
	for _, sq := range s.board.Squares(c) {
		moves.Union(s.ValidPieceMoves(sq))
	}
	return moves
}

// ValidMoves lists every legal move of the side to move, ordered by origin
// then destination. A castle appears under both of its destinations.
func (s *State) ValidMoves() []board.Move {
	var moves []board.Move
	for _, src := range s.board.Squares(s.turn) {
		for _, dst := range s.ValidPieceMoves(src).Sorted() {
			moves = append(moves, board.NewMove(src, dst))
		}
	}
	return moves
}

// InCheck reports whether the side to move is in check.
func (s *State) InCheck() bool {
	return s.inCheckColor(s.turn)
}

func (s *State) inCheckColor(c board.Color) bool {
	return s.allPiecesMoves(c.Other()).Has(s.kingSquare(c))
}

// hasValidMove stops at the first candidate that survives the filter.
func (s *State) hasValidMove(c board.Color) bool {
	for _, src := range s.board.Squares(c) {
		for _, dst := range s.allPieceMoves(src).Sorted() {
			if s.isValidMove(board.NewMove(src, dst)) {
				return true
			}
		}
	}
	return false
}

func (s *State) inCheckmate() bool {
	return s.inCheckColor(s.turn) && !s.hasValidMove(s.turn)
}

func (s *State) inStalemate() bool {
	return !s.inCheckColor(s.turn) && s.allValidPiecesMoves(s.turn).Len() == 0
}

// fiftyMoveRule counts half-moves: fifty single-side moves without a pawn
// move or capture end the game.
func (s *State) fiftyMoveRule() bool {
	return s.movesSince >= 50
}

// EndGame returns the game's status. Checkmate takes precedence over a
// simultaneous fifty-move draw.
func (s *State) EndGame() Status {
	if s.inCheckmate() {
		return Status{Outcome: Win, Winner: s.turn.Other(), Reason: ReasonCheckmate}
	}
	if s.fiftyMoveRule() {
		return Status{Outcome: Draw, Reason: ReasonFiftyMove}
	}
	if s.inStalemate() {
		return Status{Outcome: Draw, Reason: ReasonStalemate}
	}
	return Status{Outcome: Continue}
}
