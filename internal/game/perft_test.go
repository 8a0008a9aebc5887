package game

import (
	"testing"

	"github.com/dylhunn/dragontoothmg"
)

// perft counts the leaf nodes of the legal move tree to depth.
func perft(s *State, depth int) int {
	moves := s.ValidMoves()
	if depth == 1 {
		return len(moves)
	}
	nodes := 0
	for _, m := range moves {
		child := s.clone()
		child.applyMove(m)
		nodes += perft(child, depth-1)
	}
	return nodes
}

func oraclePerft(b *dragontoothmg.Board, depth int) int {
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return len(moves)
	}
	nodes := 0
	for _, m := range moves {
		unapply := b.Apply(m)
		nodes += oraclePerft(b, depth-1)
		unapply()
	}
	return nodes
}

// The fixtures have no castling rights within reach of the depth searched
// and no promotions.
func TestPerft(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		nodes []int
	}{
		{
			name:  "start",
			fen:   "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1",
			nodes: []int{20, 400, 8902},
		},
		{
			name:  "rook endgame with en passant",
			fen:   "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
			nodes: []int{14, 191, 2812},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if testing.Short() && len(tc.nodes) > 2 {
				tc.nodes = tc.nodes[:2]
			}
			s := fromFEN(t, tc.fen)
			oracle := dragontoothmg.ParseFen(tc.fen)
			for i, want := range tc.nodes {
				depth := i + 1
				if got := perft(s, depth); got != want {
					t.Errorf("perft(%d) = %d; want %d", depth, got, want)
				}
				if got := oraclePerft(&oracle, depth); got != want {
					t.Errorf("oracle perft(%d) = %d; want %d", depth, got, want)
				}
			}
		})
	}
}
