package board

import (
	"fmt"
	"strings"

	"github.com/segunkayode1/chess/internal/errs"
)

// StartPlacement is the piece-placement field of the starting position.
const StartPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// ParsePlacement builds a board from the piece-placement field of a FEN
// record. Any trailing FEN fields are ignored. The first row is rank 0.
//
// A piece standing where the standard arrangement puts a piece of the same
// kind and color is unmoved; every other piece is marked HasMoved.
func ParsePlacement(s string) (*Board, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty string", errs.ErrInvalidPlacement)
	}

	rows := strings.Split(fields[0], "/")
	if len(rows) != Size {
		return nil, fmt.Errorf("%w: need %d rows, got %d", errs.ErrInvalidPlacement, Size, len(rows))
	}

	b := New()
	for rank, row := range rows {
		file := 0
		for i := 0; i < len(row); i++ {
			c := row[i]
			if file >= Size {
				return nil, fmt.Errorf("%w: too many squares in row %d", errs.ErrInvalidPlacement, rank)
			}

			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}

			piece, ok := pieceFromChar(c)
			if !ok {
				return nil, fmt.Errorf("%w: invalid piece character %q", errs.ErrInvalidPlacement, c)
			}
			sq := NewSquare(file, rank)
			if kind, home := homeKind(sq, piece.Color); !home || kind != piece.Kind {
				piece.HasMoved = true
			}
			b.Place(sq, Occupied(piece))
			file++
		}

		if file != Size {
			return nil, fmt.Errorf("%w: row %d has %d squares", errs.ErrInvalidPlacement, rank, file)
		}
	}

	return b, nil
}
