package board

// Color represents the color of a piece or player.
type Color uint8

const (
	White Color = iota
	Black
)

// Other returns the opposite color.
func (c Color) Other() Color {
	return c ^ 1
}

// Forward returns the rank step a pawn of this color advances by.
// Black starts at rank 0 and moves toward increasing ranks.
func (c Color) Forward() int {
	if c == Black {
		return 1
	}
	return -1
}

// BackRank returns the rank the color's pieces start on.
func (c Color) BackRank() int {
	if c == Black {
		return 0
	}
	return Size - 1
}

// String returns the color name.
func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "NoColor"
	}
}

// PieceKind represents the kind of a chess piece.
type PieceKind uint8

const (
	King PieceKind = iota
	Queen
	Rook
	Bishop
	Knight
	Pawn
)

// String returns the piece kind name.
func (k PieceKind) String() string {
	switch k {
	case King:
		return "King"
	case Queen:
		return "Queen"
	case Rook:
		return "Rook"
	case Bishop:
		return "Bishop"
	case Knight:
		return "Knight"
	case Pawn:
		return "Pawn"
	default:
		return "None"
	}
}

// Char returns the FEN character for the piece kind (lowercase).
func (k PieceKind) Char() byte {
	chars := []byte{'k', 'q', 'r', 'b', 'n', 'p'}
	if k > Pawn {
		return ' '
	}
	return chars[k]
}

// Piece is a piece on the board. HasMoved is set the first time the piece
// lands on a square through a move and is never reset.
type Piece struct {
	Kind     PieceKind
	Color    Color
	HasMoved bool
}

// NewPiece creates an unmoved piece.
func NewPiece(k PieceKind, c Color) Piece {
	return Piece{Kind: k, Color: c}
}

// Moved returns a copy of the piece with HasMoved set.
func (p Piece) Moved() Piece {
	p.HasMoved = true
	return p
}

// String returns the FEN character for the piece.
// Uppercase for white, lowercase for black.
func (p Piece) String() string {
	c := p.Kind.Char()
	if p.Color == White && c != ' ' {
		c -= 'a' - 'A'
	}
	return string(c)
}

// pieceFromChar converts a FEN character to an unmoved piece.
func pieceFromChar(c byte) (Piece, bool) {
	color := Black
	if c >= 'A' && c <= 'Z' {
		color = White
		c += 'a' - 'A'
	}
	switch c {
	case 'k':
		return NewPiece(King, color), true
	case 'q':
		return NewPiece(Queen, color), true
	case 'r':
		return NewPiece(Rook, color), true
	case 'b':
		return NewPiece(Bishop, color), true
	case 'n':
		return NewPiece(Knight, color), true
	case 'p':
		return NewPiece(Pawn, color), true
	}
	return Piece{}, false
}

// Tile is one square of the grid: either empty or holding a piece.
type Tile struct {
	Piece    Piece
	Occupied bool
}

// Empty is the tile with no piece on it.
var Empty = Tile{}

// Occupied returns a tile holding p.
func Occupied(p Piece) Tile {
	return Tile{Piece: p, Occupied: true}
}

// IsEmpty returns true if no piece stands on the tile.
func (t Tile) IsEmpty() bool {
	return !t.Occupied
}

// String returns the piece character, or "." for an empty tile.
func (t Tile) String() string {
	if !t.Occupied {
		return "."
	}
	return t.Piece.String()
}
