package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/segunkayode1/chess/internal/board"
)

// Theme defines the color scheme for the board.
type Theme struct {
	LightSquare    color.RGBA
	DarkSquare     color.RGBA
	SelectedSquare color.RGBA
	LegalMoveColor color.RGBA
	LastMoveColor  color.RGBA
	CheckColor     color.RGBA
	StatusBar      color.RGBA
	TextColor      color.RGBA
}

// DefaultTheme returns the default color theme.
func DefaultTheme() *Theme {
	return &Theme{
		LightSquare:    color.RGBA{240, 217, 181, 255}, // Tan
		DarkSquare:     color.RGBA{181, 136, 99, 255},  // Brown
		SelectedSquare: color.RGBA{247, 247, 105, 180}, // Yellow highlight
		LegalMoveColor: color.RGBA{130, 151, 105, 200}, // Green dots
		LastMoveColor:  color.RGBA{180, 190, 100, 90},
		CheckColor:     color.RGBA{255, 100, 100, 180}, // Red
		StatusBar:      color.RGBA{40, 44, 52, 200},
		TextColor:      color.RGBA{220, 220, 220, 255},
	}
}

// Renderer draws the board in window coordinates. Rank 0 is the top row.
type Renderer struct {
	sprites  *SpriteManager
	theme    *Theme
	tileSize int
}

// NewRenderer creates a renderer for squares of tileSize pixels.
func NewRenderer(tileSize int) *Renderer {
	return &Renderer{
		sprites:  NewSpriteManager(tileSize),
		theme:    DefaultTheme(),
		tileSize: tileSize,
	}
}

// DrawBoard fills the squares. a8 is light.
func (r *Renderer) DrawBoard(screen *ebiten.Image) {
	size := float32(r.tileSize)
	for rank := 0; rank < board.Size; rank++ {
		for file := 0; file < board.Size; file++ {
			c := r.theme.LightSquare
			if (rank+file)%2 == 1 {
				c = r.theme.DarkSquare
			}
			x, y := r.SquareToScreen(board.NewSquare(file, rank))
			vector.DrawFilledRect(screen, float32(x), float32(y), size, size, c, false)
		}
	}
}

// DrawLastMove tints both ends of the last move.
func (r *Renderer) DrawLastMove(screen *ebiten.Image, m board.Move) {
	r.highlightSquare(screen, m.Src, r.theme.LastMoveColor)
	r.highlightSquare(screen, m.Dst, r.theme.LastMoveColor)
}

// DrawCheck highlights the king's square.
func (r *Renderer) DrawCheck(screen *ebiten.Image, kingSq board.Square) {
	r.highlightSquare(screen, kingSq, r.theme.CheckColor)
}

// DrawSelection highlights the square the selected piece came from.
func (r *Renderer) DrawSelection(screen *ebiten.Image, sq board.Square) {
	r.highlightSquare(screen, sq, r.theme.SelectedSquare)
}

// DrawLegalMoves marks each destination: a dot on an empty square, a ring
// around an occupied one.
func (r *Renderer) DrawLegalMoves(screen *ebiten.Image, b *board.Board, moves board.SquareSet) {
	for _, sq := range moves.Sorted() {
		x, y := r.SquareToScreen(sq)
		cx := float32(x) + float32(r.tileSize)/2
		cy := float32(y) + float32(r.tileSize)/2
		if b.IsEmpty(sq) {
			vector.DrawFilledCircle(screen, cx, cy, float32(r.tileSize)*0.15, r.theme.LegalMoveColor, true)
			continue
		}
		vector.StrokeCircle(screen, cx, cy, float32(r.tileSize)*0.45, float32(r.tileSize)*0.08, r.theme.LegalMoveColor, true)
	}
}

// highlightSquare draws a colored overlay on a square.
func (r *Renderer) highlightSquare(screen *ebiten.Image, sq board.Square, c color.RGBA) {
	if !sq.InBounds() {
		return
	}
	x, y := r.SquareToScreen(sq)
	size := float32(r.tileSize)
	vector.DrawFilledRect(screen, float32(x), float32(y), size, size, c, false)
}

// DrawPieces draws every piece except the one on skip, when skipping.
func (r *Renderer) DrawPieces(screen *ebiten.Image, b *board.Board, skip board.Square, skipping bool) {
	for _, c := range []board.Color{board.White, board.Black} {
		for _, sq := range b.Squares(c) {
			if skipping && sq == skip {
				continue
			}
			x, y := r.SquareToScreen(sq)
			r.sprites.DrawPieceAt(screen, b.Tile(sq).Piece, x, y)
		}
	}
}

// DrawHeldPiece draws p centred on the pointer.
func (r *Renderer) DrawHeldPiece(screen *ebiten.Image, p board.Piece, mouseX, mouseY int) {
	half := r.tileSize / 2
	r.sprites.DrawPieceAt(screen, p, mouseX-half, mouseY-half)
}

// SquareToScreen converts a board square to the top-left pixel of its tile.
func (r *Renderer) SquareToScreen(sq board.Square) (int, int) {
	return sq.File * r.tileSize, sq.Rank * r.tileSize
}

// BoardSize returns the board edge in pixels.
func (r *Renderer) BoardSize() int {
	return r.tileSize * board.Size
}

// TileSize returns the size of one square in pixels.
func (r *Renderer) TileSize() int {
	return r.tileSize
}

// Theme returns the current theme.
func (r *Renderer) Theme() *Theme {
	return r.theme
}
