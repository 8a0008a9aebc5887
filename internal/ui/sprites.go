package ui

import (
	"fmt"
	"image"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/segunkayode1/chess/internal/board"
)

// spriteKey ignores HasMoved: a piece looks the same before and after it moves.
type spriteKey struct {
	kind  board.PieceKind
	color board.Color
}

// SpriteManager manages piece sprites.
type SpriteManager struct {
	pieces      map[spriteKey]*ebiten.Image
	size        int
	renderScale float64 // Render at higher resolution for quality
}

// NewSpriteManager creates a new sprite manager with pieces of the given size.
func NewSpriteManager(size int) *SpriteManager {
	sm := &SpriteManager{
		pieces:      make(map[spriteKey]*ebiten.Image),
		size:        size,
		renderScale: 3.0,
	}
	sm.loadPieces()
	return sm
}

// Piece shapes on a 45x45 canvas. %[1]s is the fill, %[2]s the outline.
var pieceShapes = map[board.PieceKind]string{
	board.Pawn: `<circle cx="22.5" cy="13" r="5" fill="%[1]s" stroke="%[2]s" stroke-width="1.5"/>
<path d="M 17 22 L 28 22 L 26 18 L 19 18 Z" fill="%[1]s" stroke="%[2]s" stroke-width="1.5"/>
<path d="M 19 22 C 17 28 14 32 12 37 L 33 37 C 31 32 28 28 26 22 Z" fill="%[1]s" stroke="%[2]s" stroke-width="1.5"/>`,
	board.Rook: `<path d="M 11 9 L 15 9 L 15 12 L 20 12 L 20 9 L 25 9 L 25 12 L 30 12 L 30 9 L 34 9 L 34 15 L 11 15 Z" fill="%[1]s" stroke="%[2]s" stroke-width="1.5"/>
<rect x="14" y="15" width="17" height="16" fill="%[1]s" stroke="%[2]s" stroke-width="1.5"/>
<rect x="9" y="31" width="27" height="6" fill="%[1]s" stroke="%[2]s" stroke-width="1.5"/>`,
	board.Knight: `<path d="M 22 10 C 32 11 37 18 36 37 L 15 37 C 15 28 24 26 22 20 C 19 22 17 25 12 25 C 9 24 8 21 9 19 C 13 15 17 12 22 10 Z" fill="%[1]s" stroke="%[2]s" stroke-width="1.5"/>
<circle cx="17" cy="16" r="1.5" fill="%[2]s"/>`,
	board.Bishop: `<circle cx="22.5" cy="8" r="2.5" fill="%[1]s" stroke="%[2]s" stroke-width="1.5"/>
<path d="M 22.5 11 C 15 16 14 24 17 29 L 28 29 C 31 24 30 16 22.5 11 Z" fill="%[1]s" stroke="%[2]s" stroke-width="1.5"/>
<path d="M 20 20 L 25 20 M 22.5 17.5 L 22.5 22.5" stroke="%[2]s" stroke-width="1.5"/>
<rect x="11" y="31" width="23" height="6" fill="%[1]s" stroke="%[2]s" stroke-width="1.5"/>`,
	board.Queen: `<path d="M 9 26 L 8 12 L 15 24 L 17 10 L 22.5 24 L 28 10 L 30 24 L 37 12 L 36 26 Z" fill="%[1]s" stroke="%[2]s" stroke-width="1.5"/>
<circle cx="8" cy="11" r="2" fill="%[1]s" stroke="%[2]s" stroke-width="1.5"/>
<circle cx="17" cy="9" r="2" fill="%[1]s" stroke="%[2]s" stroke-width="1.5"/>
<circle cx="28" cy="9" r="2" fill="%[1]s" stroke="%[2]s" stroke-width="1.5"/>
<circle cx="37" cy="11" r="2" fill="%[1]s" stroke="%[2]s" stroke-width="1.5"/>
<path d="M 9 26 C 10 30 10 32 11 37 L 34 37 C 35 32 35 30 36 26 Z" fill="%[1]s" stroke="%[2]s" stroke-width="1.5"/>`,
	board.King: `<path d="M 22.5 5 L 22.5 13 M 19 8 L 26 8" stroke="%[2]s" stroke-width="1.5"/>
<path d="M 22.5 14 C 16 14 9 18 11 26 L 12 31 L 33 31 L 34 26 C 36 18 29 14 22.5 14 Z" fill="%[1]s" stroke="%[2]s" stroke-width="1.5"/>
<rect x="11" y="31" width="23" height="6" fill="%[1]s" stroke="%[2]s" stroke-width="1.5"/>`,
}

// pieceSVG returns the SVG document of one piece.
func pieceSVG(kind board.PieceKind, c board.Color) string {
	fill, stroke := "#ffffff", "#000000"
	if c == board.Black {
		fill, stroke = "#222222", "#000000"
	}
	var sb strings.Builder
	sb.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" width="45" height="45" viewBox="0 0 45 45">`)
	fmt.Fprintf(&sb, pieceShapes[kind], fill, stroke)
	sb.WriteString(`</svg>`)
	return sb.String()
}

// loadPieces rasterises every piece SVG.
func (sm *SpriteManager) loadPieces() {
	renderSize := int(float64(sm.size) * sm.renderScale)

	for kind := range pieceShapes {
		for _, c := range []board.Color{board.White, board.Black} {
			icon, err := oksvg.ReadIconStream(strings.NewReader(pieceSVG(kind, c)))
			if err != nil {
				log.Printf("Warning: Failed to parse %s %s sprite: %v", c, kind, err)
				continue
			}
			icon.SetTarget(0, 0, float64(renderSize), float64(renderSize))

			rgba := image.NewRGBA(image.Rect(0, 0, renderSize, renderSize))
			scanner := rasterx.NewScannerGV(renderSize, renderSize, rgba, rgba.Bounds())
			raster := rasterx.NewDasher(renderSize, renderSize, scanner)
			icon.Draw(raster, 1.0)

			sm.pieces[spriteKey{kind, c}] = ebiten.NewImageFromImage(rgba)
		}
	}
}

// GetPiece returns the sprite for a piece.
func (sm *SpriteManager) GetPiece(p board.Piece) *ebiten.Image {
	return sm.pieces[spriteKey{p.Kind, p.Color}]
}

// DrawPieceAt draws a piece with its top-left corner at x, y.
func (sm *SpriteManager) DrawPieceAt(screen *ebiten.Image, p board.Piece, x, y int) {
	sprite := sm.GetPiece(p)
	if sprite == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	scale := 1.0 / sm.renderScale
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(x), float64(y))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(sprite, op)
}

// Size returns the size of piece sprites.
func (sm *SpriteManager) Size() int {
	return sm.size
}
