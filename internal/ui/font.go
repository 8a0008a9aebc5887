// Package ui is the Ebitengine front end: it polls the pointer, forwards
// presses, moves and releases to the game engine and draws the result.
package ui

import (
	"bytes"
	"log"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	// Font faces for text rendering
	regularFace *text.GoTextFace
	boldFace    *text.GoTextFace
)

const (
	defaultFontSize = 14.0
	titleFontSize   = 16.0
)

func init() {
	initFonts()
}

func initFonts() {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Printf("Warning: Failed to load regular font: %v", err)
		return
	}
	regularFace = &text.GoTextFace{Source: regular, Size: defaultFontSize}

	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		log.Printf("Warning: Failed to load bold font: %v", err)
		return
	}
	boldFace = &text.GoTextFace{Source: bold, Size: titleFontSize}
}

// faceFor scales base with the tile size, never below 9pt.
func faceFor(base *text.GoTextFace, tileSize int) *text.GoTextFace {
	if base == nil {
		return nil
	}
	size := base.Size * float64(tileSize) / 96
	if size < 9 {
		size = 9
	}
	return &text.GoTextFace{Source: base.Source, Size: size}
}

// MeasureText returns the width and height of the given text.
func MeasureText(s string, face *text.GoTextFace) (width, height float64) {
	if face == nil {
		return 0, 0
	}
	return text.Measure(s, face, 0)
}
