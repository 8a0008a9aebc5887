package ui

import (
	"io"

	"github.com/fatih/color"

	"github.com/segunkayode1/chess/internal/game"
)

var (
	winBanner  = color.New(color.FgGreen, color.Bold)
	drawBanner = color.New(color.FgYellow, color.Bold)
)

// PrintResult writes the one-line result banner of a finished game to w.
// Nothing is written while the game goes on.
func PrintResult(w io.Writer, st game.Status, plies int) error {
	var err error
	switch st.Outcome {
	case game.Win:
		_, err = winBanner.Fprintf(w, "%s after %d plies\n", resultLine(st), plies)
	case game.Draw:
		_, err = drawBanner.Fprintf(w, "%s after %d plies\n", resultLine(st), plies)
	}
	return err
}
