package ui

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/segunkayode1/chess/internal/board"
	"github.com/segunkayode1/chess/internal/game"
	"github.com/segunkayode1/chess/internal/storage"
)

// Game implements ebiten.Game on top of a game.State.
type Game struct {
	state *game.State

	// Move tracking, refreshed after every commit
	plies     int
	pieces    int
	startedAt time.Time

	// Storage; nil when the database could not be opened
	storage *storage.Storage
	prefs   *storage.UserPreferences

	// Components
	renderer *Renderer
	input    *InputHandler
	feedback *FeedbackManager

	// Game state
	gameOver bool
	status   game.Status
}

// NewGame creates a game window model. store may be nil.
func NewGame(store *storage.Storage, prefs *storage.UserPreferences) *Game {
	if prefs == nil {
		prefs = storage.DefaultPreferences()
	}
	if prefs.TileSize <= 0 {
		prefs.TileSize = game.DefaultTileSize
	}

	g := &Game{
		storage:  store,
		prefs:    prefs,
		renderer: NewRenderer(prefs.TileSize),
		input:    NewInputHandler(),
		feedback: NewFeedbackManager(prefs.SoundEnabled),
	}
	g.NewGameAction()
	return g
}

// WindowSize returns the window edge in pixels.
func (g *Game) WindowSize() int {
	return g.renderer.BoardSize()
}

// NewGameAction resets to the starting position.
func (g *Game) NewGameAction() {
	g.state = game.New(game.WithTileSize(g.prefs.TileSize))
	g.plies = 0
	g.pieces = g.countPieces()
	g.startedAt = time.Now()
	g.gameOver = false
	g.status = game.Status{}
	log.Printf("[GAME] New game, %s to move", g.state.Turn())
}

func (g *Game) countPieces() int {
	b := g.state.Board()
	return b.Count(board.White) + b.Count(board.Black)
}

// Update handles game logic updates.
func (g *Game) Update() error {
	g.input.Update()
	g.feedback.Update()

	if IsKeyJustPressed(ebiten.KeyEscape) {
		g.state.Cancel()
	}
	if g.gameOver {
		if IsKeyJustPressed(ebiten.KeyN) {
			g.NewGameAction()
		}
		return nil
	}

	g.handleBoardInput()

	if g.state.Plies() != g.plies {
		g.onMoveMade()
	}
	return nil
}

// handleBoardInput forwards this frame's pointer events in press, move,
// release order.
func (g *Game) handleBoardInput() {
	mx, my := g.input.MousePosition()
	if g.input.IsLeftJustPressed() {
		g.state.MouseDown(mx, my)
	}
	if g.input.Moved() {
		g.state.MouseMove(mx, my)
	}
	if g.input.IsLeftJustReleased() {
		g.state.MouseUp(mx, my)
	}
}

// onMoveMade runs once per committed move.
func (g *Game) onMoveMade() {
	g.plies = g.state.Plies()
	m, _ := g.state.LastMove()

	pieces := g.countPieces()
	isCapture := pieces < g.pieces
	g.pieces = pieces
	// A castle is recorded as king origin to rook corner, and the corner is
	// left empty.
	isCastling := g.state.Tile(m.Dst).IsEmpty()

	log.Printf("[MOVE] %s, %s to move (capture=%v castle=%v)", m, g.state.Turn(), isCapture, isCastling)
	g.feedback.OnMoveMade(isCapture, isCastling)

	g.checkGameEnd()
	if !g.gameOver && g.state.InCheck() {
		g.feedback.OnCheck(g.state.KingSquare())
	}
}

// checkGameEnd finishes the game the first time EndGame leaves Continue.
func (g *Game) checkGameEnd() {
	st := g.state.EndGame()
	if st.Outcome == game.Continue {
		return
	}

	g.gameOver = true
	g.status = st
	log.Printf("[GAME] %s after %d plies", resultLine(st), g.plies)

	if err := PrintResult(os.Stdout, st, g.plies); err != nil {
		log.Printf("Warning: Failed to print result: %v", err)
	}
	g.feedback.OnGameEnd(st)
	g.recordGame(st)
}

// recordGame stores the finished game's outcome.
func (g *Game) recordGame(st game.Status) {
	if g.storage == nil {
		return
	}

	rec, err := g.storage.RecordGame(storage.GameRecord{
		Result:   resultOf(st),
		Reason:   st.Reason.String(),
		Plies:    g.plies,
		Duration: time.Since(g.startedAt),
	})
	if err != nil {
		log.Printf("Warning: Failed to record game: %v", err)
		return
	}
	log.Printf("[STORAGE] Recorded game %s (%s)", rec.ID, rec.Result)
}

func resultOf(st game.Status) storage.Result {
	if st.Outcome == game.Draw {
		return storage.Drawn
	}
	if st.Winner == board.White {
		return storage.WhiteWins
	}
	return storage.BlackWins
}

// Draw renders the game.
func (g *Game) Draw(screen *ebiten.Image) {
	r := g.renderer
	r.DrawBoard(screen)

	if m, ok := g.state.LastMove(); ok {
		r.DrawLastMove(screen, m)
	}
	if g.state.InCheck() {
		r.DrawCheck(screen, g.state.KingSquare())
	}
	g.feedback.DrawFlashes(screen, r)

	sq, selected := g.state.SelectedSquare()
	if selected {
		r.DrawSelection(screen, sq)
	}
	b := g.state.Board()
	if selected && g.prefs.ShowLegalMoves {
		r.DrawLegalMoves(screen, b, g.state.LegalMoves())
	}

	held, pt, holding := g.state.MovingPiece()
	r.DrawPieces(screen, b, sq, holding)
	if holding {
		r.DrawHeldPiece(screen, held, pt.X, pt.Y)
	}

	g.drawStatusLine(screen)
	g.feedback.DrawToasts(screen, r)
}

// drawStatusLine writes whose turn it is, or the result, along the bottom
// edge of the board.
func (g *Game) drawStatusLine(screen *ebiten.Image) {
	face := faceFor(boldFace, g.renderer.TileSize())
	if face == nil {
		return
	}

	var line string
	switch {
	case g.gameOver:
		line = resultLine(g.status) + " - press N for a new game"
	case g.state.InCheck():
		line = fmt.Sprintf("%s to move - check", g.state.Turn())
	default:
		line = fmt.Sprintf("%s to move", g.state.Turn())
	}

	w, h := MeasureText(line, face)
	padding := 6.0
	size := float64(g.renderer.BoardSize())
	y := size - h - padding*2
	vector.DrawFilledRect(screen, 0, float32(y), float32(w+padding*2), float32(h+padding*2), g.renderer.Theme().StatusBar, false)

	op := &text.DrawOptions{}
	op.GeoM.Translate(padding, y+padding)
	op.ColorScale.ScaleWithColor(g.renderer.Theme().TextColor)
	text.Draw(screen, line, face, op)
}

// Layout keeps a fixed logical screen of one tile per square.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := g.renderer.BoardSize()
	return size, size
}

// Close closes storage.
func (g *Game) Close() {
	if g.storage == nil {
		return
	}
	if err := g.storage.Close(); err != nil {
		log.Printf("Warning: Failed to close storage: %v", err)
	}
}
