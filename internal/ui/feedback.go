package ui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/segunkayode1/chess/internal/board"
	"github.com/segunkayode1/chess/internal/game"
)

// ToastType represents the type of toast notification.
type ToastType int

const (
	ToastInfo ToastType = iota
	ToastWarning
	ToastSuccess
)

// Toast represents a notification message.
type Toast struct {
	Message   string
	Type      ToastType
	StartTime time.Time
	Duration  time.Duration
}

// ToastManager manages toast notifications.
type ToastManager struct {
	toasts   []*Toast
	maxStack int
	now      func() time.Time
}

// NewToastManager creates a new toast manager.
func NewToastManager() *ToastManager {
	return &ToastManager{maxStack: 3, now: time.Now}
}

// Show displays a new toast notification. The oldest toast is dropped
// beyond maxStack.
func (tm *ToastManager) Show(message string, toastType ToastType, duration time.Duration) {
	tm.toasts = append(tm.toasts, &Toast{
		Message:   message,
		Type:      toastType,
		StartTime: tm.now(),
		Duration:  duration,
	})
	if len(tm.toasts) > tm.maxStack {
		tm.toasts = tm.toasts[1:]
	}
}

// Update removes expired toasts.
func (tm *ToastManager) Update() {
	now := tm.now()
	active := tm.toasts[:0]
	for _, t := range tm.toasts {
		if now.Sub(t.StartTime) < t.Duration {
			active = append(active, t)
		}
	}
	tm.toasts = active
}

// Active returns the messages still on screen, oldest first.
func (tm *ToastManager) Active() []string {
	msgs := make([]string, 0, len(tm.toasts))
	for _, t := range tm.toasts {
		msgs = append(msgs, t.Message)
	}
	return msgs
}

// Draw renders the active toasts centred across a board of boardSize pixels.
func (tm *ToastManager) Draw(screen *ebiten.Image, boardSize int, face *text.GoTextFace) {
	if face == nil {
		return
	}

	y := float64(boardSize) / 8
	for _, t := range tm.toasts {
		elapsed := tm.now().Sub(t.StartTime).Seconds()
		duration := t.Duration.Seconds()

		// Fade in/out
		alpha := 1.0
		fadeTime := 0.2
		if elapsed < fadeTime {
			alpha = elapsed / fadeTime
		} else if elapsed > duration-fadeTime {
			alpha = (duration - elapsed) / fadeTime
		}
		if alpha < 0 {
			alpha = 0
		}

		bg := color.RGBA{50, 100, 150, uint8(220 * alpha)}
		fg := color.RGBA{255, 255, 255, uint8(255 * alpha)}
		switch t.Type {
		case ToastWarning:
			bg = color.RGBA{180, 140, 20, uint8(220 * alpha)}
			fg = color.RGBA{40, 30, 0, uint8(255 * alpha)}
		case ToastSuccess:
			bg = color.RGBA{50, 150, 50, uint8(220 * alpha)}
		}

		w, h := MeasureText(t.Message, face)
		padding := 12.0
		boxW := w + padding*2
		boxH := h + padding*2
		x := float64(boardSize)/2 - boxW/2

		vector.DrawFilledRect(screen, float32(x), float32(y), float32(boxW), float32(boxH), bg, false)

		op := &text.DrawOptions{}
		op.GeoM.Translate(x+padding, y+padding)
		op.ColorScale.ScaleWithColor(fg)
		text.Draw(screen, t.Message, face, op)

		y += boxH + 8
	}
}

// FlashAnimation is a fading overlay on one square.
type FlashAnimation struct {
	Square    board.Square
	StartTime time.Time
	Duration  time.Duration
	Color     color.RGBA
}

// FeedbackManager coordinates toasts, flashes and sounds.
type FeedbackManager struct {
	toasts  *ToastManager
	flashes []*FlashAnimation
	audio   *AudioManager
}

// NewFeedbackManager creates a new feedback manager.
func NewFeedbackManager(sound bool) *FeedbackManager {
	return &FeedbackManager{
		toasts: NewToastManager(),
		audio:  NewAudioManager(sound),
	}
}

// Update expires old toasts and flashes.
func (fm *FeedbackManager) Update() {
	fm.toasts.Update()

	now := fm.toasts.now()
	active := fm.flashes[:0]
	for _, f := range fm.flashes {
		if now.Sub(f.StartTime) < f.Duration {
			active = append(active, f)
		}
	}
	fm.flashes = active
}

// DrawFlashes renders the flash overlays below the pieces.
func (fm *FeedbackManager) DrawFlashes(screen *ebiten.Image, r *Renderer) {
	for _, f := range fm.flashes {
		progress := fm.toasts.now().Sub(f.StartTime).Seconds() / f.Duration.Seconds()
		if progress >= 1 {
			continue
		}
		c := f.Color
		c.A = uint8(float64(c.A) * (1 - progress))
		r.highlightSquare(screen, f.Square, c)
	}
}

// DrawToasts renders the toasts on top of everything else.
func (fm *FeedbackManager) DrawToasts(screen *ebiten.Image, r *Renderer) {
	fm.toasts.Draw(screen, r.BoardSize(), faceFor(regularFace, r.TileSize()))
}

// OnMoveMade plays the sound of a committed move.
func (fm *FeedbackManager) OnMoveMade(isCapture, isCastling bool) {
	switch {
	case isCastling:
		fm.audio.Play(SoundCastle)
	case isCapture:
		fm.audio.Play(SoundCapture)
	default:
		fm.audio.Play(SoundMove)
	}
}

// OnCheck flashes the checked king.
func (fm *FeedbackManager) OnCheck(kingSq board.Square) {
	fm.toasts.Show("Check!", ToastWarning, 2*time.Second)
	fm.flashes = append(fm.flashes, &FlashAnimation{
		Square:    kingSq,
		StartTime: fm.toasts.now(),
		Duration:  400 * time.Millisecond,
		Color:     color.RGBA{255, 80, 80, 150},
	})
	fm.audio.Play(SoundCheck)
}

// OnGameEnd announces a finished game.
func (fm *FeedbackManager) OnGameEnd(st game.Status) {
	toastType := ToastInfo
	if st.Outcome == game.Win {
		toastType = ToastSuccess
	}
	fm.toasts.Show(resultLine(st), toastType, 5*time.Second)
	fm.audio.Play(SoundGameEnd)
}

// resultLine describes a finished game, e.g. "White won by checkmate".
func resultLine(st game.Status) string {
	if st.Outcome == game.Continue {
		return st.String()
	}
	return st.String() + " by " + st.Reason.String()
}
