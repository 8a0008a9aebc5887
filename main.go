// Chess - a two-player chess board built with Ebitengine
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/segunkayode1/chess/internal/storage"
	"github.com/segunkayode1/chess/internal/ui"
)

func main() {
	tile := flag.Int("tile", 0, "square size in pixels (0 keeps the saved preference)")
	dataDir := flag.String("data-dir", "", "directory for preferences and game records")
	mute := flag.Bool("mute", false, "disable sound effects")
	flag.Parse()

	store, err := storage.OpenIn(*dataDir)
	if err != nil {
		log.Printf("Warning: Failed to initialize storage: %v", err)
		store = nil
	}

	prefs := loadPreferences(store)
	session := *prefs
	if *tile > 0 {
		session.TileSize = *tile
	}
	if *mute {
		session.SoundEnabled = false
	}

	game := ui.NewGame(store, &session)
	defer game.Close()

	size := game.WindowSize()
	ebiten.SetWindowSize(size, size)
	ebiten.SetWindowTitle("Chess")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

// loadPreferences reads the saved preferences and stamps this launch. The
// session's flag overrides are never written back.
func loadPreferences(store *storage.Storage) *storage.UserPreferences {
	if store == nil {
		return storage.DefaultPreferences()
	}

	prefs, err := store.LoadPreferences()
	if err != nil {
		log.Printf("Warning: Failed to load preferences: %v", err)
		return storage.DefaultPreferences()
	}
	if err := store.SavePreferences(prefs); err != nil {
		log.Printf("Warning: Failed to save preferences: %v", err)
	}
	return prefs
}
