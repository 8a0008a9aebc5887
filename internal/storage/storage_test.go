package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"

	"github.com/segunkayode1/chess/internal/errs"
)

func openTemp(t *testing.T) *Storage {
	t.Helper()
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPreferences(t *testing.T) {
	s := openTemp(t)

	t.Run("defaults when missing", func(t *testing.T) {
		prefs, err := s.LoadPreferences()
		if err != nil {
			t.Fatalf("LoadPreferences: %v", err)
		}
		if prefs.TileSize != 96 || !prefs.SoundEnabled || !prefs.ShowLegalMoves {
			t.Errorf("LoadPreferences() = %+v; want defaults", prefs)
		}
	})

	t.Run("round trip", func(t *testing.T) {
		want := &UserPreferences{TileSize: 64, SoundEnabled: false, ShowLegalMoves: true}
		if err := s.SavePreferences(want); err != nil {
			t.Fatalf("SavePreferences: %v", err)
		}
		if want.LastPlayed.IsZero() {
			t.Error("SavePreferences did not stamp LastPlayed")
		}

		got, err := s.LoadPreferences()
		if err != nil {
			t.Fatalf("LoadPreferences: %v", err)
		}
		if diff := cmp.Diff(want, got, cmpopts.EquateApproxTime(time.Second)); diff != "" {
			t.Errorf("preferences mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestRecordGame(t *testing.T) {
	s := openTemp(t)

	results := []Result{WhiteWins, Drawn, BlackWins, WhiteWins}
	var ids []uuid.UUID
	base := time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)
	for i, r := range results {
		rec, err := s.RecordGame(GameRecord{
			Result:     r,
			Reason:     "checkmate",
			Plies:      10 + i,
			Duration:   time.Minute,
			FinishedAt: base.Add(time.Duration(i) * time.Hour),
		})
		if err != nil {
			t.Fatalf("RecordGame(%s): %v", r, err)
		}
		if rec.ID == uuid.Nil {
			t.Fatal("RecordGame did not assign an id")
		}
		ids = append(ids, rec.ID)
	}

	stats, err := s.LoadStats()
	if err != nil {
		t.Fatalf("LoadStats: %v", err)
	}
	want := &GameStats{GamesPlayed: 4, WhiteWins: 2, BlackWins: 1, Draws: 1, TotalPlayTime: 4 * time.Minute}
	if diff := cmp.Diff(want, stats); diff != "" {
		t.Errorf("stats mismatch (-want +got):\n%s", diff)
	}
	if got := stats.DrawRate(); got != 25 {
		t.Errorf("DrawRate() = %v; want 25", got)
	}

	rec, err := s.LoadGame(ids[1])
	if err != nil {
		t.Fatalf("LoadGame: %v", err)
	}
	if rec.Result != Drawn || rec.Plies != 11 {
		t.Errorf("LoadGame() = %+v; want the drawn game", rec)
	}

	games, err := s.Games()
	if err != nil {
		t.Fatalf("Games: %v", err)
	}
	if len(games) != len(results) {
		t.Fatalf("len(Games()) = %d; want %d", len(games), len(results))
	}
	if games[0].ID != ids[3] || games[3].ID != ids[0] {
		t.Error("Games() is not ordered most recent first")
	}
}

func TestRecordGameRejectsUnknownResult(t *testing.T) {
	s := openTemp(t)

	if _, err := s.RecordGame(GameRecord{Result: "2-0"}); err == nil {
		t.Fatal("RecordGame accepted an unknown result")
	}

	stats, err := s.LoadStats()
	if err != nil {
		t.Fatalf("LoadStats: %v", err)
	}
	if stats.GamesPlayed != 0 {
		t.Errorf("failed record changed stats: %+v", stats)
	}
	games, err := s.Games()
	if err != nil {
		t.Fatalf("Games: %v", err)
	}
	if len(games) != 0 {
		t.Errorf("failed record left %d games behind", len(games))
	}
}

func TestLoadGameNotFound(t *testing.T) {
	s := openTemp(t)
	if _, err := s.LoadGame(uuid.New()); !errors.Is(err, errs.ErrNotFound) {
		t.Errorf("LoadGame error = %v; want ErrNotFound", err)
	}
}

func TestClosed(t *testing.T) {
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}

	if _, err := s.LoadStats(); !errors.Is(err, errs.ErrStorageClosed) {
		t.Errorf("LoadStats after Close error = %v; want ErrStorageClosed", err)
	}
	if _, err := s.RecordGame(GameRecord{Result: Drawn}); !errors.Is(err, errs.ErrStorageClosed) {
		t.Errorf("RecordGame after Close error = %v; want ErrStorageClosed", err)
	}
}

func TestPersistsAcrossOpen(t *testing.T) {
	dir := t.TempDir()
	s, err := OpenIn(dir)
	if err != nil {
		t.Fatalf("OpenIn: %v", err)
	}
	if _, err := s.RecordGame(GameRecord{Result: BlackWins}); err != nil {
		t.Fatalf("RecordGame: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "db")); err != nil {
		t.Fatalf("database directory missing: %v", err)
	}

	s, err = OpenIn(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()

	stats, err := s.LoadStats()
	if err != nil {
		t.Fatalf("LoadStats: %v", err)
	}
	if stats.GamesPlayed != 1 || stats.BlackWins != 1 {
		t.Errorf("stats after reopen = %+v", stats)
	}
}

func TestDataPaths(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	// Test that GetDataDir returns a valid path
	dataDir, err := GetDataDir()
	if err != nil {
		t.Fatalf("GetDataDir failed: %v", err)
	}
	if dataDir == "" {
		t.Error("GetDataDir returned empty path")
	}

	// Verify directory exists
	if _, err := os.Stat(dataDir); os.IsNotExist(err) {
		t.Errorf("Data directory was not created: %s", dataDir)
	}

	t.Logf("Data directory: %s", dataDir)
}
