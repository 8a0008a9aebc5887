package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"github.com/segunkayode1/chess/internal/errs"
)

// Storage keys
const (
	keyPreferences = "preferences"
	keyStats       = "stats"
	gamePrefix     = "game:"
)

// Result is a finished game's score in the usual notation.
type Result string

const (
	WhiteWins Result = "1-0"
	BlackWins Result = "0-1"
	Drawn     Result = "1/2-1/2"
)

// UserPreferences stores user settings
type UserPreferences struct {
	TileSize       int       `json:"tile_size"`
	SoundEnabled   bool      `json:"sound_enabled"`
	ShowLegalMoves bool      `json:"show_legal_moves"`
	LastPlayed     time.Time `json:"last_played"`
}

// DefaultPreferences returns default user preferences
func DefaultPreferences() *UserPreferences {
	return &UserPreferences{
		TileSize:       96,
		SoundEnabled:   true,
		ShowLegalMoves: true,
		LastPlayed:     time.Now(),
	}
}

// GameStats stores totals over every recorded game
type GameStats struct {
	GamesPlayed   int           `json:"games_played"`
	WhiteWins     int           `json:"white_wins"`
	BlackWins     int           `json:"black_wins"`
	Draws         int           `json:"draws"`
	TotalPlayTime time.Duration `json:"total_play_time"`
}

// DrawRate returns the share of drawn games as a percentage (0-100)
func (s *GameStats) DrawRate() float64 {
	if s.GamesPlayed == 0 {
		return 0
	}
	return float64(s.Draws) / float64(s.GamesPlayed) * 100
}

// GameRecord is the stored outcome of one finished game. Move lists are
// not kept.
type GameRecord struct {
	ID         uuid.UUID     `json:"id"`
	Result     Result        `json:"result"`
	Reason     string        `json:"reason"`
	Plies      int           `json:"plies"`
	Duration   time.Duration `json:"duration"`
	FinishedAt time.Time     `json:"finished_at"`
}

// Storage wraps BadgerDB for persistent storage
type Storage struct {
	mu sync.RWMutex
	db *badger.DB
}

// Open opens the database under dir, creating it if needed.
func Open(dir string) (*Storage, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", dir, err)
	}

	return &Storage{db: db}, nil
}

// OpenIn opens the database in the db directory under dataDir, or under
// the platform data directory when dataDir is empty.
func OpenIn(dataDir string) (*Storage, error) {
	dbDir, err := DatabaseDir(dataDir)
	if err != nil {
		return nil, err
	}
	return Open(dbDir)
}

// Close closes the database. Closing twice is harmless.
func (s *Storage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// view and update run fn against the open database.
func (s *Storage) view(fn func(txn *badger.Txn) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.db == nil {
		return errs.ErrStorageClosed
	}
	return s.db.View(fn)
}

func (s *Storage) update(fn func(txn *badger.Txn) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.db == nil {
		return errs.ErrStorageClosed
	}
	return s.db.Update(fn)
}

// getJSON decodes the value at key into v. A missing key leaves v untouched.
func getJSON(txn *badger.Txn, key string, v any) error {
	item, err := txn.Get([]byte(key))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return item.Value(func(val []byte) error {
		return json.Unmarshal(val, v)
	})
}

func setJSON(txn *badger.Txn, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return txn.Set([]byte(key), data)
}

// SavePreferences saves user preferences
func (s *Storage) SavePreferences(prefs *UserPreferences) error {
	prefs.LastPlayed = time.Now()

	return s.update(func(txn *badger.Txn) error {
		return setJSON(txn, keyPreferences, prefs)
	})
}

// LoadPreferences loads user preferences, returns defaults if not found
func (s *Storage) LoadPreferences() (*UserPreferences, error) {
	prefs := DefaultPreferences()

	err := s.view(func(txn *badger.Txn) error {
		return getJSON(txn, keyPreferences, prefs)
	})

	return prefs, err
}

// LoadStats loads game statistics, returns empty stats if not found
func (s *Storage) LoadStats() (*GameStats, error) {
	stats := &GameStats{}

	err := s.view(func(txn *badger.Txn) error {
		return getJSON(txn, keyStats, stats)
	})

	return stats, err
}

// RecordGame stores a finished game and updates the totals in one
// transaction. A zero ID or FinishedAt is filled in.
func (s *Storage) RecordGame(rec GameRecord) (GameRecord, error) {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.FinishedAt.IsZero() {
		rec.FinishedAt = time.Now()
	}

	err := s.update(func(txn *badger.Txn) error {
		stats := &GameStats{}
		if err := getJSON(txn, keyStats, stats); err != nil {
			return err
		}

		stats.GamesPlayed++
		stats.TotalPlayTime += rec.Duration
		switch rec.Result {
		case WhiteWins:
			stats.WhiteWins++
		case BlackWins:
			stats.BlackWins++
		case Drawn:
			stats.Draws++
		default:
			return fmt.Errorf("record game %s: unknown result %q", rec.ID, rec.Result)
		}

		if err := setJSON(txn, gamePrefix+rec.ID.String(), rec); err != nil {
			return err
		}
		return setJSON(txn, keyStats, stats)
	})
	if err != nil {
		return GameRecord{}, err
	}

	return rec, nil
}

// LoadGame returns the record stored under id.
func (s *Storage) LoadGame(id uuid.UUID) (GameRecord, error) {
	var rec GameRecord

	err := s.view(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(gamePrefix + id.String()))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("game %s: %w", id, errs.ErrNotFound)
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})

	return rec, err
}

// Games returns every stored record, most recent first.
func (s *Storage) Games() ([]GameRecord, error) {
	var games []GameRecord

	err := s.view(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(gamePrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			var rec GameRecord
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &rec)
			}); err != nil {
				return err
			}
			games = append(games, rec)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(games, func(i, j int) bool {
		return games[i].FinishedAt.After(games[j].FinishedAt)
	})
	return games, nil
}
