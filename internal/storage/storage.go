package storage

import (
	"encoding/json"
	"time"

	"github.com/dgraph-io/badger/v4"
)

const (
	keyResults    = "results"
	gameKeyPrefix = "game:"
)

// Outcome is the final result of a completed game, for aggregate tallying.
type Outcome int

const (
	OutcomeWhiteWin Outcome = iota
	OutcomeBlackWin
	OutcomeDraw
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWhiteWin:
		return "white"
	case OutcomeBlackWin:
		return "black"
	default:
		return "draw"
	}
}

// Record is one persisted game: the FEN it started from, the moves played
// from it in UCI notation, a human-readable result (empty while the game
// is still in progress), and when it was last saved.
type Record struct {
	StartFEN string    `json:"start_fen"`
	Moves    []string  `json:"moves"`
	Result   string    `json:"result"`
	SavedAt  time.Time `json:"saved_at"`
}

// Results is the aggregate win/loss/draw tally across every recorded game,
// adapted from the teacher's GameStats.
type Results struct {
	WhiteWins int `json:"white_wins"`
	BlackWins int `json:"black_wins"`
	Draws     int `json:"draws"`
}

// WinRate returns White's win rate as a percentage of all recorded games,
// draws included (0 if no games have been recorded).
func (r Results) WinRate() float64 {
	total := r.WhiteWins + r.BlackWins + r.Draws
	if total == 0 {
		return 0
	}
	return float64(r.WhiteWins) / float64(total) * 100
}

// Store wraps a BadgerDB instance for persisting game records and results.
// internal/board and internal/game never import this package; the
// dependency runs one way, from cmd/chessgo down.
type Store struct {
	db *badger.DB
}

// Open opens (creating if necessary) the badger database at dir. If dir is
// empty, the platform-specific default database directory is used.
func Open(dir string) (*Store, error) {
	if dir == "" {
		d, err := GetDatabaseDir()
		if err != nil {
			return nil, err
		}
		dir = d
	}

	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func gameKey(id string) []byte {
	return []byte(gameKeyPrefix + id)
}

// SaveGame persists rec under id, overwriting any existing record with that
// id. SavedAt is stamped with the current time if the caller left it zero.
func (s *Store) SaveGame(id string, rec Record) error {
	if rec.SavedAt.IsZero() {
		rec.SavedAt = time.Now()
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(gameKey(id), data)
	})
}

// LoadGame retrieves the record saved under id.
func (s *Store) LoadGame(id string) (Record, error) {
	var rec Record
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(gameKey(id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})
	return rec, err
}

// ListGames returns the ids of every saved game.
func (s *Store) ListGames() ([]string, error) {
	var ids []string
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(gameKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			key := string(it.Item().Key())
			ids = append(ids, key[len(gameKeyPrefix):])
		}
		return nil
	})
	return ids, err
}

// RecordResult tallies the outcome of a completed game into the aggregate
// results counters.
func (s *Store) RecordResult(outcome Outcome) error {
	results, err := s.LoadResults()
	if err != nil {
		return err
	}

	switch outcome {
	case OutcomeWhiteWin:
		results.WhiteWins++
	case OutcomeBlackWin:
		results.BlackWins++
	default:
		results.Draws++
	}

	data, err := json.Marshal(results)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyResults), data)
	})
}

// LoadResults loads the aggregate results tally, zero-valued if none exist yet.
func (s *Store) LoadResults() (Results, error) {
	var results Results
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyResults))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &results)
		})
	})
	return results, err
}
