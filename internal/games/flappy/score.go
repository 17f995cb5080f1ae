package flappy

import (
	"io"
	"strconv"

	"github.com/charmbracelet/log"
)

// ScoreStore is a string key/value store holding the persisted high score.
// Get returns an empty string for a missing key.
type ScoreStore interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

// MaxStore is implemented by stores that can raise a numeric value in one
// step. SetMax stores value only if it beats the stored one and returns the
// value held afterwards.
type MaxStore interface {
	SetMax(key string, value float64) (float64, error)
}

// ScoreKeeper tracks the best score and writes every improvement through to
// a ScoreStore. Store failures never reach the game: reads fall back to zero
// and writes are dropped after logging.
type ScoreKeeper struct {
	store  ScoreStore
	key    string
	best   float64
	logger *log.Logger
}

// NewScoreKeeper creates a keeper and reads the stored high score once.
// A nil store keeps the high score in memory only.
func NewScoreKeeper(store ScoreStore, key string, logger *log.Logger) *ScoreKeeper {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	k := &ScoreKeeper{store: store, key: key, logger: logger}
	k.best = k.load()
	return k
}

func (k *ScoreKeeper) load() float64 {
	if k.store == nil {
		return 0
	}

	raw, err := k.store.Get(k.key)
	if err != nil {
		k.logger.Warn("could not read high score", "key", k.key, "error", err)
		return 0
	}
	if raw == "" {
		return 0
	}

	best, ok := ParseScore(raw)
	if !ok {
		k.logger.Warn("ignoring malformed high score", "key", k.key, "value", raw)
		return 0
	}
	return best
}

// Best returns the current high score.
func (k *ScoreKeeper) Best() float64 {
	return k.best
}

// Observe raises the high score if score beats it and persists the new
// value. It reports whether the high score changed. Another game sharing the
// store may have stored a higher value since this keeper loaded; that value
// is kept and adopted.
func (k *ScoreKeeper) Observe(score float64) bool {
	if score <= k.best {
		return false
	}
	k.best = score

	if k.store == nil {
		return true
	}
	stored, err := k.persist(score)
	if err != nil {
		k.logger.Warn("could not persist high score", "key", k.key, "error", err)
		return true
	}
	k.best = max(k.best, stored)
	return true
}

// persist writes score unless the store already holds more, and returns
// the stored value.
func (k *ScoreKeeper) persist(score float64) (float64, error) {
	if ms, ok := k.store.(MaxStore); ok {
		return ms.SetMax(k.key, score)
	}

	raw, err := k.store.Get(k.key)
	if err != nil {
		return 0, err
	}
	if stored, ok := ParseScore(raw); ok && stored >= score {
		return stored, nil
	}
	return score, k.store.Set(k.key, FormatScore(score))
}

// ParseScore reads a stored score. Empty, malformed and negative values are
// rejected.
func ParseScore(raw string) (float64, bool) {
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

// FormatScore renders a score with the fewest digits needed ("2", "3.5").
func FormatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', -1, 64)
}
