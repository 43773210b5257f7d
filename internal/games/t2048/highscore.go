package t2048

// High score keys in the prefs store.
const (
	HighScoreNamespace = "game_prefs"
	HighScoreKey       = "high_score"
)

// HighScoreStore reads and writes integers under a namespace and key.
type HighScoreStore interface {
	GetInt(namespace, key string, def int) (int, error)
	SetInt(namespace, key string, value int) error
}

// HighScoreRaiser is implemented by stores that apply the max rule in a
// single write, returning the stored value afterwards.
type HighScoreRaiser interface {
	RaiseInt(namespace, key string, value int) (int, error)
}

// HighScores tracks the best score across games and sessions.
// The best is max(previous best, every recorded score).
type HighScores struct {
	store HighScoreStore
	best  int

	// OnError receives store failures. The in-memory best is kept either way.
	OnError func(error)
}

// LoadHighScores reads the persisted best score, defaulting to 0.
// A nil store keeps the best in memory only.
func LoadHighScores(store HighScoreStore) (*HighScores, error) {
	h := &HighScores{store: store}
	if store == nil {
		return h, nil
	}

	best, err := store.GetInt(HighScoreNamespace, HighScoreKey, 0)
	if err != nil {
		return h, err
	}
	h.best = max(best, 0)
	return h, nil
}

// Best returns the best score seen so far.
func (h *HighScores) Best() int {
	return h.best
}

// Record folds score into the best and returns the result. Other keepers may
// share the store, so a score above the cached best is checked against the
// persisted value, which is never lowered.
func (h *HighScores) Record(score int) int {
	if score <= h.best {
		return h.best
	}
	if h.store == nil {
		h.best = score
		return h.best
	}

	if r, ok := h.store.(HighScoreRaiser); ok {
		stored, err := r.RaiseInt(HighScoreNamespace, HighScoreKey, score)
		if err != nil {
			h.report(err)
			stored = score
		}
		h.best = max(stored, score)
		return h.best
	}

	stored, err := h.store.GetInt(HighScoreNamespace, HighScoreKey, 0)
	if err != nil {
		h.report(err)
	}
	h.best = max(h.best, stored)
	if score <= h.best {
		return h.best
	}

	h.best = score
	if err := h.store.SetInt(HighScoreNamespace, HighScoreKey, score); err != nil {
		h.report(err)
	}
	return h.best
}

func (h *HighScores) report(err error) {
	if h.OnError != nil {
		h.OnError(err)
	}
}
