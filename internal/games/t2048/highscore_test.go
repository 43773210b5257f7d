package t2048

import (
	"errors"
	"testing"
)

// memStore is an in-memory HighScoreStore that counts writes.
type memStore struct {
	values  map[string]int
	writes  int
	failGet bool
	failSet bool
}

func newMemStore() *memStore {
	return &memStore{values: make(map[string]int)}
}

func (m *memStore) GetInt(namespace, key string, def int) (int, error) {
	if m.failGet {
		return def, errors.New("store unavailable")
	}
	v, ok := m.values[namespace+"/"+key]
	if !ok {
		return def, nil
	}
	return v, nil
}

func (m *memStore) SetInt(namespace, key string, value int) error {
	if m.failSet {
		return errors.New("store unavailable")
	}
	m.writes++
	m.values[namespace+"/"+key] = value
	return nil
}

func TestHighScoresDefaultZero(t *testing.T) {
	h, err := LoadHighScores(newMemStore())
	if err != nil {
		t.Fatalf("LoadHighScores() failed: %v", err)
	}
	if h.Best() != 0 {
		t.Errorf("Best() = %d, want 0", h.Best())
	}
}

func TestHighScoresRecordIsMax(t *testing.T) {
	store := newMemStore()
	store.values[HighScoreNamespace+"/"+HighScoreKey] = 100

	h, _ := LoadHighScores(store)
	if h.Best() != 100 {
		t.Fatalf("Best() = %d, want persisted 100", h.Best())
	}

	if got := h.Record(60); got != 100 {
		t.Errorf("Record(60) = %d, want 100", got)
	}
	if store.writes != 0 {
		t.Errorf("lower score caused %d writes, want 0", store.writes)
	}

	if got := h.Record(140); got != 140 {
		t.Errorf("Record(140) = %d, want 140", got)
	}
	if got := h.Record(140); got != 140 {
		t.Errorf("Record(140) again = %d, want 140", got)
	}
	if store.writes != 1 {
		t.Errorf("writes = %d, want 1", store.writes)
	}

	// A fresh keeper over the same store sees the new best.
	h2, _ := LoadHighScores(store)
	if h2.Best() != 140 {
		t.Errorf("reloaded Best() = %d, want 140", h2.Best())
	}
}

func TestHighScoresSharedStore(t *testing.T) {
	store := newMemStore()
	store.values[HighScoreNamespace+"/"+HighScoreKey] = 100

	a, _ := LoadHighScores(store)
	b, _ := LoadHighScores(store)

	if got := b.Record(500); got != 500 {
		t.Fatalf("b.Record(500) = %d, want 500", got)
	}
	// a still remembers 100 but must not overwrite b's 500.
	if got := a.Record(200); got != 500 {
		t.Errorf("a.Record(200) = %d, want 500", got)
	}
	if got := store.values[HighScoreNamespace+"/"+HighScoreKey]; got != 500 {
		t.Errorf("persisted best = %d, want 500", got)
	}
	if a.Best() != 500 {
		t.Errorf("a.Best() = %d, want 500 after seeing the store", a.Best())
	}
}

func TestHighScoresStoreErrors(t *testing.T) {
	store := newMemStore()
	store.failGet = true

	h, err := LoadHighScores(store)
	if err == nil {
		t.Error("LoadHighScores should report a failing store")
	}
	if h == nil || h.Best() != 0 {
		t.Fatal("LoadHighScores should still return a usable keeper")
	}

	store.failSet = true
	var reported []error
	h.OnError = func(err error) { reported = append(reported, err) }

	if got := h.Record(32); got != 32 {
		t.Errorf("Record(32) = %d, want 32 even when the store fails", got)
	}
	// Both the re-read and the write fail.
	if len(reported) != 2 {
		t.Errorf("OnError called %d times, want 2", len(reported))
	}
}

func TestHighScoresNilStore(t *testing.T) {
	h, err := LoadHighScores(nil)
	if err != nil {
		t.Fatalf("LoadHighScores(nil) failed: %v", err)
	}
	h.Record(8)
	if h.Best() != 8 {
		t.Errorf("Best() = %d, want 8", h.Best())
	}
}
