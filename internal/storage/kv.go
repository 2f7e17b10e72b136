package storage

import (
	"github.com/charmbracelet/log"

	"github.com/ssoylu/wordwheel/internal/engine"
)

// KV adapts a profile slice of the SQLite state table to the engine's
// fire-and-forget store surface. The engine's in-memory state stays
// authoritative; a failing write is logged and swallowed.
type KV struct {
	store   *Store
	profile string
	logger  *log.Logger
}

// NewKV wraps store for one play profile.
func NewKV(store *Store, profile string, logger *log.Logger) *KV {
	if logger == nil {
		logger = log.Default()
	}
	return &KV{store: store, profile: profile, logger: logger}
}

// GetInt returns the stored value for key, or fallback if absent.
func (k *KV) GetInt(key string, fallback int) int {
	value, ok, err := k.store.GetState(k.profile, key)
	if err != nil {
		k.logger.Warn("state read failed", "key", key, "err", err)
		return fallback
	}
	if !ok {
		return fallback
	}
	return value
}

// SetInt stores value under key.
func (k *KV) SetInt(key string, value int) {
	if err := k.store.SetState(k.profile, key, value); err != nil {
		k.logger.Warn("state write failed", "key", key, "err", err)
	}
}

// Delete removes key.
func (k *KV) Delete(key string) {
	if err := k.store.DeleteState(k.profile, key); err != nil {
		k.logger.Warn("state delete failed", "key", key, "err", err)
	}
}

// Has reports whether key exists.
func (k *KV) Has(key string) bool {
	_, ok, err := k.store.GetState(k.profile, key)
	if err != nil {
		k.logger.Warn("state read failed", "key", key, "err", err)
		return false
	}
	return ok
}

var _ engine.Store = (*KV)(nil)
