package engine

// Persisted state keys. The storage backend treats them as opaque names;
// the engine never writes these fields except through the owning component.
const (
	KeyQuestionIndex = "question_index"
	KeyTotalScore    = "total_score"
	KeyLevelScore    = "level_score"
	KeyHighScore     = "high_score"
	KeyGold          = "gold"
	KeyHintTier      = "hint_tier_watermark"
	KeyFactIndex     = "fact_index"
	KeyJustReset     = "just_reset"
)

// Store is the narrow key/value persistence surface the engine writes through.
// Writes are fire-and-forget: a failing backend is the platform's problem, the
// engine's in-memory state stays authoritative either way.
type Store interface {
	// GetInt returns the stored value for key, or fallback if absent.
	GetInt(key string, fallback int) int

	// SetInt stores value under key.
	SetInt(key string, value int)

	// Delete removes key.
	Delete(key string)

	// Has reports whether key exists.
	Has(key string) bool
}

// MemStore is a map-backed Store for tests and storage-less runs.
type MemStore struct {
	values map[string]int
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{values: make(map[string]int)}
}

// GetInt returns the stored value for key, or fallback if absent.
func (m *MemStore) GetInt(key string, fallback int) int {
	if v, ok := m.values[key]; ok {
		return v
	}
	return fallback
}

// SetInt stores value under key.
func (m *MemStore) SetInt(key string, value int) {
	m.values[key] = value
}

// Delete removes key.
func (m *MemStore) Delete(key string) {
	delete(m.values, key)
}

// Has reports whether key exists.
func (m *MemStore) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}
