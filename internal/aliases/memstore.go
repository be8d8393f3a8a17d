package aliases

// MemStore implements Store in memory for tests. Load returns a copy, so
// callers cannot modify the stored mapping without calling Save.
type MemStore struct {
	Data    Mapping
	SaveErr error
	Saves   int
}

// NewMemStore creates a MemStore seeded with a copy of m.
func NewMemStore(m Mapping) *MemStore {
	if m == nil {
		m = Mapping{}
	}
	return &MemStore{Data: m.Clone()}
}

// Load returns a copy of the stored mapping.
func (s *MemStore) Load() Mapping {
	return s.Data.Clone()
}

// Save replaces the stored mapping unless SaveErr is set.
func (s *MemStore) Save(m Mapping) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.Data = m.Clone()
	s.Saves++
	return nil
}

// Path returns a placeholder location.
func (s *MemStore) Path() string {
	return "memory"
}

var (
	_ Store = (*FileStore)(nil)
	_ Store = (*MemStore)(nil)
)
