package emotion

// Store exposes catalog retrieval for HTTP handlers.
type Store interface {
	List() []Tag
	FindByValue(value string) (Tag, bool)
}

// MemoryStore implements Store with an in-memory slice; the catalog is
// fixed after definition.
type MemoryStore struct {
	items []Tag
}

// NewMemoryStore returns a MemoryStore preloaded with the supplied tags.
func NewMemoryStore(items []Tag) *MemoryStore {
	return &MemoryStore{items: append([]Tag(nil), items...)}
}

// List returns the catalog in definition order.
func (s *MemoryStore) List() []Tag {
	return append([]Tag(nil), s.items...)
}

// FindByValue looks up a tag by its stable identifier.
func (s *MemoryStore) FindByValue(value string) (Tag, bool) {
	for _, item := range s.items {
		if item.Value == value {
			return item, true
		}
	}
	return Tag{}, false
}
