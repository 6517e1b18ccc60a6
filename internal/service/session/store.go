package session

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/yujin6121/maeum/backend/internal/model/counseling"
	"github.com/yujin6121/maeum/backend/internal/storage"
)

// historyKey 는 전체 상담 기록 목록을 하나의 값으로 보관하는 키.
const historyKey = "counselingSessions"

// Store persists completed counseling exchanges. The whole list is read,
// modified, and rewritten as one unit on every mutation; there is no size
// cap and no cross-process coordination (known limitations).
type Store struct {
	storage storage.Store
}

// NewStore wires the session store to a storage backend.
func NewStore(st storage.Store) *Store {
	return &Store{storage: st}
}

// Append adds the exchange to the end of the persisted list, assigning an
// id and timestamp when unset, and persists immediately.
func (s *Store) Append(exchange counseling.Exchange) (counseling.Exchange, error) {
	if exchange.ID == "" {
		exchange.ID = uuid.NewString()
	}
	if exchange.Timestamp.IsZero() {
		exchange.Timestamp = time.Now().UTC()
	}

	exchanges := s.loadAll()
	exchanges = append(exchanges, exchange)
	if err := s.storage.Set(historyKey, exchanges); err != nil {
		return counseling.Exchange{}, fmt.Errorf("persist session history: %w", err)
	}
	return exchange, nil
}

// List returns all persisted exchanges, most recent first. The stored
// order is left untouched.
func (s *Store) List() []counseling.Exchange {
	exchanges := s.loadAll()
	sorted := append([]counseling.Exchange(nil), exchanges...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.After(sorted[j].Timestamp)
	})
	return sorted
}

// Remove deletes the exchange with the given id; removing an unknown id
// leaves the list unchanged.
func (s *Store) Remove(id string) error {
	exchanges := s.loadAll()
	kept := exchanges[:0]
	for _, exchange := range exchanges {
		if exchange.ID != id {
			kept = append(kept, exchange)
		}
	}
	if len(kept) == len(exchanges) {
		return nil
	}
	if err := s.storage.Set(historyKey, kept); err != nil {
		return fmt.Errorf("persist session history: %w", err)
	}
	return nil
}

// Clear deletes all exchanges and persists the empty state.
func (s *Store) Clear() error {
	if err := s.storage.Set(historyKey, []counseling.Exchange{}); err != nil {
		return fmt.Errorf("persist session history: %w", err)
	}
	return nil
}

func (s *Store) loadAll() []counseling.Exchange {
	var exchanges []counseling.Exchange
	// Missing or corrupt history reads as empty.
	if _, err := s.storage.Get(historyKey, &exchanges); err != nil {
		return nil
	}
	return exchanges
}
