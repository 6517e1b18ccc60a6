package session

import (
	"fmt"

	"github.com/yujin6121/maeum/backend/internal/model/counseling"
	"github.com/yujin6121/maeum/backend/internal/storage"
)

// 진행 중인 상담 라운드의 각 필드는 서로 독립적인 키로 보관된다.
const (
	draftEmotionsKey  = "currentEmotions"
	draftIntensityKey = "currentIntensity"
	draftConcernKey   = "currentConcern"
	lastResponseKey   = "lastResponse"
)

// defaultIntensity is returned when no intensity has been saved yet.
const defaultIntensity = 3

// DraftStore persists the in-progress counseling round so a returning
// user can resume where they left off. Each field is independently
// readable and writable.
type DraftStore struct {
	storage storage.Store
}

// NewDraftStore wires the draft store to a storage backend.
func NewDraftStore(st storage.Store) *DraftStore {
	return &DraftStore{storage: st}
}

// SetEmotions records the current emotion selection.
func (d *DraftStore) SetEmotions(values []string) error {
	return d.set(draftEmotionsKey, values)
}

// Emotions returns the saved selection, empty when unset or corrupt.
func (d *DraftStore) Emotions() []string {
	var values []string
	if ok, _ := d.storage.Get(draftEmotionsKey, &values); !ok {
		return []string{}
	}
	return values
}

// SetIntensity records the current intensity (1-5 scale).
func (d *DraftStore) SetIntensity(intensity int) error {
	return d.set(draftIntensityKey, intensity)
}

// Intensity returns the saved intensity, defaulting to the scale midpoint.
func (d *DraftStore) Intensity() int {
	var intensity int
	if ok, _ := d.storage.Get(draftIntensityKey, &intensity); !ok {
		return defaultIntensity
	}
	return intensity
}

// SetConcern records the free-text concern.
func (d *DraftStore) SetConcern(concern string) error {
	return d.set(draftConcernKey, concern)
}

// Concern returns the saved concern text, empty when unset.
func (d *DraftStore) Concern() string {
	var concern string
	if ok, _ := d.storage.Get(draftConcernKey, &concern); !ok {
		return ""
	}
	return concern
}

// SetLastResponse records the most recent AI response.
func (d *DraftStore) SetLastResponse(resp counseling.Response) error {
	return d.set(lastResponseKey, resp)
}

// LastResponse returns the most recent AI response, if any.
func (d *DraftStore) LastResponse() (counseling.Response, bool) {
	var resp counseling.Response
	ok, _ := d.storage.Get(lastResponseKey, &resp)
	return resp, ok
}

// Clear removes every draft field, typically after the round has been
// committed to the session store.
func (d *DraftStore) Clear() error {
	for _, key := range []string{draftEmotionsKey, draftIntensityKey, draftConcernKey, lastResponseKey} {
		if err := d.storage.Remove(key); err != nil {
			return fmt.Errorf("clear draft %s: %w", key, err)
		}
	}
	return nil
}

func (d *DraftStore) set(key string, v any) error {
	if err := d.storage.Set(key, v); err != nil {
		return fmt.Errorf("persist draft %s: %w", key, err)
	}
	return nil
}
