package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/yujin6121/maeum/backend/internal/model/emotion"
	"github.com/yujin6121/maeum/backend/internal/model/resource"
)

type stubFetcher struct {
	useBackend bool
	tags       []emotion.Tag
	resources  []resource.CrisisResource
	err        error
}

func (s *stubFetcher) FetchEmotions(_ context.Context) ([]emotion.Tag, error) {
	return s.tags, s.err
}

func (s *stubFetcher) FetchCrisisResources(_ context.Context) ([]resource.CrisisResource, error) {
	return s.resources, s.err
}

func (s *stubFetcher) UseBackend() bool { return s.useBackend }

func setupRouter(fetcher Fetcher) *chi.Mux {
	r := chi.NewRouter()
	New(fetcher, emotion.NewMemoryStore(emotion.Seed()), resource.Seed()).RegisterRoutes(r)
	return r
}

func get(t *testing.T, r http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestEmotionsFromSeedWhenBackendDisabled(t *testing.T) {
	r := setupRouter(&stubFetcher{useBackend: false})

	resp := get(t, r, "/emotions")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var tags []emotion.Tag
	if err := json.Unmarshal(resp.Body.Bytes(), &tags); err != nil {
		t.Fatalf("decode tags: %v", err)
	}
	if len(tags) != len(emotion.Seed()) {
		t.Fatalf("expected seed catalog, got %d tags", len(tags))
	}
}

func TestEmotionsFromRemoteWhenEnabled(t *testing.T) {
	remote := []emotion.Tag{{Value: "calm", Name: "평온", Emoji: "😌"}}
	r := setupRouter(&stubFetcher{useBackend: true, tags: remote})

	resp := get(t, r, "/emotions")
	var tags []emotion.Tag
	json.Unmarshal(resp.Body.Bytes(), &tags)
	if len(tags) != 1 || tags[0].Value != "calm" {
		t.Fatalf("expected remote catalog, got %+v", tags)
	}
}

func TestEmotionsFallBackToSeedOnFetchError(t *testing.T) {
	r := setupRouter(&stubFetcher{useBackend: true, err: errors.New("boom")})

	resp := get(t, r, "/emotions")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var tags []emotion.Tag
	json.Unmarshal(resp.Body.Bytes(), &tags)
	if len(tags) != len(emotion.Seed()) {
		t.Fatalf("expected seed fallback, got %d tags", len(tags))
	}
}

func TestCrisisResourcesIncludeHotlines(t *testing.T) {
	r := setupRouter(&stubFetcher{useBackend: false})

	resp := get(t, r, "/crisis-resources")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var resources []resource.CrisisResource
	if err := json.Unmarshal(resp.Body.Bytes(), &resources); err != nil {
		t.Fatalf("decode resources: %v", err)
	}

	phones := make(map[string]bool)
	for _, res := range resources {
		phones[res.Phone] = true
	}
	if !phones["1388"] || !phones["1577-0199"] {
		t.Fatalf("expected fixed hotlines in %v", resources)
	}
}
