package storage

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

type sample struct {
	Name  string   `json:"name"`
	Score int      `json:"score"`
	Tags  []string `json:"tags"`
}

func runStoreContract(t *testing.T, store Store) {
	t.Helper()

	var missing sample
	if ok, err := store.Get("missing", &missing); err != nil || ok {
		t.Fatalf("expected absent key, got ok=%v err=%v", ok, err)
	}

	want := sample{Name: "draft", Score: 4, Tags: []string{"a", "b"}}
	if err := store.Set("item", want); err != nil {
		t.Fatalf("Set err: %v", err)
	}

	var got sample
	if ok, err := store.Get("item", &got); err != nil || !ok {
		t.Fatalf("Get err=%v ok=%v", err, ok)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip mismatch: got %+v want %+v", got, want)
	}

	// Overwrite wins.
	want.Score = 5
	if err := store.Set("item", want); err != nil {
		t.Fatalf("Set err: %v", err)
	}
	if ok, _ := store.Get("item", &got); !ok || got.Score != 5 {
		t.Fatalf("expected overwritten value, got %+v", got)
	}

	if err := store.Remove("item"); err != nil {
		t.Fatalf("Remove err: %v", err)
	}
	if ok, _ := store.Get("item", &got); ok {
		t.Fatal("expected key removed")
	}

	// Removing a missing key is a no-op.
	if err := store.Remove("item"); err != nil {
		t.Fatalf("Remove of absent key err: %v", err)
	}
}

func TestMemoryStoreContract(t *testing.T) {
	runStoreContract(t, NewMemoryStore())
}

func TestFileStoreContract(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "data", "store.json"))
	if err != nil {
		t.Fatalf("NewFileStore err: %v", err)
	}
	runStoreContract(t, store)
}

func TestSQLiteStoreContract(t *testing.T) {
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "data", "store.db"))
	if err != nil {
		t.Fatalf("NewSQLiteStore err: %v", err)
	}
	defer store.Close()
	runStoreContract(t, store)
}

func TestMemoryStoreCorruptValueReadsAsAbsent(t *testing.T) {
	store := NewMemoryStore()
	store.SetRaw("item", []byte(`{broken`))

	var got sample
	if ok, err := store.Get("item", &got); err != nil || ok {
		t.Fatalf("expected corrupt value to read as absent, ok=%v err=%v", ok, err)
	}
}

func TestFileStoreCorruptDocumentReadsAsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	if err := os.WriteFile(path, []byte("not json at all"), 0o644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	store, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore err: %v", err)
	}

	var got sample
	if ok, _ := store.Get("anything", &got); ok {
		t.Fatal("expected corrupt document to read as empty")
	}

	// Writing after corruption starts a fresh document.
	if err := store.Set("item", sample{Name: "fresh"}); err != nil {
		t.Fatalf("Set err: %v", err)
	}
	if ok, _ := store.Get("item", &got); !ok || got.Name != "fresh" {
		t.Fatalf("expected fresh value, got %+v ok=%v", got, ok)
	}
}

func TestFileStoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	first, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore err: %v", err)
	}
	if err := first.Set("item", sample{Name: "kept"}); err != nil {
		t.Fatalf("Set err: %v", err)
	}

	second, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore err: %v", err)
	}
	var got sample
	if ok, _ := second.Get("item", &got); !ok || got.Name != "kept" {
		t.Fatalf("expected value after reopen, got %+v ok=%v", got, ok)
	}
}
