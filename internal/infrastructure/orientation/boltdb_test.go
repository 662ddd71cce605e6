package orientation

import (
	"path/filepath"
	"testing"

	"github.com/immerseindia/backend/domain"
)

func openStore(t *testing.T, path string) *Store {
	t.Helper()
	store, err := Open(path)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSetGet(t *testing.T) {
	store := openStore(t, filepath.Join(t.TempDir(), "orientations.db"))

	if _, ok := store.Get("img-1"); ok {
		t.Fatal("unclassified image should not resolve")
	}

	if err := store.Set("img-1", domain.OrientationLandscape); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	got, ok := store.Get("img-1")
	if !ok || got != domain.OrientationLandscape {
		t.Fatalf("Get = %q, %v", got, ok)
	}
}

func TestClassificationSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orientations.db")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	if err := store.Set("img-1", domain.OrientationPortrait); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	reopened := openStore(t, path)
	got, ok := reopened.Get("img-1")
	if !ok || got != domain.OrientationPortrait {
		t.Fatalf("classification lost across reopen: %q, %v", got, ok)
	}
}

func TestDeleteAndSize(t *testing.T) {
	store := openStore(t, filepath.Join(t.TempDir(), "orientations.db"))

	if err := store.Set("img-1", domain.OrientationLandscape); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := store.Set("img-2", domain.OrientationPortrait); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if n, err := store.Size(); err != nil || n != 2 {
		t.Fatalf("Size = %d, %v", n, err)
	}

	if err := store.Delete("img-1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, ok := store.Get("img-1"); ok {
		t.Fatal("deleted classification should not resolve")
	}
	if n, _ := store.Size(); n != 1 {
		t.Fatalf("Size after delete = %d", n)
	}
}
