package store

import (
	"path/filepath"
	"reflect"
	"testing"
)

// TestSaveLoadRoundTrip verifies snapshot persistence.
func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "banks.json")
	original := New()
	original.Put("review", sampleBank(t))
	if err := original.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded := New()
	if err := loaded.Load(path); err != nil {
		t.Fatalf("load: %v", err)
	}
	want, _ := original.Get("review")
	got, ok := loaded.Get("review")
	if !ok || !reflect.DeepEqual(want, got) {
		t.Fatalf("snapshot mismatch: ok=%v\n%+v\n%+v", ok, want, got)
	}
}

// TestLoadMissingSnapshot verifies a missing file is not an error.
func TestLoadMissingSnapshot(t *testing.T) {
	s := New()
	if err := s.Load(filepath.Join(t.TempDir(), "absent.json")); err != nil {
		t.Fatalf("expected nil for missing snapshot, got %v", err)
	}
	if len(s.Names()) != 0 {
		t.Fatalf("expected empty store")
	}
}

// TestSaveRequiresPath verifies the empty-path guard.
func TestSaveRequiresPath(t *testing.T) {
	if err := New().Save(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
	if err := New().Load(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}
