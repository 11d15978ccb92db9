package credentials

import (
	"path/filepath"
	"testing"
)

func TestStoreRoundTrip(t *testing.T) {
	store := NewStoreAt(filepath.Join(t.TempDir(), "nested", "token"))

	if _, ok := store.Get(); ok {
		t.Fatal("expected no token before Set")
	}

	if err := store.Set("  tok123\n"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	token, ok := store.Get()
	if !ok || token != "tok123" {
		t.Fatalf("unexpected token: %q, ok=%v", token, ok)
	}

	// Set overwrites any prior value.
	if err := store.Set("tok456"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if token, _ := store.Get(); token != "tok456" {
		t.Fatalf("unexpected token after overwrite: %q", token)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, ok := store.Get(); ok {
		t.Fatal("expected no token after Clear")
	}

	// Clear is idempotent.
	if err := store.Clear(); err != nil {
		t.Fatalf("expected idempotent clear, got %v", err)
	}
}

func TestStoreIgnoresBlankToken(t *testing.T) {
	store := NewStoreAt(filepath.Join(t.TempDir(), "token"))

	if err := store.Set("   "); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if _, ok := store.Get(); ok {
		t.Fatal("a blank token must read as absent")
	}
}
