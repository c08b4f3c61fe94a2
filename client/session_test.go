package client_test

import (
	"testing"

	"github.com/sayhighz/nexark-platform/client"
)

func TestFileSessionStore(t *testing.T) {
	store, err := client.NewFileSessionStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileSessionStore() error = %v", err)
	}

	if got := store.Token(); got != "" {
		t.Fatalf("Token() = %q, want empty", got)
	}

	if err := store.SetToken("jwt-123"); err != nil {
		t.Fatalf("SetToken() error = %v", err)
	}
	if got := store.Token(); got != "jwt-123" {
		t.Fatalf("Token() = %q, want jwt-123", got)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if got := store.Token(); got != "" {
		t.Fatalf("Token() after Clear = %q, want empty", got)
	}

	// Clearing an already-empty store must not fail.
	if err := store.Clear(); err != nil {
		t.Fatalf("second Clear() error = %v", err)
	}
}
