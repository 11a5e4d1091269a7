package store

import (
	"errors"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestAuthenticate_SeededUser(t *testing.T) {
	s := newTestStore(t)
	if err := s.Seed("pranav", "learn to code", []string{"AAPL", "MSFT"}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	user, err := s.Authenticate("pranav", "learn to code")
	if err != nil {
		t.Fatalf("expected successful login, got %v", err)
	}
	if user.ID == 0 || user.Username != "pranav" {
		t.Errorf("unexpected user: %+v", user)
	}

	if _, err := s.Authenticate("pranav", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, err := s.Authenticate("nobody", "learn to code"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}

	symbols, err := s.ListSymbols(user.ID)
	if err != nil {
		t.Fatalf("list symbols: %v", err)
	}
	if len(symbols) != 2 || symbols[0] != "AAPL" || symbols[1] != "MSFT" {
		t.Errorf("unexpected seed watchlist: %v", symbols)
	}
}

func TestSeed_IdempotentAcrossRestarts(t *testing.T) {
	s := newTestStore(t)
	for i := 0; i < 2; i++ {
		if err := s.Seed("pranav", "learn to code", []string{"AAPL"}); err != nil {
			t.Fatalf("seed #%d: %v", i+1, err)
		}
	}
	user, err := s.Authenticate("pranav", "learn to code")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	symbols, err := s.ListSymbols(user.ID)
	if err != nil {
		t.Fatalf("list symbols: %v", err)
	}
	if len(symbols) != 1 {
		t.Errorf("expected 1 symbol after repeated seed, got %v", symbols)
	}
}

func TestCreateUser_Duplicate(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.CreateUser("alice", "secret"); err != nil {
		t.Fatalf("create user: %v", err)
	}
	if _, err := s.CreateUser("alice", "other"); !errors.Is(err, ErrUserExists) {
		t.Errorf("expected ErrUserExists, got %v", err)
	}
}

func TestAddSymbol_DuplicateIsNoOp(t *testing.T) {
	s := newTestStore(t)
	user, err := s.CreateUser("bob", "secret")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	if err := s.AddSymbol(user.ID, "TSLA"); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if err := s.AddSymbol(user.ID, "TSLA"); !errors.Is(err, ErrSymbolExists) {
		t.Errorf("expected ErrSymbolExists on duplicate add, got %v", err)
	}

	symbols, err := s.ListSymbols(user.ID)
	if err != nil {
		t.Fatalf("list symbols: %v", err)
	}
	if len(symbols) != 1 {
		t.Errorf("duplicate add should leave exactly one entry, got %v", symbols)
	}
}

func TestRemoveSymbol(t *testing.T) {
	s := newTestStore(t)
	user, err := s.CreateUser("carol", "secret")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if err := s.AddSymbol(user.ID, "NVDA"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := s.RemoveSymbol(user.ID, "NVDA"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	// Removing again is a no-op.
	if err := s.RemoveSymbol(user.ID, "NVDA"); err != nil {
		t.Fatalf("second remove: %v", err)
	}
	symbols, err := s.ListSymbols(user.ID)
	if err != nil {
		t.Fatalf("list symbols: %v", err)
	}
	if len(symbols) != 0 {
		t.Errorf("expected empty watchlist, got %v", symbols)
	}
}

func TestWatchlists_IsolatedPerUser(t *testing.T) {
	s := newTestStore(t)
	u1, err := s.CreateUser("dave", "secret")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	u2, err := s.CreateUser("erin", "secret")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	if err := s.AddSymbol(u1.ID, "AMD"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := s.AddSymbol(u2.ID, "AMD"); err != nil {
		t.Fatalf("same symbol for another user should succeed: %v", err)
	}
	if err := s.RemoveSymbol(u1.ID, "AMD"); err != nil {
		t.Fatalf("remove: %v", err)
	}

	symbols, err := s.ListSymbols(u2.ID)
	if err != nil {
		t.Fatalf("list symbols: %v", err)
	}
	if len(symbols) != 1 {
		t.Errorf("removing from one user must not affect another: %v", symbols)
	}
}
