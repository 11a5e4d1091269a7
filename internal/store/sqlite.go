package store

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"sync"

	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"

	"VolumeWatch/internal/model"
)

var (
	// ErrInvalidCredentials is returned for both unknown usernames and
	// wrong passwords, so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrUserExists is returned when registering a taken username.
	ErrUserExists = errors.New("username already exists")
	// ErrSymbolExists is returned when a symbol is already on the
	// owner's watchlist; the add is a no-op.
	ErrSymbolExists = errors.New("symbol already exists")
)

// Store persists users and their watchlists.
type Store interface {
	Authenticate(username, password string) (*model.User, error)
	CreateUser(username, password string) (*model.User, error)
	ListSymbols(userID int64) ([]string, error)
	AddSymbol(userID int64, symbol string) error
	RemoveSymbol(userID int64, symbol string) error
	Close() error
}

// SQLiteStore implements Store on a SQLite database.
type SQLiteStore struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteStore opens (or creates) the SQLite database and runs migrations.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode for better concurrent read performance.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite store opened: %s", dbPath)
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			username      TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			created_at    INTEGER NOT NULL DEFAULT (unixepoch())
		)`,
		`CREATE TABLE IF NOT EXISTS watchlists (
			user_id    INTEGER NOT NULL REFERENCES users(id),
			symbol     TEXT NOT NULL,
			created_at INTEGER NOT NULL DEFAULT (unixepoch()),
			UNIQUE(user_id, symbol)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_watchlists_user ON watchlists(user_id)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("exec %q: %w", stmt[:40], err)
		}
	}
	return nil
}

// Seed inserts a user with an initial watchlist if the username is free.
// Used to provision the default account on first start.
func (s *SQLiteStore) Seed(username, password string, symbols []string) error {
	user, err := s.CreateUser(username, password)
	if errors.Is(err, ErrUserExists) {
		return nil
	}
	if err != nil {
		return err
	}
	for _, symbol := range symbols {
		if err := s.AddSymbol(user.ID, symbol); err != nil && !errors.Is(err, ErrSymbolExists) {
			return err
		}
	}
	log.Printf("[INFO] seeded user %q with %d symbols", username, len(symbols))
	return nil
}

// Authenticate verifies a username/password pair. Unknown usernames and
// wrong passwords are indistinguishable to the caller.
func (s *SQLiteStore) Authenticate(username, password string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var user model.User
	var hash string
	err := s.db.QueryRow(`SELECT id, username, password_hash FROM users WHERE username = ?`, username).
		Scan(&user.ID, &user.Username, &hash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("query user: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// CreateUser registers a new user with a bcrypt-hashed password.
func (s *SQLiteStore) CreateUser(username, password string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var exists int
	err := s.db.QueryRow(`SELECT COUNT(1) FROM users WHERE username = ?`, username).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	}
	if exists > 0 {
		return nil, ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	res, err := s.db.Exec(`INSERT INTO users (username, password_hash) VALUES (?, ?)`, username, string(hash))
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return &model.User{ID: id, Username: username}, nil
}

// ListSymbols returns the owner's watchlist in insertion order.
func (s *SQLiteStore) ListSymbols(userID int64) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(`SELECT symbol FROM watchlists WHERE user_id = ? ORDER BY rowid`, userID)
	if err != nil {
		return nil, fmt.Errorf("query watchlist: %w", err)
	}
	defer rows.Close()

	var symbols []string
	for rows.Next() {
		var symbol string
		if err := rows.Scan(&symbol); err != nil {
			return nil, fmt.Errorf("scan symbol: %w", err)
		}
		symbols = append(symbols, symbol)
	}
	return symbols, rows.Err()
}

// AddSymbol registers a symbol on the owner's watchlist. Duplicates are a
// no-op reported via ErrSymbolExists.
func (s *SQLiteStore) AddSymbol(userID int64, symbol string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(`INSERT OR IGNORE INTO watchlists (user_id, symbol) VALUES (?, ?)`, userID, symbol)
	if err != nil {
		return fmt.Errorf("insert symbol: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return ErrSymbolExists
	}
	return nil
}

// RemoveSymbol drops a symbol from the owner's watchlist. Removing a
// symbol that is not present is a no-op.
func (s *SQLiteStore) RemoveSymbol(userID int64, symbol string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec(`DELETE FROM watchlists WHERE user_id = ? AND symbol = ?`, userID, symbol); err != nil {
		return fmt.Errorf("delete symbol: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	log.Println("[INFO] closing sqlite store")
	return s.db.Close()
}
