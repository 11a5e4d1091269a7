package model

// User is an authenticated watchlist owner.
type User struct {
	ID       int64
	Username string
}
