package session

import (
	"errors"

	"CartDesk/internal/directory"
)

const DefaultMaxLogins = 3

var (
	ErrMaxLogins = errors.New("max logins reached")
	ErrNotFound  = errors.New("session not found")
)

type Session struct {
	Token string
	User  directory.User
}

type Store interface {
	Create(u directory.User) (Session, error)
	Get(token string) (Session, bool)
	Delete(token string) bool
	Count() int
}
