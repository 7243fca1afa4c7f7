package service

import "context"

// Identity describes the account the server associates with the
// current access token.
type Identity struct {
	UserID   string
	Username string
}

type Service interface {
	Close() error
	Register(ctx context.Context, username string, email string, password []byte) error
	Login(ctx context.Context, username string, password []byte) error
	Profile(ctx context.Context) (*Identity, error)
	Ping(ctx context.Context) error
}
