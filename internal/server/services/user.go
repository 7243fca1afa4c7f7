// Package services contains server-side business logic. This file implements
// UserService, which handles registration (with username/email uniqueness),
// login against stored password hashes, and access-token verification.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	"github.com/dmitrijs2005/authkeeper/internal/dbx"
	"github.com/dmitrijs2005/authkeeper/internal/server/auth"
	"github.com/dmitrijs2005/authkeeper/internal/server/models"
	"github.com/dmitrijs2005/authkeeper/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// PasswordHasher is what UserService needs from the hashing component.
// *auth.Argon2Hasher satisfies it.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, encoded string) (bool, error)
}

// TokenIssuer is what UserService needs from the token component.
// *auth.TokenIssuer satisfies it.
type TokenIssuer interface {
	Issue(userID, username string) (string, error)
	Verify(token string) (*auth.Claims, error)
}

// AuthResult bundles a signed access token with the sanitized principal it
// was issued for.
type AuthResult struct {
	AccessToken string
	Principal   *models.Principal
}

// UserService provides the authentication operations:
// - Register: uniqueness checks, hash creation, persist
// - Login: credential verification and token issuance
// - VerifyToken: claims extraction for protected requests
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      PasswordHasher
	issuer      TokenIssuer
}

// NewUserService constructs a UserService from its explicit collaborators.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, hasher PasswordHasher, issuer TokenIssuer) *UserService {
	return &UserService{
		db:          db,
		repomanager: m,
		hasher:      hasher,
		issuer:      issuer,
	}
}

// dummyPasswordHash is verified against when the username does not exist,
// so a login attempt for a missing user costs the same as a wrong password.
// It can never match any input.
const dummyPasswordHash = "$argon2id$v=19$m=65536,t=3,p=2$AAAAAAAAAAAAAAAAAAAAAA$AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"

// Register creates a new user. Username and email must be unique; the
// username check runs first, so no hash is computed for a rejected attempt.
// The checks and the insert share one transaction, and a unique violation
// raised by the insert itself (a concurrent registration won the race) is
// reported as the same Duplicate error as a failed check.
func (s *UserService) Register(ctx context.Context, username, email, password string) (*models.Principal, error) {

	var user *models.User

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		if _, err := repo.GetByUsername(ctx, username); err == nil {
			return common.ErrDuplicateUsername
		} else if !errors.Is(err, common.ErrorNotFound) {
			return fmt.Errorf("error checking username: %w", err)
		}

		if _, err := repo.GetByEmail(ctx, email); err == nil {
			return common.ErrDuplicateEmail
		} else if !errors.Is(err, common.ErrorNotFound) {
			return fmt.Errorf("error checking email: %w", err)
		}

		hash, err := s.hasher.Hash(password)
		if err != nil {
			return fmt.Errorf("error hashing password: %w", err)
		}

		u, err := repo.Create(ctx, &models.User{
			ID:           uuid.NewString(),
			UserName:     username,
			Email:        email,
			PasswordHash: hash,
		})
		if err != nil {
			return err
		}

		user = u
		return nil
	})
	if err != nil {
		return nil, err
	}

	return user.Principal(), nil
}

// Login authenticates the username/password pair and issues an access token.
// An unknown username and a wrong password both fail with
// common.ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, username, password string) (*AuthResult, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// Burn the same hashing cost as a real verification.
			_, _ = s.hasher.Verify(password, dummyPasswordHash)
			return nil, common.ErrInvalidCredentials
		}
		return nil, common.ErrorInternal
	}

	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		// Stored hash is corrupt; not a credential problem.
		return nil, common.ErrorInternal
	}
	if !ok {
		return nil, common.ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(user.ID, user.UserName)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return &AuthResult{AccessToken: token, Principal: user.Principal()}, nil
}

// VerifyToken validates an access token and returns its claims.
func (s *UserService) VerifyToken(token string) (*auth.Claims, error) {
	return s.issuer.Verify(token)
}
