package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	"github.com/dmitrijs2005/authkeeper/internal/dbx"
	"github.com/dmitrijs2005/authkeeper/internal/server/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new user row. The username/email UNIQUE constraints are
// the authoritative uniqueness check: a violation raised here is translated
// into the matching Duplicate error so concurrent registrations that both
// passed the existence checks still resolve to one winner.
func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {

	query :=
		`INSERT INTO users (id, username, email, password_hash)
         VALUES ($1, $2, $3, $4)
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		user.ID, user.UserName, user.Email, user.PasswordHash).Scan(&user.CreatedAt)

	if err != nil {
		if dup := duplicateError(err); dup != nil {
			return nil, dup
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query :=
		`SELECT id, username, email, password_hash, created_at FROM users
		 WHERE username = $1
		 `

	return r.getOne(ctx, query, username)
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query :=
		`SELECT id, username, email, password_hash, created_at FROM users
		 WHERE email = $1
		 `

	return r.getOne(ctx, query, email)
}

func (r *PostgresRepository) getOne(ctx context.Context, query string, arg any) (*models.User, error) {
	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID, &user.UserName, &user.Email, &user.PasswordHash, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

// duplicateError maps a Postgres unique_violation to the sentinel for the
// constraint that fired, or nil when err is something else.
func duplicateError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgerrcode.UniqueViolation {
		return nil
	}

	switch pgErr.ConstraintName {
	case "users_username_key":
		return common.ErrDuplicateUsername
	case "users_email_key":
		return common.ErrDuplicateEmail
	default:
		return common.ErrDuplicateUsername
	}
}
