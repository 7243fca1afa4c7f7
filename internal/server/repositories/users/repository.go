package users

import (
	"context"

	"github.com/dmitrijs2005/authkeeper/internal/server/models"
)

// Repository is the credential store boundary. Absent rows are reported as
// common.ErrorNotFound; uniqueness violations on Create come back as
// common.ErrDuplicateUsername / common.ErrDuplicateEmail.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}
