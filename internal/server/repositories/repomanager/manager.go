package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/authkeeper/internal/dbx"
	"github.com/dmitrijs2005/authkeeper/internal/server/repositories/users"
)

// RepositoryManager hands out repositories bound to a concrete DB handle,
// which may be either the pool or an open transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
}
