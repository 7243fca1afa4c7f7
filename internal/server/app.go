// Package server initializes and runs the authentication server.
// It wires the credential store, the password hasher and the token issuer
// together, applies schema migrations and handles graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/dmitrijs2005/authkeeper/internal/logging"
	"github.com/dmitrijs2005/authkeeper/internal/server/auth"
	"github.com/dmitrijs2005/authkeeper/internal/server/config"
	"github.com/dmitrijs2005/authkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/authkeeper/internal/server/services"

	gs "github.com/dmitrijs2005/authkeeper/internal/server/grpc"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	db          *sql.DB
	repoManager repomanager.RepositoryManager
	userService *services.UserService
}

func NewApp(c *config.Config) (*App, error) {

	slogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slogger)

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	manager := repomanager.NewPostgresRepositoryManager()

	params := auth.DefaultArgon2Params()
	params.Iterations = c.Argon2TimeCost
	hasher := auth.NewArgon2Hasher(params)

	issuer := auth.NewTokenIssuer([]byte(c.SecretKey), c.AccessTokenValidityDuration)

	us := services.NewUserService(db, manager, hasher, issuer)

	return &App{config: c, logger: logger, db: db, repoManager: manager, userService: us}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s, err := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.userService)

	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	} else {

		if err := s.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	if err := app.repoManager.RunMigrations(ctx, app.db); err != nil {
		app.logger.Error(ctx, fmt.Sprintf("migration error: %v", err))
		return
	}

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, fmt.Sprintf("db close error: %v", err))
	}

}
