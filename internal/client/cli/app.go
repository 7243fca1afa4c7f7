package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/dmitrijs2005/authkeeper/internal/client/config"
	"github.com/dmitrijs2005/authkeeper/internal/client/service"
)

type App struct {
	config      *config.Config
	authService service.Service
	userName    string
	reader      *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {

	apiClient, err := service.NewAuthKeeperClientService(c.ServerEndpointAddr)
	if err != nil {
		return nil, err
	}

	if err := apiClient.InitGRPCClient(); err != nil {
		return nil, err
	}

	return &App{config: c, authService: apiClient, reader: bufio.NewReader(os.Stdin)}, nil
}

func (a *App) isLoggedIn() bool {
	return a.userName != ""
}

// requestCtx derives a per-call context honouring the configured timeout.
func (a *App) requestCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}

func (a *App) Run(ctx context.Context) {
	defer a.authService.Close()
	a.Root(ctx)
}
