package cli

import (
	"context"
	"log"
)

func (a *App) Ping(ctx context.Context) error {

	reqCtx, cancel := a.requestCtx(ctx)
	defer cancel()

	if err := a.authService.Ping(reqCtx); err != nil {
		log.Printf("Server unavailable: %s", err.Error())
		return err
	}

	log.Printf("Server is up")
	return nil

}
