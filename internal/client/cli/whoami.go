package cli

import (
	"context"
	"log"
)

// Whoami asks the server which account the current access token belongs to.
func (a *App) Whoami(ctx context.Context) error {

	reqCtx, cancel := a.requestCtx(ctx)
	defer cancel()

	identity, err := a.authService.Profile(reqCtx)
	if err != nil {
		log.Printf("Profile request unsuccessful: %s", err.Error())
		return err
	}

	log.Printf("Logged in as %s (id %s)", identity.Username, identity.UserID)
	return nil

}
