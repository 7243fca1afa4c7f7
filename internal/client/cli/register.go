package cli

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/authkeeper/internal/common"
)

func (a *App) Register(ctx context.Context) error {

	userName, err := GetSimpleText(a.reader, "Enter user name", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	defer common.WipeByteArray(password)

	reqCtx, cancel := a.requestCtx(ctx)
	defer cancel()

	if err := a.authService.Register(reqCtx, userName, email, password); err != nil {
		log.Printf("Registration unsuccessful: %s", err.Error())
		return err
	}

	log.Printf("Registration successful, you can now log in")
	return nil

}
