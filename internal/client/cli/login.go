package cli

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/authkeeper/internal/common"
)

func (a *App) Login(ctx context.Context) error {

	userName, err := GetSimpleText(a.reader, "Enter user name", os.Stdout)
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

	if err := a.authService.Login(reqCtx, userName, password); err != nil {
		log.Printf("Login unsuccessful: %s", err.Error())
		return err
	}

	a.userName = userName
	log.Printf("Login successful")
	return nil

}
