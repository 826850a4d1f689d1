package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/daybookapp/daybook/internal/client/repositories/session"
	"github.com/daybookapp/daybook/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts the user for a username and password and attempts to
// create a new account.
//
// On success it prints "Success!" and returns nil. The password byte slice
// is securely wiped before returning. Any I/O or service error is returned
// unchanged.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.client.Register(ctx, userName, string(password)); err != nil {
		log.Printf("Registration unsuccessfull: %s", err.Error())
		return err
	}

	fmt.Println("Success! You can now log in.")
	return nil
}

// Login prompts the user for credentials and tries to authenticate.
//
// On success the token pair and identity are persisted in the local session
// store, so the next start of the program resumes logged in, and the stored
// appearance settings are fetched and applied. The password is securely
// wiped before returning.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	info, err := a.client.Login(ctx, userName, string(password))
	if err != nil {
		log.Printf("Login unsuccessfull: %s", err.Error())
		return err
	}

	if err := a.saveSession(ctx, info.UserID, info.Username); err != nil {
		a.logger.Warn(ctx, "session save failed", "error", err)
	}

	a.userID = info.UserID
	a.userName = info.Username
	a.setMode(ModeOnline)
	log.Printf("Login successfull")

	a.loadSettings(ctx)
	return nil
}

// Logout revokes the refresh token on the server, clears the stored session
// and forgets the in-memory identity. A server error is logged but does not
// prevent the local logout.
func (a *App) Logout(ctx context.Context) error {
	if err := a.client.Logout(ctx); err != nil {
		log.Printf("Server logout failed: %s", err.Error())
	}

	if err := a.repos.Session.Clear(ctx); err != nil {
		return err
	}

	a.client.SetTokens("", "")
	a.userID = ""
	a.userName = ""
	return nil
}

func (a *App) saveSession(ctx context.Context, userID, userName string) error {
	if err := a.repos.Session.Set(ctx, session.KeyUserID, userID); err != nil {
		return err
	}
	return a.repos.Session.Set(ctx, session.KeyUsername, userName)
}

// loadSettings pulls the stored appearance settings and applies them. A
// failure leaves the built-in defaults active.
func (a *App) loadSettings(ctx context.Context) {
	stored, err := a.client.GetSettings(ctx)
	if err != nil {
		a.logger.Warn(ctx, "settings load failed", "error", err)
		return
	}
	a.personal.LoadUserSettings(*stored)
}
