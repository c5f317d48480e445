package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/tabsense/internal/client/api"
	"github.com/dmitrijs2005/tabsense/internal/client/store"
	"github.com/dmitrijs2005/tabsense/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// restoreSession loads a stored login and verifies it against the server.
// A valid session skips the login screen; a stale one is discarded.
func (a *App) restoreSession(ctx context.Context) {
	sess, err := a.session.Load(ctx)
	if err != nil || sess == nil {
		return
	}

	a.api.SetToken(sess.Token)
	user, err := a.api.Me(ctx)
	if err != nil {
		a.api.SetToken("")
		_ = a.session.Clear(ctx)
		return
	}

	a.user = user
	fmt.Fprintf(a.out, "Welcome back, %s!\n", user.Username)
	_ = a.transition(StateUpload)
}

// loggedOutScreen is the entry screen. Commands: login, register, exit.
func (a *App) loggedOutScreen(ctx context.Context) error {
	cmd, err := getSimpleText(a.reader, "[TabSense] Commands: login, register, exit", a.out)
	if err != nil {
		return err
	}

	switch cmd {
	case "login":
		return a.authenticate(ctx, a.api.Login)
	case "register":
		return a.authenticate(ctx, a.api.Register)
	case "exit", "quit":
		a.quit = true
		return nil
	case "":
		return nil
	default:
		fmt.Fprintln(a.out, "Unknown command:", cmd)
		return nil
	}
}

// authenticate prompts for credentials and runs fn (login or register).
// On success the session is persisted and the wizard moves to the upload
// screen.
func (a *App) authenticate(ctx context.Context, fn func(context.Context, string, string) (*api.AuthResult, error)) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	res, err := fn(ctx, userName, string(password))
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}

	a.user = &res.User
	if err := a.session.Save(ctx, &store.Session{
		Token:    res.Token,
		UserID:   res.User.ID,
		Username: res.User.Username,
	}); err != nil {
		fmt.Fprintln(a.out, "Warning: could not persist session:", err.Error())
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", res.User.Username)
	return a.transition(StateUpload)
}

// logout clears the stored session and all working state.
func (a *App) logout(ctx context.Context) error {
	if err := a.session.Clear(ctx); err != nil {
		fmt.Fprintln(a.out, "Warning: could not clear session:", err.Error())
	}
	a.api.SetToken("")
	a.user = nil
	a.clearWork()
	return a.transition(StateLoggedOut)
}
