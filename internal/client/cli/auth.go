package cli

import (
	"context"
	"os"

	"github.com/beautyease/beautyease/internal/shared"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for account details and creates a new account. The full
// name is checked locally before anything is sent; a blank name reports a
// validation error and leaves the user free to retry.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	fullName, err := getSimpleText(a.reader, "Enter full name", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(password)

	if err := a.session.SignUp(ctx, email, string(password), fullName); err != nil {
		printlnFn(err.Error())
		return err
	}

	printlnFn("Account created. Welcome,", fullName+"!")
	return nil
}

// Login prompts for credentials and signs in. Failures are shown inline so
// the user can retry.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(password)

	if err := a.session.SignIn(ctx, email, string(password)); err != nil {
		printlnFn(err.Error())
		return err
	}

	if p := a.session.Profile(); p != nil {
		printlnFn("Welcome,", p.FullName+"!")
	}
	return nil
}

// Logout signs out immediately. The session is cleared before any remote
// cleanup happens, so the prompt reflects the signed-out state right away.
func (a *App) Logout(ctx context.Context) error {
	a.session.SignOut(ctx)
	printlnFn("Signed out.")
	return nil
}
