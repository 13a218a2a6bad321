package cli

import (
	"context"
	"fmt"
	"os"
)

// getSimpleText and getPassword are indirections used to facilitate
// testing. They point to the interactive input helpers and can be swapped
// in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// SignUp prompts for an email and password and registers a new account.
// Some deployments require email confirmation before the first sign-in, so
// a successful sign-up does not necessarily leave the session signed in.
func (a *App) SignUp(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.session.SignUp(ctx, email, string(password)); err != nil {
		fmt.Println("Sign up failed:", err)
		return err
	}

	if a.isSignedIn() {
		fmt.Println("Signed up and signed in.")
	} else {
		fmt.Println("Signed up. Check your email to confirm the account, then log in.")
	}
	return nil
}

// SignIn prompts for credentials and authenticates. On success the
// controllers pick up the new identity and start loading in the
// background.
func (a *App) SignIn(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.session.SignIn(ctx, email, string(password)); err != nil {
		fmt.Println("Login failed:", err)
		return err
	}

	fmt.Println("Signed in.")
	return nil
}

// SignOut clears the session; the controllers drop their collections in
// response.
func (a *App) SignOut(ctx context.Context) error {
	if err := a.session.SignOut(ctx); err != nil {
		return err
	}
	fmt.Println("Signed out.")
	return nil
}
