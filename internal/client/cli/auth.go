package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"phonestock/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates through the session
// manager. A failed attempt leaves the session anonymous and prints the
// server's message; the user re-runs the command to try again.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.Login(ctx, email, string(password)); err != nil {
		var ve *common.ValidationError
		switch {
		case errors.As(err, &ve):
			fmt.Println(ve.Message)
		case errors.Is(err, common.ErrBusy):
			fmt.Println("A sign-in is already in progress.")
		default:
			fmt.Printf("Login failed: %s\n", err.Error())
		}
		return err
	}

	fmt.Printf("Logged in as %s\n", a.session.User().Email)
	return nil
}

// Register prompts for the new account fields, including password
// confirmation, and signs the user in on success. Validation problems are
// reported before any network call happens.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	role, err := getSimpleText(a.reader, "Enter role (user/admin, default user)", os.Stdout)
	if err != nil {
		return err
	}
	if role == "" {
		role = "user"
	}

	err = a.session.Register(ctx, name, email, string(password), string(confirm), role)
	if err != nil {
		var ve *common.ValidationError
		if errors.As(err, &ve) {
			fmt.Println(ve.Message)
		} else {
			fmt.Printf("Registration failed: %s\n", err.Error())
		}
		return err
	}

	fmt.Printf("Welcome, %s!\n", a.session.User().Email)
	return nil
}

// Logout signs out and always clears the local session, even when the
// server cannot be reached.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	fmt.Println("Logged out.")
	return nil
}

// Whoami prints the current user.
func (a *App) Whoami(ctx context.Context) error {
	if err := a.requireAuth(); err != nil {
		return err
	}
	u := a.session.User()
	fmt.Printf("%s (%s), role %s\n", u.Email, u.ID, u.Role)
	return nil
}
