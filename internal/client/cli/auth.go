package cli

import (
	"context"
	"fmt"

	"github.com/bookvite/storefront/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped in
// tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// SignIn prompts for credentials and authenticates. The password buffer is
// wiped before returning. Errors are shown inline, next to the form that
// triggered them, and also returned.
func (a *App) SignIn(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.SignIn(ctx, email, string(password)); err != nil {
		fmt.Fprintln(a.out, "Sign-in failed:", err.Error())
		return err
	}

	fmt.Fprintln(a.out, "Signed in as", email)
	return nil
}

// SignUp prompts for credentials and registers a new account. A successful
// registration leaves the user signed in.
func (a *App) SignUp(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out, "Choose a password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.SignUp(ctx, email, string(password)); err != nil {
		fmt.Fprintln(a.out, "Sign-up failed:", err.Error())
		return err
	}

	fmt.Fprintln(a.out, "Welcome,", email)
	return nil
}

// SignOut ends the session.
func (a *App) SignOut(ctx context.Context) error {
	if err := a.session.SignOut(ctx); err != nil {
		fmt.Fprintln(a.out, "Sign-out failed:", err.Error())
		return err
	}
	fmt.Fprintln(a.out, "Signed out.")
	return nil
}

// ChangePassword updates the password; on success the session is signed
// out and the user must sign in again with the new credential.
func (a *App) ChangePassword(ctx context.Context) error {
	if !a.guard() {
		return nil
	}

	oldPassword, err := getPassword(a.out, "Current password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(oldPassword)

	newPassword, err := getPassword(a.out, "New password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(newPassword)

	if err := a.session.ChangePassword(ctx, string(oldPassword), string(newPassword)); err != nil {
		fmt.Fprintln(a.out, "Password change failed:", err.Error())
		return err
	}

	fmt.Fprintln(a.out, "Password changed, please sign in again.")
	return nil
}

