package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/antonvlasov/voicenotes/internal/account"
	"github.com/antonvlasov/voicenotes/internal/common"
)

func (a *App) Register(ctx context.Context) error {
	userName, err := GetSimpleText(a.reader, "Enter user name", a.out)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	confirm, err := GetPassword("Confirm password", a.out)
	if err != nil {
		return err
	}

	user, err := a.accounts.Register(ctx, userName, email, password, confirm)
	if err != nil {
		var verr account.ValidationError
		if errors.As(err, &verr) {
			for field, msg := range verr {
				fmt.Fprintf(a.out, "%s: %s\n", field, msg)
			}
			return err
		}
		a.log.Error(ctx, "registration failed", "error", err)
		fmt.Fprintln(a.out, "Registration failed.")
		return err
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", user.UserName)
	return nil
}

func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword("Enter password", a.out)
	if err != nil {
		return err
	}

	user, err := a.accounts.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, common.ErrCredentialMismatch) {
			fmt.Fprintln(a.out, "Invalid email or password.")
			return err
		}
		var verr account.ValidationError
		if errors.As(err, &verr) {
			for field, msg := range verr {
				fmt.Fprintf(a.out, "%s: %s\n", field, msg)
			}
			return err
		}
		a.log.Error(ctx, "login failed", "error", err)
		fmt.Fprintln(a.out, "An error occurred while trying to login.")
		return err
	}

	fmt.Fprintf(a.out, "Welcome back, %s!\n", user.UserName)
	a.boot.Bootstrap(ctx)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}
	if err := a.accounts.Logout(ctx); err != nil {
		a.log.Error(ctx, "logout failed", "error", err)
		fmt.Fprintln(a.out, "Failed to logout.")
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

func (a *App) Profile(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}
	user := a.accounts.CurrentUser()
	fmt.Fprintf(a.out, "User name: %s\nEmail: %s\n", user.UserName, user.Email)
	return nil
}
