package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/satconsole/internal/client/models"
	"github.com/dmitrijs2005/satconsole/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login reads an auth token without echo, installs it and fetches the
// current user. If the server rejects the token the console stays signed out.
func (a *App) Login(ctx context.Context) error {
	token, err := getPassword(a.out, "Enter auth token")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(token)

	a.apiClient.SetToken(string(token))
	a.signedIn = true

	return a.fetchProfile(ctx)
}

// WhoAmI prints the profile currently held in memory.
func (a *App) WhoAmI(ctx context.Context) error {
	u := a.usersService.User()
	if u.IsEmpty() {
		fmt.Fprintln(a.out, "No profile loaded, try 'refresh'")
		return nil
	}

	fmt.Fprintf(a.out, "Full name:  %s\n", u.FullName)
	fmt.Fprintf(a.out, "Short name: %s\n", u.ShortName)
	fmt.Fprintf(a.out, "Email:      %s\n", u.Email)
	return nil
}

// Refresh fetches the current user from the server.
func (a *App) Refresh(ctx context.Context) error {
	resp := a.usersService.GetUser(ctx)
	if !resp.IsSuccess {
		return a.reportFailure(resp.ErrorMessage, resp.Error())
	}

	name := a.usersService.UserName()
	if name == "" {
		name = a.usersService.User().Email
	}
	fmt.Fprintf(a.out, "Hello, %s!\n", name)
	return nil
}

// Update prompts for each profile field, keeping the current value when the
// input is empty, and submits the result.
func (a *App) Update(ctx context.Context) error {
	info := models.UpdatedUserFrom(a.usersService.User())

	var err error
	if info.FullName, err = GetTextWithDefault(a.reader, "Full name", info.FullName, a.out); err != nil {
		return err
	}
	if info.ShortName, err = GetTextWithDefault(a.reader, "Short name", info.ShortName, a.out); err != nil {
		return err
	}
	if info.Email, err = GetTextWithDefault(a.reader, "Email", info.Email, a.out); err != nil {
		return err
	}

	resp := a.usersService.UpdateAccount(ctx, info)
	if !resp.IsSuccess {
		return a.reportFailure(resp.ErrorMessage, resp.Error())
	}

	fmt.Fprintln(a.out, "Profile updated")
	return nil
}

// Passwd prompts for the current and the new password and changes it.
// Both secrets are wiped before returning.
func (a *App) Passwd(ctx context.Context) error {
	oldPassword, err := getPassword(a.out, "Enter current password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(oldPassword)

	newPassword, err := getPassword(a.out, "Enter new password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(newPassword)

	resp := a.usersService.ChangePassword(ctx, oldPassword, newPassword)
	if !resp.IsSuccess {
		return a.reportFailure(resp.ErrorMessage, resp.Error())
	}

	fmt.Fprintln(a.out, "Password changed")
	return nil
}

// Delete asks for the password and deletes the account. On success the
// profile is cleared and the console signs out.
func (a *App) Delete(ctx context.Context) error {
	password, err := getPassword(a.out, "Enter password to delete the account")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	resp := a.usersService.DeleteAccount(ctx, password)
	if !resp.IsSuccess {
		return a.reportFailure(resp.ErrorMessage, resp.Error())
	}

	a.signOut()
	fmt.Fprintln(a.out, "Account deleted")
	return nil
}

// Logout clears the in-memory profile and forgets the token.
func (a *App) Logout(ctx context.Context) error {
	a.signOut()
	fmt.Fprintln(a.out, "Signed out")
	return nil
}

func (a *App) reportFailure(msg string, err error) error {
	fmt.Fprintf(a.out, "Error: %s\n", msg)
	if err == nil {
		err = errors.New(msg)
	}
	return err
}
