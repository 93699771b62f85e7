// Package services contains application services for the account console.
// This file defines the users service: the action surface of the profile
// store, proxying the account operations to the remote API and feeding
// successful results back into the in-memory profile.
package services

import (
	"context"

	"github.com/dmitrijs2005/satconsole/internal/client/client"
	"github.com/dmitrijs2005/satconsole/internal/client/models"
	"github.com/dmitrijs2005/satconsole/internal/client/state"
	"github.com/dmitrijs2005/satconsole/internal/logging"
)

// UsersService is the dispatch surface of the profile store.
//
// Contract:
//   - GetUser: fetch the current user; on success the profile is replaced.
//   - UpdateAccount: submit profile fields; on success the profile is
//     replaced with the server-confirmed record.
//   - ChangePassword, DeleteAccount: remote only, the profile is never touched.
//     After a successful delete the caller is expected to ClearUser.
//   - ClearUser: reset the profile to the empty record, no remote call.
//   - User, UserName: read views.
//
// Remote failures leave the profile untouched and are returned unchanged in
// the envelope. No method panics or retries.
type UsersService interface {
	GetUser(ctx context.Context) models.Response[models.User]
	UpdateAccount(ctx context.Context, info models.UpdatedUser) models.Response[models.User]
	ChangePassword(ctx context.Context, oldPassword, newPassword []byte) models.Response[models.Empty]
	DeleteAccount(ctx context.Context, password []byte) models.Response[models.Empty]
	ClearUser()

	User() models.User
	UserName() string

	Close(ctx context.Context) error
}

// usersService is the concrete UsersService backed by a remote Client and an
// owned UserState.
type usersService struct {
	client client.Client
	state  *state.UserState
	log    logging.Logger
}

// NewUsersService constructs a UsersService over the given API client and
// profile holder. A nil holder is replaced by a fresh, empty one and a nil
// logger by logging.Nop.
func NewUsersService(c client.Client, st *state.UserState, log logging.Logger) UsersService {
	if st == nil {
		st = state.NewUserState()
	}
	if log == nil {
		log = logging.Nop()
	}
	return &usersService{
		client: c,
		state:  st,
		log:    log.With("component", "users"),
	}
}

func (s *usersService) GetUser(ctx context.Context) models.Response[models.User] {
	resp := s.client.GetUser(ctx)
	if !resp.IsSuccess {
		s.logFailure(ctx, "getUser", resp.ErrorMessage)
		return resp
	}

	s.state.SetUserInfo(resp.Data)
	s.log.Debug(ctx, "user fetched", "email", resp.Data.Email)
	return resp
}

func (s *usersService) UpdateAccount(ctx context.Context, info models.UpdatedUser) models.Response[models.User] {
	resp := s.client.UpdateAccount(ctx, info)
	if !resp.IsSuccess {
		s.logFailure(ctx, "updateAccount", resp.ErrorMessage)
		return resp
	}

	s.state.UpdateUserInfo(resp.Data)
	s.log.Info(ctx, "account updated", "email", resp.Data.Email)
	return resp
}

func (s *usersService) ChangePassword(ctx context.Context, oldPassword, newPassword []byte) models.Response[models.Empty] {
	resp := s.client.ChangePassword(ctx, oldPassword, newPassword)
	if !resp.IsSuccess {
		s.logFailure(ctx, "changePassword", resp.ErrorMessage)
		return resp
	}

	s.log.Info(ctx, "password changed")
	return resp
}

func (s *usersService) DeleteAccount(ctx context.Context, password []byte) models.Response[models.Empty] {
	resp := s.client.DeleteAccount(ctx, password)
	if !resp.IsSuccess {
		s.logFailure(ctx, "deleteAccount", resp.ErrorMessage)
		return resp
	}

	s.log.Info(ctx, "account deleted")
	return resp
}

func (s *usersService) ClearUser() {
	s.state.Clear()
}

func (s *usersService) User() models.User {
	return s.state.User()
}

func (s *usersService) UserName() string {
	return s.state.UserName()
}

// Close releases resources held by the underlying client.
func (s *usersService) Close(ctx context.Context) error {
	return s.client.Close()
}

func (s *usersService) logFailure(ctx context.Context, action, msg string) {
	s.log.Warn(ctx, "action failed", "action", action, "error", msg)
}
