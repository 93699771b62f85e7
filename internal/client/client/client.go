package client

import (
	"context"

	"github.com/dmitrijs2005/satconsole/internal/client/models"
)

// Client is the remote account API as seen by the console.
//
// Every operation performs at most one request and reports the outcome
// through the returned envelope; none of them return a Go error or panic.
//
// Password arguments are read, never retained or wiped. Implementations may
// copy them while encoding the request; those copies are left to the
// garbage collector, so wiping the caller's slices clears only the caller's
// buffers.
type Client interface {
	GetUser(ctx context.Context) models.Response[models.User]
	UpdateAccount(ctx context.Context, user models.UpdatedUser) models.Response[models.User]
	ChangePassword(ctx context.Context, oldPassword, newPassword []byte) models.Response[models.Empty]
	DeleteAccount(ctx context.Context, password []byte) models.Response[models.Empty]

	// SetToken replaces the bearer token used by subsequent calls.
	// An empty token signs the client out.
	SetToken(token string)
	Close() error
}
