package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/satconsole/internal/client/client"
	"github.com/dmitrijs2005/satconsole/internal/client/config"
	"github.com/dmitrijs2005/satconsole/internal/client/services"
	"github.com/dmitrijs2005/satconsole/internal/client/state"
	"github.com/dmitrijs2005/satconsole/internal/logging"
)

type App struct {
	config       *config.Config
	apiClient    client.Client
	usersService services.UsersService
	log          logging.Logger
	signedIn     bool
	reader       *bufio.Reader
	out          io.Writer
}

func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	apiClient, err := client.NewGraphQLClient(c.APIEndpointURL,
		client.WithToken(c.AuthToken),
		client.WithTimeout(c.RequestTimeout),
	)
	if err != nil {
		return nil, err
	}

	us := services.NewUsersService(apiClient, state.NewUserState(), log)

	return &App{
		config:       c,
		apiClient:    apiClient,
		usersService: us,
		log:          log,
		signedIn:     c.AuthToken != "",
		reader:       bufio.NewReader(os.Stdin),
		out:          os.Stdout,
	}, nil
}

// Run fetches the current user when a token is configured and then serves
// the REPL until the user exits or stdin is closed.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.usersService.Close(ctx); err != nil {
			a.log.Warn(ctx, "close failed", "error", err)
		}
	}()

	fmt.Fprintln(a.out, "Satellite account console (type 'help' for commands)")
	a.log.Debug(ctx, "starting console", "config", a.config.String())

	if a.isSignedIn() {
		_ = a.fetchProfile(ctx)
	}

	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) isSignedIn() bool {
	return a.signedIn
}

// fetchProfile refreshes the profile and signs out when the server rejects
// the token.
func (a *App) fetchProfile(ctx context.Context) error {
	if err := a.Refresh(ctx); err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			a.signOut()
		}
		return err
	}
	return nil
}

// signOut forgets the token and the in-memory profile.
func (a *App) signOut() {
	a.usersService.ClearUser()
	a.apiClient.SetToken("")
	a.signedIn = false
}

func (a *App) getStatus() string {
	if !a.isSignedIn() {
		return "(signed out)"
	}
	if name := a.usersService.UserName(); name != "" {
		return fmt.Sprintf("(%s)", name)
	}
	return ""
}
