package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/dmitrijs2005/satconsole/internal/client/models"
	"github.com/dmitrijs2005/satconsole/internal/common"
	"github.com/google/uuid"
	"github.com/machinebox/graphql"
)

// GraphQLClient talks to the satellite console GraphQL endpoint over HTTP.
// It is safe for concurrent use.
type GraphQLClient struct {
	endpointURL string
	httpClient  *http.Client
	gql         *graphql.Client
	timeout     time.Duration

	mu    sync.RWMutex
	token string

	now       func() time.Time
	requestID func() string
}

var _ Client = (*GraphQLClient)(nil)

// Option customises a GraphQLClient.
type Option func(*GraphQLClient)

// WithHTTPClient sends requests through hc. The client itself is not
// modified; its transport is wrapped in a copy.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *GraphQLClient) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithToken sets the initial bearer token.
func WithToken(token string) Option {
	return func(c *GraphQLClient) {
		c.token = token
	}
}

// WithTimeout bounds every request. Zero means no client-side bound.
func WithTimeout(d time.Duration) Option {
	return func(c *GraphQLClient) {
		c.timeout = d
	}
}

// NewGraphQLClient returns a client for the endpoint, which must be an
// absolute http(s) URL such as http://127.0.0.1:10100/api/graphql/v0.
func NewGraphQLClient(endpointURL string, opts ...Option) (*GraphQLClient, error) {
	u, err := url.Parse(endpointURL)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("invalid endpoint url %q: want http(s)://host/path", endpointURL)
	}

	c := &GraphQLClient{
		endpointURL: u.String(),
		httpClient:  &http.Client{},
		now:         time.Now,
		requestID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}

	hc := *c.httpClient
	hc.Transport = newStatusTransport(c.httpClient.Transport)
	c.httpClient = &hc
	c.gql = graphql.NewClient(c.endpointURL, graphql.WithHTTPClient(c.httpClient))

	return c, nil
}

func (c *GraphQLClient) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *GraphQLClient) currentToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *GraphQLClient) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

func (c *GraphQLClient) GetUser(ctx context.Context) models.Response[models.User] {
	var out struct {
		User models.User `json:"user"`
	}
	if err := c.execute(ctx, getUserQuery, nil, &out); err != nil {
		return models.Fail[models.User](err)
	}
	return models.Succeed(out.User)
}

func (c *GraphQLClient) UpdateAccount(ctx context.Context, user models.UpdatedUser) models.Response[models.User] {
	var out struct {
		UpdateAccount models.User `json:"updateAccount"`
	}
	vars := map[string]any{"input": user}
	if err := c.execute(ctx, updateAccountMutation, vars, &out); err != nil {
		return models.Fail[models.User](err)
	}
	return models.Succeed(out.UpdateAccount)
}

func (c *GraphQLClient) ChangePassword(ctx context.Context, oldPassword, newPassword []byte) models.Response[models.Empty] {
	vars := map[string]any{
		"password":    string(oldPassword),
		"newPassword": string(newPassword),
	}
	if err := c.execute(ctx, changePasswordMutation, vars, nil); err != nil {
		return models.Fail[models.Empty](err)
	}
	return models.Succeed(models.Empty{})
}

func (c *GraphQLClient) DeleteAccount(ctx context.Context, password []byte) models.Response[models.Empty] {
	vars := map[string]any{"password": string(password)}
	if err := c.execute(ctx, deleteAccountMutation, vars, nil); err != nil {
		return models.Fail[models.Empty](err)
	}
	return models.Succeed(models.Empty{})
}

// execute runs one GraphQL document and decodes its data into out (if not
// nil). All failures come back as errors matching ErrUnauthorized,
// ErrUnavailable or ErrRequestFailed, or wrapping context.Canceled when the
// caller cancelled.
func (c *GraphQLClient) execute(ctx context.Context, query string, vars map[string]any, out any) error {
	token := c.currentToken()
	if err := checkToken(token, c.now()); err != nil {
		return err
	}

	req := graphql.NewRequest(query)
	for k, v := range vars {
		req.Var(k, v)
	}
	req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	req.Header.Set(common.RequestIDHeaderName, c.requestID())

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	if err := c.gql.Run(ctx, req, out); err != nil {
		return mapRunError(ctx, err)
	}
	return nil
}

// mapRunError classifies an error from graphql.Client.Run. Errors produced
// by statusTransport are already mapped. A context that ended while the
// body was being read still counts as canceled or unavailable.
func mapRunError(ctx context.Context, err error) error {
	var se *statusError
	if errors.As(err, &se) {
		return se.err
	}
	if ctxErr := ctx.Err(); ctxErr != nil && !errors.Is(err, ctxErr) {
		err = fmt.Errorf("%w: %w", ctxErr, err)
	}

	var uerr *url.Error
	switch {
	case errors.Is(err, context.Canceled):
		return fmt.Errorf("request canceled: %w", err)
	case errors.Is(err, context.DeadlineExceeded), errors.As(err, &uerr):
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	default:
		return fmt.Errorf("%w: decode response: %v", ErrRequestFailed, err)
	}
}
