package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const maxResponseSize = 1 << 20

// statusError carries an already mapped failure through http.Client, which
// wraps transport errors in *url.Error.
type statusError struct {
	err error
}

func (e *statusError) Error() string { return e.err.Error() }
func (e *statusError) Unwrap() error { return e.err }

// statusTransport reads the whole response within the request context and
// rejects it before the GraphQL layer decodes data. Accepted responses are
// handed on with the body replayed from memory.
type statusTransport struct {
	base http.RoundTripper
}

func newStatusTransport(base http.RoundTripper) *statusTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &statusTransport{base: base}
}

func (t *statusTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	resp.Body.Close()
	if err != nil {
		return nil, err
	}

	if err := checkResponse(resp.StatusCode, resp.Status, body); err != nil {
		return nil, &statusError{err: err}
	}

	resp.Body = io.NopCloser(bytes.NewReader(body))
	resp.ContentLength = int64(len(body))
	return resp, nil
}

func (t *statusTransport) CloseIdleConnections() {
	type closeIdler interface{ CloseIdleConnections() }
	if ci, ok := t.base.(closeIdler); ok {
		ci.CloseIdleConnections()
	}
}

// checkResponse validates the status and the GraphQL envelope of a response.
func checkResponse(code int, status string, body []byte) error {
	var gr graphQLResponse
	decodeErr := json.Unmarshal(body, &gr)

	if err := mapStatus(code, status, gr.Errors); err != nil {
		return err
	}
	if decodeErr != nil {
		return fmt.Errorf("%w: decode response: %v", ErrRequestFailed, decodeErr)
	}
	if len(gr.Errors) > 0 {
		return newAPIError(gr.Errors)
	}
	if len(gr.Data) == 0 || string(gr.Data) == "null" {
		return fmt.Errorf("%w: empty data", ErrRequestFailed)
	}
	return nil
}

func newAPIError(errs []graphQLError) *APIError {
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.Message)
	}
	return &APIError{Messages: msgs}
}

// mapStatus turns a non-2xx HTTP status into a sentinel error. GraphQL
// errors sent along with a 4xx status are preferred over the bare status.
func mapStatus(code int, status string, errs []graphQLError) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusUnauthorized, code == http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrUnauthorized, status)
	case code >= 500:
		return fmt.Errorf("%w: %s", ErrUnavailable, status)
	case len(errs) > 0:
		return newAPIError(errs)
	default:
		return fmt.Errorf("%w: unexpected status %s", ErrRequestFailed, status)
	}
}
