// Package client contains the remote side of the satellite account console.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) for the
//     four account operations: GetUser, UpdateAccount, ChangePassword and
//     DeleteAccount.
//  2. A GraphQL-over-HTTP implementation (see GraphQLClient) that injects the
//     bearer token and a request id into every call, pre-checks JWT expiry,
//     and maps HTTP/transport failures to sentinel errors.
//
// # Error Handling
//
// Operations never return a Go error. Each resolves to a models.Response
// envelope whose Err matches one of ErrUnavailable, ErrUnauthorized or
// ErrRequestFailed with errors.Is. GraphQL "errors" arrive as *APIError,
// whose text is the server message shown to the user.
//
// # Concurrency & Contexts
//
// GraphQLClient is safe for concurrent use. Every operation accepts a
// context.Context; cancellation fails the envelope without retrying.
package client
