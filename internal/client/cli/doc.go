// Package cli provides the interactive satellite account console.
//
// It wires configuration, logging, the remote API client and the profile
// store, then runs a REPL over stdin. Typical flow: fetch the current user
// with the configured token (or sign in with 'login'), inspect and edit the
// profile, change the password or delete the account.
//
// Key features:
//   - Login / Logout (token based; logout clears the in-memory profile)
//   - whoami / refresh: show or re-fetch the current user
//   - update: edit full name, short name and email
//   - passwd / delete: password change and account deletion
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
