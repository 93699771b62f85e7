package common

import "errors"

var (
	// Auth errors.
	ErrNoToken = errors.New("no auth token")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")
)
