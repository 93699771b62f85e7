// Package state holds the in-memory account state of the console.
//
// UserState exclusively owns the current user's profile. The record can only
// change through the four transitions of the Mutations interface; readers get
// copies through the Getters interface and never touch the stored value.
package state

import (
	"sync"

	"github.com/dmitrijs2005/satconsole/internal/client/models"
)

// Mutations is the closed set of transitions that may change the profile.
type Mutations interface {
	SetUserInfo(user models.User)
	RevertToDefaultUserInfo()
	UpdateUserInfo(user models.User)
	Clear()
}

// Getters are the read-only views derived from the profile.
type Getters interface {
	User() models.User
	UserName() string
}

// UserState is the profile holder. The zero value is ready to use and
// starts with the empty record.
//
// Transitions are atomic with respect to readers. Concurrent writers are not
// ordered: the last transition to run determines the stored record.
type UserState struct {
	mu   sync.RWMutex
	user models.User
}

var (
	_ Mutations = (*UserState)(nil)
	_ Getters   = (*UserState)(nil)
)

// NewUserState returns a holder with the default empty profile.
func NewUserState() *UserState {
	return &UserState{}
}

// SetUserInfo replaces the whole record with user.
func (s *UserState) SetUserInfo(user models.User) {
	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
}

// RevertToDefaultUserInfo empties every field of the current record.
func (s *UserState) RevertToDefaultUserInfo() {
	s.mu.Lock()
	s.user.FullName = ""
	s.user.ShortName = ""
	s.user.Email = ""
	s.mu.Unlock()
}

// UpdateUserInfo replaces the whole record with the server-confirmed user.
// It behaves like SetUserInfo but is kept separate so the update path stays
// distinguishable at call sites.
func (s *UserState) UpdateUserInfo(user models.User) {
	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
}

// Clear swaps the record for a fresh empty one.
func (s *UserState) Clear() {
	s.mu.Lock()
	s.user = models.User{}
	s.mu.Unlock()
}

// User returns the stored record.
func (s *UserState) User() models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// UserName returns the short name, falling back to the full name.
func (s *UserState) UserName() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user.DisplayName()
}
