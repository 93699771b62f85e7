package state

import (
	"sync"
	"testing"

	"github.com/dmitrijs2005/satconsole/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var jane = models.User{FullName: "Jane Doe", ShortName: "Jane", Email: "jane@example.com"}

func TestNewUserState_StartsEmpty(t *testing.T) {
	s := NewUserState()
	assert.Equal(t, models.User{}, s.User())
	assert.Equal(t, "", s.UserName())

	var zero UserState
	assert.Equal(t, models.User{}, zero.User())
}

func TestSetUserInfo_ReplacesRecord(t *testing.T) {
	s := NewUserState()
	s.SetUserInfo(jane)
	assert.Equal(t, jane, s.User())

	other := models.User{FullName: "John Roe", Email: "john@example.com"}
	s.SetUserInfo(other)
	assert.Equal(t, other, s.User())
}

func TestSetUserInfo_Idempotent(t *testing.T) {
	once := NewUserState()
	once.SetUserInfo(jane)

	twice := NewUserState()
	twice.SetUserInfo(jane)
	twice.SetUserInfo(jane)

	assert.Equal(t, once.User(), twice.User())
	assert.Equal(t, once.UserName(), twice.UserName())
}

func TestUpdateUserInfo_ReplacesRecord(t *testing.T) {
	s := NewUserState()
	s.SetUserInfo(jane)

	updated := models.User{FullName: "J. Doe", Email: "jane@example.com"}
	s.UpdateUserInfo(updated)
	s.UpdateUserInfo(updated)

	assert.Equal(t, updated, s.User())
	assert.Equal(t, "J. Doe", s.UserName())
}

func TestRevertAndClear_LeaveEmptyRecord(t *testing.T) {
	resets := map[string]func(*UserState){
		"revert": (*UserState).RevertToDefaultUserInfo,
		"clear":  (*UserState).Clear,
	}

	for name, reset := range resets {
		t.Run(name, func(t *testing.T) {
			s := NewUserState()
			s.SetUserInfo(jane)

			reset(s)
			require.Equal(t, models.User{FullName: "", ShortName: "", Email: ""}, s.User())

			reset(s)
			assert.Equal(t, models.User{}, s.User())
		})
	}
}

func TestUser_ReturnsCopy(t *testing.T) {
	s := NewUserState()
	s.SetUserInfo(jane)

	u := s.User()
	u.FullName = "tampered"

	assert.Equal(t, jane, s.User())
}

func TestUserName(t *testing.T) {
	s := NewUserState()

	s.SetUserInfo(models.User{FullName: "Jane Doe", ShortName: "Jane"})
	assert.Equal(t, "Jane", s.UserName())

	s.SetUserInfo(models.User{FullName: "Jane Doe"})
	assert.Equal(t, "Jane Doe", s.UserName())

	s.SetUserInfo(models.User{Email: "jane@example.com"})
	assert.Equal(t, "", s.UserName())
}

func TestUserState_ConcurrentAccess(t *testing.T) {
	s := NewUserState()
	users := []models.User{
		jane,
		{FullName: "John Roe", Email: "john@example.com"},
	}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(u models.User) {
			defer wg.Done()
			s.SetUserInfo(u)
		}(users[i%len(users)])
		go func() {
			defer wg.Done()
			_ = s.UserName()
		}()
	}
	wg.Wait()

	assert.Contains(t, users, s.User())
}
