package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_DisplayName(t *testing.T) {
	tests := []struct {
		name string
		user User
		want string
	}{
		{name: "short name wins", user: User{FullName: "Jane Doe", ShortName: "Jane"}, want: "Jane"},
		{name: "short name without full name", user: User{ShortName: "Jane"}, want: "Jane"},
		{name: "falls back to full name", user: User{FullName: "Jane Doe"}, want: "Jane Doe"},
		{name: "both empty", user: User{Email: "jane@example.com"}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.user.DisplayName())
		})
	}
}

func TestUser_IsEmpty(t *testing.T) {
	assert.True(t, User{}.IsEmpty())
	assert.False(t, User{Email: "a@b.c"}.IsEmpty())
}

func TestUpdatedUserFrom(t *testing.T) {
	u := User{FullName: "Jane Doe", ShortName: "Jane", Email: "jane@example.com"}
	got := UpdatedUserFrom(u)
	assert.Equal(t, UpdatedUser{FullName: "Jane Doe", ShortName: "Jane", Email: "jane@example.com"}, got)
}

func TestResponse_SucceedAndFail(t *testing.T) {
	ok := Succeed(User{Email: "x@y.z"})
	require.True(t, ok.IsSuccess)
	assert.Equal(t, "x@y.z", ok.Data.Email)
	assert.NoError(t, ok.Error())
	assert.Empty(t, ok.ErrorMessage)

	cause := errors.New("wrong password")
	bad := Fail[Empty](cause)
	require.False(t, bad.IsSuccess)
	assert.Equal(t, "wrong password", bad.ErrorMessage)
	assert.ErrorIs(t, bad.Error(), cause)

	noCause := Fail[User](nil)
	assert.False(t, noCause.IsSuccess)
	assert.Equal(t, "request failed", noCause.ErrorMessage)
}
