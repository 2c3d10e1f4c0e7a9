//go:build unit

package user_test

import (
	"testing"

	"recarma/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	name, err := user.NewName("Priya Sharma")
	require.NoError(t, err)
	email, err := user.NewEmail("priya@example.com")
	require.NoError(t, err)
	role, err := user.NewRole("OWNER")
	require.NoError(t, err)

	u := user.NewUser(name, email, "hashed", role)

	assert.NotEqual(t, uuid.Nil, u.ID())
	assert.Equal(t, "Priya Sharma", u.Name().Value())
	assert.Equal(t, "priya@example.com", u.Email().Value())
	assert.Equal(t, user.RoleOwner, u.Role())
	assert.True(t, u.IsActive())
}

func TestRole(t *testing.T) {
	cases := []struct {
		name  string
		value string
		errIs error
	}{
		{name: "owner ok", value: "OWNER"},
		{name: "dealer ok", value: "DEALER"},
		{name: "admin ok", value: "ADMIN"},
		{name: "lowercase rejected", value: "owner", errIs: user.ErrInvalidRole},
		{name: "unknown rejected", value: "SUPERVISOR", errIs: user.ErrInvalidRole},
		{name: "empty rejected", value: "", errIs: user.ErrInvalidRole},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			role, err := user.NewRole(tc.value)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.value, role.String())
		})
	}
}

func TestEmail(t *testing.T) {
	cases := []struct {
		name  string
		value string
		errIs error
	}{
		{name: "valid address ok", value: "owner@recarma.in"},
		{name: "surrounding whitespace trimmed", value: "  owner@recarma.in  "},
		{name: "missing at sign rejected", value: "owner.recarma.in", errIs: user.ErrInvalidEmail},
		{name: "missing domain rejected", value: "owner@", errIs: user.ErrInvalidEmail},
		{name: "empty rejected", value: "", errIs: user.ErrInvalidEmail},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			email, err := user.NewEmail(tc.value)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "owner@recarma.in", email.Value())
		})
	}
}

func TestCredentials(t *testing.T) {
	t.Run("valid pair ok", func(t *testing.T) {
		c, err := user.NewCredentials("owner@recarma.in", "s3curePass")
		require.NoError(t, err)
		assert.Equal(t, "owner@recarma.in", c.Email().Value())
		assert.Equal(t, "s3curePass", c.Password().Value())
	})

	t.Run("short password rejected", func(t *testing.T) {
		_, err := user.NewCredentials("owner@recarma.in", "short")
		assert.ErrorIs(t, err, user.ErrPasswordTooWeak)
	})

	t.Run("bad email rejected before password", func(t *testing.T) {
		_, err := user.NewCredentials("not-an-email", "s3curePass")
		assert.ErrorIs(t, err, user.ErrInvalidEmail)
	})
}
