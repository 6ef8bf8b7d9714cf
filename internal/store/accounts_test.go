package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAccountsMissingFile(t *testing.T) {
	a, err := LoadAccounts(filepath.Join(t.TempDir(), "users.txt"))
	require.NoError(t, err)
	assert.Zero(t, a.Len())
}

func TestLoadAccountsSkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.txt")
	data := "alice,wonder\nno delimiter here\n,nouser\nbob,b,extra\n\ncarol,\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	a, err := LoadAccounts(path)
	require.NoError(t, err)

	assert.Equal(t, 3, a.Len())
	pass, ok := a.Lookup("alice")
	assert.True(t, ok)
	assert.Equal(t, "wonder", pass)
	pass, _ = a.Lookup("bob")
	assert.Equal(t, "b", pass)
	_, ok = a.Lookup("no delimiter here")
	assert.False(t, ok)
}

func TestRegisterThenLogin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.txt")
	a, err := LoadAccounts(path)
	require.NoError(t, err)

	require.NoError(t, a.Register(" max ", " verstappen "))
	assert.ErrorIs(t, a.Register("max", "other"), ErrUserExists)

	assert.NoError(t, a.Login("max", "verstappen"))
	assert.ErrorIs(t, a.Login("max", "wrong"), ErrWrongPassword)
	assert.ErrorIs(t, a.Login("lando", "x"), ErrUnknownUser)
	assert.ErrorIs(t, a.Login("", "x"), ErrEmptyField)
	assert.ErrorIs(t, a.Register("  ", "x"), ErrEmptyField)
	assert.Error(t, a.Register("a,b", "x"))

	// A fresh load sees the appended account.
	again, err := LoadAccounts(path)
	require.NoError(t, err)
	assert.NoError(t, again.Login("max", "verstappen"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "max,verstappen\n", string(data))
}

func TestRegisterSurvivesWriteFailure(t *testing.T) {
	// A directory cannot be opened for appending.
	a, err := LoadAccounts(t.TempDir())
	require.Error(t, err)

	require.NoError(t, a.Register("oscar", "piastri"))
	assert.NoError(t, a.Login("oscar", "piastri"))
}
