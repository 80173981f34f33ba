package apiclient_test

import (
	"os"
	"path/filepath"
	"testing"

	"go-tursina-admin/pkg/apiclient"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_LoadMissingFileIsLoggedOut(t *testing.T) {
	session := apiclient.NewSession(filepath.Join(t.TempDir(), "session.json"))

	require.NoError(t, session.Load())

	assert.False(t, session.Authenticated())
	assert.Nil(t, session.User)
	assert.Empty(t, session.Token)
}

func TestSession_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	session := apiclient.NewSession(path)
	session.User = &apiclient.SessionUser{ID: 1, Name: "Admin", Email: "admin@tursina.id", Role: "Superadmin"}
	session.Token = "jwt-abc"
	require.NoError(t, session.Save())

	reloaded := apiclient.NewSession(path)
	require.NoError(t, reloaded.Load())

	assert.True(t, reloaded.Authenticated())
	assert.Equal(t, "jwt-abc", reloaded.Token)
	assert.Equal(t, "admin@tursina.id", reloaded.User.Email)
}

func TestSession_SavedFileIsPrivate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	session := apiclient.NewSession(path)
	session.Token = "jwt-abc"
	require.NoError(t, session.Save())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestSession_ClearForgetsEverything(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	session := apiclient.NewSession(path)
	session.User = &apiclient.SessionUser{ID: 1, Name: "Admin"}
	session.Token = "jwt-abc"
	require.NoError(t, session.Save())

	require.NoError(t, session.Clear())

	assert.False(t, session.Authenticated())
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// clearing twice is fine
	require.NoError(t, session.Clear())
}
