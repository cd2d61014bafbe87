package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSaveAndLoadTeam(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "team.toml")

	saved, err := SaveTeam(path, []string{"aria", "", "talon"})
	require.NoError(t, err)
	require.NotEmpty(t, saved.ID)

	got, err := LoadTeam(path)
	require.NoError(t, err)
	require.Equal(t, saved.ID, got.ID)
	require.True(t, saved.SavedAt.Equal(got.SavedAt))
	require.Equal(t, []string{"aria", "", "talon"}, got.Slots)

	_, err = os.Stat(path + ".tmp")
	require.True(t, os.IsNotExist(err), "temp file is renamed away")

	again, err := SaveTeam(path, []string{"grom"})
	require.NoError(t, err)
	require.NotEqual(t, saved.ID, again.ID)
	got, err = LoadTeam(path)
	require.NoError(t, err)
	require.Equal(t, []string{"grom"}, got.Slots)
}

func TestLoadTeamMissingFile(t *testing.T) {
	got, err := LoadTeam(filepath.Join(t.TempDir(), "none.toml"))
	require.NoError(t, err)
	require.Empty(t, got.Slots)
}

func TestLoadTeamRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "team.toml")
	require.NoError(t, os.WriteFile(path, []byte("slots = [1, "), 0o600))
	_, err := LoadTeam(path)
	require.Error(t, err)
}
