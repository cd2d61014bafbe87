package prefs

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
)

// Loadout is a saved team. Empty strings mark empty slots.
type Loadout struct {
	ID      string    `toml:"id"`
	SavedAt time.Time `toml:"saved_at"`
	Slots   []string  `toml:"slots"`
}

// SaveTeam writes the slot ids to path, replacing any previous loadout atomically.
func SaveTeam(path string, slots []string) (Loadout, error) {
	l := Loadout{
		ID:      uuid.NewString(),
		SavedAt: time.Now().UTC().Truncate(time.Second),
		Slots:   append([]string{}, slots...),
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return Loadout{}, err
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(l); err != nil {
		return Loadout{}, fmt.Errorf("encode team: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o600); err != nil {
		return Loadout{}, err
	}
	if err := os.Rename(tmp, path); err != nil {
		return Loadout{}, err
	}
	return l, nil
}

// LoadTeam reads a loadout. A missing file is not an error and yields an empty Loadout.
func LoadTeam(path string) (Loadout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Loadout{}, nil
		}
		return Loadout{}, err
	}
	var l Loadout
	if _, err := toml.Decode(string(data), &l); err != nil {
		return Loadout{}, fmt.Errorf("decode team %s: %w", path, err)
	}
	return l, nil
}
