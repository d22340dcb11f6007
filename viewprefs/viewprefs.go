// Package viewprefs persists per-zone view preferences (zoom and pan)
// on the local device, independent of anything stored on the server.
package viewprefs

import (
	"encoding/json"
	"os"
	"path/filepath"
)

type ZoneView struct {
	Zoom    float64 `json:"zoom"`
	OffsetX float64 `json:"offset_x"`
	OffsetY float64 `json:"offset_y"`
}

// Store maps zone ids to their last view. Load and save are
// best-effort: the editor works fine without a prefs file.
type Store struct {
	path  string
	Zones map[int64]ZoneView `json:"zones"`
}

// DefaultPath resolves the prefs file under the user config dir.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "mapeditor", "viewprefs.json"), nil
}

func Load(path string) *Store {
	s := &Store{path: path, Zones: map[int64]ZoneView{}}
	b, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	var onDisk struct {
		Zones map[int64]ZoneView `json:"zones"`
	}
	if err := json.Unmarshal(b, &onDisk); err == nil && onDisk.Zones != nil {
		s.Zones = onDisk.Zones
	}
	return s
}

func (s *Store) Get(zoneID int64) (ZoneView, bool) {
	v, ok := s.Zones[zoneID]
	return v, ok
}

func (s *Store) Set(zoneID int64, v ZoneView) {
	s.Zones[zoneID] = v
}

// Save writes the store back to disk, creating the directory if needed.
func (s *Store) Save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(map[string]any{"zones": s.Zones}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, b, 0644)
}
