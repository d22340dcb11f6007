package viewprefs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs", "viewprefs.json")
	s := Load(path)
	if _, ok := s.Get(3); ok {
		t.Fatalf("empty store should have no zones")
	}
	s.Set(3, ZoneView{Zoom: 1.5, OffsetX: 120, OffsetY: -40})
	if err := s.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	again := Load(path)
	v, ok := again.Get(3)
	if !ok {
		t.Fatalf("zone 3 missing after reload")
	}
	if v.Zoom != 1.5 || v.OffsetX != 120 || v.OffsetY != -40 {
		t.Fatalf("reloaded view mismatch: %+v", v)
	}
}

func TestLoadCorruptFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viewprefs.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	s := Load(path)
	if s.Zones == nil || len(s.Zones) != 0 {
		t.Fatalf("corrupt file should yield an empty usable store")
	}
}
