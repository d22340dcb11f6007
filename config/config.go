// Package config loads the editor's settings: a YAML file for the
// editing behavior (grid, zoom, thresholds) and environment variables
// for the server connection. The YAML file can be watched for live
// reloads.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Editor holds the tunable editing behavior loaded from YAML. Zero
// values fall back to the defaults below, so a partial file is fine.
type Editor struct {
	SnapGrid         float64 `yaml:"snap_grid"`
	MinZoom          float64 `yaml:"min_zoom"`
	MaxZoom          float64 `yaml:"max_zoom"`
	ZoomStep         float64 `yaml:"zoom_step"`
	DistributeMargin float64 `yaml:"distribute_margin"`
	PasteOffset      float64 `yaml:"paste_offset"`
	ShowGrid         bool    `yaml:"show_grid"`
}

// Server holds the connection settings read from the environment (or a
// .env file when present).
type Server struct {
	BaseURL string
	Token   string
	ZoneID  int64
}

func Defaults() Editor {
	return Editor{
		SnapGrid:         10,
		MinZoom:          0.25,
		MaxZoom:          4,
		ZoomStep:         0.1,
		DistributeMargin: 50,
		PasteOffset:      20,
		ShowGrid:         true,
	}
}

// LoadEditor reads the YAML config at path. A missing file returns the
// defaults without error; a malformed file is an error.
func LoadEditor(path string) (Editor, error) {
	cfg := Defaults()
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Defaults(), fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (e *Editor) applyDefaults() {
	d := Defaults()
	if e.SnapGrid <= 0 {
		e.SnapGrid = d.SnapGrid
	}
	if e.MinZoom <= 0 {
		e.MinZoom = d.MinZoom
	}
	if e.MaxZoom <= e.MinZoom {
		e.MaxZoom = d.MaxZoom
	}
	if e.ZoomStep <= 0 {
		e.ZoomStep = d.ZoomStep
	}
	if e.DistributeMargin <= 0 {
		e.DistributeMargin = d.DistributeMargin
	}
	if e.PasteOffset <= 0 {
		e.PasteOffset = d.PasteOffset
	}
}

// LoadServer reads the server connection from the environment. A .env
// file in the working directory is merged in first when present.
func LoadServer() (Server, error) {
	_ = godotenv.Load()

	s := Server{
		BaseURL: os.Getenv("MAPEDITOR_API_URL"),
		Token:   os.Getenv("MAPEDITOR_API_TOKEN"),
	}
	if s.BaseURL == "" {
		return s, fmt.Errorf("MAPEDITOR_API_URL is not set")
	}
	if v := os.Getenv("MAPEDITOR_ZONE_ID"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return s, fmt.Errorf("MAPEDITOR_ZONE_ID: %w", err)
		}
		s.ZoneID = id
	}
	return s, nil
}
