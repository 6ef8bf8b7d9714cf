// Package settings loads the game's ini file.
package settings

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/ini.v1"
)

// DefaultPath is used when no -config flag is given.
const DefaultPath = "minif1.ini"

type Settings struct {
	Files struct {
		Users  string `ini:"Users"`
		Scores string `ini:"Scores"`
		Assets string `ini:"Assets"`
	} `ini:"Files"`

	Window struct {
		Title string  `ini:"Title"`
		Scale float64 `ini:"Scale"`
	} `ini:"Window"`

	Audio struct {
		Enabled bool    `ini:"Enabled"`
		Volume  float64 `ini:"Volume"`
	} `ini:"Audio"`

	// Race holds the setup screen defaults. Seed 0 seeds from the clock.
	Race struct {
		Seed    uint64 `ini:"Seed"`
		Team    string `ini:"Team"`
		Number  int    `ini:"Number"`
		Country string `ini:"Country"`
	} `ini:"Race"`
}

func Default() *Settings {
	s := &Settings{}
	s.Files.Users = "users.txt"
	s.Files.Scores = "score.txt"
	s.Files.Assets = "assets"
	s.Window.Title = "Mini F1"
	s.Window.Scale = 1
	s.Audio.Enabled = true
	s.Audio.Volume = 0.6
	s.Race.Team = "Ferrari"
	s.Race.Number = 16
	s.Race.Country = "Italy"
	return s
}

// Load reads path over the defaults. A missing file is created with the
// defaults. Any other problem returns the defaults along with the error.
func Load(path string) (*Settings, error) {
	s := Default()

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := Save(path, s); err != nil {
			return s, err
		}
		return s, nil
	}

	f, err := ini.Load(path)
	if err != nil {
		return s, fmt.Errorf("load settings: %w", err)
	}
	loaded := Default()
	if err := f.MapTo(loaded); err != nil {
		return s, fmt.Errorf("parse settings: %w", err)
	}
	loaded.sanitize()
	return loaded, nil
}

// Save writes s to path.
func Save(path string, s *Settings) error {
	f := ini.Empty()
	if err := f.ReflectFrom(s); err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := f.SaveTo(path); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

func (s *Settings) sanitize() {
	d := Default()
	if s.Files.Users == "" {
		s.Files.Users = d.Files.Users
	}
	if s.Files.Scores == "" {
		s.Files.Scores = d.Files.Scores
	}
	if s.Files.Assets == "" {
		s.Files.Assets = d.Files.Assets
	}
	if s.Window.Scale <= 0 {
		s.Window.Scale = d.Window.Scale
	}
	if s.Audio.Volume < 0 {
		s.Audio.Volume = 0
	}
	if s.Audio.Volume > 1 {
		s.Audio.Volume = 1
	}
}
