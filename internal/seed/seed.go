// Package seed reads the initial songs and movies shown by the TUI. Seeds
// are read-only: nothing is ever written back.
package seed

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/gravitrone/setlist/internal/movie"
)

// Format is a seed file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// State is the content of a seed file.
type State struct {
	Songs  []string      `yaml:"songs" toml:"songs"`
	Movies []movie.Movie `yaml:"movies" toml:"movies"`
}

// FormatFor picks the format from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported seed extension %q (want .yaml, .yml or .toml)", filepath.Ext(path))
	}
}

// Load reads and parses the seed file at path.
func Load(path string) (*State, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed: %w", err)
	}
	state, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("parse seed %s: %w", path, err)
	}
	return state, nil
}

// Parse decodes a seed and assigns ids to movies that have none.
func Parse(data []byte, format Format) (*State, error) {
	var state State
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &state); err != nil {
			return nil, err
		}
	case FormatTOML:
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&state); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown seed format %q", format)
	}
	for i := range state.Movies {
		if strings.TrimSpace(state.Movies[i].ID) == "" {
			state.Movies[i].ID = movie.NewID()
		}
	}
	return &state, nil
}

// Check reports movies whose ids are missing or collide.
func (s *State) Check() error {
	return movie.Validate(s.Movies)
}

// Encode renders the state in the given format.
func (s *State) Encode(format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(s)
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(s); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unknown seed format %q", format)
	}
}

// Default is the state used when no seed file is configured.
func Default() *State {
	return &State{
		Songs: []string{"intro", "verse-1", "chorus"},
		Movies: []movie.Movie{
			{
				ID:          "alien",
				Title:       "Alien",
				Rating:      5,
				Description: "The crew of a space tug meets something on a derelict ship.",
				Released:    "1979",
				Soundtrack:  []string{"Main Title"},
			},
			{
				ID:       "heat",
				Title:    "Heat",
				Rating:   4,
				Released: "1995",
				Watched:  movie.Watched{Seen: true},
			},
			{
				ID:       "tron",
				Title:    "Tron",
				Rating:   3,
				Released: "1982",
			},
		},
	}
}
