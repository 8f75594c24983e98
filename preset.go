package bulgepinch

import (
	"encoding/json"
	"fmt"
)

// Preset is a named parameter set loaded from JSON.
type Preset struct {
	Name   string
	Params Params
}

// presetEntry is the JSON form of a single preset. Pointer fields tell
// omitted values apart from explicit zeros.
type presetEntry struct {
	Name     string      `json:"name"`
	Center   *[2]float64 `json:"center,omitempty"`
	Radius   *float64    `json:"radius,omitempty"`
	Strength *float64    `json:"strength,omitempty"`
}

// presetFile is the top-level JSON structure for a preset document.
type presetFile struct {
	Presets []presetEntry `json:"presets"`
}

// LoadPresets parses a JSON preset document of the form
//
//	{"presets": [{"name": "bulge", "center": [0.5, 0.5], "radius": 120, "strength": 0.8}]}
//
// Omitted fields take their DefaultParams values.
func LoadPresets(jsonData []byte) ([]Preset, error) {
	var file presetFile
	if err := json.Unmarshal(jsonData, &file); err != nil {
		return nil, fmt.Errorf("parse presets: %w", err)
	}
	if len(file.Presets) == 0 {
		return nil, fmt.Errorf("parse presets: no presets")
	}

	seen := make(map[string]bool, len(file.Presets))
	presets := make([]Preset, 0, len(file.Presets))
	for i, e := range file.Presets {
		if e.Name == "" {
			return nil, fmt.Errorf("parse presets: preset %d has no name", i)
		}
		if seen[e.Name] {
			return nil, fmt.Errorf("parse presets: duplicate preset %q", e.Name)
		}
		seen[e.Name] = true

		p := DefaultParams()
		if e.Center != nil {
			p.Center = Vec2{e.Center[0], e.Center[1]}
		}
		if e.Radius != nil {
			p.Radius = *e.Radius
		}
		if e.Strength != nil {
			p.Strength = *e.Strength
		}
		presets = append(presets, Preset{Name: e.Name, Params: p})
	}
	return presets, nil
}

// FindPreset returns the preset with the given name.
func FindPreset(presets []Preset, name string) (Preset, bool) {
	for _, p := range presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}
