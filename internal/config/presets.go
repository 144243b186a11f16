package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type LengthPreset struct {
	Name      string `yaml:"name"`
	Words     string `yaml:"words"`
	MaxTokens int    `yaml:"max_tokens"`
}

type TonePreset struct {
	Name  string `yaml:"name"`
	Style string `yaml:"style"`
}

// Presets holds the summarization options offered by the UI, loaded from
// definitions/presets/*.yaml. Slices keep file order for rendering.
type Presets struct {
	lengths     map[string]LengthPreset
	tones       map[string]TonePreset
	lengthOrder []string
	toneOrder   []string
}

func LoadPresets(base string) (*Presets, error) {
	p := &Presets{
		lengths: make(map[string]LengthPreset),
		tones:   make(map[string]TonePreset),
	}

	dir := filepath.Join(base, "presets")
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading presets dir: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		var raw struct {
			Lengths []LengthPreset `yaml:"lengths"`
			Tones   []TonePreset   `yaml:"tones"`
		}
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		for _, l := range raw.Lengths {
			if _, dup := p.lengths[l.Name]; !dup {
				p.lengthOrder = append(p.lengthOrder, l.Name)
			}
			p.lengths[l.Name] = l
		}
		for _, t := range raw.Tones {
			if _, dup := p.tones[t.Name]; !dup {
				p.toneOrder = append(p.toneOrder, t.Name)
			}
			p.tones[t.Name] = t
		}
	}

	if len(p.lengths) == 0 || len(p.tones) == 0 {
		return nil, fmt.Errorf("presets in %s define no lengths or no tones", dir)
	}
	return p, nil
}

func (p *Presets) Length(name string) (LengthPreset, bool) {
	l, ok := p.lengths[name]
	return l, ok
}

func (p *Presets) Tone(name string) (TonePreset, bool) {
	t, ok := p.tones[name]
	return t, ok
}

// LengthNames returns length preset names in definition order.
func (p *Presets) LengthNames() []string {
	out := make([]string, len(p.lengthOrder))
	copy(out, p.lengthOrder)
	return out
}

// ToneNames returns tone preset names in definition order.
func (p *Presets) ToneNames() []string {
	out := make([]string, len(p.toneOrder))
	copy(out, p.toneOrder)
	return out
}

// DefaultLength and DefaultTone are the first presets in definition order.
func (p *Presets) DefaultLength() string { return p.lengthOrder[0] }
func (p *Presets) DefaultTone() string   { return p.toneOrder[0] }
