package plane

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Settings is the serializable plane settings mapping. DisplayImagePlane and
// ImagePlaneFixed are required on input; absence is detectable through the
// pointer fields and fails with ErrMissingKey. Alignment is an opaque
// sub-map owned by the alignment adapter and is merged into stored state,
// never replaced.
type Settings struct {
	DisplayImagePlane *bool          `yaml:"display-image-plane"`
	ImagePlaneFixed   *bool          `yaml:"image-plane-fixed"`
	Alignment         map[string]any `yaml:"alignment,omitempty"`
}

// Settings returns the current settings with the adapter's live alignment
// parameters merged in. The read is pass-through, not cached: alignment
// edits made since the last call are reflected.
func (m *Model) Settings() Settings {
	for k, v := range m.adapter.AlignSettings() {
		m.alignSettings[k] = v
	}

	display := m.displayImagePlane
	fixed := m.imagePlaneFixed
	alignment := make(map[string]any, len(m.alignSettings))
	for k, v := range m.alignSettings {
		alignment[k] = v
	}
	return Settings{
		DisplayImagePlane: &display,
		ImagePlaneFixed:   &fixed,
		Alignment:         alignment,
	}
}

// ApplySettings merges s into the stored settings and applies the side
// effects: plane visibility, coordinate mode, and — when present — the
// alignment sub-map forwarded to the adapter. Both booleans are required.
func (m *Model) ApplySettings(s Settings) error {
	if s.DisplayImagePlane == nil {
		return fmt.Errorf("%w: display-image-plane", ErrMissingKey)
	}
	if s.ImagePlaneFixed == nil {
		return fmt.Errorf("%w: image-plane-fixed", ErrMissingKey)
	}

	m.SetImagePlaneVisible(*s.DisplayImagePlane)
	m.SetImagePlaneFixed(*s.ImagePlaneFixed)

	if s.Alignment != nil {
		if err := m.adapter.SetAlignSettings(s.Alignment); err != nil {
			return fmt.Errorf("apply alignment settings: %w", err)
		}
		for k, v := range s.Alignment {
			m.alignSettings[k] = v
		}
	}
	return nil
}

// SaveSettings writes the current settings to a YAML file, creating parent
// directories as needed.
func (m *Model) SaveSettings(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create settings directory: %w", err)
	}
	data, err := yaml.Marshal(m.Settings())
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	return nil
}

// LoadSettings reads a YAML settings file and applies it.
func (m *Model) LoadSettings(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read settings file: %w", err)
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("parse settings file: %w", err)
	}
	return m.ApplySettings(s)
}
