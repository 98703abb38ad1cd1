package nuklear

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/keharriso/love-nuklear/draw"
	"github.com/keharriso/love-nuklear/style"
)

// Config configures a bridge context. It is usually read from nuklear.toml.
type Config struct {
	// Stacks bounds each per-kind style stack of the UI core.
	Stacks style.Capacities `toml:"stacks" yaml:"stacks" json:"stacks"`

	// MaxFonts and MaxImages bound the handle tables per frame.
	MaxFonts  int `toml:"max_fonts" yaml:"max_fonts" json:"max_fonts"`
	MaxImages int `toml:"max_images" yaml:"max_images" json:"max_images"`

	// Segment counts used when tessellating curves, circles and arcs.
	CurveSegments  int `toml:"curve_segments" yaml:"curve_segments" json:"curve_segments"`
	CircleSegments int `toml:"circle_segments" yaml:"circle_segments" json:"circle_segments"`

	// Debug logs style pushes dropped because a stack was full.
	Debug bool `toml:"debug" yaml:"debug" json:"debug"`
}

// DefaultConfig returns the limits the UI core is built with.
func DefaultConfig() Config {
	return Config{
		Stacks:         style.DefaultCapacities(),
		MaxFonts:       1024,
		MaxImages:      4096,
		CurveSegments:  draw.DefaultSegments,
		CircleSegments: draw.DefaultSegments,
	}
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	for _, k := range style.Kinds {
		if c.Stacks.Of(k) < 0 {
			return fmt.Errorf("invalid config: stacks.%s = %d, must not be negative", k, c.Stacks.Of(k))
		}
	}
	if c.MaxFonts <= 0 {
		return fmt.Errorf("invalid config: max_fonts = %d, must be positive", c.MaxFonts)
	}
	if c.MaxImages <= 0 {
		return fmt.Errorf("invalid config: max_images = %d, must be positive", c.MaxImages)
	}
	if c.CurveSegments < 1 {
		return fmt.Errorf("invalid config: curve_segments = %d, must be at least 1", c.CurveSegments)
	}
	if c.CircleSegments < 3 {
		return fmt.Errorf("invalid config: circle_segments = %d, must be at least 3", c.CircleSegments)
	}
	return nil
}

// LoadConfig loads the configuration from path.
// If the file doesn't exist, returns default config
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return config, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return config, fmt.Errorf("failed to load %s: %w", path, err)
	}

	return config, nil
}

// SaveConfig saves the configuration to path.
func SaveConfig(path string, config Config) error {
	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
