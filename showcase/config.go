package showcase

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/sean-bowman/portfolio/core"
)

// DisplayConfig describes one showcase entry. The list is supplied before
// any viewer exists and is immutable thereafter.
type DisplayConfig struct {
	Name        string `toml:"name"`
	Description string `toml:"description"`
	AssetPath   string `toml:"asset"`  // empty → placeholder shape
	AccentColor string `toml:"accent"` // "#rrggbb"
	Category    string `toml:"category"`
}

// Accent parses the configured accent color, falling back to white when the
// value is empty or malformed.
func (c DisplayConfig) Accent() core.Color {
	if c.AccentColor == "" {
		return core.ColorWhite
	}
	col, err := core.ParseHexColor(c.AccentColor)
	if err != nil {
		return core.ColorWhite
	}
	return col
}

type configFile struct {
	Displays []DisplayConfig `toml:"display"`
}

// ParseConfig decodes a TOML display list:
//
//	[[display]]
//	name = "Orbiter"
//	description = "Flight model"
//	asset = "assets/orbiter.glb"
//	accent = "#4a90d9"
//	category = "simulation"
func ParseConfig(data []byte) ([]DisplayConfig, error) {
	var cf configFile
	if err := toml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if len(cf.Displays) == 0 {
		return nil, fmt.Errorf("config has no [[display]] entries")
	}
	return cf.Displays, nil
}

// LoadConfig reads and decodes a TOML display list from disk.
func LoadConfig(path string) ([]DisplayConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %q: %w", path, err)
	}
	return ParseConfig(data)
}
