package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spaghettifunk/ambientcg/math"
)

/** @brief The configuration for a material loader. */
type Config struct {
	/** @brief The relative base path materials are resolved under. */
	MaterialsPath string `toml:"materials_path"`
	/** @brief Whether a missing resolution falls back to the next smaller available one. */
	ResolutionNegotiation bool `toml:"resolution_negotiation"`
	/** @brief The metallic factor applied to every built material. */
	Metallic float32 `toml:"metallic"`
	/** @brief The perceptual roughness factor applied to every built material. */
	PerceptualRoughness float32 `toml:"perceptual_roughness"`
}

// Default returns the configuration used when no file is provided: materials
// under "materials", negotiation on, both factors at 1 so texture data passes
// through unscaled.
func Default() *Config {
	return &Config{
		MaterialsPath:         "materials",
		ResolutionNegotiation: true,
		Metallic:              1.0,
		PerceptualRoughness:   1.0,
	}
}

// Load reads a TOML configuration file. Keys absent from the file keep their
// default value; factor fields are clamped to [0, 1].
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.clamp()
	return cfg, nil
}

func (c *Config) clamp() {
	c.Metallic = math.Clamp(c.Metallic, 0.0, 1.0)
	c.PerceptualRoughness = math.Clamp(c.PerceptualRoughness, 0.0, 1.0)
}
