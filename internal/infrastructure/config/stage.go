package config

// StageConfig is the root config for stages/<name>.yaml
type StageConfig struct {
	ID          string                       `yaml:"id"`
	Name        string                       `yaml:"name"`
	TileSize    float64                      `yaml:"tile_size"`
	Spawn       PositionConfig               `yaml:"spawn"`
	Layout      []string                     `yaml:"layout"`
	TileMapping map[string]TileMappingConfig `yaml:"tile_mapping"`
}

// PositionConfig is a ground-plane position in world units
type PositionConfig struct {
	X float64 `yaml:"x"`
	Z float64 `yaml:"z"`
}

type TileMappingConfig struct {
	Type  string `yaml:"type"`
	Solid bool   `yaml:"solid"`
}
