package system

import (
	"github.com/younwookim/swordstep/internal/domain/entity"
	"github.com/younwookim/swordstep/internal/infrastructure/config"
)

// LoadStage converts a StageConfig into a Stage entity.
// Rows are read along Z, characters along X. The widest row sets the width;
// shorter rows are padded with empty floor.
func LoadStage(cfg *config.StageConfig) *entity.Stage {
	depth := len(cfg.Layout)
	width := 0
	for _, row := range cfg.Layout {
		if n := len([]rune(row)); n > width {
			width = n
		}
	}

	tiles := make([][]entity.Tile, depth)
	for z, row := range cfg.Layout {
		tiles[z] = make([]entity.Tile, width)
		for x, char := range []rune(row) {
			mapping, ok := cfg.TileMapping[string(char)]
			if !ok {
				continue
			}

			var tileType entity.TileType
			switch mapping.Type {
			case "wall":
				tileType = entity.TileWall
			case "pit":
				tileType = entity.TilePit
			default:
				tileType = entity.TileEmpty
			}

			tiles[z][x] = entity.Tile{
				Type:  tileType,
				Solid: mapping.Solid,
			}
		}
	}

	return &entity.Stage{
		Width:    width,
		Depth:    depth,
		TileSize: cfg.TileSize,
		Tiles:    tiles,
		Spawn:    entity.Vec3{X: cfg.Spawn.X, Z: cfg.Spawn.Z},
	}
}
