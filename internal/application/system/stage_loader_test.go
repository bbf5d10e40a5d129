package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/swordstep/internal/domain/entity"
	"github.com/younwookim/swordstep/internal/infrastructure/config"
)

func TestLoadStage(t *testing.T) {
	t.Run("loads basic stage", func(t *testing.T) {
		cfg := &config.StageConfig{
			TileSize: 2,
			Spawn:    config.PositionConfig{X: 3, Z: 3},
			Layout: []string{
				"###",
				"#.#",
				"###",
			},
			TileMapping: map[string]config.TileMappingConfig{
				"#": {Type: "wall", Solid: true},
				".": {Type: "floor", Solid: false},
			},
		}

		stage := LoadStage(cfg)

		require.NotNil(t, stage)
		assert.Equal(t, 3, stage.Width)
		assert.Equal(t, 3, stage.Depth)
		assert.Equal(t, 2.0, stage.TileSize)
		assert.Equal(t, entity.Vec3{X: 3, Z: 3}, stage.Spawn)
	})

	t.Run("maps wall tiles correctly", func(t *testing.T) {
		cfg := &config.StageConfig{
			TileSize: 1,
			Layout:   []string{"##", "##"},
			TileMapping: map[string]config.TileMappingConfig{
				"#": {Type: "wall", Solid: true},
			},
		}

		stage := LoadStage(cfg)

		for z := 0; z < 2; z++ {
			for x := 0; x < 2; x++ {
				tile := stage.GetTile(x, z)
				assert.Equal(t, entity.TileWall, tile.Type)
				assert.True(t, tile.Solid)
			}
		}
	})

	t.Run("maps pit tiles", func(t *testing.T) {
		cfg := &config.StageConfig{
			TileSize: 1,
			Layout:   []string{".O"},
			TileMapping: map[string]config.TileMappingConfig{
				".": {Type: "floor"},
				"O": {Type: "pit"},
			},
		}

		stage := LoadStage(cfg)

		assert.Equal(t, entity.TileEmpty, stage.GetTile(0, 0).Type)
		assert.Equal(t, entity.TilePit, stage.GetTile(1, 0).Type)
		assert.Equal(t, 0.0, stage.FloorHeight(0.5, 0.5))
		assert.True(t, stage.FloorHeight(1.5, 0.5) < -1e300)
	})

	t.Run("handles unknown tile mapping", func(t *testing.T) {
		cfg := &config.StageConfig{
			TileSize:    1,
			Layout:      []string{"?"},
			TileMapping: map[string]config.TileMappingConfig{},
		}

		stage := LoadStage(cfg)

		tile := stage.GetTile(0, 0)
		assert.Equal(t, entity.TileEmpty, tile.Type)
		assert.False(t, tile.Solid)
	})

	t.Run("pads ragged rows", func(t *testing.T) {
		cfg := &config.StageConfig{
			TileSize: 1,
			Layout:   []string{"####", "#"},
			TileMapping: map[string]config.TileMappingConfig{
				"#": {Type: "wall", Solid: true},
			},
		}

		stage := LoadStage(cfg)

		assert.Equal(t, 4, stage.Width)
		assert.Equal(t, 2, stage.Depth)
		assert.Equal(t, entity.TileEmpty, stage.GetTile(3, 1).Type)
	})

	t.Run("loads shipped arena", func(t *testing.T) {
		stageCfg, err := config.NewLoader("../../../cmd/game/configs").LoadStage("arena")
		require.NoError(t, err)

		stage := LoadStage(stageCfg)

		assert.Equal(t, 20, stage.Width)
		assert.Equal(t, 13, stage.Depth)
		assert.False(t, stage.IsSolidAt(stage.Spawn.X, stage.Spawn.Z))
	})
}
