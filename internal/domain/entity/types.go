package entity

import "math"

// EntityID is a unique identifier for a character
type EntityID uint32

// TileType represents the type of an arena tile
type TileType int

const (
	TileEmpty TileType = iota
	TileWall
	TilePit
)

// Tile represents a single cell of the arena floor plan
type Tile struct {
	Type  TileType
	Solid bool
}

// Stage is the arena floor plan on the X/Z ground plane.
// Tiles are indexed [z][x]; the floor sits at height 0 except over pits.
type Stage struct {
	Width    int     // tiles along X
	Depth    int     // tiles along Z
	TileSize float64 // world units per tile
	Tiles    [][]Tile
	Spawn    Vec3
}

// GetTile returns the tile at the given tile coordinates.
// Everything outside the arena is wall.
func (s *Stage) GetTile(tx, tz int) Tile {
	if tx < 0 || tx >= s.Width || tz < 0 || tz >= s.Depth {
		return Tile{Type: TileWall, Solid: true}
	}
	return s.Tiles[tz][tx]
}

// TileAt returns the tile under the world position (x, z)
func (s *Stage) TileAt(x, z float64) Tile {
	return s.GetTile(int(math.Floor(x/s.TileSize)), int(math.Floor(z/s.TileSize)))
}

// IsSolidAt checks if the tile under the world position is solid
func (s *Stage) IsSolidAt(x, z float64) bool {
	return s.TileAt(x, z).Solid
}

// FloorHeight returns the floor height under (x, z), or -Inf over a pit.
func (s *Stage) FloorHeight(x, z float64) float64 {
	if s.TileAt(x, z).Type == TilePit {
		return math.Inf(-1)
	}
	return 0
}

// Size returns the arena extent in world units
func (s *Stage) Size() (w, d float64) {
	return float64(s.Width) * s.TileSize, float64(s.Depth) * s.TileSize
}
