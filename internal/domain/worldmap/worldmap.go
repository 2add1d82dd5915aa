// Package worldmap defines map content and its keyed database.
package worldmap

import (
	"github.com/antaresengine/antares/internal/domain/types"
	apperr "github.com/antaresengine/antares/internal/errors"
)

// TerrainType names a tile's ground terrain.
type TerrainType string

const (
	TerrainGrass    TerrainType = "grass"
	TerrainDirt     TerrainType = "dirt"
	TerrainStone    TerrainType = "stone"
	TerrainWater    TerrainType = "water"
	TerrainSwamp    TerrainType = "swamp"
	TerrainDesert   TerrainType = "desert"
	TerrainSnow     TerrainType = "snow"
	TerrainForest   TerrainType = "forest"
	TerrainMountain TerrainType = "mountain"
)

// WallType names the wall feature on a tile edge.
type WallType string

const (
	WallNone   WallType = "none"
	WallNormal WallType = "normal"
	WallDoor   WallType = "door"
	WallTorch  WallType = "torch"
)

// TileVisualMetadata carries optional per-tile rendering hints. Every field
// is optional so tiles authored before the visual layer existed deserialize
// to all-nil metadata. Interpretation belongs to the renderer.
type TileVisualMetadata struct {
	Height             *float32    `json:"height,omitempty"`
	WidthX             *float32    `json:"width_x,omitempty"`
	WidthZ             *float32    `json:"width_z,omitempty"`
	ColorTint          *[3]float32 `json:"color_tint,omitempty"`
	Scale              *float32    `json:"scale,omitempty"`
	VerticalOffset     *float32    `json:"vertical_offset,omitempty"`
	GrassDensity       *string     `json:"grass_density,omitempty"`
	TreeType           *string     `json:"tree_type,omitempty"`
	RockVariant        *string     `json:"rock_variant,omitempty"`
	WaterFlowDirection *string     `json:"water_flow_direction,omitempty"`
	FoliageDensity     *float32    `json:"foliage_density,omitempty"`
	SnowCoverage       *float32    `json:"snow_coverage,omitempty"`
}

// Tile is one grid cell of a map.
type Tile struct {
	Terrain   TerrainType `json:"terrain"`
	WallType  WallType    `json:"wall_type"`
	Blocked   bool        `json:"blocked"`
	IsSpecial bool        `json:"is_special"`
	IsDark    bool        `json:"is_dark"`

	// Visual is optional renderer metadata; absent in legacy content
	Visual TileVisualMetadata `json:"visual,omitempty"`
}

// Definition is a map loaded from content files. Tiles are stored in
// row-major order (y*width + x).
type Definition struct {
	ID          types.MapID `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Width       uint32      `json:"width"`
	Height      uint32      `json:"height"`
	Tiles       []Tile      `json:"tiles"`
}

// TileAt returns the tile at a position, or false when out of bounds.
func (d *Definition) TileAt(p types.Position) (Tile, bool) {
	if p.X < 0 || p.Y < 0 || p.X >= int(d.Width) || p.Y >= int(d.Height) {
		return Tile{}, false
	}
	return d.Tiles[p.Y*int(d.Width)+p.X], true
}

// Validate checks the definition's internal invariants.
func (d *Definition) Validate() error {
	if d.Name == "" {
		return apperr.Validationf("map %d has an empty name", d.ID)
	}
	if d.Width == 0 || d.Height == 0 {
		return apperr.Validationf("map %d has zero dimensions", d.ID)
	}
	if len(d.Tiles) != int(d.Width*d.Height) {
		return apperr.Validationf("map %d has %d tiles, expected %d", d.ID, len(d.Tiles), d.Width*d.Height)
	}
	return nil
}
