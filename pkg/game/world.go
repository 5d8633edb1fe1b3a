package game

import (
	"encoding/json"
	"fmt"
)

// PlayerID uniquely identifies a player within a session.
type PlayerID int

// BeeID uniquely identifies a bee within a session. IDs are never reused
// during a run.
type BeeID int

// Direction represents a cardinal movement on the world grid.
// The zero value means "no move".
type Direction string

const (
	DirectionNone  Direction = ""
	DirectionNorth Direction = "North"
	DirectionEast  Direction = "East"
	DirectionSouth Direction = "South"
	DirectionWest  Direction = "West"
)

// Position is a tile coordinate. X grows eastward and Y grows northward;
// (0, 0) is the bottom-left corner of the world.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Step returns the position one tile away in the given direction.
// Stepping with DirectionNone returns the position unchanged.
func (p Position) Step(dir Direction) Position {
	switch dir {
	case DirectionNorth:
		return Position{X: p.X, Y: p.Y + 1}
	case DirectionEast:
		return Position{X: p.X + 1, Y: p.Y}
	case DirectionSouth:
		return Position{X: p.X, Y: p.Y - 1}
	case DirectionWest:
		return Position{X: p.X - 1, Y: p.Y}
	}
	return p
}

// Tile represents a kind of terrain on the world grid.
type Tile int

const (
	TileGrass Tile = iota
	TileGarden
	TileNeutral
	TileRoad
	TileBlock
	TileSpawnPoint
)

func (t Tile) String() string {
	switch t {
	case TileGrass:
		return "Grass"
	case TileGarden:
		return "Garden"
	case TileNeutral:
		return "Neutral"
	case TileRoad:
		return "Road"
	case TileBlock:
		return "Block"
	case TileSpawnPoint:
		return "SpawnPoint"
	}
	return "Unknown"
}

// ParseTile parses a tile name as it appears on the wire.
func ParseTile(name string) (Tile, error) {
	switch name {
	case "Grass":
		return TileGrass, nil
	case "Garden":
		return TileGarden, nil
	case "Neutral":
		return TileNeutral, nil
	case "Road":
		return TileRoad, nil
	case "Block":
		return TileBlock, nil
	case "SpawnPoint":
		return TileSpawnPoint, nil
	}
	return TileGrass, fmt.Errorf("unknown tile: %s", name)
}

// IsPassable reports whether bees can move through this tile.
func (t Tile) IsPassable() bool {
	return t != TileBlock
}

// World is the immutable game map. It is built once during registration
// and never changes for the rest of the session.
type World struct {
	width  int
	height int
	tiles  []Tile
}

// NewWorld creates a world from a row-major tile slice, with the first
// tile at position (0, 0).
func NewWorld(width, height int, tiles []Tile) (*World, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("world dimensions (%d, %d) must be positive", width, height)
	}
	if len(tiles) != width*height {
		return nil, fmt.Errorf("world dimensions (%d, %d) do not match map length %d", width, height, len(tiles))
	}
	w := &World{
		width:  width,
		height: height,
		tiles:  make([]Tile, len(tiles)),
	}
	copy(w.tiles, tiles)
	return w, nil
}

// Width returns the width of the world in tiles.
func (w *World) Width() int {
	return w.width
}

// Height returns the height of the world in tiles.
func (w *World) Height() int {
	return w.height
}

// Contains reports whether the position lies within the world bounds.
// A position is valid only when both coordinates are in range.
func (w *World) Contains(p Position) bool {
	return p.X >= 0 && p.X < w.width && p.Y >= 0 && p.Y < w.height
}

// TileAt returns the tile at the given position. Positions outside the
// world bounds never resolve to a tile.
func (w *World) TileAt(p Position) (Tile, error) {
	if !w.Contains(p) {
		return TileGrass, fmt.Errorf("position (%d, %d) is outside the %dx%d world", p.X, p.Y, w.width, w.height)
	}
	return w.tiles[p.X+p.Y*w.width], nil
}

// UnmarshalJSON decodes the world object from a registration payload.
func (w *World) UnmarshalJSON(b []byte) error {
	var data struct {
		Width  int      `json:"width"`
		Height int      `json:"height"`
		Map    []string `json:"map"`
	}
	if err := json.Unmarshal(b, &data); err != nil {
		return fmt.Errorf("failed to decode world: %v", err)
	}
	tiles := make([]Tile, len(data.Map))
	for i, name := range data.Map {
		tile, err := ParseTile(name)
		if err != nil {
			return fmt.Errorf("failed to decode world: %v", err)
		}
		tiles[i] = tile
	}
	world, err := NewWorld(data.Width, data.Height, tiles)
	if err != nil {
		return fmt.Errorf("failed to decode world: %v", err)
	}
	*w = *world
	return nil
}
