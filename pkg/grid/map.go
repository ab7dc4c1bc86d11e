// pkg/grid/map.go
package grid

import (
	"math"

	"golang.org/x/image/math/f64"
)

type Tile struct {
	Passable bool
}

// Map is a rectangular square-cell grid. Cells missing from Tiles are off the map.
type Map struct {
	Tiles    map[Position]Tile
	Rows     int
	Cols     int
	CellSize float64
}

// NewMap builds a fully passable rows x cols map with square cells of cellSize pixels.
func NewMap(rows, cols int, cellSize float64) *Map {
	tiles := make(map[Position]Tile, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			tiles[Position{Row: r, Col: c}] = Tile{Passable: true}
		}
	}
	return &Map{
		Tiles:    tiles,
		Rows:     rows,
		Cols:     cols,
		CellSize: cellSize,
	}
}

func (m *Map) Contains(p Position) bool {
	_, exists := m.Tiles[p]
	return exists
}

func (m *Map) IsPassable(p Position) bool {
	if tile, exists := m.Tiles[p]; exists {
		return tile.Passable
	}
	return false
}

func (m *Map) SetPassable(p Position, passable bool) {
	if tile, exists := m.Tiles[p]; exists {
		tile.Passable = passable
		m.Tiles[p] = tile
	}
}

// Neighbors returns the adjacent cells that exist on the map, in NeighborDirections order.
func (m *Map) Neighbors(p Position) []Position {
	valid := make([]Position, 0, len(NeighborDirections))
	for _, n := range p.AllPossibleNeighbors() {
		if m.Contains(n) {
			valid = append(valid, n)
		}
	}
	return valid
}

// Pixels returns the top-left pixel corner of a cell.
func (m *Map) Pixels(p Position) f64.Vec2 {
	return f64.Vec2{float64(p.Col) * m.CellSize, float64(p.Row) * m.CellSize}
}

// Center returns the pixel center of a cell.
func (m *Map) Center(p Position) f64.Vec2 {
	tl := m.Pixels(p)
	return f64.Vec2{tl[0] + m.CellSize/2, tl[1] + m.CellSize/2}
}

// PositionFromPixels maps a pixel coordinate to the cell containing it.
func (m *Map) PositionFromPixels(pt f64.Vec2) Position {
	return Position{
		Row: int(math.Floor(pt[1] / m.CellSize)),
		Col: int(math.Floor(pt[0] / m.CellSize)),
	}
}

// BorderPolygon returns the cell's border corners clockwise from the top-left, not closed.
func (m *Map) BorderPolygon(p Position) []f64.Vec2 {
	tl := m.Pixels(p)
	s := m.CellSize
	return []f64.Vec2{
		{tl[0], tl[1]},
		{tl[0] + s, tl[1]},
		{tl[0] + s, tl[1] + s},
		{tl[0], tl[1] + s},
	}
}
