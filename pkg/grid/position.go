// pkg/grid/position.go
package grid

import "go-wave-tick/pkg/utils"

// Position is a cell on a square grid in (Row, Col) coordinates.
type Position struct {
	Row, Col int
}

// NeighborDirections lists the 8 adjacent offsets starting from North and going clockwise.
// Neighbor enumeration order follows this slice.
var NeighborDirections = []Position{
	{Row: -1, Col: 0}, {Row: -1, Col: 1}, {Row: 0, Col: 1}, {Row: 1, Col: 1},
	{Row: 1, Col: 0}, {Row: 1, Col: -1}, {Row: 0, Col: -1}, {Row: -1, Col: -1},
}

// AllPossibleNeighbors returns every adjacent position, on the map or not.
func (p Position) AllPossibleNeighbors() []Position {
	out := make([]Position, 0, len(NeighborDirections))
	for _, d := range NeighborDirections {
		out = append(out, p.Add(d))
	}
	return out
}

// Add returns the sum of two positions.
func (p Position) Add(other Position) Position {
	return Position{Row: p.Row + other.Row, Col: p.Col + other.Col}
}

// Distance is the number of moves between two cells when diagonals are allowed.
func (p Position) Distance(to Position) int {
	dr := utils.Abs(p.Row - to.Row)
	dc := utils.Abs(p.Col - to.Col)
	return max(dr, dc)
}
