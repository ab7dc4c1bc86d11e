package grid

// Path is an ordered walk from Cells[0] (start) to Cells[len-1] (goal).
// Cost is the sum of per-step movement cost.
type Path struct {
	Cells []Position
	Cost  int
}

// Start returns the first cell of the path.
func (p *Path) Start() Position {
	return p.Cells[0]
}

// Goal returns the last cell of the path.
func (p *Path) Goal() Position {
	return p.Cells[len(p.Cells)-1]
}

// Steps is the number of moves along the path.
func (p *Path) Steps() int {
	if len(p.Cells) == 0 {
		return 0
	}
	return len(p.Cells) - 1
}

// Suffix returns the tail of the path starting at offset i. Cost drops by stepCost per skipped move.
func (p *Path) Suffix(i, stepCost int) *Path {
	cells := make([]Position, len(p.Cells)-i)
	copy(cells, p.Cells[i:])
	return &Path{Cells: cells, Cost: p.Cost - i*stepCost}
}
