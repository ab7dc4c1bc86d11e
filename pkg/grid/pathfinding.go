// pkg/grid/pathfinding.go
package grid

import (
	"container/heap"
)

// StepFunc reports whether a single move from one cell to an adjacent one is allowed.
type StepFunc func(from, to Position) bool

// AStar finds the cheapest path from start to goal. Every move costs stepCost.
// It returns nil when goal is unreachable.
func AStar(start, goal Position, m *Map, canStep StepFunc, stepCost int) *Path {
	if !m.IsPassable(start) || !m.IsPassable(goal) {
		return nil
	}
	pq := &PriorityQueue{}
	heap.Init(pq)
	heap.Push(pq, &Node{Pos: start, Cost: 0, Priority: start.Distance(goal) * stepCost})
	costSoFar := map[Position]int{start: 0}
	closed := make(map[Position]bool)
	for pq.Len() > 0 {
		current := heap.Pop(pq).(*Node)
		if current.Pos == goal {
			return reconstructPath(current)
		}
		if closed[current.Pos] {
			continue
		}
		closed[current.Pos] = true
		for _, neighbor := range m.Neighbors(current.Pos) {
			if !m.IsPassable(neighbor) || closed[neighbor] {
				continue
			}
			if canStep != nil && !canStep(current.Pos, neighbor) {
				continue
			}
			newCost := current.Cost + stepCost
			if old, exists := costSoFar[neighbor]; !exists || newCost < old {
				costSoFar[neighbor] = newCost
				heap.Push(pq, &Node{
					Pos:      neighbor,
					Cost:     newCost,
					Priority: newCost + neighbor.Distance(goal)*stepCost,
					Parent:   current,
					seq:      pq.next(),
				})
			}
		}
	}
	return nil
}

// PriorityQueue for A*. Equal priorities pop in insertion order.
type PriorityQueue struct {
	items []*Node
	count int
}

type Node struct {
	Pos      Position
	Cost     int
	Priority int
	Parent   *Node
	seq      int
}

func (pq *PriorityQueue) next() int {
	pq.count++
	return pq.count
}

func (pq PriorityQueue) Len() int { return len(pq.items) }
func (pq PriorityQueue) Less(i, j int) bool {
	if pq.items[i].Priority == pq.items[j].Priority {
		return pq.items[i].seq < pq.items[j].seq
	}
	return pq.items[i].Priority < pq.items[j].Priority
}
func (pq PriorityQueue) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }
func (pq *PriorityQueue) Push(x any) {
	pq.items = append(pq.items, x.(*Node))
}
func (pq *PriorityQueue) Pop() any {
	old := pq.items
	n := len(old)
	item := old[n-1]
	pq.items = old[0 : n-1]
	return item
}

func reconstructPath(node *Node) *Path {
	cost := node.Cost
	cells := []Position{}
	for node != nil {
		cells = append(cells, node.Pos)
		node = node.Parent
	}
	for i, j := 0, len(cells)-1; i < j; i, j = i+1, j-1 {
		cells[i], cells[j] = cells[j], cells[i]
	}
	return &Path{Cells: cells, Cost: cost}
}
