package gridgraph

import "sort"

// ConnectedComponents finds all contiguous regions of passable cells in g,
// using the same orthogonal connectivity as the node links.
// Returns a slice of components; each component lists its coordinates in
// row-major order (Coordinate.Less), and components are ordered by their
// first cell.
//
// Time:   O(P log P) over the P nodes of g.
// Memory: O(P) for visited flags and output.
func (g *Graph) ConnectedComponents() [][]Coordinate {
	seen := make([]bool, len(g.Nodes))
	var comps [][]Coordinate

	for i0 := range g.Nodes {
		if seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		var comp []Coordinate

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, g.Nodes[u].Coord)
			for _, v := range g.Nodes[u].Neighbours {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		sort.Slice(comp, func(i, j int) bool { return comp[i].Less(comp[j]) })
		comps = append(comps, comp)
	}
	return comps
}

// ComponentLabels maps every node coordinate to the index of its component
// in ConnectedComponents.
func (g *Graph) ComponentLabels() map[Coordinate]int {
	labels := make(map[Coordinate]int, len(g.Nodes))
	for id, comp := range g.ConnectedComponents() {
		for _, c := range comp {
			labels[c] = id
		}
	}
	return labels
}
