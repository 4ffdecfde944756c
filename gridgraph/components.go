package gridgraph

import "github.com/katalvlaran/gridnav/geom"

// Labels assigns every open cell the number of its region, in row-major
// discovery order. Walls get -1.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H).
func (gg *GridGraph) Labels() []int {
	labels, _ := gg.label()
	return labels
}

// ConnectedComponents finds all contiguous regions of open cells according
// to gg.Conn. Each component is a slice of row-major cell indices in BFS
// order from its first cell; component i matches label i from Labels.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for labels and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	_, comps := gg.label()
	return comps
}

// RegionOf returns the region label of p, or -1 for walls and
// out-of-bounds positions.
func (gg *GridGraph) RegionOf(p geom.Point) int {
	if !gg.InBounds(p) {
		return -1
	}
	return gg.Labels()[gg.Index(p)]
}

// Connected reports whether a and b are open cells of the same region.
func (gg *GridGraph) Connected(a, b geom.Point) bool {
	if !gg.InBounds(a) || !gg.InBounds(b) {
		return false
	}
	labels := gg.Labels()
	la := labels[gg.Index(a)]
	return la >= 0 && la == labels[gg.Index(b)]
}

func (gg *GridGraph) label() ([]int, [][]int) {
	total := gg.Width * gg.Height
	labels := make([]int, total)
	for i := range labels {
		labels[i] = -1
	}
	var comps [][]int

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			p := geom.Pt(x, y)
			i0 := gg.Index(p)
			if labels[i0] >= 0 || gg.Wall(p) {
				continue
			}
			// BFS to collect component
			id := len(comps)
			queue := []int{i0}
			labels[i0] = id
			var comp []int

			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				comp = append(comp, u)
				up := gg.Coordinate(u)
				for _, d := range gg.neighborOffsets {
					vp := up.Add(d)
					if !gg.InBounds(vp) || gg.Wall(vp) {
						continue
					}
					vi := gg.Index(vp)
					if labels[vi] < 0 {
						labels[vi] = id
						queue = append(queue, vi)
					}
				}
			}
			comps = append(comps, comp)
		}
	}
	return labels, comps
}
