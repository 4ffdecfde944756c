package gridgraph

import (
	"container/list"
)

// ExpandIsland finds the fewest walls to clear so that component srcComp
// joins component dstComp, as identified by ConnectedComponents(). Each
// wall on the way costs 1; open cells of any region cost 0.
// Returns the sequence of cell indices (row-major) from a srcComp cell to a
// dstComp cell and the number of walls on it.
//
// Behavior:
//  1. Validate component indices.
//  2. Multi-source 0-1 BFS from all srcComp cells:
//     • Moving into an open cell → cost 0
//     • Moving into a wall       → cost 1
//  3. Stop when any dstComp cell is dequeued.
//  4. Reconstruct path via predecessors.
//
// Complexity: O(W·H·d). Memory: O(W·H) for distance and prev pointers.
func (gg *GridGraph) ExpandIsland(srcComp, dstComp int) (path []int, cost int, err error) {
	labels, comps := gg.label()
	if srcComp < 0 || srcComp >= len(comps) || dstComp < 0 || dstComp >= len(comps) {
		return nil, 0, ErrComponentIndex
	}

	n := gg.Width * gg.Height
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	// 0-1 BFS: deque processes cost0 at front, cost1 at back
	dq := list.New()
	for _, i := range comps[srcComp] {
		dist[i] = 0
		dq.PushBack(i)
	}

	target := -1
	for dq.Len() > 0 {
		u := dq.Remove(dq.Front()).(int)
		if labels[u] == dstComp {
			target = u
			break
		}
		up := gg.Coordinate(u)
		for _, d := range gg.neighborOffsets {
			vp := up.Add(d)
			if !gg.InBounds(vp) {
				continue
			}
			v := gg.Index(vp)
			step := 0
			if labels[v] < 0 {
				step = 1
			}
			nd := dist[u] + step
			if nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	if target < 0 {
		return nil, 0, ErrNoPath
	}
	// Reconstruct path
	for at := target; at >= 0; at = prev[at] {
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, dist[target], nil
}
