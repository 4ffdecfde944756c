// Package pathfind runs a best-first (A*-style) search over a navgrid.Grid
// and returns an ordered list of waypoints.
//
// What:
//
//   - Search is a one-shot query from a start cell to a goal cell.
//   - The search runs lazily on the first Path call and the result is cached
//     for the lifetime of the Search; later calls return the same slice.
//   - When the goal cannot be reached (walled off, occupied, or beyond the
//     node budget) the result is a best-effort path to the closest node
//     visited and Complete reports false. This is not an error.
//
// Algorithm:
//
//  1. Seed the open list with the start cell at cost 0.
//  2. Pop the node with the lowest estimate = costToArrive + Manhattan(goal).
//     Ties go to the most recently inserted node, which keeps the search
//     diving along straight corridors on uniform grids.
//  3. Move it to the closed set, remember it if it is the closest to the goal
//     (straight-line distance) seen so far.
//  4. Stop with success if it is the goal or lies within MinAcceptableDistance.
//  5. Otherwise relax every linked neighbour not yet closed:
//     cost = parent.cost + neighbour.TotalCost() × (1.4 if diagonal else 1).
//     An open entry that is strictly cheaper is kept; otherwise it is replaced.
//  6. Closed nodes are never reopened.
//
// Waypoints carry the cell position and the step cost BaseCost × (1.4 if the
// step was diagonal). The first waypoint is the start with cost 0.
//
// Options:
//
//   - WithMinAcceptableDistance(d): success radius around the goal (d ≥ 0).
//   - WithMaxNodes(n): expansion budget; n ≤ 0 means unlimited.
//   - WithOnExpand(fn): hook called for every expanded node.
//
// Errors:
//
//   - ErrNilGrid:         the grid is nil.
//   - ErrOptionViolation: an option received an invalid value.
//
// Complexity:
//
//   - Time:   O(N log N) where N is the number of nodes pushed (≤ 8 per expansion).
//   - Memory: O(N) for the open heap, the open index and the closed set.
package pathfind
