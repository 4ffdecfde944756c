// Package gridgraph treats a navgrid.Grid as a graph of open cells, enabling
// region analysis and minimal-cost breaches between regions.
//
// What:
//
//   - GridGraph wraps a live *navgrid.Grid; nothing is copied.
//   - Labels and ConnectedComponents identify regions of open cells.
//   - RegionOf and Connected answer reachability questions in O(W×H).
//   - ExpandIsland computes the fewest walls to clear (0-1 BFS) to join two regions.
//
// Why:
//
//   - An unreachable goal makes a search expand its whole region before it
//     gives up; checking Connected first is much cheaper.
//   - Level design: find sealed rooms and the cheapest door to cut.
//
// Complexity:
//
//   - Labels, ConnectedComponents: O(W×H×d), Memory: O(W×H)  (d = 4 or 8).
//   - RegionOf, Connected:         O(W×H×d), a fresh labelling per call.
//   - ExpandIsland:                O(W×H×d), Memory: O(W×H).
//
// Options:
//
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors, corner contact counts).
//   - GridOptions.Mode: StaticOnly (terrain) or AnyBlocked (terrain and occupants).
//
// Errors:
//
//   - ErrNilGrid: NewGridGraph was given a nil grid.
//   - ErrComponentIndex: requested component index out of range.
//   - ErrNoPath: no conversion path exists between specified components.
package gridgraph
