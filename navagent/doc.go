// Package navagent drives a moving entity across a navgrid.Grid along paths
// produced by pathfind.
//
// An Agent occupies exactly one cell at a time and keeps that cell
// dynamically blocked, so other agents route around it. Each Update:
//
//  1. does nothing when the agent is within its acceptable distance of the goal;
//  2. recomputes the path when it is dirty (goal or position changed, a cell
//     ahead was blocked by someone else, or a budget-truncated path ran out);
//  3. walks speed×dt cells along the waypoints, moving its block from cell to
//     cell as it crosses boundaries and refusing to enter a cell that someone
//     else has blocked in the meantime;
//  4. after moving, leases a decaying temporary cost on the next ⌊4×speed⌋
//     waypoints (4×speed − i for the i-th) and watches the OnBlock signal of
//     every upcoming waypoint.
//
// The leases are a soft local-avoidance signal: other agents searching
// through the same cells see them as more expensive and tend to pick other
// routes. Leases and watches are owned by the agent and dropped on every
// recompute, goal or position change, and on Close.
//
// Errors:
//
//   - ErrNilGrid:          New was given a nil grid.
//   - ErrOptionViolation:  an option received an invalid value.
//   - ErrClosed:           the agent was used after Close.
//   - navgrid errors (ErrOutOfBounds, ErrOverUnblock) are wrapped and returned.
//
// An unreachable goal is not an error: the agent walks the best-effort path
// and stops. Complete reports whether its last search reached the goal.
package navagent
