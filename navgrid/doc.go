// Package navgrid implements a mutable navigation grid: a dense rectangle of
// cells with per-cell traversal cost, reference-counted blocking, reactive
// neighbour links and scoped cost leases.
//
// What:
//
//   - Grid owns width×height Cells in one row-major slice; cells are never
//     added, removed or moved after New returns.
//   - Cell tracks a base cost, a temporary cost (the sum of active leases),
//     and two independent block counters: dynamic (occupants) and static (walls).
//     A cell is blocked when either counter is non-zero.
//   - Cell neighbour links are computed on first use and kept live through
//     subscriptions to the block/unblock signals of the surrounding cells.
//   - Lease adds a cost delta to one cell and refunds it exactly once.
//
// Diagonals:
//
//	With WithDiagonals(true) every cell has 8 neighbour slots. A diagonal slot
//	at offset (dx,dy) is linked only when the diagonal cell and both flanking
//	orthogonal cells (dx,0) and (0,dy) are unblocked, so paths never cut a
//	blocked corner.
//
// Signals:
//
//	Each Cell exposes OnBlock, OnUnblock, OnStaticBlock, OnStaticUnblock and
//	OnCostChange. Block signals fire only on transitions of the combined
//	blocked state (false→true, true→false); repeated Block calls on an already
//	blocked cell are silent. Dispatch is synchronous and reentrant.
//
// Out of bounds:
//
//	Grid.Blocked and Grid.StaticallyBlocked report true for any coordinate
//	outside the grid; the search and the neighbour gating rely on this.
//
// Errors:
//
//   - ErrEmptyGrid:    width or height below 1.
//   - ErrBadCost:      negative, NaN or infinite default cost.
//   - ErrOutOfBounds:  coordinate outside the grid.
//   - ErrOverUnblock:  Unblock/StaticUnblock on a counter that is already zero.
//
// Concurrency: none. A Grid and everything reachable from it belong to one
// logical thread (typically the frame loop).
//
// Complexity:
//
//   - New:            O(W×H) time and memory.
//   - Block/Unblock:  O(s) where s is the number of subscribers notified.
//   - Neighbor:       O(1) amortised; first access per cell subscribes to up to 8 cells.
package navgrid
