// Package scenario loads YAML descriptions of a grid and its agents and runs
// them headlessly, frame by frame, to completion.
//
// A scenario file looks like:
//
//	name: funnel
//	grid: {width: 20, height: 20, default_cost: 1.0, diagonals: false}
//	walls:
//	  - from: {x: 8, y: 0}
//	    to: {x: 8, y: 19}
//	openings: [{x: 8, y: 6}, {x: 8, y: 7}]
//	costs:
//	  - at: {x: 3, y: 3}
//	    cost: 5
//	agents:
//	  - {name: a, start: {x: 2, y: 2}, goal: {x: 10, y: 17}, speed: 1, search_budget: 100}
//	simulation: {dt: 0.1, max_frames: 2000}
//
// Walls are inclusive rectangles that are statically blocked; openings are
// then statically unblocked. Omitted agent fields take the navagent
// defaults; search_budget: 0 means unlimited.
package scenario
