package scenario_test

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/gridnav/scenario"
)

// ExampleRun simulates a single agent crossing an open room.
func ExampleRun() {
	sc, _ := scenario.Parse([]byte(`
name: room
grid: {width: 6, height: 6}
agents:
  - {name: solo, start: {x: 0, y: 0}, goal: {x: 5, y: 5}, speed: 2}
simulation: {dt: 0.5, max_frames: 100}
`))
	report, _ := scenario.Run(context.Background(), sc, log.New(io.Discard))

	a := report.Agents[0]
	fmt.Println("frames:", report.Frames)
	fmt.Println("reached:", a.Reached, "end:", a.End)
	fmt.Println("first path complete:", a.FirstComplete, "waypoints:", len(a.FirstPath))

	// Output:
	// frames: 10
	// reached: true end: (5,5)
	// first path complete: true waypoints: 11
}
