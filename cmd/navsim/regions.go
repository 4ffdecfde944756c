package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridnav/gridgraph"
	"github.com/katalvlaran/gridnav/scenario"
)

var (
	flagRegionFrom string
	flagRegionTo   string
	flagConn8      bool
)

var regionsCmd = &cobra.Command{
	Use:   "regions [scenario.yaml]",
	Short: "Show connected regions and the cheapest breach",
	Long: `Label the open regions of a scenario's terrain. With --from and --to,
report whether the two cells are connected and, if not, the fewest walls
that must be cleared to join them.

Examples:
  navsim regions
  navsim regions maze.yaml --from 0,0 --to 19,19`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRegions,
}

func init() {
	regionsCmd.Flags().StringVar(&flagRegionFrom, "from", "", "First cell x,y")
	regionsCmd.Flags().StringVar(&flagRegionTo, "to", "", "Second cell x,y")
	regionsCmd.Flags().BoolVar(&flagConn8, "conn8", false, "Count corner contact as connected")
}

func runRegions(_ *cobra.Command, args []string) error {
	path := ""
	if len(args) == 1 {
		path = args[0]
	}
	sc, err := scenario.Load(path)
	if err != nil {
		return err
	}
	g, err := scenario.Build(sc)
	if err != nil {
		return err
	}

	opts := gridgraph.DefaultGridOptions()
	if flagConn8 {
		opts.Conn = gridgraph.Conn8
	}
	gg, err := gridgraph.NewGridGraph(g, opts)
	if err != nil {
		return err
	}

	comps := gg.ConnectedComponents()
	fmt.Printf("Scenario %s: %dx%d, %d regions\n", sc.Name, gg.Width, gg.Height, len(comps))
	for i, comp := range comps {
		fmt.Printf("  region %-3d  %5d cells  first %v\n", i, len(comp), gg.Coordinate(comp[0]))
	}

	if flagRegionFrom == "" || flagRegionTo == "" {
		return nil
	}
	a, err := parsePoint(flagRegionFrom)
	if err != nil {
		return err
	}
	b, err := parsePoint(flagRegionTo)
	if err != nil {
		return err
	}
	ra, rb := gg.RegionOf(a), gg.RegionOf(b)
	fmt.Println()
	if ra < 0 || rb < 0 {
		fmt.Printf("%v (region %d) or %v (region %d) is a wall\n", a, ra, b, rb)
		return nil
	}
	if ra == rb {
		fmt.Printf("%v and %v share region %d\n", a, b, ra)
		return nil
	}

	breach, cost, err := gg.ExpandIsland(ra, rb)
	if err != nil {
		return err
	}
	fmt.Printf("%v (region %d) and %v (region %d) are separated; clear %d walls:\n", a, ra, b, rb, cost)
	for _, idx := range breach {
		p := gg.Coordinate(idx)
		if gg.Wall(p) {
			fmt.Printf("  %v\n", p)
		}
	}
	return nil
}
