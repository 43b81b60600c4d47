package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathgraph/bfs"
	"github.com/katalvlaran/pathgraph/core"
	"github.com/katalvlaran/pathgraph/dfs"
	"github.com/katalvlaran/pathgraph/gridgraph"
	"github.com/katalvlaran/pathgraph/heuristic"
	"github.com/katalvlaran/pathgraph/shortest"
)

// labelsOf renders node indices as their space-separated labels.
func labelsOf[T any](g *core.Graph[T], nodes []core.NodeIndex, label func(T) string) string {
	parts := make([]string, len(nodes))
	for i, d := range g.Collect(nodes) {
		parts[i] = label(d)
	}

	return strings.Join(parts, " ")
}

func newBFSCmd(e *env) *cobra.Command {
	var (
		gf       graphFlags
		from, to string
	)
	cmd := &cobra.Command{
		Use:   "bfs",
		Short: "Breadth-first traversal; with --to, the fewest-hop path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := gf.build(e)
			if err != nil {
				return e.fail("bfs", err)
			}
			start, err := lookup(g, from, identity)
			if err != nil {
				return e.fail("bfs", err)
			}
			res, err := bfs.BreadthFirstSearch(g, start, nil, e.cfg.BFSOptions(e.log, e.observer)...)
			if err != nil {
				return e.fail("bfs", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "order: %s\n", labelsOf(g, res.Order, identity))
			if to == "" {
				return nil
			}
			dest, err := lookup(g, to, identity)
			if err != nil {
				return e.fail("bfs", err)
			}
			path, err := res.PathTo(dest)
			if err != nil {
				return e.fail("bfs", err)
			}
			fmt.Fprintf(out, "path: %s (%d hops)\n", labelsOf(g, path, identity), len(path)-1)

			return nil
		},
	}
	gf.register(cmd)
	cmd.Flags().StringVar(&from, "from", "A", "start node label")
	cmd.Flags().StringVar(&to, "to", "", "destination node label")

	return cmd
}

func newDFSCmd(e *env) *cobra.Command {
	var (
		gf        graphFlags
		from      string
		recursive bool
	)
	cmd := &cobra.Command{
		Use:   "dfs",
		Short: "Depth-first traversal in pre- and post-order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := gf.build(e)
			if err != nil {
				return e.fail("dfs", err)
			}
			start, err := lookup(g, from, identity)
			if err != nil {
				return e.fail("dfs", err)
			}
			run := dfs.DepthFirstSearch[string]
			if recursive {
				run = dfs.DepthFirstSearchRecursive[string]
			}
			res, err := run(g, start, nil, e.cfg.DFSOptions(e.log, e.observer)...)
			if err != nil {
				return e.fail("dfs", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "order: %s\n", labelsOf(g, res.Order, identity))
			fmt.Fprintf(out, "postorder: %s\n", labelsOf(g, res.PostOrder, identity))

			return nil
		},
	}
	gf.register(cmd)
	cmd.Flags().StringVar(&from, "from", "A", "start node label")
	cmd.Flags().BoolVar(&recursive, "recursive", false, "use the recursive variant")

	return cmd
}

func newDijkstraCmd(e *env) *cobra.Command {
	var (
		gf       graphFlags
		from, to string
	)
	cmd := &cobra.Command{
		Use:   "dijkstra",
		Short: "Shortest paths from --from to every node, or to --to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := gf.build(e)
			if err != nil {
				return e.fail("dijkstra", err)
			}
			start, err := lookup(g, from, identity)
			if err != nil {
				return e.fail("dijkstra", err)
			}
			opts := e.cfg.ShortestOptions(e.log, e.observer)
			out := cmd.OutOrStdout()

			if to != "" {
				dest, err := lookup(g, to, identity)
				if err != nil {
					return e.fail("dijkstra", err)
				}
				p, err := shortest.DijkstraTo(g, start, dest, opts...)
				if err != nil {
					return e.fail("dijkstra", err)
				}
				fmt.Fprintf(out, "path: %s cost %s\n", strings.Join(p.Data, " "), formatCost(p.Cost))
				return nil
			}

			tree, err := shortest.Dijkstra(g, start, opts...)
			if err != nil {
				return e.fail("dijkstra", err)
			}
			for i := range tree.Paths {
				p, err := tree.PathTo(core.NodeIndex(i))
				if err != nil {
					continue
				}
				fmt.Fprintf(out, "%s cost %s: %s\n", p.Data[len(p.Data)-1], formatCost(p.Cost), strings.Join(p.Data, " "))
			}

			return nil
		},
	}
	gf.register(cmd)
	cmd.Flags().StringVar(&from, "from", "A", "start node label")
	cmd.Flags().StringVar(&to, "to", "", "destination node label")

	return cmd
}

func newAStarCmd(e *env) *cobra.Command {
	var (
		from, to string
		scale    float64
	)
	cmd := &cobra.Command{
		Use:   "astar",
		Short: "A* over the 3×3 demo lattice with a Euclidean estimate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := lattice(e.graphOptions())
			if err != nil {
				return e.fail("astar", err)
			}
			start, err := lookup(g, from, siteName)
			if err != nil {
				return e.fail("astar", err)
			}
			dest, err := lookup(g, to, siteName)
			if err != nil {
				return e.fail("astar", err)
			}
			if !cmd.Flags().Changed("scale") {
				scale = e.cfg.Search.HeuristicScale
			}
			h := heuristic.Euclidean[heuristic.Site](scale)

			p, err := shortest.AStar(g, start, dest, h, e.cfg.ShortestOptions(e.log, e.observer)...)
			if err != nil {
				return e.fail("astar", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "path: %s cost %s\n", labelsOf(g, p.Nodes, heuristic.Site.String), formatCost(p.Cost))

			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "n0", "start site")
	cmd.Flags().StringVar(&to, "to", "n2", "destination site")
	cmd.Flags().Float64Var(&scale, "scale", heuristic.DefaultScale, "heuristic scale (default from config)")

	return cmd
}

func newRouteCmd(e *env) *cobra.Command {
	var (
		gridPath, from, to string
		conn, threshold    int
	)
	cmd := &cobra.Command{
		Use:   "route",
		Short: "A* route across the land cells of a grid file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var in io.Reader = cmd.InOrStdin()
			if gridPath != "-" {
				f, err := os.Open(gridPath)
				if err != nil {
					return e.fail("route", err)
				}
				defer f.Close()
				in = f
			}
			values, err := readGrid(in)
			if err != nil {
				return e.fail("route", err)
			}

			gopts := gridgraph.DefaultGridOptions()
			gopts.LandThreshold = threshold
			if conn == 8 {
				gopts.Conn = gridgraph.Conn8
			}
			gopts.Representation, _ = core.ParseRepresentation(e.cfg.Representation)
			gg, err := gridgraph.NewGridGraph(values, gopts)
			if err != nil {
				return e.fail("route", err)
			}

			fx, fy, err := parsePoint(from)
			if err != nil {
				return e.fail("route", err)
			}
			tx, ty, err := parsePoint(to)
			if err != nil {
				return e.fail("route", err)
			}
			if e.log.Enabled(cmd.Context(), slog.LevelDebug) {
				e.log.Debug("grid loaded",
					slog.Int("width", gg.Width), slog.Int("height", gg.Height),
					slog.Int("islands", len(gg.ConnectedComponents())))
			}

			p, err := gg.Route(fx, fy, tx, ty, e.cfg.ShortestOptions(e.log, e.observer)...)
			if err != nil {
				return e.fail("route", err)
			}
			cells := make([]string, len(p.Data))
			for i, c := range p.Data {
				cells[i] = fmt.Sprintf("(%d,%d)", c.X, c.Y)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "route: %s cost %s\n", strings.Join(cells, " "), formatCost(p.Cost))

			return nil
		},
	}
	cmd.Flags().StringVar(&gridPath, "grid", "-", "grid file, or - for stdin")
	cmd.Flags().StringVar(&from, "from", "0,0", "start cell x,y")
	cmd.Flags().StringVar(&to, "to", "", "destination cell x,y")
	cmd.Flags().IntVar(&conn, "conn", 4, "connectivity: 4 or 8")
	cmd.Flags().IntVar(&threshold, "land", 1, "minimum cell value counted as land")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}
