package main

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/geograph/dijkstra"
	"github.com/katalvlaran/geograph/internal/report"
)

// routesCommand is the console harness: print graph, solve, print routes.
type routesCommand struct {
	opts *Options
	out  io.Writer

	Source     *int `short:"s" long:"source"      description:"Source vertex index (dataset default when omitted)"`
	PrintGraph bool `short:"g" long:"print-graph" description:"Print every vertex and its edges before solving"`
}

// Execute implements flags.Commander.
func (c *routesCommand) Execute(_ []string) error {
	ds, g, err := c.opts.loadGraph()
	if err != nil {
		return err
	}

	source := ds.Source
	if c.Source != nil {
		source = *c.Source
	}
	// Fail before printing anything so an invalid index never yields
	// partial output.
	src, err := g.Vertex(source)
	if err != nil {
		return fmt.Errorf("source: %w", err)
	}

	if c.PrintGraph {
		fmt.Fprintln(c.out, "Generated graph:")
		if err := report.WriteGraph(c.out, g); err != nil {
			return err
		}
	}

	start := time.Now()
	prev, dist, err := dijkstra.ShortestPaths(g, source)
	elapsed := time.Since(start)
	if err != nil {
		return err
	}
	log.Info().
		Int("source", source).
		Int("vertices", g.VertexCount()).
		Dur("elapsed", elapsed).
		Msg("Shortest paths computed")

	routes, err := report.BuildRoutes(g, prev, dist, source)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "ShortestPaths execution time: %d microseconds\n\n", elapsed.Microseconds())

	return report.WriteRoutes(c.out, src.Name, routes)
}
