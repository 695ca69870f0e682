// Command geodist computes shortest routes over a complete graph of
// geographic points, either once on the console (routes) or on demand over
// HTTP (serve).
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/geograph/core"
	"github.com/katalvlaran/geograph/internal/dataset"
	"github.com/katalvlaran/geograph/internal/logger"
)

// Options are shared by every command.
type Options struct {
	Logger logger.Logger `group:"Logger options"`

	Dataset string `short:"d" long:"dataset" env:"GEODIST_DATASET" description:"YAML dataset file (built-in Medellín sample when empty)"`
	Strict  bool   `long:"strict"            env:"GEODIST_STRICT"  description:"Reject points with out-of-range coordinates"`
}

func main() {
	os.Exit(run(os.Args[1:]))
}

// run parses args, executes the selected command and returns the exit code.
func run(args []string) int {
	var opts Options
	parser := newParser(&opts)

	if _, err := parser.ParseArgs(args); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) {
			if flagsErr.Type == flags.ErrHelp {
				fmt.Fprintln(os.Stdout, flagsErr.Message)
				return 0
			}
			fmt.Fprintln(os.Stderr, flagsErr.Message)
			return 1
		}
		log.Error().Err(err).Msg("Command failed")
		return 1
	}

	return 0
}

// newParser wires the commands; logging is configured before any command
// runs.
func newParser(opts *Options) *flags.Parser {
	parser := flags.NewParser(opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.CommandHandler = func(cmd flags.Commander, args []string) error {
		opts.Logger.Setup()
		if cmd == nil {
			return nil
		}

		return cmd.Execute(args)
	}

	mustAddCommand(parser, "routes",
		"Print shortest routes from a source",
		"Loads the dataset, solves single-source shortest paths and prints every route.\n\n" +
			"Dataset and --strict are global options and go before the command name:\n" +
			"  geodist -d points.yaml --strict routes -s 2",
		&routesCommand{opts: opts, out: os.Stdout})
	mustAddCommand(parser, "serve",
		"Serve shortest routes over HTTP",
		"Loads the dataset once and answers route queries on /api.\n\n" +
			"Dataset and --strict are global options and go before the command name:\n" +
			"  geodist -d points.yaml serve -p 8080",
		&serveCommand{opts: opts})

	return parser
}

func mustAddCommand(p *flags.Parser, name, short, long string, data interface{}) {
	if _, err := p.AddCommand(name, short, long, data); err != nil {
		panic(err)
	}
}

// loadGraph reads the configured dataset (or the built-in sample) and builds
// its graph.
func (o *Options) loadGraph() (*dataset.Dataset, *core.Graph, error) {
	ds := dataset.Medellin()
	if o.Dataset != "" {
		var err error
		if ds, err = dataset.Load(o.Dataset); err != nil {
			return nil, nil, err
		}
	}

	var gopts []core.GraphOption
	if o.Strict {
		gopts = append(gopts, core.WithCoordinateValidation())
	}
	g, err := ds.Graph(gopts...)
	if err != nil {
		return nil, nil, err
	}
	log.Debug().
		Str("dataset", ds.Name).
		Int("vertices", g.VertexCount()).
		Int("edges", g.EdgeCount()).
		Msg("Graph loaded")

	return ds, g, nil
}
