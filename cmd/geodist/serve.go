package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/geograph/internal/server"
)

const shutdownTimeout = 5 * time.Second

// serveCommand runs the HTTP front-end until SIGINT/SIGTERM.
type serveCommand struct {
	opts *Options

	Addr string `short:"a" long:"addr" env:"LISTEN_ADDRESS" description:"Address to listen on" default:"0.0.0.0"`
	Port int    `short:"p" long:"port" env:"LISTEN_PORT"    description:"Port to listen on"    default:"8080"`
}

// Execute implements flags.Commander.
func (c *serveCommand) Execute(_ []string) error {
	_, g, err := c.opts.loadGraph()
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              net.JoinHostPort(c.Addr, strconv.Itoa(c.Port)),
		Handler:           server.New(g).Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		log.Info().
			Str("addr", srv.Addr).
			Int("vertices", g.VertexCount()).
			Msg("Server started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	})
	eg.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		log.Info().Msg("Shutting down server")

		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}
