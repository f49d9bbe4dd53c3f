package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/hullscan/internal/server"
	"github.com/matzehuels/hullscan/pkg/cache"
	"github.com/matzehuels/hullscan/pkg/pipeline"
)

// defaultAddr is the default listen address for the serve command.
const defaultAddr = "127.0.0.1:8080"

// serveCommand creates the serve command exposing the pipeline over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr      string
		redisAddr string
		noCache   bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the hull pipeline over HTTP",
		Long: `Serve the hull pipeline over HTTP.

POST /api/v1/hull accepts a JSON body with inline points and pipeline
options and returns the hull with any requested artifacts. GET /healthz
reports liveness.

By default results are cached in memory for the lifetime of the
process. Pass --redis to share a cache between instances.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr, redisAddr, noCache)
		},
	}

	configAddr := c.Config.Addr
	if configAddr == "" {
		configAddr = defaultAddr
	}
	cmd.Flags().StringVar(&addr, "addr", configAddr, "listen address")
	cmd.Flags().StringVar(&redisAddr, "redis", c.Config.RedisAddr, "Redis address for a shared cache (host:port)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// runServe builds the cache backend and runs the server until the
// context is canceled.
func (c *CLI) runServe(ctx context.Context, addr, redisAddr string, noCache bool) error {
	backend, err := serveCache(ctx, redisAddr, noCache)
	if err != nil {
		return fmt.Errorf("initialize cache: %w", err)
	}

	runner := pipeline.NewRunner(backend, nil, c.Logger)
	defer runner.Close()

	srv := server.New(addr, runner, c.Logger)
	return srv.ListenAndServe(ctx)
}

// serveCache selects the cache backend for the server: Redis when an
// address is given, otherwise an in-process memory cache.
func serveCache(ctx context.Context, redisAddr string, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if redisAddr != "" {
		return cache.NewRedisCache(ctx, redisAddr)
	}
	return cache.NewMemoryCache(), nil
}
