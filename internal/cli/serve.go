package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/BrianMehrman/diagram-builder/internal/api"
	"github.com/BrianMehrman/diagram-builder/pkg/pipeline"
	"github.com/BrianMehrman/diagram-builder/pkg/store"
)

// shutdownTimeout bounds how long in-flight requests get to finish.
const shutdownTimeout = 10 * time.Second

// newServeCmd creates the serve command, which runs the HTTP API.
func newServeCmd() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Serve exposes the build pipeline over HTTP. Graphs built through the API
are persisted to the configured store (MongoDB when configured, in-memory
otherwise) and can be fetched later by content hash.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			cfg, err := loadConfig(cfgPath)
			if err != nil {
				return err
			}

			c, err := newCacheBackend(cfg, noCache)
			if err != nil {
				return err
			}
			runner := pipeline.NewRunner(c, nil)
			defer runner.Close()

			st, err := newStoreBackend(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer func() {
				closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				_ = st.Close(closeCtx)
			}()

			srv := &http.Server{
				Addr:              addr,
				Handler:           api.NewServer(runner, st, logger).Router(),
				ReadHeaderTimeout: 5 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				logger.Info("serving", "addr", addr)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case <-cmd.Context().Done():
				logger.Info("shutting down")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				return srv.Shutdown(shutdownCtx)
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			}
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", ":8080", "listen address")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable build caching")

	return cmd
}

// newStoreBackend creates the graph store from configuration: MongoDB when
// a URI is configured, in-memory otherwise.
func newStoreBackend(ctx context.Context, cfg Config) (store.Store, error) {
	if cfg.Mongo.URI == "" {
		return store.NewMemoryStore(), nil
	}
	return store.NewMongoStore(ctx, store.MongoOptions{
		URI:        cfg.Mongo.URI,
		Database:   cfg.Mongo.Database,
		Collection: cfg.Mongo.Collection,
	})
}
