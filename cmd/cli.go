package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// NewRootCommand returns the parceltracker CLI with its serve and migrate
// subcommands.
func NewRootCommand() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:           "parceltracker",
		Short:         "Hotel guest and parcel custody service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading the environment")

	root.AddCommand(newServeCommand(&envFile))
	root.AddCommand(newMigrateCommand(&envFile))
	return root
}

func newServeCommand(envFile *string) *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the scheduled jobs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return withRoot(ctx, *envFile, func(root *CompositionRoot, cfg Config, logger *zap.Logger) error {
				if migrate {
					if err := root.Migrate(ctx); err != nil {
						return err
					}
				}
				return serve(ctx, root, cfg, logger)
			})
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", false, "migrate the schema before serving")
	return cmd
}

func newMigrateCommand(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withRoot(cmd.Context(), *envFile, func(root *CompositionRoot, cfg Config, logger *zap.Logger) error {
				if cfg.StorageDriver != StoragePostgres {
					logger.Info("nothing to migrate", zap.String("storage_driver", cfg.StorageDriver))
					return nil
				}
				if err := root.Migrate(cmd.Context()); err != nil {
					return err
				}
				logger.Info("schema migrated")
				return nil
			})
		},
	}
}

func withRoot(ctx context.Context, envFile string, fn func(*CompositionRoot, Config, *zap.Logger) error) error {
	cfg, err := LoadConfig(envFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	root, err := NewCompositionRoot(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := root.Close(); err != nil {
			logger.Warn("failed to release resources", zap.Error(err))
		}
	}()

	return fn(root, cfg, logger)
}

func serve(ctx context.Context, root *CompositionRoot, cfg Config, logger *zap.Logger) error {
	e, err := root.CreateRouter(ctx)
	if err != nil {
		return fmt.Errorf("build router: %w", err)
	}

	jobManager := root.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening",
			zap.String("addr", cfg.Addr()),
			zap.String("storage_driver", cfg.StorageDriver),
			zap.String("cache_driver", cfg.CacheDriver),
		)
		serverErr <- e.Start(cfg.Addr())
	}()

	select {
	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
