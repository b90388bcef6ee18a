package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/titanx/halo-core/internal/api"
	"github.com/titanx/halo-core/internal/config"
	"github.com/titanx/halo-core/internal/demo"
	"github.com/titanx/halo-core/internal/halo"
	"github.com/titanx/halo-core/internal/logging"
	"github.com/titanx/halo-core/internal/metrics"
	"github.com/titanx/halo-core/internal/stream"
)

const shutdownTimeout = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HALO HTTP server",
	Long:  `Starts the behavioural engine and serves the v1 API over HTTP.`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		host, _ := cmd.Flags().GetString("host")
		port, _ := cmd.Flags().GetInt("port")

		cfg, err := config.LoadOrDefault(configPath)
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			os.Exit(1)
		}
		if host != "" {
			cfg.Server.Host = host
		}
		if port > 0 {
			cfg.Server.Port = port
		}

		log := logging.New(logging.ParseLevel(cfg.Log.Level))

		registry := halo.NewRegistry()
		broadcaster := stream.NewBroadcaster(registry, log, cfg.Stream.BroadcastThrottle, cfg.Stream.SnapshotInterval)
		server := api.NewServer(cfg, log, registry, broadcaster, metrics.New())

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		if demoMode, _ := cmd.Flags().GetBool("demo"); demoMode {
			demo.NewGenerator(registry, broadcaster, log).Start(ctx)
		}

		srv := &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
			Handler:      server.Routes(),
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		}

		serverErrors := make(chan error, 1)
		go func() {
			log.Info("server listening", "addr", srv.Addr, "version", version)
			serverErrors <- srv.ListenAndServe()
		}()

		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			log.Error("server failed", "error", err)
			os.Exit(1)

		case sig := <-shutdown:
			log.Info("shutting down", "signal", sig.String())

			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				log.Error("graceful shutdown did not complete", "error", err)
				if err := srv.Close(); err != nil {
					log.Error("forced close failed", "error", err)
				}
			}
			log.Info("server stopped")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("host", "H", "", "Override the listen host")
	serveCmd.Flags().IntP("port", "p", 0, "Override the listen port")
	serveCmd.Flags().Bool("demo", false, "Emit synthetic demo sessions")
}
