package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vcrobe/nojs-counter/internal/log"
	"github.com/vcrobe/nojs-counter/internal/server"
)

var (
	addr      string
	assetsDir string
	cacheTTL  time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the counter page and WASM assets",
	RunE:  runServe,
}

func addServeFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&addr, "addr", envOr("COUNTER_ADDR", ":8080"), "listen address")
	cmd.Flags().StringVar(&assetsDir, "assets", envOr("COUNTER_ASSETS", "./build"), "directory holding main.wasm and wasm_exec.js")
	cmd.Flags().DurationVar(&cacheTTL, "cache-ttl", 2*time.Second, "how long asset bytes are served from memory")
}

func runServe(cmd *cobra.Command, args []string) error {
	opts, err := logOptions(logLevel, logFormat)
	if err != nil {
		return err
	}
	zl, err := log.NewLogger(opts...)
	if err != nil {
		return err
	}
	defer zl.Sync()
	zl = zl.With(zap.String("app", cmd.Root().Name()))

	srv, err := server.New(server.Config{
		Addr:      addr,
		AssetsDir: assetsDir,
		CacheTTL:  cacheTTL,
	}, zl)
	if err != nil {
		zl.Error("server.New", zap.Error(err))
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		zl.Error("server.Run", zap.Error(err))
		return err
	}
	return nil
}
