package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/eytandecker/simresult-mcp/internal/config"
	"github.com/eytandecker/simresult-mcp/internal/logging"
	internalmcp "github.com/eytandecker/simresult-mcp/internal/mcp"
)

func main() {
	cfg := config.Load()
	// stdout carries the MCP stream, so logs go to stderr.
	log := logging.New(cfg.Logging, os.Stderr)

	if err := run(cfg, log); err != nil {
		log.WithError(err).Error("MCP server exited")
		os.Exit(1)
	}
}

func run(cfg config.Config, log logrus.FieldLogger) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	srv := internalmcp.NewServer(cfg.Server, log)
	log.WithField("name", cfg.Server.Name).WithField("version", cfg.Server.Version).Info("serving over stdio")

	if err := srv.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
