package main

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"github.com/litetable/litetable-rowstream/internal/app"
	"github.com/litetable/litetable-rowstream/internal/config"
	"github.com/litetable/litetable-rowstream/internal/litetable"
	"github.com/litetable/litetable-rowstream/internal/logging"
	rsgrpc "github.com/litetable/litetable-rowstream/internal/server/grpc"
	"github.com/litetable/litetable-rowstream/internal/table"
	"github.com/rs/zerolog/log"
	"os"
	"path/filepath"
	"time"
)

const (
	defaultServerCert = "server.crt"
	defaultServerKey  = "server.key"
)

func main() {
	application, err := initialize()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize")
	}

	if err = application.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("application stopped with an error")
	}
}

func initialize() (*app.App, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, err
	}

	if err = logging.Configure(logging.Config{
		Level:   cfg.LogLevel,
		Debug:   cfg.Debug,
		Console: cfg.Debug,
	}); err != nil {
		return nil, err
	}

	rows := table.New()
	if cfg.SeedFile != "" {
		n, err := rows.LoadFile(cfg.SeedFile)
		if err != nil {
			return nil, err
		}
		log.Info().Int("rows", n).Str("file", cfg.SeedFile).Msg("seeded table")
	}

	cert, err := loadCertificate()
	if err != nil {
		return nil, err
	}
	if cert == nil {
		log.Warn().Msg("no server certificate found, serving plaintext")
	}

	srv, err := rsgrpc.NewServer(&rsgrpc.Config{
		Address:           cfg.ServerAddress,
		Port:              cfg.ServerPort,
		Certificate:       cert,
		Rows:              rows,
		MaxValueBytes:     cfg.MaxValueBytes,
		MaxChunksPerBatch: cfg.MaxChunksPerBatch,
	})
	if err != nil {
		return nil, err
	}

	return app.CreateApp(&app.Config{
		ServiceName: "LiteTable RowStream",
		StopTimeout: 5 * time.Second,
	}, srv)
}

// loadCertificate returns the server key pair from the LiteTable directory, or nil when neither
// file exists.
func loadCertificate() (*tls.Certificate, error) {
	dir, err := litetable.GetLitetableDir()
	if err != nil {
		return nil, err
	}

	certFile := filepath.Join(dir, defaultServerCert)
	keyFile := filepath.Join(dir, defaultServerKey)
	if _, err := os.Stat(certFile); errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}

	cert, err := tls.LoadX509KeyPair(certFile, keyFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load server certificate: %w", err)
	}
	return &cert, nil
}
