// Package client reads rows from a RowStream server. Each ReadRows call opens one stream and
// reassembles its chunks with internal/assembler.
package client

import (
	"crypto/tls"
	"errors"
	"fmt"
	"github.com/litetable/litetable-rowstream/internal/assembler"
	"github.com/litetable/litetable-rowstream/internal/codec"
	v1 "github.com/litetable/litetable-rowstream/internal/rowstream/v1"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"time"
)

type Client struct {
	conn        *grpc.ClientConn
	rpc         v1.RowStreamClient
	decoder *assembler.Decoder
}

type Config struct {
	// Address is a grpc target, e.g. "127.0.0.1:9443" or "dns:///rows.internal:9443".
	Address string
	// ReadTimeout bounds each ReadRows call. Zero means no timeout.
	ReadTimeout time.Duration
	// TLS enables transport security; the connection is plaintext when nil.
	TLS *tls.Config
	// DialOptions are appended to the client's own options.
	DialOptions []grpc.DialOption
	Logger      *zerolog.Logger
}

func (c *Config) validate() error {
	var errGrp []error
	if c.Address == "" {
		errGrp = append(errGrp, errors.New("address required"))
	}
	if c.ReadTimeout < 0 {
		errGrp = append(errGrp, errors.New("read timeout cannot be negative"))
	}
	return errors.Join(errGrp...)
}

// New creates a client. No connection is made until the first call.
func New(cfg *Config) (*Client, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	decoder, err := assembler.New(&assembler.Config{
		Deadline: cfg.ReadTimeout,
		Logger:   cfg.Logger,
	})
	if err != nil {
		return nil, err
	}

	creds := insecure.NewCredentials()
	if cfg.TLS != nil {
		creds = credentials.NewTLS(cfg.TLS)
	}

	opts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(creds),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(codec.Name)),
	}, cfg.DialOptions...)

	conn, err := grpc.NewClient(cfg.Address, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create client for %s: %w", cfg.Address, err)
	}

	return &Client{
		conn:    conn,
		rpc:     v1.NewRowStreamClient(conn),
		decoder: decoder,
	}, nil
}

// Close tears down the connection.
func (c *Client) Close() error {
	return c.conn.Close()
}
