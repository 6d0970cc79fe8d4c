package grpc

import (
	"github.com/rs/zerolog/log"
	grpc2 "google.golang.org/grpc"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
	"time"
)

// logStream logs every finished stream with its method, peer, status code and duration.
func logStream(srv any, ss grpc2.ServerStream, info *grpc2.StreamServerInfo,
	handler grpc2.StreamHandler) error {
	now := time.Now()
	err := handler(srv, ss)

	evt := log.Debug()
	if err != nil {
		evt = log.Warn().Err(err)
	}
	if p, ok := peer.FromContext(ss.Context()); ok && p.Addr != nil {
		evt = evt.Str("peer", p.Addr.String())
	}
	evt.Str("method", info.FullMethod).
		Stringer("code", status.Code(err)).
		Dur("latency", time.Since(now)).
		Msg("stream finished")

	return err
}
