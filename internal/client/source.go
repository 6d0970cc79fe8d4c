package client

import (
	"context"
	"errors"
	"fmt"
	"github.com/litetable/litetable-rowstream/internal/litetable"
	v1 "github.com/litetable/litetable-rowstream/internal/rowstream/v1"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"io"
)

// streamSource adapts a ReadRows stream to assembler.ChunkSource. Recv only watches the stream's
// own context, so cancel (which ends the stream) is fired when the ctx handed to Next is done.
type streamSource struct {
	stream v1.RowStream_ReadRowsClient
	cancel context.CancelFunc
}

func (s *streamSource) Next(ctx context.Context) ([]litetable.Chunk, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if s.cancel != nil {
		stop := context.AfterFunc(ctx, s.cancel)
		defer stop()
	}

	resp, err := s.stream.Recv()
	if errors.Is(err, io.EOF) {
		return nil, io.EOF
	}
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("%w: %w", ctxErr, err)
		}
		if status.Code(err) == codes.DeadlineExceeded {
			return nil, fmt.Errorf("%w: %w", context.DeadlineExceeded, err)
		}
		return nil, err
	}

	return fromProto(resp.GetChunks())
}
