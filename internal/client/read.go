package client

import (
	"context"
	"fmt"
	"github.com/litetable/litetable-rowstream/internal/litetable"
	v1 "github.com/litetable/litetable-rowstream/internal/rowstream/v1"
)

// ReadRows streams the rows selected by req and returns them once the stream has ended. Either
// every committed row is returned or an error is: a partially read stream yields nothing.
//
// Errors from the stream are *assembler.Error values; match them with assembler.ErrTimeout and
// assembler.ErrTransport.
func (c *Client) ReadRows(ctx context.Context, req *v1.ReadRowsRequest) ([]litetable.Row, error) {
	// the decoder owns the deadline; the stream is cancelled when decoding stops.
	streamCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	stream, err := c.rpc.ReadRows(streamCtx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to open ReadRows stream: %w", err)
	}

	return c.decoder.Decode(ctx, &streamSource{stream: stream, cancel: cancel})
}
