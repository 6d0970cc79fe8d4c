package client

import (
	"context"
	"errors"
	"github.com/litetable/litetable-rowstream/internal/litetable"
	v1 "github.com/litetable/litetable-rowstream/internal/rowstream/v1"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"io"
	"testing"
	"time"
)

// fakeRecv stands in for the client side of a ReadRows stream.
type fakeRecv struct {
	grpc.ClientStream
	responses []*v1.ReadRowsResponse
	err       error
}

func (f *fakeRecv) Recv() (*v1.ReadRowsResponse, error) {
	if len(f.responses) == 0 {
		return nil, f.err
	}
	resp := f.responses[0]
	f.responses = f.responses[1:]
	return resp, nil
}

func TestStreamSource_Next(t *testing.T) {
	tests := map[string]struct {
		stream   *fakeRecv
		ctx      func() context.Context
		want     []litetable.Chunk
		checkErr func(req *require.Assertions, err error)
	}{
		"batch": {
			stream: &fakeRecv{responses: []*v1.ReadRowsResponse{chunkMsg(&v1.CellChunk{Value: []byte("v")})}},
			want:   []litetable.Chunk{{Value: []byte("v")}},
		},
		"end of stream": {
			stream: &fakeRecv{err: io.EOF},
			checkErr: func(req *require.Assertions, err error) {
				req.Equal(io.EOF, err)
			},
		},
		"deadline status": {
			stream: &fakeRecv{err: status.Error(codes.DeadlineExceeded, "context deadline exceeded")},
			checkErr: func(req *require.Assertions, err error) {
				req.ErrorIs(err, context.DeadlineExceeded)
				req.Equal(codes.DeadlineExceeded, status.Code(err))
			},
		},
		"other status is passed through": {
			stream: &fakeRecv{err: status.Error(codes.Unavailable, "gone")},
			checkErr: func(req *require.Assertions, err error) {
				req.NotErrorIs(err, context.DeadlineExceeded)
				req.Equal(codes.Unavailable, status.Code(err))
			},
		},
		"cancelled context": {
			stream: &fakeRecv{responses: []*v1.ReadRowsResponse{chunkMsg()}},
			ctx: func() context.Context {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()
				return ctx
			},
			checkErr: func(req *require.Assertions, err error) {
				req.True(errors.Is(err, context.Canceled))
			},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			req := require.New(t)
			ctx := context.Background()
			if tc.ctx != nil {
				ctx = tc.ctx()
			}

			src := &streamSource{stream: tc.stream}
			got, err := src.Next(ctx)
			if tc.checkErr != nil {
				req.Error(err)
				req.Nil(got)
				tc.checkErr(req, err)
				return
			}
			req.NoError(err)
			req.Equal(tc.want, got)
		})
	}
}

// blockingRecv waits until its stream context ends, as a real stream does with no messages.
type blockingRecv struct {
	grpc.ClientStream
	ctx context.Context
}

func (b *blockingRecv) Recv() (*v1.ReadRowsResponse, error) {
	<-b.ctx.Done()
	return nil, status.FromContextError(b.ctx.Err()).Err()
}

func TestStreamSource_NextCancelsStream(t *testing.T) {
	req := require.New(t)

	streamCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	src := &streamSource{stream: &blockingRecv{ctx: streamCtx}, cancel: cancel}

	ctx, stop := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer stop()

	got, err := src.Next(ctx)
	req.Nil(got)
	req.ErrorIs(err, context.DeadlineExceeded)
	req.Equal(codes.Canceled, status.Code(err))
	req.ErrorIs(streamCtx.Err(), context.Canceled)
}
