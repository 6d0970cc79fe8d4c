package assembler

import (
	"context"
	"github.com/litetable/litetable-rowstream/internal/litetable"
	"io"
)

//go:generate mockgen -destination=source_mock.go -package=assembler -source=source.go

// ChunkSource yields the chunks of one stream, one response batch per call. It returns io.EOF
// once the stream has ended cleanly; any other error is a transport failure.
//
// Next should give up waiting when ctx is done.
type ChunkSource interface {
	Next(ctx context.Context) ([]litetable.Chunk, error)
}

// Batches is a ChunkSource over batches held in memory, e.g. a captured stream being replayed.
type Batches struct {
	batches [][]litetable.Chunk
	pos     int
}

// NewBatches returns a source that yields each batch in order and then io.EOF.
func NewBatches(batches ...[]litetable.Chunk) *Batches {
	return &Batches{batches: batches}
}

func (b *Batches) Next(ctx context.Context) ([]litetable.Chunk, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if b.pos >= len(b.batches) {
		return nil, io.EOF
	}

	batch := b.batches[b.pos]
	b.pos++
	return batch, nil
}
