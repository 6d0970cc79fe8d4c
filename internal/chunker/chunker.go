// Package chunker splits rows into the chunk sequence a ReadRows stream carries. It is the
// inverse of internal/assembler.
package chunker

import (
	"errors"
	"fmt"
	"github.com/litetable/litetable-rowstream/internal/litetable"
)

type Chunker struct {
	maxValueBytes     int
	maxChunksPerBatch int
}

type Config struct {
	// MaxValueBytes is the largest value fragment carried by one chunk.
	MaxValueBytes int
	// MaxChunksPerBatch is the largest number of chunks in one response message.
	MaxChunksPerBatch int
}

func (c *Config) validate() error {
	var errGrp []error
	if c.MaxValueBytes <= 0 {
		errGrp = append(errGrp, fmt.Errorf("max value bytes must be positive, got %d", c.MaxValueBytes))
	}
	if c.MaxChunksPerBatch <= 0 {
		errGrp = append(errGrp, fmt.Errorf("max chunks per batch must be positive, got %d", c.MaxChunksPerBatch))
	}
	return errors.Join(errGrp...)
}

func New(cfg *Config) (*Chunker, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Chunker{
		maxValueBytes:     cfg.MaxValueBytes,
		maxChunksPerBatch: cfg.MaxChunksPerBatch,
	}, nil
}

// Chunks splits one row. The row key rides on the first chunk, every cell's first chunk carries
// its family, qualifier and timestamp, and the last chunk commits the row.
//
// The family is repeated on every cell even when it matches the previous one: readers clear the
// family whenever a new qualifier arrives without one.
//
// A row without cells yields no chunks.
func (c *Chunker) Chunks(row litetable.Row) []litetable.Chunk {
	if len(row.Cells) == 0 {
		return nil
	}

	var chunks []litetable.Chunk
	for i, cell := range row.Cells {
		first := litetable.Chunk{
			FamilyName:      litetable.String(cell.FamilyName),
			Qualifier:       litetable.Bytes(cell.Qualifier),
			TimestampMicros: cell.TimestampMicros,
		}
		if i == 0 {
			first.RowKey = row.Key
		}

		value := cell.Value
		first.Value = value[:min(len(value), c.maxValueBytes)]
		chunks = append(chunks, first)

		for rest := value[len(first.Value):]; len(rest) > 0; {
			n := min(len(rest), c.maxValueBytes)
			chunks = append(chunks, litetable.Chunk{Value: rest[:n]})
			rest = rest[n:]
		}
	}

	chunks[len(chunks)-1].RowStatus = litetable.RowStatusCommit
	return chunks
}

// Batches chunks every row and hands emit one response batch at a time. A row may span batches.
// Emit may keep the batch. An error from emit stops batching and is returned.
func (c *Chunker) Batches(rows []litetable.Row, emit func(batch []litetable.Chunk) error) error {
	batch := make([]litetable.Chunk, 0, c.maxChunksPerBatch)
	for _, row := range rows {
		for _, chunk := range c.Chunks(row) {
			batch = append(batch, chunk)
			if len(batch) < c.maxChunksPerBatch {
				continue
			}
			if err := emit(batch); err != nil {
				return err
			}
			batch = make([]litetable.Chunk, 0, c.maxChunksPerBatch)
		}
	}

	if len(batch) > 0 {
		return emit(batch)
	}
	return nil
}
