package client

import (
	"errors"
	"fmt"
	"github.com/litetable/litetable-rowstream/internal/litetable"
	v1 "github.com/litetable/litetable-rowstream/internal/rowstream/v1"
)

var errMalformedChunk = errors.New("malformed chunk")

func fromProto(chunks []*v1.CellChunk) ([]litetable.Chunk, error) {
	out := make([]litetable.Chunk, 0, len(chunks))
	for i, c := range chunks {
		if c == nil {
			return nil, fmt.Errorf("%w: chunk %d is null", errMalformedChunk, i)
		}

		chunk := litetable.Chunk{
			RowKey:          c.GetRowKey(),
			TimestampMicros: c.GetTimestampMicros(),
			Value:           c.GetValue(),
		}
		if f := c.GetFamilyName(); f != nil {
			chunk.FamilyName = litetable.String(f.Value)
		}
		if q := c.GetQualifier(); q != nil {
			chunk.Qualifier = litetable.Bytes(q.Value)
		}

		switch {
		case c.GetCommitRow() && c.GetResetRow():
			return nil, fmt.Errorf("%w: chunk %d sets both commitRow and resetRow", errMalformedChunk, i)
		case c.GetCommitRow():
			chunk.RowStatus = litetable.RowStatusCommit
		case c.GetResetRow():
			chunk.RowStatus = litetable.RowStatusReset
		}

		out = append(out, chunk)
	}

	return out, nil
}
