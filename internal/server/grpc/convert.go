package grpc

import (
	"github.com/litetable/litetable-rowstream/internal/litetable"
	v1 "github.com/litetable/litetable-rowstream/internal/rowstream/v1"
)

func toProtoResponse(batch []litetable.Chunk) *v1.ReadRowsResponse {
	resp := &v1.ReadRowsResponse{
		Chunks: make([]*v1.CellChunk, 0, len(batch)),
	}

	for _, c := range batch {
		protoChunk := &v1.CellChunk{
			RowKey:          c.RowKey,
			TimestampMicros: c.TimestampMicros,
			Value:           c.Value,
		}

		if c.FamilyName != nil {
			protoChunk.FamilyName = &v1.StringValue{Value: c.FamilyName.Value}
		}
		if c.Qualifier != nil {
			protoChunk.Qualifier = &v1.BytesValue{Value: c.Qualifier.Value}
		}

		switch c.RowStatus {
		case litetable.RowStatusCommit:
			protoChunk.CommitRow = true
		case litetable.RowStatusReset:
			protoChunk.ResetRow = true
		}

		resp.Chunks = append(resp.Chunks, protoChunk)
	}

	return resp
}
