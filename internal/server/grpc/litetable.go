package grpc

import (
	"github.com/litetable/litetable-rowstream/internal/litetable"
	v1 "github.com/litetable/litetable-rowstream/internal/rowstream/v1"
	"github.com/litetable/litetable-rowstream/internal/table"
)

//go:generate mockgen -destination=litetable_mock.go -package=grpc -source=litetable.go

type rowReader interface {
	Read(q table.Query) []litetable.Row
}

type batcher interface {
	Batches(rows []litetable.Row, emit func(batch []litetable.Chunk) error) error
}

type rowStream struct {
	v1.UnimplementedRowStreamServer
	rows    rowReader
	chunker batcher
}
