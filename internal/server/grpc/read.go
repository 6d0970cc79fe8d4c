package grpc

import (
	"errors"
	"github.com/litetable/litetable-rowstream/internal/litetable"
	v1 "github.com/litetable/litetable-rowstream/internal/rowstream/v1"
	"github.com/litetable/litetable-rowstream/internal/table"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"time"
)

func (r *rowStream) validateReadRows(msg *v1.ReadRowsRequest) error {
	var errGrp []error
	if msg.GetRowsLimit() < 0 {
		errGrp = append(errGrp, status.Errorf(codes.InvalidArgument, "rowsLimit cannot be negative"))
	}
	if len(msg.GetRowKeys()) > 0 && len(msg.GetRowPrefix()) > 0 {
		errGrp = append(errGrp, status.Errorf(codes.InvalidArgument, "rowKeys and rowPrefix are mutually exclusive"))
	}
	for i, k := range msg.GetRowKeys() {
		if len(k) == 0 {
			errGrp = append(errGrp, status.Errorf(codes.InvalidArgument, "rowKeys[%d] is empty", i))
		}
	}

	return errors.Join(errGrp...)
}

// ReadRows streams the selected rows as chunks, one response message per batch.
func (r *rowStream) ReadRows(msg *v1.ReadRowsRequest, stream v1.RowStream_ReadRowsServer) error {
	now := time.Now()
	if err := r.validateReadRows(msg); err != nil {
		return err
	}

	rows := r.rows.Read(table.Query{
		Keys:   msg.GetRowKeys(),
		Prefix: msg.GetRowPrefix(),
		Limit:  msg.GetRowsLimit(),
	})

	ctx := stream.Context()
	messages := 0
	err := r.chunker.Batches(rows, func(batch []litetable.Chunk) error {
		if err := ctx.Err(); err != nil {
			return status.FromContextError(err).Err()
		}
		if err := stream.Send(toProtoResponse(batch)); err != nil {
			return err
		}
		messages++
		return nil
	})
	if err != nil {
		log.Debug().Err(err).Int("messages", messages).Msg("ReadRows aborted")
		return err
	}

	log.Debug().
		Int("rows", len(rows)).
		Int("messages", messages).
		Dur("latency", time.Since(now)).
		Msg("ReadRows complete")
	return nil
}
