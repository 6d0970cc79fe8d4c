package assembler

import (
	"context"
	"errors"
	"github.com/google/uuid"
	"github.com/litetable/litetable-rowstream/internal/litetable"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"io"
	"time"
)

// errDecodeDeadline is the cause of the context a Decode call hands its source once the
// configured deadline passes. It tells that deadline apart from one on the caller's context.
var errDecodeDeadline = errors.New("decode deadline exceeded")

// Decoder reassembles the chunks of a ReadRows stream into rows. A Decoder holds no stream
// state, so one Decoder can serve any number of concurrent Decode calls.
type Decoder struct {
	deadline time.Duration
	logger   zerolog.Logger
}

// Config configures a Decoder.
type Config struct {
	// Deadline bounds the wall-clock time of a whole Decode call. Zero means no deadline.
	Deadline time.Duration
	// Logger receives anomaly warnings and chunk traces. Defaults to the global logger.
	Logger *zerolog.Logger
}

func (c *Config) validate() error {
	var errGrp []error
	if c.Deadline < 0 {
		errGrp = append(errGrp, errors.New("deadline cannot be negative"))
	}
	return errors.Join(errGrp...)
}

// New creates a Decoder.
func New(cfg *Config) (*Decoder, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	logger := log.Logger
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	return &Decoder{
		deadline: cfg.Deadline,
		logger:   logger,
	}, nil
}

// Decode reads src to the end with a one-off Decoder. See (*Decoder).Decode.
func Decode(ctx context.Context, src ChunkSource, deadline time.Duration) ([]litetable.Row, error) {
	d, err := New(&Config{Deadline: deadline})
	if err != nil {
		return nil, err
	}
	return d.Decode(ctx, src)
}

// Decode pulls batches from src until it returns io.EOF and returns every committed row in the
// order the commits arrived. A row still open when the stream ends is discarded.
//
// The deadline is carried on the context handed to src.Next and is also checked each time a
// batch arrives, so a source that ignores ctx can overrun it by up to one batch wait. Only the
// configured deadline produces a timeout error; a source failing because the caller's own
// context ended is a transport failure. On a timeout or a transport failure no rows are returned.
func (d *Decoder) Decode(ctx context.Context, src ChunkSource) ([]litetable.Row, error) {
	started := time.Now()
	if d.deadline > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeoutCause(ctx, d.deadline, errDecodeDeadline)
		defer cancel()
	}

	logger := d.logger.With().Str("stream_id", uuid.NewString()).Logger()

	var (
		rows    []litetable.Row
		state   AssemblyState
		batches int
		chunks  int
	)

	for {
		batch, err := src.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			if d.expired(started) || errors.Is(context.Cause(ctx), errDecodeDeadline) {
				logger.Warn().Dur("deadline", d.deadline).Int("rows", len(rows)).
					Msg("deadline exceeded waiting for chunks, discarding rows")
				return nil, newTimeoutError(d.deadline)
			}
			logger.Error().Err(err).Int("batch", batches).Msg("chunk stream failed")
			return nil, newTransportError(err)
		}

		if d.expired(started) {
			logger.Warn().Dur("deadline", d.deadline).Int("rows", len(rows)).
				Msg("deadline exceeded, discarding rows")
			return nil, newTimeoutError(d.deadline)
		}

		for _, chunk := range batch {
			logger.Trace().
				Int("chunk", chunks).
				Int("value_bytes", len(chunk.Value)).
				Stringer("status", chunk.RowStatus).
				Msg("decoding chunk")

			var (
				row       *litetable.Row
				anomalies []Anomaly
			)
			state, row, anomalies = Fold(state, chunk)
			for _, a := range anomalies {
				logger.Warn().Int("chunk", chunks).Stringer("anomaly", a).
					Msg("protocol anomaly, continuing")
			}

			if chunk.RowStatus == litetable.RowStatusReset {
				logger.Trace().Int("chunk", chunks).Msg("row reset")
			}
			if row != nil {
				rows = append(rows, *row)
			}
			chunks++
		}
		batches++
	}

	if !state.Empty() {
		logger.Debug().
			Bool("row_open", state.Row != nil).
			Bool("cell_pending", state.Cell != nil).
			Int("value_bytes", len(state.Value)).
			Msg("stream ended mid-row, discarding partial row")
	}

	logger.Debug().
		Int("rows", len(rows)).
		Int("batches", batches).
		Int("chunks", chunks).
		Dur("elapsed", time.Since(started)).
		Msg("decoded ReadRows stream")

	return rows, nil
}

func (d *Decoder) expired(started time.Time) bool {
	return d.deadline > 0 && time.Since(started) > d.deadline
}
