package assembler

import (
	"bytes"
	"github.com/litetable/litetable-rowstream/internal/litetable"
)

// Anomaly is a protocol violation that Fold tolerates. Anomalies are reported, never raised.
type Anomaly int

const (
	// AnomalyCommitWithoutCell is a commit that arrived with no pending cell.
	AnomalyCommitWithoutCell Anomaly = iota + 1
	// AnomalyCommitWithoutRowKey is a commit that arrived before any row key; the row is dropped.
	AnomalyCommitWithoutRowKey
	// AnomalyValueWithoutCell is a value fragment that arrived before any cell started. The bytes
	// are buffered for the next cell.
	AnomalyValueWithoutCell
)

func (a Anomaly) String() string {
	switch a {
	case AnomalyCommitWithoutCell:
		return "commit without pending cell"
	case AnomalyCommitWithoutRowKey:
		return "commit without row key"
	case AnomalyValueWithoutCell:
		return "value without pending cell"
	}
	return "unknown anomaly"
}

// Fold applies one chunk to the assembly state. It returns the next state, the row the chunk
// committed (if any), and the anomalies it ran into.
//
// Fold takes ownership of s: the caller must only keep using the returned state. Bytes taken
// from c are copied, so the caller may reuse the chunk's buffers.
func Fold(s AssemblyState, c litetable.Chunk) (AssemblyState, *litetable.Row, []Anomaly) {
	var anomalies []Anomaly

	// a new row key means a new row. The previous row is not checked for a clean close.
	if len(c.RowKey) > 0 {
		if s.Row == nil {
			s.Row = &RowState{}
		}
		s.Row.Key = bytes.Clone(c.RowKey)
	}

	// a qualifier starts a new cell and closes the pending one. The family is taken from this
	// chunk only; when it is missing the new cell has no family. With no pending cell the value
	// buffer is left alone, so the new cell inherits whatever was buffered.
	if c.Qualifier != nil {
		s = s.closeCell()
		if s.Row == nil {
			s.Row = &RowState{}
		}

		var family *litetable.StringValue
		if c.FamilyName != nil {
			family = litetable.String(c.FamilyName.Value)
		}
		s.Cell = &CellState{
			Family:    family,
			Qualifier: bytes.Clone(c.Qualifier.Value),
			Timestamp: c.TimestampMicros,
		}
	}

	if len(c.Value) > 0 {
		if s.Cell == nil {
			anomalies = append(anomalies, AnomalyValueWithoutCell)
		}
		s.Value = append(s.Value, c.Value...)
	}

	switch c.RowStatus {
	case litetable.RowStatusCommit:
		// without a pending cell the value buffer stays for the next cell.
		if s.Cell == nil {
			anomalies = append(anomalies, AnomalyCommitWithoutCell)
		}
		s = s.closeCell()

		var row *litetable.Row
		if s.Row != nil && len(s.Row.Key) > 0 {
			row = &litetable.Row{
				Key:   s.Row.Key,
				Cells: s.Row.Cells,
			}
		} else {
			anomalies = append(anomalies, AnomalyCommitWithoutRowKey)
		}
		s.Row = nil

		return s, row, anomalies
	case litetable.RowStatusReset:
		s.Row = nil
		s.Cell = nil
		s.Value = nil
	}

	return s, nil, anomalies
}
