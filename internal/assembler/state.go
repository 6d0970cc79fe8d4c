package assembler

import (
	"github.com/litetable/litetable-rowstream/internal/litetable"
)

// RowState is the open row. A nil *RowState means no row is open. Key may still be empty when
// cells start before the row key has been seen.
type RowState struct {
	Key   litetable.RowKey
	Cells []litetable.Cell
}

// CellState is the header of the pending cell. A nil *CellState means no cell has started.
type CellState struct {
	Family    *litetable.StringValue
	Qualifier []byte
	Timestamp int64
}

// AssemblyState is everything a decode call knows about the row it is currently building.
// It is owned by exactly one decode call and handed through Fold by value.
//
// Value is the pending value buffer. It fills independently of Cell: bytes that arrive before
// any cell has started are kept and become the start of the next cell's value.
type AssemblyState struct {
	Row   *RowState
	Cell  *CellState
	Value []byte
}

// Empty reports whether there is no open row, no pending cell and no buffered value.
func (s AssemblyState) Empty() bool {
	return s.Row == nil && s.Cell == nil && len(s.Value) == 0
}

// closeCell moves the pending cell and the value buffer into the open row. The family defaults
// to "" because it is only sent on the first chunk of a cell.
func (s AssemblyState) closeCell() AssemblyState {
	if s.Cell == nil {
		return s
	}

	family := ""
	if s.Cell.Family != nil {
		family = s.Cell.Family.Value
	}

	if s.Row == nil {
		s.Row = &RowState{}
	}
	s.Row.Cells = append(s.Row.Cells, litetable.Cell{
		FamilyName:      family,
		Qualifier:       s.Cell.Qualifier,
		Value:           s.Value,
		TimestampMicros: s.Cell.Timestamp,
	})
	s.Cell = nil
	s.Value = nil

	return s
}
