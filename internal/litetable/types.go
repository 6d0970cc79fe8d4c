package litetable

import (
	"bytes"
)

// RowKey identifies a row. An empty key is never persisted; the assembler uses it to mean the
// key of the open row is not known yet.
type RowKey []byte

// String returns the key as text, which is how keys show up in logs.
func (k RowKey) String() string {
	return string(k)
}

// Cell is a single family:qualifier value of a Row at a point in time.
type Cell struct {
	FamilyName      string `json:"family"`
	Qualifier       []byte `json:"qualifier"`
	Value           []byte `json:"value"`
	TimestampMicros int64  `json:"timestampMicros"`
}

// Row defines a row of data in LiteTable as it arrives over a ReadRows stream:
//
// Example:
//
//	Row{
//	  Key: RowKey("row1"),
//	  Cells: []Cell{
//	    {FamilyName: "family1", Qualifier: []byte("q1"), Value: []byte("value1")},
//	    {FamilyName: "family1", Qualifier: []byte("q2"), Value: []byte("value2")},
//	    {FamilyName: "family2", Qualifier: []byte("q1"), Value: []byte("value3")},
//	  },
//	}
//
// Cells are kept in the order their chunks arrived; nothing is sorted.
type Row struct {
	Key   RowKey `json:"key"`
	Cells []Cell `json:"cells"`
}

// Less orders rows by key.
func (r Row) Less(other Row) bool {
	return bytes.Compare(r.Key, other.Key) < 0
}

// RowStatus is the per-chunk row signal.
type RowStatus int

const (
	// RowStatusContinue means more chunks follow for the open row.
	RowStatusContinue RowStatus = iota
	// RowStatusCommit closes the open row; it should be emitted.
	RowStatusCommit
	// RowStatusReset discards everything received for the open row.
	RowStatusReset
)

func (s RowStatus) String() string {
	switch s {
	case RowStatusContinue:
		return "continue"
	case RowStatusCommit:
		return "commit"
	case RowStatusReset:
		return "reset"
	}
	return "unknown"
}

// StringValue wraps an optional string so that "absent" and "empty" are distinguishable.
type StringValue struct {
	Value string `json:"value"`
}

// BytesValue wraps optional bytes so that "absent" and "empty" are distinguishable.
type BytesValue struct {
	Value []byte `json:"value"`
}

// String returns a present StringValue.
func String(s string) *StringValue {
	return &StringValue{Value: s}
}

// Bytes returns a present BytesValue.
func Bytes(b []byte) *BytesValue {
	return &BytesValue{Value: b}
}

// Chunk is one fragment of a ReadRows stream. It may start a row (RowKey), start a cell
// (FamilyName, Qualifier, TimestampMicros), carry part of a cell value, and close or reset the
// open row.
type Chunk struct {
	RowKey          []byte
	FamilyName      *StringValue
	Qualifier       *BytesValue
	TimestampMicros int64
	Value           []byte
	RowStatus       RowStatus
}
