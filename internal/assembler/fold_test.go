package assembler

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/litetable/litetable-rowstream/internal/litetable"
	"github.com/stretchr/testify/require"
	"testing"
)

type chunkOpt func(c *litetable.Chunk)

func chunk(opts ...chunkOpt) litetable.Chunk {
	var c litetable.Chunk
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func key(k string) chunkOpt {
	return func(c *litetable.Chunk) { c.RowKey = []byte(k) }
}

// cell starts a new cell with a family.
func cell(family, qualifier string, ts int64) chunkOpt {
	return func(c *litetable.Chunk) {
		c.FamilyName = litetable.String(family)
		c.Qualifier = litetable.Bytes([]byte(qualifier))
		c.TimestampMicros = ts
	}
}

// qualifierOnly starts a new cell without resending the family.
func qualifierOnly(qualifier string, ts int64) chunkOpt {
	return func(c *litetable.Chunk) {
		c.Qualifier = litetable.Bytes([]byte(qualifier))
		c.TimestampMicros = ts
	}
}

func value(v string) chunkOpt {
	return func(c *litetable.Chunk) { c.Value = append(c.Value, v...) }
}

func timestamp(ts int64) chunkOpt {
	return func(c *litetable.Chunk) { c.TimestampMicros = ts }
}

func commit(c *litetable.Chunk) { c.RowStatus = litetable.RowStatusCommit }

func reset(c *litetable.Chunk) { c.RowStatus = litetable.RowStatusReset }

func foldAll(chunks []litetable.Chunk) ([]litetable.Row, []Anomaly, AssemblyState) {
	var (
		state     AssemblyState
		rows      []litetable.Row
		anomalies []Anomaly
	)
	for _, c := range chunks {
		var (
			row   *litetable.Row
			found []Anomaly
		)
		state, row, found = Fold(state, c)
		anomalies = append(anomalies, found...)
		if row != nil {
			rows = append(rows, *row)
		}
	}
	return rows, anomalies, state
}

func testCell(family, qualifier, value string, ts int64) litetable.Cell {
	return litetable.Cell{
		FamilyName:      family,
		Qualifier:       []byte(qualifier),
		Value:           []byte(value),
		TimestampMicros: ts,
	}
}

func TestFold(t *testing.T) {
	tests := map[string]struct {
		chunks    []litetable.Chunk
		want      []litetable.Row
		anomalies []Anomaly
	}{
		"single chunk row": {
			chunks: []litetable.Chunk{
				chunk(key("K"), cell("F", "Q", 100), value("V"), commit),
			},
			want: []litetable.Row{
				{Key: litetable.RowKey("K"), Cells: []litetable.Cell{testCell("F", "Q", "V", 100)}},
			},
		},
		"split value keeps first timestamp": {
			chunks: []litetable.Chunk{
				chunk(key("K"), cell("F", "Q", 100), value("V1")),
				chunk(value("V2"), timestamp(999)),
				chunk(value("V3"), commit),
			},
			want: []litetable.Row{
				{Key: litetable.RowKey("K"), Cells: []litetable.Cell{testCell("F", "Q", "V1V2V3", 100)}},
			},
		},
		"next qualifier closes the pending cell": {
			chunks: []litetable.Chunk{
				chunk(key("K"), cell("F", "Qa", 1), value("a")),
				chunk(cell("G", "Qb", 2), value("b")),
				chunk(commit),
			},
			want: []litetable.Row{
				{Key: litetable.RowKey("K"), Cells: []litetable.Cell{
					testCell("F", "Qa", "a", 1),
					testCell("G", "Qb", "b", 2),
				}},
			},
		},
		"cells are not sorted": {
			chunks: []litetable.Chunk{
				chunk(key("K"), cell("z", "2", 2), value("b")),
				chunk(cell("a", "1", 1), value("a"), commit),
			},
			want: []litetable.Row{
				{Key: litetable.RowKey("K"), Cells: []litetable.Cell{
					testCell("z", "2", "b", 2),
					testCell("a", "1", "a", 1),
				}},
			},
		},
		"family is not carried to the next cell": {
			chunks: []litetable.Chunk{
				chunk(key("K"), cell("F", "Qa", 1), value("a")),
				chunk(qualifierOnly("Qb", 2), value("b"), commit),
			},
			want: []litetable.Row{
				{Key: litetable.RowKey("K"), Cells: []litetable.Cell{
					testCell("F", "Qa", "a", 1),
					testCell("", "Qb", "b", 2),
				}},
			},
		},
		"empty qualifier still starts a cell": {
			chunks: []litetable.Chunk{
				chunk(key("K"), cell("F", "", 1), value("a")),
				chunk(cell("F", "", 2), value("b"), commit),
			},
			want: []litetable.Row{
				{Key: litetable.RowKey("K"), Cells: []litetable.Cell{
					testCell("F", "", "a", 1),
					testCell("F", "", "b", 2),
				}},
			},
		},
		"cell with empty value": {
			chunks: []litetable.Chunk{
				chunk(key("K"), cell("F", "Q", 1), commit),
			},
			want: []litetable.Row{
				{Key: litetable.RowKey("K"), Cells: []litetable.Cell{testCell("F", "Q", "", 1)}},
			},
		},
		"reset discards progress": {
			chunks: []litetable.Chunk{
				chunk(key("K"), cell("F", "Q", 1), value("partial")),
				chunk(cell("F", "Q2", 1), value("more")),
				chunk(reset),
				chunk(key("K2"), cell("F", "Q", 2), value("fresh"), commit),
			},
			want: []litetable.Row{
				{Key: litetable.RowKey("K2"), Cells: []litetable.Cell{testCell("F", "Q", "fresh", 2)}},
			},
		},
		"reset drops the pending value buffer": {
			chunks: []litetable.Chunk{
				chunk(key("K"), cell("F", "Q", 1), value("stale")),
				chunk(reset),
				chunk(key("K"), cell("F", "Q", 1), value("fresh"), commit),
			},
			want: []litetable.Row{
				{Key: litetable.RowKey("K"), Cells: []litetable.Cell{testCell("F", "Q", "fresh", 1)}},
			},
		},
		"value before the first qualifier starts the next cell": {
			chunks: []litetable.Chunk{
				chunk(key("K"), value("x")),
				chunk(cell("F", "Q", 1), value("y"), commit),
			},
			want: []litetable.Row{
				{Key: litetable.RowKey("K"), Cells: []litetable.Cell{testCell("F", "Q", "xy", 1)}},
			},
			anomalies: []Anomaly{AnomalyValueWithoutCell},
		},
		"value after a reset is buffered for the next cell": {
			chunks: []litetable.Chunk{
				chunk(key("K"), cell("F", "Q", 1), value("stale")),
				chunk(reset),
				chunk(value("orphan")),
				chunk(key("K"), cell("F", "Q", 1), value("fresh"), commit),
			},
			want: []litetable.Row{
				{Key: litetable.RowKey("K"), Cells: []litetable.Cell{testCell("F", "Q", "orphanfresh", 1)}},
			},
			anomalies: []Anomaly{AnomalyValueWithoutCell},
		},
		"commit without a cell keeps the value buffer": {
			chunks: []litetable.Chunk{
				chunk(key("K1"), value("x"), commit),
				chunk(key("K2"), cell("F", "Q", 1), value("y"), commit),
			},
			want: []litetable.Row{
				{Key: litetable.RowKey("K1")},
				{Key: litetable.RowKey("K2"), Cells: []litetable.Cell{testCell("F", "Q", "xy", 1)}},
			},
			anomalies: []Anomaly{AnomalyValueWithoutCell, AnomalyCommitWithoutCell},
		},
		"rows keep commit order": {
			chunks: []litetable.Chunk{
				chunk(key("b"), cell("F", "Q", 1), value("1"), commit),
				chunk(key("a"), cell("F", "Q", 1), value("2"), commit),
				chunk(key("c"), cell("F", "Q", 1), value("3"), commit),
			},
			want: []litetable.Row{
				{Key: litetable.RowKey("b"), Cells: []litetable.Cell{testCell("F", "Q", "1", 1)}},
				{Key: litetable.RowKey("a"), Cells: []litetable.Cell{testCell("F", "Q", "2", 1)}},
				{Key: litetable.RowKey("c"), Cells: []litetable.Cell{testCell("F", "Q", "3", 1)}},
			},
		},
		"commit without a pending cell": {
			chunks: []litetable.Chunk{
				chunk(key("K"), commit),
			},
			want: []litetable.Row{
				{Key: litetable.RowKey("K")},
			},
			anomalies: []Anomaly{AnomalyCommitWithoutCell},
		},
		"commit without a row key drops the row": {
			chunks: []litetable.Chunk{
				chunk(cell("F", "Q", 1), value("lost"), commit),
				chunk(key("K2"), cell("F", "Q", 2), value("kept"), commit),
			},
			want: []litetable.Row{
				{Key: litetable.RowKey("K2"), Cells: []litetable.Cell{testCell("F", "Q", "kept", 2)}},
			},
			anomalies: []Anomaly{AnomalyCommitWithoutRowKey},
		},
		"bare commit reports both anomalies": {
			chunks: []litetable.Chunk{
				chunk(commit),
			},
			anomalies: []Anomaly{AnomalyCommitWithoutCell, AnomalyCommitWithoutRowKey},
		},
		"new row key mid row keeps the open cells": {
			chunks: []litetable.Chunk{
				chunk(key("K1"), cell("F", "Qa", 1), value("a")),
				chunk(key("K2"), cell("F", "Qb", 2), value("b"), commit),
			},
			want: []litetable.Row{
				{Key: litetable.RowKey("K2"), Cells: []litetable.Cell{
					testCell("F", "Qa", "a", 1),
					testCell("F", "Qb", "b", 2),
				}},
			},
		},
		"stream ending mid row yields committed rows only": {
			chunks: []litetable.Chunk{
				chunk(key("K1"), cell("F", "Q", 1), value("done"), commit),
				chunk(key("K2"), cell("F", "Q", 1), value("half")),
			},
			want: []litetable.Row{
				{Key: litetable.RowKey("K1"), Cells: []litetable.Cell{testCell("F", "Q", "done", 1)}},
			},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			rows, anomalies, _ := foldAll(tc.chunks)

			if diff := cmp.Diff(tc.want, rows, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("rows mismatch (-want +got):\n%s", diff)
			}
			require.Equal(t, tc.anomalies, anomalies)
		})
	}
}

func TestFold_StateTransitions(t *testing.T) {
	req := require.New(t)

	var state AssemblyState
	req.True(state.Empty())

	state, row, _ := Fold(state, chunk(key("K")))
	req.Nil(row)
	req.NotNil(state.Row)
	req.Nil(state.Cell)
	req.Equal(litetable.RowKey("K"), state.Row.Key)

	state, row, _ = Fold(state, chunk(cell("F", "Q", 7), value("ab")))
	req.Nil(row)
	req.NotNil(state.Cell)
	req.Equal([]byte("ab"), state.Value)
	req.Equal(int64(7), state.Cell.Timestamp)
	req.Empty(state.Row.Cells)

	state, row, _ = Fold(state, chunk(qualifierOnly("Q2", 8)))
	req.Nil(row)
	req.Len(state.Row.Cells, 1)
	req.Nil(state.Cell.Family)
	req.Empty(state.Value)

	state, row, anomalies := Fold(state, chunk(commit))
	req.NotNil(row)
	req.Empty(anomalies)
	req.Len(row.Cells, 2)
	req.True(state.Empty())
}

func TestFold_ResetClearsEverything(t *testing.T) {
	req := require.New(t)

	rows, _, state := foldAll([]litetable.Chunk{
		chunk(key("K"), cell("F", "Q", 1), value("abc")),
		chunk(reset),
	})

	req.Empty(rows)
	req.True(state.Empty())
}

func TestFold_ValueIsCopied(t *testing.T) {
	req := require.New(t)

	buf := []byte("first")
	rows, _, _ := foldAll([]litetable.Chunk{
		{RowKey: []byte("K"), FamilyName: litetable.String("F"), Qualifier: litetable.Bytes([]byte("Q")), Value: buf},
		{RowStatus: litetable.RowStatusCommit},
	})
	copy(buf, "XXXXX")

	req.Len(rows, 1)
	req.Equal([]byte("first"), rows[0].Cells[0].Value)
}

func TestFold_KeyAndQualifierAreCopied(t *testing.T) {
	req := require.New(t)

	// a source may reuse its receive buffers once Fold has returned.
	keyBuf := []byte("key1")
	qualifierBuf := []byte("qual")
	familyBuf := litetable.String("fam")
	rows, _, _ := foldAll([]litetable.Chunk{
		{RowKey: keyBuf, FamilyName: familyBuf, Qualifier: litetable.Bytes(qualifierBuf), Value: []byte("v")},
		{RowStatus: litetable.RowStatusCommit},
	})
	copy(keyBuf, "XXXX")
	copy(qualifierBuf, "YYYY")
	familyBuf.Value = "ZZZ"

	req.Len(rows, 1)
	req.Equal(litetable.RowKey("key1"), rows[0].Key)
	req.Equal([]byte("qual"), rows[0].Cells[0].Qualifier)
	req.Equal("fam", rows[0].Cells[0].FamilyName)
}

func TestAnomaly_String(t *testing.T) {
	tests := map[string]struct {
		anomaly Anomaly
		want    string
	}{
		"commit without cell":    {anomaly: AnomalyCommitWithoutCell, want: "commit without pending cell"},
		"commit without row key": {anomaly: AnomalyCommitWithoutRowKey, want: "commit without row key"},
		"value without cell":     {anomaly: AnomalyValueWithoutCell, want: "value without pending cell"},
		"unknown":                {anomaly: Anomaly(0), want: "unknown anomaly"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.anomaly.String())
		})
	}
}
