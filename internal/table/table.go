// Package table holds the rows a RowStream server serves, ordered by row key.
//
// Rows are kept in a single btree guarded by a RWMutex. Reads copy the selected rows out under
// the read lock so that streaming them to a slow client never holds the lock.
package table

import (
	"bytes"
	"errors"
	"github.com/google/btree"
	"github.com/litetable/litetable-rowstream/internal/litetable"
	"slices"
	"sync"
)

const degree = 32

var errEmptyKey = errors.New("row key cannot be empty")

type Table struct {
	mutex sync.RWMutex
	tree  *btree.BTreeG[litetable.Row]
}

// New returns an empty table.
func New() *Table {
	return &Table{
		tree: btree.NewG(degree, litetable.Row.Less),
	}
}

// Put adds the row, replacing any row with the same key.
func (t *Table) Put(row litetable.Row) error {
	if len(row.Key) == 0 {
		return errEmptyKey
	}

	t.mutex.Lock()
	defer t.mutex.Unlock()
	t.tree.ReplaceOrInsert(row)
	return nil
}

// Get returns the row stored under key.
func (t *Table) Get(key []byte) (litetable.Row, bool) {
	t.mutex.RLock()
	defer t.mutex.RUnlock()
	return t.tree.Get(litetable.Row{Key: key})
}

// Delete removes the row stored under key and reports whether it existed.
func (t *Table) Delete(key []byte) bool {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	_, found := t.tree.Delete(litetable.Row{Key: key})
	return found
}

// Len is the number of rows in the table.
func (t *Table) Len() int {
	t.mutex.RLock()
	defer t.mutex.RUnlock()
	return t.tree.Len()
}

// Query selects rows. Keys and Prefix are mutually exclusive; with neither set every row matches.
// A Limit of zero means no limit.
type Query struct {
	Keys   [][]byte
	Prefix []byte
	Limit  int64
}

// Read returns the rows matching q in key order.
func (t *Table) Read(q Query) []litetable.Row {
	var rows []litetable.Row
	collect := func(row litetable.Row) bool {
		rows = append(rows, row)
		return q.Limit <= 0 || int64(len(rows)) < q.Limit
	}

	t.mutex.RLock()
	defer t.mutex.RUnlock()

	switch {
	case len(q.Keys) > 0:
		keys := slices.Clone(q.Keys)
		slices.SortFunc(keys, bytes.Compare)
		keys = slices.CompactFunc(keys, bytes.Equal)

		for _, k := range keys {
			row, found := t.tree.Get(litetable.Row{Key: k})
			if !found {
				continue
			}
			if !collect(row) {
				break
			}
		}
	case len(q.Prefix) > 0:
		t.tree.AscendGreaterOrEqual(litetable.Row{Key: q.Prefix}, func(row litetable.Row) bool {
			if !bytes.HasPrefix(row.Key, q.Prefix) {
				return false
			}
			return collect(row)
		})
	default:
		t.tree.Ascend(collect)
	}

	return rows
}
