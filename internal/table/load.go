package table

import (
	"fmt"
	"github.com/go-json-experiment/json"
	"github.com/litetable/litetable-rowstream/internal/litetable"
	"os"
)

// seedRow is the on-disk form of a row. Keys, qualifiers and values are written as text so seed
// files can be edited by hand.
type seedRow struct {
	Key   string     `json:"key"`
	Cells []seedCell `json:"cells"`
}

type seedCell struct {
	Family          string `json:"family"`
	Qualifier       string `json:"qualifier"`
	Value           string `json:"value"`
	TimestampMicros int64  `json:"timestampMicros"`
}

// LoadFile seeds the table from a JSON array of rows and returns how many rows it stored.
func (t *Table) LoadFile(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer f.Close()

	var seeds []seedRow
	if err = json.UnmarshalRead(f, &seeds); err != nil {
		return 0, fmt.Errorf("failed to decode seed file %s: %w", path, err)
	}

	for i, s := range seeds {
		row := litetable.Row{
			Key:   litetable.RowKey(s.Key),
			Cells: make([]litetable.Cell, 0, len(s.Cells)),
		}
		for _, c := range s.Cells {
			row.Cells = append(row.Cells, litetable.Cell{
				FamilyName:      c.Family,
				Qualifier:       []byte(c.Qualifier),
				Value:           []byte(c.Value),
				TimestampMicros: c.TimestampMicros,
			})
		}
		if err = t.Put(row); err != nil {
			return i, fmt.Errorf("seed row %d: %w", i, err)
		}
	}

	return len(seeds), nil
}
