package workbook

import (
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// VariablesSheet is the name of the two-column (key, value) sheet holding
// the configuration source of truth.
const VariablesSheet = "Variables"

// VariablesSource implements settings.Source over the Variables sheet.
type VariablesSource struct {
	wb *Workbook
}

func NewVariablesSource(wb *Workbook) *VariablesSource {
	return &VariablesSource{wb: wb}
}

// ReadAll rebuilds the full mapping from the sheet. Keys are trimmed and
// case-sensitive; on a duplicate key the first row wins, matching the
// upsert behavior of WriteValue which only ever touches the first match.
func (s *VariablesSource) ReadAll(ctx context.Context) (map[string]string, error) {
	snapshot := make(map[string]string)
	err := s.wb.view(func(f *excelize.File) error {
		rows, err := f.GetRows(VariablesSheet)
		if err != nil {
			return fmt.Errorf("reading %s sheet: %w", VariablesSheet, err)
		}
		for _, cells := range rows {
			key := strings.TrimSpace(cellAt(cells, 0))
			if key == "" {
				continue
			}
			if _, exists := snapshot[key]; exists {
				continue
			}
			snapshot[key] = strings.TrimSpace(cellAt(cells, 1))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}

// WriteValue overwrites the value cell of the first row whose key matches,
// or appends a new (key, value) row when the key is absent. No duplicate
// rows for the same key are ever created.
func (s *VariablesSource) WriteValue(ctx context.Context, key, value string) error {
	return s.wb.update(func(f *excelize.File) error {
		rows, err := f.GetRows(VariablesSheet)
		if err != nil {
			return fmt.Errorf("reading %s sheet: %w", VariablesSheet, err)
		}
		for i, cells := range rows {
			if strings.TrimSpace(cellAt(cells, 0)) == key {
				cell, err := excelize.CoordinatesToCellName(2, i+1)
				if err != nil {
					return err
				}
				return f.SetCellValue(VariablesSheet, cell, value)
			}
		}
		// Key absent: append after the last row.
		rowIdx := len(rows) + 1
		keyCell, err := excelize.CoordinatesToCellName(1, rowIdx)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(VariablesSheet, keyCell, key); err != nil {
			return err
		}
		valueCell, err := excelize.CoordinatesToCellName(2, rowIdx)
		if err != nil {
			return err
		}
		return f.SetCellValue(VariablesSheet, valueCell, value)
	})
}
