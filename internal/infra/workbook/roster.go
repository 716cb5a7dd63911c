package workbook

import (
	"context"
	"strings"

	"casework_notifier/internal/domain/roster"

	"github.com/xuri/excelize/v2"
)

// Roster sheet column offsets: name, email, supervisor, supervisor email,
// region. Region is optional and blank on rosters without the column.
const (
	colRosterName = iota
	colRosterEmail
	colRosterSupervisorName
	colRosterSupervisorEmail
	colRosterRegion
)

// RosterDirectory implements roster.Directory by scanning an ordered list
// of roster sheets. First match across sheets wins; a missing sheet is
// treated as empty, not as an error.
type RosterDirectory struct {
	wb     *Workbook
	sheets []string
}

func NewRosterDirectory(wb *Workbook, sheets []string) *RosterDirectory {
	return &RosterDirectory{wb: wb, sheets: sheets}
}

func (d *RosterDirectory) FindByName(ctx context.Context, displayName string) (*roster.Worker, error) {
	wanted := strings.TrimSpace(displayName)
	if wanted == "" {
		return nil, roster.ErrWorkerNotFound
	}

	var found *roster.Worker
	err := d.wb.view(func(f *excelize.File) error {
		for _, sheetName := range d.sheets {
			rows, err := f.GetRows(sheetName)
			if err != nil {
				continue // roster sheet absent
			}
			for i, cells := range rows {
				if i == 0 {
					continue // header
				}
				if strings.TrimSpace(cellAt(cells, colRosterName)) != wanted {
					continue
				}
				found = &roster.Worker{
					DisplayName:     wanted,
					Email:           strings.TrimSpace(cellAt(cells, colRosterEmail)),
					SupervisorName:  strings.TrimSpace(cellAt(cells, colRosterSupervisorName)),
					SupervisorEmail: strings.TrimSpace(cellAt(cells, colRosterSupervisorEmail)),
					Region:          strings.TrimSpace(cellAt(cells, colRosterRegion)),
				}
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, roster.ErrWorkerNotFound
	}
	return found, nil
}
