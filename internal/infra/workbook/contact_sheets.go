package workbook

import (
	"context"
	"fmt"
	"strings"
	"time"

	"casework_notifier/internal/domain/contact"
	"casework_notifier/internal/domain/period"

	"github.com/xuri/excelize/v2"
)

// contactSheetSuffix: monthly sheets are named "<MonthName> Contacts".
const contactSheetSuffix = " Contacts"

// Fixed 0-based column offsets of a contact row.
const (
	colChild = iota
	colCaseID
	colDateSeen
	colSeenBy
	colDateEntered
	colLastReminder
	colMissed
	colMissedReason
)

// ContactSheets implements contact.Repository over the monthly sheets.
type ContactSheets struct {
	wb *Workbook
}

func NewContactSheets(wb *Workbook) *ContactSheets {
	return &ContactSheets{wb: wb}
}

// Sheets returns every sheet whose name matches "<MonthName> Contacts".
// A sheet with an unrecognized month name is left out, never an error:
// unknown sheets are skipped, they don't crash the run.
func (r *ContactSheets) Sheets(ctx context.Context) ([]contact.Sheet, error) {
	var sheets []contact.Sheet
	err := r.wb.view(func(f *excelize.File) error {
		for _, name := range f.GetSheetList() {
			if !strings.HasSuffix(name, contactSheetSuffix) {
				continue
			}
			month, err := period.FromMonthName(strings.TrimSuffix(name, contactSheetSuffix))
			if err != nil {
				continue
			}
			sheets = append(sheets, contact.Sheet{Name: name, Month: month})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sheets, nil
}

// Rows parses the data rows of one monthly sheet. Row 1 is the header.
// Field validation is left to the engine so skipped rows can be counted.
func (r *ContactSheets) Rows(ctx context.Context, sheet contact.Sheet) ([]contact.Row, error) {
	var out []contact.Row
	err := r.wb.view(func(f *excelize.File) error {
		rows, err := f.GetRows(sheet.Name)
		if err != nil {
			return fmt.Errorf("reading sheet %s: %w", sheet.Name, err)
		}
		for i, cells := range rows {
			if i == 0 {
				continue // header
			}
			out = append(out, contact.Row{
				Index:            i + 1, // 1-based workbook row
				ChildName:        strings.TrimSpace(cellAt(cells, colChild)),
				CaseID:           strings.TrimSpace(cellAt(cells, colCaseID)),
				DateSeen:         parseDate(cellAt(cells, colDateSeen)),
				SeenBy:           strings.TrimSpace(cellAt(cells, colSeenBy)),
				DateEntered:      strings.TrimSpace(cellAt(cells, colDateEntered)),
				LastReminderSent: parseDate(cellAt(cells, colLastReminder)),
				Missed:           parseFlag(cellAt(cells, colMissed)),
				MissedReason:     strings.TrimSpace(cellAt(cells, colMissedReason)),
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// MarkReminderSent writes sentOn into the last-reminder column of the row.
func (r *ContactSheets) MarkReminderSent(ctx context.Context, sheet contact.Sheet, rowIndex int, sentOn time.Time) error {
	return r.wb.update(func(f *excelize.File) error {
		cell, err := excelize.CoordinatesToCellName(colLastReminder+1, rowIndex)
		if err != nil {
			return err
		}
		return f.SetCellValue(sheet.Name, cell, sentOn.Format(DateLayout))
	})
}
