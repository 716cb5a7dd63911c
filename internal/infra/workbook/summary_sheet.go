package workbook

import (
	"context"
	"fmt"
	"strings"

	"casework_notifier/internal/domain/summary"

	"github.com/xuri/excelize/v2"
)

// Fixed 0-based column offsets of the summary sheet. The sheet carries
// other columns the notifier doesn't read; only these positions matter.
const (
	colSummaryName      = 0
	colSummaryCourtDate = 4
	colSummaryDueDate   = 7
	colSummarySubmitted = 9
	colSummaryLink      = 12
)

// SummarySheet implements summary.Repository over the court-summary sheet.
type SummarySheet struct {
	wb        *Workbook
	sheetName string
}

func NewSummarySheet(wb *Workbook, sheetName string) *SummarySheet {
	return &SummarySheet{wb: wb, sheetName: sheetName}
}

func (r *SummarySheet) Rows(ctx context.Context) ([]summary.Row, error) {
	var out []summary.Row
	err := r.wb.view(func(f *excelize.File) error {
		rows, err := f.GetRows(r.sheetName)
		if err != nil {
			return fmt.Errorf("reading sheet %s: %w", r.sheetName, err)
		}
		for i, cells := range rows {
			if i == 0 {
				continue // header
			}
			out = append(out, summary.Row{
				Index:     i + 1,
				CaseName:  strings.TrimSpace(cellAt(cells, colSummaryName)),
				CourtDate: parseDate(cellAt(cells, colSummaryCourtDate)),
				DueDate:   parseDate(cellAt(cells, colSummaryDueDate)),
				Submitted: parseFlag(cellAt(cells, colSummarySubmitted)),
				Link:      strings.TrimSpace(cellAt(cells, colSummaryLink)),
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
