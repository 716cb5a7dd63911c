// Package workbook adapts the tracker spreadsheet to the domain
// repository interfaces: monthly contact sheets, the court-summary
// sheet, roster sheets and the "Variables" configuration sheet.
package workbook

import (
	"fmt"
	"sync"

	"github.com/xuri/excelize/v2"
)

// Workbook wraps access to the tracker file. Path-backed workbooks are
// reopened on every operation so edits made by casework staff between
// runs are always picked up; writes are saved back immediately. The
// mutex guards the open-mutate-save window, since cron runs jobs on
// separate goroutines.
type Workbook struct {
	mu   sync.Mutex
	path string
	file *excelize.File // set instead of path for in-memory workbooks
}

// Open returns a workbook backed by an .xlsx file on disk.
func Open(path string) *Workbook {
	return &Workbook{path: path}
}

// FromFile returns a workbook over an already-open excelize file. Writes
// mutate the file in place and are not saved to disk; used in tests.
func FromFile(f *excelize.File) *Workbook {
	return &Workbook{file: f}
}

// view runs fn against a read-only snapshot of the workbook.
func (w *Workbook) view(fn func(f *excelize.File) error) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.file != nil {
		return fn(w.file)
	}
	f, err := excelize.OpenFile(w.path)
	if err != nil {
		return fmt.Errorf("opening tracker workbook %s: %w", w.path, err)
	}
	defer f.Close()
	return fn(f)
}

// update runs fn and saves the result back to disk.
func (w *Workbook) update(fn func(f *excelize.File) error) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.file != nil {
		return fn(w.file)
	}
	f, err := excelize.OpenFile(w.path)
	if err != nil {
		return fmt.Errorf("opening tracker workbook %s: %w", w.path, err)
	}
	defer f.Close()
	if err := fn(f); err != nil {
		return err
	}
	if err := f.Save(); err != nil {
		return fmt.Errorf("saving tracker workbook %s: %w", w.path, err)
	}
	return nil
}
