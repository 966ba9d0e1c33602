// Package export renders the hydration log as an Excel workbook so users
// can take their data with them.
package export

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"hydromate/internal/hydration"

	"github.com/xuri/excelize/v2"
)

// Exporter writes hydration data to XLSX workbooks.
type Exporter struct {
	store *hydration.Store
}

// NewExporter creates an exporter over the store.
func NewExporter(store *hydration.Store) *Exporter {
	return &Exporter{store: store}
}

// WriteWorkbook writes the full history and the current week's totals to w.
func (e *Exporter) WriteWorkbook(ctx context.Context, w io.Writer) error {
	f, err := e.build(ctx)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Write(w)
}

// SaveWorkbook writes the workbook to disk at path.
func (e *Exporter) SaveWorkbook(ctx context.Context, path string) error {
	f, err := e.build(ctx)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.SaveAs(path)
}

func (e *Exporter) build(ctx context.Context) (*excelize.File, error) {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", "Entries")

	if err := e.writeEntries(ctx, f); err != nil {
		return nil, err
	}
	if err := e.writeWeekly(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (e *Exporter) writeEntries(ctx context.Context, f *excelize.File) error {
	if err := writeRow(f, "Entries", 1, []interface{}{"ID", "Date", "Time", "Drink", "Category", "Milliliters"}); err != nil {
		return err
	}
	if err := boldHeader(f, "Entries", 6); err != nil {
		return err
	}

	entries := e.store.Entries(ctx)
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].DateTime.Before(entries[j].DateTime)
	})

	for i, entry := range entries {
		drink := e.store.DrinkTypeByID(entry.DrinkType)
		row := []interface{}{
			entry.ID,
			entry.DateTime.Format("2006-01-02"),
			entry.DateTime.Format("15:04"),
			drink.Name,
			string(drink.Category),
			entry.Milliliters,
		}
		if err := writeRow(f, "Entries", i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func (e *Exporter) writeWeekly(ctx context.Context, f *excelize.File) error {
	if _, err := f.NewSheet("Weekly"); err != nil {
		return fmt.Errorf("create sheet Weekly: %w", err)
	}
	if err := writeRow(f, "Weekly", 1, []interface{}{"Date", "Total (ml)"}); err != nil {
		return err
	}
	if err := boldHeader(f, "Weekly", 2); err != nil {
		return err
	}

	weekly := e.store.WeeklyData(ctx, time.Time{})
	keys := make([]string, 0, len(weekly))
	for k := range weekly {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for i, key := range keys {
		if err := writeRow(f, "Weekly", i+2, []interface{}{key, weekly[key]}); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	for i, val := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, val); err != nil {
			return err
		}
	}
	return nil
}

func boldHeader(f *excelize.File, sheet string, columns int) error {
	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return nil
	}
	startCell, _ := excelize.CoordinatesToCellName(1, 1)
	endCell, _ := excelize.CoordinatesToCellName(columns, 1)
	return f.SetCellStyle(sheet, startCell, endCell, style)
}
