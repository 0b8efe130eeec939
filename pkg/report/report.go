// Package report renders record lists as xlsx workbooks.
package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Column maps one record field to a spreadsheet column.
type Column[T any] struct {
	Header string
	Value  func(T) any
}

// Write renders rows into a single-sheet workbook: one header row from
// cols, then one row per record, in order.
func Write[T any](w io.Writer, sheet string, cols []Column[T], rows []T) error {
	if len(cols) == 0 {
		return fmt.Errorf("report %q: no columns", sheet)
	}
	x := excelize.NewFile()
	defer x.Close()

	if err := x.SetSheetName(x.GetSheetName(0), sheet); err != nil {
		return err
	}
	sw, err := x.NewStreamWriter(sheet)
	if err != nil {
		return err
	}

	head := make([]any, len(cols))
	for i, col := range cols {
		head[i] = col.Header
	}
	if err := sw.SetRow("A1", head); err != nil {
		return err
	}
	for r, row := range rows {
		vals := make([]any, len(cols))
		for i, col := range cols {
			vals[i] = col.Value(row)
		}
		addr, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(addr, vals); err != nil {
			return err
		}
	}
	if err := sw.Flush(); err != nil {
		return err
	}
	return x.Write(w)
}
