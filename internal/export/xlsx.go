package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"indicomp/internal/models"
)

// SheetName is the single worksheet of an XLSX export.
const SheetName = "Comparison"

const (
	entityColWidth    = 24
	indicatorColWidth = 18
)

// XLSX writes the dataset as a one-sheet workbook. Numbers are stored as
// numeric cells; missing values leave the cell empty.
func XLSX(w io.Writer, ds *models.Dataset) error {
	if err := checkDataset(ds); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	for i, title := range Header(ds) {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("failed to address header cell: %w", err)
		}

		if err := f.SetCellValue(SheetName, cell, title); err != nil {
			return fmt.Errorf("failed to write header %q: %w", title, err)
		}

		width := float64(indicatorColWidth)
		if i == 0 {
			width = entityColWidth
		}

		col, _, _ := excelize.SplitCellName(cell)
		if err := f.SetColWidth(SheetName, col, col, width); err != nil {
			return fmt.Errorf("failed to size column %s: %w", col, err)
		}
	}

	for r, row := range ds.Rows {
		line := r + 2

		if err := f.SetCellValue(SheetName, fmt.Sprintf("A%d", line), row.Entity.Name); err != nil {
			return fmt.Errorf("failed to write %s: %w", row.Entity.Name, err)
		}

		for c, ind := range ds.Indicators {
			v := row.Get(ind)
			if !v.Valid {
				continue
			}

			cell, err := excelize.CoordinatesToCellName(c+2, line)
			if err != nil {
				return fmt.Errorf("failed to address cell: %w", err)
			}

			if err := f.SetCellValue(SheetName, cell, v.Number); err != nil {
				return fmt.Errorf("failed to write %s/%s: %w", row.Entity.Name, ind, err)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}

	return nil
}
