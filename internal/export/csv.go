package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"indicomp/internal/models"
)

// CSV writes one row per entity with the header from Header.
func CSV(w io.Writer, ds *models.Dataset) error {
	if err := checkDataset(ds); err != nil {
		return err
	}

	cw := csv.NewWriter(w)

	if err := cw.Write(Header(ds)); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, row := range ds.Rows {
		record := make([]string, 0, len(ds.Indicators)+1)
		record = append(record, row.Entity.Name)

		for _, ind := range ds.Indicators {
			record = append(record, rawCell(row.Get(ind)))
		}

		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row for %s: %w", row.Entity.Name, err)
		}
	}

	cw.Flush()

	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}

	return nil
}
