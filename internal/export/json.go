package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"indicomp/internal/models"
)

// JSON writes a list of records. Keys follow header order, which a map would
// not preserve, so each record is assembled by hand.
func JSON(w io.Writer, ds *models.Dataset) error {
	if err := checkDataset(ds); err != nil {
		return err
	}

	column := ds.Scope.Column()

	var compact bytes.Buffer

	compact.WriteByte('[')

	for i, row := range ds.Rows {
		if i > 0 {
			compact.WriteByte(',')
		}

		compact.WriteByte('{')

		if err := writePair(&compact, column, row.Entity.Name); err != nil {
			return err
		}

		for _, ind := range ds.Indicators {
			compact.WriteByte(',')

			if err := writePair(&compact, ind, row.Get(ind)); err != nil {
				return err
			}
		}

		compact.WriteByte('}')
	}

	compact.WriteByte(']')

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", "  "); err != nil {
		return fmt.Errorf("failed to indent json: %w", err)
	}

	out.WriteByte('\n')

	if _, err := out.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write json: %w", err)
	}

	return nil
}

func writePair(buf *bytes.Buffer, key string, value any) error {
	k, err := json.Marshal(key)
	if err != nil {
		return fmt.Errorf("failed to encode key %q: %w", key, err)
	}

	v, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode value for %q: %w", key, err)
	}

	buf.Write(k)
	buf.WriteByte(':')
	buf.Write(v)

	return nil
}
