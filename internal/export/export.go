// Package export projects a Dataset onto flat artifacts: CSV, JSON records,
// an XLSX workbook and an aligned terminal table. None of them transform the
// data beyond formatting.
package export

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"indicomp/internal/models"
)

// Supported export formats.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
	FormatXLSX = "xlsx"
)

var (
	ErrEmptyDataset  = errors.New("dataset has no rows")
	ErrUnknownFormat = errors.New("unknown export format")
)

// Formats lists the supported formats.
func Formats() []string {
	return []string{FormatCSV, FormatJSON, FormatXLSX}
}

// ParseFormat normalizes a user-supplied format name.
func ParseFormat(name string) (string, error) {
	f := strings.ToLower(strings.TrimSpace(name))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Header returns the entity column followed by the indicator names.
func Header(ds *models.Dataset) []string {
	return append([]string{ds.Scope.Column()}, ds.Indicators...)
}

// rawCell renders a value for machine-readable exports; missing is empty.
func rawCell(v models.Value) string {
	if !v.Valid {
		return ""
	}

	return strconv.FormatFloat(v.Number, 'f', -1, 64)
}

// FileName builds a timestamped name such as countries_comparison_20250601_1430.csv.
func FileName(scope models.Scope, ext string, now time.Time) string {
	return fmt.Sprintf("%s_comparison_%s.%s", scope.Plural(), now.Format("20060102_1504"), strings.TrimPrefix(ext, "."))
}

func checkDataset(ds *models.Dataset) error {
	if ds.Len() == 0 {
		return ErrEmptyDataset
	}

	return nil
}
