package export

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"indicomp/internal/models"
	"indicomp/pkg/utils"
)

// minColumnWidth keeps separator cells at least three dashes wide.
const minColumnWidth = 3

// Table renders the dataset as a pipe table aligned by display width.
// Numbers use the shared K/M/B/T formatting and missing values show N/A.
// Headers wider than maxHeader are truncated; zero keeps them whole.
func Table(ds *models.Dataset, maxHeader int) string {
	if ds.Len() == 0 {
		return ""
	}

	header := Header(ds)
	if maxHeader > 0 {
		for i := 1; i < len(header); i++ {
			header[i] = utils.TruncateString(header[i], maxHeader)
		}
	}

	table := [][]string{header}

	for _, row := range ds.Rows {
		cells := make([]string, 0, len(header))
		cells = append(cells, row.Entity.Name)

		for _, ind := range ds.Indicators {
			cells = append(cells, utils.FormatValue(row.Get(ind)))
		}

		table = append(table, cells)
	}

	return strings.Join(alignTable(table), "\n") + "\n"
}

// alignTable pads every cell to its column's display width and inserts the
// separator row after the header. Rows may be ragged.
func alignTable(table [][]string) []string {
	colCount := 0
	for _, row := range table {
		colCount = max(colCount, len(row))
	}

	widths := make([]int, colCount)
	for i := range widths {
		widths[i] = minColumnWidth
	}

	for _, row := range table {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	lines := make([]string, 0, len(table)+1)

	for r, row := range table {
		var sb strings.Builder

		sb.WriteString("|")

		for j := 0; j < colCount; j++ {
			content := ""
			if j < len(row) {
				content = row[j]
			}

			sb.WriteString(" ")
			sb.WriteString(runewidth.FillRight(content, widths[j]))
			sb.WriteString(" |")
		}

		lines = append(lines, sb.String())

		if r == 0 {
			lines = append(lines, separator(widths))
		}
	}

	return lines
}

func separator(widths []int) string {
	var sb strings.Builder

	sb.WriteString("|")

	for _, w := range widths {
		sb.WriteString(" ")
		sb.WriteString(strings.Repeat("-", w))
		sb.WriteString(" |")
	}

	return sb.String()
}
