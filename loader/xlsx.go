package loader

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// xlsxColumns is the expected header row of a line-item spreadsheet, in
// order. Matching is case-insensitive; extra columns are ignored.
var xlsxColumns = []string{"id", "name", "quantity", "unit", "net_price", "total"}

// ReadLinesXLSX imports order lines from the first sheet of an XLSX
// workbook. The first row must be a header row naming the columns id,
// name, quantity, unit, net_price and total; empty cells leave the
// corresponding line field unset.
func ReadLinesXLSX(path string) ([]Line, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	index, err := columnIndex(rows[0])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	var lines []Line
	for _, row := range rows[1:] {
		line := Line{
			ID:       cell(row, index["id"]),
			Quantity: cell(row, index["quantity"]),
			Unit:     cell(row, index["unit"]),
			NetPrice: cell(row, index["net_price"]),
			Total:    cell(row, index["total"]),
		}
		line.Product.Name = cell(row, index["name"])
		if line.ID == "" && line.Product.Name == "" {
			continue // trailing blank rows
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func columnIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(xlsxColumns))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, want := range xlsxColumns {
		if _, ok := index[want]; !ok {
			return nil, fmt.Errorf("missing column %q in header row", want)
		}
	}
	return index, nil
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
