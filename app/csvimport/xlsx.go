package csvimport

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ParseWorkbook reads the first sheet of an .xlsx export into rows, using the first
// non-blank row as the header. Cells get the same cleaning as CSV fields.
func ParseWorkbook(data []byte) ([]Row, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	cells, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}

	var header []string
	var rows []Row
	for _, line := range cells {
		if blankRow(line) {
			continue
		}
		values := make([]string, len(line))
		for i, v := range line {
			values[i] = cleanField(v)
		}
		if header == nil {
			header = values
			continue
		}
		rows = append(rows, zipRow(header, values))
	}
	return rows, nil
}

func blankRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
