package csvimport

import "strings"

// Row maps a header name to the cell under it.
type Row map[string]string

// Parse splits CSV text into rows keyed by the header line. It never fails:
// malformed quoting is scanned best-effort and blank input yields no rows.
func Parse(text string) []Row {
	_, rows := ParseTable(text)
	return rows
}

// ParseTable returns the cleaned header along with the rows.
// Blank lines are dropped wherever they appear, so the header is the first
// non-blank line.
func ParseTable(text string) ([]string, []Row) {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return nil, nil
	}

	header := cleanFields(SplitLine(lines[0]))
	rows := make([]Row, 0, len(lines)-1)
	for _, line := range lines[1:] {
		rows = append(rows, zipRow(header, cleanFields(SplitLine(line))))
	}
	return header, rows
}

func zipRow(header, values []string) Row {
	row := make(Row, len(header))
	for i, h := range header {
		if i < len(values) {
			row[h] = values[i]
		} else {
			row[h] = ""
		}
	}
	return row
}

// SplitLine scans one line into raw fields. A quote toggles quoted mode, a doubled
// quote inside quoted mode is a literal quote, and a comma outside quoted mode ends
// the field. Quote characters that toggle the mode are not kept.
func SplitLine(line string) []string {
	var (
		fields       []string
		current      strings.Builder
		insideQuotes bool
	)
	for i := 0; i < len(line); i++ {
		ch := line[i]
		switch {
		case ch == '"':
			if insideQuotes && i+1 < len(line) && line[i+1] == '"' {
				current.WriteByte('"')
				i++
			} else {
				insideQuotes = !insideQuotes
			}
		case ch == ',' && !insideQuotes:
			fields = append(fields, current.String())
			current.Reset()
		default:
			current.WriteByte(ch)
		}
	}
	return append(fields, current.String())
}

// cleanField strips one surrounding pair of quotes around a non-empty value, then
// trims whitespace.
func cleanField(f string) string {
	if len(f) >= 3 && f[0] == '"' && f[len(f)-1] == '"' {
		f = f[1 : len(f)-1]
	}
	return strings.TrimSpace(f)
}

func cleanFields(fields []string) []string {
	for i, f := range fields {
		fields[i] = cleanField(f)
	}
	return fields
}
