package ingest

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cast"
)

// Row is one normalized line of tabular input: trimmed cells in column order.
type Row []string

// Cell returns the i-th cell or "" when the row is too short.
func (r Row) Cell(i int) string {
	if i < 0 || i >= len(r) {
		return ""
	}
	return r[i]
}

// Blank reports whether every cell is empty.
func (r Row) Blank() bool {
	for _, c := range r {
		if c != "" {
			return false
		}
	}
	return true
}

func isCellDelimiter(r rune) bool {
	return r == ',' || r == '，' || r == '\t'
}

func splitCells(line string) Row {
	row := make(Row, 0, 4)
	start := 0
	for i, r := range line {
		if isCellDelimiter(r) {
			row = append(row, strings.TrimSpace(line[start:i]))
			start = i + utf8.RuneLen(r)
		}
	}
	return append(row, strings.TrimSpace(line[start:]))
}

// NormalizeText splits pasted text into rows. Lines are separated by newlines
// and cells by ASCII comma, full-width comma or tab. Blank lines are dropped;
// short rows are kept for the builders to judge.
func NormalizeText(text string) []Row {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	rows := make([]Row, 0, len(lines))
	for _, line := range lines {
		row := splitCells(strings.TrimSuffix(line, "\r"))
		if row.Blank() {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}

// NormalizeGrid stringifies and trims a decoded spreadsheet grid.
func NormalizeGrid(grid [][]any) []Row {
	rows := make([]Row, 0, len(grid))
	for _, cells := range grid {
		row := make(Row, len(cells))
		for i, c := range cells {
			row[i] = strings.TrimSpace(stringify(c))
		}
		if row.Blank() {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}

// NormalizeStrings is NormalizeGrid for decoders that already yield strings.
func NormalizeStrings(grid [][]string) []Row {
	rows := make([]Row, 0, len(grid))
	for _, cells := range grid {
		row := make(Row, len(cells))
		for i, c := range cells {
			row[i] = strings.TrimSpace(c)
		}
		if row.Blank() {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}

func stringify(v any) string {
	if v == nil {
		return ""
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return s
}
