package ui

import (
	"strings"
	"unicode/utf8"
)

const cellMaxWidth = 60
const cellEllipsis = "..."

// TableBuilder collects rows and renders an aligned two-space-separated
// table. Cell widths are computed on visible characters, so cells may carry
// ANSI color codes.
type TableBuilder struct {
	headers []string
	rows    [][]string
}

// NewTableBuilder returns a builder with preallocated rows.
func NewTableBuilder(headers []string, capacity int) *TableBuilder {
	return &TableBuilder{headers: headers, rows: make([][]string, 0, capacity)}
}

// AddRow appends a row to the table.
func (b *TableBuilder) AddRow(row ...string) {
	b.rows = append(b.rows, row)
}

// Empty reports whether no rows have been added.
func (b *TableBuilder) Empty() bool {
	return len(b.rows) == 0
}

// String renders the table.
func (b *TableBuilder) String() string {
	headers := make([]string, len(b.headers))
	for i, header := range b.headers {
		headers[i] = normalizeCell(header)
	}

	rows := make([][]string, 0, len(b.rows))
	for _, row := range b.rows {
		normalized := make([]string, len(row))
		for i, cell := range row {
			normalized[i] = normalizeCell(cell)
		}
		rows = append(rows, normalized)
	}

	widths := make([]int, len(headers))
	for i, header := range headers {
		widths[i] = displayWidth(header)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			if w := displayWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var out strings.Builder
	writeRow := func(row []string) {
		for i, cell := range row {
			out.WriteString(cell)
			if i == len(row)-1 {
				out.WriteByte('\n')
				continue
			}
			out.WriteString(strings.Repeat(" ", widths[i]-displayWidth(cell)+2))
		}
	}

	writeRow(headers)
	for _, row := range rows {
		writeRow(row)
	}

	return out.String()
}

// Truncate limits a cell to the table's maximum visible width, keeping any
// ANSI codes intact.
func Truncate(value string) string {
	value = normalizeCell(value)
	if displayWidth(value) <= cellMaxWidth {
		return value
	}

	max := cellMaxWidth - len(cellEllipsis)
	return truncateVisible(value, max) + cellEllipsis
}

func displayWidth(value string) int {
	return utf8.RuneCountInString(stripANSI(value))
}

func normalizeCell(value string) string {
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ").Replace(value)
}

func truncateVisible(value string, max int) string {
	if max <= 0 {
		return ""
	}

	var out strings.Builder
	visible := 0
	for i := 0; i < len(value); {
		if value[i] == '\x1b' && i+1 < len(value) && value[i+1] == '[' {
			end := i + 2
			for end < len(value) && value[end] != 'm' {
				end++
			}
			if end < len(value) {
				end++
			}
			out.WriteString(value[i:end])
			i = end
			continue
		}
		if visible >= max {
			break
		}
		r, size := utf8.DecodeRuneInString(value[i:])
		out.WriteRune(r)
		visible++
		i += size
	}
	return out.String()
}

func stripANSI(input string) string {
	var out strings.Builder
	inEscape := false
	for i := 0; i < len(input); i++ {
		char := input[i]
		if inEscape {
			if char == 'm' {
				inEscape = false
			}
			continue
		}
		if char == '\x1b' {
			inEscape = true
			continue
		}
		out.WriteByte(char)
	}
	return out.String()
}
