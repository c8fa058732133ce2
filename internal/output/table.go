package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const columnGap = "  "

// column is one table column. Widths are measured in printed cells, so
// styled values line up with plain ones.
type column struct {
	title string
	width int
	right bool
}

// Table renders rows under a header and a rule. Columns are left-aligned
// unless marked with AlignRight.
type Table struct {
	cols []column
	rows [][]string
}

// NewTable creates a table with the given column headers.
func NewTable(headers ...string) *Table {
	cols := make([]column, len(headers))
	for i, h := range headers {
		cols[i] = column{title: h, width: lipgloss.Width(h)}
	}
	return &Table{cols: cols}
}

// AlignRight right-aligns the columns at the given indexes. Out of range
// indexes are ignored.
func (t *Table) AlignRight(indexes ...int) *Table {
	for _, i := range indexes {
		if i >= 0 && i < len(t.cols) {
			t.cols[i].right = true
		}
	}
	return t
}

// AddRow appends a row. Missing cells render blank and extra cells are
// dropped.
func (t *Table) AddRow(cells ...string) {
	row := make([]string, len(t.cols))
	copy(row, cells)
	for i, cell := range row {
		t.cols[i].width = max(t.cols[i].width, lipgloss.Width(cell))
	}
	t.rows = append(t.rows, row)
}

// Rows reports how many data rows have been added.
func (t *Table) Rows() int { return len(t.rows) }

// Render returns the table as text, one line per row.
func (t *Table) Render() string {
	if len(t.cols) == 0 {
		return ""
	}

	var b strings.Builder
	titles := make([]string, len(t.cols))
	rules := make([]string, len(t.cols))
	for i, c := range t.cols {
		titles[i] = StyleHeader.Render(t.fit(i, c.title))
		rules[i] = StyleMuted.Render(strings.Repeat("─", c.width))
	}
	t.writeLine(&b, titles)
	t.writeLine(&b, rules)

	cells := make([]string, len(t.cols))
	for _, row := range t.rows {
		for i, cell := range row {
			cells[i] = t.fit(i, cell)
		}
		t.writeLine(&b, cells)
	}
	return b.String()
}

// Fprint writes the rendered table to w.
func (t *Table) Fprint(w io.Writer) {
	_, _ = fmt.Fprint(w, t.Render())
}

func (t *Table) writeLine(b *strings.Builder, cells []string) {
	line := strings.Join(cells, columnGap)
	b.WriteString(strings.TrimRight(line, " "))
	b.WriteByte('\n')
}

// fit pads s to column i's width on the side given by its alignment.
// Values wider than the column are never truncated.
func (t *Table) fit(i int, s string) string {
	gap := t.cols[i].width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	if t.cols[i].right {
		return strings.Repeat(" ", gap) + s
	}
	return s + strings.Repeat(" ", gap)
}
