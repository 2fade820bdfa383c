package recallgo

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// WriteReport renders the recall table as a bordered ASCII table:
//
//	+------------------------------+
//	|    Performance on pitts30k   |
//	+----------+-------+-----------+
//	|     K    |   1   |     5     |
//	+----------+-------+-----------+
//	| Recall@K | 50.00 |   100.00  |
//	+----------+-------+-----------+
//
// Recall values are percentages with two decimal places. The table is a
// reporting side-channel only; callers consume Recalls and Predictions.
func (r *Result) WriteReport(w io.Writer) error {
	headers := make([]string, 0, len(r.KValues)+1)
	values := make([]string, 0, len(r.KValues)+1)

	headers = append(headers, "K")
	values = append(values, "Recall@K")

	for _, k := range r.KValues {
		headers = append(headers, strconv.Itoa(k))
		values = append(values, fmt.Sprintf("%.2f", 100*r.Recalls[k]))
	}

	widths := make([]int, len(headers))
	for i := range headers {
		widths[i] = len(headers[i])
		if len(values[i]) > widths[i] {
			widths[i] = len(values[i])
		}
		widths[i] += 2 // one space of padding per side
	}

	title := "Performance on " + r.DatasetLabel

	// Inner width of the table: cells plus the separators between them.
	inner := len(widths) - 1
	for _, cw := range widths {
		inner += cw
	}

	// Widen the last column if the title would not fit.
	if len(title)+2 > inner {
		widths[len(widths)-1] += len(title) + 2 - inner
		inner = len(title) + 2
	}

	var b strings.Builder

	b.WriteString("+" + strings.Repeat("-", inner) + "+\n")
	b.WriteString("|" + center(title, inner) + "|\n")

	writeRule := func() {
		b.WriteByte('+')
		for _, cw := range widths {
			b.WriteString(strings.Repeat("-", cw))
			b.WriteByte('+')
		}
		b.WriteByte('\n')
	}
	writeRow := func(cells []string) {
		b.WriteByte('|')
		for i, cell := range cells {
			b.WriteString(center(cell, widths[i]))
			b.WriteByte('|')
		}
		b.WriteByte('\n')
	}

	writeRule()
	writeRow(headers)
	writeRule()
	writeRow(values)
	writeRule()

	_, err := io.WriteString(w, b.String())
	return err
}

// String returns the rendered report.
func (r *Result) String() string {
	var b strings.Builder
	_ = r.WriteReport(&b)
	return b.String()
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	right := width - len(s) - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}
