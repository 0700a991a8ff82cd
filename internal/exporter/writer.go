package exporter

import (
	"bufio"
	"io"
	"strings"

	"najla/expense-tracker/internal/models"
)

// Column positions in the report.
const (
	colDate = iota
	colType
	colCategory
	colAmount
	colNotes
)

// quotingWriter implements gocsv.CSVWriter with the report's quoting rules,
// which encoding/csv cannot express: notes are always quoted, the amount never is.
type quotingWriter struct {
	w        *bufio.Writer
	opts     Options
	err      error
	quoteSet string
}

func newQuotingWriter(w io.Writer, opts Options) *quotingWriter {
	return &quotingWriter{
		w:        bufio.NewWriter(w),
		opts:     opts,
		quoteSet: string(opts.Delimiter) + "\"\r\n",
	}
}

// writeHeader writes the header row verbatim.
func (q *quotingWriter) writeHeader() error {
	if q.err != nil {
		return q.err
	}
	_, q.err = q.w.WriteString(strings.Join(models.CSVHeader, string(q.opts.Delimiter)) + "\n")
	return q.err
}

// Write writes one data row.
func (q *quotingWriter) Write(row []string) error {
	if q.err != nil {
		return q.err
	}
	var b strings.Builder
	for i, field := range row {
		if i > 0 {
			b.WriteRune(q.opts.Delimiter)
		}
		if q.shouldQuote(i, field) {
			b.WriteString(quote(field))
		} else {
			b.WriteString(field)
		}
	}
	b.WriteByte('\n')
	_, q.err = q.w.WriteString(b.String())
	return q.err
}

func (q *quotingWriter) shouldQuote(column int, field string) bool {
	switch column {
	case colAmount:
		return false
	case colNotes:
		return true
	}
	return q.opts.QuoteAll || strings.ContainsAny(field, q.quoteSet)
}

// Flush writes buffered data to the underlying writer.
func (q *quotingWriter) Flush() {
	if q.err != nil {
		return
	}
	q.err = q.w.Flush()
}

// Error reports any error from a previous Write or Flush.
func (q *quotingWriter) Error() error {
	return q.err
}

// quote wraps s in double quotes, doubling any quote inside it.
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
