package exporter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"najla/expense-tracker/internal/ledgererror"
	"najla/expense-tracker/internal/models"
	"najla/expense-tracker/internal/validation"

	"github.com/gocarina/gocsv"
)

// ErrMissingHeader is returned when a document does not start with the report header.
var ErrMissingHeader = errors.New("csv document does not start with the Date,Type,Category,Amount,Notes header")

// headerCheckingReader rejects documents whose first row is not the report header.
type headerCheckingReader struct {
	*csv.Reader
}

func (r headerCheckingReader) ReadAll() ([][]string, error) {
	rows, err := r.Reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 || !isHeader(rows[0]) {
		return nil, ErrMissingHeader
	}
	// Field mapping is by exact name.
	rows[0] = append([]string(nil), models.CSVHeader...)
	return rows, nil
}

func isHeader(row []string) bool {
	if len(row) != len(models.CSVHeader) {
		return false
	}
	for i, name := range models.CSVHeader {
		cell := strings.TrimSpace(strings.TrimPrefix(row[i], "\ufeff"))
		if !strings.EqualFold(cell, name) {
			return false
		}
	}
	return true
}

// ReadCSV parses a report back into transaction inputs. Every row is validated;
// the first invalid row aborts the read with a *ledgererror.ImportError.
func ReadCSV(r io.Reader, opts Options) ([]models.TransactionInput, error) {
	opts = opts.withDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.FieldsPerRecord = len(models.CSVHeader)

	var rows []csvRow
	if err := gocsv.UnmarshalCSV(headerCheckingReader{reader}, &rows); err != nil {
		if errors.Is(err, ErrMissingHeader) {
			return nil, err
		}
		return nil, fmt.Errorf("error parsing CSV data: %w", err)
	}

	inputs := make([]models.TransactionInput, 0, len(rows))
	for i, row := range rows {
		in, err := validation.BuildInput(row.Amount, row.Type, row.Category, row.Date, row.Notes)
		if err != nil {
			// Row 1 is the header.
			return nil, &ledgererror.ImportError{Line: i + 2, Err: err}
		}
		inputs = append(inputs, in)
	}
	return inputs, nil
}
