package exporter

import (
	"bytes"
	"fmt"
	"io"

	"najla/expense-tracker/internal/fileutils"
	"najla/expense-tracker/internal/logging"
	"najla/expense-tracker/internal/models"

	"github.com/gocarina/gocsv"
)

// csvRow is the report's row shape. Amount is pre-formatted so it keeps the
// precision it was recorded with.
type csvRow struct {
	Date     string `csv:"Date"`
	Type     string `csv:"Type"`
	Category string `csv:"Category"`
	Amount   string `csv:"Amount"`
	Notes    string `csv:"Notes"`
}

func toRows(records []models.Transaction) []csvRow {
	rows := make([]csvRow, len(records))
	for i, tx := range records {
		rows[i] = csvRow{
			Date:     tx.Date,
			Type:     tx.Type.String(),
			Category: tx.Category,
			Amount:   tx.Amount.String(),
			Notes:    tx.Notes,
		}
	}
	return rows
}

// WriteCSV writes the header and one row per record, in ledger order.
func WriteCSV(w io.Writer, records []models.Transaction, opts Options) error {
	opts = opts.withDefaults()
	if err := opts.Validate(); err != nil {
		return err
	}

	out := newQuotingWriter(w, opts)
	if err := out.writeHeader(); err != nil {
		return fmt.Errorf("error writing CSV header: %w", err)
	}
	if len(records) > 0 {
		if err := gocsv.MarshalCSVWithoutHeaders(toRows(records), out); err != nil {
			return fmt.Errorf("error writing CSV data: %w", err)
		}
	}
	out.Flush()
	if err := out.Error(); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}

// ExportString renders the report as a string.
func ExportString(records []models.Transaction, opts Options) (string, error) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, records, opts); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Exporter writes and reads report files with a fixed dialect.
type Exporter struct {
	opts   Options
	logger logging.Logger
}

// NewExporter creates an Exporter. A nil logger gets a default one.
func NewExporter(opts Options, logger logging.Logger) *Exporter {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Exporter{
		opts:   opts.withDefaults(),
		logger: logger.WithField(logging.FieldComponent, "exporter"),
	}
}

// Options returns the dialect in use
func (e *Exporter) Options() Options {
	return e.opts
}

// Write writes the report to w.
func (e *Exporter) Write(w io.Writer, records []models.Transaction) error {
	return WriteCSV(w, records, e.opts)
}

// ExportToFile writes the report to path, replacing any existing file in one step.
func (e *Exporter) ExportToFile(path string, records []models.Transaction) error {
	e.logger.Info("Exporting transactions to CSV file",
		logging.F(logging.FieldOutputFile, path),
		logging.F(logging.FieldCount, len(records)),
		logging.F(logging.FieldDelimiter, string(e.opts.Delimiter)))

	var buf bytes.Buffer
	if err := WriteCSV(&buf, records, e.opts); err != nil {
		return err
	}
	if err := fileutils.WriteFileAtomic(path, buf.Bytes(), models.PermissionReportFile); err != nil {
		e.logger.WithError(err).Error("Failed to write CSV file", logging.F(logging.FieldOutputFile, path))
		return fmt.Errorf("error writing CSV file: %w", err)
	}
	return nil
}

// Read parses a report from r.
func (e *Exporter) Read(r io.Reader) ([]models.TransactionInput, error) {
	return ReadCSV(r, e.opts)
}

// ImportFile parses the report stored at path.
func (e *Exporter) ImportFile(path string) ([]models.TransactionInput, error) {
	e.logger.Info("Reading CSV file", logging.F(logging.FieldInputFile, path))

	file, err := fileutils.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := file.Close(); err != nil {
			e.logger.WithError(err).Warn("Failed to close file")
		}
	}()

	inputs, err := ReadCSV(file, e.opts)
	if err != nil {
		return nil, err
	}
	e.logger.Info("Successfully read CSV data", logging.F(logging.FieldCount, len(inputs)))
	return inputs, nil
}
