package exporter

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"najla/expense-tracker/internal/ledgererror"
	"najla/expense-tracker/internal/logging"
	"najla/expense-tracker/internal/models"
	"najla/expense-tracker/internal/validation"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(id int64, amount string, txType models.TransactionType, category, date, notes string) models.Transaction {
	return models.Transaction{
		ID:       id,
		Amount:   decimal.RequireFromString(amount),
		Type:     txType,
		Category: category,
		Date:     date,
		Notes:    notes,
	}
}

func scenario() []models.Transaction {
	return []models.Transaction{
		record(1, "5000", models.TransactionTypeIncome, "Salary", "2024-01-01", ""),
		record(2, "1200", models.TransactionTypeExpense, "Rent", "2024-01-02", "January"),
		record(3, "300", models.TransactionTypeExpense, "Food", "2024-01-03", `He said "hi", ok`),
	}
}

func TestExportString_Scenario(t *testing.T) {
	out, err := ExportString(scenario(), DefaultOptions())
	require.NoError(t, err)

	expected := "Date,Type,Category,Amount,Notes\n" +
		`"2024-01-01","income","Salary",5000,""` + "\n" +
		`"2024-01-02","expense","Rent",1200,"January"` + "\n" +
		`"2024-01-03","expense","Food",300,"He said ""hi"", ok"` + "\n"
	assert.Equal(t, expected, out)
	assert.Len(t, strings.Split(strings.TrimSuffix(out, "\n"), "\n"), 4)
}

func TestExportString_NotesEscaping(t *testing.T) {
	tests := []struct {
		name  string
		notes string
		want  string
	}{
		{"empty", "", `""`},
		{"plain", "groceries", `"groceries"`},
		{"quotes and comma", `He said "hi", ok`, `"He said ""hi"", ok"`},
		{"only quotes", `""`, `""""""`},
		{"newline", "line one\nline two", "\"line one\nline two\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, quoteAll := range []bool{true, false} {
				out, err := ExportString([]models.Transaction{
					record(1, "1", models.TransactionTypeExpense, "Misc", "2024-01-01", tt.notes),
				}, Options{Delimiter: ',', QuoteAll: quoteAll})
				require.NoError(t, err)
				assert.True(t, strings.HasSuffix(out, ","+tt.want+"\n"), "quoteAll=%v got %q", quoteAll, out)
			}
		})
	}
}

func TestExportString_Empty(t *testing.T) {
	out, err := ExportString(nil, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "Date,Type,Category,Amount,Notes\n", out)
}

func TestExportString_MinimalQuoting(t *testing.T) {
	records := []models.Transaction{
		record(1, "5000", models.TransactionTypeIncome, "Salary", "2024-01-01", ""),
		record(2, "42.75", models.TransactionTypeExpense, "Food, drinks", "2024-01-02", "team lunch"),
		record(3, "9.99", models.TransactionTypeExpense, `The "good" shop`, "2024-01-03", ""),
	}

	out, err := ExportString(records, Options{Delimiter: ',', QuoteAll: false})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, `2024-01-01,income,Salary,5000,""`, lines[1])
	assert.Equal(t, `2024-01-02,expense,"Food, drinks",42.75,"team lunch"`, lines[2])
	assert.Equal(t, `2024-01-03,expense,"The ""good"" shop",9.99,""`, lines[3])
}

func TestExportString_Delimiter(t *testing.T) {
	records := []models.Transaction{
		record(1, "12.5", models.TransactionTypeExpense, "A;B", "2024-01-01", "x;y"),
		record(2, "3", models.TransactionTypeExpense, "Food, drinks", "2024-01-02", ""),
	}

	out, err := ExportString(records, Options{Delimiter: ';'})
	require.NoError(t, err)

	expected := "Date;Type;Category;Amount;Notes\n" +
		`2024-01-01;expense;"A;B";12.5;"x;y"` + "\n" +
		`2024-01-02;expense;Food, drinks;3;""` + "\n"
	assert.Equal(t, expected, out)
}

func TestExportString_AmountKeepsPrecision(t *testing.T) {
	out, err := ExportString([]models.Transaction{
		record(1, "0.10", models.TransactionTypeExpense, "Candy", "2024-01-01", ""),
		record(2, "1234567.891", models.TransactionTypeIncome, "Bonus", "2024-01-02", ""),
	}, DefaultOptions())
	require.NoError(t, err)

	assert.Contains(t, out, `"Candy",0.1,`)
	assert.Contains(t, out, `"Bonus",1234567.891,`)
}

func TestOptions_Validate(t *testing.T) {
	assert.NoError(t, DefaultOptions().Validate())
	assert.NoError(t, Options{Delimiter: '\t'}.Validate())
	assert.Error(t, Options{}.Validate())
	assert.Error(t, Options{Delimiter: '"'}.Validate())
	assert.Error(t, Options{Delimiter: '\n'}.Validate())

	_, err := ExportString(scenario(), Options{Delimiter: '"'})
	assert.Error(t, err)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriteCSV_WriterError(t *testing.T) {
	err := WriteCSV(failingWriter{}, scenario(), DefaultOptions())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestReadCSV_RoundTrip(t *testing.T) {
	records := append(scenario(),
		record(4, "12.5", models.TransactionTypeExpense, "Coffee; beans", "2024-01-04", "line one\nline two"))

	for _, opts := range []Options{DefaultOptions(), {Delimiter: ';', QuoteAll: false}} {
		out, err := ExportString(records, opts)
		require.NoError(t, err)

		inputs, err := ReadCSV(strings.NewReader(out), opts)
		require.NoError(t, err)
		require.Len(t, inputs, len(records))

		for i, in := range inputs {
			assert.True(t, records[i].Amount.Equal(in.Amount), "amount %d", i)
			assert.Equal(t, records[i].Type, in.Type)
			assert.Equal(t, records[i].Category, in.Category)
			assert.Equal(t, records[i].Date, in.Date)
			assert.Equal(t, records[i].Notes, in.Notes)
		}
	}
}

func TestReadCSV_CRLFNotesRoundTrip(t *testing.T) {
	in, err := validation.BuildInput("42", "expense", "Travel", "2024-02-01", "a\r\nb")
	require.NoError(t, err)
	tx := models.NewTransaction(1, in)

	out, err := ExportString([]models.Transaction{tx}, DefaultOptions())
	require.NoError(t, err)

	inputs, err := ReadCSV(strings.NewReader(out), DefaultOptions())
	require.NoError(t, err)
	require.Len(t, inputs, 1)
	assert.Equal(t, tx.Notes, inputs[0].Notes)
	assert.Equal(t, "a\nb", inputs[0].Notes)
}

func TestReadCSV_HeaderVariants(t *testing.T) {
	doc := "\ufeffdate,TYPE,Category,amount,Notes\n2024-01-01,Income,Salary,5000,\n"

	inputs, err := ReadCSV(strings.NewReader(doc), DefaultOptions())
	require.NoError(t, err)
	require.Len(t, inputs, 1)
	assert.Equal(t, models.TransactionTypeIncome, inputs[0].Type)
	assert.Equal(t, "Salary", inputs[0].Category)
}

func TestReadCSV_HeaderOnly(t *testing.T) {
	inputs, err := ReadCSV(strings.NewReader("Date,Type,Category,Amount,Notes\n"), DefaultOptions())
	require.NoError(t, err)
	assert.Empty(t, inputs)
}

func TestReadCSV_Errors(t *testing.T) {
	t.Run("empty document", func(t *testing.T) {
		_, err := ReadCSV(strings.NewReader(""), DefaultOptions())
		assert.ErrorIs(t, err, ErrMissingHeader)
	})

	t.Run("missing header", func(t *testing.T) {
		_, err := ReadCSV(strings.NewReader("2024-01-01,income,Salary,5000,\n"), DefaultOptions())
		assert.ErrorIs(t, err, ErrMissingHeader)
	})

	t.Run("wrong column count", func(t *testing.T) {
		doc := "Date,Type,Category,Amount,Notes\n2024-01-01,income,Salary\n"
		_, err := ReadCSV(strings.NewReader(doc), DefaultOptions())
		assert.Error(t, err)
	})

	t.Run("invalid row", func(t *testing.T) {
		doc := "Date,Type,Category,Amount,Notes\n" +
			"2024-01-01,income,Salary,5000,\n" +
			"2024-01-02,expense,Rent,-1200,\n"
		_, err := ReadCSV(strings.NewReader(doc), DefaultOptions())
		require.Error(t, err)

		var importErr *ledgererror.ImportError
		require.True(t, errors.As(err, &importErr))
		assert.Equal(t, 3, importErr.Line)

		var validationErr *ledgererror.ValidationError
		require.True(t, errors.As(err, &validationErr))
		assert.Equal(t, "amount", validationErr.Field)
	})
}

func TestExporter_FileRoundTrip(t *testing.T) {
	logger := logging.NewMockLogger()
	exp := NewExporter(Options{Delimiter: ';', QuoteAll: true}, logger)
	path := filepath.Join(t.TempDir(), "reports", models.DefaultExportFilename)

	require.NoError(t, exp.ExportToFile(path, scenario()))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "Date;Type;Category;Amount;Notes\n"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(models.PermissionReportFile), info.Mode().Perm())

	inputs, err := exp.ImportFile(path)
	require.NoError(t, err)
	assert.Len(t, inputs, 3)
	assert.True(t, logger.HasEntry("INFO", "Exporting transactions to CSV file"))
}

func TestExporter_WriteUsesOptions(t *testing.T) {
	exp := NewExporter(Options{QuoteAll: false}, nil)
	assert.Equal(t, ',', exp.Options().Delimiter)

	var buf bytes.Buffer
	require.NoError(t, exp.Write(&buf, scenario()[:1]))
	assert.Equal(t, "Date,Type,Category,Amount,Notes\n2024-01-01,income,Salary,5000,\"\"\n", buf.String())

	inputs, err := exp.Read(&buf)
	require.NoError(t, err)
	require.Len(t, inputs, 1)
}

func TestExporter_ImportMissingFile(t *testing.T) {
	exp := NewExporter(DefaultOptions(), logging.NewMockLogger())
	_, err := exp.ImportFile(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}
