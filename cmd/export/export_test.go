package export

import (
	"os"
	"path/filepath"
	"testing"

	"najla/expense-tracker/cmd/internal/cmdtest"
	"najla/expense-tracker/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const expectedReport = "Date,Type,Category,Amount,Notes\n" +
	`"2024-01-01","income","Salary",5000,""` + "\n" +
	`"2024-01-03","expense","Food",300,"He said ""hi"", ok"` + "\n"

func seed(t *testing.T, add func(models.TransactionInput) (models.Transaction, error)) {
	t.Helper()
	_, err := add(models.TransactionInput{Amount: decimal.NewFromInt(5000), Type: models.TransactionTypeIncome, Category: "Salary", Date: "2024-01-01"})
	require.NoError(t, err)
	_, err = add(models.TransactionInput{Amount: decimal.NewFromInt(300), Type: models.TransactionTypeExpense, Category: "Food", Date: "2024-01-03", Notes: `He said "hi", ok`})
	require.NoError(t, err)
}

func TestExportCommand_Metadata(t *testing.T) {
	assert.Equal(t, "export", Cmd.Use)
	f := Cmd.Flags().Lookup("output")
	require.NotNil(t, f)
	assert.Equal(t, "o", f.Shorthand)
}

func TestExportCommand_ToFile(t *testing.T) {
	c, _ := cmdtest.NewContainer(t)
	seed(t, c.GetLedger().Add)
	path := filepath.Join(t.TempDir(), "out", "report.csv")

	out, err := cmdtest.Execute(t, c, Cmd, "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported 2 transactions to "+path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, expectedReport, string(content))
}

func TestExportCommand_DefaultFilename(t *testing.T) {
	c, _ := cmdtest.NewContainer(t)
	testChdir(t, t.TempDir())

	_, err := cmdtest.Execute(t, c, Cmd)
	require.NoError(t, err)

	content, err := os.ReadFile(models.DefaultExportFilename)
	require.NoError(t, err)
	assert.Equal(t, "Date,Type,Category,Amount,Notes\n", string(content))
}

func TestExportCommand_Stdout(t *testing.T) {
	c, _ := cmdtest.NewContainer(t)
	seed(t, c.GetLedger().Add)

	out, err := cmdtest.Execute(t, c, Cmd, "--output", "-")
	require.NoError(t, err)
	assert.Equal(t, expectedReport, out)
}
