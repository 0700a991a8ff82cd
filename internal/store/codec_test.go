package store

import (
	"testing"

	"najla/expense-tracker/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeLedger_WireFormat(t *testing.T) {
	data, err := EncodeLedger([]models.Transaction{
		{ID: 1704067200000, Amount: decimal.NewFromInt(5000), Type: models.TransactionTypeIncome, Category: "Salary", Date: "2024-01-01"},
		{ID: 1704067200001, Amount: decimal.RequireFromString("12.5"), Type: models.TransactionTypeExpense, Category: "Food", Date: "2024-01-03", Notes: `a "quoted", note`},
	})
	require.NoError(t, err)

	expected := `[{"id":1704067200000,"amount":5000,"type":"income","category":"Salary","date":"2024-01-01","notes":""},` +
		`{"id":1704067200001,"amount":12.5,"type":"expense","category":"Food","date":"2024-01-03","notes":"a \"quoted\", note"}]`
	assert.Equal(t, expected, string(data))
}

func TestEncodeLedger_Empty(t *testing.T) {
	data, err := EncodeLedger(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestDecodeLedger_BrowserData(t *testing.T) {
	raw := `[
	  {"id": 1704067200000, "amount": 5000, "type": "income", "category": "Salary", "date": "2024-01-01", "notes": ""},
	  {"id": 1704153600000, "amount": 1200.75, "type": "expense", "category": "Rent", "date": "2024-01-02", "notes": "flat", "extra": true}
	]`

	transactions, err := DecodeLedger([]byte(raw))
	require.NoError(t, err)
	require.Len(t, transactions, 2)

	assert.Equal(t, int64(1704067200000), transactions[0].ID)
	assert.True(t, transactions[0].Amount.Equal(decimal.NewFromInt(5000)))
	assert.Equal(t, models.TransactionTypeIncome, transactions[0].Type)
	assert.True(t, transactions[1].Amount.Equal(decimal.RequireFromString("1200.75")))
	assert.Equal(t, "flat", transactions[1].Notes)
}

func TestDecodeLedger_Null(t *testing.T) {
	transactions, err := DecodeLedger([]byte("null"))
	require.NoError(t, err)
	assert.Empty(t, transactions)
}

func TestDecodeLedger_KeepsDuplicateIDs(t *testing.T) {
	raw := `[{"id":1,"amount":5,"type":"income"},{"id":1,"amount":6,"type":"expense","category":"Food"}]`

	transactions, err := DecodeLedger([]byte(raw))
	require.NoError(t, err)
	require.Len(t, transactions, 2)
	assert.Equal(t, int64(1), transactions[0].ID)
	assert.Equal(t, int64(1), transactions[1].ID)
}

func TestDecodeLedger_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"whitespace", "   "},
		{"truncated", `[{"id":1,"amount":5`},
		{"object instead of array", `{"id":1}`},
		{"unknown type", `[{"id":1,"amount":5,"type":"transfer"}]`},
		{"missing amount", `[{"id":1,"type":"income"}]`},
		{"non numeric amount", `[{"id":1,"amount":"lots","type":"income"}]`},
		{"fractional id", `[{"id":1.5,"amount":5,"type":"income"}]`},
		{"trailing data", `[] []`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeLedger([]byte(tt.raw))
			assert.Error(t, err)
		})
	}
}
