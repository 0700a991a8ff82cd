package models

// Transaction types
const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Storage defaults
const (
	DefaultStorageKey    = "transactions"
	CorruptKeySuffix     = ".corrupt"
	DefaultSQLiteFile    = "ledger.db"
	DefaultDataDirectory = ".expense-tracker"
)

// Export defaults
const (
	DefaultExportFilename = "expense_report.csv"
	ExportContentType     = "text/csv"
	DefaultCurrencySymbol = "₹"
)

// CSV column names, in export order
const (
	ColumnDate     = "Date"
	ColumnType     = "Type"
	ColumnCategory = "Category"
	ColumnAmount   = "Amount"
	ColumnNotes    = "Notes"
)

// CSVHeader is the header row of an exported ledger.
var CSVHeader = []string{ColumnDate, ColumnType, ColumnCategory, ColumnAmount, ColumnNotes}

// File permissions
const (
	PermissionDataFile   = 0600
	PermissionDirectory  = 0750
	PermissionReportFile = 0644
)
