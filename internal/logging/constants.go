package logging

// Standardized field names for structured logging.
const (
	FieldTransactionID = "transaction_id"
	FieldCategory      = "category"
	FieldType          = "type"
	FieldAmount        = "amount"
	FieldOperation     = "operation"
	FieldStorageKey    = "storage_key"
	FieldBackend       = "backend"
	FieldError         = "error"
	FieldCount         = "count"
	FieldDelimiter     = "delimiter"
	FieldInputFile     = "input_file"
	FieldOutputFile    = "output_file"
	FieldFormat        = "format"
	FieldComponent     = "component"
)
