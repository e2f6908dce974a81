package logging

// Standardized field names for structured logging.
const (
	FieldComponent     = "component"
	FieldUsername      = "username"
	FieldMonth         = "month"
	FieldDate          = "date"
	FieldRow           = "row"
	FieldKind          = "kind"
	FieldCategory      = "category"
	FieldTransactionID = "transaction_id"
	FieldOperation     = "operation"
	FieldBackend       = "backend"
	FieldFile          = "file_path"
	FieldCount         = "count"
	FieldUsersCount    = "users_count"
	FieldFormat        = "format"
	FieldDelimiter     = "delimiter"
	FieldError         = "error"
)

// Component names used with FieldComponent.
const (
	ComponentContainer = "container"
	ComponentStore     = "store"
	ComponentCSV       = "csv"
	ComponentReport    = "report"
	ComponentCLI       = "cli"
)
