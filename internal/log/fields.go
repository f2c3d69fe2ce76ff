package log

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldError       = "error"
	FieldOperation   = "operation"
	FieldKey         = "key"
	FieldExpenseID   = "expense_id"
	FieldCategory    = "category"
	FieldPaymentMode = "payment_mode"
	FieldAmountCents = "amount_cents"
	FieldMonth       = "month"
	FieldCount       = "count"
	FieldBackend     = "backend"
	FieldView        = "view"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentStore   = "store"
	ComponentStorage = "storage"
	ComponentSession = "session"
	ComponentUI      = "ui"
	ComponentBackend = "backend"
)

// Operations defines standard operation names
const (
	OpAdd     = "add"
	OpRemove  = "remove"
	OpClear   = "clear"
	OpFilter  = "filter"
	OpLoad    = "load"
	OpSave    = "save"
	OpStartup = "startup"
)
