package sqlerr

// Code is a driver-agnostic classification of a database error.
type Code int

const (
	// Other covers any error this package does not classify.
	Other Code = iota

	// UniqueViolation maps SQLSTATE 23505.
	UniqueViolation

	// ForeignKeyViolation maps SQLSTATE 23503.
	ForeignKeyViolation

	// NotNullViolation maps SQLSTATE 23502.
	NotNullViolation

	// CheckViolation maps SQLSTATE 23514.
	CheckViolation

	// StringDataTruncation maps SQLSTATE 22001 (value exceeds column length).
	StringDataTruncation
)

// Severity mirrors the severity field Postgres reports with each error.
type Severity int

const (
	SeverityUnknown Severity = iota
	SeverityError
	SeverityFatal
	SeverityPanic
)

// Error is the normalized form of a Postgres server error.
//
// It keeps the original SQLSTATE and constraint metadata so callers can
// build precise client messages, and wraps the driver error for
// errors.Is/As chains.
type Error struct {
	Code           Code
	Severity       Severity
	DatabaseCode   string // original SQLSTATE
	Message        string
	SchemaName     string
	TableName      string
	ColumnName     string
	DataTypeName   string
	ConstraintName string

	driverErr error
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes the underlying driver error.
func (e *Error) Unwrap() error {
	return e.driverErr
}

// MapCode maps a Postgres SQLSTATE string to a Code.
func MapCode(sqlstate string) Code {
	switch sqlstate {
	case "23505":
		return UniqueViolation
	case "23503":
		return ForeignKeyViolation
	case "23502":
		return NotNullViolation
	case "23514":
		return CheckViolation
	case "22001":
		return StringDataTruncation
	default:
		return Other
	}
}

// MapSeverity maps the severity string Postgres reports to a Severity.
func MapSeverity(severity string) Severity {
	switch severity {
	case "ERROR":
		return SeverityError
	case "FATAL":
		return SeverityFatal
	case "PANIC":
		return SeverityPanic
	default:
		return SeverityUnknown
	}
}
