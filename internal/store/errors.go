package store

// Op constants name the failing store operation for error context.
const (
	OpListProducts   = "ListProducts"
	OpListCategories = "ListCategories"
	OpPing           = "Ping"
	OpScan           = "SCAN"
	OpHGetAll        = "HGETALL"
)

// Error wraps an underlying error with the operation name for diagnostics.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }
