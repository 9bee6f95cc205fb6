package cli

// Error codes for structured error responses.
// These codes are stable and can be relied upon by scripts and agents.
const (
	// Config errors
	ErrConfigInvalid = "CONFIG_INVALID"

	// Scan/parse errors
	ErrScanFailed  = "SCAN_FAILED"
	ErrParseFailed = "PARSE_FAILED"
	ErrInvalidDate = "INVALID_DATE"

	// Index errors
	ErrIndexCorrupt     = "INDEX_CORRUPT"
	ErrIndexWriteFailed = "INDEX_WRITE_FAILED"
)
