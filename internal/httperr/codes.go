package httperr

// Error codes sent as "error_code". Clients switch on these, so they never
// change once released.
const (
	CodeEntryNotFound    = "entry_not_found"
	CodeUnauthorized     = "unauthorized"
	CodeInvalidID        = "invalid_id"
	CodeInvalidRequest   = "invalid_request"
	CodeValidationFailed = "validation_failed"
	CodeInternal         = "internal_error"
	CodeInvalidState     = "invalid_state"
	CodeMissingCode      = "missing_code"
)
