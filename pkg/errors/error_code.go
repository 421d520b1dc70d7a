package errors

// ErrorCode represents a unique error code for identifying different error types.
type ErrorCode int

const (
	// General errors (1-99)
	ErrCodeUnknown ErrorCode = 1

	// Configuration validation errors (100-199).
	// Every code in this range is an invalid-configuration error; the
	// specific code identifies which parameter constraint failed.
	ErrCodeInvalidConfiguration ErrorCode = 100
	ErrCodeInvalidPeriod        ErrorCode = 101
	ErrCodeInvalidWeights       ErrorCode = 102
	ErrCodeInvalidMethod        ErrorCode = 103
	ErrCodeInvalidSource        ErrorCode = 104
	ErrCodeInvalidZone          ErrorCode = 105
	ErrCodeInvalidPeriodOrder   ErrorCode = 106

	// Parameter lookup errors (200-299)
	ErrCodeUnknownParameter ErrorCode = 200

	// Parameter parse errors (300-399)
	ErrCodeParseFailure ErrorCode = 300

	// Registry errors (400-499)
	ErrCodeIndicatorNotFound      ErrorCode = 400
	ErrCodeIndicatorAlreadyExists ErrorCode = 401

	// Profile errors (500-599)
	ErrCodeProfileInvalid      ErrorCode = 500
	ErrCodeProfileReadFailed   ErrorCode = 501
	ErrCodeProfileIncompatible ErrorCode = 502

	// Data errors (600-699)
	ErrCodeDataReadFailed  ErrorCode = 600
	ErrCodeDataParseFailed ErrorCode = 601

	// Result output errors (700-799)
	ErrCodeResultWriteFailed ErrorCode = 700
)

// IsInvalidConfiguration reports whether err carries a configuration
// validation code (100-199).
func IsInvalidConfiguration(err error) bool {
	code := GetCode(err)

	return code >= ErrCodeInvalidConfiguration && code < ErrCodeUnknownParameter
}

// IsUnknownParameter reports whether err carries a parameter lookup code (200-299).
func IsUnknownParameter(err error) bool {
	code := GetCode(err)

	return code >= ErrCodeUnknownParameter && code < ErrCodeParseFailure
}

// IsParseFailure reports whether err carries a parameter parse code (300-399).
func IsParseFailure(err error) bool {
	code := GetCode(err)

	return code >= ErrCodeParseFailure && code < ErrCodeIndicatorNotFound
}
