package core

import "errors"

// ErrorCode represents a stable, machine-readable error identifier.
type ErrorCode string

// Error code constants identify specific failure conditions across the pipeline.
const (
	ErrCodeNetwork     ErrorCode = "NETWORK_ERROR"
	ErrCodeTimeout     ErrorCode = "TIMEOUT"
	ErrCodeAuth        ErrorCode = "AUTH_ERROR"
	ErrCodeBadRequest  ErrorCode = "BAD_REQUEST"
	ErrCodeServerError ErrorCode = "SERVER_ERROR"

	// Configuration errors
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
	ErrCodeNoCredentials ErrorCode = "NO_CREDENTIALS"

	// Request construction errors
	ErrCodeUnsupported  ErrorCode = "UNSUPPORTED_METHOD"
	ErrCodeEncodeBody   ErrorCode = "ENCODE_BODY"
	ErrCodeMissingParam ErrorCode = "MISSING_PARAM"

	// Response decoding errors
	ErrCodeNoDataField  ErrorCode = "NO_DATA_FIELD"
	ErrCodeDataNotArray ErrorCode = "DATA_NOT_ARRAY"
	ErrCodeDecodeBody   ErrorCode = "DECODE_BODY"
	ErrCodeEmptyData    ErrorCode = "EMPTY_DATA"
)

// IsErrorCode checks if the error matches the specified error code.
// It extracts the exchange error and compares its code field against the provided ErrorCode.
func IsErrorCode(err error, code ErrorCode) bool {
	var exErr *ExchangeError
	if errors.As(err, &exErr) {
		return ErrorCode(exErr.Code) == code
	}
	return false
}
