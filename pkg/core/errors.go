package core

import (
	"errors"
	"fmt"
	"time"
)

// ErrorType represents the category of an exchange error.
type ErrorType int

// Error type constants categorize errors by the pipeline stage that produced them.
const (
	// ErrorTypeUnknown indicates an unclassified error.
	ErrorTypeUnknown ErrorType = iota
	// ErrorTypeNetwork indicates a connection or TLS failure in the transport.
	ErrorTypeNetwork
	// ErrorTypeTimeout indicates the request exceeded its deadline.
	ErrorTypeTimeout
	// ErrorTypeRateLimit indicates rate limit was exceeded.
	ErrorTypeRateLimit
	// ErrorTypeAuthentication indicates invalid or expired credentials.
	ErrorTypeAuthentication
	// ErrorTypeBadRequest indicates invalid request parameters.
	ErrorTypeBadRequest
	// ErrorTypeNotFound indicates the requested resource or field does not exist.
	ErrorTypeNotFound
	// ErrorTypeServerError indicates a server-side error.
	ErrorTypeServerError
	// ErrorTypeConfiguration indicates a required setting or credential is missing.
	ErrorTypeConfiguration
	// ErrorTypeSerialization indicates the request body could not be encoded.
	ErrorTypeSerialization
	// ErrorTypeShape indicates a response field has an unexpected JSON type.
	ErrorTypeShape
	// ErrorTypeDeserialization indicates a response body could not be decoded.
	ErrorTypeDeserialization
	// ErrorTypeExchange indicates an error envelope returned inside a 2xx body.
	ErrorTypeExchange
)

// String returns the string representation of the error type.
func (t ErrorType) String() string {
	return [...]string{
		"UNKNOWN",
		"NETWORK",
		"TIMEOUT",
		"RATE_LIMIT",
		"AUTHENTICATION",
		"BAD_REQUEST",
		"NOT_FOUND",
		"SERVER_ERROR",
		"CONFIGURATION",
		"SERIALIZATION",
		"SHAPE",
		"DESERIALIZATION",
		"EXCHANGE",
	}[t]
}

// Sentinel errors for common error conditions.
var (
	// ErrClientClosed is returned when attempting to use a closed client.
	ErrClientClosed = errors.New("client is closed")
	// ErrNoCredentials is returned when a client is built without credentials.
	ErrNoCredentials = errors.New("no credentials configured")
	// ErrMissingCredential is wrapped by configuration errors naming an absent credential key.
	ErrMissingCredential = errors.New("missing required credential")
	// ErrUnsupportedMethod is returned for HTTP methods the signer does not accept.
	ErrUnsupportedMethod = errors.New("unsupported http method")
)

// ExchangeError represents a structured error produced anywhere in the request pipeline.
// It never carries credential material; Body holds the exchange's response text verbatim.
type ExchangeError struct {
	// Type categorizes the error for programmatic handling.
	Type ErrorType `json:"type"`
	// StatusCode is the HTTP status code from the response, zero before a response exists.
	StatusCode int `json:"status_code"`
	// Code is the exchange-specific error code.
	Code string `json:"code"`
	// Message is the human-readable error description.
	Message string `json:"message"`
	// Method is the HTTP method of the failed request.
	Method string `json:"method,omitempty"`
	// Body is the raw response body text for operator diagnosis.
	Body string `json:"body,omitempty"`
	// Exchange identifies which exchange returned this error.
	Exchange string `json:"exchange"`
	// Timestamp is when the error occurred.
	Timestamp time.Time `json:"timestamp"`
	// Err is the underlying cause, if any.
	Err error `json:"-"`
}

// Error implements the error interface for ExchangeError.
// It returns a formatted string with exchange name, error type, status code, and message.
func (e *ExchangeError) Error() string {
	msg := e.Message
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if e.Code != "" {
		return fmt.Sprintf("[%s] %s (%d/%s): %s",
			e.Exchange, e.Type, e.StatusCode, e.Code, msg)
	}
	return fmt.Sprintf("[%s] %s (%d): %s",
		e.Exchange, e.Type, e.StatusCode, msg)
}

// Unwrap returns the underlying cause so errors.Is and errors.As see through the wrapper.
func (e *ExchangeError) Unwrap() error {
	return e.Err
}

// WithCode sets the error code and returns the error for chaining.
func (e *ExchangeError) WithCode(code ErrorCode) *ExchangeError {
	e.Code = string(code)
	return e
}

// WithCause sets the underlying cause and returns the error for chaining.
func (e *ExchangeError) WithCause(err error) *ExchangeError {
	e.Err = err
	return e
}

// NewExchangeError creates a new ExchangeError with the specified details.
// The timestamp is automatically set to the current time.
func NewExchangeError(exchange string, errorType ErrorType, statusCode int, message string) *ExchangeError {
	return &ExchangeError{
		Type:       errorType,
		StatusCode: statusCode,
		Message:    message,
		Exchange:   exchange,
		Timestamp:  time.Now(),
	}
}

// NewExchangeErrorWithCode creates a new ExchangeError including an exchange-specific error code.
func NewExchangeErrorWithCode(exchange string, errorType ErrorType, statusCode int, code, message string) *ExchangeError {
	e := NewExchangeError(exchange, errorType, statusCode, message)
	e.Code = code
	return e
}

// NewHTTPError creates the error for a non-2xx response.
// The message embeds the method, status and the full body text.
func NewHTTPError(exchange, method string, statusCode int, body string) *ExchangeError {
	e := NewExchangeError(exchange, ErrorTypeForStatus(statusCode), statusCode,
		fmt.Sprintf("%s request failed with status: %d and body: %s", method, statusCode, body))
	e.Method = method
	e.Body = body
	return e
}

// ErrorTypeForStatus maps an HTTP status code to an error category.
func ErrorTypeForStatus(statusCode int) ErrorType {
	switch {
	case statusCode >= 500:
		return ErrorTypeServerError
	case statusCode == 429:
		return ErrorTypeRateLimit
	case statusCode == 401 || statusCode == 403:
		return ErrorTypeAuthentication
	case statusCode == 400:
		return ErrorTypeBadRequest
	case statusCode == 404:
		return ErrorTypeNotFound
	default:
		return ErrorTypeUnknown
	}
}

// IsErrorType reports whether err wraps an ExchangeError of the given type.
func IsErrorType(err error, t ErrorType) bool {
	var e *ExchangeError
	if errors.As(err, &e) {
		return e.Type == t
	}
	return false
}

// IsNetworkError returns true if the error is a network connectivity issue.
func IsNetworkError(err error) bool {
	return IsErrorType(err, ErrorTypeNetwork)
}

// IsTimeoutError returns true if the error is a timeout.
func IsTimeoutError(err error) bool {
	return IsErrorType(err, ErrorTypeTimeout)
}

// IsRateLimitError returns true if the error is a rate limit violation.
func IsRateLimitError(err error) bool {
	return IsErrorType(err, ErrorTypeRateLimit)
}

// IsAuthenticationError returns true if the error is an authentication failure.
func IsAuthenticationError(err error) bool {
	return IsErrorType(err, ErrorTypeAuthentication)
}

// IsConfigurationError returns true if the error was raised while building a client.
func IsConfigurationError(err error) bool {
	return IsErrorType(err, ErrorTypeConfiguration)
}

// IsNotFoundError returns true if a resource or a required response field is absent.
func IsNotFoundError(err error) bool {
	return IsErrorType(err, ErrorTypeNotFound)
}

// IsShapeError returns true if a response field had the wrong JSON type.
func IsShapeError(err error) bool {
	return IsErrorType(err, ErrorTypeShape)
}

// IsDeserializationError returns true if a response body failed to decode.
func IsDeserializationError(err error) bool {
	return IsErrorType(err, ErrorTypeDeserialization)
}

// IsSemanticError returns true for failures after a successful protocol exchange:
// the status was 2xx but the payload was not what the endpoint declares.
func IsSemanticError(err error) bool {
	return IsShapeError(err) || IsDeserializationError(err) ||
		IsNotFoundError(err) || IsErrorType(err, ErrorTypeExchange)
}
