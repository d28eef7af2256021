package core

import "context"

// Transport performs one HTTP round trip.
// Implementations must not retry, must send headers and body unchanged, and must
// return the status and body for every response, including non-2xx ones.
// A non-nil error means no response was obtained.
type Transport interface {
	Do(ctx context.Context, req *HTTPRequest) (*RawResponse, error)
}

// TransportFunc adapts an ordinary function to the Transport interface.
type TransportFunc func(ctx context.Context, req *HTTPRequest) (*RawResponse, error)

// Do calls f(ctx, req).
func (f TransportFunc) Do(ctx context.Context, req *HTTPRequest) (*RawResponse, error) {
	return f(ctx, req)
}

// Protocol defines the exchange-specific request catalogue.
type Protocol interface {
	// Name returns the exchange identifier (e.g., "okx").
	Name() string

	// Version returns the API version being used.
	Version() string

	// BaseURL returns the API host. Some exchanges select the sandbox by header
	// rather than by host, in which case both modes return the same URL.
	BaseURL(sandbox bool) string

	// BuildRequest constructs the logical request for the specified operation.
	BuildRequest(ctx context.Context, op Operation, params *Params) (*Request, error)

	// SupportedOperations returns the list of operations this protocol supports.
	SupportedOperations() []Operation
}
