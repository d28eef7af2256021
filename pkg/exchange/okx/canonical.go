package okx

import (
	"fmt"
	"net/http"
	"strings"

	"okxrest/pkg/core"
)

var supportedMethods = map[string]struct{}{
	http.MethodGet:    {},
	http.MethodPost:   {},
	http.MethodPut:    {},
	http.MethodDelete: {},
}

// CanonicalRequest holds the exact strings that are both signed and sent.
type CanonicalRequest struct {
	Method string
	Path   string
	// Query is "?k=v&..." or empty.
	Query string
	// Body is the JSON object text or empty.
	Body string
	// URL is base host + Path + Query.
	URL string
}

// Canonicalize builds the query string, body and URL for req against baseURL.
// The returned strings are used verbatim for both the signature and the HTTP request.
func Canonicalize(baseURL string, req *core.Request) (*CanonicalRequest, error) {
	if req == nil {
		return nil, requestError(core.ErrCodeMissingParam, "nil request", nil)
	}
	if _, ok := supportedMethods[req.Method]; !ok {
		return nil, requestError(core.ErrCodeUnsupported,
			fmt.Sprintf("method %q", req.Method), core.ErrUnsupportedMethod)
	}
	if !strings.HasPrefix(req.Path, "/") {
		return nil, requestError(core.ErrCodeMissingParam,
			fmt.Sprintf("endpoint path %q must start with '/'", req.Path), nil)
	}

	var query string
	if req.Query.Len() > 0 {
		query = "?" + req.Query.Encode()
	}

	var body string
	if req.Body.Len() > 0 {
		if !core.MethodHasBody(req.Method) {
			return nil, requestError(core.ErrCodeUnsupported,
				fmt.Sprintf("%s request cannot carry a body", req.Method), nil)
		}
		data, err := req.Body.MarshalJSON()
		if err != nil {
			return nil, core.NewExchangeError(exchangeName, core.ErrorTypeSerialization, 0,
				"encode request body").
				WithCode(core.ErrCodeEncodeBody).
				WithCause(err)
		}
		body = string(data)
	}

	return &CanonicalRequest{
		Method: req.Method,
		Path:   req.Path,
		Query:  query,
		Body:   body,
		URL:    strings.TrimRight(baseURL, "/") + req.Path + query,
	}, nil
}

// SigningInput pairs the canonical strings with a timestamp.
func (c *CanonicalRequest) SigningInput(timestamp string) SigningInput {
	return SigningInput{
		Timestamp:   timestamp,
		Method:      c.Method,
		RequestPath: c.Path,
		Query:       c.Query,
		Body:        c.Body,
	}
}

func requestError(code core.ErrorCode, msg string, cause error) error {
	return core.NewExchangeError(exchangeName, core.ErrorTypeBadRequest, 0, msg).
		WithCode(code).
		WithCause(cause)
}
