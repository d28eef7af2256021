package core

import (
	"bytes"
	"net/http"
	"net/url"
	"strings"

	"github.com/bytedance/sonic"
)

// Params is an ordered set of string parameters.
// Iteration, form encoding and JSON encoding all follow insertion order;
// setting an existing key replaces its value in place.
type Params struct {
	keys   []string
	values map[string]string
}

// NewParams creates Params from alternating key, value arguments.
// A trailing key without a value is ignored.
func NewParams(kv ...string) *Params {
	p := &Params{values: make(map[string]string, len(kv)/2)}
	for i := 0; i+1 < len(kv); i += 2 {
		p.Set(kv[i], kv[i+1])
	}
	return p
}

// Set adds or replaces a parameter and returns the params for chaining.
func (p *Params) Set(key, value string) *Params {
	if p.values == nil {
		p.values = make(map[string]string)
	}
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
	return p
}

// Get returns the value stored under key.
func (p *Params) Get(key string) (string, bool) {
	if p == nil {
		return "", false
	}
	v, ok := p.values[key]
	return v, ok
}

// Len returns the number of parameters. A nil Params is empty.
func (p *Params) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

// Keys returns the parameter keys in insertion order.
func (p *Params) Keys() []string {
	if p == nil {
		return nil
	}
	return append([]string(nil), p.keys...)
}

// Encode form-encodes the parameters in insertion order, without a leading '?'.
// Keys and values are escaped with url.QueryEscape, so spaces become '+'.
func (p *Params) Encode() string {
	if p.Len() == 0 {
		return ""
	}
	var b strings.Builder
	for i, k := range p.keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(k))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.values[k]))
	}
	return b.String()
}

// MarshalJSON encodes the parameters as a JSON object in insertion order.
func (p *Params) MarshalJSON() ([]byte, error) {
	if p.Len() == 0 {
		return []byte("{}"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range p.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := sonic.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := sonic.Marshal(p.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Map returns an unordered copy of the parameters.
func (p *Params) Map() map[string]string {
	m := make(map[string]string, p.Len())
	if p == nil {
		return m
	}
	for k, v := range p.values {
		m[k] = v
	}
	return m
}

// Request is a logical exchange call before canonicalization and signing.
// Query and Body are independent channels; both are signed when present.
type Request struct {
	Operation Operation
	Method    string
	Path      string
	Query     *Params
	Body      *Params
}

// NewRequest creates a request for the given HTTP method and endpoint path.
func NewRequest(method, path string) *Request {
	return &Request{
		Method: method,
		Path:   path,
	}
}

// SetOperation tags the request with the logical operation it performs.
func (r *Request) SetOperation(op Operation) *Request {
	r.Operation = op
	return r
}

// SetQuery adds a query string parameter.
func (r *Request) SetQuery(key, value string) *Request {
	if r.Query == nil {
		r.Query = NewParams()
	}
	r.Query.Set(key, value)
	return r
}

// SetBodyParam adds a field to the JSON body.
func (r *Request) SetBodyParam(key, value string) *Request {
	if r.Body == nil {
		r.Body = NewParams()
	}
	r.Body.Set(key, value)
	return r
}

// SetParams routes params by method: body-carrying methods get a JSON body,
// every other method gets a query string. The other channel is left untouched.
func (r *Request) SetParams(params *Params) *Request {
	if params.Len() == 0 {
		return r
	}
	if MethodHasBody(r.Method) {
		r.Body = params
	} else {
		r.Query = params
	}
	return r
}

// MethodHasBody reports whether requests with this method carry a JSON body.
func MethodHasBody(method string) bool {
	return method == http.MethodPost || method == http.MethodPut
}

// HTTPRequest is a fully built request handed to a Transport.
// URL is absolute and already contains the query string.
type HTTPRequest struct {
	Method  string
	URL     string
	Headers map[string]string
	Body    []byte
}

// RawResponse is the status and unparsed body of one HTTP exchange.
type RawResponse struct {
	StatusCode int
	Body       []byte
}

// IsSuccess returns true if the response status code indicates success (2xx).
func (r *RawResponse) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Text returns the body as a string.
func (r *RawResponse) Text() string {
	return string(r.Body)
}
