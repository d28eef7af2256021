package okx

import (
	"fmt"

	"github.com/bytedance/sonic"

	"okxrest/pkg/core"
)

// CheckResponse turns a non-2xx response into an error carrying the method,
// status and full body. 2xx responses pass through as nil.
func CheckResponse(method string, resp *core.RawResponse) error {
	if resp == nil {
		return core.NewExchangeError(exchangeName, core.ErrorTypeUnknown, 0, "nil response")
	}
	if resp.IsSuccess() {
		return nil
	}
	return core.NewHTTPError(exchangeName, method, resp.StatusCode, resp.Text())
}

// DecodeObject parses a 2xx body that is a flat JSON object of string values.
func DecodeObject(method string, resp *core.RawResponse) (map[string]string, error) {
	if err := CheckResponse(method, resp); err != nil {
		return nil, err
	}
	var out map[string]string
	if err := sonic.Unmarshal(resp.Body, &out); err != nil {
		return nil, decodeError(method, resp, "decode response object", err)
	}
	return out, nil
}

// DecodeList parses the data array of a 2xx envelope into elements of type T.
// The body is first decoded into a generic value so that a missing data field,
// a non-array data field and non-conforming elements are reported distinctly.
// A non-zero envelope code is reported as an exchange error even under a 2xx status.
func DecodeList[T any](method string, resp *core.RawResponse) ([]T, error) {
	if err := CheckResponse(method, resp); err != nil {
		return nil, err
	}

	var root any
	if err := sonic.Unmarshal(resp.Body, &root); err != nil {
		return nil, decodeError(method, resp, "decode response", err)
	}

	obj, ok := root.(map[string]any)
	if !ok {
		return nil, shapeError(method, resp, fmt.Sprintf("response is %s, not an object", jsonKind(root)))
	}

	if err := envelopeError(method, resp, obj); err != nil {
		return nil, err
	}

	data, ok := obj["data"]
	if !ok {
		e := core.NewExchangeError(exchangeName, core.ErrorTypeNotFound, resp.StatusCode, "no data field in response").
			WithCode(core.ErrCodeNoDataField)
		e.Method = method
		e.Body = resp.Text()
		return nil, e
	}

	items, ok := data.([]any)
	if !ok {
		return nil, shapeError(method, resp, fmt.Sprintf("data is %s, not an array", jsonKind(data)))
	}

	raw, err := sonic.Marshal(items)
	if err != nil {
		return nil, decodeError(method, resp, "re-encode data", err)
	}
	out := make([]T, 0, len(items))
	if err := sonic.Unmarshal(raw, &out); err != nil {
		return nil, decodeError(method, resp, "decode data elements", err)
	}
	return out, nil
}

// envelopeError reports {"code":"<non-zero>","msg":...} payloads.
func envelopeError(method string, resp *core.RawResponse, obj map[string]any) error {
	rawCode, ok := obj["code"]
	if !ok || rawCode == nil {
		return nil
	}
	code := fmt.Sprint(rawCode)
	if code == "" || code == "0" {
		return nil
	}
	msg, _ := obj["msg"].(string)
	e := core.NewExchangeErrorWithCode(exchangeName, mapOKXErrorCode(code), resp.StatusCode, code,
		fmt.Sprintf("%s request rejected: %s", method, msg))
	e.Method = method
	e.Body = resp.Text()
	return e
}

func shapeError(method string, resp *core.RawResponse, msg string) error {
	e := core.NewExchangeError(exchangeName, core.ErrorTypeShape, resp.StatusCode, msg).
		WithCode(core.ErrCodeDataNotArray)
	e.Method = method
	e.Body = resp.Text()
	return e
}

func decodeError(method string, resp *core.RawResponse, msg string, cause error) error {
	e := core.NewExchangeError(exchangeName, core.ErrorTypeDeserialization, resp.StatusCode, msg).
		WithCode(core.ErrCodeDecodeBody).
		WithCause(cause)
	e.Method = method
	e.Body = resp.Text()
	return e
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "a string"
	case float64:
		return "a number"
	case bool:
		return "a boolean"
	case []any:
		return "an array"
	case map[string]any:
		return "an object"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// mapOKXErrorCode maps the documented v5 error codes onto error categories.
func mapOKXErrorCode(code string) core.ErrorType {
	switch code {
	case "50011", "50061":
		return core.ErrorTypeRateLimit
	case "50100", "50101", "50102", "50103", "50104", "50105", "50111", "50112", "50113", "50114":
		return core.ErrorTypeAuthentication
	case "50001", "50004", "50013":
		return core.ErrorTypeServerError
	case "50014", "51000", "51001":
		return core.ErrorTypeBadRequest
	default:
		return core.ErrorTypeExchange
	}
}
