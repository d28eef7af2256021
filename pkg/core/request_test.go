package core

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequest(t *testing.T) {
	req := NewRequest("GET", "/api/v5/account/balance")

	assert.Equal(t, "GET", req.Method)
	assert.Equal(t, "/api/v5/account/balance", req.Path)
	assert.Equal(t, OpUnknown, req.Operation)
	assert.Zero(t, req.Query.Len())
	assert.Zero(t, req.Body.Len())
}

func TestRequest_SetQuery(t *testing.T) {
	req := NewRequest("GET", "/api/v5/market/ticker")
	result := req.SetQuery("instId", "BTC-USDT")

	assert.Same(t, req, result)
	v, ok := req.Query.Get("instId")
	assert.True(t, ok)
	assert.Equal(t, "BTC-USDT", v)
}

func TestRequest_SetBodyParam(t *testing.T) {
	req := NewRequest("POST", "/api/v5/trade/order").SetBodyParam("sz", "1")

	v, _ := req.Body.Get("sz")
	assert.Equal(t, "1", v)
	assert.Zero(t, req.Query.Len())
}

func TestRequest_SetParams_RoutesByMethod(t *testing.T) {
	tests := []struct {
		method   string
		wantBody bool
	}{
		{"GET", false},
		{"DELETE", false},
		{"POST", true},
		{"PUT", true},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			req := NewRequest(tt.method, "/x").SetParams(NewParams("a", "1"))

			if tt.wantBody {
				assert.Equal(t, 1, req.Body.Len())
				assert.Zero(t, req.Query.Len())
			} else {
				assert.Equal(t, 1, req.Query.Len())
				assert.Zero(t, req.Body.Len())
			}
		})
	}
}

func TestRequest_SetParams_EmptyLeavesRequestAlone(t *testing.T) {
	req := NewRequest("GET", "/x").SetQuery("a", "1")
	req.SetParams(NewParams())

	assert.Equal(t, "a=1", req.Query.Encode())
}

func TestParams_InsertionOrder(t *testing.T) {
	p := NewParams("z", "1", "a", "2").Set("m", "3")

	assert.Equal(t, []string{"z", "a", "m"}, p.Keys())
	assert.Equal(t, "z=1&a=2&m=3", p.Encode())

	data, err := p.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"z":"1","a":"2","m":"3"}`, string(data))
}

func TestParams_SetReplacesInPlace(t *testing.T) {
	p := NewParams("a", "1", "b", "2").Set("a", "3")

	assert.Equal(t, []string{"a", "b"}, p.Keys())
	assert.Equal(t, "a=3&b=2", p.Encode())
}

func TestParams_NewParamsIgnoresDanglingKey(t *testing.T) {
	p := NewParams("a", "1", "b")
	assert.Equal(t, 1, p.Len())
}

func TestParams_EncodeEscapes(t *testing.T) {
	p := NewParams("q", "a b&c=d", "ccy", "BTC,ETH")

	encoded := p.Encode()
	assert.Equal(t, "q=a+b%26c%3Dd&ccy=BTC%2CETH", encoded)

	parsed, err := url.ParseQuery(encoded)
	require.NoError(t, err)
	assert.Equal(t, "a b&c=d", parsed.Get("q"))
	assert.Equal(t, "BTC,ETH", parsed.Get("ccy"))
}

func TestParams_Empty(t *testing.T) {
	var nilParams *Params

	assert.Zero(t, nilParams.Len())
	assert.Empty(t, nilParams.Encode())
	assert.Nil(t, nilParams.Keys())
	assert.Empty(t, nilParams.Map())
	_, ok := nilParams.Get("a")
	assert.False(t, ok)

	data, err := NewParams().MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}

func TestParams_MarshalJSONEscapes(t *testing.T) {
	data, err := NewParams("note", "say \"hi\"\n").MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"note":"say \"hi\"\n"}`, string(data))
}

func TestParams_Map(t *testing.T) {
	p := NewParams("a", "1", "b", "2")
	m := p.Map()
	m["a"] = "changed"

	assert.Equal(t, map[string]string{"a": "changed", "b": "2"}, m)
	v, _ := p.Get("a")
	assert.Equal(t, "1", v)
}

func TestMethodHasBody(t *testing.T) {
	assert.True(t, MethodHasBody("POST"))
	assert.True(t, MethodHasBody("PUT"))
	assert.False(t, MethodHasBody("GET"))
	assert.False(t, MethodHasBody("DELETE"))
}

func TestRawResponse(t *testing.T) {
	ok := &RawResponse{StatusCode: 200, Body: []byte("ok")}
	assert.True(t, ok.IsSuccess())
	assert.Equal(t, "ok", ok.Text())

	assert.True(t, (&RawResponse{StatusCode: 299}).IsSuccess())
	assert.False(t, (&RawResponse{StatusCode: 300}).IsSuccess())
	assert.False(t, (&RawResponse{StatusCode: 199}).IsSuccess())
}
