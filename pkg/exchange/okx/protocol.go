package okx

import (
	"context"
	"fmt"
	"net/http"

	"okxrest/pkg/core"
)

const (
	exchangeName = "okx"

	// ProductionURL serves both live and demo trading; demo is selected by header.
	ProductionURL = "https://www.okx.com"

	pathBalance   = "/api/v5/account/balance"
	pathPositions = "/api/v5/account/positions"
	pathTicker    = "/api/v5/market/ticker"
)

// Protocol implements core.Protocol for the OKX v5 REST API.
type Protocol struct{}

// NewProtocol creates a new OKX protocol instance.
func NewProtocol() *Protocol {
	return &Protocol{}
}

// Name returns the protocol identifier "okx".
func (p *Protocol) Name() string {
	return exchangeName
}

// Version returns the OKX API version string.
func (p *Protocol) Version() string {
	return "5"
}

// BaseURL returns the API host. OKX uses one host for both environments.
func (p *Protocol) BaseURL(sandbox bool) string {
	return ProductionURL
}

// SupportedOperations returns the list of operations supported by this protocol.
func (p *Protocol) SupportedOperations() []core.Operation {
	return []core.Operation{
		core.OpGetTicker,
		core.OpGetBalance,
		core.OpGetPositions,
	}
}

// BuildRequest constructs the logical request for op.
func (p *Protocol) BuildRequest(ctx context.Context, op core.Operation, params *core.Params) (*core.Request, error) {
	switch op {
	case core.OpGetTicker:
		return p.buildGetTickerRequest(params)
	case core.OpGetBalance:
		return p.buildGetBalanceRequest(params)
	case core.OpGetPositions:
		return p.buildGetPositionsRequest(params)
	default:
		return nil, requestError(core.ErrCodeUnsupported,
			fmt.Sprintf("unsupported operation: %s", op), nil)
	}
}

func (p *Protocol) buildGetTickerRequest(params *core.Params) (*core.Request, error) {
	instID, err := getRequiredParam(params, "instId")
	if err != nil {
		return nil, err
	}

	req := core.NewRequest(http.MethodGet, pathTicker).SetOperation(core.OpGetTicker)
	req.SetQuery("instId", instID)
	return req, nil
}

func (p *Protocol) buildGetBalanceRequest(params *core.Params) (*core.Request, error) {
	req := core.NewRequest(http.MethodGet, pathBalance).SetOperation(core.OpGetBalance)
	if ccy, ok := params.Get("ccy"); ok && ccy != "" {
		req.SetQuery("ccy", ccy)
	}
	return req, nil
}

func (p *Protocol) buildGetPositionsRequest(params *core.Params) (*core.Request, error) {
	req := core.NewRequest(http.MethodGet, pathPositions).SetOperation(core.OpGetPositions)
	for _, key := range []string{"instType", "instId", "posId"} {
		if v, ok := params.Get(key); ok && v != "" {
			req.SetQuery(key, v)
		}
	}
	return req, nil
}

func getRequiredParam(params *core.Params, key string) (string, error) {
	v, ok := params.Get(key)
	if !ok {
		return "", requestError(core.ErrCodeMissingParam,
			fmt.Sprintf("missing required parameter: %s", key), nil)
	}
	if v == "" {
		return "", requestError(core.ErrCodeMissingParam,
			fmt.Sprintf("parameter %s cannot be empty", key), nil)
	}
	return v, nil
}
