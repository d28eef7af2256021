package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperation_String(t *testing.T) {
	tests := []struct {
		name string
		op   Operation
		want string
	}{
		{"unknown", OpUnknown, "UNKNOWN"},
		{"get_ticker", OpGetTicker, "GET_TICKER"},
		{"get_balance", OpGetBalance, "GET_BALANCE"},
		{"get_positions", OpGetPositions, "GET_POSITIONS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.op.String())
		})
	}
}

func TestMarketType(t *testing.T) {
	tests := []struct {
		mt       MarketType
		name     string
		instType string
	}{
		{MarketTypeAny, "any", ""},
		{MarketTypeSpot, "spot", "SPOT"},
		{MarketTypeMargin, "margin", "MARGIN"},
		{MarketTypeSwap, "swap", "SWAP"},
		{MarketTypeFutures, "futures", "FUTURES"},
		{MarketTypeOptions, "options", "OPTION"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.mt.String())
			assert.Equal(t, tt.instType, tt.mt.InstType())
		})
	}
}
