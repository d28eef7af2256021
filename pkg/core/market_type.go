package core

// MarketType represents the instrument family on an exchange.
type MarketType int

// Market type constants define the available instrument families.
const (
	// MarketTypeAny leaves the instrument family unfiltered.
	MarketTypeAny MarketType = iota
	// MarketTypeSpot indicates spot trading where assets are exchanged immediately.
	MarketTypeSpot
	// MarketTypeMargin indicates spot trading on borrowed funds.
	MarketTypeMargin
	// MarketTypeSwap indicates perpetual swap contracts.
	MarketTypeSwap
	// MarketTypeFutures indicates dated futures contracts.
	MarketTypeFutures
	// MarketTypeOptions indicates options contracts.
	MarketTypeOptions
)

// String returns the lowercase name of the market type.
func (m MarketType) String() string {
	return [...]string{
		"any",
		"spot",
		"margin",
		"swap",
		"futures",
		"options",
	}[m]
}

// InstType returns the OKX instType query value, empty for MarketTypeAny.
func (m MarketType) InstType() string {
	return [...]string{
		"",
		"SPOT",
		"MARGIN",
		"SWAP",
		"FUTURES",
		"OPTION",
	}[m]
}
