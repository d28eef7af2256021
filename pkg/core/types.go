package core

import (
	"time"

	"github.com/cockroachdb/apd/v3"
)

// OrderSide represents the direction of an order (buy or sell).
type OrderSide int

// Order side constants define the direction of a trade.
const (
	// SideBuy indicates an order to purchase an asset.
	SideBuy OrderSide = iota
	// SideSell indicates an order to sell an asset.
	SideSell
)

// String returns the string representation of the order side ("BUY" or "SELL").
func (s OrderSide) String() string {
	return [...]string{"BUY", "SELL"}[s]
}

// MarshalJSON implements json.Marshaler for OrderSide.
func (s OrderSide) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for OrderSide.
// It accepts both uppercase and lowercase formats.
func (s *OrderSide) UnmarshalJSON(data []byte) error {
	str := string(data)
	switch str {
	case `"BUY"`, `"buy"`:
		*s = SideBuy
	case `"SELL"`, `"sell"`:
		*s = SideSell
	}
	return nil
}

// Record is one element of a list payload whose shape the caller does not pin down.
// Values keep their JSON types: strings, float64 numbers, nested maps and slices.
type Record map[string]any

// String returns the value under key when it is a JSON string.
func (r Record) String(key string) (string, bool) {
	v, ok := r[key].(string)
	return v, ok
}

// Ticker represents real-time market data for an instrument.
type Ticker struct {
	// InstID is the instrument identifier (e.g., "BTC-USDT").
	InstID string `json:"inst_id"`
	// Bid is the best bid price.
	Bid apd.Decimal `json:"bid"`
	// BidSize is the quantity at the best bid.
	BidSize apd.Decimal `json:"bid_size"`
	// Ask is the best ask price.
	Ask apd.Decimal `json:"ask"`
	// AskSize is the quantity at the best ask.
	AskSize apd.Decimal `json:"ask_size"`
	// Last is the price of the most recent trade.
	Last apd.Decimal `json:"last"`
	// High is the highest price in the last 24 hours.
	High apd.Decimal `json:"high"`
	// Low is the lowest price in the last 24 hours.
	Low apd.Decimal `json:"low"`
	// Volume is the 24 hour trading volume in base currency.
	Volume apd.Decimal `json:"volume"`
	// Timestamp is when the exchange generated this ticker.
	Timestamp time.Time `json:"timestamp"`
}

// Position represents one open derivatives or margin position.
type Position struct {
	PositionID    string      `json:"position_id"`
	InstID        string      `json:"inst_id"`
	InstType      string      `json:"inst_type"`
	MarginMode    string      `json:"margin_mode"`
	PositionSide  string      `json:"position_side"`
	Quantity      apd.Decimal `json:"quantity"`
	AvgPrice      apd.Decimal `json:"avg_price"`
	MarkPrice     apd.Decimal `json:"mark_price"`
	UnrealizedPnL apd.Decimal `json:"unrealized_pnl"`
	Leverage      apd.Decimal `json:"leverage"`
	Currency      string      `json:"currency"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// PositionParams filters a positions query. Zero values mean no filter.
type PositionParams struct {
	MarketType MarketType
	InstID     string
	PositionID string
}
