package okx

import (
	"fmt"
	"strconv"
	"time"

	"github.com/cockroachdb/apd/v3"

	"okxrest/pkg/core"
)

// okxTicker is one element of /api/v5/market/ticker data.
type okxTicker struct {
	InstType string `json:"instType"`
	InstID   string `json:"instId"`
	Last     string `json:"last"`
	LastSz   string `json:"lastSz"`
	AskPx    string `json:"askPx"`
	AskSz    string `json:"askSz"`
	BidPx    string `json:"bidPx"`
	BidSz    string `json:"bidSz"`
	Open24h  string `json:"open24h"`
	High24h  string `json:"high24h"`
	Low24h   string `json:"low24h"`
	Vol24h   string `json:"vol24h"`
	Ts       string `json:"ts"`
}

// okxPosition is one element of /api/v5/account/positions data.
type okxPosition struct {
	PosID    string `json:"posId"`
	InstID   string `json:"instId"`
	InstType string `json:"instType"`
	MgnMode  string `json:"mgnMode"`
	PosSide  string `json:"posSide"`
	Pos      string `json:"pos"`
	AvgPx    string `json:"avgPx"`
	MarkPx   string `json:"markPx"`
	Upl      string `json:"upl"`
	Lever    string `json:"lever"`
	Ccy      string `json:"ccy"`
	UTime    string `json:"uTime"`
}

// Normalizer converts OKX wire structures to core types.
type Normalizer struct{}

// NewNormalizer creates a new Normalizer instance.
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// NormalizeTicker converts an OKX ticker. Empty numeric fields become zero.
func (n *Normalizer) NormalizeTicker(data *okxTicker) (*core.Ticker, error) {
	ticker := &core.Ticker{InstID: data.InstID}

	fields := []struct {
		name string
		dest *apd.Decimal
		src  string
	}{
		{"bidPx", &ticker.Bid, data.BidPx},
		{"bidSz", &ticker.BidSize, data.BidSz},
		{"askPx", &ticker.Ask, data.AskPx},
		{"askSz", &ticker.AskSize, data.AskSz},
		{"last", &ticker.Last, data.Last},
		{"high24h", &ticker.High, data.High24h},
		{"low24h", &ticker.Low, data.Low24h},
		{"vol24h", &ticker.Volume, data.Vol24h},
	}
	for _, f := range fields {
		if err := parseDecimal(f.dest, f.src); err != nil {
			return nil, fmt.Errorf("ticker %s: %w", f.name, err)
		}
	}

	if data.Ts != "" {
		ts, err := parseOKXTime(data.Ts)
		if err != nil {
			return nil, fmt.Errorf("ticker ts: %w", err)
		}
		ticker.Timestamp = ts
	}

	return ticker, nil
}

// NormalizePosition converts an OKX position.
func (n *Normalizer) NormalizePosition(data *okxPosition) (*core.Position, error) {
	pos := &core.Position{
		PositionID:   data.PosID,
		InstID:       data.InstID,
		InstType:     data.InstType,
		MarginMode:   data.MgnMode,
		PositionSide: data.PosSide,
		Currency:     data.Ccy,
	}

	fields := []struct {
		name string
		dest *apd.Decimal
		src  string
	}{
		{"pos", &pos.Quantity, data.Pos},
		{"avgPx", &pos.AvgPrice, data.AvgPx},
		{"markPx", &pos.MarkPrice, data.MarkPx},
		{"upl", &pos.UnrealizedPnL, data.Upl},
		{"lever", &pos.Leverage, data.Lever},
	}
	for _, f := range fields {
		if err := parseDecimal(f.dest, f.src); err != nil {
			return nil, fmt.Errorf("position %s: %w", f.name, err)
		}
	}

	if data.UTime != "" {
		ts, err := parseOKXTime(data.UTime)
		if err != nil {
			return nil, fmt.Errorf("position uTime: %w", err)
		}
		pos.UpdatedAt = ts
	}

	return pos, nil
}

// NormalizePositions converts a list of OKX positions, stopping at the first bad element.
func (n *Normalizer) NormalizePositions(data []okxPosition) ([]core.Position, error) {
	positions := make([]core.Position, 0, len(data))
	for i := range data {
		pos, err := n.NormalizePosition(&data[i])
		if err != nil {
			return nil, err
		}
		positions = append(positions, *pos)
	}
	return positions, nil
}

func parseDecimal(dest *apd.Decimal, s string) error {
	if s == "" {
		*dest = apd.Decimal{}
		return nil
	}

	_, _, err := apd.BaseContext.SetString(dest, s)
	if err != nil {
		return fmt.Errorf("set decimal from string: %w", err)
	}

	return nil
}

func parseOKXTime(s string) (time.Time, error) {
	ms, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse time: %w", err)
	}
	return time.UnixMilli(ms), nil
}
