package exchange

import (
	"context"

	"github.com/cockroachdb/apd/v3"

	"okxrest/pkg/core"
)

// Exchange defines the account and market calls an exchange client offers
// on top of its signed request pipeline.
type Exchange interface {
	Name() string
	Version() string

	GetTicker(ctx context.Context, instID string) (*core.Ticker, error)
	GetBBOPrice(ctx context.Context, instID string, side core.OrderSide) (*apd.Decimal, error)

	FetchBalances(ctx context.Context, opts ...Option) ([]core.Record, error)
	FetchPositions(ctx context.Context, params core.PositionParams) ([]core.Position, error)

	Close() error
}
