// Package okx implements a signed REST client for the OKX v5 API.
package okx

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"okxrest/internal/transport"
	"okxrest/pkg/core"
	"okxrest/pkg/exchange"
)

// Client signs, sends and classifies OKX REST calls.
// Every call is independent: it builds its own canonical strings and timestamp,
// and nothing is mutated after construction, so a Client is safe for concurrent use.
type Client struct {
	config     *core.Config
	creds      *core.Credentials
	signer     *Signer
	transport  core.Transport
	closer     io.Closer
	protocol   *Protocol
	normalizer *Normalizer
	logger     zerolog.Logger
}

var _ exchange.Exchange = (*Client)(nil)

// Option is a functional option for configuring the Client.
type Option func(*Options)

// Options holds configuration options for the Client.
type Options struct {
	Transport core.Transport
	Logger    zerolog.Logger
	Clock     func() time.Time
}

// WithTransport replaces the default resty transport.
// The caller keeps ownership: Close does not close an injected transport.
func WithTransport(t core.Transport) Option {
	return func(o *Options) {
		o.Transport = t
	}
}

// WithLogger returns an option that sets the logger for the client.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithClock overrides the time source used for request timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *Options) {
		o.Clock = now
	}
}

// New creates a client. It fails with a configuration error, before any network
// activity, when the config is invalid or credentials are missing.
func New(config *core.Config, creds *core.Credentials, opts ...Option) (*Client, error) {
	if config == nil {
		return nil, configError("config is required", nil)
	}
	if err := config.Validate(); err != nil {
		return nil, configError("validate config", err)
	}
	if creds == nil {
		return nil, configError("credentials are required", core.ErrNoCredentials)
	}

	options := &Options{
		Logger: zerolog.Nop(),
		Clock:  time.Now,
	}
	for _, opt := range opts {
		opt(options)
	}

	logger := options.Logger.Level(config.Level()).With().
		Str("exchange", exchangeName).
		Bool("sandbox", creds.Sandbox()).
		Logger()

	c := &Client{
		config:     config,
		creds:      creds,
		signer:     NewSigner(creds.Secret()).WithClock(options.Clock),
		transport:  options.Transport,
		protocol:   NewProtocol(),
		normalizer: NewNormalizer(),
		logger:     logger,
	}

	if c.transport == nil {
		t := transport.NewClient(config, logger)
		c.transport = t
		c.closer = t
	}

	return c, nil
}

// NewFromMap builds credentials from a flat configuration mapping
// (key, secret, passphrase, is_demo) and creates a client with the default config.
func NewFromMap(cfg map[string]string, opts ...Option) (*Client, error) {
	creds, err := core.NewCredentials(cfg)
	if err != nil {
		return nil, err
	}
	return New(core.DefaultConfig(exchangeName), creds, opts...)
}

// Register creates an OKX client and adds it to the container under "okx".
func Register(container *exchange.Container, config *core.Config, creds *core.Credentials, opts ...Option) error {
	ex, err := New(config, creds, opts...)
	if err != nil {
		return fmt.Errorf("create okx exchange: %w", err)
	}
	if err := container.Register(exchangeName, ex); err != nil {
		_ = ex.Close()
		return err
	}
	return nil
}

// Name returns the exchange identifier "okx".
func (c *Client) Name() string {
	return exchangeName
}

// Version returns the OKX API version.
func (c *Client) Version() string {
	return c.protocol.Version()
}

// Credentials returns the credentials the client signs with.
func (c *Client) Credentials() *core.Credentials {
	return c.creds
}

// Close releases the default transport. Injected transports are left alone.
func (c *Client) Close() error {
	if c.closer != nil {
		return c.closer.Close()
	}
	return nil
}

// Send canonicalizes, signs and dispatches req, returning the raw response for any
// HTTP status. Only failures to build the request or reach the server are errors;
// status classification is left to DecodeList and DecodeObject.
func (c *Client) Send(ctx context.Context, req *core.Request) (*core.RawResponse, error) {
	canon, err := Canonicalize(c.config.BaseURL, req)
	if err != nil {
		return nil, err
	}

	signature, timestamp := c.signer.SignNow(canon.Method, canon.Path, canon.Query, canon.Body)

	httpReq := &core.HTTPRequest{
		Method:  canon.Method,
		URL:     canon.URL,
		Headers: SignedHeaders(c.creds, signature, timestamp),
	}
	if canon.Body != "" {
		httpReq.Body = []byte(canon.Body)
	}

	requestID := uuid.NewString()
	start := time.Now()

	resp, err := c.transport.Do(ctx, httpReq)
	if err != nil {
		c.logger.Warn().Err(err).
			Str("request_id", requestID).
			Str("op", req.Operation.String()).
			Str("method", canon.Method).
			Str("path", canon.Path).
			Dur("elapsed", time.Since(start)).
			Msg("okx request failed")
		return nil, err
	}

	c.logger.Debug().
		Str("request_id", requestID).
		Str("op", req.Operation.String()).
		Str("method", canon.Method).
		Str("path", canon.Path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("okx request")

	return resp, nil
}

// SendObject sends req and decodes a flat string-to-string JSON object response.
func (c *Client) SendObject(ctx context.Context, req *core.Request) (map[string]string, error) {
	resp, err := c.Send(ctx, req)
	if err != nil {
		return nil, err
	}
	return DecodeObject(req.Method, resp)
}

// do builds the request for op, sends it and decodes the data array into T.
func do[T any](ctx context.Context, c *Client, op core.Operation, params *core.Params) ([]T, error) {
	req, err := c.protocol.BuildRequest(ctx, op, params)
	if err != nil {
		return nil, err
	}
	resp, err := c.Send(ctx, req)
	if err != nil {
		return nil, err
	}
	return DecodeList[T](req.Method, resp)
}

// FetchBalances returns the account balance entries from /api/v5/account/balance.
func (c *Client) FetchBalances(ctx context.Context, opts ...exchange.Option) ([]core.Record, error) {
	options := exchange.ApplyOptions(opts...)

	params := core.NewParams()
	if ccy := options.CurrencyFilter(); ccy != "" {
		params.Set("ccy", ccy)
	}

	return do[core.Record](ctx, c, core.OpGetBalance, params)
}

// GetTicker returns the latest ticker for an instrument such as "BTC-USDT".
func (c *Client) GetTicker(ctx context.Context, instID string) (*core.Ticker, error) {
	data, err := do[okxTicker](ctx, c, core.OpGetTicker, core.NewParams("instId", instID))
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, core.NewExchangeError(exchangeName, core.ErrorTypeNotFound, 0,
			fmt.Sprintf("no ticker data for %s", instID)).WithCode(core.ErrCodeEmptyData)
	}

	ticker, err := c.normalizer.NormalizeTicker(&data[0])
	if err != nil {
		return nil, core.NewExchangeError(exchangeName, core.ErrorTypeDeserialization, 0,
			"normalize ticker").WithCode(core.ErrCodeDecodeBody).WithCause(err)
	}
	return ticker, nil
}

// FetchPositions returns open positions, optionally filtered by instrument family or id.
func (c *Client) FetchPositions(ctx context.Context, params core.PositionParams) ([]core.Position, error) {
	p := core.NewParams()
	if instType := params.MarketType.InstType(); instType != "" {
		p.Set("instType", instType)
	}
	if params.InstID != "" {
		p.Set("instId", params.InstID)
	}
	if params.PositionID != "" {
		p.Set("posId", params.PositionID)
	}

	data, err := do[okxPosition](ctx, c, core.OpGetPositions, p)
	if err != nil {
		return nil, err
	}

	positions, err := c.normalizer.NormalizePositions(data)
	if err != nil {
		return nil, core.NewExchangeError(exchangeName, core.ErrorTypeDeserialization, 0,
			"normalize positions").WithCode(core.ErrCodeDecodeBody).WithCause(err)
	}
	return positions, nil
}

// GetBBOPrice returns the best price a taker on side would trade at:
// the best ask for a buy, the best bid for a sell.
func (c *Client) GetBBOPrice(ctx context.Context, instID string, side core.OrderSide) (*apd.Decimal, error) {
	ticker, err := c.GetTicker(ctx, instID)
	if err != nil {
		return nil, err
	}

	src, label := &ticker.Ask, "ask"
	if side == core.SideSell {
		src, label = &ticker.Bid, "bid"
	}
	if src.IsZero() {
		return nil, core.NewExchangeError(exchangeName, core.ErrorTypeNotFound, 0,
			fmt.Sprintf("no %s price for %s", label, instID)).WithCode(core.ErrCodeEmptyData)
	}

	price := new(apd.Decimal)
	price.Set(src)
	return price, nil
}

func configError(msg string, cause error) error {
	return core.NewExchangeError(exchangeName, core.ErrorTypeConfiguration, 0, msg).
		WithCode(core.ErrCodeInvalidConfig).
		WithCause(cause)
}
