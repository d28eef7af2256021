package exchange

import "strings"

type Option func(*Options)

type Options struct {
	// Currencies restricts balance queries to the listed assets.
	Currencies []string
}

// WithCurrencies limits a balance query to the given assets.
func WithCurrencies(ccy ...string) Option {
	return func(o *Options) {
		o.Currencies = append(o.Currencies, ccy...)
	}
}

// CurrencyFilter joins the currencies the way OKX expects them ("BTC,ETH").
func (o *Options) CurrencyFilter() string {
	return strings.Join(o.Currencies, ",")
}

func ApplyOptions(opts ...Option) *Options {
	o := &Options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
