package collector

import (
	"errors"

	"TradeAdvisor/internal/model"
)

// ErrDataUnavailable is returned when the provider is unreachable, the
// symbol is unknown, or the result is empty. Callers treat it like an
// insufficient series rather than retrying.
var ErrDataUnavailable = errors.New("market data unavailable")

// Fetcher defines the capability contract for market data providers.
// Period is a provider-level range token such as "1mo", "3mo", "6mo", "1y".
type Fetcher interface {
	Fetch(symbol, period string) (*model.PriceSeries, error)
	Name() string
}
