package service

import (
	"context"
	"math"
	"strings"

	"github.com/mvandermeer/Product-Package-Catalog-Backend/internal/exchange"
)

// CurrencyConverter converts base-currency amounts into other currencies for
// presentation. It never affects stored state, and any failure to obtain a
// rate degrades to the unconverted amount rather than an error.
type CurrencyConverter struct {
	rates        exchange.Client
	baseCurrency string
}

// NewCurrencyConverter creates a new CurrencyConverter. baseCurrency is the
// fixed currency package totals are stored in.
func NewCurrencyConverter(rates exchange.Client, baseCurrency string) *CurrencyConverter {
	return &CurrencyConverter{
		rates:        rates,
		baseCurrency: strings.ToUpper(baseCurrency),
	}
}

// Convert converts amount from the base currency to targetCurrency, rounded
// half-up to 2 decimal places. The second return value reports whether a
// conversion was applied.
//
// No rate lookup is made when targetCurrency is empty or equals the base
// currency (case-insensitive); the amount is returned unchanged. A failed
// lookup, a quote for the wrong base, or a quote without the target code also
// return the amount unchanged — conversion is fail-open by contract.
func (c *CurrencyConverter) Convert(ctx context.Context, amount float64, targetCurrency string) (float64, bool) {
	target := strings.ToUpper(strings.TrimSpace(targetCurrency))
	if target == "" || target == c.baseCurrency {
		return amount, false
	}

	quote, err := c.rates.Latest(ctx, c.baseCurrency)
	if err != nil {
		return amount, false
	}

	if !strings.EqualFold(quote.Base, c.baseCurrency) {
		return amount, false
	}

	rate, ok := quote.Rates[target]
	if !ok {
		return amount, false
	}

	return math.Round(amount*rate*100) / 100, true
}
