package exchange

// Quote is a single exchange-rate quote as served by the rate service's
// /latest endpoint. Rates maps currency codes to multipliers relative to Base.
type Quote struct {
	Amount float64            `json:"amount"`
	Base   string             `json:"base"`
	Date   string             `json:"date"`
	Rates  map[string]float64 `json:"rates"`
}
