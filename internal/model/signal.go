package model

// SignalKind is the discrete trading recommendation.
type SignalKind string

const (
	SignalBuy              SignalKind = "BUY"
	SignalSell             SignalKind = "SELL"
	SignalNeutral          SignalKind = "NEUTRAL"
	SignalInsufficientData SignalKind = "INSUFFICIENT_DATA"
)

// Signal is the final output of the strategy engine. It is produced fresh
// on every evaluation and never mutated.
type Signal struct {
	Kind       SignalKind
	Reason     string
	Confidence float64 // 0-100, heuristic strength, not a probability
}
