package risk

import "positionSizer/internal/domain"

// Validate checks that stop-loss and take-profit lie strictly on opposite sides
// of entry and infers the trade direction. Any equality makes the triangle invalid.
func Validate(entry, stopLoss, takeProfit float64) (bool, domain.Direction) {
	valid := (stopLoss < entry && entry < takeProfit) ||
		(stopLoss > entry && entry > takeProfit)
	return valid, DirectionOf(entry, stopLoss)
}

// DirectionOf returns Short when entry is below stop-loss and Long otherwise.
func DirectionOf(entry, stopLoss float64) domain.Direction {
	if entry < stopLoss {
		return domain.Short
	}
	return domain.Long
}
