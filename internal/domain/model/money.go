package model

import "math"

// Round2 rounds a currency amount to two decimal places, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Pricing holds the deployment-wide cart pricing constants.
type Pricing struct {
	TaxRate     float64
	DeliveryFee float64
}
