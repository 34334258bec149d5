package utils

import "math"

// RoundWithTwoDecimalPlace redondea un importe a dos decimales
func RoundWithTwoDecimalPlace(f float64) float64 {
	return math.Round(f*100) / 100
}
