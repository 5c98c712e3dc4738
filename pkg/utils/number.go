package utils

import "github.com/shopspring/decimal"

// Round arredonda half-away-from-zero com a quantidade de casas informada
func Round(f float64, places int32) float64 {
	if f == 0 {
		return 0
	}

	v, _ := decimal.NewFromFloat(f).Round(places).Float64()
	return v
}

func RoundWithTwoDecimalPlace(f float64) float64 {
	return Round(f, 2)
}
