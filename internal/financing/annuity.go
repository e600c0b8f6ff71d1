package financing

import (
	"math"
)

// AnnuityPayment рассчитывает постоянный ежемесячный аннуитетный платеж
//
//	P = L * r(1+r)^n / ((1+r)^n - 1)
//
// При нулевой ставке платеж равен L / n.
func AnnuityPayment(loanAmount, monthlyRate float64, payments int) (float64, error) {
	if payments <= 0 {
		return 0, invalid("loan_term", "число платежей должно быть положительным")
	}

	n := float64(payments)
	if monthlyRate == 0.0 {
		return loanAmount / n, nil
	}

	factor := math.Pow(1.0+monthlyRate, n)
	return loanAmount * monthlyRate * factor / (factor - 1.0), nil
}
