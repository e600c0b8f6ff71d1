package utils

import "math"

// Round2 округляет денежную сумму до центов
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}

// IsFinite проверяет, является ли число конечным
func IsFinite(value float64) bool {
	return !math.IsInf(value, 0) && !math.IsNaN(value)
}

// NonNegative обрезает отрицательные значения до нуля
func NonNegative(value float64) float64 {
	if value < 0 {
		return 0
	}
	return value
}

// Percent возвращает долю part от whole в процентах; для whole == 0 возвращает 0
func Percent(part, whole float64) float64 {
	if whole == 0 {
		return 0
	}
	return part / whole * 100
}
