// Package financing реализует расчет аннуитетного финансирования недвижимости:
// ежемесячный платеж, график погашения с ежегодным досрочным погашением
// и итоговые показатели.
package financing

import (
	"fmt"

	"github.com/cloud-ru/mcp-financing-go/pkg/utils"
)

// Validate проверяет, что параметры дают осмысленный расчет
func (p Parameters) Validate() error {
	amounts := []struct {
		field string
		value float64
	}{
		{"property_price", p.PropertyPrice},
		{"equity", p.Equity},
		{"additional_costs", p.AdditionalCosts},
		{"interest_rate", p.InterestRate},
		{"insurance_rate", p.InsuranceRate},
		{"repayment_amount", p.RepaymentAmount},
		{"maintenance_rate", p.MaintenanceRate},
	}
	for _, a := range amounts {
		if !utils.IsFinite(a.value) {
			return invalid(a.field, "значение не является конечным числом")
		}
		if a.value < 0 {
			return invalid(a.field, "значение не может быть отрицательным")
		}
	}

	if p.PropertyPrice == 0 {
		return invalid("property_price", "значение должно быть положительным")
	}
	if p.LoanTerm <= 0 {
		return invalid("loan_term", fmt.Sprintf("срок должен быть положительным, получено %d", p.LoanTerm))
	}
	// Нулевой кредит допустим: график из нулевых строк на весь срок
	if loan := p.LoanAmount(); loan < 0 {
		return invalid("loan_amount", fmt.Sprintf("собственные средства превышают стоимость, сумма кредита %.2f", loan))
	}
	return nil
}

// Calculate выполняет полный расчет финансирования. Функция чистая:
// одинаковые параметры дают идентичный результат.
func Calculate(p Parameters) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	annuity, err := AnnuityPayment(p.LoanAmount(), p.MonthlyRate(), p.NumberOfPayments())
	if err != nil {
		return nil, err
	}
	if !utils.IsFinite(annuity) {
		return nil, fmt.Errorf("численная ошибка: аннуитетный платеж не является конечным числом")
	}

	schedule := BuildSchedule(p, annuity)
	if n := len(schedule); n == 0 || schedule[n-1].RemainingDebt != 0 {
		return nil, fmt.Errorf("численная ошибка: график не погашает кредит полностью")
	}

	return Summarize(p, annuity, schedule), nil
}
