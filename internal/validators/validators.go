package validators

import (
	"fmt"

	"github.com/cloud-ru/mcp-financing-go/internal/config"
	"github.com/cloud-ru/mcp-financing-go/internal/financing"
	"github.com/cloud-ru/mcp-financing-go/pkg/utils"
)

// ValidateNumber проверяет, что число конечно и лежит в допустимом диапазоне
func ValidateNumber(name string, value float64, minInclusive, maxInclusive float64) error {
	if !utils.IsFinite(value) {
		return fmt.Errorf("%s: значение не является конечным числом", name)
	}
	if value < minInclusive {
		return fmt.Errorf("%s: значение должно быть ≥ %.2f", name, minInclusive)
	}
	if value > maxInclusive {
		return fmt.Errorf("%s: значение слишком велико (>%.2f)", name, maxInclusive)
	}
	return nil
}

// ValidateIntRange проверяет, что целое число в допустимом диапазоне
func ValidateIntRange(name string, value int, minInclusive, maxInclusive int) error {
	if value < minInclusive || value > maxInclusive {
		return fmt.Errorf("%s: значение должно быть в диапазоне [%d; %d]", name, minInclusive, maxInclusive)
	}
	return nil
}

// CheckPropertyPrice проверяет цену объекта
func CheckPropertyPrice(cfg *config.Config, price float64) error {
	return ValidateNumber("property_price", price, 0.01, cfg.MaxPropertyPrice)
}

// CheckAmount проверяет неотрицательную сумму (собственный капитал, сопутствующие расходы)
func CheckAmount(cfg *config.Config, name string, amount float64) error {
	return ValidateNumber(name, amount, 0.0, cfg.MaxPropertyPrice)
}

// CheckRate проверяет процентную ставку
func CheckRate(cfg *config.Config, rate float64) error {
	return ValidateNumber("interest_rate", rate, 0.0, cfg.MaxRate)
}

// CheckLoanTerm проверяет срок в годах
func CheckLoanTerm(cfg *config.Config, years int) error {
	return ValidateIntRange("loan_term", years, 1, cfg.MaxLoanTermYears)
}

// CheckCostRate проверяет годовую ставку страховки или обслуживания
func CheckCostRate(cfg *config.Config, name string, rate float64) error {
	return ValidateNumber(name, rate, 0.0, cfg.MaxCostRate)
}

// CheckRepayment проверяет сумму ежегодного досрочного погашения
func CheckRepayment(cfg *config.Config, amount float64) error {
	return ValidateNumber("repayment_amount", amount, 0.0, cfg.MaxRepayment)
}

// CheckParameters проверяет все параметры финансирования против лимитов сервиса
func CheckParameters(cfg *config.Config, p financing.Parameters) error {
	checks := []func() error{
		func() error { return CheckPropertyPrice(cfg, p.PropertyPrice) },
		func() error { return CheckAmount(cfg, "equity", p.Equity) },
		func() error { return CheckAmount(cfg, "additional_costs", p.AdditionalCosts) },
		func() error { return CheckRate(cfg, p.InterestRate) },
		func() error { return CheckLoanTerm(cfg, p.LoanTerm) },
		func() error { return CheckCostRate(cfg, "insurance_rate", p.InsuranceRate) },
		func() error { return CheckCostRate(cfg, "maintenance_rate", p.MaintenanceRate) },
		func() error { return CheckRepayment(cfg, p.RepaymentAmount) },
	}
	for _, check := range checks {
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}
