package financing

import (
	"github.com/cloud-ru/mcp-financing-go/pkg/utils"
)

// monthlyCost переводит годовую ставку от цены объекта в ежемесячную сумму
func monthlyCost(annualRatePercent, propertyPrice float64) float64 {
	return annualRatePercent / 100.0 * propertyPrice / 12.0
}

// Summarize вычисляет итоговые показатели по готовому графику.
// Эффективная ставка - упрощенное среднее за номинальный срок, а не IRR.
// AnnuityPayment остается неокругленным, MonthlyPayment округляется до центов.
func Summarize(p Parameters, annuity float64, schedule []AmortizationRow) *Result {
	loanAmount := p.LoanAmount()

	insurance := 0.0
	if p.IncludeInsurance {
		insurance = monthlyCost(p.InsuranceRate, p.PropertyPrice)
	}
	maintenance := monthlyCost(p.MaintenanceRate, p.PropertyPrice)

	cumulativeInterest := 0.0
	if len(schedule) > 0 {
		cumulativeInterest = schedule[len(schedule)-1].CumulativeInterest
	}

	running := (insurance + maintenance) * float64(len(schedule))
	effective := 0.0
	if p.LoanTerm > 0 {
		effective = utils.Percent(cumulativeInterest, loanAmount) / float64(p.LoanTerm)
	}

	return &Result{
		LoanAmount:            utils.Round2(loanAmount),
		AnnuityPayment:        annuity,
		MonthlyInsurance:      utils.Round2(insurance),
		MonthlyMaintenance:    utils.Round2(maintenance),
		MonthlyPayment:        utils.Round2(annuity + insurance + maintenance),
		TotalInterest:         cumulativeInterest,
		TotalCost:             utils.Round2(loanAmount + cumulativeInterest + running),
		EffectiveInterestRate: utils.Round2(effective),
		LoanToValue:           utils.Round2(utils.Percent(loanAmount, p.PropertyPrice)),
		Months:                len(schedule),
		Schedule:              schedule,
		YearlyData:            YearlyRollup(schedule),
	}
}
