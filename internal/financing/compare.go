package financing

import (
	"fmt"

	"github.com/cloud-ru/mcp-financing-go/pkg/utils"
)

// CompareRepayment сравнивает финансирование с ежегодным досрочным погашением и без него
func CompareRepayment(p Parameters) (*RepaymentComparison, error) {
	with := p
	with.IncludeRepayment = true
	without := p
	without.IncludeRepayment = false

	withResult, err := Calculate(with)
	if err != nil {
		return nil, err
	}
	withoutResult, err := Calculate(without)
	if err != nil {
		return nil, err
	}

	interestSaved := utils.Round2(withoutResult.TotalInterest - withResult.TotalInterest)
	costSaved := utils.Round2(withoutResult.TotalCost - withResult.TotalCost)
	monthsSaved := withoutResult.Months - withResult.Months

	var recommendation string
	switch {
	case p.RepaymentAmount <= 0:
		recommendation = "Сумма досрочного погашения не задана, графики совпадают."
	case monthsSaved > 0:
		recommendation = fmt.Sprintf(
			"Ежегодное досрочное погашение %.2f сокращает срок на %d мес. и экономит %.2f процентов.",
			p.RepaymentAmount, monthsSaved, interestSaved)
	default:
		recommendation = fmt.Sprintf(
			"Досрочное погашение экономит %.2f процентов без сокращения срока.", interestSaved)
	}

	return &RepaymentComparison{
		WithRepayment:    *withResult,
		WithoutRepayment: *withoutResult,
		InterestSaved:    interestSaved,
		TotalCostSaved:   costSaved,
		MonthsSaved:      monthsSaved,
		Recommendation:   recommendation,
	}, nil
}
