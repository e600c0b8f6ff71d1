package financing

import "slices"

// Parameters описывает входные данные расчета финансирования недвижимости.
// Ставки задаются в процентах годовых (3.45 означает 3,45%).
type Parameters struct {
	PropertyPrice    float64 `json:"property_price"`
	Equity           float64 `json:"equity"`
	AdditionalCosts  float64 `json:"additional_costs"`
	InterestRate     float64 `json:"interest_rate"`
	LoanTerm         int     `json:"loan_term"`
	IncludeInsurance bool    `json:"include_insurance"`
	InsuranceRate    float64 `json:"insurance_rate"`
	IncludeRepayment bool    `json:"include_repayment"`
	RepaymentAmount  float64 `json:"repayment_amount"`
	MaintenanceRate  float64 `json:"maintenance_rate"`
}

// LoanAmount возвращает сумму кредита: цена - собственный капитал + сопутствующие расходы
func (p Parameters) LoanAmount() float64 {
	return p.PropertyPrice - p.Equity + p.AdditionalCosts
}

// MonthlyRate возвращает месячную ставку в долях
func (p Parameters) MonthlyRate() float64 {
	return p.InterestRate / 100.0 / 12.0
}

// NumberOfPayments возвращает номинальное число ежемесячных платежей
func (p Parameters) NumberOfPayments() int {
	return p.LoanTerm * 12
}

// AmortizationRow представляет один месяц графика погашения
type AmortizationRow struct {
	Month               int     `json:"month"`
	Year                int     `json:"year"`
	Payment             float64 `json:"payment"`
	Interest            float64 `json:"interest"`
	Principal           float64 `json:"principal"`
	ExtraPayment        float64 `json:"extra_payment,omitempty"`
	RemainingDebt       float64 `json:"remaining_debt"`
	CumulativeInterest  float64 `json:"cumulative_interest"`
	CumulativePrincipal float64 `json:"cumulative_principal"`
}

// YearlyChartPoint агрегирует график погашения по годам
type YearlyChartPoint struct {
	Year                int     `json:"year"`
	Interest            float64 `json:"interest"`
	Principal           float64 `json:"principal"`
	RemainingDebt       float64 `json:"remaining_debt"`
	CumulativeInterest  float64 `json:"cumulative_interest"`
	CumulativePrincipal float64 `json:"cumulative_principal"`
}

// Result представляет результат расчета финансирования.
// После возврата из Calculate результат не изменяется.
type Result struct {
	LoanAmount            float64            `json:"loan_amount"`
	AnnuityPayment        float64            `json:"annuity_payment"`
	MonthlyInsurance      float64            `json:"monthly_insurance"`
	MonthlyMaintenance    float64            `json:"monthly_maintenance"`
	MonthlyPayment        float64            `json:"monthly_payment"`
	TotalInterest         float64            `json:"total_interest"`
	TotalCost             float64            `json:"total_cost"`
	EffectiveInterestRate float64            `json:"effective_interest_rate"`
	LoanToValue           float64            `json:"loan_to_value"`
	Months                int                `json:"months"`
	Schedule              []AmortizationRow  `json:"schedule"`
	YearlyData            []YearlyChartPoint `json:"yearly_data"`
}

// Clone возвращает независимую копию результата вместе с графиком
func (r *Result) Clone() *Result {
	if r == nil {
		return nil
	}
	clone := *r
	clone.Schedule = slices.Clone(r.Schedule)
	clone.YearlyData = slices.Clone(r.YearlyData)
	return &clone
}

// RepaymentComparison сравнивает финансирование с ежегодным досрочным погашением и без него
type RepaymentComparison struct {
	WithRepayment    Result  `json:"with_repayment"`
	WithoutRepayment Result  `json:"without_repayment"`
	InterestSaved    float64 `json:"interest_saved"`
	TotalCostSaved   float64 `json:"total_cost_saved"`
	MonthsSaved      int     `json:"months_saved"`
	Recommendation   string  `json:"recommendation"`
}
