package financing

import (
	"github.com/cloud-ru/mcp-financing-go/pkg/utils"
)

// scheduleState - состояние между двумя месяцами графика
type scheduleState struct {
	month               int
	remaining           float64
	cumulativeInterest  float64
	cumulativePrincipal float64
}

func (s scheduleState) paidOff() bool {
	return s.remaining <= 0
}

// plan - неизменные входные данные планировщика
type plan struct {
	annuity         float64
	monthlyRate     float64
	payments        int
	repaymentAmount float64
}

func newPlan(p Parameters, annuity float64) plan {
	pl := plan{
		annuity:     annuity,
		monthlyRate: p.MonthlyRate(),
		payments:    p.NumberOfPayments(),
	}
	if p.IncludeRepayment {
		pl.repaymentAmount = p.RepaymentAmount
	}
	return pl
}

// step вычисляет строку месяца s.month+1 только из предыдущего состояния.
// Состояние хранится с полной точностью, до центов округляются только строки.
func (pl plan) step(s scheduleState) (AmortizationRow, scheduleState) {
	m := s.month + 1

	interest := s.remaining * pl.monthlyRate
	principal := pl.annuity - interest

	extra := 0.0
	if pl.repaymentAmount > 0 && m%12 == 0 {
		extra = utils.NonNegative(min(pl.repaymentAmount, s.remaining-principal))
	}

	// Последний месяц: либо долг меньше платежа, либо закончился номинальный срок
	if s.remaining < principal+extra || m == pl.payments {
		principal = s.remaining
		extra = 0
	}

	remaining := s.remaining - principal - extra
	// Остаток меньше полуцента после досрочного погашения закрывается тем же платежом
	if extra > 0 && remaining < 0.005 {
		extra += remaining
		remaining = 0
	}

	next := scheduleState{
		month:               m,
		remaining:           utils.NonNegative(remaining),
		cumulativeInterest:  s.cumulativeInterest + interest,
		cumulativePrincipal: s.cumulativePrincipal + principal + extra,
	}

	// Суммы строк - разности округленных накопленных итогов, поэтому сумма
	// строк по центам совпадает с итоговыми колонками
	rowInterest := centsDelta(next.cumulativeInterest, s.cumulativeInterest)
	rowPrincipal := centsDelta(s.cumulativePrincipal+principal, s.cumulativePrincipal)
	rowExtra := centsDelta(next.cumulativePrincipal, s.cumulativePrincipal+principal)

	row := AmortizationRow{
		Month:               m,
		Year:                (m-1)/12 + 1,
		Payment:             utils.Round2(rowPrincipal + rowInterest + rowExtra),
		Interest:            rowInterest,
		Principal:           rowPrincipal,
		ExtraPayment:        rowExtra,
		RemainingDebt:       utils.Round2(next.remaining),
		CumulativeInterest:  utils.Round2(next.cumulativeInterest),
		CumulativePrincipal: utils.Round2(next.cumulativePrincipal),
	}
	return row, next
}

func centsDelta(after, before float64) float64 {
	return utils.Round2(utils.Round2(after) - utils.Round2(before))
}

// BuildSchedule строит помесячный график погашения. График заканчивается
// через NumberOfPayments месяцев или раньше, если долг погашен досрочно.
// Кредит с нулевой суммой дает нулевые строки на весь срок.
func BuildSchedule(p Parameters, annuity float64) []AmortizationRow {
	pl := newPlan(p, annuity)
	state := scheduleState{remaining: p.LoanAmount()}
	zeroLoan := state.paidOff()

	schedule := make([]AmortizationRow, 0, pl.payments)
	for state.month < pl.payments && (zeroLoan || !state.paidOff()) {
		var row AmortizationRow
		row, state = pl.step(state)
		schedule = append(schedule, row)
	}
	return schedule
}

// YearlyRollup агрегирует график по годам: точка на каждой границе 12 месяцев
// и на месяце досрочного погашения.
func YearlyRollup(schedule []AmortizationRow) []YearlyChartPoint {
	points := make([]YearlyChartPoint, 0, len(schedule)/12+1)
	prevInterest, prevPrincipal := 0.0, 0.0

	for i, row := range schedule {
		last := i == len(schedule)-1
		if row.Month%12 != 0 && !(last && row.RemainingDebt == 0) {
			continue
		}

		points = append(points, YearlyChartPoint{
			Year:                row.Year,
			Interest:            utils.Round2(row.CumulativeInterest - prevInterest),
			Principal:           utils.Round2(row.CumulativePrincipal - prevPrincipal),
			RemainingDebt:       row.RemainingDebt,
			CumulativeInterest:  row.CumulativeInterest,
			CumulativePrincipal: row.CumulativePrincipal,
		})
		prevInterest = row.CumulativeInterest
		prevPrincipal = row.CumulativePrincipal
	}
	return points
}
