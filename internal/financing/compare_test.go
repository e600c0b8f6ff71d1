package financing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareRepayment(t *testing.T) {
	comparison, err := CompareRepayment(withRepayment(referenceParameters(), 10000))
	require.NoError(t, err)

	assert.Equal(t, 300, comparison.WithoutRepayment.Months)
	assert.Less(t, comparison.WithRepayment.Months, 300)
	assert.Equal(t, 300-comparison.WithRepayment.Months, comparison.MonthsSaved)
	assert.Greater(t, comparison.InterestSaved, 0.0)
	assert.InDelta(t,
		comparison.WithoutRepayment.TotalInterest-comparison.WithRepayment.TotalInterest,
		comparison.InterestSaved, 0.01)
	assert.Contains(t, comparison.Recommendation, "сокращает срок")
}

func TestCompareRepayment_NoAmount(t *testing.T) {
	comparison, err := CompareRepayment(referenceParameters())
	require.NoError(t, err)

	assert.Zero(t, comparison.MonthsSaved)
	assert.Zero(t, comparison.InterestSaved)
	assert.Equal(t, comparison.WithoutRepayment.Schedule, comparison.WithRepayment.Schedule)
}

func TestCompareRepayment_InvalidParameters(t *testing.T) {
	p := referenceParameters()
	p.LoanTerm = 0

	_, err := CompareRepayment(p)
	assert.ErrorIs(t, err, ErrInvalidParameters)
}
