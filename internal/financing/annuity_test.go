package financing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnnuityPayment(t *testing.T) {
	tests := []struct {
		name        string
		loanAmount  float64
		monthlyRate float64
		payments    int
		wantError   bool
		check       func(t *testing.T, payment float64)
	}{
		{
			name:        "matches closed form",
			loanAmount:  435000,
			monthlyRate: 3.45 / 100 / 12,
			payments:    300,
			check: func(t *testing.T, payment float64) {
				r := 3.45 / 100 / 12
				factor := math.Pow(1+r, 300)
				assert.InDelta(t, 435000*r*factor/(factor-1), payment, 1e-9)
				assert.True(t, payment > 2160 && payment < 2170, "payment %f outside 2160..2170", payment)
			},
		},
		{
			name:        "100k at 5 percent for 30 years",
			loanAmount:  100000,
			monthlyRate: 0.05 / 12,
			payments:    360,
			check: func(t *testing.T, payment float64) {
				assert.InDelta(t, 536.82, payment, 0.01)
			},
		},
		{
			name:        "zero rate splits evenly",
			loanAmount:  435000,
			monthlyRate: 0,
			payments:    300,
			check: func(t *testing.T, payment float64) {
				assert.Equal(t, 1450.0, payment)
			},
		},
		{
			name:        "zero payments",
			loanAmount:  1000,
			monthlyRate: 0.01,
			payments:    0,
			wantError:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payment, err := AnnuityPayment(tt.loanAmount, tt.monthlyRate, tt.payments)
			if tt.wantError {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidParameters)
				return
			}
			require.NoError(t, err)
			assert.False(t, math.IsNaN(payment))
			if tt.check != nil {
				tt.check(t, payment)
			}
		})
	}
}
