package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloud-ru/mcp-financing-go/internal/cache"
	"github.com/cloud-ru/mcp-financing-go/internal/config"
	"github.com/cloud-ru/mcp-financing-go/internal/export"
	"github.com/cloud-ru/mcp-financing-go/internal/financing"
)

type failingStore struct {
	cache.Store
}

func (s failingStore) Set(context.Context, string, *financing.Result) error {
	return errors.New("store unavailable")
}

func newTestService(t *testing.T, store cache.Store) *FinancingService {
	t.Helper()
	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	return NewFinancingService(cfg, store, export.DefaultRegistry(), zerolog.Nop())
}

func testParameters() financing.Parameters {
	return financing.Parameters{
		PropertyPrice:   500000,
		Equity:          100000,
		AdditionalCosts: 35000,
		InterestRate:    3.45,
		LoanTerm:        25,
	}
}

func TestFinancingService_CalculateUsesCache(t *testing.T) {
	svc := newTestService(t, cache.NewMemoryStore(time.Minute))
	ctx := context.Background()

	first, cached, err := svc.Calculate(ctx, testParameters())
	require.NoError(t, err)
	assert.False(t, cached)

	second, cached, err := svc.Calculate(ctx, testParameters())
	require.NoError(t, err)
	assert.True(t, cached)
	assert.Equal(t, first, second)

	first.Schedule[0].Payment = -1
	third, _, err := svc.Calculate(ctx, testParameters())
	require.NoError(t, err)
	assert.Equal(t, second.Schedule[0], third.Schedule[0])

	other := testParameters()
	other.LoanTerm = 20
	shorter, cached, err := svc.Calculate(ctx, other)
	require.NoError(t, err)
	assert.False(t, cached)
	assert.Equal(t, 240, shorter.Months)
}

func TestFinancingService_CacheFailureIsNotFatal(t *testing.T) {
	svc := newTestService(t, failingStore{Store: cache.NewMemoryStore(time.Minute)})

	result, cached, err := svc.Calculate(context.Background(), testParameters())
	require.NoError(t, err)
	assert.False(t, cached)
	assert.Equal(t, 300, result.Months)
}

func TestFinancingService_ValidationErrors(t *testing.T) {
	svc := newTestService(t, cache.NewMemoryStore(time.Minute))

	tests := []struct {
		name   string
		mutate func(p *financing.Parameters)
		isCore bool
	}{
		{"term above service limit", func(p *financing.Parameters) { p.LoanTerm = 80 }, false},
		{"negative loan amount", func(p *financing.Parameters) { p.Equity = 700000 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testParameters()
			tt.mutate(&p)

			_, _, err := svc.Calculate(context.Background(), p)
			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.isCore, errors.Is(err, financing.ErrInvalidParameters))
		})
	}
}

func TestFinancingService_Compare(t *testing.T) {
	svc := newTestService(t, cache.NewMemoryStore(time.Minute))

	p := testParameters()
	p.RepaymentAmount = 10000
	comparison, err := svc.Compare(context.Background(), p)
	require.NoError(t, err)
	assert.Greater(t, comparison.MonthsSaved, 0)
}

func TestFinancingService_Export(t *testing.T) {
	svc := newTestService(t, cache.NewMemoryStore(time.Minute))
	ctx := context.Background()

	doc, err := svc.Export(ctx, testParameters(), export.Metadata{CustomerName: "Demo"}, "xlsx")
	require.NoError(t, err)
	assert.NotEmpty(t, doc.Data)
	assert.Contains(t, doc.Filename, "financing-demo-")

	_, err = svc.Export(ctx, testParameters(), export.Metadata{}, "docx")
	assert.ErrorIs(t, err, export.ErrUnsupportedFormat)

	assert.Equal(t, []string{"html", "pdf", "xlsx"}, svc.Formats())
}
