package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloud-ru/mcp-financing-go/internal/financing"
)

func testParameters() financing.Parameters {
	return financing.Parameters{
		PropertyPrice:   500000,
		Equity:          100000,
		AdditionalCosts: 35000,
		InterestRate:    3.45,
		LoanTerm:        25,
	}
}

func TestKey(t *testing.T) {
	p := testParameters()
	assert.Equal(t, Key(p), Key(testParameters()))
	assert.Contains(t, Key(p), "financing:")

	changed := p
	changed.InterestRate = 3.46
	assert.NotEqual(t, Key(p), Key(changed))

	withFlag := p
	withFlag.IncludeRepayment = true
	assert.NotEqual(t, Key(p), Key(withFlag))
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Minute)
	assert.Equal(t, "memory", store.Backend())

	_, found := store.Get(ctx, "missing")
	assert.False(t, found)

	result, err := financing.Calculate(testParameters())
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, Key(testParameters()), result))

	cached, found := store.Get(ctx, Key(testParameters()))
	require.True(t, found)
	assert.Equal(t, result, cached)
	assert.NotSame(t, result, cached)
}

func TestMemoryStore_CallerMutationsDoNotLeak(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Minute)
	key := Key(testParameters())

	result, err := financing.Calculate(testParameters())
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, key, result))
	want := result.Schedule[0]

	result.Schedule[0].Payment = -1
	result.TotalCost = -1

	first, found := store.Get(ctx, key)
	require.True(t, found)
	assert.Equal(t, want, first.Schedule[0])
	assert.NotEqual(t, -1.0, first.TotalCost)

	first.Schedule[0].Interest = -1
	first.YearlyData[0].Principal = -1

	second, found := store.Get(ctx, key)
	require.True(t, found)
	assert.Equal(t, want, second.Schedule[0])
	assert.NotEqual(t, -1.0, second.YearlyData[0].Principal)
}

func TestMemoryStore_Expires(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(20 * time.Millisecond)

	require.NoError(t, store.Set(ctx, "k", &financing.Result{LoanAmount: 1}))
	time.Sleep(40 * time.Millisecond)

	_, found := store.Get(ctx, "k")
	assert.False(t, found)
}

func TestRedisStore_UnavailableIsMiss(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	store := NewRedisStore("127.0.0.1:1", time.Minute)
	defer store.Close()
	assert.Equal(t, "redis", store.Backend())

	_, found := store.Get(ctx, Key(testParameters()))
	assert.False(t, found)
	assert.Error(t, store.Set(ctx, "k", &financing.Result{}))
}
