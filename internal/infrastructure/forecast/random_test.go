package forecast

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomForecaster_RangoYLongitud(t *testing.T) {
	f := NewRandomForecaster()
	out, err := f.Forecast(context.Background(), nil, 12)
	require.NoError(t, err)

	assert.True(t, out.Placeholder)
	assert.Equal(t, SourceRandom, out.Source)
	require.Len(t, out.Values, 12)
	for _, v := range out.Values {
		assert.GreaterOrEqual(t, v, int64(PlaceholderMin))
		assert.Less(t, v, int64(PlaceholderMax))
	}
}

func TestRandomForecaster_Extremos(t *testing.T) {
	low := &RandomForecaster{intN: func(int) int { return 0 }}
	out, err := low.Forecast(context.Background(), nil, 2)
	require.NoError(t, err)
	assert.Equal(t, []int64{50, 50}, out.Values)

	high := &RandomForecaster{intN: func(n int) int { return n - 1 }}
	out, err = high.Forecast(context.Background(), nil, 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{199}, out.Values)
}

func TestRandomForecaster_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewRandomForecaster().Forecast(ctx, nil, 12)
	assert.ErrorIs(t, err, context.Canceled)
}
