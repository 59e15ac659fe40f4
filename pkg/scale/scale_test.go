package scale_test

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/n3il-kb/portfolio/pkg/scale"
)

const epsilon = 1e-9

func TestLinear_MapAndInvert(t *testing.T) {
	t.Parallel()

	s := scale.NewLinear([2]float64{0, 24}, [2]float64{570, 10})

	assert.InDelta(t, 570, s.Map(0), epsilon)
	assert.InDelta(t, 10, s.Map(24), epsilon)
	assert.InDelta(t, 290, s.Map(12), epsilon)
	assert.InDelta(t, 9.5, s.Invert(s.Map(9.5)), epsilon)
}

func TestLinear_DegenerateDomainMapsToMidpoint(t *testing.T) {
	t.Parallel()

	s := scale.NewLinear([2]float64{5, 5}, [2]float64{0, 100})

	assert.InDelta(t, 50, s.Map(5), epsilon)
	assert.InDelta(t, 50, s.Map(1000), epsilon)
}

func TestSqrt_AreaProportional(t *testing.T) {
	t.Parallel()

	s := scale.NewSqrt([2]float64{0, 100}, [2]float64{0, 10})

	assert.InDelta(t, 10, s.Map(100), epsilon)
	assert.InDelta(t, 5, s.Map(25), epsilon)
	assert.InDelta(t, 25, s.Invert(5), epsilon)

	// Quadrupling the value doubles the radius.
	assert.InDelta(t, 2*s.Map(4), s.Map(16), epsilon)
}

func TestTime_InvertRoundTrip(t *testing.T) {
	t.Parallel()

	lo := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	hi := lo.Add(100 * time.Hour)
	s := scale.NewTime([2]time.Time{lo, hi}, [2]float64{0, 100})

	assert.InDelta(t, 0, s.Map(lo), epsilon)
	assert.InDelta(t, 100, s.Map(hi), epsilon)
	assert.True(t, s.Invert(50).Equal(lo.Add(50*time.Hour)))
	assert.True(t, s.Invert(100).Equal(hi))
}

func TestTime_Nice(t *testing.T) {
	t.Parallel()

	lo := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	hi := time.Date(2024, 3, 3, 14, 0, 0, 0, time.UTC)

	nice := scale.NewTime([2]time.Time{lo, hi}, [2]float64{0, 1}).Nice()

	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), nice.D0)
	assert.Equal(t, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), nice.D1)
}

func TestTime_NiceSingleInstant(t *testing.T) {
	t.Parallel()

	at := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

	nice := scale.NewTime([2]time.Time{at, at}, [2]float64{0, 1}).Nice()

	assert.Equal(t, 24*time.Hour, nice.D1.Sub(nice.D0))
	assert.InDelta(t, 9.5/24, nice.Map(at), epsilon)
}

func TestExtent(t *testing.T) {
	t.Parallel()

	lo, hi, ok := scale.Extent([]int{4, -2, 9, 3}, func(v int) float64 { return float64(v) })
	require.True(t, ok)
	assert.InDelta(t, -2, lo, epsilon)
	assert.InDelta(t, 9, hi, epsilon)

	_, _, ok = scale.Extent([]int{}, func(v int) float64 { return float64(v) })
	assert.False(t, ok)
}

func TestLinearTicks_HourLabels(t *testing.T) {
	t.Parallel()

	s := scale.NewLinear([2]float64{0, 24}, [2]float64{570, 10})

	ticks := s.LinearTicks(2, func(v float64) string {
		return fmt.Sprintf("%02d:00", int(math.Mod(v, 24)))
	})

	require.Len(t, ticks, 13)
	assert.Equal(t, "00:00", ticks[0].Label)
	assert.Equal(t, "00:00", ticks[12].Label)
	assert.InDelta(t, 10, ticks[12].Pos, epsilon)
}

func TestTimeTicks_RespectsMax(t *testing.T) {
	t.Parallel()

	lo := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for _, span := range []time.Duration{6 * time.Hour, 5 * 24 * time.Hour, 400 * 24 * time.Hour} {
		s := scale.NewTime([2]time.Time{lo, lo.Add(span)}, [2]float64{0, 1000})
		ticks := s.Ticks(10)

		assert.NotEmpty(t, ticks, span.String())
		assert.LessOrEqual(t, len(ticks), 11, span.String())
	}
}

func TestTime_InvertEndsKeepFullPrecision(t *testing.T) {
	t.Parallel()

	lo := time.Date(2024, 1, 1, 9, 30, 0, 987654321, time.UTC)
	hi := time.Date(2024, 1, 2, 14, 0, 0, 123456789, time.UTC)
	s := scale.NewTime([2]time.Time{lo, hi}, [2]float64{0, 100})

	assert.True(t, s.Invert(0).Equal(lo))
	assert.True(t, s.Invert(100).Equal(hi))
	assert.False(t, s.Invert(99.9999).After(hi))
}
