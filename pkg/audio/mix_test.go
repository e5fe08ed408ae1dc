package audio

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMixWeightsAndLength(t *testing.T) {
	out := Mix(
		Voice{Signal: Signal{1, 1, 1}, Weight: 0.5},
		Voice{Signal: Signal{2, -2}, Weight: 0.25},
	)
	assert.Equal(t, Signal{1, 0, 0.5}, out)
	assert.Empty(t, Mix())
}

func TestMultiplyUsesShorterLength(t *testing.T) {
	assert.Equal(t, Signal{2, -6}, Multiply(Signal{1, 2, 3}, Signal{2, -3}))
}

func TestScaleCopies(t *testing.T) {
	s := Signal{1, -2}
	out := s.Scale(3)
	assert.Equal(t, Signal{3, -6}, out)
	assert.Equal(t, Signal{1, -2}, s, "Scale must not modify its receiver")
}

func TestAddAtClipsToDestination(t *testing.T) {
	dst := make(Signal, 4)
	AddAt(dst, 2, Signal{1, 2, 3})
	AddAt(dst, -1, Signal{5, 1})
	assert.Equal(t, Signal{1, 0, 1, 2}, dst)
}

func TestFades(t *testing.T) {
	s := Signal{1, 1, 1, 1, 1, 1, 1}
	FadeIn(s, 3)
	FadeOut(s, 3)
	assert.Equal(t, Signal{0, 0.5, 1, 1, 1, 0.5, 0}, s)

	short := Signal{1, 1}
	FadeIn(short, 10)
	assert.Equal(t, Signal{0, 1}, short)
}

func TestNormalizePeak(t *testing.T) {
	src := rand.New(rand.NewPCG(3, 4))
	for _, peak := range []float64{0.85, 1, 0.1} {
		s := Mix(
			Voice{Signal: Sine(180, 0.12, 0), Weight: 0.6},
			Voice{Signal: Noise(src, 0.12), Weight: 0.4},
		)
		out := Normalize(s, peak)
		require.Len(t, out, len(s))
		assert.InDelta(t, peak, Peak(out), 1e-12)
	}
}

func TestNormalizeNegativePeak(t *testing.T) {
	out := Normalize(Signal{0.1, -0.4, 0.2}, 0.8)
	assert.InDelta(t, -0.8, out[1], 1e-12)
	assert.InDelta(t, 0.2, out[0], 1e-12)
}

func TestNormalizeSilence(t *testing.T) {
	s := Signal{0, 0, 0}
	out := Normalize(s, DefaultPeak)
	assert.Equal(t, Signal{0, 0, 0}, out)
	assert.Empty(t, Normalize(Signal{}, DefaultPeak))
}

func TestQuantizeTruncates(t *testing.T) {
	assert.Equal(t, []int16{27851, -13925, 0}, Quantize(Signal{1, -0.5, 0}))
}

func TestQuantizeRange(t *testing.T) {
	limit := int16(math.Round(DefaultPeak * math.MaxInt16))
	src := rand.New(rand.NewPCG(5, 6))

	for _, gain := range []float64{0.001, 1, 250} {
		pcm := Quantize(Noise(src, 0.2).Scale(gain))
		require.Len(t, pcm, Samples(0.2))

		var peak int16
		for _, v := range pcm {
			require.LessOrEqual(t, v, limit)
			require.GreaterOrEqual(t, v, -limit)
			if v < 0 {
				v = -v
			}
			peak = max(peak, v)
		}
		// Normalization always lands just under the ceiling
		assert.GreaterOrEqual(t, peak, limit-1)
	}
}

func TestQuantizeSilence(t *testing.T) {
	assert.Equal(t, []int16{0, 0}, Quantize(Signal{0, 0}))
}
