package audio

import "math"

// DefaultPeak is the loudness ceiling every track is normalized to
const DefaultPeak = 0.85

// Voice is one weighted input to Mix
type Voice struct {
	Signal Signal
	Weight float64
}

// Mix sums weighted voices. The result is as long as the longest voice.
func Mix(voices ...Voice) Signal {
	n := 0
	for _, v := range voices {
		n = max(n, len(v.Signal))
	}
	out := make(Signal, n)
	for _, v := range voices {
		for i, x := range v.Signal {
			out[i] += x * v.Weight
		}
	}
	return out
}

// Multiply applies b to a pointwise, over the shorter of the two
func Multiply(a, b Signal) Signal {
	out := make(Signal, min(len(a), len(b)))
	for i := range out {
		out[i] = a[i] * b[i]
	}
	return out
}

// Scale returns s with every sample multiplied by k
func (s Signal) Scale(k float64) Signal {
	out := make(Signal, len(s))
	for i, x := range s {
		out[i] = x * k
	}
	return out
}

// AddAt accumulates src into dst starting at offset. Samples falling
// outside dst are dropped.
func AddAt(dst Signal, offset int, src Signal) {
	for i, x := range src {
		j := offset + i
		if j < 0 {
			continue
		}
		if j >= len(dst) {
			return
		}
		dst[j] += x
	}
}

// FadeIn ramps the first n samples linearly from 0 to 1, in place
func FadeIn(s Signal, n int) {
	n = min(n, len(s))
	for i, g := range linspace(0, 1, n) {
		s[i] *= g
	}
}

// FadeOut ramps the last n samples linearly from 1 to 0, in place
func FadeOut(s Signal, n int) {
	n = min(n, len(s))
	off := len(s) - n
	for i, g := range linspace(1, 0, n) {
		s[off+i] *= g
	}
}

// Peak returns the maximum absolute amplitude
func Peak(s Signal) float64 {
	var mx float64
	for _, x := range s {
		mx = max(mx, math.Abs(x))
	}
	return mx
}

// Normalize rescales s so its peak equals peak. Silence is returned as is.
func Normalize(s Signal, peak float64) Signal {
	mx := Peak(s)
	if mx == 0 {
		return s
	}
	return s.Scale(peak / mx)
}

// Quantize normalizes s to DefaultPeak and converts it to 16-bit PCM.
// Samples are truncated toward zero.
func Quantize(s Signal) []int16 {
	norm := Normalize(s, DefaultPeak)
	out := make([]int16, len(norm))
	for i, x := range norm {
		out[i] = int16(x * math.MaxInt16)
	}
	return out
}
