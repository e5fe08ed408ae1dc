package audio

import "math"

// ADSR defines an attack-decay-sustain-release gain curve.
// Attack, Decay and Release are in seconds, Sustain is a level (0.0-1.0).
type ADSR struct {
	Attack  float64
	Decay   float64
	Sustain float64
	Release float64
}

// Envelope renders adsr over duration seconds
func Envelope(duration float64, adsr ADSR) Signal {
	return adsr.Render(Samples(duration))
}

// Render builds the curve for a segment of n samples.
//
// Attack, decay and release each take at least one sample; sustain fills
// whatever is left. When the stages do not fit, the tail is cut, and when
// rounding leaves a gap it is padded with silence. Either way the
// stage boundaries stay where they were computed.
func (e ADSR) Render(n int) Signal {
	if n <= 0 {
		return Signal{}
	}

	a := stageSamples(e.Attack)
	d := stageSamples(e.Decay)
	r := stageSamples(e.Release)
	s := max(0, n-a-d-r)

	env := make(Signal, 0, a+d+s+r)
	env = append(env, linspace(0, 1, a)...)
	env = append(env, linspace(1, e.Sustain, d)...)
	for range s {
		env = append(env, e.Sustain)
	}
	env = append(env, linspace(e.Sustain, 0, r)...)

	if len(env) > n {
		return env[:n]
	}
	for len(env) < n {
		env = append(env, 0)
	}
	return env
}

func stageSamples(seconds float64) int {
	return max(1, int(math.Floor(seconds*SampleRate)))
}
