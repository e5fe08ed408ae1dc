// Package audio implements the signal synthesis toolkit
package audio

import (
	"math"
	"math/rand/v2"
)

// SampleRate is the only rate gamefx renders at
const SampleRate = 44100

// Signal is a mono sequence of amplitudes at SampleRate
type Signal []float64

// Samples converts a duration in seconds to a sample count
func Samples(seconds float64) int {
	if seconds <= 0 {
		return 0
	}
	return int(math.Round(seconds * SampleRate))
}

// Duration returns the length of the signal in seconds
func (s Signal) Duration() float64 {
	return float64(len(s)) / SampleRate
}

// Waveform selects the shape an Oscillator emits
type Waveform uint8

const (
	WaveSine Waveform = iota
	WaveTriangle
)

// Oscillator generates waveforms by phase accumulation
type Oscillator struct {
	Type       Waveform
	Phase      float64 // In cycles, kept in [0, 1)
	Frequency  float64
	SampleRate float64
}

// NewOscillator creates a new oscillator
func NewOscillator(wave Waveform, sampleRate float64) *Oscillator {
	return &Oscillator{
		Type:       wave,
		SampleRate: sampleRate,
	}
}

// SetFrequency sets the oscillator frequency
func (o *Oscillator) SetFrequency(freq float64) {
	o.Frequency = freq
}

// SetPhase sets the phase from an offset in radians
func (o *Oscillator) SetPhase(radians float64) {
	p := math.Mod(radians/(2*math.Pi), 1.0)
	if p < 0 {
		p += 1.0
	}
	o.Phase = p
}

// Advance moves the phase forward by one sample at the current frequency
func (o *Oscillator) Advance() {
	o.Phase += o.Frequency / o.SampleRate
	o.Phase -= math.Floor(o.Phase)
}

// Value returns the waveform at the current phase (-1.0 to 1.0)
func (o *Oscillator) Value() float64 {
	switch o.Type {
	case WaveTriangle:
		return Triangle(o.Phase)
	default:
		return math.Sin(2 * math.Pi * o.Phase)
	}
}

// Sample emits the current value, then advances
func (o *Oscillator) Sample() float64 {
	v := o.Value()
	o.Advance()
	return v
}

// Reset resets the oscillator phase
func (o *Oscillator) Reset() {
	o.Phase = 0
}

// Triangle wave from a phase in cycles: 1 at the cycle edges, -1 mid-cycle
func Triangle(phase float64) float64 {
	frac := phase - math.Floor(phase)
	return math.Abs(2*frac-1)*2 - 1
}

// Sine returns sin(2π·freq·t + phase) over duration seconds
func Sine(freq, duration, phase float64) Signal {
	osc := NewOscillator(WaveSine, SampleRate)
	osc.SetFrequency(freq)
	osc.SetPhase(phase)
	return osc.render(Samples(duration))
}

// Tone renders n samples of a constant-frequency waveform starting at phase 0
func Tone(wave Waveform, freq float64, n int) Signal {
	osc := NewOscillator(wave, SampleRate)
	osc.SetFrequency(freq)
	return osc.render(n)
}

func (o *Oscillator) render(n int) Signal {
	if n <= 0 {
		return Signal{}
	}
	out := make(Signal, n)
	for i := range out {
		out[i] = o.Sample()
	}
	return out
}

// Sweep generates a chirp from f0 to f1 over duration seconds.
// The instantaneous frequency is integrated into the phase before each
// sample, so the output has no phase jumps however fast it sweeps.
func Sweep(f0, f1, duration float64) Signal {
	n := Samples(duration)
	if n <= 0 {
		return Signal{}
	}
	freqs := linspace(f0, f1, n)
	osc := NewOscillator(WaveSine, SampleRate)
	out := make(Signal, n)
	for i, f := range freqs {
		osc.SetFrequency(f)
		osc.Advance()
		out[i] = osc.Value()
	}
	return out
}

// NoiseSource supplies uniform values in [0, 1). *rand.Rand satisfies it.
type NoiseSource interface {
	Float64() float64
}

type globalNoise struct{}

func (globalNoise) Float64() float64 { return rand.Float64() }

// DefaultNoise draws from the process-wide generator. It is seeded at
// startup, so output differs between runs.
var DefaultNoise NoiseSource = globalNoise{}

// Noise returns uniform white noise in [-1, 1]
func Noise(src NoiseSource, duration float64) Signal {
	if src == nil {
		src = DefaultNoise
	}
	out := make(Signal, Samples(duration))
	for i := range out {
		out[i] = src.Float64()*2 - 1
	}
	return out
}

// linspace returns num evenly spaced values from start to stop inclusive.
// A single value holds start.
func linspace(start, stop float64, num int) []float64 {
	if num <= 0 {
		return nil
	}
	out := make([]float64, num)
	if num == 1 {
		out[0] = start
		return out
	}
	step := (stop - start) / float64(num-1)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	out[num-1] = stop
	return out
}
