// Package sfx defines the game's sound effects and background loop
package sfx

import "github.com/oisee/gamefx/pkg/audio"

// Partial is one tonal component of an effect. A zero SweepTo plays a
// steady sine at Freq; otherwise the pitch glides from Freq to SweepTo.
type Partial struct {
	Freq    float64
	SweepTo float64
	Weight  float64
}

func (p Partial) render(duration float64) audio.Signal {
	if p.SweepTo == 0 {
		return audio.Sine(p.Freq, duration, 0)
	}
	return audio.Sweep(p.Freq, p.SweepTo, duration)
}

// Recipe is a short effect: weighted tones plus noise, shaped by an envelope.
// Only the balance between the weights matters, final normalization
// sets the level.
type Recipe struct {
	Name     string
	Duration float64 // seconds
	Partials []Partial
	Noise    float64 // noise weight, 0 for none
	Envelope audio.ADSR
}

// Synthesize renders the effect before normalization
func (r Recipe) Synthesize(noise audio.NoiseSource) audio.Signal {
	voices := make([]audio.Voice, 0, len(r.Partials)+1)
	for _, p := range r.Partials {
		voices = append(voices, audio.Voice{Signal: p.render(r.Duration), Weight: p.Weight})
	}
	if r.Noise != 0 {
		voices = append(voices, audio.Voice{Signal: audio.Noise(noise, r.Duration), Weight: r.Noise})
	}
	return audio.Multiply(audio.Mix(voices...), audio.Envelope(r.Duration, r.Envelope))
}

var (
	// Hit is a short percussive thump
	Hit = Recipe{
		Name:     "sfx_hit",
		Duration: 0.12,
		Partials: []Partial{{Freq: 180, Weight: 0.6}},
		Noise:    0.4,
		Envelope: audio.ADSR{Attack: 0.001, Decay: 0.03, Sustain: 0.3, Release: 0.06},
	}

	// Kill is a falling tone over a burst of noise
	Kill = Recipe{
		Name:     "sfx_kill",
		Duration: 0.35,
		Partials: []Partial{{Freq: 600, SweepTo: 80, Weight: 0.5}},
		Noise:    0.5,
		Envelope: audio.ADSR{Attack: 0.001, Decay: 0.08, Sustain: 0.4, Release: 0.15},
	}

	// Dodge is a rising whoosh
	Dodge = Recipe{
		Name:     "sfx_dodge",
		Duration: 0.18,
		Partials: []Partial{{Freq: 800, SweepTo: 2000, Weight: 0.3}},
		Noise:    0.3,
		Envelope: audio.ADSR{Attack: 0.005, Decay: 0.04, Sustain: 0.5, Release: 0.08},
	}

	// PerfectDodge is a bright bell-like ding
	PerfectDodge = Recipe{
		Name:     "sfx_perfect_dodge",
		Duration: 0.25,
		Partials: []Partial{
			{Freq: 1200, Weight: 0.4},
			{Freq: 1800, Weight: 0.25},
			{Freq: 2400, Weight: 0.15},
		},
		Envelope: audio.ADSR{Attack: 0.002, Decay: 0.06, Sustain: 0.3, Release: 0.12},
	}

	// Hurt is a short falling groan
	Hurt = Recipe{
		Name:     "sfx_hurt",
		Duration: 0.2,
		Partials: []Partial{{Freq: 400, SweepTo: 150, Weight: 0.5}},
		Noise:    0.3,
		Envelope: audio.ADSR{Attack: 0.001, Decay: 0.05, Sustain: 0.3, Release: 0.1},
	}
)
