package sfx

import (
	"github.com/oisee/gamefx/pkg/audio"
	"github.com/oisee/gamefx/pkg/tracker"
)

// Theme is the 30 second background loop: soft triangle pads under a
// music box melody
var Theme = tracker.Song{
	Title:       "bgm_loop",
	Tempo:       110,
	BeatsPerBar: 4,
	Duration:    30,

	Progression: []tracker.Chord{
		{Name: "C", Freqs: []float64{261.63, 329.63, 392.00}},
		{Name: "Am", Freqs: []float64{220.00, 261.63, 329.63}},
		{Name: "F", Freqs: []float64{174.61, 220.00, 261.63}},
		{Name: "G", Freqs: []float64{196.00, 246.94, 293.66}},
	},
	// Pad level 0.15 at voice weight 0.3, 20ms swell
	Pad: tracker.Instrument{
		Name:     "Pad",
		Waveform: audio.WaveTriangle,
		Gain:     0.15 * 0.3,
		Envelope: audio.ADSR{Attack: 0.02, Sustain: 1},
	},

	Melody: []float64{
		523.25, 587.33, 659.25, 523.25,
		440.00, 493.88, 523.25, 440.00,
		349.23, 392.00, 440.00, 349.23,
		392.00, 440.00, 493.88, 523.25,
	},
	NoteLength: 0.8,
	Lead: tracker.Instrument{
		Name:     "Music box",
		Waveform: audio.WaveSine,
		Gain:     0.2,
		Envelope: audio.ADSR{Attack: 0.005, Decay: 0.05, Sustain: 0.3, Release: 0.15},
	},

	Fade: 0.5,
}
