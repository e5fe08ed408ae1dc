// Package tracker implements the song model for the background loop
package tracker

import (
	"iter"

	"github.com/oisee/gamefx/pkg/audio"
)

// Chord is a set of frequencies (Hz) sounded together for one bar
type Chord struct {
	Name  string
	Freqs []float64
}

// Instrument defines a sound source
type Instrument struct {
	Name     string
	Waveform audio.Waveform
	Gain     float64
	Envelope audio.ADSR
}

// Play renders one note of n samples
func (inst *Instrument) Play(freq float64, n int) audio.Signal {
	tone := audio.Tone(inst.Waveform, freq, n)
	return audio.Multiply(tone, inst.Envelope.Render(n)).Scale(inst.Gain)
}

// Event is a note or chord placed on the song timeline
type Event struct {
	Start      float64 // seconds
	Duration   float64 // seconds
	Freqs      []float64
	Instrument *Instrument
}

// Song describes a looping chord-and-melody track
type Song struct {
	Title       string
	Tempo       float64 // BPM
	BeatsPerBar int
	Duration    float64 // seconds

	Progression []Chord // one chord per bar
	Pad         Instrument

	Melody     []float64 // one note per beat
	NoteLength float64   // fraction of a beat each melody note sounds
	Lead       Instrument

	Fade float64 // fade-in and fade-out length, seconds
}

// Beat returns the length of one beat in seconds
func (s *Song) Beat() float64 {
	return 60.0 / s.Tempo
}

// Bar returns the length of one bar in seconds
func (s *Song) Bar() float64 {
	return s.Beat() * float64(s.BeatsPerBar)
}

// ChordEvents yields one pad chord per bar, cycling through the
// progression until the song ends
func (s *Song) ChordEvents() iter.Seq[Event] {
	bar := s.Bar()
	return s.tile(len(s.Progression), bar, bar, func(i int) []float64 {
		return s.Progression[i].Freqs
	}, &s.Pad)
}

// MelodyEvents yields one lead note per beat, cycling through the
// melody until the song ends
func (s *Song) MelodyEvents() iter.Seq[Event] {
	beat := s.Beat()
	return s.tile(len(s.Melody), beat, beat*s.NoteLength, func(i int) []float64 {
		return []float64{s.Melody[i]}
	}, &s.Lead)
}

// tile repeats a pattern of count steps across the song. Step i starts
// at (i / count) pattern lengths plus (i mod count) steps; the first step
// starting at or past Duration ends the sequence.
func (s *Song) tile(count int, step, length float64, freqs func(int) []float64, inst *Instrument) iter.Seq[Event] {
	return func(yield func(Event) bool) {
		if count == 0 || step <= 0 {
			return
		}
		cycle := step * float64(count)
		for i := 0; ; i++ {
			pos := i % count
			start := float64(i/count)*cycle + float64(pos)*step
			if start >= s.Duration {
				return
			}
			ev := Event{
				Start:      start,
				Duration:   length,
				Freqs:      freqs(pos),
				Instrument: inst,
			}
			if !yield(ev) {
				return
			}
		}
	}
}
