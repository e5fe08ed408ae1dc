package tracker

import (
	"math"

	"github.com/oisee/gamefx/pkg/audio"
)

// Render synthesizes the whole song into one buffer.
// Pads and melody are accumulated additively, then both ends are faded.
func Render(s *Song) audio.Signal {
	out := make(audio.Signal, audio.Samples(s.Duration))

	for ev := range s.ChordEvents() {
		mixEvent(out, ev)
	}
	for ev := range s.MelodyEvents() {
		mixEvent(out, ev)
	}

	fade := audio.Samples(s.Fade)
	audio.FadeIn(out, fade)
	audio.FadeOut(out, fade)
	return out
}

// mixEvent adds every voice of ev into out, truncated at the end of out
func mixEvent(out audio.Signal, ev Event) {
	start := sampleIndex(ev.Start)
	end := min(sampleIndex(ev.Start+ev.Duration), len(out))
	if end <= start {
		return
	}
	n := end - start
	for _, freq := range ev.Freqs {
		audio.AddAt(out, start, ev.Instrument.Play(freq, n))
	}
}

func sampleIndex(seconds float64) int {
	return int(math.Floor(seconds * audio.SampleRate))
}
