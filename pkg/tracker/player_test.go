package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oisee/gamefx/pkg/audio"
)

func TestRenderLength(t *testing.T) {
	s := testSong()
	out := Render(s)
	require.Len(t, out, audio.Samples(s.Duration))
	assert.Greater(t, audio.Peak(out), 0.0)
}

func TestRenderFadesAreLinear(t *testing.T) {
	s := testSong()
	faded := Render(s)

	raw := *s
	raw.Fade = 0
	flat := Render(&raw)
	require.Len(t, flat, len(faded))

	fade := audio.Samples(s.Fade)
	last := len(faded) - 1
	assert.Equal(t, 0.0, faded[0])
	assert.Equal(t, 0.0, faded[last])

	for i := 0; i < fade; i += 101 {
		in := float64(i) / float64(fade-1)
		assert.InDelta(t, flat[i]*in, faded[i], 1e-12, "fade in at %d", i)
		assert.InDelta(t, flat[last-i]*in, faded[last-i], 1e-12, "fade out at %d", last-i)
	}
	mid := len(faded) / 2
	assert.Equal(t, flat[mid], faded[mid])
}

func TestRenderIsAdditive(t *testing.T) {
	s := testSong()
	s.Fade = 0
	full := Render(s)

	pads := *s
	pads.Melody = nil
	lead := *s
	lead.Progression = nil

	a, b := Render(&pads), Render(&lead)
	for i := 0; i < len(full); i += 37 {
		require.InDelta(t, a[i]+b[i], full[i], 1e-12, "sample %d", i)
	}
}

func TestMixEventTruncatesAtEnd(t *testing.T) {
	s := testSong()
	out := make(audio.Signal, audio.SampleRate+100)
	mixEvent(out, Event{Start: 1, Duration: 1, Freqs: []float64{441}, Instrument: &s.Pad})

	for i := 0; i < audio.SampleRate; i++ {
		require.Equal(t, 0.0, out[i])
	}
	assert.NotEqual(t, 0.0, out[audio.SampleRate+5])

	// Starting past the buffer is a no-op
	before := append(audio.Signal(nil), out...)
	mixEvent(out, Event{Start: 2, Duration: 1, Freqs: []float64{441}, Instrument: &s.Pad})
	assert.Equal(t, before, out)
}
