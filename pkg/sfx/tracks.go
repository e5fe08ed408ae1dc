package sfx

import (
	"github.com/oisee/gamefx/pkg/audio"
	"github.com/oisee/gamefx/pkg/tracker"
)

// DefaultOutputDir is where the game loads its audio from
const DefaultOutputDir = "assets/audio"

// Track is one named artifact and the routine that synthesizes it
type Track struct {
	Name     string
	Generate func(noise audio.NoiseSource) audio.Signal
}

// FileName returns the WAV file name for the track
func (t Track) FileName() string {
	return t.Name + ".wav"
}

// PCM synthesizes the track and quantizes it for persistence
func (t Track) PCM(noise audio.NoiseSource) []int16 {
	return audio.Quantize(t.Generate(noise))
}

func recipeTrack(r Recipe) Track {
	return Track{Name: r.Name, Generate: r.Synthesize}
}

// Tracks returns every artifact in build order
func Tracks() []Track {
	return []Track{
		{
			Name: Theme.Title,
			Generate: func(audio.NoiseSource) audio.Signal {
				song := Theme
				return tracker.Render(&song)
			},
		},
		recipeTrack(Hit),
		recipeTrack(Kill),
		recipeTrack(Dodge),
		recipeTrack(PerfectDodge),
		recipeTrack(Hurt),
	}
}
