package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/oisee/gamefx/pkg/audio"
	"github.com/oisee/gamefx/pkg/sfx"
	"github.com/oisee/gamefx/pkg/tui"
)

func main() {
	jobs := buildJobs(sfx.Tracks(), sfx.DefaultOutputDir, audio.DefaultNoise)

	var err error
	if term.IsTerminal(int(os.Stdout.Fd())) {
		err = tui.Run(jobs)
	} else {
		err = tui.RunPlain(os.Stdout, jobs)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// buildJobs turns each track into a job that synthesizes it and writes it to dir
func buildJobs(tracks []sfx.Track, dir string, noise audio.NoiseSource) []tui.Job {
	jobs := make([]tui.Job, len(tracks))
	for i, track := range tracks {
		jobs[i] = tui.Job{
			Name: track.Name,
			Run: func() (string, error) {
				return audio.SaveWAV(dir, track.FileName(), track.PCM(noise), audio.SampleRate)
			},
		}
	}
	return jobs
}
