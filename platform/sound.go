package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

// speakerOutput routes synth graphs to the default output device.
type speakerOutput struct{}

func (speakerOutput) Init(rate beep.SampleRate, bufferSize int) error {
	return speaker.Init(rate, bufferSize)
}

func (speakerOutput) Play(s ...beep.Streamer) {
	speaker.Play(s...)
}

// music is an optional looping background track.
type music struct {
	streamer beep.StreamSeekCloser
	format   beep.Format
}

func prepareMusic(file string) (*music, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("open music %s: %w", file, err)
	}

	var streamer beep.StreamSeekCloser
	var format beep.Format

	switch ext := strings.ToLower(filepath.Ext(file)); ext {
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".wav":
		streamer, format, err = wav.Decode(f)
	default:
		f.Close()
		return nil, fmt.Errorf("unsupported music format: %s", ext)
	}
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decode music %s: %w", file, err)
	}

	return &music{streamer: streamer, format: format}, nil
}

// Loop returns the track looped forever at the output rate.
func (m *music) Loop(rate beep.SampleRate) beep.Streamer {
	looped := beep.Loop(-1, m.streamer)
	if m.format.SampleRate == rate {
		return looped
	}
	return beep.Resample(4, m.format.SampleRate, rate, looped)
}

func (m *music) Close() error {
	return m.streamer.Close()
}
