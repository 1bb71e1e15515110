package synth

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
)

// ExportWAV renders every sound effect to dir/<name>.wav so they can be
// auditioned without starting the game. It returns the written paths.
func ExportWAV(dir string, rate beep.SampleRate) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", dir, err)
	}

	format := beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
	paths := make([]string, 0, len(Sounds))

	for _, s := range Sounds {
		path := filepath.Join(dir, s.String()+".wav")
		if err := writeWAV(path, Synthesize(s, rate), format); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeWAV(path string, s beep.Streamer, format beep.Format) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := wav.Encode(f, s, format); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
