package synth

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/faiface/beep/wav"
)

func TestExportWAV(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "sounds")
	rate := testRate / 4

	paths, err := ExportWAV(dir, rate)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(paths) != len(Sounds) {
		t.Fatalf("Expected %d files, got %v", len(Sounds), paths)
	}

	for i, path := range paths {
		if filepath.Base(path) != Sounds[i].String()+".wav" {
			t.Errorf("Unexpected file name %s", path)
		}

		f, err := os.Open(path)
		if err != nil {
			t.Fatal(err)
		}
		s, format, err := wav.Decode(f)
		if err != nil {
			f.Close()
			t.Fatalf("%s: %v", path, err)
		}
		if format.SampleRate != rate || format.NumChannels != 2 {
			t.Errorf("%s: unexpected format %+v", path, format)
		}
		if got, want := s.Len(), rate.N(Sounds[i].Duration()); got != want {
			t.Errorf("%s: expected %d frames, got %d", path, want, got)
		}
		f.Close()
	}
}
