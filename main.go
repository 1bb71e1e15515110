package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"

	"github.com/faiface/pixel/pixelgl"

	"github.com/nathanKramer/starfall/platform"
	"github.com/nathanKramer/starfall/starfall"
	"github.com/nathanKramer/starfall/synth"
)

var configPath = flag.String("config", "./starfall.yml", "path to the YAML config file")
var fullscreen = flag.Bool("fullscreen", false, "open fullscreen on the primary monitor")
var seed = flag.Int64("seed", 0, "random seed, 0 picks one from the clock")
var exportSounds = flag.String("export-sounds", "", "write the synthesized sound effects as WAV files into this directory and exit")

// To read about how to use these profiles,
// https://blog.golang.org/pprof
var cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
var memprofile = flag.String("memprofile", "", "write memory profile to this file")

func main() {
	flag.Parse()

	cfg, err := starfall.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("[Boot] %v", err)
	}
	if *fullscreen {
		cfg.Window.Fullscreen = true
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	if *exportSounds != "" {
		paths, err := synth.ExportWAV(*exportSounds, synth.DefaultSampleRate)
		if err != nil {
			log.Fatalf("[Boot] %v", err)
		}
		for _, p := range paths {
			fmt.Println(p)
		}
		return
	}

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	pixelgl.Run(func() {
		platform.Run(cfg)
	})

	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
	}
}
