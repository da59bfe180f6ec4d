package main

import (
	"errors"
	"flag"
	"log"
	"os"
	"runtime/pprof"
	"runtime/trace"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	oscAddr       = flag.String("osc-addr", "127.0.0.1:8765", "UDP IP:port to listen for OSC messages")
	notifyTargets = flag.String("notify", "", "Comma-separated host:port OSC targets for selection notifications")
	initialNote   = flag.String("note", "", "Initial note name; unknown names start unselected")
	rootsOnly     = flag.Bool("roots-only", false, "Restrict the catalog to root spellings")
	themeList     = flag.String("theme", "", "Comma-separated hex colors per pitch class, empty entries keep defaults")
	historyWindow = flag.Duration("history-window", 10*time.Second, "How long picks stay on the history strip")
	midiPreview   = flag.Bool("midi-preview", false, "Play selected notes on the first MIDI out port")
	cpuProfile    = flag.String("cpu-profile", "", "Path to CPU profile to be written")
	memProfile    = flag.String("mem-profile", "", "Path to memory profile to be written")
	traceFile     = flag.String("trace-file", "", "Path to trace file to be written")
)

func main() {
	flag.Parse()

	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			log.Fatal("Could not create CPU profile file: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("Could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
	}
	if *traceFile != "" {
		f, err := os.Create(*traceFile)
		if err != nil {
			log.Fatal("Could not create trace file: ", err)
		}
		defer f.Close()
		if err := trace.Start(f); err != nil {
			log.Fatal("Could not start tracing: ", err)
		}
		defer trace.Stop()
	}

	var notifier *Notifier
	if *notifyTargets != "" {
		var err error
		notifier, err = NewNotifier(strings.Split(*notifyTargets, ","))
		if err != nil {
			log.Fatalf("Bad -notify: %v", err)
		}
	}

	var audition *Audition
	if *midiPreview {
		var err error
		audition, err = NewAudition()
		if err != nil {
			log.Printf("MIDI preview unavailable: %v", err)
		} else {
			defer audition.Close()
		}
	}

	np, err := NewNotePick(Config{
		InitialNote:   *initialNote,
		RootsOnly:     *rootsOnly,
		Theme:         ParseThemeList(*themeList),
		HistoryWindow: *historyWindow,
		Notifier:      notifier,
		Audition:      audition,
	})
	if err != nil {
		log.Fatalf("Could not build widget: %v", err)
	}

	np.Attach()
	defer np.Detach()

	LaunchOSCServer(*oscAddr, np)

	ebiten.SetWindowTitle("NotePick")
	w, h := np.Layout(0, 0)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(np); err != nil && !errors.Is(err, Finished) {
		log.Fatal(err)
	}

	if *memProfile != "" {
		f, err := os.Create(*memProfile)
		if err != nil {
			log.Fatal("Could not create memory profile file: ", err)
		}
		defer f.Close()
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatal("Could not write memory profile: ", err)
		}
	}
}
