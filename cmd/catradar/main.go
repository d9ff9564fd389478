package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/catradar/engine"
	"github.com/lixenwraith/catradar/physics"
)

const (
	logDir      = "logs"
	logFileName = "catradar.log"
	maxLogSize  = 10 * 1024 * 1024 // 10MB
)

// setupLogging configures log output based on debug flag
// If debug is true, logs go to file; otherwise, logging is disabled
// Returns the log file handle (or nil) that should be closed when done
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to create logs directory: %v\n", err)
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)

	// Rotate when the file outgrows maxLogSize
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		timestamp := time.Now().Format("2006-01-02-15-04-05")
		rotatedName := filepath.Join(logDir, fmt.Sprintf("catradar-%s.log", timestamp))
		if err := os.Rename(logPath, rotatedName); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to rotate log file: %v\n", err)
		}
	}

	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to open log file: %v\n", err)
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(logFile)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Printf("=== catradar started ===")

	return logFile
}

func main() {
	debug := flag.Bool("debug", false, "Enable debug logging to file")
	headless := flag.Bool("headless", false, "Run without a terminal UI")
	ticks := flag.Int("ticks", 600, "Tick count for headless runs")
	fieldX := flag.Float64("x", 1000, "Field width")
	fieldY := flag.Float64("y", 1000, "Field height")
	agents := flag.Int("n", 5000, "Agent count")
	r0 := flag.Float64("r0", 5, "Intersection radius")
	r1 := flag.Float64("r1", 20, "Interact radius")
	preset := flag.Int("preset", 0, "Init preset: 0 uniform, 1 clustered")
	pattern := flag.Int("pattern", 0, "Movement pattern: 0 free, 1 carousel, 2 colliding")
	flag.Parse()

	logFile := setupLogging(*debug)
	if logFile != nil {
		defer logFile.Close()
	}

	cfg := engine.Config{
		X:          float32(*fieldX),
		Y:          float32(*fieldY),
		N:          *agents,
		R0:         float32(*r0),
		R1:         float32(*r1),
		InitPreset: engine.InitPreset(*preset),
	}

	eng, err := engine.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	if *headless {
		runHeadless(eng, *ticks, physics.Pattern(*pattern))
		return
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	v := newViewer(screen, eng, physics.Pattern(*pattern))
	v.run()
}

// runHeadless drives a fixed number of ticks at a synthetic 60 Hz and prints
// the introspection counters at exit
func runHeadless(eng *engine.Engine, ticks int, pattern physics.Pattern) {
	in := engine.TickInput{
		Dt:                  1.0 / 60.0,
		Pattern:             pattern,
		SpeedMult:           1,
		ObservedID:          0,
		UpdateIntersections: true,
	}

	start := time.Now()
	for t := 0; t < ticks; t++ {
		eng.Tick(in)
	}
	elapsed := time.Since(start)

	fmt.Printf("%d ticks, %d agents, %.1f ticks/sec\n",
		ticks, eng.N(), float64(ticks)/elapsed.Seconds())
	for key, val := range eng.Metrics().IntSnapshot() {
		fmt.Printf("  %s = %d\n", key, val)
	}
	for _, r := range eng.Logs() {
		fmt.Println(r)
	}
}
