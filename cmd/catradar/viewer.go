package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	channerics "github.com/niceyeti/channerics/channels"

	"github.com/lixenwraith/catradar/constant"
	"github.com/lixenwraith/catradar/engine"
	"github.com/lixenwraith/catradar/physics"
	"github.com/lixenwraith/catradar/vmath"
)

const (
	frameInterval = 16 * time.Millisecond
	recordTail    = 3 // observer records kept on the status line
)

var (
	styleIdle         = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	styleInteract     = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleIntersection = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleObserved     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleBorder       = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleStatus       = tcell.StyleDefault.Foreground(tcell.ColorSilver)
)

var patternNames = map[physics.Pattern]string{
	physics.PatternFree:      "free",
	physics.PatternCarousel:  "carousel",
	physics.PatternColliding: "colliding",
}

var normNames = map[vmath.Norm]string{
	vmath.NormEuclidean: "euclidean",
	vmath.NormManhattan: "manhattan",
	vmath.NormChebyshev: "chebyshev",
}

// viewer renders the field as colored glyphs and feeds per-tick inputs to the
// engine: cursor pushes from the mouse, border segments from right clicks,
// pattern/norm/speed toggles from the keyboard
type viewer struct {
	screen tcell.Screen
	eng    *engine.Engine

	pattern    physics.Pattern
	norm       vmath.Norm
	speedMult  float32
	paused     bool
	observed   int32
	renderRate int // percentage of agents drawn

	cursor     vmath.Vec2
	cursorHeld bool

	borders       []vmath.Vec2
	pendingBorder *vmath.Vec2

	records []string
}

func newViewer(screen tcell.Screen, eng *engine.Engine, pattern physics.Pattern) *viewer {
	return &viewer{
		screen:     screen,
		eng:        eng,
		pattern:    pattern,
		speedMult:  1,
		observed:   constant.NoAgent,
		renderRate: 100,
	}
}

// run owns the main loop: a frame ticker interleaved with terminal events
// until quit. The event pump goroutine drains on done via OrDone
func (v *viewer) run() {
	v.screen.EnableMouse()

	done := make(chan struct{})
	events := make(chan tcell.Event)
	go func() {
		defer close(events)
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	last := time.Now()
	for ev := range merge(channerics.OrDone(done, events), ticker.C) {
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if v.handleKey(ev) {
				close(done)
				return
			}
		case *tcell.EventMouse:
			v.handleMouse(ev)
		case *tcell.EventResize:
			v.screen.Sync()
		case time.Time:
			now := ev
			dt := float32(now.Sub(last).Seconds())
			last = now
			if !v.paused {
				v.tick(dt)
			}
			v.draw()
		}
	}
}

// merge fans the event channel and the frame ticker into one stream
func merge(events <-chan tcell.Event, frames <-chan time.Time) <-chan any {
	out := make(chan any)
	go func() {
		defer close(out)
		for {
			select {
			case ev, ok := <-events:
				if !ok {
					return
				}
				out <- ev
			case t := <-frames:
				out <- t
			}
		}
	}()
	return out
}

func (v *viewer) tick(dt float32) {
	v.eng.Tick(engine.TickInput{
		Dt:                  dt,
		Pattern:             v.pattern,
		Norm:                v.norm,
		SpeedMult:           v.speedMult,
		CursorEnabled:       v.cursorHeld,
		Cursor:              v.cursor,
		Borders:             v.borders,
		ObservedID:          v.observed,
		UpdateIntersections: true,
	})

	for _, r := range v.eng.Logs() {
		v.records = append(v.records, r.String())
	}
	if len(v.records) > recordTail {
		v.records = v.records[len(v.records)-recordTail:]
	}
}

// handleKey returns true on quit
func (v *viewer) handleKey(ev *tcell.EventKey) bool {
	switch {
	case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q':
		return true
	case ev.Rune() == ' ':
		v.paused = !v.paused
	case ev.Rune() == 'm':
		v.pattern = (v.pattern + 1) % 3
	case ev.Rune() == 'n':
		v.norm = (v.norm + 1) % 3
	case ev.Rune() == '+':
		if v.speedMult < constant.SpeedMultMax {
			v.speedMult += 0.5
		}
	case ev.Rune() == '-':
		if v.speedMult > 0 {
			v.speedMult -= 0.5
		}
	case ev.Rune() == 'o':
		if v.observed == constant.NoAgent {
			v.observed = 0
		} else {
			v.observed = constant.NoAgent
		}
	case ev.Rune() == '[':
		if v.renderRate > 10 {
			v.renderRate -= 10
		}
	case ev.Rune() == ']':
		if v.renderRate < 100 {
			v.renderRate += 10
		}
	case ev.Rune() == 'x':
		v.borders = nil
		v.pendingBorder = nil
	case ev.Rune() == 'r':
		cfg := v.eng.Config()
		if err := v.eng.Reset(cfg); err != nil {
			log.Printf("reset failed: %v", err)
		}
		v.records = nil
	case ev.Rune() == 'p':
		cfg := v.eng.Config()
		cfg.InitPreset = 1 - cfg.InitPreset
		if err := v.eng.Reset(cfg); err != nil {
			log.Printf("reset failed: %v", err)
		}
		v.records = nil
	}
	return false
}

// handleMouse maps screen coordinates into the field: left button pushes
// agents away from the cursor while held, right clicks place border
// endpoints in pairs
func (v *viewer) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	pos := v.screenToField(x, y)

	held := ev.Buttons()&tcell.ButtonPrimary != 0
	v.cursorHeld = held
	if held {
		v.cursor = pos
	}

	if ev.Buttons()&tcell.ButtonSecondary != 0 {
		if v.pendingBorder == nil {
			p := pos
			v.pendingBorder = &p
		} else if len(v.borders) < 2*constant.MaxBorders {
			v.borders = append(v.borders, *v.pendingBorder, pos)
			v.pendingBorder = nil
		}
	}
}

func (v *viewer) fieldScale() (float32, float32, int, int) {
	w, h := v.screen.Size()
	statusRows := 2
	if h <= statusRows {
		return 1, 1, w, 1
	}
	h -= statusRows
	cfg := v.eng.Config()
	return cfg.X / float32(w), cfg.Y / float32(h), w, h
}

func (v *viewer) screenToField(x, y int) vmath.Vec2 {
	sx, sy, _, _ := v.fieldScale()
	return vmath.Vec2{X: (float32(x) + 0.5) * sx, Y: (float32(y) + 0.5) * sy}
}

func (v *viewer) draw() {
	v.screen.Clear()
	sx, sy, w, h := v.fieldScale()

	for b := 0; b+1 < len(v.borders); b += 2 {
		v.drawBorder(v.borders[b], v.borders[b+1], sx, sy)
	}

	pos := v.eng.Positions()
	states := v.eng.States()
	drawn := len(pos) * v.renderRate / 100
	for i := 0; i < drawn; i++ {
		cx := int(pos[i].X / sx)
		cy := int(pos[i].Y / sy)
		if cx < 0 || cx >= w || cy < 0 || cy >= h {
			continue
		}
		style := styleIdle
		switch {
		case int32(i) == v.observed:
			style = styleObserved
		case states[i] == constant.StateInteract:
			style = styleInteract
		case states[i] == constant.StateIntersection:
			style = styleIntersection
		}
		v.screen.SetContent(cx, cy, '•', nil, style)
	}

	v.drawStatus(h)
	v.screen.Show()
}

func (v *viewer) drawBorder(b1, b2 vmath.Vec2, sx, sy float32) {
	// Sample the segment densely enough to hit every crossed cell
	steps := int(b2.Sub(b1).Magnitude()/min32(sx, sy)) + 1
	for s := 0; s <= steps; s++ {
		t := float32(s) / float32(steps)
		p := b1.Add(b2.Sub(b1).Scale(t))
		v.screen.SetContent(int(p.X/sx), int(p.Y/sy), '#', nil, styleBorder)
	}
}

func (v *viewer) drawStatus(h int) {
	tickSec := v.eng.Metrics().TickSeconds()
	line := fmt.Sprintf("n=%d pattern=%s norm=%s speed=%.1f rate=%d%% tick=%.2fms  [m]pattern [n]norm [o]observe [space]pause [q]uit",
		v.eng.N(), patternNames[v.pattern], normNames[v.norm], v.speedMult, v.renderRate, tickSec*1000)
	v.putLine(0, h, line)

	if len(v.records) > 0 {
		v.putLine(0, h+1, v.records[len(v.records)-1])
	}
}

func (v *viewer) putLine(x, y int, s string) {
	for i, r := range s {
		v.screen.SetContent(x+i, y, r, nil, styleStatus)
	}
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
