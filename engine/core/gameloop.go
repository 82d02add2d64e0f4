package core

import "time"

// Framer advances a simulation by one rendered frame
type Framer interface {
	Frame(dt float64)
}

// DefaultMaxFrameDelta caps dt after stalls (window drag, debugger)
const DefaultMaxFrameDelta = 0.25

// GameLoop converts the host's per-frame callback into timed steps. One
// simulation step runs per rendered frame with the measured delta.
type GameLoop struct {
	Target        Framer
	Clock         Clock
	MaxFrameDelta float64 // seconds
	lastTime      time.Time
	frames        uint64
}

// NewGameLoop creates a loop driving target with wall-clock deltas
func NewGameLoop(target Framer, clock Clock) *GameLoop {
	if clock == nil {
		clock = RealClock{}
	}
	return &GameLoop{
		Target:        target,
		Clock:         clock,
		MaxFrameDelta: DefaultMaxFrameDelta,
		lastTime:      clock.Now(),
	}
}

// Update should be called every render frame. Returns the dt it used.
func (gl *GameLoop) Update() float64 {
	now := gl.Clock.Now()
	frameTime := now.Sub(gl.lastTime).Seconds()
	gl.lastTime = now

	if frameTime < 0 {
		frameTime = 0
	}
	if gl.MaxFrameDelta > 0 && frameTime > gl.MaxFrameDelta {
		frameTime = gl.MaxFrameDelta
	}

	gl.Target.Frame(frameTime)
	gl.frames++
	return frameTime
}

// Reset restarts delta measurement, e.g. after the window regains focus
func (gl *GameLoop) Reset() {
	gl.lastTime = gl.Clock.Now()
}

// Frames returns how many frames have been driven
func (gl *GameLoop) Frames() uint64 {
	return gl.frames
}
