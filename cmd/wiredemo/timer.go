package main

import "time"

// frameTimer tracks wall-clock frame timing: total elapsed time, the
// delta of the last frame, and an FPS figure sampled over a sliding
// window.
type frameTimer struct {
	start   time.Time
	last    time.Time
	fpsMark time.Time

	elapsed float32
	delta   float32
	fps     float32
	frames  int
}

// fpsWindow is how long frames are accumulated before the FPS readout
// updates.
const fpsWindow = 3 * time.Second

func newFrameTimer() *frameTimer {
	now := time.Now()
	return &frameTimer{
		start:   now,
		last:    now,
		fpsMark: now,
		delta:   0.01,
		fps:     30,
	}
}

// tick advances the timer by one frame.
func (t *frameTimer) tick() {
	now := time.Now()
	t.elapsed = float32(now.Sub(t.start).Seconds())
	t.delta = float32(now.Sub(t.last).Seconds())
	t.last = now

	t.frames++
	if window := now.Sub(t.fpsMark); window >= fpsWindow {
		t.fps = float32(t.frames) / float32(window.Seconds())
		t.fpsMark = now
		t.frames = 0
	}
}

func (t *frameTimer) Elapsed() float32 { return t.elapsed }
func (t *frameTimer) Delta() float32   { return t.delta }
func (t *frameTimer) FPS() float32     { return t.fps }
