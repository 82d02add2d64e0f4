package input

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

type fakeSource struct {
	held map[ebiten.Key]bool
	just map[ebiten.Key]bool
	x, y int
}

func (f *fakeSource) Pressed(k ebiten.Key) bool     { return f.held[k] }
func (f *fakeSource) JustPressed(k ebiten.Key) bool { return f.just[k] }
func (f *fakeSource) Cursor() (int, int)            { return f.x, f.y }

func newState(src *fakeSource) *InputState {
	s := NewInputState()
	s.Src = src
	s.Width, s.Height = 800, 600
	return s
}

func TestPollHeldKeys(t *testing.T) {
	src := &fakeSource{held: map[ebiten.Key]bool{
		ebiten.KeyW:     true,
		ebiten.KeyLeft:  true,
		ebiten.KeyE:     true,
		ebiten.KeySpace: true,
	}}
	c := newState(src).Poll()

	assert.True(t, c.Forward)
	assert.False(t, c.Back)
	assert.True(t, c.TurnLeft)
	assert.False(t, c.TurnRight)
	assert.True(t, c.AimUp)
	assert.False(t, c.AimDown)
	assert.True(t, c.FireHeld)
	assert.False(t, c.FirePressed, "held is not an edge")
}

func TestPollEdges(t *testing.T) {
	src := &fakeSource{just: map[ebiten.Key]bool{
		ebiten.KeySpace: true,
		ebiten.KeyP:     true,
		ebiten.Key2:     true,
		ebiten.KeyEnter: true,
	}}
	c := newState(src).Poll()

	assert.True(t, c.FirePressed)
	assert.True(t, c.PausePressed)
	assert.True(t, c.RestartPressed)
	assert.Equal(t, 2, c.Select)
}

func TestPollMouseNormalised(t *testing.T) {
	s := newState(&fakeSource{x: 600, y: 150})
	c := s.Poll()

	assert.InDelta(t, 0.5, c.MouseX, 1e-9)
	assert.InDelta(t, 0.5, c.MouseY, 1e-9)
	assert.Equal(t, 600, s.MouseX)
}

func TestPollWithoutViewportLeavesMouseCentered(t *testing.T) {
	s := NewInputState()
	s.Src = &fakeSource{x: 10, y: 10}
	c := s.Poll()
	assert.Zero(t, c.MouseX)
	assert.Zero(t, c.MouseY)
}
