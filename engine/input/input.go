package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/1siamBot/tripod-arena/engine/core"
)

// Source is the raw device state read each frame
type Source interface {
	Pressed(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
	Cursor() (x, y int)
}

// Ebiten reads live keyboard and mouse state
type Ebiten struct{}

func (Ebiten) Pressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (Ebiten) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }
func (Ebiten) Cursor() (int, int)            { return ebiten.CursorPosition() }

// Bindings maps actions to keys. Any listed key triggers its action.
type Bindings struct {
	Forward   []ebiten.Key
	Back      []ebiten.Key
	TurnLeft  []ebiten.Key
	TurnRight []ebiten.Key
	AimUp     []ebiten.Key
	AimDown   []ebiten.Key
	Fire      []ebiten.Key
	Pause     []ebiten.Key
	Restart   []ebiten.Key
	Select    [][]ebiten.Key // index i selects slot i+1
}

func DefaultBindings() Bindings {
	return Bindings{
		Forward:   []ebiten.Key{ebiten.KeyW, ebiten.KeyUp},
		Back:      []ebiten.Key{ebiten.KeyS, ebiten.KeyDown},
		TurnLeft:  []ebiten.Key{ebiten.KeyA, ebiten.KeyLeft},
		TurnRight: []ebiten.Key{ebiten.KeyD, ebiten.KeyRight},
		AimUp:     []ebiten.Key{ebiten.KeyE},
		AimDown:   []ebiten.Key{ebiten.KeyQ},
		Fire:      []ebiten.Key{ebiten.KeySpace},
		Pause:     []ebiten.Key{ebiten.KeyP},
		Restart:   []ebiten.Key{ebiten.KeyR, ebiten.KeyEnter},
		Select: [][]ebiten.Key{
			{ebiten.Key1, ebiten.KeyNumpad1},
			{ebiten.Key2, ebiten.KeyNumpad2},
		},
	}
}

// InputState turns device state into per-frame Controls
type InputState struct {
	Src           Source
	Bindings      Bindings
	Width, Height int // viewport size for mouse normalisation

	MouseX, MouseY int
}

func NewInputState() *InputState {
	return &InputState{
		Src:      Ebiten{},
		Bindings: DefaultBindings(),
	}
}

// Poll should be called once per frame
func (s *InputState) Poll() core.Controls {
	b := s.Bindings
	c := core.Controls{
		Forward:        s.any(b.Forward),
		Back:           s.any(b.Back),
		TurnLeft:       s.any(b.TurnLeft),
		TurnRight:      s.any(b.TurnRight),
		AimUp:          s.any(b.AimUp),
		AimDown:        s.any(b.AimDown),
		FireHeld:       s.any(b.Fire),
		FirePressed:    s.anyJust(b.Fire),
		PausePressed:   s.anyJust(b.Pause),
		RestartPressed: s.anyJust(b.Restart),
	}
	for i, keys := range b.Select {
		if s.anyJust(keys) {
			c.Select = i + 1
			break
		}
	}

	s.MouseX, s.MouseY = s.Src.Cursor()
	if s.Width > 0 && s.Height > 0 {
		c.MouseX = float64(s.MouseX)/float64(s.Width)*2 - 1
		c.MouseY = -(float64(s.MouseY)/float64(s.Height)*2 - 1)
	}
	return c
}

func (s *InputState) any(keys []ebiten.Key) bool {
	for _, k := range keys {
		if s.Src.Pressed(k) {
			return true
		}
	}
	return false
}

func (s *InputState) anyJust(keys []ebiten.Key) bool {
	for _, k := range keys {
		if s.Src.JustPressed(k) {
			return true
		}
	}
	return false
}
