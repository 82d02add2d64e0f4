package core

// Controls is one frame of player input. Held fields reflect key state;
// the Pressed fields and Select are edge-triggered and hold for one frame.
type Controls struct {
	Forward   bool
	Back      bool
	TurnLeft  bool
	TurnRight bool
	AimUp     bool
	AimDown   bool
	FireHeld  bool

	FirePressed    bool
	PausePressed   bool
	RestartPressed bool
	Select         int // vehicle slot to take control of, 0 for none

	MouseX, MouseY float64 // normalised device coordinates
}

// Edges returns c with only the edge-triggered fields cleared
func (c Controls) Edges() Controls {
	c.FirePressed = false
	c.PausePressed = false
	c.RestartPressed = false
	c.Select = 0
	return c
}
