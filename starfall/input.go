package starfall

import "github.com/faiface/pixel"

// InputState merges pointer and touch style input into one tracker. The
// platform layer feeds it events, the game reads it once per frame.
type InputState struct {
	Pointer pixel.Vec
	Active  bool // pointer is over the canvas (or a finger is down)
	Down    bool

	pressed bool // a press edge not yet consumed
	start   bool
	pause   bool
}

func (in *InputState) Move(x, y float64) {
	in.Pointer = pixel.V(x, y)
	in.Active = true
}

func (in *InputState) Leave() {
	in.Active = false
}

// Press records a fresh press at (x, y). Holding the button does not generate
// further presses, only Release followed by Press does.
func (in *InputState) Press(x, y float64) {
	in.Move(x, y)
	if !in.Down {
		in.pressed = true
	}
	in.Down = true
}

func (in *InputState) Release() {
	in.Down = false
}

// RequestStart is a non-pointer start gesture (keyboard).
func (in *InputState) RequestStart() {
	in.start = true
}

func (in *InputState) TogglePause() {
	in.pause = true
}

// ConsumePress reports and clears a pending press edge.
func (in *InputState) ConsumePress() bool {
	p := in.pressed
	in.pressed = false
	return p
}

func (in *InputState) consumeStart() bool {
	s := in.start
	in.start = false
	return s
}

func (in *InputState) consumePause() bool {
	p := in.pause
	in.pause = false
	return p
}
