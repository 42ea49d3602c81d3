package core

// Button is one logical button of the 8-button pad.
type Button uint8

const (
	ButtonUp Button = 1 << iota
	ButtonLeft
	ButtonRight
	ButtonDown
	ButtonA
	ButtonB
	ButtonStart
	ButtonSelect
)

// String returns a human-readable name for the button.
func (b Button) String() string {
	switch b {
	case ButtonUp:
		return "Up"
	case ButtonLeft:
		return "Left"
	case ButtonRight:
		return "Right"
	case ButtonDown:
		return "Down"
	case ButtonA:
		return "A"
	case ButtonB:
		return "B"
	case ButtonStart:
		return "Start"
	case ButtonSelect:
		return "Select"
	default:
		return "Unknown"
	}
}

// Buttons is a set of buttons.
type Buttons uint8

// Has reports whether every bit of b is set.
func (s Buttons) Has(b Button) bool {
	return s&Buttons(b) == Buttons(b)
}

// Latch holds the button state for the current and the previous frame.
// Only the frame driver calls Rotate, once per frame after update and draw.
type Latch struct {
	cur Buttons
	prv Buttons
}

// Press marks a button as held in the current frame.
func (l *Latch) Press(b Button) {
	l.cur |= Buttons(b)
}

// Release marks a button as not held in the current frame.
func (l *Latch) Release(b Button) {
	l.cur &^= Buttons(b)
}

// Set replaces the whole current state.
func (l *Latch) Set(s Buttons) {
	l.cur = s
}

// Current returns the buttons held this frame.
func (l *Latch) Current() Buttons {
	return l.cur
}

// Previous returns the buttons held last frame.
func (l *Latch) Previous() Buttons {
	return l.prv
}

// Pressed reports whether b is held this frame.
func (l *Latch) Pressed(b Button) bool {
	return l.cur.Has(b)
}

// Clicked reports whether b went from released to held this frame.
func (l *Latch) Clicked(b Button) bool {
	return l.cur.Has(b) && !l.prv.Has(b)
}

// Rotate copies the current state into the previous one.
func (l *Latch) Rotate() {
	l.prv = l.cur
}
