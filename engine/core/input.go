package core

// Input is the engine's view of "what is held right now". Run feeds it every
// event before layers see the event, so queries made while handling an event
// already include that event.
type Input struct {
	keys           map[Key]bool
	buttons        map[MouseButton]bool
	mouseX, mouseY float64
}

func NewInput() *Input {
	return &Input{keys: map[Key]bool{}, buttons: map[MouseButton]bool{}}
}

func (in *Input) Handle(ev Event) {
	switch e := ev.(type) {
	case EventKey:
		in.keys[e.Key] = e.Down
	case EventMouseMove:
		in.mouseX, in.mouseY = e.X, e.Y
	case EventMouseButton:
		in.buttons[e.Button] = e.Down
	case EventFocus:
		// Nothing held may survive a focus change, whatever releases the
		// platform synthesizes.
		if !e.Focused {
			clear(in.keys)
			clear(in.buttons)
		}
	}
}

func (in *Input) IsKeyDown(k Key) bool            { return in.keys[k] }
func (in *Input) IsButtonDown(b MouseButton) bool { return in.buttons[b] }
func (in *Input) MousePosition() (x, y float64)   { return in.mouseX, in.mouseY }
func (in *Input) SetMousePosition(x, y float64)   { in.mouseX, in.mouseY = x, y }
func (in *Input) IsModDown(m Mod) bool            { return in.Mods()&m == m && m != ModNone }
func (in *Input) either(left, right Key) bool     { return in.keys[left] || in.keys[right] }

// Mods derives the modifier set from the held modifier keys.
func (in *Input) Mods() Mod {
	var m Mod
	if in.either(KeyLeftShift, KeyRightShift) {
		m |= ModShift
	}
	if in.either(KeyLeftControl, KeyRightControl) {
		m |= ModCtrl
	}
	if in.either(KeyLeftAlt, KeyRightAlt) {
		m |= ModAlt
	}
	if in.either(KeyLeftSuper, KeyRightSuper) {
		m |= ModSuper
	}
	return m
}
