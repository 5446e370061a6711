package guibridge

import (
	"github.com/hubastard/grovegui/engine/core"
	"github.com/hubastard/grovegui/engine/gui"
)

// HostInput is the live input state the translator samples. core.Input
// implements it.
type HostInput interface {
	MousePosition() (x, y float64)
	IsModDown(m core.Mod) bool
}

// keyTable pairs host keys with logical keys one to one. Host keys missing
// here (function keys, keypad, punctuation, modifiers) are not forwarded.
var keyTable = [...]struct {
	host core.Key
	key  gui.Key
}{
	{core.KeyA, gui.KeyA}, {core.KeyB, gui.KeyB}, {core.KeyC, gui.KeyC},
	{core.KeyD, gui.KeyD}, {core.KeyE, gui.KeyE}, {core.KeyF, gui.KeyF},
	{core.KeyG, gui.KeyG}, {core.KeyH, gui.KeyH}, {core.KeyI, gui.KeyI},
	{core.KeyJ, gui.KeyJ}, {core.KeyK, gui.KeyK}, {core.KeyL, gui.KeyL},
	{core.KeyM, gui.KeyM}, {core.KeyN, gui.KeyN}, {core.KeyO, gui.KeyO},
	{core.KeyP, gui.KeyP}, {core.KeyQ, gui.KeyQ}, {core.KeyR, gui.KeyR},
	{core.KeyS, gui.KeyS}, {core.KeyT, gui.KeyT}, {core.KeyU, gui.KeyU},
	{core.KeyV, gui.KeyV}, {core.KeyW, gui.KeyW}, {core.KeyX, gui.KeyX},
	{core.KeyY, gui.KeyY}, {core.KeyZ, gui.KeyZ},

	{core.Key0, gui.KeyNum0}, {core.Key1, gui.KeyNum1}, {core.Key2, gui.KeyNum2},
	{core.Key3, gui.KeyNum3}, {core.Key4, gui.KeyNum4}, {core.Key5, gui.KeyNum5},
	{core.Key6, gui.KeyNum6}, {core.Key7, gui.KeyNum7}, {core.Key8, gui.KeyNum8},
	{core.Key9, gui.KeyNum9},

	{core.KeyEscape, gui.KeyEscape},
	{core.KeyTab, gui.KeyTab},
	{core.KeyBackspace, gui.KeyBackspace},
	{core.KeyEnter, gui.KeyEnter},
	{core.KeySpace, gui.KeySpace},
	{core.KeyInsert, gui.KeyInsert},
	{core.KeyDelete, gui.KeyDelete},
	{core.KeyHome, gui.KeyHome},
	{core.KeyEnd, gui.KeyEnd},
	{core.KeyPageDown, gui.KeyPageDown},
	{core.KeyPageUp, gui.KeyPageUp},
	{core.KeyUp, gui.KeyArrowUp},
	{core.KeyDown, gui.KeyArrowDown},
	{core.KeyLeft, gui.KeyArrowLeft},
	{core.KeyRight, gui.KeyArrowRight},
}

var (
	toGUI  = make(map[core.Key]gui.Key, len(keyTable))
	toHost = make(map[gui.Key]core.Key, len(keyTable))
)

func init() {
	for _, e := range keyTable {
		toGUI[e.host] = e.key
		toHost[e.key] = e.host
	}
}

// TranslateKey maps a host key to the logical vocabulary.
func TranslateKey(k core.Key) (gui.Key, bool) {
	key, ok := toGUI[k]
	return key, ok
}

// HostKey is the inverse of TranslateKey.
func HostKey(k gui.Key) (core.Key, bool) {
	host, ok := toHost[k]
	return host, ok
}

// TranslateButton maps host mouse buttons; extra buttons act as primary.
func TranslateButton(b core.MouseButton) gui.PointerButton {
	switch b {
	case core.MouseButtonRight:
		return gui.PointerSecondary
	case core.MouseButtonMiddle:
		return gui.PointerMiddle
	default:
		return gui.PointerPrimary
	}
}

// CurrentModifiers samples the modifier keys held right now. Ctrl sets both
// Ctrl and Command.
func CurrentModifiers(host HostInput) gui.Modifiers {
	var m gui.Modifiers
	if host.IsModDown(core.ModCtrl) {
		m.Ctrl = true
		m.Command = true
	}
	m.Shift = host.IsModDown(core.ModShift)
	m.Alt = host.IsModDown(core.ModAlt)
	return m
}

// HandleEvent appends at most one translated event to in. Events outside the
// GUI vocabulary are dropped without error.
//
// Pointer position and modifiers come from host at call time, not from ev.
// Calling it promptly from the host's event callback keeps the two in step.
func HandleEvent(host HostInput, in *gui.RawInput, ev core.Event) {
	x, y := host.MousePosition()
	pos := gui.Vec2{X: float32(x), Y: float32(y)}
	mods := CurrentModifiers(host)

	switch e := ev.(type) {
	case core.EventMouseButton:
		in.Push(gui.EventPointerButton{
			Pos:       pos,
			Button:    TranslateButton(e.Button),
			Pressed:   e.Down,
			Modifiers: mods,
		})
	case core.EventKey:
		if k, ok := TranslateKey(e.Key); ok {
			in.Push(gui.EventKey{Key: k, Pressed: e.Down, Modifiers: mods})
		}
	case core.EventMouseMove:
		in.Push(gui.EventPointerMoved{Pos: gui.Vec2{X: float32(e.X), Y: float32(e.Y)}})
	case core.EventScroll:
		in.ScrollDelta = gui.Vec2{X: float32(e.Xoff), Y: float32(e.Yoff)}
	case core.EventText:
		in.Push(gui.EventText{Text: e.Text})
	case core.EventFocus:
		if !e.Focused {
			in.Push(gui.EventPointerGone{})
		}
	}
}
