// Package gui is the GUI-library side of the bridge: the input events a GUI
// frame consumes, the meshes it produces and the Context port a concrete
// immediate-mode library implements.
package gui

type Vec2 struct{ X, Y float32 }

type Rect struct{ Min, Max Vec2 }

func (r Rect) Width() float32  { return r.Max.X - r.Min.X }
func (r Rect) Height() float32 { return r.Max.Y - r.Min.Y }

// Modifiers is the held modifier set attached to button and key events.
// Command mirrors Ctrl; MacCmd is never set by this bridge.
type Modifiers struct {
	Alt     bool
	Ctrl    bool
	Shift   bool
	MacCmd  bool
	Command bool
}

func (m Modifiers) IsNone() bool { return m == Modifiers{} }

type PointerButton int

const (
	PointerPrimary PointerButton = iota
	PointerSecondary
	PointerMiddle
)

// Event is one translated input event, in the order the host delivered it.
type Event interface{ isEvent() }

type EventPointerButton struct {
	Pos       Vec2
	Button    PointerButton
	Pressed   bool
	Modifiers Modifiers
}

func (EventPointerButton) isEvent() {}

type EventKey struct {
	Key       Key
	Pressed   bool
	Modifiers Modifiers
}

func (EventKey) isEvent() {}

type EventPointerMoved struct{ Pos Vec2 }

func (EventPointerMoved) isEvent() {}

type EventText struct{ Text string }

func (EventText) isEvent() {}

// EventPointerGone tells the GUI the pointer is no longer tracked.
type EventPointerGone struct{}

func (EventPointerGone) isEvent() {}

// RawInput is the pending input batch for the next frame.
type RawInput struct {
	ScreenSize     Vec2    // in points
	PixelsPerPoint float32 // framebuffer pixels per point, 0 means 1
	Time           float64 // seconds, monotonic
	ScrollDelta    Vec2    // set, not accumulated, by wheel events
	Events         []Event
}

func (in *RawInput) Push(ev Event) { in.Events = append(in.Events, ev) }

// Take hands the batch to the caller and leaves in empty. Screen geometry and
// Time carry over to the next frame.
func (in *RawInput) Take() RawInput {
	out := *in
	in.Events = nil
	in.ScrollDelta = Vec2{}
	return out
}
