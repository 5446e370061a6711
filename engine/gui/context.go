package gui

// Output is the per-frame metadata a GUI frame reports besides its shapes.
type Output struct {
	WantPointerInput  bool // the pointer is over GUI content or dragging it
	WantKeyboardInput bool // a widget has keyboard focus
	WantTextInput     bool // a text field is active
}

// Shapes is a frame's shape list. It is opaque outside the Context that
// produced it and only valid until that Context's next BeginFrame.
type Shapes any

// Context is the port an immediate-mode GUI library implements. Calls follow
// BeginFrame, content building, EndFrame, Tessellate on a single thread.
type Context interface {
	BeginFrame(in RawInput)
	EndFrame() (Output, Shapes)
	Tessellate(shapes Shapes) []ClippedMesh
	FontImage() FontImage
}
