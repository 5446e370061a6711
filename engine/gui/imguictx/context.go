// Package imguictx implements gui.Context on top of Dear ImGui.
//
// ImGui's legacy IO keeps "down" arrays instead of an event queue, so
// BeginFrame replays the pending batch into that state before NewFrame. The
// gui.Key values double as KeysDown indices.
package imguictx

import (
	"math"
	"unsafe"

	"github.com/hubastard/grovegui/engine/gui"
	"github.com/inkyblackness/imgui-go/v2"
)

// fontTextureID tags the font atlas. User texture ids count up from 1 and
// never reach it.
const fontTextureID = ^imgui.TextureID(0)

// Pseudo KeysDown slots carrying the latched modifier state.
const (
	slotCtrl  = 509
	slotShift = 510
	slotAlt   = 511
)

var modifierSlots = [3]int{slotCtrl, slotShift, slotAlt}

const fallbackDelta = 1.0 / 60.0

var keyMap = []struct {
	imgui int
	key   gui.Key
}{
	{imgui.KeyTab, gui.KeyTab},
	{imgui.KeyLeftArrow, gui.KeyArrowLeft},
	{imgui.KeyRightArrow, gui.KeyArrowRight},
	{imgui.KeyUpArrow, gui.KeyArrowUp},
	{imgui.KeyDownArrow, gui.KeyArrowDown},
	{imgui.KeyPageUp, gui.KeyPageUp},
	{imgui.KeyPageDown, gui.KeyPageDown},
	{imgui.KeyHome, gui.KeyHome},
	{imgui.KeyEnd, gui.KeyEnd},
	{imgui.KeyInsert, gui.KeyInsert},
	{imgui.KeyDelete, gui.KeyDelete},
	{imgui.KeyBackspace, gui.KeyBackspace},
	{imgui.KeySpace, gui.KeySpace},
	{imgui.KeyEnter, gui.KeyEnter},
	{imgui.KeyEscape, gui.KeyEscape},
	{imgui.KeyA, gui.KeyA},
	{imgui.KeyC, gui.KeyC},
	{imgui.KeyV, gui.KeyV},
	{imgui.KeyX, gui.KeyX},
	{imgui.KeyY, gui.KeyY},
	{imgui.KeyZ, gui.KeyZ},
}

// Context owns one ImGui context. Only one may be current at a time.
type Context struct {
	ctx  *imgui.Context
	io   imgui.IO
	font gui.FontImage

	buttons  [3]latch
	keys     [gui.KeyCount]latch
	mods     [len(modifierSlots)]latch
	lastTime float64
	started  bool
}

// New creates the ImGui context, registers the key map and builds the font
// atlas.
func New() *Context {
	c := &Context{ctx: imgui.CreateContext(nil)}
	c.io = imgui.CurrentIO()
	for _, m := range keyMap {
		c.io.KeyMap(m.imgui, int(m.key))
	}

	fonts := c.io.Fonts()
	img := fonts.TextureDataAlpha8()
	fonts.SetTextureID(fontTextureID)
	c.font = gui.FontImage{
		Width:  img.Width,
		Height: img.Height,
		Pixels: unsafe.Slice((*byte)(img.Pixels), img.Width*img.Height),
	}
	return c
}

// Destroy releases the ImGui context. The Context must not be used after.
func (c *Context) Destroy() {
	if c.ctx != nil {
		c.ctx.Destroy()
		c.ctx = nil
	}
}

// TextureRef converts a gui texture id into the value imgui.Image expects.
func TextureRef(id gui.TextureID) imgui.TextureID {
	if !id.User {
		return fontTextureID
	}
	return imgui.TextureID(id.ID)
}

func textureID(id imgui.TextureID) gui.TextureID {
	if id == fontTextureID {
		return gui.FontTexture
	}
	return gui.UserTexture(uint64(id))
}

// ioSink is the part of imgui.IO that BeginFrame writes.
type ioSink interface {
	SetDisplaySize(imgui.Vec2)
	SetDeltaTime(float32)
	SetMousePosition(imgui.Vec2)
	SetMouseButtonDown(index int, down bool)
	AddMouseWheelDelta(horizontal, vertical float32)
	AddInputCharacters(chars string)
	KeyPress(key int)
	KeyRelease(key int)
	KeyCtrl(left, right int)
	KeyShift(left, right int)
	KeyAlt(left, right int)
}

func (c *Context) BeginFrame(in gui.RawInput) {
	c.replay(c.io, in)
	imgui.NewFrame()
}

// replay writes one input batch into io. Buttons, keys and modifiers go
// through latches so a press and release inside one batch still shows as
// down for this frame and up for the next.
func (c *Context) replay(io ioSink, in gui.RawInput) {
	io.SetDisplaySize(imgui.Vec2{X: in.ScreenSize.X, Y: in.ScreenSize.Y})
	io.SetDeltaTime(float32(frameDelta(c.lastTime, in.Time, c.started)))
	c.lastTime, c.started = in.Time, true

	for _, ev := range in.Events {
		switch e := ev.(type) {
		case gui.EventPointerMoved:
			io.SetMousePosition(imgui.Vec2{X: e.Pos.X, Y: e.Pos.Y})
		case gui.EventPointerButton:
			io.SetMousePosition(imgui.Vec2{X: e.Pos.X, Y: e.Pos.Y})
			c.latchModifiers(e.Modifiers)
			if i := int(e.Button); i < len(c.buttons) {
				c.buttons[i].set(e.Pressed)
			}
		case gui.EventKey:
			c.latchModifiers(e.Modifiers)
			if e.Key >= 0 && e.Key < gui.KeyCount {
				c.keys[e.Key].set(e.Pressed)
			}
		case gui.EventText:
			io.AddInputCharacters(e.Text)
		case gui.EventPointerGone:
			io.SetMousePosition(imgui.Vec2{X: -math.MaxFloat32, Y: -math.MaxFloat32})
			// Modifier releases never arrive as events of their own, so
			// focus loss is the one point where they are known to be up.
			c.latchModifiers(gui.Modifiers{})
		}
	}
	if in.ScrollDelta != (gui.Vec2{}) {
		io.AddMouseWheelDelta(in.ScrollDelta.X, in.ScrollDelta.Y)
	}
	for i := range c.buttons {
		io.SetMouseButtonDown(i, c.buttons[i].take())
	}
	for k := range c.keys {
		setKey(io, k, c.keys[k].take())
	}
	for i, slot := range modifierSlots {
		setKey(io, slot, c.mods[i].take())
	}
	io.KeyCtrl(slotCtrl, slotCtrl)
	io.KeyShift(slotShift, slotShift)
	io.KeyAlt(slotAlt, slotAlt)
}

// latchModifiers records the modifiers an event was sampled with. They stay
// down until a later event reports them up.
func (c *Context) latchModifiers(m gui.Modifiers) {
	c.mods[0].set(m.Ctrl || m.Command)
	c.mods[1].set(m.Shift)
	c.mods[2].set(m.Alt)
}

func setKey(io ioSink, key int, down bool) {
	if down {
		io.KeyPress(key)
	} else {
		io.KeyRelease(key)
	}
}

func (c *Context) EndFrame() (gui.Output, gui.Shapes) {
	imgui.Render()
	out := gui.Output{
		WantPointerInput:  c.io.WantCaptureMouse(),
		WantKeyboardInput: c.io.WantCaptureKeyboard(),
		WantTextInput:     c.io.WantTextInput(),
	}
	return out, imgui.RenderedDrawData()
}

// Tessellate returns one mesh per ImGui draw command. ImGui has already
// triangulated everything during Render; this only decodes its buffers.
// It panics if ImGui hands back buffers that do not match its own layout.
func (c *Context) Tessellate(shapes gui.Shapes) []gui.ClippedMesh {
	data, ok := shapes.(imgui.DrawData)
	if !ok || !data.Valid() {
		return nil
	}
	size, posOffset, uvOffset, colOffset := imgui.VertexBufferLayout()
	layout := vertexLayout{size: size, posOffset: posOffset, uvOffset: uvOffset, colOffset: colOffset}
	indexSize := imgui.IndexBufferLayout()

	var meshes []gui.ClippedMesh
	for _, list := range data.CommandLists() {
		vbPtr, vbSize := list.VertexBuffer()
		ibPtr, ibSize := list.IndexBuffer()
		verts, err := decodeVertices(unsafe.Slice((*byte)(vbPtr), vbSize), layout)
		if err != nil {
			panic(err)
		}
		indices, err := decodeIndices(unsafe.Slice((*byte)(ibPtr), ibSize), indexSize)
		if err != nil {
			panic(err)
		}

		cmds := list.Commands()
		counts := make([]int, len(cmds))
		clips := make([]gui.Rect, len(cmds))
		textures := make([]gui.TextureID, len(cmds))
		for i, cmd := range cmds {
			r := cmd.ClipRect()
			counts[i] = cmd.ElementCount()
			clips[i] = gui.Rect{Min: gui.Vec2{X: r.X, Y: r.Y}, Max: gui.Vec2{X: r.Z, Y: r.W}}
			textures[i] = textureID(cmd.TextureID())
		}
		split, err := splitCommands(verts, indices, counts, clips, textures)
		if err != nil {
			panic(err)
		}
		meshes = append(meshes, split...)
	}
	return meshes
}

func (c *Context) FontImage() gui.FontImage { return c.font }

// frameDelta turns absolute frame times into the strictly positive delta
// ImGui requires.
func frameDelta(last, now float64, started bool) float64 {
	if !started || now <= last {
		return fallbackDelta
	}
	return now - last
}

// latch keeps a press visible for one frame even when the release arrives
// before the frame starts.
type latch struct {
	down    bool
	pressed bool
}

func (b *latch) set(down bool) {
	if down {
		b.pressed = true
	}
	b.down = down
}

func (b *latch) take() bool {
	v := b.down || b.pressed
	b.pressed = false
	return v
}
