package platform

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/hubastard/grovegui/engine/core"
)

var glfwKeys = map[glfw.Key]core.Key{
	glfw.KeyA: core.KeyA, glfw.KeyB: core.KeyB, glfw.KeyC: core.KeyC, glfw.KeyD: core.KeyD,
	glfw.KeyE: core.KeyE, glfw.KeyF: core.KeyF, glfw.KeyG: core.KeyG, glfw.KeyH: core.KeyH,
	glfw.KeyI: core.KeyI, glfw.KeyJ: core.KeyJ, glfw.KeyK: core.KeyK, glfw.KeyL: core.KeyL,
	glfw.KeyM: core.KeyM, glfw.KeyN: core.KeyN, glfw.KeyO: core.KeyO, glfw.KeyP: core.KeyP,
	glfw.KeyQ: core.KeyQ, glfw.KeyR: core.KeyR, glfw.KeyS: core.KeyS, glfw.KeyT: core.KeyT,
	glfw.KeyU: core.KeyU, glfw.KeyV: core.KeyV, glfw.KeyW: core.KeyW, glfw.KeyX: core.KeyX,
	glfw.KeyY: core.KeyY, glfw.KeyZ: core.KeyZ,

	glfw.Key0: core.Key0, glfw.Key1: core.Key1, glfw.Key2: core.Key2, glfw.Key3: core.Key3,
	glfw.Key4: core.Key4, glfw.Key5: core.Key5, glfw.Key6: core.Key6, glfw.Key7: core.Key7,
	glfw.Key8: core.Key8, glfw.Key9: core.Key9,

	glfw.KeyEscape:    core.KeyEscape,
	glfw.KeyTab:       core.KeyTab,
	glfw.KeyBackspace: core.KeyBackspace,
	glfw.KeyEnter:     core.KeyEnter,
	glfw.KeySpace:     core.KeySpace,
	glfw.KeyInsert:    core.KeyInsert,
	glfw.KeyDelete:    core.KeyDelete,
	glfw.KeyHome:      core.KeyHome,
	glfw.KeyEnd:       core.KeyEnd,
	glfw.KeyPageUp:    core.KeyPageUp,
	glfw.KeyPageDown:  core.KeyPageDown,
	glfw.KeyUp:        core.KeyUp,
	glfw.KeyDown:      core.KeyDown,
	glfw.KeyLeft:      core.KeyLeft,
	glfw.KeyRight:     core.KeyRight,

	glfw.KeyF1: core.KeyF1, glfw.KeyF2: core.KeyF2, glfw.KeyF3: core.KeyF3, glfw.KeyF4: core.KeyF4,
	glfw.KeyF5: core.KeyF5, glfw.KeyF6: core.KeyF6, glfw.KeyF7: core.KeyF7, glfw.KeyF8: core.KeyF8,
	glfw.KeyF9: core.KeyF9, glfw.KeyF10: core.KeyF10, glfw.KeyF11: core.KeyF11, glfw.KeyF12: core.KeyF12,

	glfw.KeyKP0: core.KeyKP0, glfw.KeyKP1: core.KeyKP1, glfw.KeyKP2: core.KeyKP2, glfw.KeyKP3: core.KeyKP3,
	glfw.KeyKP4: core.KeyKP4, glfw.KeyKP5: core.KeyKP5, glfw.KeyKP6: core.KeyKP6, glfw.KeyKP7: core.KeyKP7,
	glfw.KeyKP8: core.KeyKP8, glfw.KeyKP9: core.KeyKP9, glfw.KeyKPEnter: core.KeyKPEnter,

	glfw.KeyMinus:        core.KeyMinus,
	glfw.KeyEqual:        core.KeyEqual,
	glfw.KeyComma:        core.KeyComma,
	glfw.KeyPeriod:       core.KeyPeriod,
	glfw.KeySlash:        core.KeySlash,
	glfw.KeySemicolon:    core.KeySemicolon,
	glfw.KeyApostrophe:   core.KeyApostrophe,
	glfw.KeyLeftBracket:  core.KeyLeftBracket,
	glfw.KeyRightBracket: core.KeyRightBracket,
	glfw.KeyBackslash:    core.KeyBackslash,
	glfw.KeyGraveAccent:  core.KeyGraveAccent,

	glfw.KeyLeftShift:    core.KeyLeftShift,
	glfw.KeyRightShift:   core.KeyRightShift,
	glfw.KeyLeftControl:  core.KeyLeftControl,
	glfw.KeyRightControl: core.KeyRightControl,
	glfw.KeyLeftAlt:      core.KeyLeftAlt,
	glfw.KeyRightAlt:     core.KeyRightAlt,
	glfw.KeyLeftSuper:    core.KeyLeftSuper,
	glfw.KeyRightSuper:   core.KeyRightSuper,
}

func translateKey(k glfw.Key) core.Key {
	if ck, ok := glfwKeys[k]; ok {
		return ck
	}
	return core.KeyUnknown
}

func translateButton(b glfw.MouseButton) (core.MouseButton, bool) {
	switch b {
	case glfw.MouseButtonLeft:
		return core.MouseButtonLeft, true
	case glfw.MouseButtonRight:
		return core.MouseButtonRight, true
	case glfw.MouseButtonMiddle:
		return core.MouseButtonMiddle, true
	case glfw.MouseButton4:
		return core.MouseButton4, true
	case glfw.MouseButton5:
		return core.MouseButton5, true
	}
	return 0, false
}

func translateMods(m glfw.ModifierKey) core.Mod {
	var out core.Mod
	if m&glfw.ModShift != 0 {
		out |= core.ModShift
	}
	if m&glfw.ModControl != 0 {
		out |= core.ModCtrl
	}
	if m&glfw.ModAlt != 0 {
		out |= core.ModAlt
	}
	if m&glfw.ModSuper != 0 {
		out |= core.ModSuper
	}
	return out
}
