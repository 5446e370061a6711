package gui

import "strconv"

// Key is the logical key vocabulary a GUI frame understands. It is a strict
// subset of what hosts report; hosts drop keys without an entry here.
type Key int

const (
	KeyArrowDown Key = iota
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp

	KeyEscape
	KeyTab
	KeyBackspace
	KeyEnter
	KeySpace

	KeyInsert
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	KeyNum0
	KeyNum1
	KeyNum2
	KeyNum3
	KeyNum4
	KeyNum5
	KeyNum6
	KeyNum7
	KeyNum8
	KeyNum9

	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	// KeyCount is the number of logical keys; valid keys are [0, KeyCount).
	KeyCount
)

var keyNames = [...]string{
	KeyArrowDown:  "ArrowDown",
	KeyArrowLeft:  "ArrowLeft",
	KeyArrowRight: "ArrowRight",
	KeyArrowUp:    "ArrowUp",
	KeyEscape:     "Escape",
	KeyTab:        "Tab",
	KeyBackspace:  "Backspace",
	KeyEnter:      "Enter",
	KeySpace:      "Space",
	KeyInsert:     "Insert",
	KeyDelete:     "Delete",
	KeyHome:       "Home",
	KeyEnd:        "End",
	KeyPageUp:     "PageUp",
	KeyPageDown:   "PageDown",
}

func (k Key) String() string {
	switch {
	case k >= KeyNum0 && k <= KeyNum9:
		return "Num" + strconv.Itoa(int(k-KeyNum0))
	case k >= KeyA && k <= KeyZ:
		return string(rune('A' + (k - KeyA)))
	case k >= 0 && int(k) < len(keyNames):
		return keyNames[k]
	}
	return "Key(" + strconv.Itoa(int(k)) + ")"
}
