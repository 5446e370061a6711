package gui

import "testing"

func TestTakeEmptiesBatchAndKeepsScreen(t *testing.T) {
	in := RawInput{ScreenSize: Vec2{800, 600}, PixelsPerPoint: 2, Time: 1.5}
	in.Push(EventText{Text: "a"})
	in.Push(EventPointerGone{})
	in.ScrollDelta = Vec2{0, 3}

	got := in.Take()
	if len(got.Events) != 2 || got.ScrollDelta != (Vec2{0, 3}) {
		t.Fatalf("taken batch = %+v", got)
	}
	if len(in.Events) != 0 || in.ScrollDelta != (Vec2{}) {
		t.Fatalf("pending not cleared: %+v", in)
	}
	if in.ScreenSize != (Vec2{800, 600}) || in.PixelsPerPoint != 2 || in.Time != 1.5 {
		t.Fatalf("geometry lost: %+v", in)
	}

	// The taken slice must not alias later pushes.
	in.Push(EventText{Text: "b"})
	if got.Events[0].(EventText).Text != "a" {
		t.Fatal("taken events were overwritten")
	}
}

func TestKeyString(t *testing.T) {
	tests := []struct {
		k    Key
		want string
	}{
		{KeyArrowUp, "ArrowUp"},
		{KeyPageDown, "PageDown"},
		{KeyNum0, "Num0"},
		{KeyNum7, "Num7"},
		{KeyA, "A"},
		{KeyZ, "Z"},
		{KeyCount, "Key(51)"},
		{-1, "Key(-1)"},
	}
	for _, tt := range tests {
		if got := tt.k.String(); got != tt.want {
			t.Errorf("Key(%d).String() = %q, want %q", int(tt.k), got, tt.want)
		}
	}
}

func TestTextureID(t *testing.T) {
	if FontTexture.User || FontTexture.String() != "font" {
		t.Fatalf("FontTexture = %+v", FontTexture)
	}
	u := UserTexture(42)
	if !u.User || u.ID != 42 || u.String() != "user:42" {
		t.Fatalf("UserTexture(42) = %+v %q", u, u)
	}
	if u == FontTexture || UserTexture(0) == FontTexture {
		t.Fatal("user textures must never equal the font texture")
	}
}

func TestFontImageValidate(t *testing.T) {
	tests := []struct {
		name string
		img  FontImage
		ok   bool
	}{
		{"ok", FontImage{Width: 2, Height: 2, Pixels: make([]byte, 4)}, true},
		{"empty", FontImage{}, false},
		{"short", FontImage{Width: 2, Height: 2, Pixels: make([]byte, 3)}, false},
	}
	for _, tt := range tests {
		if err := tt.img.Validate(); (err == nil) != tt.ok {
			t.Errorf("%s: Validate() = %v", tt.name, err)
		}
	}
}

func TestModifiersIsNone(t *testing.T) {
	if !(Modifiers{}).IsNone() {
		t.Fatal("zero modifiers should be none")
	}
	if (Modifiers{Shift: true}).IsNone() {
		t.Fatal("shift is a modifier")
	}
}
