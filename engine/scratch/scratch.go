// Package scratch is a reusable per-frame text buffer for labels that are
// rebuilt every frame, such as stats readouts.
package scratch

import (
	"strconv"
	"unicode/utf8"
	"unsafe"
)

// Buffer is single-threaded. Reset it once per frame; strings returned by
// Line stay valid until then.
type Buffer struct {
	buf  []byte
	mark int
}

func New(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = 1024
	}
	return &Buffer{buf: make([]byte, 0, capacity)}
}

// Reset clears the buffer length without freeing memory.
func (b *Buffer) Reset() {
	b.buf = b.buf[:0]
	b.mark = 0
}

func (b *Buffer) Len() int { return len(b.buf) }
func (b *Buffer) Cap() int { return cap(b.buf) }

func (b *Buffer) S(s string) *Buffer {
	b.buf = append(b.buf, s...)
	return b
}

func (b *Buffer) R(r rune) *Buffer {
	b.buf = utf8.AppendRune(b.buf, r)
	return b
}

// I appends a base-10 integer.
func (b *Buffer) I(v int) *Buffer {
	b.buf = strconv.AppendInt(b.buf, int64(v), 10)
	return b
}

func (b *Buffer) U(v uint64) *Buffer {
	b.buf = strconv.AppendUint(b.buf, v, 10)
	return b
}

// F appends v with prec digits after the decimal point.
func (b *Buffer) F(v float64, prec int) *Buffer {
	b.buf = strconv.AppendFloat(b.buf, v, 'f', prec, 64)
	return b
}

func (b *Buffer) Bool(v bool) *Buffer {
	b.buf = strconv.AppendBool(b.buf, v)
	return b
}

// Line returns everything appended since the previous Line as a zero-copy
// string and starts a new line. Do not keep it past Reset.
func (b *Buffer) Line() string {
	s := b.buf[b.mark:]
	b.mark = len(b.buf)
	if len(s) == 0 {
		return ""
	}
	return unsafe.String(&s[0], len(s))
}
