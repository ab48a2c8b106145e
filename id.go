package anchor

import (
	"encoding/binary"
	"hash/crc32"
	"reflect"
	"strings"
)

// ID uniquely identifies a widget for state persistence.
// IDs are stable across frames for the same label and ID stack.
type ID uint32

// HashStr hashes a label seeded by a parent ID.
// A "###" sequence resets the hash to the seed so only the text from "###"
// onward contributes; this lets the visible part of a label change freely.
func HashStr(label string, seed ID) ID {
	s := ^uint32(seed)
	crc := s
	for i := 0; i < len(label); i++ {
		c := label[i]
		if c == '#' && i+2 < len(label) && label[i+1] == '#' && label[i+2] == '#' {
			crc = s
		}
		crc = (crc >> 8) ^ crc32.IEEETable[byte(crc)^c]
	}
	return ID(^crc)
}

// HashData hashes raw bytes seeded by a parent ID.
func HashData(data []byte, seed ID) ID {
	crc := ^uint32(seed)
	for _, c := range data {
		crc = (crc >> 8) ^ crc32.IEEETable[byte(crc)^c]
	}
	return ID(^crc)
}

// FindRenderedTextEnd returns the part of a label that is displayed,
// stopping at the first "##".
func FindRenderedTextEnd(label string) string {
	if i := strings.Index(label, "##"); i >= 0 {
		return label[:i]
	}
	return label
}

// idSeed returns the top of the current window's ID stack.
func (ctx *Context) idSeed() ID {
	w := ctx.CurrentWindow
	if w == nil || len(w.IDStack) == 0 {
		return 0
	}
	return w.IDStack[len(w.IDStack)-1]
}

// GetID generates a stable ID from a string label.
// The ID depends only on the label and the current ID stack.
func (ctx *Context) GetID(label string) ID {
	return HashStr(label, ctx.idSeed())
}

// GetIDInt generates an ID from an integer.
// Useful for items in arrays/slices.
func (ctx *Context) GetIDInt(n int) ID {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], uint32(int32(n)))
	return HashData(buf[:], ctx.idSeed())
}

// GetIDPtr generates an ID from the identity of a pointer.
func (ctx *Context) GetIDPtr(ptr any) ID {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(pointerOf(ptr)))
	return HashData(buf[:], ctx.idSeed())
}

func pointerOf(ptr any) uintptr {
	v := reflect.ValueOf(ptr)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return v.Pointer()
	}
	return 0
}

// PushID pushes a label-derived ID onto the stack for nested widgets.
// All GetID calls will be relative to this parent ID.
func (ctx *Context) PushID(label string) {
	ctx.pushOverrideID(ctx.GetID(label))
}

// PushIDInt pushes an integer-based ID onto the stack.
func (ctx *Context) PushIDInt(n int) {
	ctx.pushOverrideID(ctx.GetIDInt(n))
}

// PushIDPtr pushes a pointer-based ID onto the stack.
func (ctx *Context) PushIDPtr(ptr any) {
	ctx.pushOverrideID(ctx.GetIDPtr(ptr))
}

func (ctx *Context) pushOverrideID(id ID) {
	w := ctx.CurrentWindow
	if w == nil {
		ctx.assert(false, "PushID called outside of a window")
		return
	}
	w.IDStack = append(w.IDStack, id)
}

// PopID removes the last ID from the stack.
func (ctx *Context) PopID() {
	w := ctx.CurrentWindow
	if w == nil || len(w.IDStack) <= 1 {
		ctx.assert(false, "PopID: too many pops")
		return
	}
	w.IDStack = w.IDStack[:len(w.IDStack)-1]
}

// CurrentID returns the current parent ID (top of stack).
func (ctx *Context) CurrentID() ID {
	return ctx.idSeed()
}
