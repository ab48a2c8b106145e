package anchor

import (
	"fmt"
	"strings"
)

// longTextThreshold is the byte length above which unwrapped text is
// clipped line by line instead of measured as a whole.
const longTextThreshold = 2000

// TextEx draws text at the cursor as a single item. Newlines start new
// lines; the current TextWrapPos wraps words.
func (ctx *Context) TextEx(text string) {
	w := ctx.CurrentWindow
	if w.SkipItems {
		return
	}
	pos := Vec2{w.DC.CursorPos.X, w.DC.CursorPos.Y + w.DC.CurrLineTextBaseOffset}
	wrapPosX := w.DC.TextWrapPos
	wrapEnabled := wrapPosX >= 0

	if len(text) > longTextThreshold && !wrapEnabled {
		ctx.textLongUnwrapped(pos, text)
		return
	}

	wrapWidth := float32(0)
	if wrapEnabled {
		wrapWidth = ctx.CalcWrapWidthForPos(w.DC.CursorPos, wrapPosX)
	}
	size := ctx.CalcTextSize(text, false, wrapWidth)
	bb := Rect{pos, pos.Add(size)}
	ctx.ItemSize(size, 0)
	if !ctx.ItemAdd(bb, 0, nil) {
		return
	}
	ctx.RenderTextWrapped(bb.Min, text, wrapWidth)
}

// textLongUnwrapped lays out long text without measuring the lines that fall
// outside the clip rectangle.
func (ctx *Context) textLongUnwrapped(pos Vec2, text string) {
	w := ctx.CurrentWindow
	lineHeight := ctx.GetTextLineHeight()
	col := ctx.GetColorU32(ColText, 1)
	linePos := pos
	width := float32(0)
	for line := text; ; {
		cur, rest, more := strings.Cut(line, "\n")
		visible := linePos.Y+lineHeight > w.ClipRect.Min.Y && linePos.Y < w.ClipRect.Max.Y
		if visible {
			width = maxf(width, ctx.CalcTextSize(cur, false, 0).X)
			w.DrawList.AddText(ctx.Font, ctx.FontSize, linePos, col, cur, 0, nil)
		}
		linePos.Y += lineHeight
		if !more {
			break
		}
		line = rest
	}
	size := Vec2{width, linePos.Y - pos.Y}
	ctx.ItemSize(size, 0)
	ctx.ItemAdd(Rect{pos, pos.Add(size)}, 0, nil)
}

// TextUnformatted draws text verbatim, without format processing.
func (ctx *Context) TextUnformatted(text string) {
	ctx.TextEx(text)
}

// Text draws formatted text. With no args, format is drawn verbatim so
// user text containing '%' is safe.
func (ctx *Context) Text(format string, args ...any) {
	ctx.TextEx(sprintf(format, args...))
}

// TextColored draws formatted text in col.
func (ctx *Context) TextColored(col Vec4, format string, args ...any) {
	ctx.PushStyleColor(ColText, col)
	ctx.Text(format, args...)
	ctx.PopStyleColor(1)
}

// TextDisabled draws formatted text in the disabled color.
func (ctx *Context) TextDisabled(format string, args ...any) {
	ctx.TextColored(ctx.Style.Colors[ColTextDisabled], format, args...)
}

// TextWrapped draws formatted text wrapped at the window edge unless a
// wrap position is already pushed.
func (ctx *Context) TextWrapped(format string, args ...any) {
	needBackup := ctx.CurrentWindow.DC.TextWrapPos < 0
	if needBackup {
		ctx.PushTextWrapPos(0)
	}
	ctx.Text(format, args...)
	if needBackup {
		ctx.PopTextWrapPos()
	}
}

// LabelText draws a value and a label side by side, aligned with framed
// widgets.
func (ctx *Context) LabelText(label, format string, args ...any) {
	w := ctx.CurrentWindow
	if w.SkipItems {
		return
	}
	st := &ctx.Style
	width := ctx.CalcItemWidth()
	value := sprintf(format, args...)
	labelSize := ctx.CalcTextSize(label, true, 0)
	valueBB := Rect{w.DC.CursorPos, w.DC.CursorPos.Add(Vec2{width, labelSize.Y + st.FramePadding.Y*2})}
	labelW := float32(0)
	if labelSize.X > 0 {
		labelW = st.ItemInnerSpacing.X + labelSize.X
	}
	totalBB := Rect{w.DC.CursorPos, w.DC.CursorPos.Add(Vec2{width + labelW, labelSize.Y + st.FramePadding.Y*2})}
	ctx.ItemSizeRect(totalBB, st.FramePadding.Y)
	if !ctx.ItemAdd(totalBB, 0, nil) {
		return
	}
	ctx.RenderTextClipped(valueBB.Min.Add(st.FramePadding), valueBB.Max, value, nil, Vec2{0, 0.5}, nil)
	if labelSize.X > 0 {
		ctx.RenderText(Vec2{valueBB.Max.X + st.ItemInnerSpacing.X, valueBB.Min.Y + st.FramePadding.Y}, label, true)
	}
}

// BulletText draws a bullet followed by formatted text.
func (ctx *Context) BulletText(format string, args ...any) {
	w := ctx.CurrentWindow
	if w.SkipItems {
		return
	}
	st := &ctx.Style
	text := sprintf(format, args...)
	labelSize := ctx.CalcTextSize(text, false, 0)
	textW := float32(0)
	if text != "" {
		textW = labelSize.X + st.FramePadding.X*2
	}
	size := Vec2{ctx.GetTreeNodeToLabelSpacing() + textW, labelSize.Y}
	pos := w.DC.CursorPos
	pos.Y += w.DC.CurrLineTextBaseOffset
	bb := Rect{pos, pos.Add(size)}
	ctx.ItemSize(size, 0)
	if !ctx.ItemAdd(bb, 0, nil) {
		return
	}
	col := ctx.GetColorU32(ColText, 1)
	RenderBullet(w.DrawList, bb.Min.Add(Vec2{st.FramePadding.X + ctx.FontSize*0.5, ctx.FontSize * 0.5}), col, ctx.FontSize)
	ctx.RenderText(bb.Min.Add(Vec2{ctx.GetTreeNodeToLabelSpacing(), 0}), text, false)
}

// sprintf formats only when there are arguments.
func sprintf(format string, args ...any) string {
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}
