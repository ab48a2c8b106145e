package anchor

import "math"

// ListClipper virtualizes a list of evenly spaced items so only the visible
// range is submitted. The cursor is moved past the skipped items, so the
// window content size and scrollbar still cover the whole list.
//
// Usage:
//
//	clipper := anchor.NewListClipper(ctx, len(items), -1)
//	for clipper.Step() {
//	    for i := clipper.DisplayStart; i < clipper.DisplayEnd; i++ {
//	        ctx.Selectable(items[i], false)
//	    }
//	}
//
// With itemsHeight <= 0 the first item is always submitted and measured.
type ListClipper struct {
	DisplayStart int // first item to submit (inclusive)
	DisplayEnd   int // last item to submit (exclusive)
	ItemsCount   int
	ItemsHeight  float32

	ctx       *Context
	stepNo    int
	startPosY float32
}

// NewListClipper starts clipping itemsCount items at the current cursor.
func NewListClipper(ctx *Context, itemsCount int, itemsHeight float32) *ListClipper {
	c := &ListClipper{ctx: ctx}
	c.Begin(itemsCount, itemsHeight)
	return c
}

// Begin restarts the clipper. Pass math.MaxInt for an unknown count.
func (c *ListClipper) Begin(itemsCount int, itemsHeight float32) {
	c.startPosY = c.ctx.CurrentWindow.DC.CursorPos.Y
	c.ItemsHeight = itemsHeight
	c.ItemsCount = itemsCount
	c.stepNo = 0
	c.DisplayStart = -1
	c.DisplayEnd = 0
}

// End moves the cursor past the last item. Step calls it when it returns
// false; call it yourself when leaving the loop early.
func (c *ListClipper) End() {
	if c.ItemsCount < 0 {
		return
	}
	if c.ItemsCount < math.MaxInt && c.DisplayStart >= 0 {
		c.seekCursor(c.startPosY + float32(c.ItemsCount)*c.ItemsHeight)
	}
	c.ItemsCount = -1
	c.stepNo = 3
}

// Step advances to the next range to submit and reports whether there is
// one.
func (c *ListClipper) Step() bool {
	w := c.ctx.CurrentWindow
	if c.ItemsCount == 0 || w.SkipItems {
		c.ItemsCount = -1
		return false
	}

	if c.stepNo == 0 {
		c.startPosY = w.DC.CursorPos.Y
		if c.ItemsHeight <= 0 {
			// Submit one item to measure it.
			c.DisplayStart, c.DisplayEnd = 0, 1
			c.stepNo = 1
			return true
		}
		c.DisplayStart = c.DisplayEnd
		c.stepNo = 2
	}

	if c.stepNo == 1 {
		c.ItemsHeight = w.DC.CursorPos.Y - c.startPosY
		if !c.ctx.assert(c.ItemsHeight > 0, "ListClipper: first item has no height") {
			c.ItemsCount = -1
			return false
		}
		c.stepNo = 2
	}

	if c.stepNo == 2 {
		submitted := c.DisplayEnd
		clip := w.ClipRect
		start, end := CalcListClipping(c.ItemsCount-submitted, c.ItemsHeight, clip.Min.Y-w.DC.CursorPos.Y, clip.Max.Y-w.DC.CursorPos.Y)
		c.DisplayStart = start + submitted
		c.DisplayEnd = end + submitted
		if c.DisplayStart > submitted {
			c.seekCursor(c.startPosY + float32(c.DisplayStart)*c.ItemsHeight)
		}
		c.stepNo = 3
		return true
	}

	if c.stepNo == 3 {
		if c.ItemsCount < math.MaxInt {
			c.seekCursor(c.startPosY + float32(c.ItemsCount)*c.ItemsHeight)
		}
		c.ItemsCount = -1
		return false
	}
	return false
}

// seekCursor moves the cursor to posY as if a line of ItemsHeight had just
// been submitted.
func (c *ListClipper) seekCursor(posY float32) {
	w := c.ctx.CurrentWindow
	dc := &w.DC
	dc.CursorPos.Y = posY
	dc.CursorMaxPos.Y = maxf(dc.CursorMaxPos.Y, posY)
	dc.CursorPosPrevLine.Y = posY - c.ItemsHeight
	dc.PrevLineSize.Y = c.ItemsHeight - c.ctx.Style.ItemSpacing.Y
	if cols := dc.CurrentColumns; cols != nil {
		cols.LineMinY = posY
	}
}

// ContentHeight returns the height of the whole list.
func (c *ListClipper) ContentHeight() float32 {
	return float32(max(c.ItemsCount, 0)) * c.ItemsHeight
}

// CalcListClipping returns the range of items of height itemsHeight that
// intersect [clipMinY, clipMaxY), both relative to the first item. One
// extra item is kept past the end for partially visible rows.
func CalcListClipping(itemsCount int, itemsHeight, clipMinY, clipMaxY float32) (start, end int) {
	if itemsCount <= 0 || itemsHeight <= 0 {
		return 0, 0
	}
	start = int(clipMinY / itemsHeight)
	end = int(clipMaxY / itemsHeight)
	start = clampi(start, 0, itemsCount)
	end = clampi(end+1, start, itemsCount)
	return start, end
}

// ScrollToItem returns the scroll offset that brings item idx into a view
// of visibleHeight, or currentScroll when it is already visible.
func ScrollToItem(idx int, itemsHeight, currentScroll, visibleHeight float32) float32 {
	top := float32(idx) * itemsHeight
	bottom := top + itemsHeight
	switch {
	case top < currentScroll:
		return top
	case bottom > currentScroll+visibleHeight:
		return bottom - visibleHeight
	}
	return currentScroll
}
