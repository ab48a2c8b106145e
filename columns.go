package anchor

// ColumnsFlags tune BeginColumns.
type ColumnsFlags int

const (
	ColumnsFlagsNone                   ColumnsFlags = 0
	ColumnsFlagsNoBorder               ColumnsFlags = 1 << 0
	ColumnsFlagsNoResize               ColumnsFlags = 1 << 1
	ColumnsFlagsNoPreserveWidths       ColumnsFlags = 1 << 2
	ColumnsFlagsNoForceWithinWindow    ColumnsFlags = 1 << 3
	ColumnsFlagsGrowParentContentsSize ColumnsFlags = 1 << 4
)

// columnsHitHalfWidth is the half width of a column border's drag handle.
const columnsHitHalfWidth = 4

type columnData struct {
	OffsetNorm             float32 // 0 at the left edge, 1 at the right edge
	OffsetNormBeforeResize float32
	ClipRect               Rect
}

// Columns is the persistent state of one column set in a window.
type Columns struct {
	ID             ID
	Flags          ColumnsFlags
	IsFirstFrame   bool
	IsBeingResized bool
	Current        int
	Count          int
	OffMinX        float32 // window-relative bounds
	OffMaxX        float32
	LineMinY       float32
	LineMaxY       float32

	hostCursorPosY     float32
	hostCursorMaxPosX  float32
	hostInitialClip    Rect
	hostBackupWorkRect Rect
	columns            []columnData
}

func (c *Columns) offsetFromNorm(norm float32) float32 { return norm * (c.OffMaxX - c.OffMinX) }
func (c *Columns) normFromOffset(off float32) float32  { return off / (c.OffMaxX - c.OffMinX) }

// getColumnsID keeps column sets out of the item id space; unnamed sets
// are keyed by their column count.
func (ctx *Context) getColumnsID(strID string, count int) ID {
	n := 0x11223347
	if strID == "" {
		n += count
		strID = "columns"
	}
	return HashStr(strID, ctx.GetIDInt(n))
}

func (w *Window) findOrCreateColumns(id ID) *Columns {
	for _, c := range w.ColumnsStorage {
		if c.ID == id {
			return c
		}
	}
	c := &Columns{ID: id}
	w.ColumnsStorage = append(w.ColumnsStorage, c)
	return c
}

// Columns switches the window to count columns, ending any previous set.
// Columns(1, "", false) returns to a single column.
func (ctx *Context) Columns(count int, id string, border bool) {
	w := ctx.CurrentWindow
	if !ctx.assert(count >= 1, "Columns: count must be >= 1", "count", count) {
		return
	}
	flags := ColumnsFlagsNone
	if !border {
		flags = ColumnsFlagsNoBorder
	}
	cols := w.DC.CurrentColumns
	if cols != nil && cols.Count == count && cols.Flags == flags {
		return
	}
	if cols != nil {
		ctx.EndColumns()
	}
	if count != 1 {
		ctx.BeginColumns(id, count, flags)
	}
}

// BeginColumns starts a column set; items flow into column 0 until
// NextColumn.
func (ctx *Context) BeginColumns(strID string, count int, flags ColumnsFlags) {
	w := ctx.CurrentWindow
	if !ctx.assert(count >= 1 && w.DC.CurrentColumns == nil, "BeginColumns: nested or empty columns", "count", count) {
		return
	}
	cols := w.findOrCreateColumns(ctx.getColumnsID(strID, count))
	cols.Current = 0
	cols.Count = count
	cols.Flags = flags
	w.DC.CurrentColumns = cols

	cols.hostCursorPosY = w.DC.CursorPos.Y
	cols.hostCursorMaxPosX = w.DC.CursorMaxPos.X
	cols.hostInitialClip = w.ClipRect
	cols.hostBackupWorkRect = w.WorkRect

	pad := ctx.Style.ItemSpacing.X
	halfClip := floorf(maxf(w.WindowPadding.X*0.5, w.WindowBorderSize))
	max1 := w.WorkRect.Max.X + pad - maxf(pad-w.WindowPadding.X, 0)
	max2 := w.WorkRect.Max.X + halfClip
	cols.OffMinX = w.DC.Indent - pad + maxf(pad-w.WindowPadding.X, 0)
	cols.OffMaxX = maxf(minf(max1, max2)-w.Pos.X, cols.OffMinX+1)
	cols.LineMinY = w.DC.CursorPos.Y
	cols.LineMaxY = cols.LineMinY

	if len(cols.columns) != 0 && len(cols.columns) != count+1 {
		cols.columns = cols.columns[:0]
	}
	cols.IsFirstFrame = len(cols.columns) == 0
	if cols.IsFirstFrame {
		for n := 0; n <= count; n++ {
			cols.columns = append(cols.columns, columnData{OffsetNorm: float32(n) / float32(count)})
		}
	}
	for n := 0; n < count; n++ {
		x1 := floorf(w.Pos.X + ctx.GetColumnOffset(n) + 0.5)
		x2 := floorf(w.Pos.X + ctx.GetColumnOffset(n+1) - 1 + 0.5)
		cols.columns[n].ClipRect = R(x1, -floatMax, x2, floatMax).ClipWithFull(w.ClipRect)
	}
	if count > 1 {
		c := cols.columns[0].ClipRect
		ctx.PushClipRect(c.Min, c.Max, false)
	}

	off0 := ctx.GetColumnOffset(cols.Current)
	off1 := ctx.GetColumnOffset(cols.Current + 1)
	ctx.PushItemWidth((off1 - off0) * 0.65)
	w.DC.ColumnsOffset = maxf(pad-w.WindowPadding.X, 0)
	w.DC.CursorPos.X = floorf(w.Pos.X + w.DC.Indent + w.DC.ColumnsOffset)
	w.WorkRect.Max.X = w.Pos.X + off1 - pad
}

// NextColumn moves to the next column, wrapping to a new row after the last.
func (ctx *Context) NextColumn() {
	w := ctx.CurrentWindow
	cols := w.DC.CurrentColumns
	if w.SkipItems || cols == nil {
		return
	}
	if cols.Count == 1 {
		w.DC.CursorPos.X = floorf(w.Pos.X + w.DC.Indent + w.DC.ColumnsOffset)
		return
	}
	cols.Current++
	if cols.Current == cols.Count {
		cols.Current = 0
	}
	ctx.PopItemWidth()

	c := cols.columns[cols.Current].ClipRect
	ctx.PopClipRect()
	ctx.PushClipRect(c.Min, c.Max, false)

	pad := ctx.Style.ItemSpacing.X
	cols.LineMaxY = maxf(cols.LineMaxY, w.DC.CursorPos.Y)
	if cols.Current > 0 {
		// Columns past the first ignore the indent.
		w.DC.ColumnsOffset = ctx.GetColumnOffset(cols.Current) - w.DC.Indent + pad
	} else {
		w.DC.ColumnsOffset = maxf(pad-w.WindowPadding.X, 0)
		cols.LineMinY = cols.LineMaxY
	}
	w.DC.CursorPos.X = floorf(w.Pos.X + w.DC.Indent + w.DC.ColumnsOffset)
	w.DC.CursorPos.Y = cols.LineMinY
	w.DC.CurrLineSize = Vec2{}
	w.DC.CurrLineTextBaseOffset = 0

	off0 := ctx.GetColumnOffset(cols.Current)
	off1 := ctx.GetColumnOffset(cols.Current + 1)
	ctx.PushItemWidth((off1 - off0) * 0.65)
	w.WorkRect.Max.X = w.Pos.X + off1 - pad
}

// EndColumns closes the column set, drawing borders and running their
// resize handles.
func (ctx *Context) EndColumns() {
	w := ctx.CurrentWindow
	cols := w.DC.CurrentColumns
	if !ctx.assert(cols != nil, "EndColumns without BeginColumns") {
		return
	}
	ctx.PopItemWidth()
	if cols.Count > 1 {
		ctx.PopClipRect()
	}

	cols.LineMaxY = maxf(cols.LineMaxY, w.DC.CursorPos.Y)
	w.DC.CursorPos.Y = cols.LineMaxY
	if cols.Flags&ColumnsFlagsGrowParentContentsSize == 0 {
		w.DC.CursorMaxPos.X = cols.hostCursorMaxPosX
	}

	resizing := false
	if cols.Flags&ColumnsFlagsNoBorder == 0 && !w.SkipItems {
		y1 := maxf(cols.hostCursorPosY, w.ClipRect.Min.Y)
		y2 := minf(w.DC.CursorPos.Y, w.ClipRect.Max.Y)
		dragging := -1
		for n := 1; n < cols.Count; n++ {
			x := w.Pos.X + ctx.GetColumnOffset(n)
			id := cols.ID + ID(n)
			hit := R(x-columnsHitHalfWidth, y1, x+columnsHitHalfWidth, y2)
			ctx.KeepAliveID(id)
			if ctx.IsClippedEx(hit, id) {
				continue
			}
			hovered, held := false, false
			if cols.Flags&ColumnsFlagsNoResize == 0 {
				_, hovered, held = ctx.ButtonBehavior(hit, id, ButtonFlagsNone)
				if hovered || held {
					ctx.MouseCursor = MouseCursorResizeEW
				}
				if held {
					dragging = n
				}
			}
			col := ColSeparator
			if held {
				col = ColSeparatorActive
			} else if hovered {
				col = ColSeparatorHovered
			}
			xi := floorf(x)
			w.DrawList.AddLine(Vec2{xi, y1 + 1}, Vec2{xi, y2}, ctx.GetColorU32(col, 1), 1)
		}
		// Apply the drag after drawing so borders match this frame's items.
		if dragging != -1 {
			if !cols.IsBeingResized {
				for i := range cols.columns {
					cols.columns[i].OffsetNormBeforeResize = cols.columns[i].OffsetNorm
				}
			}
			cols.IsBeingResized = true
			resizing = true
			ctx.SetColumnOffset(dragging, ctx.draggedColumnOffset(cols, dragging))
		}
	}
	cols.IsBeingResized = resizing

	w.WorkRect = cols.hostBackupWorkRect
	w.DC.CurrentColumns = nil
	w.DC.ColumnsOffset = 0
	w.DC.CursorPos.X = floorf(w.Pos.X + w.DC.Indent + w.DC.ColumnsOffset)
}

func (ctx *Context) draggedColumnOffset(cols *Columns, index int) float32 {
	w := ctx.CurrentWindow
	x := ctx.IO.MousePos.X - ctx.ActiveIDClickOffset.X + columnsHitHalfWidth - w.Pos.X
	x = maxf(x, ctx.GetColumnOffset(index-1)+ctx.Style.ColumnsMinSpacing)
	if cols.Flags&ColumnsFlagsNoPreserveWidths != 0 {
		x = minf(x, ctx.GetColumnOffset(index+1)-ctx.Style.ColumnsMinSpacing)
	}
	return x
}

// pushColumnsBackground lets an item draw across every column.
func (ctx *Context) pushColumnsBackground() {
	w := ctx.CurrentWindow
	cols := w.DC.CurrentColumns
	if cols == nil || cols.Count == 1 {
		return
	}
	ctx.PushClipRect(cols.hostInitialClip.Min, cols.hostInitialClip.Max, false)
}

func (ctx *Context) popColumnsBackground() {
	w := ctx.CurrentWindow
	cols := w.DC.CurrentColumns
	if cols == nil || cols.Count == 1 {
		return
	}
	ctx.PopClipRect()
}

// GetColumnIndex returns the current column, 0 outside columns.
func (ctx *Context) GetColumnIndex() int {
	if c := ctx.CurrentWindow.DC.CurrentColumns; c != nil {
		return c.Current
	}
	return 0
}

// GetColumnsCount returns the number of columns, 1 outside columns.
func (ctx *Context) GetColumnsCount() int {
	if c := ctx.CurrentWindow.DC.CurrentColumns; c != nil {
		return c.Count
	}
	return 1
}

// GetColumnOffset returns the window-relative left edge of column index,
// or of the current column when index < 0.
func (ctx *Context) GetColumnOffset(index int) float32 {
	cols := ctx.CurrentWindow.DC.CurrentColumns
	if cols == nil {
		return 0
	}
	if index < 0 {
		index = cols.Current
	}
	return lerpf(cols.OffMinX, cols.OffMaxX, cols.columns[index].OffsetNorm)
}

func (ctx *Context) columnWidthEx(cols *Columns, index int, beforeResize bool) float32 {
	if index < 0 {
		index = cols.Current
	}
	if beforeResize {
		return cols.offsetFromNorm(cols.columns[index+1].OffsetNormBeforeResize - cols.columns[index].OffsetNormBeforeResize)
	}
	return cols.offsetFromNorm(cols.columns[index+1].OffsetNorm - cols.columns[index].OffsetNorm)
}

// GetColumnWidth returns the width of column index (current when < 0).
func (ctx *Context) GetColumnWidth(index int) float32 {
	cols := ctx.CurrentWindow.DC.CurrentColumns
	if cols == nil {
		return ctx.GetContentRegionAvail().X
	}
	return ctx.columnWidthEx(cols, index, false)
}

// SetColumnOffset moves the left edge of column index. Unless
// NoPreserveWidths, the next column keeps its width.
func (ctx *Context) SetColumnOffset(index int, offset float32) {
	cols := ctx.CurrentWindow.DC.CurrentColumns
	if !ctx.assert(cols != nil, "SetColumnOffset outside columns") {
		return
	}
	if index < 0 {
		index = cols.Current
	}
	if index >= len(cols.columns) {
		return
	}
	preserve := cols.Flags&ColumnsFlagsNoPreserveWidths == 0 && index < cols.Count-1
	var width float32
	if preserve {
		width = ctx.columnWidthEx(cols, index, cols.IsBeingResized)
	}
	if cols.Flags&ColumnsFlagsNoForceWithinWindow == 0 {
		offset = minf(offset, cols.OffMaxX-ctx.Style.ColumnsMinSpacing*float32(cols.Count-index))
	}
	cols.columns[index].OffsetNorm = cols.normFromOffset(offset - cols.OffMinX)
	if preserve {
		ctx.SetColumnOffset(index+1, offset+maxf(ctx.Style.ColumnsMinSpacing, width))
	}
}

// SetColumnWidth resizes column index by moving its right edge.
func (ctx *Context) SetColumnWidth(index int, width float32) {
	cols := ctx.CurrentWindow.DC.CurrentColumns
	if !ctx.assert(cols != nil, "SetColumnWidth outside columns") {
		return
	}
	if index < 0 {
		index = cols.Current
	}
	ctx.SetColumnOffset(index+1, ctx.GetColumnOffset(index)+width)
}
