package anchor

import "fmt"

// TreeNodeFlags configure TreeNodeEx and CollapsingHeader.
type TreeNodeFlags int

const (
	TreeNodeFlagsNone                 TreeNodeFlags = 0
	TreeNodeFlagsSelected             TreeNodeFlags = 1 << 0  // draw as selected
	TreeNodeFlagsFramed               TreeNodeFlags = 1 << 1  // full colored frame, as used by CollapsingHeader
	TreeNodeFlagsAllowItemOverlap     TreeNodeFlags = 1 << 2  // later items may overlap the node
	TreeNodeFlagsNoTreePushOnOpen     TreeNodeFlags = 1 << 3  // do not indent or push the ID when open
	TreeNodeFlagsNoAutoOpenOnLog      TreeNodeFlags = 1 << 4  // reserved
	TreeNodeFlagsDefaultOpen          TreeNodeFlags = 1 << 5  // open on first use
	TreeNodeFlagsOpenOnDoubleClick    TreeNodeFlags = 1 << 6  // toggle on double click
	TreeNodeFlagsOpenOnArrow          TreeNodeFlags = 1 << 7  // toggle only from the arrow
	TreeNodeFlagsLeaf                 TreeNodeFlags = 1 << 8  // no arrow, never opens
	TreeNodeFlagsBullet               TreeNodeFlags = 1 << 9  // bullet instead of arrow
	TreeNodeFlagsFramePadding         TreeNodeFlags = 1 << 10 // frame padding on an unframed node
	TreeNodeFlagsSpanAvailWidth       TreeNodeFlags = 1 << 11 // hit box extends to the right edge
	TreeNodeFlagsSpanFullWidth        TreeNodeFlags = 1 << 12 // hit box covers the full work rect
	TreeNodeFlagsNavLeftJumpsBackHere TreeNodeFlags = 1 << 13 // Left from a child returns here

	treeNodeFlagsClipLabelForTrailingButton TreeNodeFlags = 1 << 20

	TreeNodeFlagsCollapsingHeader = TreeNodeFlagsFramed | TreeNodeFlagsNoTreePushOnOpen | TreeNodeFlagsNoAutoOpenOnLog
)

// TreeNode draws a collapsible node and returns true when it is open. An
// open node pushes the tree; the caller must call TreePop.
func (ctx *Context) TreeNode(label string) bool {
	if ctx.CurrentWindow.SkipItems {
		return false
	}
	return ctx.treeNodeBehavior(ctx.CurrentWindow.GetID(label), TreeNodeFlagsNone, label)
}

// TreeNodeID is TreeNode with a separate identifier and a formatted label.
func (ctx *Context) TreeNodeID(strID string, format string, args ...any) bool {
	return ctx.TreeNodeEx(strID, TreeNodeFlagsNone, format, args...)
}

// TreeNodeEx is TreeNode with flags. The node is identified by strID and
// shows the formatted label.
func (ctx *Context) TreeNodeEx(strID string, flags TreeNodeFlags, format string, args ...any) bool {
	w := ctx.CurrentWindow
	if w.SkipItems {
		return false
	}
	label := format
	if len(args) > 0 {
		label = fmt.Sprintf(format, args...)
	}
	return ctx.treeNodeBehavior(w.GetID(strID), flags, label)
}

// SetNextItemOpen sets the open state of the next TreeNode or
// CollapsingHeader.
func (ctx *Context) SetNextItemOpen(open bool, cond Cond) {
	if ctx.CurrentWindow.SkipItems {
		return
	}
	if cond == 0 {
		cond = CondAlways
	}
	ctx.NextItemData.flags |= nextItemHasOpen
	ctx.NextItemData.OpenVal = open
	ctx.NextItemData.OpenCond = cond
}

// treeNodeIsOpen resolves the open state of node id from SetNextItemOpen
// and the window storage.
func (ctx *Context) treeNodeIsOpen(id ID, flags TreeNodeFlags) bool {
	if flags&TreeNodeFlagsLeaf != 0 {
		return true
	}
	storage := ctx.CurrentWindow.DC.StateStorage
	nd := &ctx.NextItemData
	if nd.flags&nextItemHasOpen == 0 {
		return GetState(storage, id, flags&TreeNodeFlagsDefaultOpen != 0)
	}
	if nd.OpenCond&CondAlways != 0 {
		SetState(storage, id, nd.OpenVal)
		return nd.OpenVal
	}
	// Once and FirstUseEver behave alike since open state is not saved.
	if _, ok := storage.Get(id); !ok {
		SetState(storage, id, nd.OpenVal)
		return nd.OpenVal
	}
	return GetState(storage, id, false)
}

func (ctx *Context) treeNodeBehavior(id ID, flags TreeNodeFlags, label string) bool {
	w := ctx.CurrentWindow
	if w.SkipItems {
		return false
	}
	st := &ctx.Style
	displayFrame := flags&TreeNodeFlagsFramed != 0
	padding := st.FramePadding
	if !displayFrame && flags&TreeNodeFlagsFramePadding == 0 {
		padding.Y = minf(w.DC.CurrLineTextBaseOffset, st.FramePadding.Y)
	}

	text := FindRenderedTextEnd(label)
	labelSize := ctx.CalcTextSize(text, false, 0)

	// Grow up to the current line height, up to a regular widget height.
	frameHeight := maxf(minf(w.DC.CurrLineSize.Y, ctx.FontSize+st.FramePadding.Y*2), labelSize.Y+padding.Y*2)
	frameBB := Rect{
		Min: Vec2{w.DC.CursorPos.X, w.DC.CursorPos.Y},
		Max: Vec2{w.WorkRect.Max.X, w.DC.CursorPos.Y + frameHeight},
	}
	if flags&TreeNodeFlagsSpanFullWidth != 0 {
		frameBB.Min.X = w.WorkRect.Min.X
	}
	if displayFrame {
		// Headers reach into the window padding.
		frameBB.Min.X -= floorf(w.WindowPadding.X*0.5 - 1)
		frameBB.Max.X += floorf(w.WindowPadding.X * 0.5)
	}

	textOffsetX := ctx.FontSize + padding.X*2
	if displayFrame {
		textOffsetX = ctx.FontSize + padding.X*3
	}
	textOffsetY := maxf(padding.Y, w.DC.CurrLineTextBaseOffset)
	textWidth := ctx.FontSize
	if labelSize.X > 0 {
		textWidth += labelSize.X + padding.X*2
	}
	textPos := Vec2{w.DC.CursorPos.X + textOffsetX, w.DC.CursorPos.Y + textOffsetY}
	ctx.ItemSize(Vec2{textWidth, frameHeight}, padding.Y)

	// Unframed nodes accept clicks a little past the label.
	interactBB := frameBB
	if !displayFrame && flags&(TreeNodeFlagsSpanAvailWidth|TreeNodeFlagsSpanFullWidth) == 0 {
		interactBB.Max.X = frameBB.Min.X + textWidth + st.ItemSpacing.X*2
	}

	isLeaf := flags&TreeNodeFlagsLeaf != 0
	isOpen := ctx.treeNodeIsOpen(id, flags)
	if isOpen && flags&TreeNodeFlagsNavLeftJumpsBackHere != 0 && flags&TreeNodeFlagsNoTreePushOnOpen == 0 && w.DC.TreeDepth < 32 {
		w.DC.TreeJumpToParentOnPopMask |= 1 << w.DC.TreeDepth
	}

	itemAdd := ctx.ItemAdd(interactBB, id, nil)
	w.DC.LastItemStatusFlags |= ItemStatusHasDisplayRect
	w.DC.LastItemDisplayRect = frameBB
	if !itemAdd {
		if isOpen && flags&TreeNodeFlagsNoTreePushOnOpen == 0 {
			ctx.treePushOverrideID(id)
		}
		return isOpen
	}

	var buttonFlags ButtonFlags
	if flags&TreeNodeFlagsAllowItemOverlap != 0 {
		buttonFlags |= ButtonFlagsAllowItemOverlap
	}

	// Clicks on the arrow accept key modifiers so multi-selection code can
	// browse the tree; clicks on the label do not.
	arrowX1 := textPos.X - textOffsetX - st.TouchExtraPadding.X
	arrowX2 := textPos.X - textOffsetX + ctx.FontSize + padding.X*2 + st.TouchExtraPadding.X
	overArrow := ctx.IO.MousePos.X >= arrowX1 && ctx.IO.MousePos.X < arrowX2
	if w != ctx.HoveredWindow || !overArrow {
		buttonFlags |= ButtonFlagsNoKeyModifiers
	}
	switch {
	case overArrow && flags&TreeNodeFlagsOpenOnArrow != 0:
		buttonFlags |= ButtonFlagsPressedOnClick
	case flags&TreeNodeFlagsOpenOnDoubleClick != 0:
		buttonFlags |= ButtonFlagsPressedOnClickRelease | ButtonFlagsPressedOnDoubleClick
	default:
		buttonFlags |= ButtonFlagsPressedOnClickRelease
	}

	selected := flags&TreeNodeFlagsSelected != 0
	pressed, hovered, held := ctx.ButtonBehavior(interactBB, id, buttonFlags)
	if !isLeaf {
		toggled := false
		if pressed {
			if flags&(TreeNodeFlagsOpenOnArrow|TreeNodeFlagsOpenOnDoubleClick) == 0 || ctx.NavActivateID == id {
				toggled = true
			}
			if flags&TreeNodeFlagsOpenOnArrow != 0 && overArrow && !ctx.NavDisableMouseHover {
				toggled = true
			}
			if flags&TreeNodeFlagsOpenOnDoubleClick != 0 && ctx.IO.MouseDoubleClicked[MouseButtonLeft] {
				toggled = true
			}
		}
		// Left closes an open node and Right opens a closed one instead of
		// moving away.
		if (isOpen && ctx.navMovedFrom(id, DirLeft)) || (!isOpen && ctx.navMovedFrom(id, DirRight)) {
			toggled = true
			ctx.navMoveRequestCancel()
		}
		if toggled {
			isOpen = !isOpen
			SetState(w.DC.StateStorage, id, isOpen)
			w.DC.LastItemStatusFlags |= ItemStatusToggledOpen
			ctx.Logger.Debug("tree node toggled", "id", id, "open", isOpen)
		}
	}
	if flags&TreeNodeFlagsAllowItemOverlap != 0 {
		ctx.SetItemAllowOverlap()
	}

	dl := w.DrawList
	textCol := ctx.GetColorU32(ColText, 1)
	headerCol := ColHeader
	switch {
	case held && hovered:
		headerCol = ColHeaderActive
	case hovered:
		headerCol = ColHeaderHovered
	}
	if displayFrame {
		ctx.RenderFrame(frameBB.Min, frameBB.Max, ctx.GetColorU32(headerCol, 1), true, st.FrameRounding)
		ctx.RenderNavHighlight(frameBB, id)
		switch {
		case flags&TreeNodeFlagsBullet != 0:
			RenderBullet(dl, Vec2{textPos.X - textOffsetX*0.60, textPos.Y + ctx.FontSize*0.5}, textCol, ctx.FontSize)
		case !isLeaf:
			RenderArrow(dl, Vec2{textPos.X - textOffsetX + padding.X, textPos.Y}, textCol, treeArrowDir(isOpen), ctx.FontSize, 1)
		default:
			// Leaves without a bullet keep their text left-aligned.
			textPos.X -= textOffsetX
		}
		if flags&treeNodeFlagsClipLabelForTrailingButton != 0 {
			frameBB.Max.X -= ctx.FontSize + st.FramePadding.X
		}
		ctx.RenderTextClipped(textPos, frameBB.Max, text, &labelSize, Vec2{}, nil)
	} else {
		if hovered || selected {
			ctx.RenderFrame(frameBB.Min, frameBB.Max, ctx.GetColorU32(headerCol, 1), false, 0)
			ctx.RenderNavHighlight(frameBB, id)
		}
		switch {
		case flags&TreeNodeFlagsBullet != 0:
			RenderBullet(dl, Vec2{textPos.X - textOffsetX*0.5, textPos.Y + ctx.FontSize*0.5}, textCol, ctx.FontSize)
		case !isLeaf:
			RenderArrow(dl, Vec2{textPos.X - textOffsetX + padding.X, textPos.Y + ctx.FontSize*0.15}, textCol, treeArrowDir(isOpen), ctx.FontSize, 0.70)
		}
		ctx.RenderText(textPos, text, false)
	}

	if isOpen && flags&TreeNodeFlagsNoTreePushOnOpen == 0 {
		ctx.treePushOverrideID(id)
	}
	return isOpen
}

func treeArrowDir(open bool) Dir {
	if open {
		return DirDown
	}
	return DirRight
}

// TreePush indents and pushes strID as if a TreeNode had opened. Pair it
// with TreePop.
func (ctx *Context) TreePush(strID string) {
	w := ctx.CurrentWindow
	ctx.Indent(0)
	w.DC.TreeDepth++
	if strID == "" {
		strID = "#TreePush"
	}
	ctx.PushID(strID)
}

func (ctx *Context) treePushOverrideID(id ID) {
	w := ctx.CurrentWindow
	ctx.Indent(0)
	w.DC.TreeDepth++
	w.IDStack = append(w.IDStack, id)
}

// TreePop closes an open TreeNode or TreePush.
func (ctx *Context) TreePop() {
	w := ctx.CurrentWindow
	if !ctx.assert(w.DC.TreeDepth > 0, "TreePop without an open tree node", "window", w.Name) {
		return
	}
	ctx.Unindent(0)
	w.DC.TreeDepth--

	// Left from a child goes back to the node that asked for it.
	var mask uint32
	if w.DC.TreeDepth < 32 {
		mask = 1 << w.DC.TreeDepth
	}
	if w.DC.TreeJumpToParentOnPopMask&mask != 0 {
		n := &ctx.nav
		if n.moveDir == DirLeft && ctx.NavWindow == w && n.moveFromID != 0 && ctx.navSubmittedSince(n.moveFromID) {
			ctx.navMoveRequestCancel()
			ctx.navSetID(w.IDStack[len(w.IDStack)-1])
		}
	}
	w.DC.TreeJumpToParentOnPopMask &= mask - 1
	ctx.PopID()
}

// navSubmittedSince reports whether id was submitted in the current
// tree level, which holds every item since the innermost open node.
func (ctx *Context) navSubmittedSince(id ID) bool {
	w := ctx.CurrentWindow
	parent := w.IDStack[len(w.IDStack)-1]
	items := ctx.nav.items
	for i := len(items) - 1; i >= 0; i-- {
		switch items[i].ID {
		case id:
			return items[i].Window == w
		case parent:
			return false
		}
	}
	return false
}

// GetTreeNodeToLabelSpacing is the horizontal distance from a tree node's
// left edge to its label.
func (ctx *Context) GetTreeNodeToLabelSpacing() float32 {
	return ctx.FontSize + ctx.Style.FramePadding.X*2
}

// CollapsingHeader draws a framed header that does not indent and returns
// true when open. A non-nil open adds a close button; clicking it sets
// *open to false, and a false *open hides the header.
func (ctx *Context) CollapsingHeader(label string, open *bool, flags TreeNodeFlags) bool {
	w := ctx.CurrentWindow
	if w.SkipItems {
		return false
	}
	if open != nil && !*open {
		return false
	}
	id := w.GetID(label)
	flags |= TreeNodeFlagsCollapsingHeader
	if open != nil {
		flags |= TreeNodeFlagsAllowItemOverlap | treeNodeFlagsClipLabelForTrailingButton
	}
	isOpen := ctx.treeNodeBehavior(id, flags, label)
	if open != nil {
		// The close button hashes from the header so it stays stable.
		lastItem := w.DC.LastItemID
		lastStatus := w.DC.LastItemStatusFlags
		lastRect := w.DC.LastItemRect
		buttonSize := ctx.FontSize
		buttonPos := Vec2{
			maxf(w.DC.LastItemRect.Min.X, w.DC.LastItemRect.Max.X-ctx.Style.FramePadding.X*2-buttonSize),
			w.DC.LastItemRect.Min.Y,
		}
		if ctx.CloseButton(HashStr("#CLOSE", id), buttonPos) {
			*open = false
		}
		w.DC.LastItemID, w.DC.LastItemStatusFlags, w.DC.LastItemRect = lastItem, lastStatus, lastRect
	}
	return isOpen
}
