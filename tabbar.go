package anchor

import (
	"cmp"
	"slices"
)

// TabBarFlags configure BeginTabBar.
type TabBarFlags int

const (
	TabBarFlagsNone                         TabBarFlags = 0
	TabBarFlagsReorderable                  TabBarFlags = 1 << 0 // tabs can be dragged to a new position
	TabBarFlagsAutoSelectNewTabs            TabBarFlags = 1 << 1 // a newly submitted tab gets selected
	TabBarFlagsTabListPopupButton           TabBarFlags = 1 << 2 // leading button opening a list of all tabs
	TabBarFlagsNoCloseWithMiddleMouseButton TabBarFlags = 1 << 3
	TabBarFlagsNoTabListScrollingButtons    TabBarFlags = 1 << 4 // no scroll arrows when tabs overflow
	TabBarFlagsNoTooltip                    TabBarFlags = 1 << 5 // no tooltip for clipped labels
	TabBarFlagsFittingPolicyResizeDown      TabBarFlags = 1 << 6 // shrink tabs that do not fit
	TabBarFlagsFittingPolicyScroll          TabBarFlags = 1 << 7 // scroll when tabs do not fit

	tabBarFlagsFittingPolicyMask    = TabBarFlagsFittingPolicyResizeDown | TabBarFlagsFittingPolicyScroll
	tabBarFlagsFittingPolicyDefault = TabBarFlagsFittingPolicyResizeDown

	tabBarFlagsIsFocused TabBarFlags = 1 << 21
)

// TabItemFlags configure BeginTabItem and TabItemButton.
type TabItemFlags int

const (
	TabItemFlagsNone                         TabItemFlags = 0
	TabItemFlagsUnsavedDocument              TabItemFlags = 1 << 0 // draw a marker; closing only selects the tab
	TabItemFlagsSetSelected                  TabItemFlags = 1 << 1 // select the tab this frame
	TabItemFlagsNoCloseWithMiddleMouseButton TabItemFlags = 1 << 2
	TabItemFlagsNoPushID                     TabItemFlags = 1 << 3 // BeginTabItem does not push the tab ID
	TabItemFlagsNoTooltip                    TabItemFlags = 1 << 4
	TabItemFlagsNoReorder                    TabItemFlags = 1 << 5 // the tab keeps its position
	TabItemFlagsLeading                      TabItemFlags = 1 << 6 // place in the left section
	TabItemFlagsTrailing                     TabItemFlags = 1 << 7 // place in the right section

	tabItemFlagsSectionMask                = TabItemFlagsLeading | TabItemFlagsTrailing
	tabItemFlagsNoCloseButton TabItemFlags = 1 << 20 // no open pointer was passed
	tabItemFlagsButton        TabItemFlags = 1 << 21 // behaves as a button
)

// tabMaxWidthFontRatio caps a tab's ideal width in font heights.
const tabMaxWidthFontRatio = 20

const tabUnsavedMarker = "*"

// TabItem is the persistent state of one tab.
type TabItem struct {
	ID                ID
	Flags             TabItemFlags
	Name              string
	LastFrameVisible  int
	LastFrameSelected int
	Offset            float32 // from the start of the bar
	Width             float32 // displayed width
	ContentWidth      float32 // ideal width from the label
	BeginOrder        int
	IndexDuringLayout int
	WantClose         bool
}

func newTabItem(id ID) TabItem {
	return TabItem{ID: id, LastFrameVisible: -1, LastFrameSelected: -1, BeginOrder: -1, IndexDuringLayout: -1}
}

// section returns 0 for leading, 1 for central and 2 for trailing tabs.
func (t *TabItem) section() int {
	switch {
	case t.Flags&TabItemFlagsLeading != 0:
		return 0
	case t.Flags&TabItemFlagsTrailing != 0:
		return 2
	}
	return 1
}

// TabBar is the persistent state of a tab bar, kept in the context's tab
// bar pool across frames.
type TabBar struct {
	Tabs              []TabItem
	Flags             TabBarFlags
	ID                ID
	SelectedTabID     ID
	NextSelectedTabID ID
	VisibleTabID      ID
	CurrFrameVisible  int
	PrevFrameVisible  int
	BarRect           Rect

	CurrTabsContentsHeight float32
	PrevTabsContentsHeight float32
	WidthAllTabs           float32
	WidthAllTabsIdeal      float32

	ScrollingAnim                   float32
	ScrollingTarget                 float32
	ScrollingTargetDistToVisibility float32
	ScrollingSpeed                  float32
	ScrollingRectMinX               float32
	ScrollingRectMaxX               float32

	ReorderRequestTabID  ID
	ReorderRequestOffset int

	BeginCount             int
	WantLayout             bool
	VisibleTabWasSubmitted bool
	TabsAddedNew           bool
	TabsActiveCount        int
	LastTabItemIdx         int
	ItemSpacingY           float32
	FramePadding           Vec2
	BackupCursorPos        Vec2
}

func (tb *TabBar) init() {
	tb.CurrFrameVisible, tb.PrevFrameVisible = -1, -1
	tb.LastTabItemIdx = -1
}

// FindTab returns the tab with id, or nil.
func (tb *TabBar) FindTab(id ID) *TabItem {
	if id == 0 {
		return nil
	}
	for i := range tb.Tabs {
		if tb.Tabs[i].ID == id {
			return &tb.Tabs[i]
		}
	}
	return nil
}

// tabOrder returns the index of tab in Tabs.
func (tb *TabBar) tabOrder(tab *TabItem) int {
	for i := range tb.Tabs {
		if &tb.Tabs[i] == tab {
			return i
		}
	}
	return -1
}

// RemoveTab drops the tab with id and forgets it as selected or visible.
func (tb *TabBar) RemoveTab(id ID) {
	if i := slices.IndexFunc(tb.Tabs, func(t TabItem) bool { return t.ID == id }); i >= 0 {
		tb.Tabs = slices.Delete(tb.Tabs, i, i+1)
	}
	tb.forget(id)
}

func (tb *TabBar) forget(id ID) {
	if tb.VisibleTabID == id {
		tb.VisibleTabID = 0
	}
	if tb.SelectedTabID == id {
		tb.SelectedTabID = 0
	}
	if tb.NextSelectedTabID == id {
		tb.NextSelectedTabID = 0
	}
}

// closeTab handles a click on a tab's close button. Tabs flagged as unsaved
// are only selected so the caller can confirm first.
func (tb *TabBar) closeTab(tab *TabItem) {
	if tab.Flags&TabItemFlagsUnsavedDocument == 0 {
		tab.WantClose = true
		if tb.VisibleTabID == tab.ID {
			tab.LastFrameVisible = -1
			tb.SelectedTabID, tb.NextSelectedTabID = 0, 0
		}
		return
	}
	if tb.VisibleTabID != tab.ID {
		tb.NextSelectedTabID = tab.ID
	}
}

func (tb *TabBar) scrollClamp(scrolling float32) float32 {
	return maxf(minf(scrolling, tb.WidthAllTabs-tb.BarRect.Width()), 0)
}

// QueueReorder asks the next layout to move tab by offset positions.
func (tb *TabBar) QueueReorder(tab *TabItem, offset int) {
	tb.ReorderRequestTabID = tab.ID
	tb.ReorderRequestOffset = offset
}

// QueueReorderFromMousePos queues a move of src to the slot under mouseX,
// crossing only tabs of the same section that allow reordering.
func (tb *TabBar) QueueReorderFromMousePos(src *TabItem, mouseX, innerSpacing float32) {
	if tb.Flags&TabBarFlagsReorderable == 0 {
		return
	}
	barOffset := tb.BarRect.Min.X
	if src.Flags&tabItemFlagsSectionMask == 0 {
		barOffset -= tb.ScrollingTarget
	}

	dir := 1
	if barOffset+src.Offset > mouseX {
		dir = -1
	}
	srcIdx := tb.tabOrder(src)
	dstIdx := srcIdx
	for i := srcIdx; i >= 0 && i < len(tb.Tabs); i += dir {
		dst := &tb.Tabs[i]
		if dst.Flags&TabItemFlagsNoReorder != 0 {
			break
		}
		if dst.Flags&tabItemFlagsSectionMask != src.Flags&tabItemFlagsSectionMask {
			break
		}
		dstIdx = i

		// The spacing after a tab counts as that tab so a cursor between
		// two tabs stops the scan.
		x1 := barOffset + dst.Offset - innerSpacing
		x2 := barOffset + dst.Offset + dst.Width + innerSpacing
		if dir < 0 && mouseX > x1 || dir > 0 && mouseX < x2 {
			break
		}
	}
	if dstIdx != srcIdx {
		tb.QueueReorder(src, dstIdx-srcIdx)
	}
}

// ProcessReorder applies the queued reorder. Moves across sections or
// involving a NoReorder tab are rejected.
func (tb *TabBar) ProcessReorder() bool {
	tab1 := tb.FindTab(tb.ReorderRequestTabID)
	if tab1 == nil || tab1.Flags&TabItemFlagsNoReorder != 0 {
		return false
	}
	from := tb.tabOrder(tab1)
	to := from + tb.ReorderRequestOffset
	if to < 0 || to >= len(tb.Tabs) {
		return false
	}
	tab2 := &tb.Tabs[to]
	if tab2.Flags&TabItemFlagsNoReorder != 0 {
		return false
	}
	if tab1.Flags&tabItemFlagsSectionMask != tab2.Flags&tabItemFlagsSectionMask {
		return false
	}

	moved := *tab1
	if to > from {
		copy(tb.Tabs[from:to], tb.Tabs[from+1:to+1])
	} else {
		copy(tb.Tabs[to+1:from+1], tb.Tabs[to:from])
	}
	tb.Tabs[to] = moved
	return true
}

// ============================================================================
// Shrinking
// ============================================================================

// ShrinkWidthItem is one entry handed to ShrinkWidths.
type ShrinkWidthItem struct {
	Index int
	Width float32
}

// ShrinkWidths removes excess from the widths of items, widest first:
// the widest group is lowered to the next width until the excess is
// absorbed, no item going below 1. Widths are then floored and the
// fractional remainder handed out one pixel at a time to the items with the
// lowest Index. Items come back ordered by Index.
func ShrinkWidths(items []ShrinkWidthItem, excess float32) {
	if len(items) == 0 {
		return
	}
	if len(items) == 1 {
		if items[0].Width >= 0 {
			items[0].Width = maxf(items[0].Width-excess, 1)
		}
		return
	}
	slices.SortStableFunc(items, func(a, b ShrinkWidthItem) int {
		if c := cmp.Compare(b.Width, a.Width); c != 0 {
			return c
		}
		return cmp.Compare(b.Index, a.Index)
	})

	count := len(items)
	sameWidth := 1
	for excess > 0 && sameWidth < count {
		for sameWidth < count && items[0].Width <= items[sameWidth].Width {
			sameWidth++
		}
		maxRemove := items[0].Width - 1
		if sameWidth < count && items[sameWidth].Width >= 0 {
			maxRemove = items[0].Width - items[sameWidth].Width
		}
		if maxRemove <= 0 {
			break
		}
		remove := minf(excess/float32(sameWidth), maxRemove)
		for n := range sameWidth {
			items[n].Width -= remove
		}
		excess -= remove * float32(sameWidth)
	}

	// Round so the last tab ends exactly on the bar edge.
	var remainder float32
	for n := range items {
		rounded := floorf(items[n].Width)
		remainder += items[n].Width - rounded
		items[n].Width = rounded
	}
	slices.SortFunc(items, func(a, b ShrinkWidthItem) int { return cmp.Compare(a.Index, b.Index) })
	for n := range min(int(remainder+0.01), count) {
		items[n].Width++
	}
}

// ============================================================================
// Tab bar
// ============================================================================

type tabBarSection struct {
	tabCount int
	width    float32
	spacing  float32 // after the section
}

// BeginTabBar starts a tab bar across the available width. When it returns
// true the caller submits tabs and must call EndTabBar.
func (ctx *Context) BeginTabBar(strID string, flags TabBarFlags) bool {
	w := ctx.CurrentWindow
	if w.SkipItems {
		return false
	}
	id := w.GetID(strID)
	tb, created := ctx.tabBars.GetOrAdd(id, ctx.FrameCount)
	if created {
		tb.init()
	}
	bb := R(w.DC.CursorPos.X, w.DC.CursorPos.Y, w.WorkRect.Max.X, w.DC.CursorPos.Y+ctx.FontSize+ctx.Style.FramePadding.Y*2)
	tb.ID = id
	return ctx.beginTabBarEx(tb, bb, flags|tabBarFlagsIsFocused)
}

func (ctx *Context) beginTabBarEx(tb *TabBar, bb Rect, flags TabBarFlags) bool {
	w := ctx.CurrentWindow
	ctx.pushOverrideID(tb.ID)
	ctx.currentTabBarStack = append(ctx.currentTabBarStack, tb)
	ctx.CurrentTabBar = tb

	// Several Begin/End pairs in one frame append to the same bar.
	tb.BackupCursorPos = w.DC.CursorPos
	if tb.CurrFrameVisible == ctx.FrameCount {
		w.DC.CursorPos = Vec2{tb.BarRect.Min.X, tb.BarRect.Max.Y + tb.ItemSpacingY}
		tb.BeginCount++
		return true
	}

	// Restore submission order when reordering gets disabled.
	toggled := flags&TabBarFlagsReorderable != tb.Flags&TabBarFlagsReorderable
	if toggled || tb.TabsAddedNew && flags&TabBarFlagsReorderable == 0 {
		slices.SortStableFunc(tb.Tabs, func(a, b TabItem) int { return cmp.Compare(a.BeginOrder, b.BeginOrder) })
	}
	tb.TabsAddedNew = false

	if flags&tabBarFlagsFittingPolicyMask == 0 {
		flags |= tabBarFlagsFittingPolicyDefault
	}
	tb.Flags = flags
	tb.BarRect = bb
	tb.WantLayout = true
	tb.PrevFrameVisible = tb.CurrFrameVisible
	tb.CurrFrameVisible = ctx.FrameCount
	tb.PrevTabsContentsHeight = tb.CurrTabsContentsHeight
	tb.CurrTabsContentsHeight = 0
	tb.ItemSpacingY = ctx.Style.ItemSpacing.Y
	tb.FramePadding = ctx.Style.FramePadding
	tb.TabsActiveCount = 0
	tb.BeginCount = 1

	// Items submitted before the first tab overlap the bar.
	w.DC.CursorPos = Vec2{tb.BarRect.Min.X, tb.BarRect.Max.Y + tb.ItemSpacingY}

	col := ctx.GetColorU32(ColTabUnfocusedActive, 1)
	if flags&tabBarFlagsIsFocused != 0 {
		col = ctx.GetColorU32(ColTabActive, 1)
	}
	y := tb.BarRect.Max.Y - 1
	sepMinX := tb.BarRect.Min.X - floorf(w.WindowPadding.X*0.5)
	sepMaxX := tb.BarRect.Max.X + floorf(w.WindowPadding.X*0.5)
	w.DrawList.AddLine(Vec2{sepMinX, y}, Vec2{sepMaxX, y}, col, 1)
	return true
}

// EndTabBar closes BeginTabBar.
func (ctx *Context) EndTabBar() {
	w := ctx.CurrentWindow
	if w.SkipItems {
		return
	}
	tb := ctx.CurrentTabBar
	if !ctx.assert(tb != nil, "EndTabBar: no tab bar to end") {
		return
	}
	// No tab was submitted.
	if tb.WantLayout {
		ctx.tabBarLayout(tb)
	}

	// Keep the last content height when the visible tab was not submitted
	// so removing a tab does not make the layout jump.
	appearing := tb.PrevFrameVisible+1 < ctx.FrameCount
	if tb.VisibleTabWasSubmitted || tb.VisibleTabID == 0 || appearing {
		tb.CurrTabsContentsHeight = maxf(w.DC.CursorPos.Y-tb.BarRect.Max.Y, tb.CurrTabsContentsHeight)
		w.DC.CursorPos.Y = tb.BarRect.Max.Y + tb.CurrTabsContentsHeight
	} else {
		w.DC.CursorPos.Y = tb.BarRect.Max.Y + tb.PrevTabsContentsHeight
	}
	if tb.BeginCount > 1 {
		w.DC.CursorPos = tb.BackupCursorPos
	}

	ctx.PopID()
	ctx.currentTabBarStack = ctx.currentTabBarStack[:len(ctx.currentTabBarStack)-1]
	ctx.CurrentTabBar = nil
	if n := len(ctx.currentTabBarStack); n > 0 {
		ctx.CurrentTabBar = ctx.currentTabBarStack[n-1]
	}
}

// tabBarLayout runs once per frame before the first tab is drawn: it drops
// stale tabs, applies selection and reorder requests, sizes the sections
// and advances the scroll animation.
func (ctx *Context) tabBarLayout(tb *TabBar) {
	st := &ctx.Style
	tb.WantLayout = false

	// Compact the list, dropping stale tabs and noting section changes.
	var sections [3]tabBarSection
	needSort := false
	dst := 0
	for src := range tb.Tabs {
		tab := &tb.Tabs[src]
		if tab.LastFrameVisible < tb.PrevFrameVisible || tab.WantClose {
			tb.forget(tab.ID)
			continue
		}
		if dst != src {
			tb.Tabs[dst] = tb.Tabs[src]
		}
		tab = &tb.Tabs[dst]
		tab.IndexDuringLayout = dst

		cur := tab.section()
		if dst > 0 {
			prev := tb.Tabs[dst-1].section()
			if cur == 0 && prev != 0 || prev == 2 && cur != 2 {
				needSort = true
			}
		}
		sections[cur].tabCount++
		dst++
	}
	if removed := len(tb.Tabs) - dst; removed > 0 {
		ctx.Logger.Debug("tab bar collected tabs", "id", tb.ID, "removed", removed)
		tb.Tabs = tb.Tabs[:dst]
	}
	if needSort {
		slices.SortStableFunc(tb.Tabs, func(a, b TabItem) int {
			if d := cmp.Compare(a.section(), b.section()); d != 0 {
				return d
			}
			return cmp.Compare(a.IndexDuringLayout, b.IndexDuringLayout)
		})
	}

	if sections[0].tabCount > 0 && sections[1].tabCount+sections[2].tabCount > 0 {
		sections[0].spacing = st.ItemInnerSpacing.X
	}
	if sections[1].tabCount > 0 && sections[2].tabCount > 0 {
		sections[1].spacing = st.ItemInnerSpacing.X
	}

	var scrollTrackID ID
	if tb.NextSelectedTabID != 0 {
		tb.SelectedTabID = tb.NextSelectedTabID
		tb.NextSelectedTabID = 0
		scrollTrackID = tb.SelectedTabID
	}

	if tb.ReorderRequestTabID != 0 {
		if tb.ProcessReorder() {
			ctx.Logger.Debug("tab reordered", "bar", tb.ID, "tab", tb.ReorderRequestTabID, "offset", tb.ReorderRequestOffset)
			if tb.ReorderRequestTabID == tb.SelectedTabID {
				scrollTrackID = tb.ReorderRequestTabID
			}
		}
		tb.ReorderRequestTabID = 0
	}

	// The list button narrows BarRect.
	if tb.Flags&TabBarFlagsTabListPopupButton != 0 {
		if sel := ctx.tabBarTabListPopupButton(tb); sel != nil {
			tb.SelectedTabID = sel.ID
			scrollTrackID = sel.ID
		}
	}

	// Shrink order is leading, trailing, central while tabs are stored
	// leading, central, trailing.
	shrinkIdx := [3]int{0, sections[0].tabCount + sections[2].tabCount, sections[0].tabCount}
	ctx.shrinkWidthBuffer = slices.Grow(ctx.shrinkWidthBuffer[:0], len(tb.Tabs))[:len(tb.Tabs)]
	buf := ctx.shrinkWidthBuffer

	var mostRecent *TabItem
	curSection := -1
	foundSelected := false
	for n := range tb.Tabs {
		tab := &tb.Tabs[n]
		if (mostRecent == nil || mostRecent.LastFrameSelected < tab.LastFrameSelected) && tab.Flags&tabItemFlagsButton == 0 {
			mostRecent = tab
		}
		if tab.ID == tb.SelectedTabID {
			foundSelected = true
		}
		if scrollTrackID == 0 && ctx.nav.justMovedToID == tab.ID {
			scrollTrackID = tab.ID
		}

		// Refresh now so style changes do not lag a frame.
		tab.ContentWidth = ctx.tabItemCalcSize(tab.Name, tab.Flags&tabItemFlagsNoCloseButton == 0).X

		sn := tab.section()
		sec := &sections[sn]
		if sn == curSection {
			sec.width += st.ItemInnerSpacing.X
		}
		sec.width += tab.ContentWidth
		curSection = sn

		buf[shrinkIdx[sn]] = ShrinkWidthItem{Index: n, Width: tab.ContentWidth}
		shrinkIdx[sn]++
		tab.Width = tab.ContentWidth
	}

	tb.WidthAllTabsIdeal = 0
	for _, s := range sections {
		tb.WidthAllTabsIdeal += s.width + s.spacing
	}

	// Scroll buttons narrow BarRect.
	if tb.WidthAllTabsIdeal > tb.BarRect.Width() && len(tb.Tabs) > 1 && tb.Flags&TabBarFlagsNoTabListScrollingButtons == 0 && tb.Flags&TabBarFlagsFittingPolicyScroll != 0 {
		if tab := ctx.tabBarScrollingButtons(tb); tab != nil {
			scrollTrackID = tab.ID
			if tab.Flags&tabItemFlagsButton == 0 {
				tb.SelectedTabID = scrollTrackID
			}
		}
	}

	// Shrink the central section, or the outer ones once the central one
	// no longer fits at all.
	w0 := sections[0].width + sections[0].spacing
	w1 := sections[1].width + sections[1].spacing
	w2 := sections[2].width + sections[2].spacing
	barW := tb.BarRect.Width()
	centralVisible := w0+w2 < barW
	excess := w0 + w2 - barW
	if centralVisible {
		excess = maxf(w1-(barW-w0-w2), 0)
	}
	if excess > 0 && (tb.Flags&TabBarFlagsFittingPolicyResizeDown != 0 || !centralVisible) {
		count := sections[0].tabCount + sections[2].tabCount
		offset := 0
		if centralVisible {
			count, offset = sections[1].tabCount, sections[0].tabCount+sections[2].tabCount
		}
		ShrinkWidths(buf[offset:offset+count], excess)
		for _, item := range buf[offset : offset+count] {
			tab := &tb.Tabs[item.Index]
			shrunk := floorf(item.Width)
			if shrunk < 0 {
				continue
			}
			sections[tab.section()].width -= tab.Width - shrunk
			tab.Width = shrunk
		}
	}

	// Offsets, section by section.
	sectionStart := 0
	var offset float32
	tb.WidthAllTabs = 0
	for sn := range sections {
		sec := &sections[sn]
		if sn == 2 {
			offset = minf(maxf(0, barW-sec.width), offset)
		}
		for n := range sec.tabCount {
			tab := &tb.Tabs[sectionStart+n]
			tab.Offset = offset
			offset += tab.Width
			if n < sec.tabCount-1 {
				offset += st.ItemInnerSpacing.X
			}
		}
		tb.WidthAllTabs += maxf(sec.width+sec.spacing, 0)
		offset += sec.spacing
		sectionStart += sec.tabCount
	}

	// Fall back to the most recently selected tab.
	if !foundSelected {
		tb.SelectedTabID = 0
	}
	if tb.SelectedTabID == 0 && tb.NextSelectedTabID == 0 && mostRecent != nil {
		tb.SelectedTabID = mostRecent.ID
		scrollTrackID = mostRecent.ID
	}

	tb.VisibleTabID = tb.SelectedTabID
	tb.VisibleTabWasSubmitted = false

	if scrollTrackID != 0 {
		if tab := tb.FindTab(scrollTrackID); tab != nil {
			ctx.tabBarScrollToTab(tb, tab, &sections)
		}
	}
	tb.ScrollingAnim = tb.scrollClamp(tb.ScrollingAnim)
	tb.ScrollingTarget = tb.scrollClamp(tb.ScrollingTarget)
	if tb.ScrollingAnim != tb.ScrollingTarget {
		// Reach the target within 0.3s; jump when it is far off screen.
		tb.ScrollingSpeed = maxf(tb.ScrollingSpeed, 70*ctx.FontSize)
		tb.ScrollingSpeed = maxf(tb.ScrollingSpeed, absf(tb.ScrollingTarget-tb.ScrollingAnim)/0.3)
		teleport := tb.PrevFrameVisible+1 < ctx.FrameCount || tb.ScrollingTargetDistToVisibility > 10*ctx.FontSize
		if teleport {
			tb.ScrollingAnim = tb.ScrollingTarget
		} else {
			tb.ScrollingAnim = linearSweep(tb.ScrollingAnim, tb.ScrollingTarget, ctx.IO.DeltaTime*tb.ScrollingSpeed)
		}
	} else {
		tb.ScrollingSpeed = 0
	}
	tb.ScrollingRectMinX = tb.BarRect.Min.X + sections[0].width + sections[0].spacing
	tb.ScrollingRectMaxX = tb.BarRect.Max.X - sections[2].width - sections[1].spacing

	w := ctx.CurrentWindow
	w.DC.CursorPos = tb.BarRect.Min
	ctx.ItemSize(Vec2{tb.WidthAllTabsIdeal, tb.BarRect.Height()}, tb.FramePadding.Y)
}

// tabBarScrollToTab sets the scroll target so tab is visible, leaving a
// margin that hints at more tabs beyond it.
func (ctx *Context) tabBarScrollToTab(tb *TabBar, tab *TabItem, sections *[3]tabBarSection) {
	if tab.Flags&tabItemFlagsSectionMask != 0 {
		return
	}
	margin := ctx.FontSize
	order := tb.tabOrder(tab)
	scrollable := tb.BarRect.Width() - sections[0].width - sections[2].width - sections[1].spacing

	// Positions relative to the end of the leading section.
	x1 := tab.Offset - sections[0].width
	if order > sections[0].tabCount-1 {
		x1 -= margin
	}
	x2 := tab.Offset - sections[0].width + tab.Width
	if order+1 < len(tb.Tabs)-sections[2].tabCount {
		x2 += margin
	} else {
		x2 += 1
	}
	tb.ScrollingTargetDistToVisibility = 0
	if tb.ScrollingTarget > x1 || x2-x1 >= scrollable {
		tb.ScrollingTargetDistToVisibility = maxf(tb.ScrollingAnim-x2, 0)
		tb.ScrollingTarget = x1
	} else if tb.ScrollingTarget < x2-scrollable {
		tb.ScrollingTargetDistToVisibility = maxf(x1-scrollable-tb.ScrollingAnim, 0)
		tb.ScrollingTarget = x2 - scrollable
	}
}

// tabBarScrollingButtons draws the two arrows at the right end of an
// overflowing bar and returns the tab to scroll to when one is clicked.
func (ctx *Context) tabBarScrollingButtons(tb *TabBar) *TabItem {
	w := ctx.CurrentWindow
	st := &ctx.Style
	size := Vec2{ctx.FontSize - 2, ctx.FontSize + st.FramePadding.Y*2}
	buttonsW := size.X * 2
	backup := w.DC.CursorPos

	arrowCol := st.Colors[ColText]
	arrowCol.W *= 0.5
	ctx.PushStyleColor(ColText, arrowCol)
	ctx.PushStyleColor(ColButton, Vec4{})
	io := &ctx.IO
	backupDelay, backupRate := io.KeyRepeatDelay, io.KeyRepeatRate
	io.KeyRepeatDelay, io.KeyRepeatRate = 0.250, 0.200
	selectDir := 0
	x := maxf(tb.BarRect.Min.X, tb.BarRect.Max.X-buttonsW)
	w.DC.CursorPos = Vec2{x, tb.BarRect.Min.Y}
	if ctx.ArrowButtonEx("##<", DirLeft, size, ButtonFlagsPressedOnClick|ButtonFlagsRepeat) {
		selectDir = -1
	}
	w.DC.CursorPos = Vec2{x + size.X, tb.BarRect.Min.Y}
	if ctx.ArrowButtonEx("##>", DirRight, size, ButtonFlagsPressedOnClick|ButtonFlagsRepeat) {
		selectDir = 1
	}
	ctx.PopStyleColor(2)
	io.KeyRepeatDelay, io.KeyRepeatRate = backupDelay, backupRate

	var target *TabItem
	if selectDir != 0 {
		if sel := tb.FindTab(tb.SelectedTabID); sel != nil {
			selOrder := tb.tabOrder(sel)
			targetOrder := selOrder + selectDir
			// Step over buttons; at either end keep the last tab found.
			for target == nil {
				if targetOrder >= 0 && targetOrder < len(tb.Tabs) {
					target = &tb.Tabs[targetOrder]
				} else {
					target = &tb.Tabs[selOrder]
				}
				if target.Flags&tabItemFlagsButton != 0 {
					targetOrder += selectDir
					selOrder += selectDir
					if targetOrder >= 0 && targetOrder < len(tb.Tabs) {
						target = nil
					}
				}
			}
		}
	}
	w.DC.CursorPos = backup
	tb.BarRect.Max.X -= buttonsW + 1
	return target
}

// tabBarTabListPopupButton draws the leading list button and returns the
// tab picked from its popup.
func (ctx *Context) tabBarTabListPopupButton(tb *TabBar) *TabItem {
	w := ctx.CurrentWindow
	st := &ctx.Style
	// FramePadding.Y keeps the button square like ArrowButton.
	buttonW := ctx.FontSize + st.FramePadding.Y
	backup := w.DC.CursorPos
	w.DC.CursorPos = Vec2{tb.BarRect.Min.X - st.FramePadding.Y, tb.BarRect.Min.Y}
	tb.BarRect.Min.X += buttonW

	arrowCol := st.Colors[ColText]
	arrowCol.W *= 0.5
	ctx.PushStyleColor(ColText, arrowCol)
	ctx.PushStyleColor(ColButton, Vec4{})
	open := ctx.BeginCombo("##v", "", ComboFlagsNoPreview|ComboFlagsHeightLargest)
	ctx.PopStyleColor(2)

	var picked *TabItem
	if open {
		for n := range tb.Tabs {
			tab := &tb.Tabs[n]
			if tab.Flags&tabItemFlagsButton != 0 {
				continue
			}
			if ctx.Selectable(tab.Name, tb.SelectedTabID == tab.ID) {
				picked = tab
			}
		}
		ctx.EndCombo()
	}
	w.DC.CursorPos = backup
	return picked
}

// ============================================================================
// Tab items
// ============================================================================

// BeginTabItem submits a tab. It returns true while the tab is selected;
// the caller then submits its contents and calls EndTabItem. A non-nil open
// adds a close button that clears *open.
func (ctx *Context) BeginTabItem(label string, open *bool, flags TabItemFlags) bool {
	w := ctx.CurrentWindow
	if w.SkipItems {
		return false
	}
	tb := ctx.CurrentTabBar
	if !ctx.assert(tb != nil, "BeginTabItem: needs to be called between BeginTabBar and EndTabBar", "label", label) {
		return false
	}
	if !ctx.assert(flags&tabItemFlagsButton == 0, "BeginTabItem: use TabItemButton for buttons") {
		flags &^= tabItemFlagsButton
	}
	visible := ctx.tabItemEx(tb, label, open, flags)
	if visible && flags&TabItemFlagsNoPushID == 0 {
		// The label is already hashed; push the tab ID as is.
		ctx.pushOverrideID(tb.Tabs[tb.LastTabItemIdx].ID)
	}
	return visible
}

// EndTabItem closes a BeginTabItem that returned true.
func (ctx *Context) EndTabItem() {
	w := ctx.CurrentWindow
	if w.SkipItems {
		return
	}
	tb := ctx.CurrentTabBar
	if !ctx.assert(tb != nil, "EndTabItem: needs to be called between BeginTabBar and EndTabBar") {
		return
	}
	if !ctx.assert(tb.LastTabItemIdx >= 0 && tb.LastTabItemIdx < len(tb.Tabs), "EndTabItem: no tab item to end") {
		return
	}
	if tb.Tabs[tb.LastTabItemIdx].Flags&TabItemFlagsNoPushID == 0 {
		ctx.PopID()
	}
}

// TabItemButton submits a tab that behaves like a button and never gets
// selected.
func (ctx *Context) TabItemButton(label string, flags TabItemFlags) bool {
	w := ctx.CurrentWindow
	if w.SkipItems {
		return false
	}
	tb := ctx.CurrentTabBar
	if !ctx.assert(tb != nil, "TabItemButton: needs to be called between BeginTabBar and EndTabBar", "label", label) {
		return false
	}
	return ctx.tabItemEx(tb, label, nil, flags|tabItemFlagsButton|TabItemFlagsNoReorder)
}

// SetTabItemClosed notifies the current tab bar that a tab was closed by
// the program. It is removed at the next layout instead of one frame later.
func (ctx *Context) SetTabItemClosed(label string) {
	tb := ctx.CurrentTabBar
	if tb == nil {
		return
	}
	if tab := tb.FindTab(ctx.CurrentWindow.GetID(label)); tab != nil {
		tab.WantClose = true
	}
}

func (ctx *Context) tabItemCalcSize(label string, closeButton bool) Vec2 {
	st := &ctx.Style
	labelSize := ctx.CalcTextSize(label, true, 0)
	size := Vec2{labelSize.X + st.FramePadding.X, labelSize.Y + st.FramePadding.Y*2}
	if closeButton {
		// The close button circle is FontSize wide.
		size.X += st.FramePadding.X + st.ItemInnerSpacing.X + ctx.FontSize
	} else {
		size.X += st.FramePadding.X + 1
	}
	return Vec2{minf(size.X, ctx.FontSize*tabMaxWidthFontRatio), size.Y}
}

func (ctx *Context) tabItemEx(tb *TabBar, label string, open *bool, flags TabItemFlags) bool {
	if tb.WantLayout {
		ctx.tabBarLayout(tb)
	}
	w := ctx.CurrentWindow
	st := &ctx.Style
	id := w.GetID(label)

	// A closed tab still registers its ID so context menus keyed on the
	// last item do not pick up an older one.
	if open != nil && !*open {
		ctx.PushItemFlag(ItemFlagsNoNav|ItemFlagsNoNavDefaultFocus, true)
		ctx.ItemAdd(Rect{}, id, nil)
		ctx.PopItemFlag()
		return false
	}
	ctx.assert(flags&tabItemFlagsSectionMask != tabItemFlagsSectionMask, "tab item: Leading and Trailing are exclusive", "label", label)

	if flags&tabItemFlagsNoCloseButton != 0 {
		open = nil
	} else if open == nil {
		flags |= tabItemFlagsNoCloseButton
	}

	size := ctx.tabItemCalcSize(label, open != nil)

	tab := tb.FindTab(id)
	isNew := tab == nil
	if isNew {
		tb.Tabs = append(tb.Tabs, newTabItem(id))
		tab = &tb.Tabs[len(tb.Tabs)-1]
		tab.Width = size.X
		tb.TabsAddedNew = true
	}
	tb.LastTabItemIdx = tb.tabOrder(tab)
	tab.ContentWidth = size.X
	tab.BeginOrder = tb.TabsActiveCount
	tb.TabsActiveCount++

	barAppearing := tb.PrevFrameVisible+1 < ctx.FrameCount
	barFocused := tb.Flags&tabBarFlagsIsFocused != 0
	tabAppearing := tab.LastFrameVisible+1 < ctx.FrameCount
	isButton := flags&tabItemFlagsButton != 0
	tab.LastFrameVisible = ctx.FrameCount
	tab.Flags = flags
	tab.Name = label

	if tabAppearing && tb.Flags&TabBarFlagsAutoSelectNewTabs != 0 && tb.NextSelectedTabID == 0 {
		if (!barAppearing || tb.SelectedTabID == 0) && !isButton {
			tb.NextSelectedTabID = id
		}
	}
	if flags&TabItemFlagsSetSelected != 0 && tb.SelectedTabID != id && !isButton {
		tb.NextSelectedTabID = id
	}

	contentsVisible := tb.VisibleTabID == id
	if contentsVisible {
		tb.VisibleTabWasSubmitted = true
	}
	// Show the first tab on the bar's first frame to avoid a blank frame.
	if !contentsVisible && tb.SelectedTabID == 0 && barAppearing && len(tb.Tabs) == 1 && tb.Flags&TabBarFlagsAutoSelectNewTabs == 0 {
		contentsVisible = true
	}

	// A tab that reappears with its bar keeps its slot; a genuinely new one
	// waits a frame for layout.
	if tabAppearing && (!barAppearing || isNew) {
		ctx.PushItemFlag(ItemFlagsNoNav|ItemFlagsNoNavDefaultFocus, true)
		ctx.ItemAdd(Rect{}, id, nil)
		ctx.PopItemFlag()
		if isButton {
			return false
		}
		return contentsVisible
	}

	if tb.SelectedTabID == id {
		tab.LastFrameSelected = ctx.FrameCount
	}

	backupMainCursor := w.DC.CursorPos
	central := tab.Flags&tabItemFlagsSectionMask == 0
	size.X = tab.Width
	if central {
		w.DC.CursorPos = tb.BarRect.Min.Add(Vec2{floorf(tab.Offset - tb.ScrollingAnim), 0})
	} else {
		w.DC.CursorPos = tb.BarRect.Min.Add(Vec2{tab.Offset, 0})
	}
	pos := w.DC.CursorPos
	bb := Rect{pos, pos.Add(size)}

	// The close button cannot be CPU clipped, so scrolled tabs get a clip rect.
	wantClip := central && (bb.Min.X < tb.ScrollingRectMinX || bb.Max.X > tb.ScrollingRectMaxX)
	if wantClip {
		ctx.PushClipRect(Vec2{maxf(bb.Min.X, tb.ScrollingRectMinX), bb.Min.Y - 1}, Vec2{tb.ScrollingRectMaxX, bb.Max.Y}, true)
	}

	backupCursorMax := w.DC.CursorMaxPos
	ctx.ItemSize(bb.Size(), st.FramePadding.Y)
	w.DC.CursorMaxPos = backupCursorMax

	if !ctx.ItemAdd(bb, id, nil) {
		if wantClip {
			ctx.PopClipRect()
		}
		w.DC.CursorPos = backupMainCursor
		return contentsVisible
	}

	buttonFlags := ButtonFlagsPressedOnClick | ButtonFlagsAllowItemOverlap
	if isButton {
		buttonFlags = ButtonFlagsPressedOnClickRelease | ButtonFlagsAllowItemOverlap
	}
	pressed, hovered, held := ctx.ButtonBehavior(bb, id, buttonFlags)
	if pressed && !isButton {
		tb.NextSelectedTabID = id
	}
	hovered = hovered || ctx.HoveredID == id

	// Overlap lets the close button be hovered, except while dragging.
	if !held {
		ctx.SetItemAllowOverlap()
	}

	// The tab jumps under the cursor after a swap, so also check the
	// direction of motion.
	if held && !tabAppearing && ctx.IsMouseDragging(MouseButtonLeft, -1) && tb.Flags&TabBarFlagsReorderable != 0 {
		io := &ctx.IO
		if io.MouseDelta.X < 0 && io.MousePos.X < bb.Min.X || io.MouseDelta.X > 0 && io.MousePos.X > bb.Max.X {
			tb.QueueReorderFromMousePos(tab, io.MousePos.X, st.ItemInnerSpacing.X)
		}
	}

	dl := w.DrawList
	colIdx := ColTab
	switch {
	case held || hovered:
		colIdx = ColTabHovered
	case contentsVisible && barFocused:
		colIdx = ColTabActive
	case contentsVisible:
		colIdx = ColTabUnfocusedActive
	case !barFocused:
		colIdx = ColTabUnfocused
	}
	ctx.tabItemBackground(dl, bb, flags, ctx.GetColorU32(colIdx, 1))
	ctx.RenderNavHighlight(bb, id)

	// Right click selects, so context menus act on the tab under the cursor.
	if ctx.IsItemHovered(HoveredFlagsAllowWhenBlockedByPopup) && (ctx.IsMouseClicked(MouseButtonRight, false) || ctx.IsMouseReleased(MouseButtonRight)) && !isButton {
		tb.NextSelectedTabID = id
	}

	if tb.Flags&TabBarFlagsNoCloseWithMiddleMouseButton != 0 {
		flags |= TabItemFlagsNoCloseWithMiddleMouseButton
	}

	var closeID ID
	if open != nil {
		closeID = HashStr("#CLOSE", id)
	}
	justClosed, textClipped := ctx.tabItemLabelAndCloseButton(dl, bb, flags, tb.FramePadding, label, id, closeID, contentsVisible)
	if justClosed && open != nil {
		*open = false
		tb.closeTab(tab)
		ctx.Logger.Debug("tab closed", "bar", tb.ID, "tab", id)
	}

	if wantClip {
		ctx.PopClipRect()
	}
	w.DC.CursorPos = backupMainCursor

	if textClipped && ctx.HoveredID == id && !held && ctx.HoveredIDNotActiveTimer > 0.50 && ctx.IsItemHovered(HoveredFlagsNone) {
		if tb.Flags&TabBarFlagsNoTooltip == 0 && tab.Flags&TabItemFlagsNoTooltip == 0 {
			ctx.SetTooltip("%s", FindRenderedTextEnd(label))
		}
	}

	if isButton {
		return pressed
	}
	return contentsVisible
}

// tabItemBackground fills the tab shape, one pixel short of bb at the top
// and bottom so tabs look detached from the bar.
func (ctx *Context) tabItemBackground(dl *DrawList, bb Rect, flags TabItemFlags, col uint32) {
	st := &ctx.Style
	width := bb.Width()
	rounding := st.TabRounding
	if flags&tabItemFlagsButton != 0 {
		rounding = st.FrameRounding
	}
	rounding = maxf(0, minf(rounding, width*0.5-1))
	y1, y2 := bb.Min.Y+1, bb.Max.Y-1
	dl.PathLineTo(Vec2{bb.Min.X, y2})
	dl.PathArcToFast(Vec2{bb.Min.X + rounding, y1 + rounding}, rounding, 6, 9)
	dl.PathArcToFast(Vec2{bb.Max.X - rounding, y1 + rounding}, rounding, 9, 12)
	dl.PathLineTo(Vec2{bb.Max.X, y2})
	dl.PathFillConvex(col)
	if st.TabBorderSize > 0 {
		dl.PathLineTo(Vec2{bb.Min.X + 0.5, y2})
		dl.PathArcToFast(Vec2{bb.Min.X + rounding + 0.5, y1 + rounding + 0.5}, rounding, 6, 9)
		dl.PathArcToFast(Vec2{bb.Max.X - rounding - 0.5, y1 + rounding + 0.5}, rounding, 9, 12)
		dl.PathLineTo(Vec2{bb.Max.X - 0.5, y2})
		dl.PathStroke(ctx.GetColorU32(ColBorder, 1), false, st.TabBorderSize)
	}
}

// tabItemLabelAndCloseButton draws the label with ellipsis, the unsaved
// marker and the close button. The close button shows while the tab or
// the button itself is hovered or active.
func (ctx *Context) tabItemLabelAndCloseButton(dl *DrawList, bb Rect, flags TabItemFlags, framePadding Vec2, label string, tabID, closeID ID, contentsVisible bool) (justClosed, textClipped bool) {
	labelSize := ctx.CalcTextSize(label, true, 0)
	if bb.Width() <= 1 {
		return false, false
	}

	textClip := R(bb.Min.X+framePadding.X, bb.Min.Y+framePadding.Y, bb.Max.X-framePadding.X, bb.Max.Y)
	if flags&TabItemFlagsUnsavedDocument != 0 {
		textClip.Max.X -= ctx.CalcTextSize(tabUnsavedMarker, false, 0).X
		markerPos := Vec2{minf(bb.Min.X+framePadding.X+labelSize.X+2, textClip.Max.X), bb.Min.Y + framePadding.Y + floorf(-ctx.FontSize*0.25)}
		ctx.RenderTextClipped(markerPos, bb.Max.Sub(framePadding), tabUnsavedMarker, nil, Vec2{}, nil)
	}
	ellipsisClip := textClip
	textClipped = ellipsisClip.Min.X+labelSize.X > textClip.Max.X

	// hovered is false over the close button, HoveredID covers both.
	closeVisible := false
	if closeID != 0 && (contentsVisible || bb.Width() >= ctx.Style.TabMinWidthForCloseButton) {
		if ctx.HoveredID == tabID || ctx.HoveredID == closeID || ctx.ActiveID == tabID || ctx.ActiveID == closeID {
			closeVisible = true
		}
	}
	if closeVisible {
		w := ctx.CurrentWindow
		lastID, lastStatus, lastRect := w.DC.LastItemID, w.DC.LastItemStatusFlags, w.DC.LastItemRect
		sz := ctx.FontSize
		ctx.PushStyleVarVec2(StyleVarFramePadding, framePadding)
		if ctx.CloseButton(closeID, Vec2{bb.Max.X - framePadding.X*2 - sz, bb.Min.Y}) {
			justClosed = true
		}
		ctx.PopStyleVar(1)
		w.DC.LastItemID, w.DC.LastItemStatusFlags, w.DC.LastItemRect = lastID, lastStatus, lastRect

		if flags&TabItemFlagsNoCloseWithMiddleMouseButton == 0 && ctx.IsMouseClicked(MouseButtonMiddle, false) {
			justClosed = true
		}
		textClip.Max.X -= sz
	}

	ellipsisMaxX := bb.Max.X - 1
	if closeVisible {
		ellipsisMaxX = textClip.Max.X
	}
	ctx.RenderTextEllipsis(dl, ellipsisClip.Min, ellipsisClip.Max, textClip.Max.X, ellipsisMaxX, label, &labelSize)
	return justClosed, textClipped
}
