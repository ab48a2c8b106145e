package anchor

import "github.com/chewxy/math32"

// GraphFit asks GraphEditor to frame nodes on its next call. The editor
// resets it to GraphFitNone.
type GraphFit int

const (
	GraphFitNone GraphFit = iota
	GraphFitAllNodes
	GraphFitSelectedNodes
)

// GraphOptions are the look and feel of a GraphEditor.
type GraphOptions struct {
	Minimap                  Rect // fractions of the canvas, empty hides it
	BackgroundColor          uint32
	GridColor                uint32
	GridColor2               uint32 // every tenth line
	SelectedNodeBorderColor  uint32
	NodeBorderColor          uint32
	QuadSelection            uint32
	QuadSelectionBorder      uint32
	DefaultSlotColor         uint32
	FrameFocus               uint32
	LineThickness            float32 // link width at zoom 1
	GridSize                 float32 // grid spacing at zoom 1
	Rounding                 float32
	ZoomRatio                float32 // zoom change per wheel notch
	ZoomLerpFactor           float32 // share of the zoom target reached per frame
	BorderSelectionThickness float32
	BorderThickness          float32
	NodeSlotRadius           float32
	NodeSlotHoverFactor      float32
	MinZoom, MaxZoom         float32
	LinksAsCurves            bool // false draws straight and 45 degree segments
	AllowQuadSelection       bool
	RenderGrid               bool
	DrawIONameOnHover        bool
}

// DefaultGraphOptions returns the stock editor look.
func DefaultGraphOptions() GraphOptions {
	return GraphOptions{
		Minimap:                  R(0.75, 0.8, 0.99, 0.99),
		BackgroundColor:          RGBA(40, 40, 40, 255),
		GridColor:                RGBA(0, 0, 0, 60),
		GridColor2:               RGBA(0, 0, 0, 160),
		SelectedNodeBorderColor:  RGBA(255, 130, 30, 255),
		NodeBorderColor:          RGBA(100, 100, 100, 0),
		QuadSelection:            RGBA(255, 32, 32, 64),
		QuadSelectionBorder:      RGBA(255, 32, 32, 255),
		DefaultSlotColor:         RGBA(128, 128, 128, 255),
		FrameFocus:               RGBA(64, 128, 255, 255),
		LineThickness:            5,
		GridSize:                 64,
		Rounding:                 3,
		ZoomRatio:                0.1,
		ZoomLerpFactor:           0.25,
		BorderSelectionThickness: 6,
		BorderThickness:          6,
		NodeSlotRadius:           8,
		NodeSlotHoverFactor:      1.2,
		MinZoom:                  0.2,
		MaxZoom:                  1.1,
		LinksAsCurves:            true,
		AllowQuadSelection:       true,
		RenderGrid:               true,
		DrawIONameOnHover:        true,
	}
}

// GraphView is the scroll and zoom of a GraphEditor. A node at world point
// p is drawn at canvasMin + (p + Position) * Factor.
type GraphView struct {
	Position     Vec2
	Factor       float32
	FactorTarget float32 // Factor eases toward it
}

// NewGraphView returns an unscrolled view at zoom 1.
func NewGraphView() GraphView { return GraphView{Factor: 1, FactorTarget: 1} }

// GraphTemplate is the shape shared by nodes of one kind. Names and colors
// are optional per slot.
type GraphTemplate struct {
	HeaderColor         uint32
	BackgroundColor     uint32
	BackgroundColorOver uint32
	InputCount          int
	OutputCount         int
	InputNames          []string
	OutputNames         []string
	InputColors         []uint32
	OutputColors        []uint32
}

func (t *GraphTemplate) slotCount(output bool) int {
	if output {
		return t.OutputCount
	}
	return t.InputCount
}

func (t *GraphTemplate) slotName(output bool, i int) string {
	names := t.InputNames
	if output {
		names = t.OutputNames
	}
	if i < len(names) {
		return names[i]
	}
	return ""
}

func (t *GraphTemplate) slotColor(output bool, i int, fallback uint32) uint32 {
	cols := t.InputColors
	if output {
		cols = t.OutputColors
	}
	if i < len(cols) {
		return cols[i]
	}
	return fallback
}

// GraphNode is one box of the graph, with Rect in world units.
type GraphNode struct {
	Name     string
	Template int
	Rect     Rect
	Selected bool
}

// GraphLink connects output slot FromSlot of FromNode to input slot ToSlot
// of ToNode. An input slot holds at most one link.
type GraphLink struct {
	FromNode, FromSlot int
	ToNode, ToSlot     int
}

// GraphDelegate owns the graph a GraphEditor shows. The editor reads it
// every frame and reports edits back through it.
type GraphDelegate interface {
	AllowedLink(link GraphLink) bool
	SelectNode(node int, selected bool)
	MoveSelectedNodes(delta Vec2)
	AddLink(link GraphLink)
	DelLink(index int)
	// CustomDraw paints inside a node body. It must clip itself.
	CustomDraw(dl *DrawList, r Rect, node int)
	// RightClick reports a right click on the canvas. The indices are -1
	// when nothing of that kind is under the pointer.
	RightClick(node, inputSlot, outputSlot int)

	TemplateCount() int
	Template(i int) GraphTemplate
	NodeCount() int
	Node(i int) GraphNode
	LinkCount() int
	Link(i int) GraphLink
}

type graphOp int

const (
	graphOpNone graphOp = iota
	graphOpEditingLink
	graphOpQuadSelecting
	graphOpMovingNodes
	graphOpPanView
)

// graphEditorState is the interaction in progress of one editor.
type graphEditorState struct {
	op          graphOp
	linkSource  Vec2 // screen point the pending link starts from
	linkInput   bool // the pending link started on an input slot
	linkNode    int
	linkSlot    int
	quadStart   Vec2
	hoveredNode int
}

const (
	graphHeaderHeight  float32 = 20
	graphSlotBias      float32 = 8
	graphMinimapMargin float32 = 50
)

// graphSlotPos is a slot center in zoomed canvas space, before the scroll
// offset is added.
func graphSlotPos(node *GraphNode, tmpl *GraphTemplate, slot int, output bool, factor float32) Vec2 {
	size := node.Rect.Size().Mul(factor)
	n := tmpl.slotCount(output)
	x := node.Rect.Min.X * factor
	if output {
		x += size.X
	}
	return Vec2{x, node.Rect.Min.Y*factor + size.Y*float32(slot+1)/float32(n+1) + graphSlotBias}
}

func graphNodeRect(node *GraphNode, factor float32) Rect {
	return Rect{node.Rect.Min.Mul(factor), node.Rect.Max.Mul(factor)}
}

// GraphEditor draws the node graph of d filling the remaining content
// region. Nodes are moved by dragging, selected by click or by a quad
// drawn on the empty canvas (Shift adds, Ctrl removes), and linked by
// dragging from a slot to a slot of the other kind. The middle button
// pans, the wheel zooms, and clicking the minimap jumps the view. When
// enabled is false only the background is drawn. fit may be nil.
func (ctx *Context) GraphEditor(strID string, d GraphDelegate, opts *GraphOptions, view *GraphView, enabled bool, fit *GraphFit) {
	w := ctx.CurrentWindow
	if w.SkipItems {
		return
	}
	id := w.GetID(strID)
	es, created := ctx.graphEditors.GetOrAdd(id, ctx.FrameCount)
	if created {
		es.hoveredNode = -1
	}
	if view.Factor <= 0 {
		*view = NewGraphView()
	}

	canvasPos := w.DC.CursorPos
	canvasSize := ctx.GetContentRegionAvail()
	region := RectFromSize(canvasPos, canvasSize)
	dl := w.DrawList

	ctx.graphZoom(region, view, opts)

	ctx.PushClipRect(region.Min, region.Max, true)
	dl.AddRectFilled(region.Min, region.Max, opts.BackgroundColor, 0, DrawCornerNone)
	if opts.RenderGrid {
		graphDrawGrid(dl, region, view, opts)
	}
	if fit != nil && *fit != GraphFitNone {
		graphFitNodes(d, view, canvasSize, *fit == GraphFitSelectedNodes)
	}

	if enabled {
		ctx.graphEditorInteract(es, d, opts, view, region)
	}

	ctx.PopClipRect()

	ctx.SetCursorScreenPos(canvasPos)
	ctx.ItemSize(canvasSize, -1)
	ctx.ItemAdd(region, 0, nil)

	if fit != nil {
		*fit = GraphFitNone
	}
}

// graphEditorInteract runs one frame of editing and draws links, nodes,
// the selection quad and the minimap, in that order.
func (ctx *Context) graphEditorInteract(es *graphEditorState, d GraphDelegate, opts *GraphOptions, view *GraphView, region Rect) {
	io := &ctx.IO
	dl := ctx.CurrentWindow.DrawList

	mm, hasMinimap := graphMinimapLayout(d, view, opts, region)
	inMinimap := hasMinimap && mm.screen.Contains(io.MousePos)
	if inMinimap && io.MouseClicked[MouseButtonLeft] {
		mm.jump(view, io.MousePos)
		mm, _ = graphMinimapLayout(d, view, opts, region)
	}
	offset := region.Min.Add(view.Position.Mul(view.Factor))

	if ctx.IsWindowFocused(FocusedNone) {
		dl.AddRect(region.Min, region.Max, opts.FrameFocus, 1, DrawCornerAll, 2)
	}

	graphDrawLinks(d, dl, offset, view.Factor, region, es.hoveredNode, opts)
	if es.op == graphOpEditingLink {
		dl.AddLine(es.linkSource, io.MousePos, RGBA(200, 200, 200, 255), 3)
	}

	// Unselected nodes first so the selection draws on top. The order is
	// fixed before any node can change its selection this frame.
	count := d.NodeCount()
	order := make([]int, 0, count)
	for pass := range 2 {
		for i := range count {
			if n := d.Node(i); n.Selected == (pass == 1) {
				order = append(order, i)
			}
		}
	}

	es.hoveredNode = -1
	nodeOver, inputOver, outputOver := -1, -1, -1
	for _, i := range order {
		node := d.Node(i)
		if !region.Overlaps(graphNodeRect(&node, view.Factor).Translate(offset)) {
			continue
		}
		ctx.PushIDInt(i)
		overSlot := false
		if !inMinimap {
			overSlot, _, _ = ctx.graphHandleSlots(es, d, i, offset, view.Factor, opts, false)
		}
		if ctx.graphDrawNode(es, d, i, offset, view.Factor, overSlot, opts, inMinimap, region) {
			es.hoveredNode = i
		}
		if _, in, out := ctx.graphHandleSlots(es, d, i, offset, view.Factor, opts, true); in != -1 || out != -1 {
			nodeOver, inputOver, outputOver = i, in, out
		}
		ctx.PopID()
	}
	if nodeOver == -1 {
		nodeOver = es.hoveredNode
	}

	if es.op == graphOpMovingNodes && ctx.IsMouseDragging(MouseButtonLeft, 1) {
		delta := io.MouseDelta.Mul(1 / view.Factor)
		if absf(delta.X) >= 1 || absf(delta.Y) >= 1 {
			d.MoveSelectedNodes(delta)
		}
	}

	if !inMinimap {
		ctx.graphQuadSelection(es, d, dl, offset, view.Factor, region, opts)
	}
	if hasMinimap {
		mm.draw(d, dl, opts)
	}

	// Releasing the button ends any operation.
	if es.op == graphOpPanView {
		if !io.MouseDown[MouseButtonMiddle] {
			es.op = graphOpNone
		}
	} else if es.op != graphOpNone && !io.MouseDown[MouseButtonLeft] {
		es.op = graphOpNone
	}

	if !inMinimap && es.op == graphOpNone && region.Contains(io.MousePos) && ctx.IsMouseClicked(MouseButtonRight, false) {
		d.RightClick(nodeOver, inputOver, outputOver)
	}

	if es.op == graphOpNone && io.MouseClicked[MouseButtonMiddle] && region.Contains(io.MousePos) &&
		ctx.IsWindowHovered(HoveredFlagsNone) && !ctx.IsAnyItemActive() {
		es.op = graphOpPanView
	}
	if es.op == graphOpPanView {
		view.Position = view.Position.Add(io.MouseDelta.Mul(1 / view.Factor))
	}
}

// GraphEditorClear drops the interaction in progress of the editor strID.
func (ctx *Context) GraphEditorClear(strID string) {
	if es := ctx.graphEditors.GetByKey(ctx.GetID(strID)); es != nil {
		es.op = graphOpNone
	}
}

// graphZoom eases the zoom toward its target, keeping the world point under
// the pointer in place. The wheel over region moves the target.
func (ctx *Context) graphZoom(region Rect, view *GraphView, opts *GraphOptions) {
	io := &ctx.IO
	if region.Contains(io.MousePos) {
		switch {
		case io.MouseWheel < -floatEpsilon:
			view.FactorTarget *= 1 - opts.ZoomRatio
		case io.MouseWheel > floatEpsilon:
			view.FactorTarget *= 1 + opts.ZoomRatio
		}
	}
	pre := io.MousePos.Sub(region.Min).Mul(1 / view.Factor)
	view.FactorTarget = clampf(view.FactorTarget, opts.MinZoom, opts.MaxZoom)
	view.Factor = lerpf(view.Factor, view.FactorTarget, opts.ZoomLerpFactor)
	post := io.MousePos.Sub(region.Min).Mul(1 / view.Factor)
	if ctx.IsMousePosValid() {
		view.Position = view.Position.Add(post.Sub(pre))
	}
}

func graphDrawGrid(dl *DrawList, region Rect, view *GraphView, opts *GraphOptions) {
	space := opts.GridSize * view.Factor
	if space <= 1 {
		return
	}
	size := region.Size()
	div := int(-view.Position.X / opts.GridSize)
	for x := math32.Mod(view.Position.X*view.Factor, space); x < size.X; x, div = x+space, div+1 {
		col := opts.GridColor
		if div%10 == 0 {
			col = opts.GridColor2
		}
		dl.AddLine(region.Min.Add(Vec2{x, 0}), region.Min.Add(Vec2{x, size.Y}), col, 1)
	}
	div = int(-view.Position.Y / opts.GridSize)
	for y := math32.Mod(view.Position.Y*view.Factor, space); y < size.Y; y, div = y+space, div+1 {
		col := opts.GridColor
		if div%10 == 0 {
			col = opts.GridColor2
		}
		dl.AddLine(region.Min.Add(Vec2{0, y}), region.Min.Add(Vec2{size.X, y}), col, 1)
	}
}

// graphFitNodes zooms and scrolls so the chosen nodes fill the view with a
// five percent margin, never zooming past 1.
func graphFitNodes(d GraphDelegate, view *GraphView, viewSize Vec2, selectedOnly bool) {
	lo, hi := Vec2{floatMax, floatMax}, Vec2{-floatMax, -floatMax}
	found := false
	for i := range d.NodeCount() {
		n := d.Node(i)
		if selectedOnly && !n.Selected {
			continue
		}
		lo, hi = minV2(lo, minV2(n.Rect.Min, n.Rect.Max)), maxV2(hi, maxV2(n.Rect.Min, n.Rect.Max))
		found = true
	}
	if !found {
		return
	}
	margin := viewSize.Mul(0.05)
	lo, hi = lo.Sub(margin), hi.Add(margin)
	size := hi.Sub(lo)
	center := lo.Add(hi).Mul(0.5)
	f := minf(minf(viewSize.Y/size.Y, viewSize.X/size.X), 1)
	view.Factor, view.FactorTarget = f, f
	view.Position = viewSize.Mul(0.5 / f).Sub(center)
}

func graphDrawLinks(d GraphDelegate, dl *DrawList, offset Vec2, factor float32, region Rect, hovered int, opts *GraphOptions) {
	for li := range d.LinkCount() {
		link := d.Link(li)
		from, to := d.Node(link.FromNode), d.Node(link.ToNode)
		fromTmpl, toTmpl := d.Template(from.Template), d.Template(to.Template)
		p1 := offset.Add(graphSlotPos(&from, &fromTmpl, link.FromSlot, true, factor))
		p2 := offset.Add(graphSlotPos(&to, &toTmpl, link.ToSlot, false, factor))

		if (p1.Y < region.Min.Y && p2.Y < region.Min.Y) || (p1.Y > region.Max.Y && p2.Y > region.Max.Y) ||
			(p1.X < region.Min.X && p2.X < region.Min.X) || (p1.X > region.Max.X && p2.X > region.Max.X) {
			continue
		}

		highlight := hovered == link.FromNode || hovered == link.ToNode
		col := fromTmpl.HeaderColor
		if highlight {
			col |= 0xF0F0F0
		}
		if opts.LinksAsCurves {
			c1, c2 := p1.Add(Vec2{50 * factor, 0}), p2.Add(Vec2{-50 * factor, 0})
			dl.AddBezierCubic(p1, c1, c2, p2, colorBlack, opts.LineThickness*1.5*factor, 0)
			dl.AddBezierCubic(p1, c1, c2, p2, col, opts.LineThickness*factor, 0)
			continue
		}
		pts := graphStraightLink(p1, p2, factor)
		scale := factor
		if highlight {
			scale *= 2
		}
		dl.AddPolyline(pts, colorBlack, false, opts.LineThickness*1.5*scale)
		dl.AddPolyline(pts, col, false, opts.LineThickness*scale)
	}
}

const colorBlack uint32 = 0xFF000000

func signf(v float32) float32 {
	if v >= 0 {
		return 1
	}
	return -1
}

// graphStraightLink routes a link with horizontal, vertical and 45 degree
// segments. A target left of the source gets an S shaped detour.
func graphStraightLink(p1, p2 Vec2, factor float32) []Vec2 {
	dif := p2.Sub(p1)
	limit := 12 * factor
	if dif.X < limit {
		p10 := p1.Add(Vec2{limit, 0})
		p20 := p2.Sub(Vec2{limit, 0})
		dif = p20.Sub(p10)
		p1a := p10.Add(Vec2{0, dif.Y * 0.5})
		p1b := p1a.Add(Vec2{dif.X, 0})
		return []Vec2{p1, p10, p1a, p1b, p20, p2}
	}
	if absf(dif.Y) < 1 {
		return []Vec2{p1, p1.Add(p2).Mul(0.5), p2}
	}
	ax, ay := absf(dif.X), absf(dif.Y)
	var p1a, p1b Vec2
	switch {
	case ay < 10 && ax > ay:
		p1a = p1.Add(Vec2{absf(ax-ay) * 0.5 * signf(dif.X), 0})
		p1b = p1a.Add(Vec2{ay * signf(dif.X), dif.Y})
	case ay < 10:
		p1a = p1.Add(Vec2{0, absf(ay-ax) * 0.5 * signf(dif.Y)})
		p1b = p1a.Add(Vec2{dif.X, ax * signf(dif.Y)})
	case ax > ay:
		dd := ay * signf(dif.X) * 0.5
		p1a = p1.Add(Vec2{dd, dif.Y * 0.5})
		p1b = p1a.Add(Vec2{absf(ax-absf(dd)*2) * signf(dif.X), 0})
	default:
		dd := ax * signf(dif.Y) * 0.5
		p1a = p1.Add(Vec2{dif.X * 0.5, dd})
		p1b = p1a.Add(Vec2{0, absf(ay-absf(dd)*2) * signf(dif.Y)})
	}
	return []Vec2{p1, p1a, p1b, p2}
}

// graphHandleSlots draws the slots of node and, unless drawOnly, starts and
// finishes link edits on them. It returns whether a slot is hovered and
// the hovered input and output slots, -1 for none.
func (ctx *Context) graphHandleSlots(es *graphEditorState, d GraphDelegate, nodeIndex int, offset Vec2, factor float32, opts *GraphOptions, drawOnly bool) (over bool, inputOver, outputOver int) {
	io := &ctx.IO
	dl := ctx.CurrentWindow.DrawList
	node := d.Node(nodeIndex)
	tmpl := d.Template(node.Template)
	inputOver, outputOver = -1, -1
	canHover := es.op == graphOpNone || es.op == graphOpEditingLink
	nodeRect := graphNodeRect(&node, factor)

	for _, output := range [2]bool{false, true} {
		closest, closestDist := -1, floatMax
		var closestPos, closestText Vec2
		for slot := range tmpl.slotCount(output) {
			text := tmpl.slotName(output, slot)
			p := offset.Add(graphSlotPos(&node, &tmpl, slot, output, factor))
			dist := math32.Sqrt(p.Sub(io.MousePos).LengthSqr())
			overCon := canHover && dist < opts.NodeSlotRadius*2 && dist < closestDist

			textSize := ctx.CalcTextSize(text, false, 0)
			spread := float32(2)
			if overCon {
				spread = 3
			}
			textPos := Vec2{p.X - opts.NodeSlotRadius*spread - textSize.X, p.Y - textSize.Y/2}
			if output {
				textPos.X = p.X + opts.NodeSlotRadius*spread
			}

			// Dragging a link over a node body snaps to its first free side.
			snap := closest == -1 && es.op == graphOpEditingLink && es.linkInput == output &&
				nodeRect.Contains(io.MousePos.Sub(offset))
			if overCon || snap {
				closest, closestDist, closestPos, closestText = slot, dist, p, textPos
				if output {
					outputOver = slot
				} else {
					inputOver = slot
				}
				continue
			}
			dl.AddCircleFilled(p, opts.NodeSlotRadius, RGBA(0, 0, 0, 200), 0)
			dl.AddCircleFilled(p, opts.NodeSlotRadius*0.75, tmpl.slotColor(output, slot, opts.DefaultSlotColor), 0)
			if !opts.DrawIONameOnHover {
				dl.AddText(ctx.Font, ctx.FontSize, textPos.Add(Vec2{2, 2}), colorBlack, text, 0, nil)
				dl.AddText(ctx.Font, ctx.FontSize, textPos, RGBA(150, 150, 150, 255), text, 0, nil)
			}
		}
		if closest == -1 {
			continue
		}

		over = true
		dl.AddCircleFilled(closestPos, opts.NodeSlotRadius*opts.NodeSlotHoverFactor*0.75, RGBA(0, 0, 0, 200), 0)
		dl.AddCircleFilled(closestPos, opts.NodeSlotRadius*opts.NodeSlotHoverFactor, tmpl.slotColor(output, closest, opts.DefaultSlotColor), 0)
		text := tmpl.slotName(output, closest)
		dl.AddText(ctx.Font, ctx.FontSize, closestText.Add(Vec2{1, 1}), colorBlack, text, 0, nil)
		dl.AddText(ctx.Font, ctx.FontSize, closestText, RGBA(250, 250, 250, 255), text, 0, nil)
		if drawOnly {
			continue
		}

		if es.op == graphOpEditingLink && !io.MouseDown[MouseButtonLeft] && es.linkInput == output {
			link := GraphLink{FromNode: es.linkNode, FromSlot: es.linkSlot, ToNode: nodeIndex, ToSlot: closest}
			if es.linkInput {
				link = GraphLink{FromNode: nodeIndex, FromSlot: closest, ToNode: es.linkNode, ToSlot: es.linkSlot}
			}
			if d.AllowedLink(link) {
				graphConnect(d, link)
			}
		}
		if es.op == graphOpNone && io.MouseClicked[MouseButtonLeft] {
			es.op = graphOpEditingLink
			es.linkInput = !output
			es.linkSource = closestPos
			es.linkNode, es.linkSlot = nodeIndex, closest
			if es.linkInput {
				// Grabbing a connected input picks its link up.
				if li := graphLinkInto(d, nodeIndex, closest); li >= 0 {
					d.DelLink(li)
				}
			}
		}
	}
	return over, inputOver, outputOver
}

// graphLinkInto finds the link feeding an input slot, or -1.
func graphLinkInto(d GraphDelegate, node, slot int) int {
	for li := range d.LinkCount() {
		if l := d.Link(li); l.ToNode == node && l.ToSlot == slot {
			return li
		}
	}
	return -1
}

// graphConnect adds link unless it exists, replacing what fed its input.
func graphConnect(d GraphDelegate, link GraphLink) {
	for li := range d.LinkCount() {
		if d.Link(li) == link {
			return
		}
	}
	if li := graphLinkInto(d, link.ToNode, link.ToSlot); li >= 0 {
		d.DelLink(li)
	}
	d.AddLink(link)
}

// graphDrawNode submits the node as an invisible button and draws it. It
// reports whether the node is hovered.
func (ctx *Context) graphDrawNode(es *graphEditorState, d GraphDelegate, nodeIndex int, offset Vec2, factor float32, overSlot bool, opts *GraphOptions, inMinimap bool, viewport Rect) bool {
	io := &ctx.IO
	dl := ctx.CurrentWindow.DrawList
	node := d.Node(nodeIndex)
	tmpl := d.Template(node.Template)
	nodeMin := offset.Add(node.Rect.Min.Mul(factor))
	nodeSize := node.Rect.Size().Mul(factor)
	nodeMax := nodeMin.Add(nodeSize)

	anyActiveBefore := ctx.IsAnyItemActive()
	ctx.SetCursorScreenPos(nodeMin)
	button := Vec2{
		maxf(minf(viewport.Max.X, nodeMax.X)-nodeMin.X, 1),
		maxf(minf(viewport.Max.Y, nodeMax.Y)-nodeMin.Y, 1),
	}
	ctx.InvisibleButton("node", button, ButtonFlagsNone)
	moving := ctx.IsItemActive()
	widgetsActive := !anyActiveBefore && ctx.IsAnyItemActive()
	hovered := ctx.IsItemHovered(HoveredFlagsNone) && es.op == graphOpNone && !overSlot

	if ctx.IsWindowFocused(FocusedNone) && (widgetsActive || moving) && !inMinimap && !node.Selected {
		if !io.KeyShift {
			for i := range d.NodeCount() {
				d.SelectNode(i, false)
			}
		}
		d.SelectNode(nodeIndex, true)
		node.Selected = true
	}
	if moving && io.MouseDown[MouseButtonLeft] && hovered && !inMinimap {
		es.op = graphOpMovingNodes
	}

	border, thickness := opts.NodeBorderColor, opts.BorderThickness
	if node.Selected {
		border, thickness = opts.SelectedNodeBorderColor, opts.BorderSelectionThickness
	}
	dl.AddRect(nodeMin, nodeMax, border, opts.Rounding, DrawCornerAll, thickness)
	bg := tmpl.BackgroundColor
	if hovered {
		bg = tmpl.BackgroundColorOver
	}
	dl.AddRectFilled(nodeMin, nodeMax, bg, opts.Rounding, DrawCornerAll)

	headerMax := Vec2{nodeMax.X, nodeMin.Y + graphHeaderHeight}
	dl.AddRectFilled(nodeMin, headerMax, tmpl.HeaderColor, opts.Rounding, DrawCornerTop)
	dl.PushClipRect(nodeMin, headerMax, true)
	dl.AddText(ctx.Font, ctx.FontSize, nodeMin.Add(Vec2{2, 2}), colorBlack, node.Name, 0, nil)
	dl.PopClipRect()

	body := Rect{
		nodeMin.Add(Vec2{opts.Rounding, graphHeaderHeight + opts.Rounding}),
		nodeMax.Sub(Vec2{opts.Rounding, opts.Rounding}),
	}
	if body.Max.X > body.Min.X && body.Max.Y > body.Min.Y {
		d.CustomDraw(dl, body, nodeIndex)
	}
	return hovered
}

// graphQuadSelection starts a selection quad on the empty canvas and, on
// release, selects the nodes it touches.
func (ctx *Context) graphQuadSelection(es *graphEditorState, d GraphDelegate, dl *DrawList, offset Vec2, factor float32, region Rect, opts *GraphOptions) {
	if !opts.AllowQuadSelection {
		return
	}
	io := &ctx.IO
	focused := ctx.IsWindowFocused(FocusedNone)
	switch {
	case es.op == graphOpQuadSelecting && focused:
		quad := Rect{minV2(es.quadStart, io.MousePos), maxV2(es.quadStart, io.MousePos)}
		dl.AddRectFilled(quad.Min, quad.Max, opts.QuadSelection, 1, DrawCornerAll)
		dl.AddRect(quad.Min, quad.Max, opts.QuadSelectionBorder, 1, DrawCornerAll, 1)
		if io.MouseDown[MouseButtonLeft] {
			return
		}
		es.op = graphOpNone
		for i := range d.NodeCount() {
			n := d.Node(i)
			switch {
			case quad.Overlaps(graphNodeRect(&n, factor).Translate(offset)):
				d.SelectNode(i, !io.KeyCtrl)
			case !io.KeyShift && !io.KeyCtrl:
				d.SelectNode(i, false)
			}
		}
	case es.op == graphOpNone && io.MouseDown[MouseButtonLeft] && focused && region.Contains(io.MousePos):
		es.op = graphOpQuadSelecting
		es.quadStart = io.MousePos
	}
}

// graphMinimap maps the world bounds of the graph and the view into the
// minimap rectangle.
type graphMinimap struct {
	screen           Rect
	world            Rect // nodes with a margin, plus the view
	view             Rect // visible world rect
	middleWorld      Vec2
	middleScreen     Vec2
	factor           float32
	canvasWorldScale Vec2 // canvas size in world units
}

func graphMinimapLayout(d GraphDelegate, view *GraphView, opts *GraphOptions, region Rect) (graphMinimap, bool) {
	var mm graphMinimap
	if opts.Minimap.Max.Sub(opts.Minimap.Min).LengthSqr() <= floatEpsilon*floatEpsilon || d.NodeCount() == 0 {
		return mm, false
	}
	margin := Vec2{graphMinimapMargin, graphMinimapMargin}
	lo, hi := Vec2{floatMax, floatMax}, Vec2{-floatMax, -floatMax}
	for i := range d.NodeCount() {
		n := d.Node(i)
		lo = minV2(lo, n.Rect.Min.Sub(margin))
		hi = maxV2(hi, n.Rect.Max.Add(margin))
	}
	canvas := region.Size()
	mm.canvasWorldScale = canvas.Mul(1 / view.Factor)
	viewMin := Vec2{-view.Position.X, -view.Position.Y}
	mm.view = Rect{viewMin, viewMin.Add(mm.canvasWorldScale)}
	mm.world = Rect{minV2(lo, mm.view.Min), maxV2(hi, mm.view.Max)}

	mm.screen = Rect{region.Min.Add(opts.Minimap.Min.MulV(canvas)), region.Min.Add(opts.Minimap.Max.MulV(canvas))}
	worldSize, screenSize := mm.world.Size(), mm.screen.Size()
	mm.middleWorld, mm.middleScreen = mm.world.Center(), mm.screen.Center()
	mm.factor = minf(minf(screenSize.Y/worldSize.Y, screenSize.X/worldSize.X), 1)
	return mm, true
}

func (mm *graphMinimap) toScreen(p Vec2) Vec2 {
	return p.Sub(mm.middleWorld).Mul(mm.factor).Add(mm.middleScreen)
}

func (mm *graphMinimap) toWorld(p Vec2) Vec2 {
	return p.Sub(mm.middleScreen).Mul(1 / mm.factor).Add(mm.middleWorld)
}

// jump centers the view on the world point under at, kept inside the
// minimap bounds.
func (mm *graphMinimap) jump(view *GraphView, at Vec2) {
	half := mm.canvasWorldScale.Mul(0.5)
	vmin := mm.toWorld(at).Sub(half)
	vmin.X = clampf(vmin.X, mm.world.Min.X, maxf(mm.world.Max.X-mm.canvasWorldScale.X, mm.world.Min.X))
	vmin.Y = clampf(vmin.Y, mm.world.Min.Y, maxf(mm.world.Max.Y-mm.canvasWorldScale.Y, mm.world.Min.Y))
	view.Position = Vec2{-vmin.X, -vmin.Y}
}

func (mm *graphMinimap) draw(d GraphDelegate, dl *DrawList, opts *GraphOptions) {
	dl.AddRectFilled(mm.screen.Min, mm.screen.Max, RGBA(30, 30, 30, 200), 3, DrawCornerAll)
	for i := range d.NodeCount() {
		n := d.Node(i)
		tmpl := d.Template(n.Template)
		a, b := mm.toScreen(n.Rect.Min), mm.toScreen(n.Rect.Max)
		dl.AddRectFilled(a, b, tmpl.BackgroundColor, 1, DrawCornerAll)
		if n.Selected {
			dl.AddRect(a, b, opts.SelectedNodeBorderColor, 1, DrawCornerAll, 1)
		}
	}
	a, b := mm.toScreen(mm.view.Min), mm.toScreen(mm.view.Max)
	dl.AddRectFilled(a, b, RGBA(255, 255, 255, 32), 1, DrawCornerAll)
	dl.AddRect(a, b, RGBA(255, 255, 255, 128), 1, DrawCornerAll, 1)
}

// GraphEditorOptions edits opts with standard widgets and reports whether
// anything changed.
func (ctx *Context) GraphEditorOptions(opts *GraphOptions) bool {
	updated := false
	if ctx.CollapsingHeader("Colors", nil, TreeNodeFlagsNone) {
		colors := []struct {
			label string
			col   *uint32
		}{
			{"Background", &opts.BackgroundColor},
			{"Grid", &opts.GridColor},
			{"Selected Node Border", &opts.SelectedNodeBorderColor},
			{"Node Border", &opts.NodeBorderColor},
			{"Quad Selection", &opts.QuadSelection},
			{"Quad Selection Border", &opts.QuadSelectionBorder},
			{"Default Slot", &opts.DefaultSlotColor},
			{"Frame when has focus", &opts.FrameFocus},
		}
		for _, c := range colors {
			v := ColorConvertU32ToFloat4(*c.col)
			rgba := [4]float32{v.X, v.Y, v.Z, v.W}
			if ctx.ColorEdit4(c.label, &rgba, ColorEditFlagsNone) {
				*c.col = ColorConvertFloat4ToU32(Vec4{rgba[0], rgba[1], rgba[2], rgba[3]})
				updated = true
			}
		}
	}

	if ctx.CollapsingHeader("Options", nil, TreeNodeFlagsNone) {
		minimap := opts.Minimap.Array()
		if ctx.InputFloat4("Minimap", &minimap) {
			opts.Minimap = R(minimap[0], minimap[1], minimap[2], minimap[3])
			updated = true
		}
		floats := []struct {
			label string
			v     *float32
		}{
			{"Line Thickness", &opts.LineThickness},
			{"Grid Size", &opts.GridSize},
			{"Rounding", &opts.Rounding},
			{"Zoom Ratio", &opts.ZoomRatio},
			{"Zoom Lerp Factor", &opts.ZoomLerpFactor},
			{"Border Selection Thickness", &opts.BorderSelectionThickness},
			{"Border Thickness", &opts.BorderThickness},
			{"Slot Radius", &opts.NodeSlotRadius},
			{"Slot Hover Factor", &opts.NodeSlotHoverFactor},
		}
		for _, f := range floats {
			updated = ctx.InputFloat(f.label, f.v) || updated
		}
		zoom := [2]float32{opts.MinZoom, opts.MaxZoom}
		if ctx.InputFloat2("Zoom min/max", &zoom) {
			opts.MinZoom, opts.MaxZoom = zoom[0], zoom[1]
			updated = true
		}
		if ctx.RadioButton("Curved Links", opts.LinksAsCurves) {
			opts.LinksAsCurves, updated = true, true
		}
		if ctx.RadioButton("Straight Links", !opts.LinksAsCurves) {
			opts.LinksAsCurves, updated = false, true
		}
		updated = ctx.Checkbox("Allow Quad Selection", &opts.AllowQuadSelection) || updated
		updated = ctx.Checkbox("Render Grid", &opts.RenderGrid) || updated
		updated = ctx.Checkbox("Draw IO names on hover", &opts.DrawIONameOnHover) || updated
	}
	return updated
}
