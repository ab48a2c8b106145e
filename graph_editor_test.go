package anchor

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testGraph is a GraphDelegate over plain slices.
type testGraph struct {
	templates   []GraphTemplate
	nodes       []GraphNode
	links       []GraphLink
	deny        bool
	rightClicks [][3]int
	customDraws int
}

func newTestGraph() *testGraph {
	return &testGraph{
		templates: []GraphTemplate{{
			HeaderColor:     RGBA(160, 80, 40, 255),
			BackgroundColor: RGBA(60, 60, 60, 255),
			InputCount:      1,
			OutputCount:     1,
			InputNames:      []string{"in"},
			OutputNames:     []string{"out"},
		}},
		nodes: []GraphNode{
			{Name: "A", Rect: R(20, 20, 120, 100)},
			{Name: "B", Rect: R(200, 20, 300, 100)},
		},
	}
}

func (g *testGraph) AllowedLink(GraphLink) bool { return !g.deny }
func (g *testGraph) SelectNode(i int, sel bool) { g.nodes[i].Selected = sel }
func (g *testGraph) MoveSelectedNodes(delta Vec2) {
	for i := range g.nodes {
		if g.nodes[i].Selected {
			g.nodes[i].Rect = g.nodes[i].Rect.Translate(delta)
		}
	}
}
func (g *testGraph) AddLink(l GraphLink) { g.links = append(g.links, l) }
func (g *testGraph) DelLink(i int)       { g.links = append(g.links[:i], g.links[i+1:]...) }
func (g *testGraph) CustomDraw(*DrawList, Rect, int) {
	g.customDraws++
}
func (g *testGraph) RightClick(node, in, out int) {
	g.rightClicks = append(g.rightClicks, [3]int{node, in, out})
}
func (g *testGraph) TemplateCount() int           { return len(g.templates) }
func (g *testGraph) Template(i int) GraphTemplate { return g.templates[i] }
func (g *testGraph) NodeCount() int               { return len(g.nodes) }
func (g *testGraph) Node(i int) GraphNode         { return g.nodes[i] }
func (g *testGraph) LinkCount() int               { return len(g.links) }
func (g *testGraph) Link(i int) GraphLink         { return g.links[i] }
func (g *testGraph) selected() (out []string) {
	for _, n := range g.nodes {
		if n.Selected {
			out = append(out, n.Name)
		}
	}
	return out
}

// graphHarness submits one editor filling the test window. The canvas
// starts at the window padding, (8, 8).
type graphHarness struct {
	ui    *testUI
	g     *testGraph
	opts  GraphOptions
	view  GraphView
	fit   GraphFit
	frame func(ctx *Context)
}

func newGraphHarness(t *testing.T) *graphHarness {
	h := &graphHarness{ui: newTestUI(t), g: newTestGraph(), opts: DefaultGraphOptions(), view: NewGraphView()}
	h.frame = func(ctx *Context) {
		ctx.GraphEditor("Graph", h.g, &h.opts, &h.view, true, &h.fit)
	}
	h.ui.frame(h.frame)
	return h
}

// drag presses at from, moves to to and releases there.
func (h *graphHarness) drag(from, to Vec2) {
	h.ui.mouseMove(from)
	h.ui.frame(h.frame)
	h.ui.mouseDown()
	h.ui.frame(h.frame)
	h.ui.mouseMove(to)
	h.ui.frame(h.frame)
	h.ui.mouseUp()
	h.ui.frame(h.frame)
}

// Slot centers at zoom 1 with no scroll: A's output at (128, 76), B's input
// at (208, 76). The pointer stays just outside the node bodies.
var (
	graphAOut = V2(130, 76)
	graphBIn  = V2(206, 76)
)

func TestGraphSlotPositions(t *testing.T) {
	g := newTestGraph()
	tmpl := g.templates[0]
	assert.Equal(t, V2(120, 68), graphSlotPos(&g.nodes[0], &tmpl, 0, true, 1))
	assert.Equal(t, V2(200, 68), graphSlotPos(&g.nodes[1], &tmpl, 0, false, 1))
	assert.Equal(t, V2(100, 38), graphSlotPos(&g.nodes[1], &tmpl, 0, false, 0.5))
}

func TestGraphDragCreatesLink(t *testing.T) {
	h := newGraphHarness(t)
	h.drag(graphAOut, graphBIn)
	assert.Empty(t, cmp.Diff([]GraphLink{{FromNode: 0, FromSlot: 0, ToNode: 1, ToSlot: 0}}, h.g.links))

	// The same link again is not duplicated.
	h.drag(graphAOut, graphBIn)
	assert.Len(t, h.g.links, 1)

	// Grabbing the connected input picks the link up; dropping it on empty
	// canvas removes it.
	h.drag(graphBIn, V2(250, 250))
	assert.Empty(t, h.g.links)
}

func TestGraphLinkFromInputSide(t *testing.T) {
	h := newGraphHarness(t)
	h.drag(graphBIn, graphAOut)
	assert.Empty(t, cmp.Diff([]GraphLink{{FromNode: 0, FromSlot: 0, ToNode: 1, ToSlot: 0}}, h.g.links))
}

func TestGraphInputTakesOneLink(t *testing.T) {
	h := newGraphHarness(t)
	h.g.nodes = append(h.g.nodes, GraphNode{Name: "C", Rect: R(20, 140, 120, 220)})
	h.g.links = []GraphLink{{FromNode: 0, FromSlot: 0, ToNode: 1, ToSlot: 0}}
	// C's output sits at (128, 196) on screen.
	h.drag(V2(130, 196), graphBIn)
	assert.Empty(t, cmp.Diff([]GraphLink{{FromNode: 2, FromSlot: 0, ToNode: 1, ToSlot: 0}}, h.g.links))
}

func TestGraphDeniedLink(t *testing.T) {
	h := newGraphHarness(t)
	h.g.deny = true
	h.drag(graphAOut, graphBIn)
	assert.Empty(t, h.g.links)
}

func TestGraphDragMovesSelectedNode(t *testing.T) {
	h := newGraphHarness(t)
	h.g.nodes[1].Selected = true

	h.drag(V2(78, 68), V2(108, 78))
	assert.Equal(t, []string{"A"}, h.g.selected(), "clicking a node selects only it")
	assert.Equal(t, R(50, 30, 150, 110), h.g.nodes[0].Rect)
	assert.Equal(t, R(200, 20, 300, 100), h.g.nodes[1].Rect)
}

func TestGraphQuadSelection(t *testing.T) {
	h := newGraphHarness(t)
	h.drag(V2(340, 200), V2(20, 20))
	assert.Equal(t, []string{"A", "B"}, h.g.selected())

	// A quad touching only B replaces the selection.
	h.drag(V2(340, 200), V2(250, 60))
	assert.Equal(t, []string{"B"}, h.g.selected())

	// Shift adds to it.
	h.ui.ctx.IO.KeyShift = true
	h.drag(V2(100, 200), V2(60, 60))
	h.ui.ctx.IO.KeyShift = false
	assert.Equal(t, []string{"A", "B"}, h.g.selected())

	// Ctrl removes what the quad touches.
	h.ui.ctx.IO.KeyCtrl = true
	h.drag(V2(340, 200), V2(250, 60))
	h.ui.ctx.IO.KeyCtrl = false
	assert.Equal(t, []string{"A"}, h.g.selected())
}

func TestGraphFitAllNodes(t *testing.T) {
	h := newGraphHarness(t)
	h.g.nodes[1].Rect = R(1000, 20, 1100, 100)
	h.fit = GraphFitAllNodes
	h.ui.frame(h.frame)
	assert.Equal(t, GraphFitNone, h.fit)
	assert.Less(t, h.view.Factor, float32(1))
	assert.Equal(t, h.view.Factor, h.view.FactorTarget)

	canvas := R(8, 8, 392, 292)
	offset := canvas.Min.Add(h.view.Position.Mul(h.view.Factor))
	for _, n := range h.g.nodes {
		r := graphNodeRect(&n, h.view.Factor).Translate(offset)
		assert.True(t, canvas.ContainsRect(r), "%s at %v outside %v", n.Name, r, canvas)
	}
}

func TestGraphFitSelectedNodes(t *testing.T) {
	h := newGraphHarness(t)
	h.fit = GraphFitSelectedNodes
	h.ui.frame(h.frame)
	assert.Equal(t, NewGraphView(), h.view, "nothing selected leaves the view")

	h.g.nodes[0].Selected = true
	h.fit = GraphFitSelectedNodes
	h.ui.frame(h.frame)
	// A (20..120, 20..100) widened by 5% of the 384x284 canvas is centered.
	assert.Equal(t, float32(1), h.view.Factor)
	assert.InDelta(t, 192-70, h.view.Position.X, 1e-3)
	assert.InDelta(t, 142-60, h.view.Position.Y, 1e-3)
}

func TestGraphWheelZoomKeepsPointerAnchor(t *testing.T) {
	h := newGraphHarness(t)
	h.opts.ZoomLerpFactor = 1
	mouse := V2(200, 150)
	world := func() Vec2 {
		return mouse.Sub(V2(8, 8)).Mul(1 / h.view.Factor).Sub(h.view.Position)
	}
	h.ui.mouseMove(mouse)
	h.ui.frame(h.frame)
	before := world()

	h.ui.ctx.IO.SetMouseWheel(0, 1)
	h.ui.frame(h.frame)
	assert.InDelta(t, 1.1, h.view.Factor, 1e-5)
	after := world()
	assert.InDelta(t, before.X, after.X, 1e-3)
	assert.InDelta(t, before.Y, after.Y, 1e-3)

	// The target is clamped to MaxZoom.
	h.ui.ctx.IO.SetMouseWheel(0, 1)
	h.ui.frame(h.frame)
	assert.InDelta(t, 1.1, h.view.Factor, 1e-5)
}

func TestGraphMiddleButtonPans(t *testing.T) {
	h := newGraphHarness(t)
	h.ui.mouseMove(V2(200, 250))
	h.ui.frame(h.frame)
	h.ui.ctx.IO.SetMouseButton(MouseButtonMiddle, true)
	h.ui.frame(h.frame)
	h.ui.mouseMove(V2(230, 240))
	h.ui.frame(h.frame)
	h.ui.ctx.IO.SetMouseButton(MouseButtonMiddle, false)
	h.ui.frame(h.frame)
	assert.Equal(t, V2(30, -10), h.view.Position)
}

func TestGraphMinimapJump(t *testing.T) {
	h := newGraphHarness(t)
	h.opts.MaxZoom = 4
	h.view = GraphView{Factor: 4, FactorTarget: 4}
	canvas := R(8, 8, 392, 292)

	mm, ok := graphMinimapLayout(h.g, &h.view, &h.opts, canvas)
	require.True(t, ok)
	target := mm.toScreen(V2(250, 60)).Floor()
	world := mm.toWorld(target)
	h.ui.click(target, h.frame)

	// The view, 96x71 world units at zoom 4, is centered on the click.
	assert.InDelta(t, -(world.X - 48), h.view.Position.X, 1e-3)
	assert.InDelta(t, -(world.Y - 35.5), h.view.Position.Y, 1e-3)
	assert.Empty(t, h.g.selected(), "nodes under the minimap ignore the click")
}

func TestGraphMinimapHiddenWithoutNodes(t *testing.T) {
	opts := DefaultGraphOptions()
	view := NewGraphView()
	_, ok := graphMinimapLayout(&testGraph{}, &view, &opts, R(0, 0, 100, 100))
	assert.False(t, ok)

	opts.Minimap = Rect{}
	_, ok = graphMinimapLayout(newTestGraph(), &view, &opts, R(0, 0, 100, 100))
	assert.False(t, ok)
}

func TestGraphRightClick(t *testing.T) {
	h := newGraphHarness(t)
	rightClick := func(p Vec2) {
		h.ui.mouseMove(p)
		h.ui.frame(h.frame)
		h.ui.ctx.IO.SetMouseButton(MouseButtonRight, true)
		h.ui.frame(h.frame)
		h.ui.ctx.IO.SetMouseButton(MouseButtonRight, false)
		h.ui.frame(h.frame)
	}
	rightClick(V2(78, 68))
	rightClick(graphBIn)
	rightClick(V2(250, 250))
	assert.Equal(t, [][3]int{{0, -1, -1}, {1, 0, -1}, {-1, -1, -1}}, h.g.rightClicks)
}

func TestGraphDisabledOnlyDrawsBackground(t *testing.T) {
	h := newGraphHarness(t)
	h.frame = func(ctx *Context) {
		ctx.GraphEditor("Graph", h.g, &h.opts, &h.view, false, nil)
	}
	h.g.customDraws = 0
	h.drag(graphAOut, graphBIn)
	assert.Empty(t, h.g.links)
	assert.Zero(t, h.g.customDraws)
}

func TestGraphEditorClearDropsPendingLink(t *testing.T) {
	h := newGraphHarness(t)
	h.ui.mouseMove(graphAOut)
	h.ui.frame(h.frame)
	h.ui.mouseDown()
	h.ui.frame(h.frame)
	h.ui.frame(func(ctx *Context) {
		h.frame(ctx)
		ctx.GraphEditorClear("Graph")
	})
	h.ui.mouseMove(graphBIn)
	h.ui.frame(h.frame)
	h.ui.mouseUp()
	h.ui.frame(h.frame)
	assert.Empty(t, h.g.links)
}

func TestGraphStraightLinkRoutes(t *testing.T) {
	level := graphStraightLink(V2(0, 0), V2(100, 0.5), 1)
	assert.Len(t, level, 3)

	diagonal := graphStraightLink(V2(0, 0), V2(100, 40), 1)
	require.Len(t, diagonal, 4)
	assert.Equal(t, V2(20, 20), diagonal[1])
	assert.Equal(t, V2(80, 20), diagonal[2])

	backwards := graphStraightLink(V2(100, 0), V2(0, 40), 1)
	require.Len(t, backwards, 6)
	assert.Equal(t, V2(112, 0), backwards[1])
	assert.Equal(t, V2(-12, 40), backwards[4])
}

func TestGraphEditorOptionsRenders(t *testing.T) {
	ui := newTestUI(t)
	opts := DefaultGraphOptions()
	var changed bool
	ui.frame(func(ctx *Context) {
		ctx.SetNextItemOpen(true, CondAlways)
		changed = ctx.GraphEditorOptions(&opts)
	})
	assert.False(t, changed)
	assert.Equal(t, DefaultGraphOptions(), opts)
}

func TestBezierCubicEndsOnItsPoints(t *testing.T) {
	dl := AcquireDrawList("test")
	defer ReleaseDrawList(dl)
	dl.PathLineTo(V2(0, 0))
	dl.PathBezierCubicCurveTo(V2(10, 0), V2(20, 10), V2(30, 10), 6)
	require.Len(t, dl.path, 7)
	assert.Equal(t, V2(30, 10), dl.path[6])
	assert.InDelta(t, 15, dl.path[3].X, 1e-4)
	assert.InDelta(t, 5, dl.path[3].Y, 1e-4)

	dl.PathStroke(colorBlack, false, 1)
	assert.Empty(t, dl.path)
	assert.NotEmpty(t, dl.IdxBuffer)
}
