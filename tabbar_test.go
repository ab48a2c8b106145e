package anchor

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShrinkWidths(t *testing.T) {
	tests := []struct {
		name   string
		widths []float32
		excess float32
		want   []float32
	}{
		{name: "widest first", widths: []float32{100, 80, 60}, excess: 50, want: []float32{65, 65, 60}},
		{name: "even split", widths: []float32{40, 40}, excess: 20, want: []float32{30, 30}},
		{name: "remainder to lowest index", widths: []float32{10, 10, 10}, excess: 1, want: []float32{10, 10, 9}},
		{name: "single item floors at one", widths: []float32{50}, excess: 100, want: []float32{1}},
		{name: "no excess", widths: []float32{30, 20}, excess: 0, want: []float32{30, 20}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := make([]ShrinkWidthItem, len(tt.widths))
			var before float32
			for i, w := range tt.widths {
				items[i] = ShrinkWidthItem{Index: i, Width: w}
				before += w
			}
			ShrinkWidths(items, tt.excess)

			got := make([]float32, len(items))
			var after float32
			for i, it := range items {
				assert.Equal(t, i, it.Index, "items come back in index order")
				got[i] = it.Width
				after += it.Width
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("widths mismatch (-want +got):\n%s", diff)
			}
			if len(items) > 1 {
				assert.InDelta(t, before-tt.excess, after, 0.01, "total shrinks by excess")
			}
		})
	}
}

func newReorderBar(flags ...TabItemFlags) *TabBar {
	tb := &TabBar{Flags: TabBarFlagsReorderable, BarRect: R(10, 0, 400, 20)}
	for i, name := range []string{"A", "B", "C"} {
		tab := newTabItem(HashStr(name, 0))
		tab.Name = name
		tab.Offset = float32(i) * 54
		tab.Width = 50
		if i < len(flags) {
			tab.Flags = flags[i]
		}
		tb.Tabs = append(tb.Tabs, tab)
	}
	return tb
}

func tabNames(tb *TabBar) []string {
	names := make([]string, len(tb.Tabs))
	for i := range tb.Tabs {
		names[i] = tb.Tabs[i].Name
	}
	return names
}

func TestTabBarReorderFromMousePos(t *testing.T) {
	tb := newReorderBar()
	tb.QueueReorderFromMousePos(&tb.Tabs[0], 10+54+40, 4)
	assert.Equal(t, 1, tb.ReorderRequestOffset)
	require.True(t, tb.ProcessReorder())
	assert.Equal(t, []string{"B", "A", "C"}, tabNames(tb))

	// Back to the front.
	tb.QueueReorderFromMousePos(&tb.Tabs[1], 5, 4)
	require.True(t, tb.ProcessReorder())
	assert.Equal(t, []string{"A", "B", "C"}, tabNames(tb))
}

func TestTabBarReorderStopsAtFixedTabs(t *testing.T) {
	tb := newReorderBar(0, 0, TabItemFlagsNoReorder)
	tb.QueueReorderFromMousePos(&tb.Tabs[0], 10+108+40, 4)
	assert.Equal(t, 1, tb.ReorderRequestOffset, "scan stops before the fixed tab")

	tb.QueueReorder(&tb.Tabs[1], 1)
	assert.False(t, tb.ProcessReorder())
	assert.Equal(t, []string{"A", "B", "C"}, tabNames(tb))
}

func TestTabBarReorderKeepsSections(t *testing.T) {
	tb := newReorderBar(TabItemFlagsLeading)
	tb.QueueReorder(&tb.Tabs[0], 1)
	assert.False(t, tb.ProcessReorder())

	tb.QueueReorder(&tb.Tabs[1], 5)
	assert.False(t, tb.ProcessReorder(), "out of range")
	assert.Equal(t, []string{"A", "B", "C"}, tabNames(tb))
}

func TestTabBarNotReorderable(t *testing.T) {
	tb := newReorderBar()
	tb.Flags = 0
	tb.QueueReorderFromMousePos(&tb.Tabs[0], 300, 4)
	assert.Zero(t, tb.ReorderRequestTabID)
}

func TestTabBarRemoveTabForgetsSelection(t *testing.T) {
	tb := newReorderBar()
	b := tb.Tabs[1].ID
	tb.SelectedTabID, tb.VisibleTabID, tb.NextSelectedTabID = b, b, b

	tb.RemoveTab(b)
	assert.Equal(t, []string{"A", "C"}, tabNames(tb))
	assert.Nil(t, tb.FindTab(b))
	assert.Zero(t, tb.SelectedTabID)
	assert.Zero(t, tb.VisibleTabID)
	assert.Zero(t, tb.NextSelectedTabID)
}

func TestTabBarCloseUnsavedOnlySelects(t *testing.T) {
	tb := newReorderBar(0, TabItemFlagsUnsavedDocument)
	tb.VisibleTabID = tb.Tabs[0].ID

	tb.closeTab(&tb.Tabs[1])
	assert.False(t, tb.Tabs[1].WantClose)
	assert.Equal(t, tb.Tabs[1].ID, tb.NextSelectedTabID)

	tb.closeTab(&tb.Tabs[0])
	assert.True(t, tb.Tabs[0].WantClose)
	assert.Zero(t, tb.SelectedTabID)
}

func TestTabBarSelectsClickedTab(t *testing.T) {
	ui := newTestUI(t)
	var second itemRect
	var visible []string
	bar := func(ctx *Context) {
		visible = visible[:0]
		if ctx.BeginTabBar("Tabs", TabBarFlagsNone) {
			for i, label := range []string{"One", "Two"} {
				open := ctx.BeginTabItem(label, nil, 0)
				if i == 1 {
					second.track(ctx)
				}
				if open {
					visible = append(visible, label)
					ctx.Text("%s contents", label)
					ctx.EndTabItem()
				}
			}
			ctx.EndTabBar()
		}
	}

	ui.frame(bar)
	ui.frame(bar)
	assert.Equal(t, []string{"One"}, visible)

	ui.click(second.Center(), bar)
	ui.frame(bar)
	assert.Equal(t, []string{"Two"}, visible)
}

func TestTabBarDragReorders(t *testing.T) {
	ui := newTestUI(t)
	var first, last itemRect
	var barID ID
	bar := func(ctx *Context) {
		barID = ctx.GetID("Tabs")
		if !ctx.BeginTabBar("Tabs", TabBarFlagsReorderable) {
			return
		}
		for i, label := range []string{"A", "B", "C"} {
			open := ctx.BeginTabItem(label, nil, 0)
			switch i {
			case 0:
				first.track(ctx)
			case 2:
				last.track(ctx)
			}
			if open {
				ctx.EndTabItem()
			}
		}
		ctx.EndTabBar()
	}

	ui.frame(bar)
	ui.mouseMove(first.Center())
	ui.frame(bar)
	ui.mouseDown()
	ui.frame(bar)

	// Dragging A over C queues the move; the next layout applies it.
	ui.mouseMove(last.Center())
	ui.frame(bar)
	ui.frame(bar)
	ui.mouseUp()
	ui.frame(bar)

	tb := ui.ctx.tabBars.GetByKey(barID)
	require.NotNil(t, tb)
	if diff := cmp.Diff([]string{"B", "C", "A"}, tabNames(tb)); diff != "" {
		t.Errorf("tab order (-want +got):\n%s", diff)
	}
	assert.Equal(t, tb.Tabs[2].ID, tb.SelectedTabID, "the dragged tab stays selected")
}
