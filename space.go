package anchor

import (
	"fmt"
	"slices"
)

// SpaceKind is the closed set of editor spaces an area can host.
type SpaceKind int

const (
	SpaceView3D SpaceKind = iota
	SpaceOutliner
	SpaceProperties
	SpaceText
)

func (k SpaceKind) String() string {
	switch k {
	case SpaceView3D:
		return "View3D"
	case SpaceOutliner:
		return "Outliner"
	case SpaceProperties:
		return "Properties"
	case SpaceText:
		return "Text"
	}
	return fmt.Sprintf("SpaceKind(%d)", int(k))
}

// Space is an editor region drawn by the scene side of the application.
// The engine only knows how to host it; what it draws is up to the
// implementation.
//
// Usage:
//
//	type outliner struct{ anchor.SpaceInfo }
//
//	func (o *outliner) Poll(ctx *anchor.Context) bool { return o.CustomData != nil }
//	func (o *outliner) Draw(ctx *anchor.Context)      { ctx.TreeNode("World") }
//
//	area := anchor.NewSpaceArea("Left")
//	area.Add(&outliner{SpaceInfo: anchor.SpaceInfo{Name: "Outliner", Kind: anchor.SpaceOutliner}})
type Space interface {
	// Info returns the space's identity and opaque payload.
	Info() *SpaceInfo

	// Poll reports whether the space can draw this frame.
	Poll(ctx *Context) bool

	// Draw submits the space's widgets into the current window.
	Draw(ctx *Context)
}

// SpaceInfo is embedded by Space implementations.
type SpaceInfo struct {
	Name       string
	Kind       SpaceKind
	CustomData any // owned by the scene side

	wantFocus bool
}

// Info implements Space.
func (s *SpaceInfo) Info() *SpaceInfo { return s }

// RequestFocus asks the hosting area to select this space and focus its
// window on the next draw.
func (s *SpaceInfo) RequestFocus() { s.wantFocus = true }

// SpaceArea hosts several spaces as tabs of one window.
//
// Ctrl+PgUp and Ctrl+PgDn cycle the tabs while the window is focused.
// Closing a tab removes its space; closing the window hides the area.
type SpaceArea struct {
	Name  string
	Flags WindowFlags

	spaces   []Space
	open     []bool
	active   int
	selectTo int // index to select on the next draw, or -1
	visible  bool
	onClose  func()
}

// NewSpaceArea creates an empty, visible area.
func NewSpaceArea(name string) *SpaceArea {
	return &SpaceArea{Name: name, selectTo: -1, visible: true}
}

// Add appends s as the last tab.
func (a *SpaceArea) Add(s Space) {
	a.spaces = append(a.spaces, s)
	a.open = append(a.open, true)
}

// Remove drops the space called name.
func (a *SpaceArea) Remove(name string) bool {
	i := a.indexOf(name)
	if i < 0 {
		return false
	}
	a.removeAt(i)
	return true
}

func (a *SpaceArea) removeAt(i int) {
	a.spaces = slices.Delete(a.spaces, i, i+1)
	a.open = slices.Delete(a.open, i, i+1)
	if a.active >= len(a.spaces) {
		a.active = max(len(a.spaces)-1, 0)
	}
	a.selectTo = -1
}

func (a *SpaceArea) indexOf(name string) int {
	return slices.IndexFunc(a.spaces, func(s Space) bool { return s.Info().Name == name })
}

// Space returns the space called name, or nil.
func (a *SpaceArea) Space(name string) Space {
	if i := a.indexOf(name); i >= 0 {
		return a.spaces[i]
	}
	return nil
}

// Len returns the number of spaces.
func (a *SpaceArea) Len() int { return len(a.spaces) }

// Active returns the selected space, or nil.
func (a *SpaceArea) Active() Space {
	if a.active < 0 || a.active >= len(a.spaces) {
		return nil
	}
	return a.spaces[a.active]
}

// SetActive selects the space called name on the next draw.
func (a *SpaceArea) SetActive(name string) bool {
	i := a.indexOf(name)
	if i < 0 {
		return false
	}
	a.selectTo = i
	return true
}

// Next selects the following tab, wrapping around.
func (a *SpaceArea) Next() { a.cycle(1) }

// Prev selects the preceding tab, wrapping around.
func (a *SpaceArea) Prev() { a.cycle(-1) }

func (a *SpaceArea) cycle(dir int) {
	if n := len(a.spaces); n > 0 {
		a.selectTo = ((a.active+dir)%n + n) % n
	}
}

// Open shows the area.
func (a *SpaceArea) Open() { a.visible = true }

// Close hides the area and calls the close callback.
func (a *SpaceArea) Close() {
	if !a.visible {
		return
	}
	a.visible = false
	if a.onClose != nil {
		a.onClose()
	}
}

// IsOpen reports whether the area is shown.
func (a *SpaceArea) IsOpen() bool { return a.visible }

// SetOnClose sets the callback run when the area is closed.
func (a *SpaceArea) SetOnClose(fn func()) { a.onClose = fn }

// Draw hosts the area as a window with one tab per space.
func (a *SpaceArea) Draw(ctx *Context) {
	if !a.visible || len(a.spaces) == 0 {
		return
	}
	for i, s := range a.spaces {
		if info := s.Info(); info.wantFocus {
			info.wantFocus = false
			a.selectTo = i
			ctx.SetNextWindowFocus()
		}
	}

	open := true
	if ctx.Begin(a.Name, &open, a.Flags) {
		if ctx.IsWindowFocused(FocusedRootAndChildWindows) && ctx.IO.KeyCtrl {
			switch {
			case ctx.IsKeyPressed(KeyPageUp, true):
				a.Prev()
			case ctx.IsKeyPressed(KeyPageDown, true):
				a.Next()
			}
		}
		a.drawTabs(ctx)
	}
	ctx.End()
	if !open {
		a.Close()
	}

	// Closed tabs go after drawing so indices stay valid during it.
	for i := len(a.spaces) - 1; i >= 0; i-- {
		if !a.open[i] {
			ctx.Logger.Debug("space closed", "area", a.Name, "space", a.spaces[i].Info().Name)
			a.removeAt(i)
		}
	}
}

func (a *SpaceArea) drawTabs(ctx *Context) {
	if !ctx.BeginTabBar("##spaces", TabBarFlagsReorderable|TabBarFlagsFittingPolicyScroll) {
		return
	}
	for i, s := range a.spaces {
		info := s.Info()
		flags := TabItemFlagsNone
		if a.selectTo == i {
			flags |= TabItemFlagsSetSelected
		}
		// Names can repeat across kinds; the kind keeps IDs apart.
		label := fmt.Sprintf("%s###%s/%s", info.Name, info.Kind, info.Name)
		if !ctx.BeginTabItem(label, &a.open[i], flags) {
			continue
		}
		a.active = i
		if s.Poll(ctx) {
			s.Draw(ctx)
		} else {
			ctx.TextDisabled("%s is unavailable", info.Name)
		}
		ctx.EndTabItem()
	}
	ctx.EndTabBar()
	a.selectTo = -1
}

// SpaceRegistry owns the areas of an editor screen and draws them in
// registration order.
type SpaceRegistry struct {
	areas []*SpaceArea
}

// NewSpaceRegistry creates an empty registry.
func NewSpaceRegistry() *SpaceRegistry { return &SpaceRegistry{} }

// Register adds area, replacing one with the same name.
func (r *SpaceRegistry) Register(area *SpaceArea) {
	if i := slices.IndexFunc(r.areas, func(x *SpaceArea) bool { return x.Name == area.Name }); i >= 0 {
		r.areas[i] = area
		return
	}
	r.areas = append(r.areas, area)
}

// Unregister removes the area called name.
func (r *SpaceRegistry) Unregister(name string) bool {
	i := slices.IndexFunc(r.areas, func(x *SpaceArea) bool { return x.Name == name })
	if i < 0 {
		return false
	}
	r.areas = slices.Delete(r.areas, i, i+1)
	return true
}

// Area returns the area called name, or nil.
func (r *SpaceRegistry) Area(name string) *SpaceArea {
	for _, a := range r.areas {
		if a.Name == name {
			return a
		}
	}
	return nil
}

// Areas returns the registered areas in draw order.
func (r *SpaceRegistry) Areas() []*SpaceArea { return r.areas }

// Find returns the first space of kind in any area.
func (r *SpaceRegistry) Find(kind SpaceKind) (Space, *SpaceArea) {
	for _, a := range r.areas {
		for _, s := range a.spaces {
			if s.Info().Kind == kind {
				return s, a
			}
		}
	}
	return nil, nil
}

// Draw draws every open area.
func (r *SpaceRegistry) Draw(ctx *Context) {
	for _, a := range r.areas {
		a.Draw(ctx)
	}
}
