package anchor

// Col indexes Style.Colors.
type Col int

const (
	ColText Col = iota
	ColTextDisabled
	ColWindowBg
	ColChildBg
	ColPopupBg
	ColBorder
	ColBorderShadow
	ColFrameBg
	ColFrameBgHovered
	ColFrameBgActive
	ColTitleBg
	ColTitleBgActive
	ColTitleBgCollapsed
	ColMenuBarBg
	ColScrollbarBg
	ColScrollbarGrab
	ColScrollbarGrabHovered
	ColScrollbarGrabActive
	ColCheckMark
	ColSliderGrab
	ColSliderGrabActive
	ColButton
	ColButtonHovered
	ColButtonActive
	ColHeader
	ColHeaderHovered
	ColHeaderActive
	ColSeparator
	ColSeparatorHovered
	ColSeparatorActive
	ColResizeGrip
	ColResizeGripHovered
	ColResizeGripActive
	ColTab
	ColTabHovered
	ColTabActive
	ColTabUnfocused
	ColTabUnfocusedActive
	ColPlotLines
	ColPlotLinesHovered
	ColPlotHistogram
	ColPlotHistogramHovered
	ColTextSelectedBg
	ColDragDropTarget
	ColNavHighlight
	ColModalWindowDimBg
	ColCount
)

var colNames = [ColCount]string{
	"Text", "TextDisabled", "WindowBg", "ChildBg", "PopupBg", "Border", "BorderShadow",
	"FrameBg", "FrameBgHovered", "FrameBgActive", "TitleBg", "TitleBgActive", "TitleBgCollapsed",
	"MenuBarBg", "ScrollbarBg", "ScrollbarGrab", "ScrollbarGrabHovered", "ScrollbarGrabActive",
	"CheckMark", "SliderGrab", "SliderGrabActive", "Button", "ButtonHovered", "ButtonActive",
	"Header", "HeaderHovered", "HeaderActive", "Separator", "SeparatorHovered", "SeparatorActive",
	"ResizeGrip", "ResizeGripHovered", "ResizeGripActive", "Tab", "TabHovered", "TabActive",
	"TabUnfocused", "TabUnfocusedActive", "PlotLines", "PlotLinesHovered", "PlotHistogram",
	"PlotHistogramHovered", "TextSelectedBg", "DragDropTarget", "NavHighlight", "ModalWindowDimBg",
}

// String returns the style color name.
func (c Col) String() string {
	if c >= 0 && c < ColCount {
		return colNames[c]
	}
	return "Unknown"
}

// Style defines the visual appearance of UI elements.
type Style struct {
	Alpha                     float32
	WindowPadding             Vec2
	WindowRounding            float32
	WindowBorderSize          float32
	WindowMinSize             Vec2
	WindowTitleAlign          Vec2
	ChildRounding             float32
	ChildBorderSize           float32
	PopupRounding             float32
	PopupBorderSize           float32
	FramePadding              Vec2
	FrameRounding             float32
	FrameBorderSize           float32
	ItemSpacing               Vec2
	ItemInnerSpacing          Vec2
	TouchExtraPadding         Vec2
	IndentSpacing             float32
	ColumnsMinSpacing         float32
	ScrollbarSize             float32
	ScrollbarRounding         float32
	GrabMinSize               float32
	GrabRounding              float32
	LogSliderDeadzone         float32
	TabRounding               float32
	TabBorderSize             float32
	TabMinWidthForCloseButton float32
	ColorButtonPosition       Dir
	ButtonTextAlign           Vec2
	SelectableTextAlign       Vec2
	DisplayWindowPadding      Vec2
	DisplaySafeAreaPadding    Vec2
	Colors                    [ColCount]Vec4
}

// DefaultStyle returns the default dark style.
func DefaultStyle() Style {
	s := Style{
		Alpha:                     1.0,
		WindowPadding:             Vec2{8, 8},
		WindowRounding:            0,
		WindowBorderSize:          1,
		WindowMinSize:             Vec2{32, 32},
		WindowTitleAlign:          Vec2{0, 0.5},
		ChildRounding:             0,
		ChildBorderSize:           1,
		PopupRounding:             0,
		PopupBorderSize:           1,
		FramePadding:              Vec2{4, 3},
		FrameRounding:             0,
		FrameBorderSize:           0,
		ItemSpacing:               Vec2{8, 4},
		ItemInnerSpacing:          Vec2{4, 4},
		IndentSpacing:             21,
		ColumnsMinSpacing:         6,
		ScrollbarSize:             14,
		ScrollbarRounding:         9,
		GrabMinSize:               10,
		GrabRounding:              0,
		LogSliderDeadzone:         4,
		TabRounding:               4,
		TabBorderSize:             0,
		TabMinWidthForCloseButton: 0,
		ColorButtonPosition:       DirRight,
		ButtonTextAlign:           Vec2{0.5, 0.5},
		SelectableTextAlign:       Vec2{0, 0},
		DisplayWindowPadding:      Vec2{19, 19},
		DisplaySafeAreaPadding:    Vec2{3, 3},
	}
	StyleColorsDark(&s)
	return s
}

// LightStyle returns the default layout with light colors.
func LightStyle() Style {
	s := DefaultStyle()
	StyleColorsLight(&s)
	return s
}

// StyleColorsDark fills the dark color table.
func StyleColorsDark(s *Style) {
	c := &s.Colors
	c[ColText] = Vec4{1.00, 1.00, 1.00, 1.00}
	c[ColTextDisabled] = Vec4{0.50, 0.50, 0.50, 1.00}
	c[ColWindowBg] = Vec4{0.06, 0.06, 0.06, 0.94}
	c[ColChildBg] = Vec4{0.00, 0.00, 0.00, 0.00}
	c[ColPopupBg] = Vec4{0.08, 0.08, 0.08, 0.94}
	c[ColBorder] = Vec4{0.43, 0.43, 0.50, 0.50}
	c[ColBorderShadow] = Vec4{0.00, 0.00, 0.00, 0.00}
	c[ColFrameBg] = Vec4{0.16, 0.29, 0.48, 0.54}
	c[ColFrameBgHovered] = Vec4{0.26, 0.59, 0.98, 0.40}
	c[ColFrameBgActive] = Vec4{0.26, 0.59, 0.98, 0.67}
	c[ColTitleBg] = Vec4{0.04, 0.04, 0.04, 1.00}
	c[ColTitleBgActive] = Vec4{0.16, 0.29, 0.48, 1.00}
	c[ColTitleBgCollapsed] = Vec4{0.00, 0.00, 0.00, 0.51}
	c[ColMenuBarBg] = Vec4{0.14, 0.14, 0.14, 1.00}
	c[ColScrollbarBg] = Vec4{0.02, 0.02, 0.02, 0.53}
	c[ColScrollbarGrab] = Vec4{0.31, 0.31, 0.31, 1.00}
	c[ColScrollbarGrabHovered] = Vec4{0.41, 0.41, 0.41, 1.00}
	c[ColScrollbarGrabActive] = Vec4{0.51, 0.51, 0.51, 1.00}
	c[ColCheckMark] = Vec4{0.26, 0.59, 0.98, 1.00}
	c[ColSliderGrab] = Vec4{0.24, 0.52, 0.88, 1.00}
	c[ColSliderGrabActive] = Vec4{0.26, 0.59, 0.98, 1.00}
	c[ColButton] = Vec4{0.26, 0.59, 0.98, 0.40}
	c[ColButtonHovered] = Vec4{0.26, 0.59, 0.98, 1.00}
	c[ColButtonActive] = Vec4{0.06, 0.53, 0.98, 1.00}
	c[ColHeader] = Vec4{0.26, 0.59, 0.98, 0.31}
	c[ColHeaderHovered] = Vec4{0.26, 0.59, 0.98, 0.80}
	c[ColHeaderActive] = Vec4{0.26, 0.59, 0.98, 1.00}
	c[ColSeparator] = c[ColBorder]
	c[ColSeparatorHovered] = Vec4{0.10, 0.40, 0.75, 0.78}
	c[ColSeparatorActive] = Vec4{0.10, 0.40, 0.75, 1.00}
	c[ColResizeGrip] = Vec4{0.26, 0.59, 0.98, 0.20}
	c[ColResizeGripHovered] = Vec4{0.26, 0.59, 0.98, 0.67}
	c[ColResizeGripActive] = Vec4{0.26, 0.59, 0.98, 0.95}
	c[ColTab] = lerpV4(c[ColHeader], c[ColTitleBgActive], 0.80)
	c[ColTabHovered] = c[ColHeaderHovered]
	c[ColTabActive] = lerpV4(c[ColHeaderActive], c[ColTitleBgActive], 0.60)
	c[ColTabUnfocused] = lerpV4(c[ColTab], c[ColTitleBg], 0.80)
	c[ColTabUnfocusedActive] = lerpV4(c[ColTabActive], c[ColTitleBg], 0.40)
	c[ColPlotLines] = Vec4{0.61, 0.61, 0.61, 1.00}
	c[ColPlotLinesHovered] = Vec4{1.00, 0.43, 0.35, 1.00}
	c[ColPlotHistogram] = Vec4{0.90, 0.70, 0.00, 1.00}
	c[ColPlotHistogramHovered] = Vec4{1.00, 0.60, 0.00, 1.00}
	c[ColTextSelectedBg] = Vec4{0.26, 0.59, 0.98, 0.35}
	c[ColDragDropTarget] = Vec4{1.00, 1.00, 0.00, 0.90}
	c[ColNavHighlight] = Vec4{0.26, 0.59, 0.98, 1.00}
	c[ColModalWindowDimBg] = Vec4{0.80, 0.80, 0.80, 0.35}
}

// StyleColorsLight fills the light color table.
func StyleColorsLight(s *Style) {
	c := &s.Colors
	c[ColText] = Vec4{0.00, 0.00, 0.00, 1.00}
	c[ColTextDisabled] = Vec4{0.60, 0.60, 0.60, 1.00}
	c[ColWindowBg] = Vec4{0.94, 0.94, 0.94, 1.00}
	c[ColChildBg] = Vec4{0.00, 0.00, 0.00, 0.00}
	c[ColPopupBg] = Vec4{1.00, 1.00, 1.00, 0.98}
	c[ColBorder] = Vec4{0.00, 0.00, 0.00, 0.30}
	c[ColBorderShadow] = Vec4{0.00, 0.00, 0.00, 0.00}
	c[ColFrameBg] = Vec4{1.00, 1.00, 1.00, 1.00}
	c[ColFrameBgHovered] = Vec4{0.26, 0.59, 0.98, 0.40}
	c[ColFrameBgActive] = Vec4{0.26, 0.59, 0.98, 0.67}
	c[ColTitleBg] = Vec4{0.96, 0.96, 0.96, 1.00}
	c[ColTitleBgActive] = Vec4{0.82, 0.82, 0.82, 1.00}
	c[ColTitleBgCollapsed] = Vec4{1.00, 1.00, 1.00, 0.51}
	c[ColMenuBarBg] = Vec4{0.86, 0.86, 0.86, 1.00}
	c[ColScrollbarBg] = Vec4{0.98, 0.98, 0.98, 0.53}
	c[ColScrollbarGrab] = Vec4{0.69, 0.69, 0.69, 0.80}
	c[ColScrollbarGrabHovered] = Vec4{0.49, 0.49, 0.49, 0.80}
	c[ColScrollbarGrabActive] = Vec4{0.49, 0.49, 0.49, 1.00}
	c[ColCheckMark] = Vec4{0.26, 0.59, 0.98, 1.00}
	c[ColSliderGrab] = Vec4{0.26, 0.59, 0.98, 0.78}
	c[ColSliderGrabActive] = Vec4{0.46, 0.54, 0.80, 0.60}
	c[ColButton] = Vec4{0.26, 0.59, 0.98, 0.40}
	c[ColButtonHovered] = Vec4{0.26, 0.59, 0.98, 1.00}
	c[ColButtonActive] = Vec4{0.06, 0.53, 0.98, 1.00}
	c[ColHeader] = Vec4{0.26, 0.59, 0.98, 0.31}
	c[ColHeaderHovered] = Vec4{0.26, 0.59, 0.98, 0.80}
	c[ColHeaderActive] = Vec4{0.26, 0.59, 0.98, 1.00}
	c[ColSeparator] = Vec4{0.39, 0.39, 0.39, 0.62}
	c[ColSeparatorHovered] = Vec4{0.14, 0.44, 0.80, 0.78}
	c[ColSeparatorActive] = Vec4{0.14, 0.44, 0.80, 1.00}
	c[ColResizeGrip] = Vec4{0.35, 0.35, 0.35, 0.17}
	c[ColResizeGripHovered] = Vec4{0.26, 0.59, 0.98, 0.67}
	c[ColResizeGripActive] = Vec4{0.26, 0.59, 0.98, 0.95}
	c[ColTab] = lerpV4(c[ColHeader], c[ColTitleBgActive], 0.90)
	c[ColTabHovered] = c[ColHeaderHovered]
	c[ColTabActive] = lerpV4(c[ColHeaderActive], c[ColTitleBgActive], 0.60)
	c[ColTabUnfocused] = lerpV4(c[ColTab], c[ColTitleBg], 0.80)
	c[ColTabUnfocusedActive] = lerpV4(c[ColTabActive], c[ColTitleBg], 0.40)
	c[ColPlotLines] = Vec4{0.39, 0.39, 0.39, 1.00}
	c[ColPlotLinesHovered] = Vec4{1.00, 0.43, 0.35, 1.00}
	c[ColPlotHistogram] = Vec4{0.90, 0.70, 0.00, 1.00}
	c[ColPlotHistogramHovered] = Vec4{1.00, 0.45, 0.00, 1.00}
	c[ColTextSelectedBg] = Vec4{0.26, 0.59, 0.98, 0.35}
	c[ColDragDropTarget] = Vec4{0.26, 0.59, 0.98, 0.95}
	c[ColNavHighlight] = c[ColHeaderHovered]
	c[ColModalWindowDimBg] = Vec4{0.20, 0.20, 0.20, 0.35}
}

func lerpV4(a, b Vec4, t float32) Vec4 {
	return Vec4{lerpf(a.X, b.X, t), lerpf(a.Y, b.Y, t), lerpf(a.Z, b.Z, t), lerpf(a.W, b.W, t)}
}

// StyleVar identifies a size field of Style for PushStyleVar.
type StyleVar int

const (
	StyleVarAlpha StyleVar = iota
	StyleVarWindowPadding
	StyleVarWindowRounding
	StyleVarWindowBorderSize
	StyleVarWindowMinSize
	StyleVarWindowTitleAlign
	StyleVarChildRounding
	StyleVarChildBorderSize
	StyleVarPopupRounding
	StyleVarPopupBorderSize
	StyleVarFramePadding
	StyleVarFrameRounding
	StyleVarFrameBorderSize
	StyleVarItemSpacing
	StyleVarItemInnerSpacing
	StyleVarIndentSpacing
	StyleVarScrollbarSize
	StyleVarScrollbarRounding
	StyleVarGrabMinSize
	StyleVarGrabRounding
	StyleVarTabRounding
	StyleVarButtonTextAlign
	StyleVarSelectableTextAlign
	StyleVarCount
)

// styleVarInfo locates a Style field. Exactly one accessor is set.
type styleVarInfo struct {
	name  string
	float func(*Style) *float32
	vec2  func(*Style) *Vec2
}

var styleVarInfos = [StyleVarCount]styleVarInfo{
	{name: "alpha", float: func(s *Style) *float32 { return &s.Alpha }},
	{name: "window_padding", vec2: func(s *Style) *Vec2 { return &s.WindowPadding }},
	{name: "window_rounding", float: func(s *Style) *float32 { return &s.WindowRounding }},
	{name: "window_border_size", float: func(s *Style) *float32 { return &s.WindowBorderSize }},
	{name: "window_min_size", vec2: func(s *Style) *Vec2 { return &s.WindowMinSize }},
	{name: "window_title_align", vec2: func(s *Style) *Vec2 { return &s.WindowTitleAlign }},
	{name: "child_rounding", float: func(s *Style) *float32 { return &s.ChildRounding }},
	{name: "child_border_size", float: func(s *Style) *float32 { return &s.ChildBorderSize }},
	{name: "popup_rounding", float: func(s *Style) *float32 { return &s.PopupRounding }},
	{name: "popup_border_size", float: func(s *Style) *float32 { return &s.PopupBorderSize }},
	{name: "frame_padding", vec2: func(s *Style) *Vec2 { return &s.FramePadding }},
	{name: "frame_rounding", float: func(s *Style) *float32 { return &s.FrameRounding }},
	{name: "frame_border_size", float: func(s *Style) *float32 { return &s.FrameBorderSize }},
	{name: "item_spacing", vec2: func(s *Style) *Vec2 { return &s.ItemSpacing }},
	{name: "item_inner_spacing", vec2: func(s *Style) *Vec2 { return &s.ItemInnerSpacing }},
	{name: "indent_spacing", float: func(s *Style) *float32 { return &s.IndentSpacing }},
	{name: "scrollbar_size", float: func(s *Style) *float32 { return &s.ScrollbarSize }},
	{name: "scrollbar_rounding", float: func(s *Style) *float32 { return &s.ScrollbarRounding }},
	{name: "grab_min_size", float: func(s *Style) *float32 { return &s.GrabMinSize }},
	{name: "grab_rounding", float: func(s *Style) *float32 { return &s.GrabRounding }},
	{name: "tab_rounding", float: func(s *Style) *float32 { return &s.TabRounding }},
	{name: "button_text_align", vec2: func(s *Style) *Vec2 { return &s.ButtonTextAlign }},
	{name: "selectable_text_align", vec2: func(s *Style) *Vec2 { return &s.SelectableTextAlign }},
}

type colorMod struct {
	col    Col
	backup Vec4
}

type styleMod struct {
	idx    StyleVar
	backup [2]float32
}

// PushStyleColor temporarily overrides a single color.
func (ctx *Context) PushStyleColor(idx Col, col Vec4) {
	ctx.colorStack = append(ctx.colorStack, colorMod{col: idx, backup: ctx.Style.Colors[idx]})
	ctx.Style.Colors[idx] = col
}

// PushStyleColorU32 overrides a single color with a packed value.
func (ctx *Context) PushStyleColorU32(idx Col, col uint32) {
	ctx.PushStyleColor(idx, ColorConvertU32ToFloat4(col))
}

// PopStyleColor restores count colors.
func (ctx *Context) PopStyleColor(count int) {
	for ; count > 0; count-- {
		n := len(ctx.colorStack)
		if n == 0 {
			ctx.assert(false, "PopStyleColor: too many pops")
			return
		}
		m := ctx.colorStack[n-1]
		ctx.Style.Colors[m.col] = m.backup
		ctx.colorStack = ctx.colorStack[:n-1]
	}
}

// PushStyleVar overrides a float style field.
func (ctx *Context) PushStyleVar(idx StyleVar, v float32) {
	info := styleVarInfos[idx]
	if info.float == nil {
		ctx.assert(false, "PushStyleVar: variable is not a float", "var", info.name)
		return
	}
	p := info.float(&ctx.Style)
	ctx.styleVarStack = append(ctx.styleVarStack, styleMod{idx: idx, backup: [2]float32{*p, 0}})
	*p = v
}

// PushStyleVarVec2 overrides a Vec2 style field.
func (ctx *Context) PushStyleVarVec2(idx StyleVar, v Vec2) {
	info := styleVarInfos[idx]
	if info.vec2 == nil {
		ctx.assert(false, "PushStyleVarVec2: variable is not a Vec2", "var", info.name)
		return
	}
	p := info.vec2(&ctx.Style)
	ctx.styleVarStack = append(ctx.styleVarStack, styleMod{idx: idx, backup: [2]float32{p.X, p.Y}})
	*p = v
}

// PopStyleVar restores count style fields.
func (ctx *Context) PopStyleVar(count int) {
	for ; count > 0; count-- {
		n := len(ctx.styleVarStack)
		if n == 0 {
			ctx.assert(false, "PopStyleVar: too many pops")
			return
		}
		m := ctx.styleVarStack[n-1]
		info := styleVarInfos[m.idx]
		if info.float != nil {
			*info.float(&ctx.Style) = m.backup[0]
		} else {
			*info.vec2(&ctx.Style) = Vec2{m.backup[0], m.backup[1]}
		}
		ctx.styleVarStack = ctx.styleVarStack[:n-1]
	}
}

// GetColorU32 returns a style color with the global alpha applied.
func (ctx *Context) GetColorU32(idx Col, alphaMul float32) uint32 {
	c := ctx.Style.Colors[idx]
	c.W *= ctx.Style.Alpha * alphaMul
	return ColorConvertFloat4ToU32(c)
}

// GetColorU32Vec applies the global alpha to an arbitrary color.
func (ctx *Context) GetColorU32Vec(c Vec4) uint32 {
	c.W *= ctx.Style.Alpha
	return ColorConvertFloat4ToU32(c)
}

// GetStyleColorVec4 returns the unmodified style color.
func (ctx *Context) GetStyleColorVec4(idx Col) Vec4 {
	return ctx.Style.Colors[idx]
}

// Style returns a copy of the current style.
func (ctx *Context) GetStyle() Style { return ctx.Style }

// SetStyle sets the base style.
func (ctx *Context) SetStyle(style Style) { ctx.Style = style }
