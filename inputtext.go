package anchor

import (
	"strings"
	"unicode/utf8"

	"github.com/chewxy/math32"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// InputTextFlags configure InputText and the text fallback of numeric
// widgets.
type InputTextFlags int

const (
	InputTextFlagsNone                InputTextFlags = 0
	InputTextFlagsCharsDecimal        InputTextFlags = 1 << 0  // 0123456789.+-*/
	InputTextFlagsCharsHexadecimal    InputTextFlags = 1 << 1  // 0123456789ABCDEFabcdef
	InputTextFlagsCharsUppercase      InputTextFlags = 1 << 2  // a..z to A..Z
	InputTextFlagsCharsNoBlank        InputTextFlags = 1 << 3  // no spaces or tabs
	InputTextFlagsAutoSelectAll       InputTextFlags = 1 << 4  // select everything on first focus
	InputTextFlagsEnterReturnsTrue    InputTextFlags = 1 << 5  // return true on Enter instead of on every edit
	InputTextFlagsCallbackCompletion  InputTextFlags = 1 << 6  // callback on Tab
	InputTextFlagsCallbackHistory     InputTextFlags = 1 << 7  // callback on Up/Down
	InputTextFlagsCallbackAlways      InputTextFlags = 1 << 8  // callback every active frame
	InputTextFlagsCallbackCharFilter  InputTextFlags = 1 << 9  // callback per typed rune
	InputTextFlagsAllowTabInput       InputTextFlags = 1 << 10 // Tab types '\t'
	InputTextFlagsCtrlEnterForNewLine InputTextFlags = 1 << 11 // Enter ends, Ctrl+Enter inserts a newline
	InputTextFlagsNoHorizontalScroll  InputTextFlags = 1 << 12
	InputTextFlagsAlwaysOverwrite     InputTextFlags = 1 << 13
	InputTextFlagsReadOnly            InputTextFlags = 1 << 14
	InputTextFlagsPassword            InputTextFlags = 1 << 15 // show '*', disable copy
	InputTextFlagsNoUndoRedo          InputTextFlags = 1 << 16
	InputTextFlagsCharsScientific     InputTextFlags = 1 << 17 // 0123456789.+-*/eE
	InputTextFlagsCallbackResize      InputTextFlags = 1 << 18 // ask the callback for more capacity
	InputTextFlagsCallbackEdit        InputTextFlags = 1 << 19 // callback on any edit

	// Internal
	InputTextFlagsMultiline    InputTextFlags = 1 << 20
	InputTextFlagsNoMarkEdited InputTextFlags = 1 << 21
	InputTextFlagsMergedItem   InputTextFlags = 1 << 22 // laid out by the caller, skips ItemAdd
)

// InputTextCallback is called for the events selected by the Callback*
// flags. For CallbackCharFilter a non-zero return discards the rune.
type InputTextCallback func(data *InputTextCallbackData) int

// InputTextCallbackData is passed to an InputTextCallback. Offsets are in
// bytes into Buf.
type InputTextCallbackData struct {
	EventFlag InputTextFlags // the single Callback* flag being served
	Flags     InputTextFlags
	EventChar rune // CharFilter: rune to insert; set to 0 to discard
	EventKey  Key  // Completion, History: KeyTab, KeyUp or KeyDown

	Buf        string
	BufTextLen int  // Resize: length in bytes the text wants to grow to
	BufSize    int  // capacity in bytes including a terminator, 0 when unlimited
	BufDirty   bool // set when Buf or the cursor changed

	CursorPos      int
	SelectionStart int
	SelectionEnd   int
}

// DeleteChars removes n bytes at pos.
func (d *InputTextCallbackData) DeleteChars(pos, n int) {
	d.Buf = d.Buf[:pos] + d.Buf[pos+n:]
	switch {
	case d.CursorPos >= pos+n:
		d.CursorPos -= n
	case d.CursorPos >= pos:
		d.CursorPos = pos
	}
	d.SelectionStart = d.CursorPos
	d.SelectionEnd = d.CursorPos
	d.BufDirty = true
}

// InsertChars inserts text at pos. Without CallbackResize text that does
// not fit BufSize is dropped.
func (d *InputTextCallbackData) InsertChars(pos int, text string) {
	if d.BufSize > 0 && len(text)+len(d.Buf) >= d.BufSize {
		if d.Flags&InputTextFlagsCallbackResize == 0 {
			return
		}
		d.BufSize = len(d.Buf) + clampi(len(text)*4, 32, maxi(256, len(text))) + 1
	}
	d.Buf = d.Buf[:pos] + text + d.Buf[pos:]
	if d.CursorPos >= pos {
		d.CursorPos += len(text)
	}
	d.SelectionStart = d.CursorPos
	d.SelectionEnd = d.CursorPos
	d.BufDirty = true
}

// SelectAll selects the whole buffer.
func (d *InputTextCallbackData) SelectAll() {
	d.SelectionStart = 0
	d.SelectionEnd = len(d.Buf)
}

// ClearSelection collapses the selection to the end of the buffer.
func (d *InputTextCallbackData) ClearSelection() {
	d.SelectionStart = len(d.Buf)
	d.SelectionEnd = len(d.Buf)
}

// HasSelection reports whether text is selected.
func (d *InputTextCallbackData) HasSelection() bool { return d.SelectionStart != d.SelectionEnd }

// InputTextState is the single live text edit session. TextW is the edit
// buffer; TextA is its UTF-8 form once the session has written back.
type InputTextState struct {
	ID           ID
	TextW        []rune
	TextA        string
	TextAIsValid bool
	InitialTextA string // caller text when the session started
	CurLenA      int    // UTF-8 length of TextW
	BufCapacityA int    // caller capacity in bytes, 0 when unlimited

	ScrollX              float32
	Stb                  textEditState
	CursorAnim           float32
	CursorFollow         bool
	SelectedAllMouseLock bool
	Edited               bool
	Flags                InputTextFlags

	font     Font
	fontSize float32
	macOSX   bool
}

// GetInputTextState returns the live text session if it belongs to id.
func (ctx *Context) GetInputTextState(id ID) *InputTextState {
	if ctx.InputTextState.ID == id && id != 0 {
		return &ctx.InputTextState
	}
	return nil
}

func (st *InputTextState) cursorAnimReset() { st.CursorAnim = -0.30 }

func (st *InputTextState) cursorClamp() {
	n := len(st.TextW)
	st.Stb.cursor = mini(st.Stb.cursor, n)
	st.Stb.selectStart = mini(st.Stb.selectStart, n)
	st.Stb.selectEnd = mini(st.Stb.selectEnd, n)
}

// HasSelection reports whether text is selected.
func (st *InputTextState) HasSelection() bool { return st.Stb.hasSelection() }

// ClearSelection collapses the selection onto the cursor.
func (st *InputTextState) ClearSelection() {
	st.Stb.selectStart = st.Stb.cursor
	st.Stb.selectEnd = st.Stb.cursor
}

// SelectAll selects the whole text and moves the cursor to its end.
func (st *InputTextState) SelectAll() {
	st.Stb.selectStart = 0
	st.Stb.cursor = len(st.TextW)
	st.Stb.selectEnd = st.Stb.cursor
	st.Stb.hasPreferredX = false
}

// Cursor returns the cursor as a rune offset.
func (st *InputTextState) Cursor() int { return st.Stb.cursor }

// Selection returns the ordered selected rune range.
func (st *InputTextState) Selection() (start, end int) {
	return min(st.Stb.selectStart, st.Stb.selectEnd), max(st.Stb.selectStart, st.Stb.selectEnd)
}

// UndoAvail returns how many edits can be undone.
func (st *InputTextState) UndoAvail() int { return st.Stb.undoAvail() }

// RedoAvail returns how many edits can be redone.
func (st *InputTextState) RedoAvail() int { return st.Stb.redoAvail() }

func (st *InputTextState) onKeyPressed(key int) {
	st.Stb.key(st, key)
	st.CursorFollow = true
	st.cursorAnimReset()
}

// setText loads s as the edit buffer, cut to the capacity.
func (st *InputTextState) setText(s string) {
	if st.BufCapacityA > 0 && len(s) >= st.BufCapacityA {
		s = truncateUTF8(s, st.BufCapacityA-1)
	}
	st.TextW = append(st.TextW[:0], []rune(s)...)
	st.CurLenA = len(s)
}

// textEditBuffer

func (st *InputTextState) textLen() int      { return len(st.TextW) }
func (st *InputTextState) charAt(i int) rune { return st.TextW[i] }

func (st *InputTextState) advance(c rune) float32 {
	if st.Flags&InputTextFlagsPassword != 0 {
		c = '*'
	}
	return st.font.GlyphAdvance(c, fontScale(st.font, st.fontSize))
}

func (st *InputTextState) charWidth(lineStart, i int) float32 {
	c := st.TextW[lineStart+i]
	if c == '\n' {
		return textNewlineWidth
	}
	return st.advance(c)
}

func (st *InputTextState) layoutRow(lineStart int) textEditRow {
	size, rest, _ := st.calcTextSizeW(st.TextW[lineStart:], true)
	return textEditRow{
		X1:             size.X,
		BaselineYDelta: size.Y,
		YMax:           size.Y,
		NumChars:       rest,
	}
}

func (st *InputTextState) deleteChars(pos, n int) {
	st.Edited = true
	st.CurLenA -= runesByteLen(st.TextW[pos : pos+n])
	st.TextW = append(st.TextW[:pos], st.TextW[pos+n:]...)
}

func (st *InputTextState) insertChars(pos int, text []rune) bool {
	resizable := st.Flags&InputTextFlagsCallbackResize != 0
	n := runesByteLen(text)
	if !resizable && st.BufCapacityA > 0 && n+st.CurLenA+1 > st.BufCapacityA {
		return false
	}
	st.TextW = append(st.TextW[:pos], append(append([]rune(nil), text...), st.TextW[pos:]...)...)
	st.Edited = true
	st.CurLenA += n
	return true
}

func (st *InputTextState) wordLeft(i int) int {
	if st.Flags&InputTextFlagsPassword != 0 {
		return 0
	}
	return textWordLeft(st.TextW, i)
}

func (st *InputTextState) wordRight(i int) int {
	if st.Flags&InputTextFlagsPassword != 0 {
		return len(st.TextW)
	}
	return textWordRight(st.TextW, i, st.macOSX)
}

// calcTextSizeW measures text, stopping after the first newline when
// stopOnNewLine is set. It returns the size, the runes consumed and the pen
// offset after the last rune.
func (st *InputTextState) calcTextSizeW(text []rune, stopOnNewLine bool) (size Vec2, consumed int, offset Vec2) {
	lineHeight := st.fontSize
	lineWidth := float32(0)
	i := 0
	for i < len(text) {
		c := text[i]
		i++
		if c == '\n' {
			size.X = maxf(size.X, lineWidth)
			size.Y += lineHeight
			lineWidth = 0
			if stopOnNewLine {
				break
			}
			continue
		}
		if c == '\r' {
			continue
		}
		lineWidth += st.advance(c)
	}
	size.X = maxf(size.X, lineWidth)
	offset = Vec2{lineWidth, size.Y + lineHeight}
	// A trailing newline does not add a line.
	if lineWidth > 0 || size.Y == 0 {
		size.Y += lineHeight
	}
	return size, i, offset
}

func runesByteLen(rs []rune) int {
	n := 0
	for _, r := range rs {
		n += utf8.RuneLen(r)
	}
	return n
}

// truncateUTF8 cuts s to at most n bytes without splitting a rune.
func truncateUTF8(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 0 {
		return ""
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// byteOffsetToRune converts a byte offset within s to a rune offset.
func byteOffsetToRune(s string, off int) int {
	off = clampi(off, 0, len(s))
	return utf8.RuneCountInString(s[:off])
}

var upperCaser = cases.Upper(language.Und)

// inputTextFilterCharacter applies the Chars* flags and the char filter
// callback to c. It returns the rune to insert and whether to insert it.
func inputTextFilterCharacter(c rune, flags InputTextFlags, callback InputTextCallback) (rune, bool) {
	if c < 0x20 {
		pass := (c == '\n' && flags&InputTextFlagsMultiline != 0) ||
			(c == '\t' && flags&InputTextFlagsAllowTabInput != 0)
		if !pass {
			return c, false
		}
	}
	// ASCII DEL comes from Backspace on some platforms.
	if c == 127 {
		return c, false
	}
	// Private use area, sent by some backends for special keys.
	if c >= 0xE000 && c <= 0xF8FF {
		return c, false
	}
	if c > utf8.MaxRune {
		return c, false
	}

	isNumeric := func(c rune) bool {
		return (c >= '0' && c <= '9') || c == '.' || c == '-' || c == '+' || c == '*' || c == '/'
	}
	if flags&InputTextFlagsCharsDecimal != 0 && !isNumeric(c) {
		return c, false
	}
	if flags&InputTextFlagsCharsScientific != 0 && !isNumeric(c) && c != 'e' && c != 'E' {
		return c, false
	}
	if flags&InputTextFlagsCharsHexadecimal != 0 && !isHexDigit(byte(c)) || (flags&InputTextFlagsCharsHexadecimal != 0 && c > 0x7f) {
		return c, false
	}
	if flags&InputTextFlagsCharsUppercase != 0 {
		if up := []rune(upperCaser.String(string(c))); len(up) == 1 {
			c = up[0]
		}
	}
	if flags&InputTextFlagsCharsNoBlank != 0 && isBlankRune(c) {
		return c, false
	}

	if flags&InputTextFlagsCallbackCharFilter != 0 && callback != nil {
		data := InputTextCallbackData{
			EventFlag: InputTextFlagsCallbackCharFilter,
			EventChar: c,
			Flags:     flags,
		}
		if callback(&data) != 0 {
			return c, false
		}
		c = data.EventChar
		if c == 0 {
			return c, false
		}
	}
	return c, true
}

// ============================================================================
// Widgets
// ============================================================================

// InputText edits *buf on a single line. Options: WithInputFlags,
// WithBufferSize, WithCallback, WithHint.
func (ctx *Context) InputText(label string, buf *string, opts ...Option) bool {
	o := applyOptions(opts)
	flags := GetOpt(o, OptInputFlags) &^ InputTextFlagsMultiline
	return ctx.InputTextEx(label, GetOpt(o, OptHint), buf, Vec2{}, flags, GetOpt(o, OptCallback), GetOpt(o, OptBufferSize))
}

// InputTextMultiline edits *buf in a scrolling box. WithSize sets the box
// size; the default is eight lines high.
func (ctx *Context) InputTextMultiline(label string, buf *string, opts ...Option) bool {
	o := applyOptions(opts)
	flags := GetOpt(o, OptInputFlags) | InputTextFlagsMultiline
	return ctx.InputTextEx(label, "", buf, GetOpt(o, OptSize), flags, GetOpt(o, OptCallback), GetOpt(o, OptBufferSize))
}

// InputTextWithHint shows hint while *buf is empty.
func (ctx *Context) InputTextWithHint(label, hint string, buf *string, opts ...Option) bool {
	o := applyOptions(opts)
	flags := GetOpt(o, OptInputFlags) &^ InputTextFlagsMultiline
	return ctx.InputTextEx(label, hint, buf, Vec2{}, flags, GetOpt(o, OptCallback), GetOpt(o, OptBufferSize))
}

// InputTextEx is the text editing widget. bufSize is the capacity of *buf in
// bytes including a terminator, or 0 for no limit. Edits are written to *buf
// while the widget is active; Escape restores the text it had on
// activation. It returns true when *buf changed, or with
// InputTextFlagsEnterReturnsTrue when Enter was pressed.
func (ctx *Context) InputTextEx(label, hint string, buf *string, sizeArg Vec2, flags InputTextFlags, callback InputTextCallback, bufSize int) bool {
	w := ctx.CurrentWindow
	if w.SkipItems {
		return false
	}
	ctx.assert(flags&InputTextFlagsCallbackHistory == 0 || flags&InputTextFlagsMultiline == 0, "InputText: CallbackHistory and Multiline are exclusive")
	ctx.assert(flags&InputTextFlagsCallbackCompletion == 0 || flags&InputTextFlagsAllowTabInput == 0, "InputText: CallbackCompletion and AllowTabInput are exclusive")

	io := &ctx.IO
	st := &ctx.Style
	isMultiline := flags&InputTextFlagsMultiline != 0
	isReadOnly := flags&InputTextFlagsReadOnly != 0
	isPassword := flags&InputTextFlagsPassword != 0
	isUndoable := flags&InputTextFlagsNoUndoRedo == 0
	isResizable := flags&InputTextFlagsCallbackResize != 0
	if isResizable && !ctx.assert(callback != nil, "InputText: CallbackResize needs a callback") {
		isResizable = false
		flags &^= InputTextFlagsCallbackResize
	}

	// The group tracks ids created within it.
	if isMultiline {
		ctx.BeginGroup()
	}
	id := w.GetID(label)
	labelSize := ctx.CalcTextSize(label, true, 0)
	frameH := labelSize.Y
	if isMultiline {
		frameH = ctx.FontSize * 8
	}
	frameSize := ctx.CalcItemSize(sizeArg, ctx.CalcItemWidth(), frameH+st.FramePadding.Y*2)
	totalSize := frameSize
	if labelSize.X > 0 {
		totalSize.X += st.ItemInnerSpacing.X + labelSize.X
	}
	frameBB := Rect{w.DC.CursorPos, w.DC.CursorPos.Add(frameSize)}
	totalBB := Rect{frameBB.Min, frameBB.Min.Add(totalSize)}

	drawWindow := w
	innerSize := frameSize
	if isMultiline {
		if !ctx.ItemAdd(totalBB, id, &frameBB) {
			ctx.ItemSizeRect(totalBB, st.FramePadding.Y)
			ctx.EndGroup()
			return false
		}
		ctx.PushStyleColor(ColChildBg, st.Colors[ColFrameBg])
		ctx.PushStyleVar(StyleVarChildRounding, st.FrameRounding)
		ctx.PushStyleVar(StyleVarChildBorderSize, st.FrameBorderSize)
		ctx.PushStyleVarVec2(StyleVarWindowPadding, st.FramePadding)
		visible := ctx.beginChildEx(label, id, frameBB.Size(), true, WindowFlagsNoMove)
		ctx.PopStyleVar(3)
		ctx.PopStyleColor(1)
		if !visible {
			ctx.EndChild()
			ctx.EndGroup()
			return false
		}
		drawWindow = ctx.CurrentWindow
		innerSize.X -= drawWindow.ScrollbarSizes.X
	} else {
		ctx.ItemSizeRect(totalBB, st.FramePadding.Y)
		if flags&InputTextFlagsMergedItem == 0 {
			if !ctx.ItemAdd(totalBB, id, &frameBB) {
				return false
			}
		}
	}
	hovered := ctx.ItemHoverable(frameBB, id)
	if hovered {
		ctx.MouseCursor = MouseCursorTextInput
	}

	// The state may only be touched while we own it.
	state := ctx.GetInputTextState(id)

	focusRequested := ctx.focusableItemRegister(w, id)
	focusByTab := focusRequested && w.DC.LastItemStatusFlags&ItemStatusFocusedByTabbing != 0
	focusByCode := focusRequested && !focusByTab

	userClicked := hovered && io.MouseClicked[MouseButtonLeft]
	userNavInputStart := ctx.ActiveID != id && (ctx.NavInputID == id || ctx.NavActivateID == id)
	scrollbarID := windowScrollbarID(drawWindow, AxisY)
	userScrollFinish := isMultiline && state != nil && ctx.ActiveID == 0 && ctx.ActiveIDPreviousFrame == scrollbarID
	userScrollActive := isMultiline && state != nil && ctx.ActiveID == scrollbarID

	clearActiveID := false
	selectAll := ctx.ActiveID != id && (flags&InputTextFlagsAutoSelectAll != 0 || userNavInputStart) && !isMultiline

	initMakeActive := focusRequested || userClicked || userScrollFinish || userNavInputStart
	initState := initMakeActive || userScrollActive
	if initState && ctx.ActiveID != id {
		state = &ctx.InputTextState
		state.cursorAnimReset()

		// From here on the caller's buffer is ignored unless read-only.
		state.InitialTextA = *buf
		state.BufCapacityA = bufSize
		state.Flags = flags
		state.setText(*buf)
		state.TextA = ""
		state.TextAIsValid = false

		// Coming back to the same widget keeps cursor and undo history.
		if state.ID == id && state.Stb.singleLine == !isMultiline {
			state.cursorClamp()
		} else {
			state.ID = id
			state.ScrollX = 0
			state.Stb.clearState(!isMultiline)
			if !isMultiline && focusByCode {
				selectAll = true
			}
		}
		if flags&InputTextFlagsAlwaysOverwrite != 0 {
			state.Stb.insertMode = true
		}
		if !isMultiline && (focusByTab || (userClicked && io.KeyCtrl)) {
			selectAll = true
		}
	}

	if ctx.ActiveID != id && initMakeActive {
		ctx.SetActiveID(id, w)
		ctx.SetFocusID(id, w)
		ctx.FocusWindow(w)
		ctx.setActiveIDUsingNav(true, true, flags&(InputTextFlagsCallbackCompletion|InputTextFlagsAllowTabInput) != 0)
	}

	// ActiveID was handed over by another widget without a session.
	if ctx.ActiveID == id && state == nil {
		ctx.ClearActiveID()
	}

	// Release focus on a click outside.
	if ctx.ActiveID == id && io.MouseClicked[MouseButtonLeft] && !initState && !initMakeActive {
		clearActiveID = true
	}

	renderCursor := ctx.ActiveID == id || (state != nil && userScrollActive)
	renderSelection := state != nil && state.HasSelection() && renderCursor
	valueChanged := false
	enterPressed := false

	if state != nil {
		state.font = ctx.Font
		state.fontSize = ctx.FontSize
		state.macOSX = io.ConfigMacOSXBehaviors
	}

	// Read-only text is always the caller's.
	if isReadOnly && state != nil && (renderCursor || renderSelection) {
		state.BufCapacityA = bufSize
		state.setText(*buf)
		state.cursorClamp()
		renderSelection = renderSelection && state.HasSelection()
	}

	bufDisplayFromState := (renderCursor || renderSelection || ctx.ActiveID == id) && !isReadOnly && state != nil && state.TextAIsValid

	backupCurrentTextLength := 0
	cancelEdit := false
	if ctx.ActiveID == id {
		backupCurrentTextLength = state.CurLenA
		state.Edited = false
		state.BufCapacityA = bufSize
		state.Flags = flags

		// Other widgets stay hoverable unless we are being dragged on.
		ctx.ActiveIDAllowOverlap = !io.MouseDown[MouseButtonLeft]
		ctx.wantTextInputNextFrame = 1

		mouseX := io.MousePos.X - frameBB.Min.X - st.FramePadding.X + state.ScrollX
		mouseY := ctx.FontSize * 0.5
		if isMultiline {
			mouseY = io.MousePos.Y - drawWindow.DC.CursorPos.Y - st.FramePadding.Y
		}
		isOSX := io.ConfigMacOSXBehaviors
		switch {
		case selectAll || (hovered && !isOSX && io.MouseDoubleClicked[MouseButtonLeft]):
			state.SelectAll()
			state.SelectedAllMouseLock = true
		case hovered && isOSX && io.MouseDoubleClicked[MouseButtonLeft]:
			// OS X selects the word under the pointer.
			state.onKeyPressed(textKeyWordLeft)
			state.onKeyPressed(textKeyWordRight | textKeyShift)
		case io.MouseClicked[MouseButtonLeft] && !state.SelectedAllMouseLock:
			if hovered {
				state.Stb.click(state, mouseX, mouseY)
				state.cursorAnimReset()
			}
		case io.MouseDown[MouseButtonLeft] && !state.SelectedAllMouseLock && (io.MouseDelta.X != 0 || io.MouseDelta.Y != 0):
			state.Stb.drag(state, mouseX, mouseY)
			state.cursorAnimReset()
			state.CursorFollow = true
		}
		if state.SelectedAllMouseLock && !io.MouseDown[MouseButtonLeft] {
			state.SelectedAllMouseLock = false
		}

		// AltGr is Ctrl+Alt and still types.
		ignoreCharInputs := (io.KeyCtrl && !io.KeyAlt) || (isOSX && io.KeySuper)
		if flags&InputTextFlagsAllowTabInput != 0 && ctx.IsKeyPressed(KeyTab, true) && !ignoreCharInputs && !io.KeyShift && !isReadOnly {
			if !containsRune(io.InputQueueCharacters, '\t') {
				io.AddInputCharacter('\t')
			}
		}

		if len(io.InputQueueCharacters) > 0 {
			if !ignoreCharInputs && !isReadOnly && !userNavInputStart {
				for _, c := range io.InputQueueCharacters {
					if c == '\t' && io.KeyShift {
						continue
					}
					if c, ok := inputTextFilterCharacter(c, flags, callback); ok {
						state.onKeyPressed(int(c))
					}
				}
			}
			io.InputQueueCharacters = io.InputQueueCharacters[:0]
		}
	}

	if ctx.ActiveID == id && !ctx.ActiveIDIsJustActivated {
		rowCountPerPage := maxi(int((innerSize.Y-st.FramePadding.Y)/ctx.FontSize), 1)
		state.Stb.rowCountPerPage = rowCountPerPage

		kMask := 0
		if io.KeyShift {
			kMask = textKeyShift
		}
		isOSX := io.ConfigMacOSXBehaviors
		isOSXShiftShortcut := isOSX && io.KeyMods == KeyModSuper|KeyModShift
		isWordMoveKeyDown := io.KeyCtrl
		if isOSX {
			isWordMoveKeyDown = io.KeyAlt
		}
		isStartEndKeyDown := isOSX && io.KeySuper && !io.KeyCtrl && !io.KeyAlt
		isCtrlKeyOnly := io.KeyMods == KeyModCtrl
		isShiftKeyOnly := io.KeyMods == KeyModShift
		isShortcutKey := io.KeyMods == KeyModCtrl
		if isOSX {
			isShortcutKey = io.KeyMods == KeyModSuper
		}
		pressed := func(k Key) bool { return ctx.IsKeyPressed(k, true) }

		isCut := ((isShortcutKey && pressed(KeyX)) || (isShiftKeyOnly && pressed(KeyDelete))) && !isReadOnly && !isPassword && (!isMultiline || state.HasSelection())
		isCopy := ((isShortcutKey && pressed(KeyC)) || (isCtrlKeyOnly && pressed(KeyInsert))) && !isPassword && (!isMultiline || state.HasSelection())
		isPaste := ((isShortcutKey && pressed(KeyV)) || (isShiftKeyOnly && pressed(KeyInsert))) && !isReadOnly
		isUndo := isShortcutKey && pressed(KeyZ) && !isReadOnly && isUndoable
		isRedo := ((isShortcutKey && pressed(KeyY)) || (isOSXShiftShortcut && pressed(KeyZ))) && !isReadOnly && isUndoable

		pick := func(cond bool, a, b int) int {
			if cond {
				return a
			}
			return b
		}
		switch {
		case pressed(KeyLeft):
			state.onKeyPressed(pick(isStartEndKeyDown, textKeyLineStart, pick(isWordMoveKeyDown, textKeyWordLeft, textKeyLeft)) | kMask)
		case pressed(KeyRight):
			state.onKeyPressed(pick(isStartEndKeyDown, textKeyLineEnd, pick(isWordMoveKeyDown, textKeyWordRight, textKeyRight)) | kMask)
		case pressed(KeyUp) && isMultiline:
			if io.KeyCtrl {
				ctx.setScrollY(drawWindow, maxf(drawWindow.Scroll.Y-ctx.FontSize, 0))
			} else {
				state.onKeyPressed(pick(isStartEndKeyDown, textKeyTextStart, textKeyUp) | kMask)
			}
		case pressed(KeyDown) && isMultiline:
			if io.KeyCtrl {
				ctx.setScrollY(drawWindow, minf(drawWindow.Scroll.Y+ctx.FontSize, drawWindow.ScrollMax.Y))
			} else {
				state.onKeyPressed(pick(isStartEndKeyDown, textKeyTextEnd, textKeyDown) | kMask)
			}
		case pressed(KeyPageUp) && isMultiline:
			state.onKeyPressed(textKeyPageUp | kMask)
			ctx.setScrollY(drawWindow, drawWindow.Scroll.Y-float32(rowCountPerPage)*ctx.FontSize)
		case pressed(KeyPageDown) && isMultiline:
			state.onKeyPressed(textKeyPageDown | kMask)
			ctx.setScrollY(drawWindow, drawWindow.Scroll.Y+float32(rowCountPerPage)*ctx.FontSize)
		case pressed(KeyHome):
			state.onKeyPressed(pick(io.KeyCtrl, textKeyTextStart, textKeyLineStart) | kMask)
		case pressed(KeyEnd):
			state.onKeyPressed(pick(io.KeyCtrl, textKeyTextEnd, textKeyLineEnd) | kMask)
		case pressed(KeyDelete) && !isReadOnly:
			state.onKeyPressed(textKeyDelete | kMask)
		case pressed(KeyBackspace) && !isReadOnly:
			// Backspace alone honors word and line deletes; Delete does not.
			if !state.HasSelection() {
				if isWordMoveKeyDown {
					state.onKeyPressed(textKeyWordLeft | textKeyShift)
				} else if isOSX && io.KeySuper && !io.KeyAlt && !io.KeyCtrl {
					state.onKeyPressed(textKeyLineStart | textKeyShift)
				}
			}
			state.onKeyPressed(textKeyBackspace | kMask)
		case pressed(KeyEnter) || pressed(KeyKeyPadEnter):
			ctrlEnterForNewLine := flags&InputTextFlagsCtrlEnterForNewLine != 0
			if !isMultiline || (ctrlEnterForNewLine && !io.KeyCtrl) || (!ctrlEnterForNewLine && io.KeyCtrl) {
				enterPressed = true
				clearActiveID = true
			} else if !isReadOnly {
				if c, ok := inputTextFilterCharacter('\n', flags, callback); ok {
					state.onKeyPressed(int(c))
				}
			}
		case pressed(KeyEscape):
			clearActiveID = true
			cancelEdit = true
		case isUndo || isRedo:
			state.onKeyPressed(pick(isUndo, textKeyUndo, textKeyRedo))
			state.ClearSelection()
		case isShortcutKey && pressed(KeyA):
			state.SelectAll()
			state.CursorFollow = true
		case isCut || isCopy:
			ib, ie := 0, len(state.TextW)
			if state.HasSelection() {
				ib, ie = state.Selection()
			}
			ctx.SetClipboardText(string(state.TextW[ib:ie]))
			if isCut {
				if !state.HasSelection() {
					state.SelectAll()
				}
				state.CursorFollow = true
				state.Stb.cut(state)
			}
		case isPaste:
			clip := ctx.GetClipboardText()
			filtered := make([]rune, 0, len(clip))
			for _, c := range clip {
				if c, ok := inputTextFilterCharacter(c, flags, callback); ok {
					filtered = append(filtered, c)
				}
			}
			// Nothing left after filtering: no paste.
			if len(filtered) > 0 {
				state.Stb.paste(state, filtered)
				state.CursorFollow = true
			}
		}

		renderSelection = renderSelection || (state.HasSelection() && renderCursor)
	}

	// Write back and run callbacks.
	if ctx.ActiveID == id {
		applyNewText := ""
		apply := false
		if cancelEdit {
			// Restoring is an undoable replace, and only a change if the
			// caller's text differs.
			if !isReadOnly && *buf != state.InitialTextA {
				applyNewText = state.InitialTextA
				apply = true
				state.Stb.replace(state, []rune(state.InitialTextA))
			}
		}

		// EnterReturnsTrue still writes the live text back on Enter.
		applyEditBack := !cancelEdit || (enterPressed && flags&InputTextFlagsEnterReturnsTrue != 0)
		if applyEditBack {
			if !isReadOnly {
				state.TextAIsValid = true
				state.TextA = string(state.TextW)
			}

			if flags&(InputTextFlagsCallbackCompletion|InputTextFlagsCallbackHistory|InputTextFlagsCallbackEdit|InputTextFlagsCallbackAlways) != 0 {
				ctx.assert(callback != nil, "InputText: Callback flags need a callback")
				var eventFlag InputTextFlags
				eventKey := KeyNone
				switch {
				case flags&InputTextFlagsCallbackCompletion != 0 && ctx.IsKeyPressed(KeyTab, true):
					eventFlag, eventKey = InputTextFlagsCallbackCompletion, KeyTab
				case flags&InputTextFlagsCallbackHistory != 0 && ctx.IsKeyPressed(KeyUp, true):
					eventFlag, eventKey = InputTextFlagsCallbackHistory, KeyUp
				case flags&InputTextFlagsCallbackHistory != 0 && ctx.IsKeyPressed(KeyDown, true):
					eventFlag, eventKey = InputTextFlagsCallbackHistory, KeyDown
				case flags&InputTextFlagsCallbackEdit != 0 && state.Edited:
					eventFlag = InputTextFlagsCallbackEdit
				case flags&InputTextFlagsCallbackAlways != 0:
					eventFlag = InputTextFlagsCallbackAlways
				}
				if eventFlag != 0 && callback != nil {
					ctx.runInputTextCallback(state, callback, eventFlag, eventKey, backupCurrentTextLength)
				}
			}

			if !isReadOnly && state.TextA != *buf {
				applyNewText = state.TextA
				apply = true
			}
		}

		if apply {
			n := len(applyNewText)
			capacity := bufSize
			if isResizable && bufSize > 0 && n+1 > bufSize {
				data := InputTextCallbackData{
					EventFlag:  InputTextFlagsCallbackResize,
					Flags:      flags,
					Buf:        *buf,
					BufTextLen: n,
					BufSize:    bufSize,
				}
				callback(&data)
				capacity = data.BufSize
			}
			if capacity > 0 && n+1 > capacity {
				// Growth denied: keep what fits.
				applyNewText = truncateUTF8(applyNewText, capacity-1)
				state.BufCapacityA = capacity
				state.setText(applyNewText)
				state.cursorClamp()
				state.TextA = applyNewText
			}
			*buf = applyNewText
			valueChanged = true
		}
		state.Flags = InputTextFlagsNone
	}

	// Released here so Enter still applies the value above.
	if clearActiveID && ctx.ActiveID == id {
		ctx.ClearActiveID()
	}

	// Render
	if !isMultiline {
		ctx.RenderNavHighlight(frameBB, id)
		ctx.RenderFrame(frameBB.Min, frameBB.Max, ctx.GetColorU32(ColFrameBg, 1), true, st.FrameRounding)
	}

	clipRect := Rect{frameBB.Min, frameBB.Min.Add(innerSize)}
	drawPos := frameBB.Min.Add(st.FramePadding)
	if isMultiline {
		drawPos = drawWindow.DC.CursorPos
	}
	var textSize Vec2

	display := *buf
	if bufDisplayFromState {
		display = state.TextA
	}
	isDisplayingHint := hint != "" && display == ""
	if isDisplayingHint {
		display = hint
	} else if isPassword {
		display = strings.Repeat("*", utf8.RuneCountInString(display))
	}
	textCol := ctx.GetColorU32(ColText, 1)
	if isDisplayingHint {
		textCol = ctx.GetColorU32(ColTextDisabled, 1)
	}
	var cpuClip *Rect
	if !isMultiline {
		cpuClip = &clipRect
	}

	if renderCursor || renderSelection {
		text := state.TextW
		cursorLine, selectLine := -1000, -1000
		var cursorOffset, selectStartOffset Vec2
		selMin, selMax := state.Selection()

		lineCount := 0
		if renderCursor {
			cursorLine = -1
		}
		if renderSelection {
			selectLine = -1
		}
		for i, c := range text {
			if c != '\n' {
				continue
			}
			lineCount++
			if cursorLine == -1 && i >= state.Stb.cursor {
				cursorLine = lineCount
			}
			if selectLine == -1 && i >= selMin {
				selectLine = lineCount
			}
		}
		lineCount++
		if cursorLine == -1 {
			cursorLine = lineCount
		}
		if selectLine == -1 {
			selectLine = lineCount
		}

		lineStart := func(pos int) int {
			for pos > 0 && text[pos-1] != '\n' {
				pos--
			}
			return pos
		}
		cur := mini(state.Stb.cursor, len(text))
		sz, _, _ := state.calcTextSizeW(text[lineStart(cur):cur], false)
		cursorOffset = Vec2{sz.X, float32(cursorLine) * ctx.FontSize}
		if selectLine >= 0 {
			sz, _, _ := state.calcTextSizeW(text[lineStart(selMin):selMin], false)
			selectStartOffset = Vec2{sz.X, float32(selectLine) * ctx.FontSize}
		}
		if isMultiline {
			textSize = Vec2{innerSize.X, float32(lineCount) * ctx.FontSize}
		}

		if renderCursor && state.CursorFollow {
			// Scroll horizontally in quarter widths.
			if flags&InputTextFlagsNoHorizontalScroll == 0 {
				inc := innerSize.X * 0.25
				if cursorOffset.X < state.ScrollX {
					state.ScrollX = floorf(maxf(0, cursorOffset.X-inc))
				} else if cursorOffset.X-innerSize.X >= state.ScrollX {
					state.ScrollX = floorf(cursorOffset.X - innerSize.X + inc)
				}
			} else {
				state.ScrollX = 0
			}

			if isMultiline {
				scrollY := drawWindow.Scroll.Y
				if cursorOffset.Y-ctx.FontSize < scrollY {
					scrollY = maxf(0, cursorOffset.Y-ctx.FontSize)
				} else if cursorOffset.Y-innerSize.Y >= scrollY {
					scrollY = cursorOffset.Y - innerSize.Y
				}
				// Apply now to avoid a frame of lag.
				drawPos.Y += drawWindow.Scroll.Y - scrollY
				drawWindow.Scroll.Y = scrollY
			}
			state.CursorFollow = false
		}

		drawScroll := Vec2{state.ScrollX, 0}
		if renderSelection {
			bgCol := ctx.GetColorU32(ColTextSelectedBg, 1)
			offUp, offDown := float32(-1), float32(2)
			if isMultiline {
				offUp, offDown = 0, 0
			}
			rectPos := drawPos.Add(selectStartOffset).Sub(drawScroll)
			for p := selMin; p < selMax; {
				if rectPos.Y > clipRect.Max.Y+ctx.FontSize {
					break
				}
				if rectPos.Y < clipRect.Min.Y {
					for p < selMax {
						p++
						if text[p-1] == '\n' {
							break
						}
					}
				} else {
					rsz, n, _ := state.calcTextSizeW(text[p:selMax], true)
					p += n
					if rsz.X <= 0 {
						// Show selected empty lines.
						rsz.X = floorf(state.advance(' ') * 0.5)
					}
					r := Rect{rectPos.Add(Vec2{0, offUp - ctx.FontSize}), rectPos.Add(Vec2{rsz.X, offDown})}
					r = r.ClipWith(clipRect)
					if r.Overlaps(clipRect) {
						drawWindow.DrawList.AddRectFilled(r.Min, r.Max, bgCol, 0, DrawCornerNone)
					}
				}
				rectPos.X = drawPos.X - drawScroll.X
				rectPos.Y += ctx.FontSize
			}
		}

		if isMultiline || len(display) < inputTextDisplayMaxLength {
			drawWindow.DrawList.AddText(ctx.Font, ctx.FontSize, drawPos.Sub(drawScroll), textCol, display, 0, cpuClip)
		}

		if renderCursor {
			state.CursorAnim += io.DeltaTime
			visible := !io.ConfigInputTextCursorBlink || state.CursorAnim <= 0 || math32.Mod(state.CursorAnim, 1.20) <= 0.80
			pos := drawPos.Add(cursorOffset).Sub(drawScroll)
			cr := R(pos.X, pos.Y-ctx.FontSize+0.5, pos.X+1, pos.Y-1.5)
			if visible && cr.Overlaps(clipRect) {
				drawWindow.DrawList.AddLine(cr.Min, Vec2{cr.Min.X, cr.Max.Y}, ctx.GetColorU32(ColText, 1), 1)
			}
			if !isReadOnly {
				ctx.PlatformImePos = Vec2{pos.X - 1, pos.Y - ctx.FontSize}
			}
		}
	} else {
		if isMultiline {
			textSize = Vec2{innerSize.X, float32(strings.Count(display, "\n")+1) * ctx.FontSize}
		}
		if isMultiline || len(display) < inputTextDisplayMaxLength {
			drawWindow.DrawList.AddText(ctx.Font, ctx.FontSize, drawPos, textCol, display, 0, cpuClip)
		}
	}

	if isMultiline {
		// Room to scroll one extra line.
		ctx.Dummy(textSize.Add(Vec2{0, ctx.FontSize}))
		ctx.EndChild()
		ctx.EndGroup()
	}

	if labelSize.X > 0 {
		ctx.RenderText(Vec2{frameBB.Max.X + st.ItemInnerSpacing.X, frameBB.Min.Y + st.FramePadding.Y}, label, true)
	}

	if valueChanged && flags&InputTextFlagsNoMarkEdited == 0 {
		ctx.MarkItemEdited(id)
	}
	if flags&InputTextFlagsEnterReturnsTrue != 0 {
		return enterPressed
	}
	return valueChanged
}

// inputTextDisplayMaxLength caps single line text handed to the draw list.
const inputTextDisplayMaxLength = 2 * 1024 * 1024

// runInputTextCallback calls callback for eventFlag and reads back cursor,
// selection and text changes.
func (ctx *Context) runInputTextCallback(state *InputTextState, callback InputTextCallback, eventFlag InputTextFlags, eventKey Key, backupLen int) {
	text := state.TextW
	cursor := runesByteLen(text[:mini(state.Stb.cursor, len(text))])
	selStart := runesByteLen(text[:mini(state.Stb.selectStart, len(text))])
	selEnd := runesByteLen(text[:mini(state.Stb.selectEnd, len(text))])

	data := InputTextCallbackData{
		EventFlag:      eventFlag,
		Flags:          state.Flags,
		EventKey:       eventKey,
		Buf:            state.TextA,
		BufTextLen:     len(state.TextA),
		BufSize:        state.BufCapacityA,
		CursorPos:      cursor,
		SelectionStart: selStart,
		SelectionEnd:   selEnd,
	}
	callback(&data)

	if data.CursorPos != cursor {
		state.Stb.cursor = byteOffsetToRune(data.Buf, data.CursorPos)
		state.CursorFollow = true
	}
	if data.SelectionStart != selStart {
		state.Stb.selectStart = byteOffsetToRune(data.Buf, data.SelectionStart)
	}
	if data.SelectionEnd != selEnd {
		state.Stb.selectEnd = byteOffsetToRune(data.Buf, data.SelectionEnd)
	}
	if data.BufDirty {
		if data.BufSize != state.BufCapacityA && state.Flags&InputTextFlagsCallbackResize != 0 {
			state.BufCapacityA = data.BufSize
		}
		if len(data.Buf) > backupLen && anchorVerbose() {
			ctx.Logger.Debug("InputText callback grew text", "id", state.ID, "len", len(data.Buf))
		}
		state.TextW = append(state.TextW[:0], []rune(data.Buf)...)
		state.CurLenA = len(data.Buf)
		state.TextA = data.Buf
		state.cursorClamp()
		state.cursorAnimReset()
	}
}

func containsRune(rs []rune, r rune) bool {
	for _, c := range rs {
		if c == r {
			return true
		}
	}
	return false
}
