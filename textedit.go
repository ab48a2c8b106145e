package anchor

// Text edit engine: cursor, selection and undo over a rune buffer. Buffers
// plug in through textEditBuffer so the engine knows nothing about fonts or
// widget state.

// Key codes for textEditState.key. Values below textKeyLeft are runes to
// insert.
const (
	textKeyLeft      = 0x200000 + iota // move cursor left
	textKeyRight                       // move cursor right
	textKeyUp                          // move cursor up
	textKeyDown                        // move cursor down
	textKeyLineStart                   // move to start of line
	textKeyLineEnd                     // move to end of line
	textKeyTextStart                   // move to start of text
	textKeyTextEnd                     // move to end of text
	textKeyDelete                      // delete selection or rune under cursor
	textKeyBackspace                   // delete selection or rune left of cursor
	textKeyUndo
	textKeyRedo
	textKeyWordLeft
	textKeyWordRight
	textKeyPageUp
	textKeyPageDown
	textKeyInsert // toggle overwrite mode

	textKeyShift = 0x400000 // modifier bit, selects while moving
)

const (
	textUndoStateCount = 99
	textUndoCharCount  = 999

	// textNewlineWidth is the width reported for '\n'.
	textNewlineWidth = -1.0
)

// textEditRow describes one laid out row of text, relative to its start.
type textEditRow struct {
	X0, X1         float32
	BaselineYDelta float32
	YMin, YMax     float32
	NumChars       int
}

// textEditBuffer is the text a textEditState operates on.
type textEditBuffer interface {
	textLen() int
	charAt(i int) rune
	// charWidth returns the advance of the rune at lineStart+i, or
	// textNewlineWidth for a newline.
	charWidth(lineStart, i int) float32
	layoutRow(lineStart int) textEditRow
	deleteChars(pos, n int)
	// insertChars returns false when the buffer cannot take the text.
	insertChars(pos int, text []rune) bool
	wordLeft(i int) int
	wordRight(i int) int
}

type textUndoRecord struct {
	where       int
	insertLen   int
	deleteLen   int
	charStorage int // -1 when no runes are stored
}

// textUndoState keeps undo records from the front and redo records from the
// back of shared fixed arrays.
type textUndoState struct {
	rec           [textUndoStateCount]textUndoRecord
	chars         [textUndoCharCount]rune
	undoPoint     int
	redoPoint     int
	undoCharPoint int
	redoCharPoint int
}

// textEditState is the cursor, selection and undo history of one edit
// session. Cursor and selection are rune offsets; selectStart may exceed
// selectEnd.
type textEditState struct {
	cursor      int
	selectStart int
	selectEnd   int

	// insertMode overwrites the rune under the cursor.
	insertMode bool
	// rowCountPerPage is the row count moved by page up/down.
	rowCountPerPage int
	singleLine      bool

	hasPreferredX bool
	preferredX    float32

	undo textUndoState
}

func (s *textEditState) clearState(singleLine bool) {
	s.undo.undoPoint = 0
	s.undo.undoCharPoint = 0
	s.undo.redoPoint = textUndoStateCount
	s.undo.redoCharPoint = textUndoCharCount
	s.selectStart, s.selectEnd = 0, 0
	s.cursor = 0
	s.hasPreferredX = false
	s.preferredX = 0
	s.singleLine = singleLine
	s.insertMode = false
	s.rowCountPerPage = 0
}

func (s *textEditState) hasSelection() bool { return s.selectStart != s.selectEnd }

// locateCoord returns the rune offset closest to (x, y).
func textLocateCoord(b textEditBuffer, x, y float32) int {
	n := b.textLen()
	var r textEditRow
	baseY := float32(0)
	i := 0
	for i < n {
		r = b.layoutRow(i)
		if r.NumChars <= 0 {
			return n
		}
		if i == 0 && y < baseY+r.YMin {
			return 0
		}
		if y < baseY+r.YMax {
			break
		}
		i += r.NumChars
		baseY += r.BaselineYDelta
	}
	if i >= n {
		return n
	}
	if x < r.X0 {
		return i
	}
	if x < r.X1 {
		prevX := r.X0
		for k := 0; k < r.NumChars; k++ {
			w := b.charWidth(i, k)
			if x < prevX+w {
				if x < prevX+w/2 {
					return k + i
				}
				return k + i + 1
			}
			prevX += w
		}
	}
	if b.charAt(i+r.NumChars-1) == '\n' {
		return i + r.NumChars - 1
	}
	return i + r.NumChars
}

// click places the cursor at (x, y) and clears the selection.
func (s *textEditState) click(b textEditBuffer, x, y float32) {
	if s.singleLine {
		y = b.layoutRow(0).YMin
	}
	s.cursor = textLocateCoord(b, x, y)
	s.selectStart = s.cursor
	s.selectEnd = s.cursor
	s.hasPreferredX = false
}

// drag extends the selection to (x, y).
func (s *textEditState) drag(b textEditBuffer, x, y float32) {
	if s.singleLine {
		y = b.layoutRow(0).YMin
	}
	if s.selectStart == s.selectEnd {
		s.selectStart = s.cursor
	}
	p := textLocateCoord(b, x, y)
	s.cursor = p
	s.selectEnd = p
}

type textFindState struct {
	x, y      float32
	height    float32
	firstChar int
	length    int
	prevFirst int
}

// findCharPos locates rune n within the row layout.
func textFindCharPos(b textEditBuffer, n int, singleLine bool) textFindState {
	var find textFindState
	z := b.textLen()
	prevStart := 0
	i := 0
	if n == z {
		if singleLine {
			r := b.layoutRow(0)
			find.firstChar = 0
			find.length = z
			find.height = r.YMax - r.YMin
			find.x = r.X1
		} else {
			find.height = 1
			for i < z {
				r := b.layoutRow(i)
				prevStart = i
				i += r.NumChars
			}
			find.firstChar = i
			find.length = 0
			find.prevFirst = prevStart
		}
		return find
	}

	var r textEditRow
	for {
		r = b.layoutRow(i)
		if n < i+r.NumChars {
			break
		}
		prevStart = i
		i += r.NumChars
		find.y += r.BaselineYDelta
	}
	first := i
	find.firstChar = first
	find.length = r.NumChars
	find.height = r.YMax - r.YMin
	find.prevFirst = prevStart
	find.x = r.X0
	for i = 0; first+i < n; i++ {
		find.x += b.charWidth(first, i)
	}
	return find
}

func (s *textEditState) clamp(b textEditBuffer) {
	n := b.textLen()
	if s.hasSelection() {
		s.selectStart = mini(s.selectStart, n)
		s.selectEnd = mini(s.selectEnd, n)
		if s.selectStart == s.selectEnd {
			s.cursor = s.selectStart
		}
	}
	if s.cursor > n {
		s.cursor = n
	}
}

func (s *textEditState) delete(b textEditBuffer, where, n int) {
	s.makeUndoDelete(b, where, n)
	b.deleteChars(where, n)
	s.hasPreferredX = false
}

func (s *textEditState) deleteSelection(b textEditBuffer) {
	s.clamp(b)
	if !s.hasSelection() {
		return
	}
	if s.selectStart < s.selectEnd {
		s.delete(b, s.selectStart, s.selectEnd-s.selectStart)
		s.selectEnd = s.selectStart
		s.cursor = s.selectStart
	} else {
		s.delete(b, s.selectEnd, s.selectStart-s.selectEnd)
		s.selectStart = s.selectEnd
		s.cursor = s.selectEnd
	}
	s.hasPreferredX = false
}

func (s *textEditState) sortSelection() {
	if s.selectEnd < s.selectStart {
		s.selectStart, s.selectEnd = s.selectEnd, s.selectStart
	}
}

func (s *textEditState) moveToFirst() {
	if s.hasSelection() {
		s.sortSelection()
		s.cursor = s.selectStart
		s.selectEnd = s.selectStart
		s.hasPreferredX = false
	}
}

func (s *textEditState) moveToLast(b textEditBuffer) {
	if s.hasSelection() {
		s.sortSelection()
		s.clamp(b)
		s.cursor = s.selectEnd
		s.selectStart = s.selectEnd
		s.hasPreferredX = false
	}
}

func (s *textEditState) prepSelectionAtCursor() {
	if !s.hasSelection() {
		s.selectStart = s.cursor
		s.selectEnd = s.cursor
	} else {
		s.cursor = s.selectEnd
	}
}

// cut deletes the selection. It reports whether there was one.
func (s *textEditState) cut(b textEditBuffer) bool {
	if s.hasSelection() {
		s.deleteSelection(b)
		s.hasPreferredX = false
		return true
	}
	return false
}

// paste replaces the selection with text.
func (s *textEditState) paste(b textEditBuffer, text []rune) bool {
	s.clamp(b)
	hadSelection := s.hasSelection()
	s.deleteSelection(b)
	if b.insertChars(s.cursor, text) {
		s.makeUndoInsert(s.cursor, len(text))
		s.cursor += len(text)
		s.hasPreferredX = false
		return true
	}
	// Drop the undo record of the deleted selection too.
	if hadSelection && s.undo.undoPoint > 0 {
		s.undo.undoPoint--
	}
	return false
}

// replace swaps the whole text for text as one undoable step.
func (s *textEditState) replace(b textEditBuffer, text []rune) {
	s.makeUndoReplace(b, 0, b.textLen(), len(text))
	b.deleteChars(0, b.textLen())
	if len(text) == 0 {
		return
	}
	if b.insertChars(0, text) {
		s.cursor = len(text)
		s.hasPreferredX = false
	}
}

// key applies one key code or rune.
func (s *textEditState) key(b textEditBuffer, key int) {
	for {
		if !s.keyOnce(b, &key) {
			return
		}
	}
}

// keyOnce handles key and returns true when it rewrote key for another
// pass (vertical moves in single line mode).
func (s *textEditState) keyOnce(b textEditBuffer, keyp *int) bool {
	key := *keyp
	shift := key & textKeyShift
	switch key {
	default:
		if key <= 0 || key >= textKeyLeft {
			break
		}
		ch := rune(key)
		if ch == '\n' && s.singleLine {
			break
		}
		if s.insertMode && !s.hasSelection() && s.cursor < b.textLen() {
			s.makeUndoReplace(b, s.cursor, 1, 1)
			b.deleteChars(s.cursor, 1)
			if b.insertChars(s.cursor, []rune{ch}) {
				s.cursor++
				s.hasPreferredX = false
			}
		} else {
			s.deleteSelection(b)
			if b.insertChars(s.cursor, []rune{ch}) {
				s.makeUndoInsert(s.cursor, 1)
				s.cursor++
				s.hasPreferredX = false
			}
		}

	case textKeyInsert:
		s.insertMode = !s.insertMode

	case textKeyUndo:
		s.undoStep(b)
		s.hasPreferredX = false

	case textKeyRedo:
		s.redoStep(b)
		s.hasPreferredX = false

	case textKeyLeft:
		if s.hasSelection() {
			s.moveToFirst()
		} else if s.cursor > 0 {
			s.cursor--
		}
		s.hasPreferredX = false

	case textKeyRight:
		if s.hasSelection() {
			s.moveToLast(b)
		} else {
			s.cursor++
		}
		s.clamp(b)
		s.hasPreferredX = false

	case textKeyLeft | textKeyShift:
		s.clamp(b)
		s.prepSelectionAtCursor()
		if s.selectEnd > 0 {
			s.selectEnd--
		}
		s.cursor = s.selectEnd
		s.hasPreferredX = false

	case textKeyWordLeft:
		if s.hasSelection() {
			s.moveToFirst()
		} else {
			s.cursor = b.wordLeft(s.cursor)
			s.clamp(b)
		}

	case textKeyWordLeft | textKeyShift:
		if !s.hasSelection() {
			s.prepSelectionAtCursor()
		}
		s.cursor = b.wordLeft(s.cursor)
		s.selectEnd = s.cursor
		s.clamp(b)

	case textKeyWordRight:
		if s.hasSelection() {
			s.moveToLast(b)
		} else {
			s.cursor = b.wordRight(s.cursor)
			s.clamp(b)
		}

	case textKeyWordRight | textKeyShift:
		if !s.hasSelection() {
			s.prepSelectionAtCursor()
		}
		s.cursor = b.wordRight(s.cursor)
		s.selectEnd = s.cursor
		s.clamp(b)

	case textKeyRight | textKeyShift:
		s.prepSelectionAtCursor()
		s.selectEnd++
		s.clamp(b)
		s.cursor = s.selectEnd
		s.hasPreferredX = false

	case textKeyDown, textKeyDown | textKeyShift, textKeyPageDown, textKeyPageDown | textKeyShift:
		isPage := key&^textKeyShift == textKeyPageDown
		if !isPage && s.singleLine {
			*keyp = textKeyRight | shift
			return true
		}
		s.moveDown(b, shift != 0, isPage)

	case textKeyUp, textKeyUp | textKeyShift, textKeyPageUp, textKeyPageUp | textKeyShift:
		isPage := key&^textKeyShift == textKeyPageUp
		if !isPage && s.singleLine {
			*keyp = textKeyLeft | shift
			return true
		}
		s.moveUp(b, shift != 0, isPage)

	case textKeyDelete, textKeyDelete | textKeyShift:
		if s.hasSelection() {
			s.deleteSelection(b)
		} else if s.cursor < b.textLen() {
			s.delete(b, s.cursor, 1)
		}
		s.hasPreferredX = false

	case textKeyBackspace, textKeyBackspace | textKeyShift:
		if s.hasSelection() {
			s.deleteSelection(b)
		} else {
			s.clamp(b)
			if s.cursor > 0 {
				s.delete(b, s.cursor-1, 1)
				s.cursor--
			}
		}
		s.hasPreferredX = false

	case textKeyTextStart:
		s.cursor, s.selectStart, s.selectEnd = 0, 0, 0
		s.hasPreferredX = false

	case textKeyTextEnd:
		s.cursor = b.textLen()
		s.selectStart, s.selectEnd = 0, 0
		s.hasPreferredX = false

	case textKeyTextStart | textKeyShift:
		s.prepSelectionAtCursor()
		s.cursor, s.selectEnd = 0, 0
		s.hasPreferredX = false

	case textKeyTextEnd | textKeyShift:
		s.prepSelectionAtCursor()
		s.cursor = b.textLen()
		s.selectEnd = s.cursor
		s.hasPreferredX = false

	case textKeyLineStart:
		s.clamp(b)
		s.moveToFirst()
		s.cursor = s.lineStart(b)
		s.hasPreferredX = false

	case textKeyLineEnd:
		s.clamp(b)
		s.moveToFirst()
		s.cursor = s.lineEnd(b)
		s.hasPreferredX = false

	case textKeyLineStart | textKeyShift:
		s.clamp(b)
		s.prepSelectionAtCursor()
		s.cursor = s.lineStart(b)
		s.selectEnd = s.cursor
		s.hasPreferredX = false

	case textKeyLineEnd | textKeyShift:
		s.clamp(b)
		s.prepSelectionAtCursor()
		s.cursor = s.lineEnd(b)
		s.selectEnd = s.cursor
		s.hasPreferredX = false
	}
	return false
}

func (s *textEditState) lineStart(b textEditBuffer) int {
	if s.singleLine {
		return 0
	}
	c := s.cursor
	for c > 0 && b.charAt(c-1) != '\n' {
		c--
	}
	return c
}

func (s *textEditState) lineEnd(b textEditBuffer) int {
	n := b.textLen()
	if s.singleLine {
		return n
	}
	c := s.cursor
	for c < n && b.charAt(c) != '\n' {
		c++
	}
	return c
}

// moveDown moves one row, or a page of rows, down keeping the preferred x.
func (s *textEditState) moveDown(b textEditBuffer, sel, isPage bool) {
	rowCount := 1
	if isPage {
		rowCount = s.rowCountPerPage
	}
	if sel {
		s.prepSelectionAtCursor()
	} else if s.hasSelection() {
		s.moveToLast(b)
	}
	s.clamp(b)
	find := textFindCharPos(b, s.cursor, s.singleLine)
	for j := 0; j < rowCount; j++ {
		goalX := find.x
		if s.hasPreferredX {
			goalX = s.preferredX
		}
		start := find.firstChar + find.length
		if find.length == 0 {
			break
		}
		// Only step into the next row when this one ends in a newline.
		if b.charAt(find.firstChar+find.length-1) != '\n' {
			break
		}
		s.cursor = start
		row := b.layoutRow(s.cursor)
		s.advanceToX(b, start, row, goalX)
		s.clamp(b)
		s.hasPreferredX = true
		s.preferredX = goalX
		if sel {
			s.selectEnd = s.cursor
		}
		find.firstChar += find.length
		find.length = row.NumChars
	}
}

// moveUp moves one row, or a page of rows, up keeping the preferred x.
func (s *textEditState) moveUp(b textEditBuffer, sel, isPage bool) {
	rowCount := 1
	if isPage {
		rowCount = s.rowCountPerPage
	}
	if sel {
		s.prepSelectionAtCursor()
	} else if s.hasSelection() {
		s.moveToFirst()
	}
	s.clamp(b)
	find := textFindCharPos(b, s.cursor, s.singleLine)
	for j := 0; j < rowCount; j++ {
		goalX := find.x
		if s.hasPreferredX {
			goalX = s.preferredX
		}
		if find.prevFirst == find.firstChar {
			break
		}
		s.cursor = find.prevFirst
		row := b.layoutRow(s.cursor)
		s.advanceToX(b, find.prevFirst, row, goalX)
		s.clamp(b)
		s.hasPreferredX = true
		s.preferredX = goalX
		if sel {
			s.selectEnd = s.cursor
		}
		prevScan := 0
		if find.prevFirst > 0 {
			prevScan = find.prevFirst - 1
		}
		for prevScan > 0 && b.charAt(prevScan-1) != '\n' {
			prevScan--
		}
		find.firstChar = find.prevFirst
		find.prevFirst = prevScan
	}
}

func (s *textEditState) advanceToX(b textEditBuffer, start int, row textEditRow, goalX float32) {
	x := row.X0
	for i := 0; i < row.NumChars; i++ {
		dx := b.charWidth(start, i)
		if dx == textNewlineWidth {
			break
		}
		x += dx
		if x > goalX {
			break
		}
		s.cursor++
	}
}

// ============================================================================
// Undo
// ============================================================================

func (u *textUndoState) flushRedo() {
	u.redoPoint = textUndoStateCount
	u.redoCharPoint = textUndoCharCount
}

// discardUndo drops the oldest undo record.
func (u *textUndoState) discardUndo() {
	if u.undoPoint <= 0 {
		return
	}
	if u.rec[0].charStorage >= 0 {
		n := u.rec[0].insertLen
		u.undoCharPoint -= n
		copy(u.chars[:u.undoCharPoint], u.chars[n:n+u.undoCharPoint])
		for i := 0; i < u.undoPoint; i++ {
			if u.rec[i].charStorage >= 0 {
				u.rec[i].charStorage -= n
			}
		}
	}
	u.undoPoint--
	copy(u.rec[:u.undoPoint], u.rec[1:1+u.undoPoint])
}

// discardRedo drops the oldest redo record, which sits at the very end.
func (u *textUndoState) discardRedo() {
	k := textUndoStateCount - 1
	if u.redoPoint > k {
		return
	}
	if u.rec[k].charStorage >= 0 {
		n := u.rec[k].insertLen
		u.redoCharPoint += n
		copy(u.chars[u.redoCharPoint:], u.chars[u.redoCharPoint-n:textUndoCharCount-n])
		for i := u.redoPoint; i < k; i++ {
			if u.rec[i].charStorage >= 0 {
				u.rec[i].charStorage += n
			}
		}
	}
	copy(u.rec[u.redoPoint+1:], u.rec[u.redoPoint:k])
	u.redoPoint++
}

func (u *textUndoState) createRecord(numChars int) *textUndoRecord {
	u.flushRedo()
	if u.undoPoint == textUndoStateCount {
		u.discardUndo()
	}
	// An edit too large to store wipes the history.
	if numChars > textUndoCharCount {
		u.undoPoint = 0
		u.undoCharPoint = 0
		return nil
	}
	for u.undoCharPoint+numChars > textUndoCharCount {
		u.discardUndo()
	}
	r := &u.rec[u.undoPoint]
	u.undoPoint++
	return r
}

// create records an edit at pos and returns storage for insertLen runes,
// or nil when none are needed.
func (u *textUndoState) create(pos, insertLen, deleteLen int) []rune {
	r := u.createRecord(insertLen)
	if r == nil {
		return nil
	}
	r.where = pos
	r.insertLen = insertLen
	r.deleteLen = deleteLen
	if insertLen == 0 {
		r.charStorage = -1
		return nil
	}
	r.charStorage = u.undoCharPoint
	u.undoCharPoint += insertLen
	return u.chars[r.charStorage : r.charStorage+insertLen]
}

func (s *textEditState) makeUndoInsert(where, length int) {
	s.undo.create(where, 0, length)
}

func (s *textEditState) makeUndoDelete(b textEditBuffer, where, length int) {
	if p := s.undo.create(where, length, 0); p != nil {
		for i := range p {
			p[i] = b.charAt(where + i)
		}
	}
}

func (s *textEditState) makeUndoReplace(b textEditBuffer, where, oldLen, newLen int) {
	if p := s.undo.create(where, oldLen, newLen); p != nil {
		for i := range p {
			p[i] = b.charAt(where + i)
		}
	}
}

func (s *textEditState) undoStep(b textEditBuffer) {
	u := &s.undo
	if u.undoPoint == 0 {
		return
	}
	rec := u.rec[u.undoPoint-1]
	r := &u.rec[u.redoPoint-1]
	r.charStorage = -1
	r.insertLen = rec.deleteLen
	r.deleteLen = rec.insertLen
	r.where = rec.where

	if rec.deleteLen > 0 {
		if u.undoCharPoint+rec.deleteLen >= textUndoCharCount {
			// No room to save the deleted runes; the redo record still
			// deletes but cannot reinsert.
			r.insertLen = 0
		} else {
			for u.undoCharPoint+rec.deleteLen > u.redoCharPoint {
				if u.redoPoint == textUndoStateCount {
					return
				}
				u.discardRedo()
			}
			r = &u.rec[u.redoPoint-1]
			r.charStorage = u.redoCharPoint - rec.deleteLen
			u.redoCharPoint -= rec.deleteLen
			for i := 0; i < rec.deleteLen; i++ {
				u.chars[r.charStorage+i] = b.charAt(rec.where + i)
			}
		}
		b.deleteChars(rec.where, rec.deleteLen)
	}
	if rec.insertLen > 0 {
		b.insertChars(rec.where, u.chars[rec.charStorage:rec.charStorage+rec.insertLen])
		u.undoCharPoint -= rec.insertLen
	}
	s.cursor = rec.where + rec.insertLen
	u.undoPoint--
	u.redoPoint--
}

func (s *textEditState) redoStep(b textEditBuffer) {
	u := &s.undo
	if u.redoPoint == textUndoStateCount {
		return
	}
	rec := &u.rec[u.undoPoint]
	r := u.rec[u.redoPoint]
	rec.deleteLen = r.insertLen
	rec.insertLen = r.deleteLen
	rec.where = r.where
	rec.charStorage = -1

	if r.deleteLen > 0 {
		if u.undoCharPoint+rec.insertLen > u.redoCharPoint {
			rec.insertLen = 0
			rec.deleteLen = 0
		} else {
			rec.charStorage = u.undoCharPoint
			u.undoCharPoint += rec.insertLen
			for i := 0; i < rec.insertLen; i++ {
				u.chars[rec.charStorage+i] = b.charAt(rec.where + i)
			}
		}
		b.deleteChars(r.where, r.deleteLen)
	}
	if r.insertLen > 0 {
		b.insertChars(r.where, u.chars[r.charStorage:r.charStorage+r.insertLen])
		u.redoCharPoint += r.insertLen
	}
	s.cursor = r.where + r.insertLen
	u.undoPoint++
	u.redoPoint++
}

// undoAvail returns how many steps can be undone.
func (s *textEditState) undoAvail() int { return s.undo.undoPoint }

// redoAvail returns how many steps can be redone.
func (s *textEditState) redoAvail() int { return textUndoStateCount - s.undo.redoPoint }

// ============================================================================
// Word boundaries
// ============================================================================

func isBlankRune(c rune) bool {
	return c == ' ' || c == '\t' || c == 0x3000
}

func isSeparator(c rune) bool {
	if isBlankRune(c) {
		return true
	}
	switch c {
	case ',', ';', '(', ')', '{', '}', '[', ']', '|':
		return true
	}
	return false
}

// textWordLeft returns the start of the word before idx.
func textWordLeft(text []rune, idx int) int {
	idx--
	for idx >= 0 && !(idx == 0 || (isSeparator(text[idx-1]) && !isSeparator(text[idx]))) {
		idx--
	}
	return max(idx, 0)
}

// textWordRight returns the next word start after idx, or with endOfWord
// (OS X) the next word end.
func textWordRight(text []rune, idx int, endOfWord bool) int {
	idx++
	n := len(text)
	for idx < n {
		var boundary bool
		if endOfWord {
			boundary = !isSeparator(text[idx-1]) && isSeparator(text[idx])
		} else {
			boundary = isSeparator(text[idx-1]) && !isSeparator(text[idx])
		}
		if boundary {
			break
		}
		idx++
	}
	return min(idx, n)
}
