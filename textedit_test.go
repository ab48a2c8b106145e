package anchor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runeBuffer lays text out in a fixed-width grid: every rune is one unit
// wide and every row ten units tall. limit caps the length when non-zero.
type runeBuffer struct {
	text  []rune
	limit int
}

func newRuneBuffer(s string) *runeBuffer { return &runeBuffer{text: []rune(s)} }

func (b *runeBuffer) String() string { return string(b.text) }

func (b *runeBuffer) textLen() int      { return len(b.text) }
func (b *runeBuffer) charAt(i int) rune { return b.text[i] }

func (b *runeBuffer) charWidth(lineStart, i int) float32 {
	if b.text[lineStart+i] == '\n' {
		return textNewlineWidth
	}
	return 1
}

func (b *runeBuffer) layoutRow(lineStart int) textEditRow {
	n := 0
	for lineStart+n < len(b.text) {
		n++
		if b.text[lineStart+n-1] == '\n' {
			break
		}
	}
	width := float32(n)
	if n > 0 && b.text[lineStart+n-1] == '\n' {
		width--
	}
	return textEditRow{X1: width, BaselineYDelta: 10, YMax: 10, NumChars: n}
}

func (b *runeBuffer) deleteChars(pos, n int) {
	b.text = append(b.text[:pos], b.text[pos+n:]...)
}

func (b *runeBuffer) insertChars(pos int, text []rune) bool {
	if b.limit > 0 && len(b.text)+len(text) > b.limit {
		return false
	}
	b.text = append(b.text[:pos], append(append([]rune(nil), text...), b.text[pos:]...)...)
	return true
}

func (b *runeBuffer) wordLeft(i int) int  { return textWordLeft(b.text, i) }
func (b *runeBuffer) wordRight(i int) int { return textWordRight(b.text, i, false) }

func newEditState(singleLine bool, cursor int) *textEditState {
	s := &textEditState{}
	s.clearState(singleLine)
	s.cursor = cursor
	return s
}

func typeRunes(s *textEditState, b textEditBuffer, text string) {
	for _, r := range text {
		s.key(b, int(r))
	}
}

func TestTextEditTypingAndUndo(t *testing.T) {
	b := newRuneBuffer("")
	s := newEditState(true, 0)

	typeRunes(s, b, "abc")
	assert.Equal(t, "abc", b.String())
	assert.Equal(t, 3, s.cursor)
	assert.Equal(t, 3, s.undoAvail())

	s.key(b, textKeyUndo)
	assert.Equal(t, "ab", b.String())
	assert.Equal(t, 2, s.cursor)

	s.key(b, textKeyUndo)
	s.key(b, textKeyUndo)
	assert.Empty(t, b.String())
	assert.Zero(t, s.undoAvail())
	assert.Equal(t, 3, s.redoAvail())

	s.key(b, textKeyRedo)
	assert.Equal(t, "a", b.String())
	assert.Equal(t, 1, s.cursor)

	// Undo with nothing left is a no-op.
	s.key(b, textKeyUndo)
	s.key(b, textKeyUndo)
	assert.Empty(t, b.String())
}

func TestTextEditNewEditFlushesRedo(t *testing.T) {
	b := newRuneBuffer("")
	s := newEditState(true, 0)

	typeRunes(s, b, "ab")
	s.key(b, textKeyUndo)
	require.Equal(t, 1, s.redoAvail())

	typeRunes(s, b, "c")
	assert.Equal(t, "ac", b.String())
	assert.Zero(t, s.redoAvail())
}

func TestTextEditUndoHistoryIsBounded(t *testing.T) {
	b := newRuneBuffer("")
	s := newEditState(true, 0)

	typeRunes(s, b, strings.Repeat("x", textUndoStateCount+20))
	assert.Equal(t, textUndoStateCount, s.undoAvail())

	for range textUndoStateCount + 5 {
		s.key(b, textKeyUndo)
	}
	// The oldest twenty insertions fell out of the history.
	assert.Equal(t, strings.Repeat("x", 20), b.String())
}

func TestTextEditSelectWordAndBackspace(t *testing.T) {
	b := newRuneBuffer("hello world")
	s := newEditState(true, 11)

	s.key(b, textKeyWordLeft|textKeyShift)
	assert.Equal(t, 6, s.cursor)
	assert.Equal(t, 11, s.selectStart)
	assert.Equal(t, 6, s.selectEnd)

	s.key(b, textKeyBackspace)
	assert.Equal(t, "hello ", b.String())
	assert.Equal(t, 6, s.cursor)
	assert.False(t, s.hasSelection())

	s.key(b, textKeyUndo)
	assert.Equal(t, "hello world", b.String())
	assert.Equal(t, 11, s.cursor)
}

func TestTextEditTypingReplacesSelection(t *testing.T) {
	b := newRuneBuffer("abcdef")
	s := newEditState(true, 1)
	s.selectStart, s.selectEnd = 1, 4

	typeRunes(s, b, "X")
	assert.Equal(t, "aXef", b.String())
	assert.Equal(t, 2, s.cursor)

	// One undo for the insertion, one for the deleted selection.
	s.key(b, textKeyUndo)
	assert.Equal(t, "aef", b.String())
	s.key(b, textKeyUndo)
	assert.Equal(t, "abcdef", b.String())
}

func TestTextEditDeleteAndBackspaceAtEdges(t *testing.T) {
	b := newRuneBuffer("abc")
	s := newEditState(true, 1)

	s.key(b, textKeyDelete)
	assert.Equal(t, "ac", b.String())
	assert.Equal(t, 1, s.cursor)

	s.key(b, textKeyTextStart)
	s.key(b, textKeyBackspace)
	assert.Equal(t, "ac", b.String())

	s.key(b, textKeyTextEnd)
	s.key(b, textKeyDelete)
	assert.Equal(t, "ac", b.String())
	assert.Equal(t, 2, s.cursor)
}

func TestTextEditWordMoves(t *testing.T) {
	b := newRuneBuffer("hello world")
	s := newEditState(true, 0)

	s.key(b, textKeyWordRight)
	assert.Equal(t, 6, s.cursor)
	s.key(b, textKeyWordRight)
	assert.Equal(t, 11, s.cursor)
	s.key(b, textKeyWordLeft)
	assert.Equal(t, 6, s.cursor)
	s.key(b, textKeyWordLeft)
	assert.Equal(t, 0, s.cursor)
}

func TestTextEditSingleLineVerticalKeys(t *testing.T) {
	b := newRuneBuffer("abc")
	s := newEditState(true, 1)

	s.key(b, textKeyDown)
	assert.Equal(t, 2, s.cursor)

	s.key(b, textKeyUp|textKeyShift)
	assert.Equal(t, 1, s.cursor)
	assert.Equal(t, 2, s.selectStart)
	assert.Equal(t, 1, s.selectEnd)

	// A newline is not accepted in a single line field.
	s.key(b, textKeyRight)
	s.key(b, '\n')
	assert.Equal(t, "abc", b.String())
}

func TestTextEditMultilineVerticalKeys(t *testing.T) {
	b := newRuneBuffer("ab\ncd")
	s := newEditState(false, 1)

	s.key(b, textKeyDown)
	assert.Equal(t, 4, s.cursor, "down keeps the column")

	s.key(b, textKeyLineEnd)
	assert.Equal(t, 5, s.cursor)
	s.key(b, textKeyLineStart)
	assert.Equal(t, 3, s.cursor)

	s.key(b, textKeyRight)
	s.key(b, textKeyUp)
	assert.Equal(t, 1, s.cursor)

	// The last row has no row below it.
	s.key(b, textKeyTextEnd)
	s.key(b, textKeyDown)
	assert.Equal(t, 5, s.cursor)

	s.key(b, '\n')
	assert.Equal(t, "ab\ncd\n", b.String())
}

func TestTextEditInsertMode(t *testing.T) {
	b := newRuneBuffer("abc")
	s := newEditState(true, 0)

	s.key(b, textKeyInsert)
	require.True(t, s.insertMode)
	typeRunes(s, b, "xy")
	assert.Equal(t, "xyc", b.String())
	assert.Equal(t, 2, s.cursor)

	s.key(b, textKeyUndo)
	assert.Equal(t, "xbc", b.String())

	// At the end of the text overwrite mode appends.
	s.key(b, textKeyTextEnd)
	typeRunes(s, b, "z")
	assert.Equal(t, "xbcz", b.String())
}

func TestTextEditClickAndDrag(t *testing.T) {
	b := newRuneBuffer("abcdef")
	s := newEditState(true, 0)

	s.click(b, 2.6, 40)
	assert.Equal(t, 3, s.cursor)
	assert.False(t, s.hasSelection())

	s.drag(b, 0.2, 0)
	assert.Equal(t, 0, s.cursor)
	assert.Equal(t, 3, s.selectStart)
	assert.Equal(t, 0, s.selectEnd)

	s.click(b, 100, 0)
	assert.Equal(t, 6, s.cursor)
}

func TestTextEditPasteRespectsCapacity(t *testing.T) {
	b := newRuneBuffer("abc")
	b.limit = 5
	s := newEditState(true, 3)

	assert.False(t, s.paste(b, []rune("defg")))
	assert.Equal(t, "abc", b.String())
	assert.Equal(t, 3, s.cursor)

	assert.True(t, s.paste(b, []rune("de")))
	assert.Equal(t, "abcde", b.String())
	assert.Equal(t, 5, s.cursor)

	// Typing past the limit is dropped.
	typeRunes(s, b, "f")
	assert.Equal(t, "abcde", b.String())
}

func TestTextEditCutAndReplace(t *testing.T) {
	b := newRuneBuffer("abcdef")
	s := newEditState(true, 0)

	assert.False(t, s.cut(b))
	s.selectStart, s.selectEnd = 4, 2
	assert.True(t, s.cut(b))
	assert.Equal(t, "abef", b.String())
	assert.Equal(t, 2, s.cursor)

	s.replace(b, []rune("xyz"))
	assert.Equal(t, "xyz", b.String())
	assert.Equal(t, 3, s.cursor)

	s.key(b, textKeyUndo)
	assert.Equal(t, "abef", b.String())
}

func TestTextWordBoundaries(t *testing.T) {
	text := []rune("foo bar(baz)")
	tests := []struct {
		name      string
		idx       int
		endOfWord bool
		left      int
		right     int
	}{
		{name: "start", idx: 0, left: 0, right: 4},
		{name: "inside first word", idx: 2, left: 0, right: 4},
		{name: "word start", idx: 4, left: 0, right: 8},
		{name: "after paren", idx: 8, left: 4, right: 12},
		{name: "end", idx: 12, left: 8, right: 12},
		{name: "end of word", idx: 0, endOfWord: true, left: 0, right: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.left, textWordLeft(text, tt.idx), "left")
			assert.Equal(t, tt.right, textWordRight(text, tt.idx, tt.endOfWord), "right")
		})
	}
}
