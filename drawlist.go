package anchor

import (
	"sync"
	"unicode/utf8"

	"github.com/chewxy/math32"
)

// Vertex represents a vertex for UI rendering.
// Memory layout matches OpenGL vertex attribute expectations.
type Vertex struct {
	Pos      [2]float32 // Position (x, y)
	TexCoord [2]float32 // Texture coordinates (u, v)
	Color    uint32     // RGBA packed color
}

// DrawCmd represents a single draw command.
// Commands are batched by texture and clip rectangle.
type DrawCmd struct {
	ElemCount    uint32     // Number of indices to draw
	ClipRect     [4]float32 // Clip rectangle (x1, y1, x2, y2)
	TextureID    uint32     // Backend texture ID (0 = no texture)
	VertexOffset uint32     // Base vertex added to every index
	IndexOffset  uint32     // Offset into index buffer
}

// DrawCornerFlags selects which corners of a rectangle are rounded.
type DrawCornerFlags int

const (
	DrawCornerNone     DrawCornerFlags = 0
	DrawCornerTopLeft  DrawCornerFlags = 1 << 0
	DrawCornerTopRight DrawCornerFlags = 1 << 1
	DrawCornerBotLeft  DrawCornerFlags = 1 << 2
	DrawCornerBotRight DrawCornerFlags = 1 << 3
	DrawCornerTop                      = DrawCornerTopLeft | DrawCornerTopRight
	DrawCornerBot                      = DrawCornerBotLeft | DrawCornerBotRight
	DrawCornerLeft                     = DrawCornerTopLeft | DrawCornerBotLeft
	DrawCornerRight                    = DrawCornerTopRight | DrawCornerBotRight
	DrawCornerAll      DrawCornerFlags = 0xF
)

// maxCmdVertices keeps per-command indices within uint16 range.
const maxCmdVertices = 1 << 16

// drawListPool provides efficient reuse of DrawList buffers.
// This avoids allocations on every frame, which is critical for
// immediate-mode UI where we rebuild the entire draw list each frame.
var drawListPool = sync.Pool{
	New: func() any {
		return &DrawList{
			VtxBuffer: make([]Vertex, 0, 1024),
			IdxBuffer: make([]uint16, 0, 2048),
			CmdBuffer: make([]DrawCmd, 0, 16),
			clipStack: make([][4]float32, 0, 8),
			path:      make([]Vec2, 0, 64),
		}
	},
}

// AcquireDrawList gets a DrawList from the pool.
// Call ReleaseDrawList when done to return it.
func AcquireDrawList(owner string) *DrawList {
	dl := drawListPool.Get().(*DrawList)
	dl.Clear()
	dl.owner = owner
	return dl
}

// ReleaseDrawList returns a DrawList to the pool for reuse.
func ReleaseDrawList(dl *DrawList) {
	if dl != nil {
		drawListPool.Put(dl)
	}
}

// DrawList accumulates draw commands for one window or layer.
type DrawList struct {
	CmdBuffer []DrawCmd
	VtxBuffer []Vertex
	IdxBuffer []uint16

	owner        string
	clipStack    [][4]float32
	currentClip  [4]float32
	textureID    uint32
	cmdOffset    uint32 // base vertex of the current command
	idxCmdOffset uint32 // first index of the current command
	path         []Vec2
}

var fullClip = [4]float32{-8192, -8192, 8192, 8192}

// Clear resets the DrawList for a new frame.
// Retains allocated capacity to avoid reallocations.
func (dl *DrawList) Clear() {
	dl.CmdBuffer = dl.CmdBuffer[:0]
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
	dl.clipStack = dl.clipStack[:0]
	dl.path = dl.path[:0]
	dl.currentClip = fullClip
	dl.textureID = 0
	dl.cmdOffset = 0
	dl.idxCmdOffset = 0
}

// Owner returns the name of the window that owns the list.
func (dl *DrawList) Owner() string { return dl.owner }

// ============================================================================
// State
// ============================================================================

// PushClipRect pushes a clip rectangle, optionally intersected with the
// current one. All subsequent primitives are clipped to it.
func (dl *DrawList) PushClipRect(min, max Vec2, intersectWithCurrent bool) {
	cr := [4]float32{min.X, min.Y, max.X, max.Y}
	if intersectWithCurrent {
		cur := dl.currentClip
		cr[0] = maxf(cr[0], cur[0])
		cr[1] = maxf(cr[1], cur[1])
		cr[2] = minf(cr[2], cur[2])
		cr[3] = minf(cr[3], cur[3])
	}
	cr[2] = maxf(cr[0], cr[2])
	cr[3] = maxf(cr[1], cr[3])
	dl.clipStack = append(dl.clipStack, dl.currentClip)
	dl.setState(cr, dl.textureID)
}

// PushClipRectFullScreen pushes a clip rectangle covering everything.
func (dl *DrawList) PushClipRectFullScreen() {
	dl.PushClipRect(Vec2{fullClip[0], fullClip[1]}, Vec2{fullClip[2], fullClip[3]}, false)
}

// PopClipRect pops the clip rectangle stack.
func (dl *DrawList) PopClipRect() {
	n := len(dl.clipStack)
	if n == 0 {
		return
	}
	cr := dl.clipStack[n-1]
	dl.clipStack = dl.clipStack[:n-1]
	dl.setState(cr, dl.textureID)
}

// ClipRectMin returns the top-left of the current clip rectangle.
func (dl *DrawList) ClipRectMin() Vec2 { return Vec2{dl.currentClip[0], dl.currentClip[1]} }

// ClipRectMax returns the bottom-right of the current clip rectangle.
func (dl *DrawList) ClipRectMax() Vec2 { return Vec2{dl.currentClip[2], dl.currentClip[3]} }

// setTexture switches the texture for subsequent primitives.
func (dl *DrawList) setTexture(textureID uint32) {
	if dl.textureID != textureID || len(dl.CmdBuffer) == 0 {
		dl.setState(dl.currentClip, textureID)
	}
}

// setState finishes the current command and starts one with new state.
// An empty current command is reused in place.
func (dl *DrawList) setState(clip [4]float32, textureID uint32) {
	dl.currentClip = clip
	dl.textureID = textureID
	if n := len(dl.CmdBuffer); n > 0 {
		last := &dl.CmdBuffer[n-1]
		if uint32(len(dl.IdxBuffer)) == dl.idxCmdOffset {
			last.ClipRect = clip
			last.TextureID = textureID
			return
		}
		last.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}
	dl.startCommand()
}

func (dl *DrawList) startCommand() {
	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		ClipRect:     dl.currentClip,
		TextureID:    dl.textureID,
		VertexOffset: uint32(len(dl.VtxBuffer)),
		IndexOffset:  uint32(len(dl.IdxBuffer)),
	})
	dl.cmdOffset = uint32(len(dl.VtxBuffer))
	dl.idxCmdOffset = uint32(len(dl.IdxBuffer))
}

// reserve makes room for vtxCount vertices in the current command and returns
// the index of the first one relative to the command's base vertex. A new
// command is started when the 16-bit index range would overflow.
func (dl *DrawList) reserve(vtxCount int) uint16 {
	if len(dl.CmdBuffer) == 0 {
		dl.startCommand()
	}
	if len(dl.VtxBuffer)-int(dl.cmdOffset)+vtxCount > maxCmdVertices {
		last := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		last.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
		dl.startCommand()
	}
	return uint16(len(dl.VtxBuffer) - int(dl.cmdOffset))
}

func (dl *DrawList) vtx(pos Vec2, uv [2]float32, col uint32) {
	dl.VtxBuffer = append(dl.VtxBuffer, Vertex{Pos: [2]float32{pos.X, pos.Y}, TexCoord: uv, Color: col})
}

// primQuad adds an arbitrary quad a-b-c-d.
func (dl *DrawList) primQuad(a, b, c, d Vec2, col uint32) {
	idx := dl.reserve(4)
	dl.vtx(a, [2]float32{}, col)
	dl.vtx(b, [2]float32{}, col)
	dl.vtx(c, [2]float32{}, col)
	dl.vtx(d, [2]float32{}, col)
	dl.IdxBuffer = append(dl.IdxBuffer, idx, idx+1, idx+2, idx, idx+2, idx+3)
}

// primRectUV adds an axis-aligned textured quad.
func (dl *DrawList) primRectUV(a, c Vec2, uvA, uvC Vec2, col uint32) {
	idx := dl.reserve(4)
	dl.vtx(a, [2]float32{uvA.X, uvA.Y}, col)
	dl.vtx(Vec2{c.X, a.Y}, [2]float32{uvC.X, uvA.Y}, col)
	dl.vtx(c, [2]float32{uvC.X, uvC.Y}, col)
	dl.vtx(Vec2{a.X, c.Y}, [2]float32{uvA.X, uvC.Y}, col)
	dl.IdxBuffer = append(dl.IdxBuffer, idx, idx+1, idx+2, idx, idx+2, idx+3)
}

// ============================================================================
// Primitives
// ============================================================================

// AddLine draws a line between two points.
func (dl *DrawList) AddLine(p1, p2 Vec2, col uint32, thickness float32) {
	if col&colorAlphaMask == 0 {
		return
	}
	dl.setTexture(0)
	dl.addSegment(p1.Add(Vec2{0.5, 0.5}), p2.Add(Vec2{0.5, 0.5}), col, thickness)
}

func (dl *DrawList) addSegment(p1, p2 Vec2, col uint32, thickness float32) {
	d := p2.Sub(p1)
	inv := float32(1)
	if l2 := d.LengthSqr(); l2 > 0 {
		inv = 1 / math32.Sqrt(l2)
	}
	n := Vec2{-d.Y * inv * thickness * 0.5, d.X * inv * thickness * 0.5}
	dl.primQuad(p1.Add(n), p2.Add(n), p2.Sub(n), p1.Sub(n), col)
}

// AddRect draws a rectangle outline.
func (dl *DrawList) AddRect(min, max Vec2, col uint32, rounding float32, corners DrawCornerFlags, thickness float32) {
	if col&colorAlphaMask == 0 {
		return
	}
	dl.PathRect(min.Add(Vec2{0.5, 0.5}), max.Sub(Vec2{0.5, 0.5}), rounding, corners)
	dl.PathStroke(col, true, thickness)
}

// AddRectFilled draws a filled rectangle.
func (dl *DrawList) AddRectFilled(min, max Vec2, col uint32, rounding float32, corners DrawCornerFlags) {
	if col&colorAlphaMask == 0 {
		return
	}
	if rounding > 0 && corners != DrawCornerNone {
		dl.PathRect(min, max, rounding, corners)
		dl.PathFillConvex(col)
		return
	}
	dl.setTexture(0)
	dl.primQuad(min, Vec2{max.X, min.Y}, max, Vec2{min.X, max.Y}, col)
}

// AddRectFilledMultiColor draws a rectangle with a color per corner.
func (dl *DrawList) AddRectFilledMultiColor(min, max Vec2, colUL, colUR, colBR, colBL uint32) {
	if (colUL|colUR|colBR|colBL)&colorAlphaMask == 0 {
		return
	}
	dl.setTexture(0)
	idx := dl.reserve(4)
	dl.vtx(min, [2]float32{}, colUL)
	dl.vtx(Vec2{max.X, min.Y}, [2]float32{}, colUR)
	dl.vtx(max, [2]float32{}, colBR)
	dl.vtx(Vec2{min.X, max.Y}, [2]float32{}, colBL)
	dl.IdxBuffer = append(dl.IdxBuffer, idx, idx+1, idx+2, idx, idx+2, idx+3)
}

// AddTriangle draws a triangle outline.
func (dl *DrawList) AddTriangle(p1, p2, p3 Vec2, col uint32, thickness float32) {
	if col&colorAlphaMask == 0 {
		return
	}
	dl.PathLineTo(p1)
	dl.PathLineTo(p2)
	dl.PathLineTo(p3)
	dl.PathStroke(col, true, thickness)
}

// AddTriangleFilled draws a filled triangle.
func (dl *DrawList) AddTriangleFilled(p1, p2, p3 Vec2, col uint32) {
	if col&colorAlphaMask == 0 {
		return
	}
	dl.setTexture(0)
	idx := dl.reserve(3)
	dl.vtx(p1, [2]float32{}, col)
	dl.vtx(p2, [2]float32{}, col)
	dl.vtx(p3, [2]float32{}, col)
	dl.IdxBuffer = append(dl.IdxBuffer, idx, idx+1, idx+2)
}

// AddTriangleFilledMultiColor draws a triangle with a color per vertex.
func (dl *DrawList) AddTriangleFilledMultiColor(p1, p2, p3 Vec2, col1, col2, col3 uint32) {
	if (col1|col2|col3)&colorAlphaMask == 0 {
		return
	}
	dl.setTexture(0)
	idx := dl.reserve(3)
	dl.vtx(p1, [2]float32{}, col1)
	dl.vtx(p2, [2]float32{}, col2)
	dl.vtx(p3, [2]float32{}, col3)
	dl.IdxBuffer = append(dl.IdxBuffer, idx, idx+1, idx+2)
}

// AddQuadFilledMultiColor draws the quad a-b-c-d with a color per vertex.
func (dl *DrawList) AddQuadFilledMultiColor(a, b, c, d Vec2, colA, colB, colC, colD uint32) {
	if (colA|colB|colC|colD)&colorAlphaMask == 0 {
		return
	}
	dl.setTexture(0)
	idx := dl.reserve(4)
	dl.vtx(a, [2]float32{}, colA)
	dl.vtx(b, [2]float32{}, colB)
	dl.vtx(c, [2]float32{}, colC)
	dl.vtx(d, [2]float32{}, colD)
	dl.IdxBuffer = append(dl.IdxBuffer, idx, idx+1, idx+2, idx, idx+2, idx+3)
}

// AddCircle draws a circle outline. segments <= 0 picks a count from radius.
func (dl *DrawList) AddCircle(center Vec2, radius float32, col uint32, segments int, thickness float32) {
	if col&colorAlphaMask == 0 || radius <= 0 {
		return
	}
	segments = circleSegments(radius, segments)
	aMax := math32.Pi * 2 * float32(segments-1) / float32(segments)
	dl.PathArcTo(center, radius-0.5, 0, aMax, segments-1)
	dl.PathStroke(col, true, thickness)
}

// AddCircleFilled draws a filled circle.
func (dl *DrawList) AddCircleFilled(center Vec2, radius float32, col uint32, segments int) {
	if col&colorAlphaMask == 0 || radius <= 0 {
		return
	}
	segments = circleSegments(radius, segments)
	aMax := math32.Pi * 2 * float32(segments-1) / float32(segments)
	dl.PathArcTo(center, radius, 0, aMax, segments-1)
	dl.PathFillConvex(col)
}

func circleSegments(radius float32, segments int) int {
	if segments > 2 {
		return segments
	}
	return clampi(int(radius*0.75)+8, 12, 64)
}

// AddPolyline strokes a sequence of points.
func (dl *DrawList) AddPolyline(points []Vec2, col uint32, closed bool, thickness float32) {
	if len(points) < 2 || col&colorAlphaMask == 0 {
		return
	}
	dl.setTexture(0)
	count := len(points) - 1
	if closed {
		count = len(points)
	}
	for i := 0; i < count; i++ {
		j := (i + 1) % len(points)
		dl.addSegment(points[i], points[j], col, thickness)
	}
}

// AddBezierCubic strokes a cubic Bezier curve from p1 to p4 with control
// points p2 and p3. segments <= 0 derives a count from the curve length.
func (dl *DrawList) AddBezierCubic(p1, p2, p3, p4 Vec2, col uint32, thickness float32, segments int) {
	if col&colorAlphaMask == 0 {
		return
	}
	dl.PathLineTo(p1)
	dl.PathBezierCubicCurveTo(p2, p3, p4, segments)
	dl.PathStroke(col, false, thickness)
}

// PathBezierCubicCurveTo appends a cubic Bezier starting at the last path
// point.
func (dl *DrawList) PathBezierCubicCurveTo(p2, p3, p4 Vec2, segments int) {
	if len(dl.path) == 0 {
		dl.path = append(dl.path, p4)
		return
	}
	p1 := dl.path[len(dl.path)-1]
	if segments <= 0 {
		hull := math32.Sqrt(p2.Sub(p1).LengthSqr()) + math32.Sqrt(p3.Sub(p2).LengthSqr()) + math32.Sqrt(p4.Sub(p3).LengthSqr())
		segments = clampi(int(hull/8)+1, 4, 64)
	}
	for i := 1; i <= segments; i++ {
		t := float32(i) / float32(segments)
		u := 1 - t
		w1, w2, w3, w4 := u*u*u, 3*u*u*t, 3*u*t*t, t*t*t
		dl.path = append(dl.path, Vec2{
			X: w1*p1.X + w2*p2.X + w3*p3.X + w4*p4.X,
			Y: w1*p1.Y + w2*p2.Y + w3*p3.Y + w4*p4.Y,
		})
	}
}

// AddConvexPolyFilled fills a convex polygon by triangle fan.
func (dl *DrawList) AddConvexPolyFilled(points []Vec2, col uint32) {
	if len(points) < 3 || col&colorAlphaMask == 0 {
		return
	}
	dl.setTexture(0)
	idx := dl.reserve(len(points))
	for _, p := range points {
		dl.vtx(p, [2]float32{}, col)
	}
	for i := 2; i < len(points); i++ {
		dl.IdxBuffer = append(dl.IdxBuffer, idx, idx+uint16(i-1), idx+uint16(i))
	}
}

// AddImage draws a textured rectangle.
func (dl *DrawList) AddImage(textureID uint32, min, max, uvMin, uvMax Vec2, col uint32) {
	if col&colorAlphaMask == 0 {
		return
	}
	dl.setTexture(textureID)
	dl.primRectUV(min, max, uvMin, uvMax, col)
}

// AddText draws text with font at pixel size. When wrapWidth is positive
// lines break to fit it; cpuClip, when set, culls glyphs outside it.
func (dl *DrawList) AddText(font Font, size float32, pos Vec2, col uint32, text string, wrapWidth float32, cpuClip *Rect) {
	if col&colorAlphaMask == 0 || text == "" || font == nil {
		return
	}
	clip := Rect{Min: Vec2{dl.currentClip[0], dl.currentClip[1]}, Max: Vec2{dl.currentClip[2], dl.currentClip[3]}}
	if cpuClip != nil {
		clip = clip.ClipWith(*cpuClip)
	}
	dl.setTexture(font.TextureID())

	scale := fontScale(font, size)
	x, y := floorf(pos.X), floorf(pos.Y)
	startX := x
	lineHeight := size
	wordWrapEOL := -1

	s := 0
	for s < len(text) {
		if y > clip.Max.Y {
			break
		}
		if wrapWidth > 0 {
			if wordWrapEOL < 0 {
				wordWrapEOL = s + calcWordWrapPosition(font, scale, text[s:], wrapWidth-(x-startX))
				if wordWrapEOL == s {
					wordWrapEOL++
				}
			}
			if s >= wordWrapEOL {
				x = startX
				y += lineHeight
				wordWrapEOL = -1
				for s < len(text) && isBlankASCII(text[s]) {
					s++
				}
				if s < len(text) && text[s] == '\n' {
					s++
				}
				continue
			}
		}

		r, n := utf8.DecodeRuneInString(text[s:])
		s += n
		if r == '\n' {
			x = startX
			y += lineHeight
			continue
		}
		if r == '\r' {
			continue
		}
		adv := font.GlyphAdvance(r, scale)
		if q, ok := font.GlyphQuad(r, x, y, scale); ok {
			if q.X1 >= clip.Min.X && q.X0 <= clip.Max.X && q.Y1 >= clip.Min.Y && q.Y0 <= clip.Max.Y {
				dl.primRectUV(Vec2{q.X0, q.Y0}, Vec2{q.X1, q.Y1}, Vec2{q.U0, q.V0}, Vec2{q.U1, q.V1}, col)
			}
		}
		x += adv
	}
}

// ============================================================================
// Paths
// ============================================================================

// PathClear drops the current path.
func (dl *DrawList) PathClear() { dl.path = dl.path[:0] }

// PathLineTo appends a point to the path.
func (dl *DrawList) PathLineTo(p Vec2) { dl.path = append(dl.path, p) }

// PathArcTo appends an arc from aMin to aMax (radians).
func (dl *DrawList) PathArcTo(center Vec2, radius, aMin, aMax float32, segments int) {
	if radius == 0 {
		dl.path = append(dl.path, center)
		return
	}
	if segments <= 0 {
		segments = 10
	}
	for i := 0; i <= segments; i++ {
		a := aMin + float32(i)/float32(segments)*(aMax-aMin)
		dl.path = append(dl.path, Vec2{center.X + math32.Cos(a)*radius, center.Y + math32.Sin(a)*radius})
	}
}

// PathArcToFast appends a quarter-resolution arc using twelfths of a turn.
func (dl *DrawList) PathArcToFast(center Vec2, radius float32, aMin12, aMax12 int) {
	if radius == 0 || aMin12 > aMax12 {
		dl.path = append(dl.path, center)
		return
	}
	for a := aMin12; a <= aMax12; a++ {
		ang := float32(a%12) / 12 * math32.Pi * 2
		dl.path = append(dl.path, Vec2{center.X + math32.Cos(ang)*radius, center.Y + math32.Sin(ang)*radius})
	}
}

// PathRect appends a rectangle with optional rounded corners.
func (dl *DrawList) PathRect(a, b Vec2, rounding float32, corners DrawCornerFlags) {
	rx, ry := rounding, rounding
	if corners&DrawCornerTop == DrawCornerTop || corners&DrawCornerBot == DrawCornerBot {
		rx = minf(rx, absf(b.X-a.X)*0.5-1)
	} else {
		rx = minf(rx, absf(b.X-a.X)-1)
	}
	if corners&DrawCornerLeft == DrawCornerLeft || corners&DrawCornerRight == DrawCornerRight {
		ry = minf(ry, absf(b.Y-a.Y)*0.5-1)
	} else {
		ry = minf(ry, absf(b.Y-a.Y)-1)
	}
	rounding = maxf(minf(rx, ry), 0)

	if rounding <= 0 || corners == DrawCornerNone {
		dl.PathLineTo(a)
		dl.PathLineTo(Vec2{b.X, a.Y})
		dl.PathLineTo(b)
		dl.PathLineTo(Vec2{a.X, b.Y})
		return
	}
	pick := func(f DrawCornerFlags) float32 {
		if corners&f != 0 {
			return rounding
		}
		return 0
	}
	tl, tr, br, bl := pick(DrawCornerTopLeft), pick(DrawCornerTopRight), pick(DrawCornerBotRight), pick(DrawCornerBotLeft)
	dl.PathArcToFast(Vec2{a.X + tl, a.Y + tl}, tl, 6, 9)
	dl.PathArcToFast(Vec2{b.X - tr, a.Y + tr}, tr, 9, 12)
	dl.PathArcToFast(Vec2{b.X - br, b.Y - br}, br, 0, 3)
	dl.PathArcToFast(Vec2{a.X + bl, b.Y - bl}, bl, 3, 6)
}

// PathFillConvex fills the current path and clears it.
func (dl *DrawList) PathFillConvex(col uint32) {
	dl.AddConvexPolyFilled(dl.path, col)
	dl.PathClear()
}

// PathStroke strokes the current path and clears it.
func (dl *DrawList) PathStroke(col uint32, closed bool, thickness float32) {
	dl.AddPolyline(dl.path, col, closed, thickness)
	dl.PathClear()
}

// ============================================================================
// Output
// ============================================================================

// Finalize closes the last command and drops empty ones.
// Must be called after all primitives are added.
func (dl *DrawList) Finalize() {
	if len(dl.CmdBuffer) > 0 {
		last := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		last.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}
	filtered := dl.CmdBuffer[:0]
	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount > 0 {
			filtered = append(filtered, cmd)
		}
	}
	dl.CmdBuffer = filtered
	dl.idxCmdOffset = uint32(len(dl.IdxBuffer))
}

// Empty reports whether the list has no geometry.
func (dl *DrawList) Empty() bool { return len(dl.IdxBuffer) == 0 }
