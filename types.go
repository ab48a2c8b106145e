package anchor

import "github.com/chewxy/math32"

// floatMax is the largest finite float32.
const floatMax float32 = 3.40282346638528859811704183484516925440e+38

// floatEpsilon is the gap between 1 and the next float32.
const floatEpsilon float32 = 1.1920928955078125e-07

// Vec2 represents a 2D vector for positions and sizes.
type Vec2 struct {
	X, Y float32
}

// V2 is shorthand for Vec2{X: x, Y: y}.
func V2(x, y float32) Vec2 { return Vec2{X: x, Y: y} }

// Add returns the sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// MulV returns the component-wise product.
func (v Vec2) MulV(other Vec2) Vec2 {
	return Vec2{X: v.X * other.X, Y: v.Y * other.Y}
}

// LengthSqr returns the squared length.
func (v Vec2) LengthSqr() float32 { return v.X*v.X + v.Y*v.Y }

// Floor rounds both components down.
func (v Vec2) Floor() Vec2 {
	return Vec2{X: math32.Floor(v.X), Y: math32.Floor(v.Y)}
}

// Vec4 holds a float color (R, G, B, A in X, Y, Z, W) or four scalars.
type Vec4 struct {
	X, Y, Z, W float32
}

// Rect is an axis-aligned rectangle given by its corners.
// Min is inclusive and Max is exclusive.
type Rect struct {
	Min, Max Vec2
}

// R is shorthand for a Rect built from four coordinates.
func R(x1, y1, x2, y2 float32) Rect {
	return Rect{Min: Vec2{x1, y1}, Max: Vec2{x2, y2}}
}

// RectFromSize builds a rectangle from its top-left corner and size.
func RectFromSize(pos, size Vec2) Rect {
	return Rect{Min: pos, Max: pos.Add(size)}
}

func (r Rect) Width() float32  { return r.Max.X - r.Min.X }
func (r Rect) Height() float32 { return r.Max.Y - r.Min.Y }
func (r Rect) Size() Vec2      { return Vec2{r.Width(), r.Height()} }

// Center returns the middle point of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{(r.Min.X + r.Max.X) * 0.5, (r.Min.Y + r.Max.Y) * 0.5}
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Min.X && p.Y >= r.Min.Y && p.X < r.Max.X && p.Y < r.Max.Y
}

// ContainsRect returns true if other lies entirely inside r.
func (r Rect) ContainsRect(other Rect) bool {
	return other.Min.X >= r.Min.X && other.Min.Y >= r.Min.Y &&
		other.Max.X <= r.Max.X && other.Max.Y <= r.Max.Y
}

// Overlaps returns true if two rectangles intersect.
func (r Rect) Overlaps(other Rect) bool {
	return other.Min.Y < r.Max.Y && other.Max.Y > r.Min.Y &&
		other.Min.X < r.Max.X && other.Max.X > r.Min.X
}

// Union grows r to include other.
func (r Rect) Union(other Rect) Rect {
	return Rect{Min: minV2(r.Min, other.Min), Max: maxV2(r.Max, other.Max)}
}

// Expand grows the rectangle by amount on every side.
func (r Rect) Expand(amount float32) Rect {
	return Rect{
		Min: Vec2{r.Min.X - amount, r.Min.Y - amount},
		Max: Vec2{r.Max.X + amount, r.Max.Y + amount},
	}
}

// ExpandV grows the rectangle by amount.X horizontally and amount.Y vertically.
func (r Rect) ExpandV(amount Vec2) Rect {
	return Rect{Min: r.Min.Sub(amount), Max: r.Max.Add(amount)}
}

// Translate moves the rectangle by d.
func (r Rect) Translate(d Vec2) Rect {
	return Rect{Min: r.Min.Add(d), Max: r.Max.Add(d)}
}

// ClipWith intersects r with clip, keeping r valid when they do not overlap.
func (r Rect) ClipWith(clip Rect) Rect {
	return Rect{Min: maxV2(r.Min, clip.Min), Max: minV2(r.Max, clip.Max)}
}

// ClipWithFull intersects r with clip, clamping both corners into clip.
func (r Rect) ClipWithFull(clip Rect) Rect {
	return Rect{Min: clampV2(r.Min, clip.Min, clip.Max), Max: clampV2(r.Max, clip.Min, clip.Max)}
}

// Floor rounds both corners down.
func (r Rect) Floor() Rect {
	return Rect{Min: r.Min.Floor(), Max: r.Max.Floor()}
}

// IsInverted reports whether Min lies past Max on either axis.
func (r Rect) IsInverted() bool { return r.Min.X > r.Max.X || r.Min.Y > r.Max.Y }

// Array returns the rectangle as x1, y1, x2, y2.
func (r Rect) Array() [4]float32 { return [4]float32{r.Min.X, r.Min.Y, r.Max.X, r.Max.Y} }

// Dir is a cardinal direction.
type Dir int

const (
	DirNone Dir = iota - 1
	DirLeft
	DirRight
	DirUp
	DirDown
)

// Cond selects when a SetNext* call applies.
type Cond int

const (
	CondNone         Cond = 0
	CondAlways       Cond = 1 << 0
	CondOnce         Cond = 1 << 1
	CondFirstUseEver Cond = 1 << 2
	CondAppearing    Cond = 1 << 3
)

// clampf clamps a float32 value to a range.
func clampf(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// maxf returns the maximum of two float32 values.
func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// minf returns the minimum of two float32 values.
func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func saturate(v float32) float32 { return clampf(v, 0, 1) }

func lerpf(a, b, t float32) float32 { return a + (b-a)*t }

func absf(v float32) float32 { return math32.Abs(v) }

func floorf(v float32) float32 { return math32.Floor(v) }

func roundf(v float32) float32 { return math32.Round(v) }

// linearSweep moves current toward target by at most speed.
func linearSweep(current, target, speed float32) float32 {
	if current < target {
		return minf(current+speed, target)
	}
	if current > target {
		return maxf(current-speed, target)
	}
	return current
}

func minV2(a, b Vec2) Vec2 { return Vec2{minf(a.X, b.X), minf(a.Y, b.Y)} }
func maxV2(a, b Vec2) Vec2 { return Vec2{maxf(a.X, b.X), maxf(a.Y, b.Y)} }

func clampV2(v, mn, mx Vec2) Vec2 {
	return Vec2{clampf(v.X, mn.X, mx.X), clampf(v.Y, mn.Y, mx.Y)}
}

func lerpV2(a, b Vec2, t float32) Vec2 {
	return Vec2{a.X + (b.X-a.X)*t, a.Y + (b.Y-a.Y)*t}
}

func mini(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxi(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func clampi(v, mn, mx int) int {
	if v < mn {
		return mn
	}
	if v > mx {
		return mx
	}
	return v
}

// triangleContainsPoint reports whether p lies inside triangle abc.
func triangleContainsPoint(a, b, c, p Vec2) bool {
	cross := func(o, u, v Vec2) float32 { return (u.X-o.X)*(v.Y-o.Y) - (u.Y-o.Y)*(v.X-o.X) }
	b1 := cross(b, c, p) < 0
	b2 := cross(c, a, p) < 0
	b3 := cross(a, b, p) < 0
	return b1 == b2 && b2 == b3
}

// triangleBarycentricCoords returns the weights of a, b and c in p.
func triangleBarycentricCoords(a, b, c, p Vec2) (u, v, w float32) {
	v0, v1, v2 := b.Sub(a), c.Sub(a), p.Sub(a)
	denom := v0.X*v1.Y - v1.X*v0.Y
	v = (v2.X*v1.Y - v1.X*v2.Y) / denom
	w = (v0.X*v2.Y - v2.X*v0.Y) / denom
	u = 1 - v - w
	return u, v, w
}

// lineClosestPoint projects p onto segment ab.
func lineClosestPoint(a, b, p Vec2) Vec2 {
	ap, ab := p.Sub(a), b.Sub(a)
	dot := ap.X*ab.X + ap.Y*ab.Y
	if dot < 0 {
		return a
	}
	lenSqr := ab.LengthSqr()
	if dot > lenSqr {
		return b
	}
	return a.Add(ab.Mul(dot / lenSqr))
}

// triangleClosestPoint returns the point on the edges of abc nearest to p.
func triangleClosestPoint(a, b, c, p Vec2) Vec2 {
	pab, pbc, pca := lineClosestPoint(a, b, p), lineClosestPoint(b, c, p), lineClosestPoint(c, a, p)
	dab, dbc, dca := p.Sub(pab).LengthSqr(), p.Sub(pbc).LengthSqr(), p.Sub(pca).LengthSqr()
	best := pab
	bestD := dab
	if dbc < bestD {
		best, bestD = pbc, dbc
	}
	if dca < bestD {
		best = pca
	}
	return best
}

func rotateV2(v Vec2, cosA, sinA float32) Vec2 {
	return Vec2{v.X*cosA - v.Y*sinA, v.X*sinA + v.Y*cosA}
}
