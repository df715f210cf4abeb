package flappy

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Mask is the opaque-pixel silhouette of the bird sprite, centred on the actor
// position. Collision uses the mask rotated by the actor's tilt, so the corners
// of the sprite's bounding box never count as hits.
type Mask struct {
	w, h int
	bits []bool
}

// NewEllipseMask builds the silhouette of a w x h bird body.
func NewEllipseMask(w, h int) *Mask {
	m := &Mask{w: w, h: h, bits: make([]bool, w*h)}
	rx, ry := float64(w)/2, float64(h)/2
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			dx := (float64(i) + 0.5 - rx) / rx
			dy := (float64(j) + 0.5 - ry) / ry
			m.bits[j*w+i] = dx*dx+dy*dy <= 1
		}
	}
	return m
}

// Size returns the unrotated mask dimensions.
func (m *Mask) Size() (int, int) {
	return m.w, m.h
}

// At reports whether the pixel (i, j) of the unrotated mask is opaque.
func (m *Mask) At(i, j int) bool {
	if i < 0 || i >= m.w || j < 0 || j >= m.h {
		return false
	}
	return m.bits[j*m.w+i]
}

// Count returns the number of opaque pixels.
func (m *Mask) Count() int {
	n := 0
	for _, b := range m.bits {
		if b {
			n++
		}
	}
	return n
}

// rotate turns a mask-local offset by angle degrees counter-clockwise on screen
// (y grows downwards, positive angles lift the beak).
func rotate(dx, dy, angle float64) (float64, float64) {
	s, c := math.Sincos(angle * math.Pi / 180)
	return dx*c + dy*s, -dx*s + dy*c
}

// Bounds returns the box of the mask rotated by angle and centred on (cx, cy).
func (m *Mask) Bounds(cx, cy, angle float64) core.RectF {
	hw, hh := float64(m.w)/2, float64(m.h)/2
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range [4][2]float64{{-hw, -hh}, {hw, -hh}, {-hw, hh}, {hw, hh}} {
		x, y := rotate(p[0], p[1], angle)
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
	}
	return core.NewRectF(cx+minX, cy+minY, maxX-minX, maxY-minY)
}

// Overlaps reports whether any opaque pixel of the rotated mask centred on
// (cx, cy) falls inside r.
func (m *Mask) Overlaps(cx, cy, angle float64, r core.RectF) bool {
	if !m.Bounds(cx, cy, angle).Intersects(r) {
		return false
	}
	hw, hh := float64(m.w)/2, float64(m.h)/2
	for j := 0; j < m.h; j++ {
		for i := 0; i < m.w; i++ {
			if !m.bits[j*m.w+i] {
				continue
			}
			x, y := rotate(float64(i)+0.5-hw, float64(j)+0.5-hh, angle)
			if r.Contains(cx+x, cy+y) {
				return true
			}
		}
	}
	return false
}

// ContainsPoint reports whether the world point (px, py) lies on an opaque
// pixel of the rotated mask centred on (cx, cy).
func (m *Mask) ContainsPoint(cx, cy, angle, px, py float64) bool {
	x, y := rotate(px-cx, py-cy, -angle)
	i := int(math.Floor(x + float64(m.w)/2))
	j := int(math.Floor(y + float64(m.h)/2))
	return m.At(i, j)
}
