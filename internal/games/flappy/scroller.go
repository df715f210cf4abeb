package flappy

// ScrollLayer is an endlessly scrolling strip of identical tiles kept in a
// ring: once a tile leaves the viewport on the left it is moved behind its
// predecessor on the right.
type ScrollLayer struct {
	slots []float64
	tileW float64
	y     float64
	speed float64
	viewW float64
}

// NewScrollLayer lays out viewW/tileW + 2 contiguous tiles starting at x = 0.
func NewScrollLayer(viewW, tileW, y, speed float64) *ScrollLayer {
	n := int(viewW/tileW) + 2
	l := &ScrollLayer{
		slots: make([]float64, n),
		tileW: tileW,
		y:     y,
		speed: speed,
		viewW: viewW,
	}
	l.Reset()
	return l
}

// Reset restores the initial contiguous layout.
func (l *ScrollLayer) Reset() {
	for i := range l.slots {
		l.slots[i] = float64(i) * l.tileW
	}
}

// Advance moves every tile left by speed*dt, then recycles at most one tile
// that is fully off-screen.
func (l *ScrollLayer) Advance(dt float64) {
	d := l.speed * dt
	for i := range l.slots {
		l.slots[i] -= d
	}
	n := len(l.slots)
	for i := range l.slots {
		if l.slots[i]+l.tileW < 0 {
			prev := l.slots[(i-1+n)%n]
			l.slots[i] = prev + l.tileW
			break
		}
	}
}

// Slots returns the tile left edges in ring order. The slice is owned by the layer.
func (l *ScrollLayer) Slots() []float64 {
	return l.slots
}

// TileWidth returns the width of one tile.
func (l *ScrollLayer) TileWidth() float64 {
	return l.tileW
}

// Y returns the top of the layer.
func (l *ScrollLayer) Y() float64 {
	return l.y
}
