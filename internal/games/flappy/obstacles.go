package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// ObstacleID identifies one obstacle for the lifetime of a session.
type ObstacleID uint64

// Slot says which half of a pipe pair an obstacle is.
type Slot uint8

const (
	// SlotBottom is the reference member of a pair; scoring only counts it.
	SlotBottom Slot = iota
	SlotTop
)

func (s Slot) String() string {
	if s == SlotTop {
		return "top"
	}
	return "bottom"
}

// Obstacle is one pipe. The two members of a pair share Pair, X and GapCenter.
type Obstacle struct {
	ID        ObstacleID
	Pair      uint64
	Slot      Slot
	X         float64 // left edge
	Width     float64
	GapCenter float64
	GapHeight float64
}

// Right returns the x-coordinate of the right edge.
func (o Obstacle) Right() float64 {
	return o.X + o.Width
}

// Span returns the solid area of the pipe for a viewport of height viewH.
func (o Obstacle) Span(viewH float64) core.RectF {
	if o.Slot == SlotTop {
		return core.NewRectF(o.X, 0, o.Width, o.GapCenter-o.GapHeight/2)
	}
	top := o.GapCenter + o.GapHeight/2
	return core.NewRectF(o.X, top, o.Width, viewH-top)
}

// ObstacleField spawns, moves and retires pipes.
type ObstacleField struct {
	obstacles []Obstacle
	nextID    ObstacleID
	nextPair  uint64

	width     float64
	gapHeight float64
	spawnX    float64
	viewH     float64
	gapLo     float64
	gapHi     float64
}

// NewObstacleField creates an empty field for the configured viewport.
// config.Validate rejects a gap that leaves no room for its centre; a field
// built from such a config anyway pins every centre to the lower bound.
func NewObstacleField(cfg config.FlappyConfig) *ObstacleField {
	lo, hi := cfg.Obstacles.GapRange(cfg.World.GroundY())
	if hi < lo {
		hi = lo
	}
	return &ObstacleField{
		obstacles: make([]Obstacle, 0, 8),
		width:     cfg.Obstacles.Width,
		gapHeight: cfg.Obstacles.GapHeight,
		spawnX:    cfg.World.Width,
		viewH:     cfg.World.Height,
		gapLo:     lo,
		gapHi:     hi,
	}
}

// Reset drops every obstacle. Identifiers keep increasing so ids from a
// previous round can never be confused with new ones.
func (f *ObstacleField) Reset() {
	f.obstacles = f.obstacles[:0]
}

// GapRange returns the inclusive bounds a gap centre is drawn from.
func (f *ObstacleField) GapRange() (float64, float64) {
	return f.gapLo, f.gapHi
}

// SpawnPair appends a top and a bottom pipe at the right edge of the viewport
// with a uniformly random gap centre.
func (f *ObstacleField) SpawnPair(rng *rand.Rand) (bottom, top Obstacle) {
	center := f.gapLo + rng.Float64()*(f.gapHi-f.gapLo)
	pair := f.nextPair
	f.nextPair++

	bottom = f.newObstacle(pair, SlotBottom, center)
	top = f.newObstacle(pair, SlotTop, center)
	f.obstacles = append(f.obstacles, bottom, top)
	return bottom, top
}

func (f *ObstacleField) newObstacle(pair uint64, slot Slot, center float64) Obstacle {
	f.nextID++
	return Obstacle{
		ID:        f.nextID,
		Pair:      pair,
		Slot:      slot,
		X:         f.spawnX,
		Width:     f.width,
		GapCenter: center,
		GapHeight: f.gapHeight,
	}
}

// Advance moves every obstacle left by speed*dt and removes those whose right
// edge has left the viewport. The ids of removed obstacles are returned.
func (f *ObstacleField) Advance(dt, speed float64) []ObstacleID {
	var retired []ObstacleID
	kept := f.obstacles[:0]
	for _, o := range f.obstacles {
		o.X -= speed * dt
		if o.Right() < 0 {
			retired = append(retired, o.ID)
			continue
		}
		kept = append(kept, o)
	}
	f.obstacles = kept
	return retired
}

// Obstacles returns the live obstacles, oldest first. The slice is owned by
// the field and valid until the next mutation.
func (f *ObstacleField) Obstacles() []Obstacle {
	return f.obstacles
}

// Len returns the number of live obstacles.
func (f *ObstacleField) Len() int {
	return len(f.obstacles)
}
