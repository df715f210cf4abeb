package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// ScoredSet holds the obstacles that have already awarded a point.
type ScoredSet map[ObstacleID]struct{}

// Has reports whether id has already scored.
func (s ScoredSet) Has(id ObstacleID) bool {
	_, ok := s[id]
	return ok
}

// Add records id as scored.
func (s ScoredSet) Add(id ObstacleID) {
	s[id] = struct{}{}
}

// Forget drops retired ids.
func (s ScoredSet) Forget(ids []ObstacleID) {
	for _, id := range ids {
		delete(s, id)
	}
}

// Clear empties the set.
func (s ScoredSet) Clear() {
	clear(s)
}

// Collision says what the bird ran into.
type Collision uint8

const (
	CollisionNone Collision = iota
	CollisionObstacle
	CollisionGround
	CollisionCeiling
)

func (c Collision) String() string {
	switch c {
	case CollisionObstacle:
		return "obstacle"
	case CollisionGround:
		return "ground"
	case CollisionCeiling:
		return "ceiling"
	default:
		return "none"
	}
}

// CheckCollision tests the rotated bird against every pipe span and the
// world's vertical limits. Pipes are checked first.
func CheckCollision(a *Actor, obstacles []Obstacle, viewH, groundY float64) Collision {
	for _, o := range obstacles {
		if a.Overlaps(o.Span(viewH)) {
			return CollisionObstacle
		}
	}
	b := a.Bounds()
	if b.Bottom() > groundY {
		return CollisionGround
	}
	if b.Y < 0 {
		return CollisionCeiling
	}
	return CollisionNone
}

// CheckScore adds every bottom pipe the bird has fully passed to scored and
// returns how many were new.
func CheckScore(a *Actor, obstacles []Obstacle, scored ScoredSet) int {
	left := a.Left()
	n := 0
	for _, o := range obstacles {
		if o.Slot != SlotBottom || scored.Has(o.ID) {
			continue
		}
		if left > o.Right() {
			scored.Add(o.ID)
			n++
		}
	}
	return n
}

// resolveCollision ends the round on any contact. It reports whether it did.
func (s *Session) resolveCollision() bool {
	hit := CheckCollision(s.actor, s.field.Obstacles(), s.cfg.World.Height, s.groundY)
	if hit == CollisionNone {
		return false
	}
	if !s.phase.CanTransition(PhaseGameOver) {
		return false
	}
	s.lastHit = hit
	s.actor.Freeze()
	s.emit(core.EventHit)
	if hit != CollisionGround {
		s.emit(core.EventFall)
	}
	s.enterGameOver()
	return true
}

// resolveScore awards points for passed pipes.
func (s *Session) resolveScore() {
	n := CheckScore(s.actor, s.field.Obstacles(), s.scored)
	for i := 0; i < n; i++ {
		s.score++
		s.emit(core.EventPoint)
	}
}
