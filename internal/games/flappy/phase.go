package flappy

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned for a phase change the state machine does not allow.
var ErrInvalidTransition = errors.New("flappy: invalid phase transition")

// Phase is the session's top-level state. The zero value is PhaseSplash and
// values cannot be built outside this package.
type Phase struct {
	id uint8
}

var (
	PhaseSplash   = Phase{0}
	PhaseReady    = Phase{1}
	PhasePlay     = Phase{2}
	PhaseGameOver = Phase{3}
)

var phaseNames = [...]string{"SPLASH", "READY", "PLAY", "GAMEOVER"}

func (p Phase) String() string {
	if int(p.id) < len(phaseNames) {
		return phaseNames[p.id]
	}
	return fmt.Sprintf("Phase(%d)", p.id)
}

// transitions lists the only successor of each phase. SPLASH is never a target,
// so it can only be the initial phase.
var transitions = map[Phase]Phase{
	PhaseSplash:   PhaseReady,
	PhaseReady:    PhasePlay,
	PhasePlay:     PhaseGameOver,
	PhaseGameOver: PhaseReady,
}

// CanTransition reports whether the table allows p -> to.
func (p Phase) CanTransition(to Phase) bool {
	next, ok := transitions[p]
	return ok && next == to
}

// transition checks a change against the table.
func transition(from, to Phase) error {
	if !from.CanTransition(to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}
	return nil
}
