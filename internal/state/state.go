// internal/state/state.go
package state

import (
	"errors"
	"fmt"
	"sync"
)

// Phase is a step of the tick pipeline.
type Phase int

const (
	Idle Phase = iota
	Initializing
	ObstaclesUp
	Routing
	AttackPhase
	RoutingFailed
	ObstaclesDown
	Evaluated
)

var phaseNames = [...]string{
	Idle:          "Idle",
	Initializing:  "Initializing",
	ObstaclesUp:   "ObstaclesUp",
	Routing:       "Routing",
	AttackPhase:   "AttackPhase",
	RoutingFailed: "RoutingFailed",
	ObstaclesDown: "ObstaclesDown",
	Evaluated:     "Evaluated",
}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return fmt.Sprintf("Phase(%d)", int(p))
	}
	return phaseNames[p]
}

// ErrInvalidTransition is returned for a phase change the pipeline does not allow.
var ErrInvalidTransition = errors.New("invalid phase transition")

// transitions lists the phases reachable from each phase.
var transitions = map[Phase][]Phase{
	Idle:          {Initializing},
	Initializing:  {ObstaclesUp, Evaluated, ObstaclesDown},
	ObstaclesUp:   {Routing, ObstaclesDown},
	Routing:       {AttackPhase, RoutingFailed, ObstaclesDown},
	AttackPhase:   {ObstaclesDown},
	RoutingFailed: {ObstaclesDown},
	ObstaclesDown: {Evaluated},
	Evaluated:     {Idle},
}

// CanTransition reports whether the pipeline may move from one phase to another.
func CanTransition(from, to Phase) bool {
	for _, p := range transitions[from] {
		if p == to {
			return true
		}
	}
	return false
}

// StateMachine tracks the current phase of a tick. It is safe for concurrent use.
type StateMachine struct {
	mu       sync.Mutex
	current  Phase
	onChange func(from, to Phase)
}

// NewStateMachine returns a machine in Idle. onChange, when non-nil, is called after every
// accepted transition.
func NewStateMachine(onChange func(from, to Phase)) *StateMachine {
	return &StateMachine{onChange: onChange}
}

// Current returns the current phase.
func (sm *StateMachine) Current() Phase {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.current
}

// Transition moves to next, or returns ErrInvalidTransition and stays put.
func (sm *StateMachine) Transition(next Phase) error {
	sm.mu.Lock()
	from := sm.current
	if !CanTransition(from, next) {
		sm.mu.Unlock()
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, next)
	}
	sm.current = next
	onChange := sm.onChange
	sm.mu.Unlock()

	if onChange != nil {
		onChange(from, next)
	}
	return nil
}

// Reset returns the machine to Idle from any phase.
func (sm *StateMachine) Reset() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.current = Idle
}
