package anim

import (
	"sync"
	"sync/atomic"

	"faceplate/internal/face"
)

// TickModulus is where the tick counter wraps back to 0.
const TickModulus = 128

// State holds where the face is and where it is heading.
//
// Current and target sit behind separate locks so a retarget does not wait on a
// render. Anything that needs both takes the current lock first.
type State struct {
	curMu   sync.RWMutex
	current face.Pose

	tgtMu  sync.RWMutex
	target face.Pose
	mood   string

	ticks uint32
}

// NewState starts at current's pose, heading for target's.
func NewState(current, target face.Record) *State {
	return &State{
		current: current.Pose,
		target:  target.Pose,
		mood:    target.Mood,
	}
}

// Current returns the published current pose. Do not modify it.
func (s *State) Current() face.Pose {
	s.curMu.RLock()
	defer s.curMu.RUnlock()
	return s.current
}

// Target returns the target pose. Do not modify it.
func (s *State) Target() face.Pose {
	s.tgtMu.RLock()
	defer s.tgtMu.RUnlock()
	return s.target
}

// TargetMood is the mood tag of the record the target came from.
func (s *State) TargetMood() string {
	s.tgtMu.RLock()
	defer s.tgtMu.RUnlock()
	return s.mood
}

// SetTarget replaces the target pose.
func (s *State) SetTarget(rec face.Record) {
	s.tgtMu.Lock()
	defer s.tgtMu.Unlock()
	s.target = rec.Pose
	s.mood = rec.Mood
}

// Snapshot reads current and target under both locks.
func (s *State) Snapshot() (current, target face.Pose) {
	s.curMu.RLock()
	s.tgtMu.RLock()
	current, target = s.current, s.target
	s.tgtMu.RUnlock()
	s.curMu.RUnlock()
	return current, target
}

func (s *State) publish(p face.Pose) {
	s.curMu.Lock()
	s.current = p
	s.curMu.Unlock()
}

// Advance bumps the tick counter modulo TickModulus and returns the new value.
func (s *State) Advance() uint32 {
	for {
		old := atomic.LoadUint32(&s.ticks)
		next := (old + 1) % TickModulus
		if atomic.CompareAndSwapUint32(&s.ticks, old, next) {
			return next
		}
	}
}

// Ticks returns the tick counter.
func (s *State) Ticks() uint32 {
	return atomic.LoadUint32(&s.ticks)
}
