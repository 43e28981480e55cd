// internal/state/state.go
package state

import "github.com/hajimehoshi/ebiten/v2"

// State — один экран игры.
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine keeps a stack of states. Only the top one is updated and
// drawn; states below it are suspended, not exited.
type StateMachine struct {
	stack []State
}

func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState exits every stacked state, top first, and starts newState alone.
func (sm *StateMachine) SetState(newState State) {
	for len(sm.stack) > 0 {
		sm.pop()
	}
	if newState != nil {
		sm.Push(newState)
	}
}

// Push suspends the current state under newState (e.g. a pause overlay).
func (sm *StateMachine) Push(newState State) {
	sm.stack = append(sm.stack, newState)
	newState.Enter()
}

// Pop exits the top state and resumes the one below it. The last state is
// never popped; Pop reports whether anything changed.
func (sm *StateMachine) Pop() bool {
	if len(sm.stack) < 2 {
		return false
	}
	sm.pop()
	return true
}

func (sm *StateMachine) pop() {
	top := sm.stack[len(sm.stack)-1]
	sm.stack[len(sm.stack)-1] = nil
	sm.stack = sm.stack[:len(sm.stack)-1]
	top.Exit()
}

// Current returns the top state, nil before the first SetState.
func (sm *StateMachine) Current() State {
	if len(sm.stack) == 0 {
		return nil
	}
	return sm.stack[len(sm.stack)-1]
}

// Depth is the number of stacked states.
func (sm *StateMachine) Depth() int {
	return len(sm.stack)
}

func (sm *StateMachine) Update(deltaTime float64) {
	if s := sm.Current(); s != nil {
		s.Update(deltaTime)
	}
}

func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if s := sm.Current(); s != nil {
		s.Draw(screen)
	}
}
