// internal/state/state.go
package state

import "github.com/hajimehoshi/ebiten/v2"

// State - один экран: меню, игра или оверлей поверх игры.
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine keeps screens as a stack. Only the top one receives Update;
// Draw paints the whole stack bottom-up, so an overlay shows the frozen
// screen beneath it without redrawing it itself.
type StateMachine struct {
	stack []State
}

func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState replaces the whole stack with newState. Every screen on the stack
// gets Exit, top first.
func (sm *StateMachine) SetState(newState State) {
	for len(sm.stack) > 0 {
		sm.pop()
	}
	sm.Push(newState)
}

// Push enters an overlay on top of the current screen. The screen below keeps
// its state and does not get Exit.
func (sm *StateMachine) Push(s State) {
	if s == nil {
		return
	}
	sm.stack = append(sm.stack, s)
	s.Enter()
}

// Pop exits the top screen and hands control back to the one below.
// The screen below is not re-entered. Returns false on an empty stack.
func (sm *StateMachine) Pop() bool {
	if len(sm.stack) == 0 {
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

// Current returns the top screen, nil when the stack is empty.
func (sm *StateMachine) Current() State {
	if len(sm.stack) == 0 {
		return nil
	}
	return sm.stack[len(sm.stack)-1]
}

func (sm *StateMachine) Depth() int { return len(sm.stack) }

func (sm *StateMachine) Update(deltaTime float64) {
	if s := sm.Current(); s != nil {
		s.Update(deltaTime)
	}
}

func (sm *StateMachine) Draw(screen *ebiten.Image) {
	for _, s := range sm.stack {
		s.Draw(screen)
	}
}
