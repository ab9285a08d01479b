// internal/state/pause_state.go
package state

import (
	"go-path-defense/internal/config"
	"go-path-defense/internal/logging"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState is an overlay pushed over the game screen. The simulation is
// paused on Enter and resumed on Exit; the machine draws the game underneath.
type PauseState struct {
	sm            *StateMachine
	previousState *GameState
	face          font.Face
}

func NewPauseState(sm *StateMachine, prevState *GameState, face font.Face) *PauseState {
	return &PauseState{sm: sm, previousState: prevState, face: face}
}

func (s *PauseState) Enter() {
	if !s.previousState.sim.Paused() {
		if err := s.previousState.sim.TogglePause(); err != nil {
			logging.Warnf("Pause failed: %v", err)
		}
	}
	s.previousState.pauseButton.SetPaused(true)
}

func (s *PauseState) Update(deltaTime float64) {
	unpause := inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		unpause = unpause || s.previousState.pauseButton.IsClicked(x, y)
	}
	if unpause {
		s.sm.Pop()
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.PausedOverlayColor, false)
	text.Draw(screen, "PAUSED", s.face, config.ScreenWidth/2-21, config.ScreenHeight/2, config.TextLightColor)
	s.previousState.pauseButton.Draw(screen)
}

func (s *PauseState) Exit() {
	if s.previousState.sim.Paused() {
		if err := s.previousState.sim.TogglePause(); err != nil {
			logging.Warnf("Resume failed: %v", err)
		}
	}
	s.previousState.pauseButton.SetPaused(false)
}
