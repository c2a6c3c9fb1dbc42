// internal/state/state.go
package state

import (
	"go-lane-defense/internal/utils"
	"go-lane-defense/pkg/render"
)

// Input — ввод за один кадр, собранный хостом до тика.
type Input struct {
	PointerX, PointerY float64
	PointerPresent     bool

	Clicked        bool
	ClickX, ClickY float64

	Pause   bool // P
	Confirm bool // Enter
	Restart bool // R
}

// SetPointer записывает указатель хоста. Вне [0,width]x[0,height] указателя
// нет; координаты всё равно прижимаются к полю.
func (in *Input) SetPointer(x, y, width, height float64) {
	in.PointerPresent = x >= 0 && y >= 0 && x <= width && y <= height
	in.PointerX = utils.Clamp(x, 0, width)
	in.PointerY = utils.Clamp(y, 0, height)
}

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update(in Input)
	Draw(surface render.Surface)
	Exit()
}

// StateMachine — структура для управления состояниями
type StateMachine struct {
	current State
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit() // Выход из текущего состояния, если оно есть
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter() // Вход в новое состояние, только если оно не nil
	}
}

// Current возвращает активное состояние.
func (sm *StateMachine) Current() State {
	return sm.current
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(in Input) {
	if sm.current != nil {
		sm.current.Update(in)
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(surface render.Surface) {
	if sm.current != nil {
		sm.current.Draw(surface)
	}
}
