package widget

// MarkerState is the visual state of a single marker.
type MarkerState string

const (
	STATE_IDLE       MarkerState = "idle"
	STATE_HOVERED    MarkerState = "hovered"
	STATE_POPUP_OPEN MarkerState = "popup-open"
)

// MarkerStateMachine tracks a marker's pointer and popup interaction.
// Hover and popup are independent inputs; an open popup outranks hover, so
// the pointer leaving while the popup is open does not dim the marker.
type MarkerStateMachine struct {
	hovering  bool
	popupOpen bool
}

func (m *MarkerStateMachine) PointerEnter() { m.hovering = true }
func (m *MarkerStateMachine) PointerLeave() { m.hovering = false }
func (m *MarkerStateMachine) PopupOpened()  { m.popupOpen = true }
func (m *MarkerStateMachine) PopupClosed()  { m.popupOpen = false }

// State resolves the current visual state.
func (m *MarkerStateMachine) State() MarkerState {
	if m.popupOpen {
		return STATE_POPUP_OPEN
	}
	if m.hovering {
		return STATE_HOVERED
	}
	return STATE_IDLE
}

// Highlighted reports whether the marker gets the emphasized treatment.
func (m *MarkerStateMachine) Highlighted() bool {
	return m.State() != STATE_IDLE
}
