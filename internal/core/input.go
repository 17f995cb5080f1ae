package core

// Action represents a semantic input, abstracted from physical key presses.
// The game itself only ever sees ActionActivate; the rest are handled by the
// platform layer.
type Action int

const (
	ActionNone       Action = iota
	ActionActivate          // Space, Up, Enter, left click - start or flap
	ActionQuit              // Q, Ctrl+C - exit
	ActionScreenshot        // Ctrl+S - dump the current frame to a file
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionActivate:
		return "Activate"
	case ActionQuit:
		return "Quit"
	case ActionScreenshot:
		return "Screenshot"
	default:
		return "Unknown"
	}
}
