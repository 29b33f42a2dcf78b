/*
 * Simon for Raspberry Pi Pico
 * Go version
 *
 * @authors     smittytone
 * @copyright   2023, Tony Smith
 * @licence     MIT
 *
 */
package game

// State is the controller's current phase. Exactly one is active at a time.
type State uint8

const (
	Welcome State = iota
	WaitForStart
	PlaySequence
	UserInput
	GameOver
)

func (s State) String() string {

	switch s {
	case Welcome:
		return "welcome"
	case WaitForStart:
		return "wait-for-start"
	case PlaySequence:
		return "play-sequence"
	case UserInput:
		return "user-input"
	case GameOver:
		return "game-over"
	}
	return "unknown"
}

// EventKind distinguishes controller notifications.
type EventKind uint8

const (
	// EventTransition fires on every state change
	EventTransition EventKind = iota
	// EventPress fires for each recognised player press in UserInput
	EventPress
)

// Event is passed to an observer synchronously from the control loop.
type Event struct {
	Kind EventKind

	From State
	To   State

	Channel Channel
	Correct bool

	// Snapshot at the time of the event
	Length int
	Cursor int
	Games  int
	Best   int
}

// Observer receives controller events. It must not block for long: it runs on
// the control loop.
type Observer func(Event)
