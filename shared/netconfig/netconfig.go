// Package netconfig defines lightweight types shared between the simulation and
// the session host for serialization. It must have zero dependencies on any
// graphics library so the server binary stays headless.
package netconfig

// StateID identifies an entity state for animation and logic.
type StateID int

const (
	StateNone StateID = -1

	// Player and enemy locomotion states
	Idle StateID = iota
	Running
	Jump
	Fall
	Hit

	// Enemy-only states
	Patrol
	Charge
	Firing

	// Item states
	ItemIdle
	ItemCollect
	FinishIdle
	FinishOpen
)

// StateToFileName maps StateID to the sprite sheet name prefix.
var StateToFileName = map[StateID]string{
	Idle:    "idle",
	Running: "running",
	Jump:    "jump",
	Fall:    "fall",
	Hit:     "hit",

	Patrol: "walk",
	Charge: "charge",
	Firing: "shoot",

	ItemIdle:    "spin",
	ItemCollect: "collect",
	FinishIdle:  "flag_closed",
	FinishOpen:  "flag_open",
}

func (s StateID) String() string {
	if name, ok := StateToFileName[s]; ok {
		return name
	}
	return "unknown"
}

// ActionID represents a logical player action carried by an input event.
type ActionID int

const (
	ActionNone ActionID = iota
	ActionLeft
	ActionRight
	ActionJump
)

var actionNames = map[string]ActionID{
	"left":  ActionLeft,
	"right": ActionRight,
	"jump":  ActionJump,
}

// ParseAction maps a wire action name to an ActionID.
func ParseAction(name string) (ActionID, bool) {
	a, ok := actionNames[name]
	return a, ok
}

// InputType says whether an action starts or stops.
type InputType int

const (
	InputStart InputType = iota
	InputStop
)

// ParseInputType maps a wire input type to an InputType.
func ParseInputType(name string) (InputType, bool) {
	switch name {
	case "start":
		return InputStart, true
	case "stop":
		return InputStop, true
	}
	return 0, false
}

// MapStateID is the progress state of a game map.
type MapStateID int

const (
	MapCollecting MapStateID = iota // Collectables remain
	MapCompleting                   // All collected, finish is open
	MapCompleted                    // Player reached the finish
)

func (m MapStateID) String() string {
	switch m {
	case MapCollecting:
		return "collecting"
	case MapCompleting:
		return "completing"
	case MapCompleted:
		return "completed"
	}
	return "unknown"
}

// Activity is the lifecycle state of a map item or enemy.
type Activity int

const (
	Inactive Activity = iota
	Active
	Deactivating
)

func (a Activity) String() string {
	switch a {
	case Inactive:
		return "inactive"
	case Active:
		return "active"
	case Deactivating:
		return "deactivating"
	}
	return "unknown"
}
