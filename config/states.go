package config

import "github.com/automoto/pixelrunner/shared/netconfig"

// Type aliases so simulation code can keep using config.StateID etc.
type StateID = netconfig.StateID
type MapStateID = netconfig.MapStateID
type ActionID = netconfig.ActionID
type InputType = netconfig.InputType

// Re-export map state constants.
const (
	MapCollecting = netconfig.MapCollecting
	MapCompleting = netconfig.MapCompleting
	MapCompleted  = netconfig.MapCompleted
)

// Re-export entity state constants.
const (
	StateNone = netconfig.StateNone

	Idle    = netconfig.Idle
	Running = netconfig.Running
	Jump    = netconfig.Jump
	Fall    = netconfig.Fall
	Hit     = netconfig.Hit

	Patrol = netconfig.Patrol
	Charge = netconfig.Charge
	Firing = netconfig.Firing

	ItemIdle    = netconfig.ItemIdle
	ItemCollect = netconfig.ItemCollect
	FinishIdle  = netconfig.FinishIdle
	FinishOpen  = netconfig.FinishOpen
)

// Re-export input constants.
const (
	ActionNone  = netconfig.ActionNone
	ActionLeft  = netconfig.ActionLeft
	ActionRight = netconfig.ActionRight
	ActionJump  = netconfig.ActionJump

	InputStart = netconfig.InputStart
	InputStop  = netconfig.InputStop
)

// Re-export the map (same reference, no copy).
var StateToFileName = netconfig.StateToFileName

// Re-export the wire parsers.
var (
	ParseAction    = netconfig.ParseAction
	ParseInputType = netconfig.ParseInputType
)

type Activity = netconfig.Activity

// Re-export item and enemy lifecycle constants.
const (
	Inactive     = netconfig.Inactive
	Active       = netconfig.Active
	Deactivating = netconfig.Deactivating
)
