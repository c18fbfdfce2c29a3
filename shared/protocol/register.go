package protocol

import (
	"github.com/automoto/pixelrunner/shared/netcomponents"
	"github.com/leap-fish/necs/esync"
)

// Sync ID constants - ID 1 is reserved by necs for NetworkId
const (
	SyncIDNetFrame   uint = 10
	SyncIDNetCamera  uint = 11
	SyncIDNetSession uint = 12
)

// Interpolation IDs (uint8 for WithInterpFn)
const (
	InterpIDNetCamera uint8 = 11
)

// RegisterComponents registers all network components with necs for serialization.
// This must be called by both server and client before any network operations.
func RegisterComponents() error {
	// Frames are discrete snapshots, never interpolated
	if err := esync.RegisterComponent(
		SyncIDNetFrame,
		netcomponents.NetFrameData{},
		netcomponents.NetFrame,
	); err != nil {
		return err
	}

	// Camera scroll is smoothed client-side between frames
	if err := esync.RegisterComponent(
		SyncIDNetCamera,
		netcomponents.NetCameraData{},
		netcomponents.NetCamera,
		esync.WithInterpFn(InterpIDNetCamera, netcomponents.LerpNetCamera),
	); err != nil {
		return err
	}

	if err := esync.RegisterComponent(
		SyncIDNetSession,
		netcomponents.NetSessionData{},
		netcomponents.NetSession,
	); err != nil {
		return err
	}

	return nil
}
