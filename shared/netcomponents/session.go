package netcomponents

import "github.com/yohamta/donburi"

// NetSessionData describes the session a frame entity belongs to. Every
// client receives all synced entities and keeps only its own by ClientID.
type NetSessionData struct {
	ClientID  string
	Level     string
	MapState  int // config.MapStateID
	Total     int
	Remaining int
	Paused    bool
	BestTicks int // best recorded completion for the level, 0 if none
}

var NetSession = donburi.NewComponentType[NetSessionData]()
