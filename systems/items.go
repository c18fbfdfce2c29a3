package systems

import (
	"github.com/automoto/pixelrunner/components"
	cfg "github.com/automoto/pixelrunner/config"
	"github.com/yohamta/donburi"
)

// UpdateItems advances deactivating items: they float upward and become
// Inactive once the rise finishes.
func UpdateItems(w donburi.World) {
	components.Item.Each(w, func(entry *donburi.Entry) {
		item := components.Item.Get(entry)
		if item.State != cfg.Deactivating || item.Rise == nil {
			return
		}

		rise, done := item.Rise.Update(1)
		item.Y = item.BaseY - int(rise)
		components.Object.Get(entry).MoveTo(item.X, item.Y)
		if done {
			item.State = cfg.Inactive
			item.Rise = nil
		}
	})
}

// CountCollectables returns the number of collectables in the world and how
// many of them are still Active.
func CountCollectables(w donburi.World) (total, remaining int) {
	components.Item.Each(w, func(entry *donburi.Entry) {
		item := components.Item.Get(entry)
		if item.Kind != cfg.ItemCollectable {
			return
		}
		total++
		if item.State == cfg.Active {
			remaining++
		}
	})
	return total, remaining
}

// UpdateMapState moves the map to Completing once no collectables remain and
// opens every Finish item.
func UpdateMapState(w donburi.World) {
	m := mapData(w)
	if m.State != cfg.MapCollecting {
		return
	}
	if _, remaining := CountCollectables(w); remaining > 0 {
		return
	}

	m.State = cfg.MapCompleting
	components.Item.Each(w, func(entry *donburi.Entry) {
		item := components.Item.Get(entry)
		if item.Kind == cfg.ItemFinish {
			item.State = cfg.Active
		}
	})
}
