package leveldata

import (
	"errors"
	"os"
	"testing"
	"testing/fstest"

	"github.com/automoto/pixelrunner/config"
)

func TestLoadMapData(t *testing.T) {
	data, err := LoadMapData(os.DirFS("testdata"), "level1.tmx")
	if err != nil {
		t.Fatalf("LoadMapData: %v", err)
	}

	if data.Name != "level1" {
		t.Errorf("Name = %q, want level1", data.Name)
	}
	if data.Width != 2400 || data.Height != 800 {
		t.Errorf("size = %dx%d, want 2400x800", data.Width, data.Height)
	}
	if data.TerrainImage != "level1_terrain.png" {
		t.Errorf("TerrainImage = %q", data.TerrainImage)
	}
	if data.PlayerSpawn == nil || data.PlayerSpawn.X != 64 || data.PlayerSpawn.Y != 652 {
		t.Errorf("PlayerSpawn = %+v", data.PlayerSpawn)
	}
	if len(data.Items) != 4 {
		t.Fatalf("len(Items) = %d, want 4", len(data.Items))
	}
	if got := data.Collectables(); got != 3 {
		t.Errorf("Collectables() = %d, want 3", got)
	}
	if last := data.Items[len(data.Items)-1]; last.Kind != config.ItemFinish {
		t.Errorf("rightmost item kind = %s, want finish", last.Kind)
	}

	wantEnemies := []config.EnemyKind{config.EnemyBlocker, config.EnemyShooter, config.EnemyRunner}
	if len(data.Enemies) != len(wantEnemies) {
		t.Fatalf("len(Enemies) = %d, want %d", len(data.Enemies), len(wantEnemies))
	}
	for i, want := range wantEnemies {
		if data.Enemies[i].Kind != want {
			t.Errorf("Enemies[%d].Kind = %s, want %s", i, data.Enemies[i].Kind, want)
		}
	}
	if data.Enemies[0].Patrol != 80 {
		t.Errorf("blocker patrol = %d, want 80", data.Enemies[0].Patrol)
	}
}

const badEnemyTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="10" tilewidth="32" tileheight="32" infinite="0">
 <imagelayer id="1" name="terrain">
  <image source="terrain.png" width="320" height="320"/>
 </imagelayer>
 <objectgroup id="2" name="Enemies">
  <object id="1" class="dragon" x="10" y="10"/>
 </objectgroup>
</map>
`

const noTerrainTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="10" tilewidth="32" tileheight="32" infinite="0">
 <objectgroup id="2" name="Items">
  <object id="1" class="collectable" x="10" y="10"/>
 </objectgroup>
</map>
`

func TestLoadMapDataErrors(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/bad.tmx":       {Data: []byte(badEnemyTMX)},
		"levels/noterrain.tmx": {Data: []byte(noTerrainTMX)},
	}

	_, err := LoadMapData(fsys, "levels/bad.tmx")
	if !errors.Is(err, ErrUnknownEntityType) {
		t.Errorf("unknown enemy: err = %v, want ErrUnknownEntityType", err)
	}

	if _, err := LoadMapData(fsys, "levels/noterrain.tmx"); err == nil {
		t.Error("missing terrain layer: expected error")
	}

	if _, err := LoadMapData(fsys, "levels/missing.tmx"); err == nil {
		t.Error("missing file: expected error")
	}
}

func TestLoadAllLevels(t *testing.T) {
	levels, names, err := LoadAllLevels(os.DirFS("."), "testdata")
	if err != nil {
		t.Fatalf("LoadAllLevels: %v", err)
	}
	if len(names) != 1 || names[0] != "level1" {
		t.Errorf("names = %v", names)
	}
	if levels["level1"] == nil {
		t.Error("level1 missing from map")
	}
	if levels["level1"].TerrainImage != "testdata/level1_terrain.png" {
		t.Errorf("TerrainImage = %q", levels["level1"].TerrainImage)
	}

	if _, _, err := LoadAllLevels(os.DirFS("."), "nowhere"); err == nil {
		t.Error("empty directory: expected error")
	}
}
