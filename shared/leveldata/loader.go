package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/automoto/pixelrunner/config"
	"github.com/lafriks/go-tiled"
)

// ErrUnknownEntityType is returned when an item or enemy carries a type tag
// the simulation does not know.
var ErrUnknownEntityType = errors.New("unknown entity type")

const terrainLayer = "terrain"

// LoadMapData parses a TMX file and returns its spawn metadata. It takes an
// fs.FS so callers can pass embed.FS or os.DirFS.
func LoadMapData(fsys fs.FS, tmxPath string) (*MapData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &MapData{
		Name:   strings.TrimSuffix(path.Base(tmxPath), ".tmx"),
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	for _, layer := range levelMap.ImageLayers {
		if layer.Name != terrainLayer || layer.Image == nil {
			continue
		}
		data.TerrainImage = path.Join(path.Dir(tmxPath), layer.Image.Source)
		break
	}
	if data.TerrainImage == "" {
		return nil, fmt.Errorf("TMX %s: no %q image layer", tmxPath, terrainLayer)
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "PlayerSpawn":
			if len(og.Objects) > 0 {
				o := og.Objects[0]
				data.PlayerSpawn = &SpawnPoint{X: o.X, Y: o.Y}
			}
		case "Items":
			for _, o := range og.Objects {
				tag := objectType(o)
				kind, ok := config.ParseItemKind(tag)
				if !ok {
					return nil, fmt.Errorf("TMX %s item %d %q: %w", tmxPath, o.ID, tag, ErrUnknownEntityType)
				}
				data.Items = append(data.Items, ItemSpawn{X: o.X, Y: o.Y, Kind: kind})
			}
		case "Enemies":
			for _, o := range og.Objects {
				tag := objectType(o)
				kind, ok := config.ParseEnemyKind(tag)
				if !ok {
					return nil, fmt.Errorf("TMX %s enemy %d %q: %w", tmxPath, o.ID, tag, ErrUnknownEntityType)
				}
				data.Enemies = append(data.Enemies, EnemySpawn{
					X:      o.X,
					Y:      o.Y,
					Kind:   kind,
					Patrol: o.Properties.GetInt("patrol"),
				})
			}
		}
	}

	// Sort left-to-right for stable entity ordering
	sort.SliceStable(data.Items, func(i, j int) bool { return data.Items[i].X < data.Items[j].X })
	sort.SliceStable(data.Enemies, func(i, j int) bool { return data.Enemies[i].X < data.Enemies[j].X })

	return data, nil
}

// objectType returns the Tiled class of an object, falling back to the legacy
// type attribute.
func objectType(o *tiled.Object) string {
	if o.Class != "" {
		return o.Class
	}
	return o.Type //nolint:staticcheck // older TMX files use type=
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys, loads their
// metadata, and returns a map keyed by stem name plus a sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]*MapData, []string, error) {
	pattern := path.Join(levelsDir, "*.tmx")
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*MapData, len(matches))
	names := make([]string, 0, len(matches))

	for _, p := range matches {
		data, err := LoadMapData(fsys, p)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", p, err)
		}
		levels[data.Name] = data
		names = append(names, data.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}
