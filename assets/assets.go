// Package assets is the asset provider of the simulation: it turns level
// files into immutable level data consumed once at session initialization.
package assets

import (
	"fmt"
	"io/fs"
	"path"

	"github.com/automoto/pixelrunner/config"
	"github.com/automoto/pixelrunner/shared/leveldata"
	"github.com/automoto/pixelrunner/shared/terrain"
	"github.com/charmbracelet/log"
)

// Level pairs a level's spawn metadata with its terrain mask. Both are
// read-only after loading and may be shared by every session playing it.
type Level struct {
	Name string
	Data *leveldata.MapData
	Mask *terrain.Mask
}

// Width and Height come from the mask, which is authoritative for collision.
func (l *Level) Width() int  { return l.Mask.Width() }
func (l *Level) Height() int { return l.Mask.Height() }

type LevelLoader struct {
	fsys fs.FS
	dir  string
}

// NewLevelLoader reads levels from dir inside fsys. Pass os.DirFS for files on
// disk or an embed.FS.
func NewLevelLoader(fsys fs.FS, dir string) *LevelLoader {
	return &LevelLoader{fsys: fsys, dir: dir}
}

// Load reads one level by stem name.
func (l *LevelLoader) Load(name string) (*Level, error) {
	data, err := leveldata.LoadMapData(l.fsys, path.Join(l.dir, name+".tmx"))
	if err != nil {
		return nil, err
	}
	return l.build(data)
}

// LoadAll reads every level in the directory, sorted by name.
func (l *LevelLoader) LoadAll() ([]*Level, error) {
	byName, names, err := leveldata.LoadAllLevels(l.fsys, l.dir)
	if err != nil {
		return nil, err
	}

	levels := make([]*Level, 0, len(names))
	for _, name := range names {
		lvl, err := l.build(byName[name])
		if err != nil {
			return nil, err
		}
		levels = append(levels, lvl)
	}
	return levels, nil
}

func (l *LevelLoader) build(data *leveldata.MapData) (*Level, error) {
	mask, err := terrain.Load(l.fsys, data.TerrainImage, config.Terrain.SolidColor)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", data.Name, err)
	}
	if mask.Width() != data.Width || mask.Height() != data.Height {
		log.Warn("terrain size differs from map size, using terrain",
			"level", data.Name,
			"terrain", fmt.Sprintf("%dx%d", mask.Width(), mask.Height()),
			"map", fmt.Sprintf("%dx%d", data.Width, data.Height))
	}
	return &Level{Name: data.Name, Data: data, Mask: mask}, nil
}
