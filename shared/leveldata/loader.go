package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

var (
	ErrNoSpawn    = errors.New("no player spawn points defined in map")
	ErrInvalidBox = errors.New("invalid box")
)

const (
	boxesGroup = "Boxes"
	spawnGroup = "PlayerSpawn"

	// unitsProperty on the map sets how many map pixels make one world unit. It defaults
	// to the tile width.
	unitsProperty = "pixelsPerUnit"
)

// Load parses a TMX file into a Level. It takes an fs.FS so callers can pass the
// embedded assets or os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	var scale float64
	if levelMap.Properties != nil {
		scale = levelMap.Properties.GetFloat(unitsProperty)
	}
	if scale <= 0 {
		scale = float64(levelMap.TileWidth)
	}
	if scale <= 0 {
		scale = 1
	}

	level := &Level{
		Name:  strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width: float64(levelMap.Width*levelMap.TileWidth) / scale,
		Depth: float64(levelMap.Height*levelMap.TileHeight) / scale,
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case boxesGroup:
			for _, o := range og.Objects {
				box, err := parseBox(o, scale)
				if err != nil {
					return nil, fmt.Errorf("%s: %w", tmxPath, err)
				}
				level.Boxes = append(level.Boxes, box)
			}
		case spawnGroup:
			for _, o := range og.Objects {
				level.Spawns = append(level.Spawns, SpawnPoint{
					X:         o.X / scale,
					Z:         o.Y / scale,
					Elevation: o.Properties.GetFloat("elevation"),
					Character: o.Properties.GetString("character"),
					Index:     o.Properties.GetInt("spawnIndex"),
				})
			}
		}
	}

	if len(level.Spawns) == 0 {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoSpawn)
	}

	// Sort spawns by index for consistent assignment
	sort.SliceStable(level.Spawns, func(i, j int) bool {
		return level.Spawns[i].Index < level.Spawns[j].Index
	})

	return level, nil
}

func parseBox(o *tiled.Object, scale float64) (Box, error) {
	box := Box{
		Name:      o.Name,
		X:         o.X / scale,
		Z:         o.Y / scale,
		Width:     o.Width / scale,
		Depth:     o.Height / scale,
		Elevation: o.Properties.GetFloat("elevation"),
		Height:    o.Properties.GetFloat("height"),
		Slope:     o.Properties.GetFloat("slope"),
		Rise:      o.Properties.GetString("rise"),
		Moving:    o.Properties.GetBool("moving"),
		Travel:    o.Properties.GetFloat("travel"),
		Duration:  o.Properties.GetFloat("duration"),
	}
	if box.IsRamp() && box.Rise == "" {
		box.Rise = "+x"
	}

	switch {
	case box.Width <= 0 || box.Depth <= 0:
		return box, fmt.Errorf("%w %q: footprint %vx%v", ErrInvalidBox, o.Name, box.Width, box.Depth)
	case box.Slope < 0 || box.Slope >= 90:
		return box, fmt.Errorf("%w %q: slope %v", ErrInvalidBox, o.Name, box.Slope)
	case !box.IsRamp() && box.Height <= 0:
		return box, fmt.Errorf("%w %q: height %v", ErrInvalidBox, o.Name, box.Height)
	case box.Moving && box.Duration <= 0:
		return box, fmt.Errorf("%w %q: moving platform needs a duration", ErrInvalidBox, o.Name)
	}
	return box, nil
}

// LoadAll discovers all .tmx files in levelsDir within fsys, loads each, and returns a
// map keyed by stem name plus a sorted list of names.
func LoadAll(fsys fs.FS, levelsDir string) (map[string]*Level, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		level, err := Load(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		levels[level.Name] = level
		names = append(names, level.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}
