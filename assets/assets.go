package assets

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"slices"

	"github.com/automoto/kinewalk/shared/leveldata"
)

var ErrUnknownLevel = errors.New("unknown level")

var (
	//go:embed all:levels all:dialogs
	assetFS embed.FS
)

// Files exposes the embedded levels and dialogs.
var Files fs.FS = assetFS

// LoadLevel parses a TMX map from fsys.
func LoadLevel(fsys fs.FS, path string) (*leveldata.Level, error) {
	level, err := leveldata.Load(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("load level: %w", err)
	}
	log.Printf("[assets] loaded level %q: %d boxes, %d spawns", level.Name, len(level.Boxes), len(level.Spawns))
	return level, nil
}

// LevelNames lists the maps embedded under levels/.
func LevelNames() ([]string, error) {
	_, names, err := leveldata.LoadAll(assetFS, "levels")
	return names, err
}

// LevelPath returns the embedded map path for a level name listed by LevelNames.
func LevelPath(name string) (string, error) {
	names, err := LevelNames()
	if err != nil {
		return "", err
	}
	if !slices.Contains(names, name) {
		return "", fmt.Errorf("%w %q, have %v", ErrUnknownLevel, name, names)
	}
	return "levels/" + name + ".tmx", nil
}

// Check parses every embedded level and waits for the dialog collection at dialogsPath.
func Check(ctx context.Context, dialogsPath string) error {
	names, err := LevelNames()
	if err != nil {
		return err
	}
	log.Printf("[assets] %d levels ok: %v", len(names), names)

	h := LoadDialogsAsync(assetFS, dialogsPath)
	if err := h.Wait(ctx); err != nil {
		return fmt.Errorf("dialogs %s: %w", h.Path(), err)
	}
	return nil
}
