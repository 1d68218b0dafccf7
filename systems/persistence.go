package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/kinewalk/components"
	cfg "github.com/automoto/kinewalk/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

const settingsKey = "settings"

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Fullscreen   bool `json:"fullscreen"`
	DebugOverlay bool `json:"debugOverlay"`
	WindowWidth  int  `json:"windowWidth"`
	WindowHeight int  `json:"windowHeight"`
}

// itemStore is the part of *gdata.Manager persistence needs.
type itemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var store itemStore

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "kinewalk",
	})
	if err != nil {
		log.Printf("[settings] could not initialize persistence: %v", err)
		return err
	}
	store = m
	return nil
}

// LoadSettings loads settings from disk. It returns nil, nil when persistence is not
// available or nothing has been saved yet.
func LoadSettings() (*SavedSettings, error) {
	if store == nil {
		return nil, nil
	}

	data, err := store.LoadItem(settingsKey)
	if err != nil {
		log.Printf("[settings] could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("[settings] could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if store == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("[settings] could not serialize settings: %v", err)
		return err
	}

	if err := store.SaveItem(settingsKey, data); err != nil {
		log.Printf("[settings] could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveCurrentSettings saves the current settings from the Settings component
func SaveCurrentSettings(s *components.SettingsData) {
	saved := &SavedSettings{
		Fullscreen:   s.Fullscreen,
		DebugOverlay: s.Debug,
		WindowWidth:  cfg.C.Width,
		WindowHeight: cfg.C.Height,
	}
	_ = SaveSettings(saved)
}

// ApplySavedSettingsGlobal applies settings without needing an ECS reference.
// Used during initial game startup before scenes are created. forceOverlay is the
// -debug flag and wins over the saved overlay toggle.
func ApplySavedSettingsGlobal(saved *SavedSettings, forceOverlay bool) {
	cfg.Debug.Overlay = overlayEnabled(saved, forceOverlay)
	if saved == nil {
		return
	}

	ebiten.SetFullscreen(saved.Fullscreen)

	// Apply window size (only if not fullscreen)
	if !saved.Fullscreen && saved.WindowWidth > 0 && saved.WindowHeight > 0 {
		ebiten.SetWindowSize(saved.WindowWidth, saved.WindowHeight)
	}
}

func overlayEnabled(saved *SavedSettings, forced bool) bool {
	switch {
	case forced:
		return true
	case saved != nil:
		return saved.DebugOverlay
	}
	return cfg.Debug.Overlay
}
