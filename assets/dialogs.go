package assets

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"sync"

	"gopkg.in/yaml.v3"
)

var ErrDialogsNotLoaded = errors.New("dialogs not loaded")

// Dialog is one keyed conversation entry.
type Dialog struct {
	Speaker string   `yaml:"speaker"`
	Text    []string `yaml:"text"`
}

// DialogCollection maps a dialog key to its entry.
type DialogCollection struct {
	Dialogs map[string]Dialog `yaml:"dialogs"`
}

// Lookup returns the dialog stored under key.
func (c *DialogCollection) Lookup(key string) (Dialog, bool) {
	d, ok := c.Dialogs[key]
	return d, ok
}

// ParseDialogs decodes a YAML dialog collection.
func ParseDialogs(data []byte) (*DialogCollection, error) {
	var c DialogCollection
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse dialogs: %w", err)
	}
	if c.Dialogs == nil {
		c.Dialogs = map[string]Dialog{}
	}
	for key, d := range c.Dialogs {
		if d.Speaker == "" {
			return nil, fmt.Errorf("parse dialogs: %q has no speaker", key)
		}
	}
	return &c, nil
}

// LoadDialogs reads and decodes a dialog collection from fsys.
func LoadDialogs(fsys fs.FS, path string) (*DialogCollection, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read dialogs %s: %w", path, err)
	}
	return ParseDialogs(data)
}

// DialogHandle tracks a dialog collection loading in the background.
type DialogHandle struct {
	path string
	done chan struct{}

	mu         sync.RWMutex
	collection *DialogCollection
	err        error
}

// LoadDialogsAsync starts loading path from fsys and returns immediately.
func LoadDialogsAsync(fsys fs.FS, path string) *DialogHandle {
	h := &DialogHandle{path: path, done: make(chan struct{})}
	go func() {
		defer close(h.done)
		c, err := LoadDialogs(fsys, path)

		h.mu.Lock()
		h.collection, h.err = c, err
		h.mu.Unlock()

		if err != nil {
			log.Printf("[dialogs] failed to load %s: %v", path, err)
			return
		}
		log.Printf("[dialogs] loaded %d dialogs from %s", len(c.Dialogs), path)
	}()
	return h
}

// Path returns the asset path the handle loads.
func (h *DialogHandle) Path() string {
	return h.path
}

// Ready reports whether loading has finished, successfully or not.
func (h *DialogHandle) Ready() bool {
	select {
	case <-h.done:
		return true
	default:
		return false
	}
}

// Get returns the collection once it has loaded successfully.
func (h *DialogHandle) Get() (*DialogCollection, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.collection, h.collection != nil
}

// Err returns the load error, ErrDialogsNotLoaded while still loading.
func (h *DialogHandle) Err() error {
	if !h.Ready() {
		return ErrDialogsNotLoaded
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.err
}

// Wait blocks until loading finishes or ctx is done.
func (h *DialogHandle) Wait(ctx context.Context) error {
	select {
	case <-h.done:
		return h.Err()
	case <-ctx.Done():
		return ctx.Err()
	}
}
