package assets

import (
	"context"
	"errors"
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"
	"time"
)

func TestEmbeddedArena(t *testing.T) {
	level, err := LoadLevel(Files, "levels/arena.tmx")
	if err != nil {
		t.Fatalf("LoadLevel() error = %v", err)
	}
	if level.Width != 40 || level.Depth != 40 {
		t.Errorf("arena size = %vx%v, want 40x40", level.Width, level.Depth)
	}
	if len(level.Spawns) != 1 || level.Spawns[0].Character != "debug" {
		t.Errorf("spawns = %+v", level.Spawns)
	}

	var ramps, moving int
	for _, b := range level.Boxes {
		if b.IsRamp() {
			ramps++
		}
		if b.Moving {
			moving++
		}
	}
	if ramps != 2 || moving != 1 {
		t.Errorf("ramps = %d, moving = %d, want 2 and 1", ramps, moving)
	}

	names, err := LevelNames()
	if err != nil || len(names) != 1 || names[0] != "arena" {
		t.Errorf("LevelNames() = %v, %v", names, err)
	}
}

func TestParseDialogs(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr bool
		check   func(t *testing.T, c *DialogCollection)
	}{
		{
			name: "keyed entries",
			data: `dialogs:
  hello:
    speaker: Ann
    text: ["Hi.", "Bye."]
`,
			check: func(t *testing.T, c *DialogCollection) {
				d, ok := c.Lookup("hello")
				if !ok || d.Speaker != "Ann" || len(d.Text) != 2 || d.Text[1] != "Bye." {
					t.Errorf("Lookup(hello) = %+v, %v", d, ok)
				}
				if _, ok := c.Lookup("missing"); ok {
					t.Error("Lookup(missing) found an entry")
				}
			},
		},
		{
			name: "empty document",
			data: "",
			check: func(t *testing.T, c *DialogCollection) {
				if c.Dialogs == nil || len(c.Dialogs) != 0 {
					t.Errorf("Dialogs = %v, want empty map", c.Dialogs)
				}
			},
		},
		{name: "missing speaker", data: "dialogs:\n  x:\n    text: [a]\n", wantErr: true},
		{name: "malformed", data: "dialogs: [", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ParseDialogs([]byte(tt.data))
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDialogs() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.check != nil {
				tt.check(t, c)
			}
		})
	}
}

func TestLoadDialogsAsync(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	h := LoadDialogsAsync(Files, "dialogs/dialogs.yaml")
	if err := h.Wait(ctx); err != nil {
		t.Fatalf("Wait() error = %v", err)
	}
	if !h.Ready() {
		t.Error("Ready() = false after Wait")
	}
	c, ok := h.Get()
	if !ok {
		t.Fatal("Get() found no collection")
	}
	if d, ok := c.Lookup("welcome"); !ok || len(d.Text) == 0 {
		t.Errorf("welcome = %+v, %v", d, ok)
	}
}

func TestLoadDialogsAsyncFailure(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	h := LoadDialogsAsync(fstest.MapFS{}, "dialogs/none.yaml")
	err := h.Wait(ctx)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("Wait() error = %v, want not exist", err)
	}
	if _, ok := h.Get(); ok {
		t.Error("Get() returned a collection after a failed load")
	}
	if h.Path() != "dialogs/none.yaml" {
		t.Errorf("Path() = %q", h.Path())
	}
}

func TestLevelPath(t *testing.T) {
	tests := []struct {
		name    string
		want    string
		wantErr error
	}{
		{name: "arena", want: "levels/arena.tmx"},
		{name: "moon", wantErr: ErrUnknownLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LevelPath(tt.name)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("LevelPath(%q) error = %v, want %v", tt.name, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("LevelPath(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestCheck(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := Check(ctx, "dialogs/dialogs.yaml"); err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	err := Check(ctx, "dialogs/missing.yaml")
	if !errors.Is(err, fs.ErrNotExist) || !strings.Contains(err.Error(), "dialogs/missing.yaml") {
		t.Errorf("Check() error = %v, want a not-exist error naming the path", err)
	}
}
