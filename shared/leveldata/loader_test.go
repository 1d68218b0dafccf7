package leveldata

import (
	"errors"
	"testing"
	"testing/fstest"
)

const header = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="20" height="10" tilewidth="16" tileheight="16" infinite="0" nextlayerid="3" nextobjectid="10">
`

const spawnGroupXML = ` <objectgroup id="2" name="PlayerSpawn">
  <object id="9" name="spawn" x="32" y="48">
   <properties>
    <property name="character" value="two"/>
    <property name="elevation" type="float" value="0.5"/>
   </properties>
   <point/>
  </object>
 </objectgroup>
`

func tmx(body string) *fstest.MapFile {
	return &fstest.MapFile{Data: []byte(header + body + "</map>\n")}
}

func TestLoad(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/test.tmx": tmx(` <objectgroup id="1" name="Boxes">
  <object id="1" name="floor" x="0" y="0" width="320" height="160">
   <properties>
    <property name="elevation" type="float" value="-1"/>
    <property name="height" type="float" value="1"/>
   </properties>
  </object>
  <object id="2" name="ramp" x="64" y="16" width="32" height="64">
   <properties>
    <property name="slope" type="float" value="30"/>
    <property name="rise" value="-z"/>
   </properties>
  </object>
  <object id="3" name="lift" x="128" y="0" width="32" height="32">
   <properties>
    <property name="height" type="float" value="0.25"/>
    <property name="moving" type="bool" value="true"/>
    <property name="travel" type="float" value="2"/>
    <property name="duration" type="float" value="1.5"/>
   </properties>
  </object>
 </objectgroup>
` + spawnGroupXML),
	}

	level, err := Load(fsys, "levels/test.tmx")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if level.Name != "test" {
		t.Errorf("Name = %q, want test", level.Name)
	}
	if level.Width != 20 || level.Depth != 10 {
		t.Errorf("size = %vx%v, want 20x10", level.Width, level.Depth)
	}
	if len(level.Boxes) != 3 {
		t.Fatalf("len(Boxes) = %d, want 3", len(level.Boxes))
	}

	floor := level.Boxes[0]
	if floor.X != 0 || floor.Z != 0 || floor.Width != 20 || floor.Depth != 10 || floor.Elevation != -1 || floor.Height != 1 {
		t.Errorf("floor = %+v", floor)
	}
	if floor.IsRamp() || floor.Moving {
		t.Errorf("floor should be a plain box: %+v", floor)
	}

	ramp := level.Boxes[1]
	if !ramp.IsRamp() || ramp.Slope != 30 || ramp.Rise != "-z" {
		t.Errorf("ramp = %+v", ramp)
	}
	if ramp.X != 4 || ramp.Z != 1 || ramp.Width != 2 || ramp.Depth != 4 {
		t.Errorf("ramp footprint = %+v", ramp)
	}

	lift := level.Boxes[2]
	if !lift.Moving || lift.Travel != 2 || lift.Duration != 1.5 {
		t.Errorf("lift = %+v", lift)
	}

	if len(level.Spawns) != 1 {
		t.Fatalf("len(Spawns) = %d, want 1", len(level.Spawns))
	}
	spawn := level.Spawns[0]
	if spawn.X != 2 || spawn.Z != 3 || spawn.Elevation != 0.5 || spawn.Character != "two" {
		t.Errorf("spawn = %+v", spawn)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{
			name:    "no spawn",
			body:    "",
			wantErr: ErrNoSpawn,
		},
		{
			name: "flat box without height",
			body: ` <objectgroup id="1" name="Boxes">
  <object id="1" name="slab" x="0" y="0" width="16" height="16"/>
 </objectgroup>
` + spawnGroupXML,
			wantErr: ErrInvalidBox,
		},
		{
			name: "vertical ramp",
			body: ` <objectgroup id="1" name="Boxes">
  <object id="1" name="wall" x="0" y="0" width="16" height="16">
   <properties>
    <property name="slope" type="float" value="90"/>
   </properties>
  </object>
 </objectgroup>
` + spawnGroupXML,
			wantErr: ErrInvalidBox,
		},
		{
			name: "moving platform without duration",
			body: ` <objectgroup id="1" name="Boxes">
  <object id="1" name="lift" x="0" y="0" width="16" height="16">
   <properties>
    <property name="height" type="float" value="1"/>
    <property name="moving" type="bool" value="true"/>
   </properties>
  </object>
 </objectgroup>
` + spawnGroupXML,
			wantErr: ErrInvalidBox,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{"bad.tmx": tmx(tt.body)}
			_, err := Load(fsys, "bad.tmx")
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Load() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(fstest.MapFS{}, "missing.tmx"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadAll(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/b.tmx": tmx(spawnGroupXML),
		"levels/a.tmx": tmx(spawnGroupXML),
		"other/c.tmx":  tmx(spawnGroupXML),
	}

	levels, names, err := LoadAll(fsys, "levels")
	if err != nil {
		t.Fatalf("LoadAll() error = %v", err)
	}
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("names = %v, want [a b]", names)
	}
	if levels["a"] == nil || levels["b"] == nil {
		t.Errorf("levels = %v", levels)
	}

	if _, _, err := LoadAll(fsys, "empty"); err == nil {
		t.Error("expected error for a directory without maps")
	}
}
