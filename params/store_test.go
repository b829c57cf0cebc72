package params

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func groundStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore()
	must := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatalf("define: %v", err)
		}
	}
	must(s.DefineColor("backgroundColor", "#536375"))
	must(s.DefineNumber("ground.size", 10, 1, 20, 1))
	must(s.DefineColor("ground.color", "#dcdcdc"))
	must(s.DefineNumber("ground.roughness", 0.6, 0, 1, 0.01))
	must(s.DefineNumber("ground.metalness", 0.05, 0, 1, 0.01))
	must(s.DefineBool("snow.visible", true))
	must(s.DefineColor("trees.leaves.color", "#214829"))
	return s
}

func TestClampToMax(t *testing.T) {
	s := groundStore(t)
	var events []ClampEvent
	s.OnClamp = func(ev ClampEvent) { events = append(events, ev) }

	if err := s.SetNumber("ground.roughness", 5); err != nil {
		t.Fatalf("SetNumber: %v", err)
	}
	if got := s.Number("ground.roughness"); got != 1 {
		t.Errorf("expected stored value exactly 1, got %v", got)
	}
	if s.Clamps() != 1 || len(events) != 1 {
		t.Fatalf("expected one clamp event, got %d (%d delivered)", s.Clamps(), len(events))
	}
	if events[0].Requested != 5 || events[0].Stored != 1 {
		t.Errorf("unexpected clamp event %+v", events[0])
	}

	if err := s.SetNumber("ground.roughness", -3); err != nil {
		t.Fatalf("SetNumber: %v", err)
	}
	if got := s.Number("ground.roughness"); got != 0 {
		t.Errorf("expected stored value exactly 0, got %v", got)
	}
}

func TestNumberSnapsToStep(t *testing.T) {
	s := groundStore(t)

	tests := []struct {
		path string
		in   float64
		want float64
	}{
		{"ground.size", 7.4, 7},
		{"ground.size", 7.6, 8},
		{"ground.size", 0.3, 1},
		{"ground.roughness", 0.456, 0.46},
		{"ground.roughness", 0.6, 0.6},
	}
	for _, tt := range tests {
		if err := s.SetNumber(tt.path, tt.in); err != nil {
			t.Fatalf("SetNumber(%s, %v): %v", tt.path, tt.in, err)
		}
		if got := s.Number(tt.path); got != tt.want {
			t.Errorf("SetNumber(%s, %v): expected %v, got %v", tt.path, tt.in, tt.want, got)
		}
	}
}

func TestInvalidColorKeepsPrevious(t *testing.T) {
	s := groundStore(t)
	calls := 0
	if err := s.Bind("ground.color", func(Value) { calls++ }); err != nil {
		t.Fatal(err)
	}

	for _, bad := range []string{"#zzzzzz", "dcdcdc", "#12345", "", "#+12345"} {
		err := s.SetColor("ground.color", bad)
		if !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("SetColor(%q): expected ErrInvalidParameter, got %v", bad, err)
		}
	}
	v, _ := s.Get("ground.color")
	if v.Hex() != "#dcdcdc" {
		t.Errorf("expected previous value to stay, got %s", v.Hex())
	}
	if calls != 0 {
		t.Errorf("binding invoked %d times for rejected sets", calls)
	}
}

func TestColorCanonicalised(t *testing.T) {
	s := groundStore(t)
	if err := s.SetColor("ground.color", "#ABC"); err != nil {
		t.Fatal(err)
	}
	v, _ := s.Get("ground.color")
	if v.Hex() != "#aabbcc" {
		t.Errorf("expected #aabbcc, got %s", v.Hex())
	}
}

func TestColorSetGetIsIdempotent(t *testing.T) {
	s := groundStore(t)
	var got []string
	if err := s.Bind("trees.leaves.color", func(v Value) { got = append(got, v.Hex()) }); err != nil {
		t.Fatal(err)
	}

	before, _ := s.Get("trees.leaves.color")
	if err := s.SetColor("trees.leaves.color", before.Hex()); err != nil {
		t.Fatal(err)
	}
	after, _ := s.Get("trees.leaves.color")

	if len(got) != 1 {
		t.Fatalf("expected binding to run once, ran %d times", len(got))
	}
	if after != before || got[0] != before.Hex() {
		t.Errorf("set(get()) changed the value: %s -> %s", before.Hex(), after.Hex())
	}
}

func TestBindingRunsOnEverySet(t *testing.T) {
	s := groundStore(t)
	calls := 0
	if err := s.Bind("ground.size", func(Value) { calls++ }); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		if err := s.SetNumber("ground.size", 10); err != nil {
			t.Fatal(err)
		}
	}
	if calls != 3 {
		t.Errorf("expected 3 calls, got %d", calls)
	}

	// Rebinding replaces the callback.
	replaced := 0
	if err := s.Bind("ground.size", func(Value) { replaced++ }); err != nil {
		t.Fatal(err)
	}
	if err := s.SetNumber("ground.size", 12); err != nil {
		t.Fatal(err)
	}
	if calls != 3 || replaced != 1 {
		t.Errorf("expected old binding idle and new one called once, got %d/%d", calls, replaced)
	}
}

func TestUnknownPathSuggests(t *testing.T) {
	s := groundStore(t)

	err := s.SetNumber("ground.rougness", 0.5)
	if !errors.Is(err, ErrUnknownParameter) {
		t.Fatalf("expected ErrUnknownParameter, got %v", err)
	}
	if !strings.Contains(err.Error(), `"ground.roughness"`) {
		t.Errorf("expected suggestion in error, got %q", err)
	}

	if guess, ok := s.Suggest("snow.vis"); !ok || guess != "snow.visible" {
		t.Errorf("prefix suggestion: got %q, %v", guess, ok)
	}
	if _, ok := s.Suggest("water.height"); ok {
		t.Error("expected no suggestion for an unrelated path")
	}
}

func TestKindMismatchRejected(t *testing.T) {
	s := groundStore(t)
	if err := s.SetColor("ground.size", "#ffffff"); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("expected ErrInvalidParameter, got %v", err)
	}
	if err := s.Set("snow.visible", 3.0); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("expected ErrInvalidParameter, got %v", err)
	}
	if err := s.Set("ground.size", struct{}{}); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("expected ErrInvalidParameter, got %v", err)
	}
}

func TestSetStringParsesByKind(t *testing.T) {
	s := groundStore(t)
	if err := s.SetString("ground.size", " 14 "); err != nil {
		t.Fatal(err)
	}
	if err := s.SetString("snow.visible", "false"); err != nil {
		t.Fatal(err)
	}
	if err := s.SetString("ground.color", "#000"); err != nil {
		t.Fatal(err)
	}
	if s.Number("ground.size") != 14 || s.Bool("snow.visible") {
		t.Errorf("unexpected values: size=%v visible=%v", s.Number("ground.size"), s.Bool("snow.visible"))
	}
	if err := s.SetString("ground.size", "big"); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("expected ErrInvalidParameter, got %v", err)
	}
}

func TestDefineRejectsCollisions(t *testing.T) {
	s := groundStore(t)
	if err := s.DefineBool("ground.size", true); !errors.Is(err, ErrBadDefinition) {
		t.Errorf("duplicate: expected ErrBadDefinition, got %v", err)
	}
	if err := s.DefineBool("ground", true); !errors.Is(err, ErrBadDefinition) {
		t.Errorf("group collision: expected ErrBadDefinition, got %v", err)
	}
	if err := s.DefineNumber("water.height", 0.3, 0.4, 0.2, 0.01); !errors.Is(err, ErrBadDefinition) {
		t.Errorf("inverted range: expected ErrBadDefinition, got %v", err)
	}
	if err := s.DefineColor("water.color", "cyan"); !errors.Is(err, ErrBadDefinition) {
		t.Errorf("bad default: expected ErrBadDefinition, got %v", err)
	}
}

func TestFieldsInDefinitionOrder(t *testing.T) {
	s := groundStore(t)
	fields := s.Fields()
	if len(fields) != 7 {
		t.Fatalf("expected 7 fields, got %d", len(fields))
	}
	if fields[0].Path != "backgroundColor" || fields[0].Group != "" {
		t.Errorf("unexpected first field %+v", fields[0])
	}
	leaves := fields[6]
	if leaves.Group != "trees.leaves" || leaves.Name != "color" || leaves.Kind != KindColor {
		t.Errorf("unexpected leaves field %+v", leaves)
	}
	size := fields[1]
	if size.Min != 1 || size.Max != 20 || size.Step != 1 {
		t.Errorf("unexpected size range %+v", size)
	}
}

func TestResetRestoresDefaults(t *testing.T) {
	s := groundStore(t)
	_ = s.SetNumber("ground.size", 3)
	_ = s.SetBool("snow.visible", false)
	s.Reset()
	if s.Number("ground.size") != 10 || !s.Bool("snow.visible") {
		t.Error("Reset did not restore defaults")
	}
}

func TestWriteYAML(t *testing.T) {
	s := groundStore(t)
	var buf bytes.Buffer
	if err := s.WriteYAML(&buf); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}

	var doc struct {
		Background string `yaml:"backgroundColor"`
		Ground     struct {
			Size      int     `yaml:"size"`
			Color     string  `yaml:"color"`
			Roughness float64 `yaml:"roughness"`
		} `yaml:"ground"`
		Snow struct {
			Visible bool `yaml:"visible"`
		} `yaml:"snow"`
		Trees struct {
			Leaves struct {
				Color string `yaml:"color"`
			} `yaml:"leaves"`
		} `yaml:"trees"`
	}
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("decode: %v\n%s", err, buf.String())
	}
	if doc.Background != "#536375" || doc.Ground.Size != 10 || doc.Ground.Color != "#dcdcdc" {
		t.Errorf("unexpected document:\n%s", buf.String())
	}
	if doc.Ground.Roughness != 0.6 || !doc.Snow.Visible || doc.Trees.Leaves.Color != "#214829" {
		t.Errorf("unexpected document:\n%s", buf.String())
	}

	// Groups keep definition order.
	out := buf.String()
	if strings.Index(out, "backgroundColor") > strings.Index(out, "ground:") {
		t.Errorf("expected backgroundColor before ground:\n%s", out)
	}
}

func TestSnapshotNests(t *testing.T) {
	s := groundStore(t)
	snap := s.Snapshot()
	trees, ok := snap["trees"].(map[string]any)
	if !ok {
		t.Fatalf("expected trees group, got %T", snap["trees"])
	}
	leaves, ok := trees["leaves"].(map[string]any)
	if !ok || leaves["color"] != "#214829" {
		t.Errorf("unexpected leaves group %v", trees["leaves"])
	}
	if snap["ground"].(map[string]any)["size"] != 10.0 {
		t.Errorf("unexpected ground size %v", snap["ground"])
	}
}
