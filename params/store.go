package params

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"diorama/core"
)

// Field describes one tunable value for a control panel. Min, Max and Step
// only apply to numbers.
type Field struct {
	Path    string
	Group   string // dotted prefix, "" for top-level fields
	Name    string // last path segment
	Kind    Kind
	Min     float64
	Max     float64
	Step    float64
	Default Value
}

type entry struct {
	field Field
	value Value
	bind  func(Value)
}

// Store is the single source of truth for every tunable value. Each field
// may carry one binding callback, invoked synchronously after every
// successful set, including sets that leave the value unchanged.
//
// A Store is not safe for concurrent use; mutate it from the frame loop.
type Store struct {
	// OnClamp, if set, receives every clamp event.
	OnClamp func(ClampEvent)

	entries map[string]*entry
	order   []string
	clamps  int
}

func NewStore() *Store {
	return &Store{entries: make(map[string]*entry)}
}

// DefineNumber adds a ranged numeric field. The default is snapped and
// clamped like any other set.
func (s *Store) DefineNumber(path string, def, min, max, step float64) error {
	if min > max || step < 0 || math.IsNaN(def) {
		return fmt.Errorf("params: %s: range [%v, %v] step %v: %w", path, min, max, step, ErrBadDefinition)
	}
	f := Field{Kind: KindNumber, Min: min, Max: max, Step: step}
	f.Default = NumberValue(f.normalize(def))
	return s.define(path, f)
}

func (s *Store) DefineBool(path string, def bool) error {
	return s.define(path, Field{Kind: KindBool, Default: BoolValue(def)})
}

func (s *Store) DefineColor(path string, def string) error {
	v, err := ColorValue(def)
	if err != nil {
		return fmt.Errorf("params: %s: %w: %w", path, ErrBadDefinition, err)
	}
	return s.define(path, Field{Kind: KindColor, Default: v})
}

func (s *Store) define(path string, f Field) error {
	if path == "" || strings.HasPrefix(path, ".") || strings.HasSuffix(path, ".") || strings.Contains(path, "..") {
		return fmt.Errorf("params: malformed path %q: %w", path, ErrBadDefinition)
	}
	if _, dup := s.entries[path]; dup {
		return fmt.Errorf("params: %s already defined: %w", path, ErrBadDefinition)
	}
	for _, existing := range s.order {
		if strings.HasPrefix(existing, path+".") || strings.HasPrefix(path, existing+".") {
			return fmt.Errorf("params: %s collides with group %s: %w", path, existing, ErrBadDefinition)
		}
	}
	f.Path = path
	if i := strings.LastIndexByte(path, '.'); i >= 0 {
		f.Group, f.Name = path[:i], path[i+1:]
	} else {
		f.Name = path
	}
	s.entries[path] = &entry{field: f, value: f.Default}
	s.order = append(s.order, path)
	return nil
}

// Bind installs the callback for path, replacing any previous one.
func (s *Store) Bind(path string, fn func(Value)) error {
	e, err := s.lookup(path)
	if err != nil {
		return err
	}
	e.bind = fn
	return nil
}

// SetNumber snaps v to the field's step, clamps it into [Min, Max] and
// stores it. Out-of-range requests are recorded as clamp events, not errors.
func (s *Store) SetNumber(path string, v float64) error {
	e, err := s.lookupKind(path, KindNumber)
	if err != nil {
		return err
	}
	if math.IsNaN(v) {
		return fmt.Errorf("params: %s: NaN: %w", path, ErrInvalidParameter)
	}
	stored := e.field.normalize(v)
	if v < e.field.Min || v > e.field.Max {
		s.clamps++
		if s.OnClamp != nil {
			s.OnClamp(ClampEvent{Path: path, Requested: v, Stored: stored})
		}
	}
	s.commit(e, NumberValue(stored))
	return nil
}

func (s *Store) SetBool(path string, v bool) error {
	e, err := s.lookupKind(path, KindBool)
	if err != nil {
		return err
	}
	s.commit(e, BoolValue(v))
	return nil
}

// SetColor validates hex and stores it canonicalised. A malformed color
// leaves the previous value in effect and does not invoke the binding.
func (s *Store) SetColor(path string, hex string) error {
	e, err := s.lookupKind(path, KindColor)
	if err != nil {
		return err
	}
	v, err := ColorValue(hex)
	if err != nil {
		return fmt.Errorf("params: %s: %w: %w", path, ErrInvalidParameter, err)
	}
	s.commit(e, v)
	return nil
}

// Set dispatches on the dynamic type of v: numbers, bool, hex strings and
// core.Color are accepted.
func (s *Store) Set(path string, v any) error {
	switch x := v.(type) {
	case float64:
		return s.SetNumber(path, x)
	case float32:
		return s.SetNumber(path, float64(x))
	case int:
		return s.SetNumber(path, float64(x))
	case bool:
		return s.SetBool(path, x)
	case string:
		return s.SetString(path, x)
	case core.Color:
		return s.SetColor(path, x.Hex())
	case Value:
		return s.SetString(path, x.String())
	}
	return fmt.Errorf("params: %s: unsupported type %T: %w", path, v, ErrInvalidParameter)
}

// SetString parses text according to the field's kind. Used by text consoles.
func (s *Store) SetString(path string, text string) error {
	e, err := s.lookup(path)
	if err != nil {
		return err
	}
	text = strings.TrimSpace(text)
	switch e.field.Kind {
	case KindNumber:
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return fmt.Errorf("params: %s: %q is not a number: %w", path, text, ErrInvalidParameter)
		}
		return s.SetNumber(path, v)
	case KindBool:
		v, err := strconv.ParseBool(text)
		if err != nil {
			return fmt.Errorf("params: %s: %q is not a bool: %w", path, text, ErrInvalidParameter)
		}
		return s.SetBool(path, v)
	default:
		return s.SetColor(path, text)
	}
}

// Reset restores every field to its default, invoking bindings.
func (s *Store) Reset() {
	for _, path := range s.order {
		e := s.entries[path]
		s.commit(e, e.field.Default)
	}
}

func (s *Store) commit(e *entry, v Value) {
	e.value = v
	if e.bind != nil {
		e.bind(v)
	}
}

// Get returns the current value of path.
func (s *Store) Get(path string) (Value, error) {
	e, err := s.lookup(path)
	if err != nil {
		return Value{}, err
	}
	return e.value, nil
}

// Number returns a number field. It panics on an undefined path.
func (s *Store) Number(path string) float64 { return s.must(path).Float() }

// Bool returns a bool field. It panics on an undefined path.
func (s *Store) Bool(path string) bool { return s.must(path).Bool() }

// Color returns a color field. It panics on an undefined path.
func (s *Store) Color(path string) core.Color { return s.must(path).Color() }

func (s *Store) must(path string) Value {
	v, err := s.Get(path)
	if err != nil {
		panic(err)
	}
	return v
}

// Field returns the descriptor for path.
func (s *Store) Field(path string) (Field, bool) {
	e, ok := s.entries[path]
	if !ok {
		return Field{}, false
	}
	return e.field, true
}

// Fields returns every descriptor in definition order.
func (s *Store) Fields() []Field {
	out := make([]Field, 0, len(s.order))
	for _, path := range s.order {
		out = append(out, s.entries[path].field)
	}
	return out
}

// Clamps returns how many numeric sets have been clamped.
func (s *Store) Clamps() int { return s.clamps }

func (s *Store) lookup(path string) (*entry, error) {
	e, ok := s.entries[path]
	if ok {
		return e, nil
	}
	if guess, ok := s.Suggest(path); ok {
		return nil, fmt.Errorf("params: %w %q (did you mean %q?)", ErrUnknownParameter, path, guess)
	}
	return nil, fmt.Errorf("params: %w %q", ErrUnknownParameter, path)
}

func (s *Store) lookupKind(path string, kind Kind) (*entry, error) {
	e, err := s.lookup(path)
	if err != nil {
		return nil, err
	}
	if e.field.Kind != kind {
		return nil, fmt.Errorf("params: %s holds a %s, not a %s: %w", path, e.field.Kind, kind, ErrInvalidParameter)
	}
	return e, nil
}

// normalize snaps v onto the step grid anchored at Min, then clamps.
func (f Field) normalize(v float64) float64 {
	if f.Step > 0 && !math.IsInf(v, 0) {
		v = f.Min + math.Round((v-f.Min)/f.Step)*f.Step
		v = math.Round(v*1e9) / 1e9
	}
	return math.Max(f.Min, math.Min(f.Max, v))
}
