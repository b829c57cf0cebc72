package main

import (
	"fmt"

	"diorama/core"
	"diorama/diorama"
	"diorama/params"
)

// colorStep is how far Left/Right move every channel of a color field.
const colorStep = 1.0 / 32

// keyPanel edits the store from the keyboard: Up/Down select a field,
// Left/Right step it (Shift for ten steps), PageUp/PageDown jump between
// groups, H toggles the light helper and R restores defaults. The selected
// field and its value are shown in the window title.
type keyPanel struct {
	store    *params.Store
	fields   []params.Field
	selected int

	// Err holds the last rejected set, cleared by the next successful one.
	Err error
}

func newKeyPanel(store *params.Store) *keyPanel {
	return &keyPanel{store: store, fields: store.Fields()}
}

func (p *keyPanel) Key(key int, shift bool) {
	if len(p.fields) == 0 {
		return
	}
	switch key {
	case core.KeyUp:
		p.selected = (p.selected + len(p.fields) - 1) % len(p.fields)
	case core.KeyDown:
		p.selected = (p.selected + 1) % len(p.fields)
	case core.KeyPageUp:
		p.jumpGroup(-1)
	case core.KeyPageDown:
		p.jumpGroup(1)
	case core.KeyLeft, core.KeyRight:
		n := 1
		if shift {
			n = 10
		}
		if key == core.KeyLeft {
			n = -n
		}
		p.Err = p.step(p.fields[p.selected], n)
	case core.KeyH:
		p.Err = p.store.SetBool(diorama.PathShowLightHelper, !p.store.Bool(diorama.PathShowLightHelper))
	case core.KeyR:
		p.store.Reset()
		p.Err = nil
	}
}

func (p *keyPanel) step(f params.Field, n int) error {
	switch f.Kind {
	case params.KindBool:
		return p.store.SetBool(f.Path, !p.store.Bool(f.Path))
	case params.KindColor:
		c := p.store.Color(f.Path)
		d := float32(n) * colorStep
		c = core.Color{R: c.R + d, G: c.G + d, B: c.B + d, A: 1}
		return p.store.SetColor(f.Path, c.Hex())
	default:
		step := f.Step
		if step == 0 {
			step = (f.Max - f.Min) / 100
		}
		return p.store.SetNumber(f.Path, p.store.Number(f.Path)+float64(n)*step)
	}
}

// jumpGroup moves the selection to the first field of the next or previous
// group, wrapping around.
func (p *keyPanel) jumpGroup(dir int) {
	cur := p.fields[p.selected].Group
	i := p.selected
	for range p.fields {
		i = (i + dir + len(p.fields)) % len(p.fields)
		if p.fields[i].Group != cur {
			break
		}
	}
	group := p.fields[i].Group
	for i > 0 && p.fields[i-1].Group == group {
		i--
	}
	p.selected = i
}

// Selected returns the field under the cursor.
func (p *keyPanel) Selected() params.Field {
	return p.fields[p.selected]
}

func (p *keyPanel) Title() string {
	f := p.fields[p.selected]
	v, _ := p.store.Get(f.Path)
	title := fmt.Sprintf("Diorama  [%d/%d] %s = %s", p.selected+1, len(p.fields), f.Path, v)
	if p.Err != nil {
		title += "  (" + p.Err.Error() + ")"
	}
	return title
}
