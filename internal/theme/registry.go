package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// DefaultName is the palette selected when nothing else is configured.
const DefaultName = "Terminal Spirit"

// aliasDefault may be used in configuration in place of DefaultName.
const aliasDefault = "default"

// Registry is an ordered, index-stable catalog of palettes.
type Registry struct {
	palettes     []Palette
	defaultIndex int
}

// NewRegistry returns the built-in palettes in alphabetical order.
func NewRegistry() *Registry {
	r := &Registry{
		palettes: []Palette{
			abletonDisco(),
			brownSugar(),
			ladyLike(),
			materiaMatter(),
			ratatuiRules(),
			terminalSpirit(),
			ubuntuJoy(),
			whiteSur(),
		},
	}
	r.defaultIndex, _ = r.IndexOf(DefaultName)
	return r
}

// Count returns the number of palettes.
func (r *Registry) Count() int {
	return len(r.palettes)
}

// Palette returns the palette at index i. Out-of-range indices resolve to
// the default palette.
func (r *Registry) Palette(i int) Palette {
	if i < 0 || i >= len(r.palettes) {
		return r.palettes[r.defaultIndex]
	}
	return r.palettes[i]
}

// IndexOf finds a palette by name, ignoring case and surrounding spaces.
// "default" resolves to DefaultName.
func (r *Registry) IndexOf(name string) (int, bool) {
	name = strings.TrimSpace(name)
	if strings.EqualFold(name, aliasDefault) {
		name = DefaultName
	}
	for i, p := range r.palettes {
		if strings.EqualFold(p.Name, name) {
			return i, true
		}
	}
	return 0, false
}

// DefaultIndex returns the index of DefaultName.
func (r *Registry) DefaultIndex() int {
	return r.defaultIndex
}

// Names returns palette names in registry order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.palettes))
	for i, p := range r.palettes {
		names[i] = p.Name
	}
	return names
}

// Overlay darkens c by amount (0..1) for use as a modal backdrop. Colors that
// are not hex triplets are returned unchanged.
func Overlay(c lipgloss.Color, amount float64) lipgloss.Color {
	base, err := colorful.Hex(string(c))
	if err != nil {
		return c
	}
	if amount < 0 {
		amount = 0
	}
	if amount > 1 {
		amount = 1
	}
	shade := base.BlendRgb(colorful.Color{}, amount).Clamped()
	return lipgloss.Color(shade.Hex())
}
