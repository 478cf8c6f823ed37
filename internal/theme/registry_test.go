package theme

import (
	"reflect"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

func TestRegistryOrder(t *testing.T) {
	want := []string{
		"Ableton Disco",
		"Brown Sugar",
		"Lady Like",
		"Materia Matter",
		"Ratatui Rules",
		"Terminal Spirit",
		"Ubuntu Joy",
		"White Sur",
	}

	r := NewRegistry()
	if got := r.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
	if r.Count() != len(want) {
		t.Errorf("Count() = %d, want %d", r.Count(), len(want))
	}
}

func TestDefaultIndex(t *testing.T) {
	r := NewRegistry()
	if got := r.Palette(r.DefaultIndex()).Name; got != DefaultName {
		t.Errorf("Palette(DefaultIndex()).Name = %q, want %q", got, DefaultName)
	}
}

func TestIndexOf(t *testing.T) {
	r := NewRegistry()
	tests := []struct {
		name   string
		want   int
		wantOK bool
	}{
		{"Ableton Disco", 0, true},
		{"white sur", 7, true},
		{"  Lady Like ", 2, true},
		{"default", 5, true},
		{"DEFAULT", 5, true},
		{"Solarized", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := r.IndexOf(tt.name)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("IndexOf(%q) = (%d, %v), want (%d, %v)", tt.name, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestPaletteOutOfRange(t *testing.T) {
	r := NewRegistry()
	for _, i := range []int{-1, r.Count(), 100} {
		if got := r.Palette(i).Name; got != DefaultName {
			t.Errorf("Palette(%d).Name = %q, want default %q", i, got, DefaultName)
		}
	}
}

func TestPaletteColorsAreHex(t *testing.T) {
	r := NewRegistry()
	for i := 0; i < r.Count(); i++ {
		p := r.Palette(i)
		v := reflect.ValueOf(p)
		for f := 0; f < v.NumField(); f++ {
			c, ok := v.Field(f).Interface().(lipgloss.Color)
			if !ok {
				continue
			}
			if _, err := colorful.Hex(string(c)); err != nil {
				t.Errorf("%s.%s = %q is not a hex color", p.Name, v.Type().Field(f).Name, c)
			}
		}
	}
}

func TestOverlay(t *testing.T) {
	tests := []struct {
		in     lipgloss.Color
		amount float64
		want   lipgloss.Color
	}{
		{"#ffffff", 0, "#ffffff"},
		{"#ffffff", 1, "#000000"},
		{"#000000", 0.5, "#000000"},
		{"240", 0.5, "240"},
		{"#808080", 2, "#000000"},
	}

	for _, tt := range tests {
		if got := Overlay(tt.in, tt.amount); got != tt.want {
			t.Errorf("Overlay(%q, %v) = %q, want %q", tt.in, tt.amount, got, tt.want)
		}
	}
}
