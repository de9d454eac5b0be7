package world

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/lucasb-eyer/go-colorful"
)

// BlockType is a named palette entry.
type BlockType struct {
	Name  string
	Hex   string
	Color rl.Color
}

// Palette is the fixed, ordered set of selectable block types. It is never mutated after
// construction; Entries returns a copy.
type Palette struct {
	entries []BlockType
}

// Entry is an unparsed palette entry.
type Entry struct {
	Name string
	Hex  string
}

// DefaultPaletteHex lists the built-in block types in display order.
var DefaultPaletteHex = []Entry{
	{"Grass", "#7cb342"},
	{"Dirt", "#8b5a2b"},
	{"Stone", "#888888"},
	{"Wood", "#a0522d"},
	{"Sand", "#f4a460"},
}

// ParseColor converts a "#rrggbb" string into an opaque raylib color.
func ParseColor(hex string) (rl.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return rl.Color{}, fmt.Errorf("parse color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return rl.NewColor(r, g, b, 255), nil
}

// NewPalette builds a palette from name/hex pairs. It fails on an empty list, a bad color or
// a repeated name.
func NewPalette(pairs []Entry) (*Palette, error) {
	if len(pairs) == 0 {
		return nil, fmt.Errorf("palette is empty")
	}
	seen := make(map[string]bool, len(pairs))
	entries := make([]BlockType, 0, len(pairs))
	for _, p := range pairs {
		if p.Name == "" {
			return nil, fmt.Errorf("palette entry with color %q has no name", p.Hex)
		}
		if seen[p.Name] {
			return nil, fmt.Errorf("duplicate palette entry %q", p.Name)
		}
		seen[p.Name] = true
		color, err := ParseColor(p.Hex)
		if err != nil {
			return nil, fmt.Errorf("palette entry %q: %w", p.Name, err)
		}
		entries = append(entries, BlockType{Name: p.Name, Hex: p.Hex, Color: color})
	}
	return &Palette{entries: entries}, nil
}

// DefaultPalette returns the built-in Grass/Dirt/Stone/Wood/Sand palette.
func DefaultPalette() *Palette {
	p, err := NewPalette(DefaultPaletteHex)
	if err != nil {
		panic(err)
	}
	return p
}

func (p *Palette) Entries() []BlockType {
	return append([]BlockType(nil), p.entries...)
}

func (p *Palette) Len() int {
	return len(p.entries)
}

// First is the fallback entry for lookups that miss.
func (p *Palette) First() BlockType {
	return p.entries[0]
}

func (p *Palette) Lookup(name string) (BlockType, bool) {
	for _, e := range p.entries {
		if e.Name == name {
			return e, true
		}
	}
	return BlockType{}, false
}

// ColorOf returns the color for name, or the first entry's color when name is unknown.
func (p *Palette) ColorOf(name string) rl.Color {
	if e, ok := p.Lookup(name); ok {
		return e.Color
	}
	return p.First().Color
}
