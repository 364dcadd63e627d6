package engine

import (
	"fmt"
	"strings"
)

// Theme selects the symbol palette tiles are drawn from.
type Theme string

const (
	ThemeAnimals Theme = "animals"
	ThemeFood    Theme = "food"
	ThemeFaces   Theme = "faces"
	ThemeMixed   Theme = "mixed"
	ThemeGlyphs  Theme = "glyphs" // Single-width letters for terminals without emoji fonts
)

// DefaultTheme is used when no theme is configured.
const DefaultTheme = ThemeMixed

var palettes = map[Theme][]string{
	ThemeAnimals: {"🐶", "🐱", "🐭", "🐹", "🐰", "🦊", "🐻", "🐼", "🐨", "🦁", "🐮", "🐷"},
	ThemeFood:    {"🍎", "🍕", "🍔", "🍟", "🥝", "🍇", "🍉", "🍓", "🍒", "🍑", "🍍", "🥥"},
	ThemeFaces:   {"😀", "😂", "🥰", "😎", "🤩", "😍", "🤗", "🤑", "🤠", "🥳", "😜", "🤪"},
	ThemeMixed:   {"🐶", "🍕", "😀", "🐱", "🍔", "😂", "🐭", "🍎", "🥰", "🐻", "🥝", "😎"},
	ThemeGlyphs:  {"A", "B", "C", "D", "E", "F", "G", "H", "J", "K", "M", "N"},
}

var themeOrder = []Theme{ThemeAnimals, ThemeFood, ThemeFaces, ThemeMixed, ThemeGlyphs}

// Themes returns all themes in display order.
func Themes() []Theme {
	out := make([]Theme, len(themeOrder))
	copy(out, themeOrder)
	return out
}

// ParseTheme resolves a theme name (case-insensitive).
func ParseTheme(name string) (Theme, error) {
	t := Theme(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := palettes[t]; !ok {
		return "", fmt.Errorf("unknown theme %q", name)
	}
	return t, nil
}

// Palette returns the theme's symbols. Unknown themes fall back to DefaultTheme.
func (t Theme) Palette() []string {
	p, ok := palettes[t]
	if !ok {
		p = palettes[DefaultTheme]
	}
	out := make([]string, len(p))
	copy(out, p)
	return out
}

// Wide reports whether the theme's symbols occupy two terminal columns.
func (t Theme) Wide() bool {
	return t != ThemeGlyphs
}

// Next returns the theme after t in display order, wrapping around.
func (t Theme) Next() Theme {
	for i, th := range themeOrder {
		if th == t {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return DefaultTheme
}
