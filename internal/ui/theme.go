// Package ui provides the ShapeBoard application UI components.
//
// This file defines a compact Fyne theme with a fixed light/dark variant.

package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// BoardTheme wraps the default Fyne theme, pinning the variant chosen in the
// app config and tightening padding around the toolbar.
type BoardTheme struct {
	base    fyne.Theme
	forced  bool
	variant fyne.ThemeVariant
}

// NewBoardTheme returns a theme for the config value "light", "dark" or
// "system". Anything else follows the system variant.
func NewBoardTheme(name string) *BoardTheme {
	t := &BoardTheme{base: theme.DefaultTheme()}
	switch name {
	case "light":
		t.forced, t.variant = true, theme.VariantLight
	case "dark":
		t.forced, t.variant = true, theme.VariantDark
	}
	return t
}

// Color delegates to the base theme, substituting the pinned variant.
func (t *BoardTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if t.forced {
		variant = t.variant
	}
	return t.base.Color(name, variant)
}

// Font delegates to the base theme.
func (t *BoardTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

// Icon delegates to the base theme.
func (t *BoardTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

// Size returns compact sizing overrides.
func (t *BoardTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameInlineIcon:
		return 18
	default:
		return t.base.Size(name)
	}
}
