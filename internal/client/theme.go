package client

import (
	"errors"
	"fmt"
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

const (
	ThemeDefault = "default"
	ThemeLight   = "light"
	ThemeDark    = "dark"
)

var ErrUnknownTheme = errors.New("unknown theme")

// variantTheme pins the default theme to one variant regardless of the
// OS preference.
type variantTheme struct {
	fyne.Theme
	variant fyne.ThemeVariant
}

func (t *variantTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	return t.Theme.Color(name, t.variant)
}

// ThemeByName resolves one of the built-in theme names.
func ThemeByName(name string) (fyne.Theme, error) {
	switch name {
	case ThemeDefault:
		return theme.DefaultTheme(), nil
	case ThemeLight:
		return &variantTheme{Theme: theme.DefaultTheme(), variant: theme.VariantLight}, nil
	case ThemeDark:
		return &variantTheme{Theme: theme.DefaultTheme(), variant: theme.VariantDark}, nil
	}
	return nil, fmt.Errorf("theme %q: %w", name, ErrUnknownTheme)
}

// applyTheme switches the app theme. An unavailable theme is logged and
// the toolkit default stays active.
func applyTheme(a fyne.App, name string) bool {
	th, err := ThemeByName(name)
	if err != nil {
		log.Printf("Keeping default theme: %v", err)
		return false
	}
	a.Settings().SetTheme(th)
	return true
}
