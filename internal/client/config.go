package client

import (
	"fyne.io/fyne/v2"
)

// WindowConfig is fixed at build time; the app reads no file, flag or env.
type WindowConfig struct {
	AppID     string
	Title     string
	Size      fyne.Size
	MinSize   fyne.Size
	ThemeName string
}

func DefaultWindowConfig() WindowConfig {
	return WindowConfig{
		AppID:     "io.zokiio.localvoice",
		Title:     "Local App - TeamSpeak-style Prototype",
		Size:      fyne.NewSize(1100, 700),
		MinSize:   fyne.NewSize(900, 560),
		ThemeName: ThemeLight,
	}
}
