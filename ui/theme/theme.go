package theme

// Centralized theming for the overlay window. The comparison view sits on a
// dark surface so that neither image is tinted by the chrome around it.

import (
	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Palette defines core semantic colors used across widgets.
const (
	ColorBg        = "#f7f9fb"
	ColorSurface   = "#ffffff"
	ColorBorder    = "#d0d7de"
	ColorPrimary   = "#2563eb"
	ColorDanger    = "#dc2626"
	ColorAccent    = "#10b981"
	ColorText      = "#1e293b"
	ColorTextMuted = "#64748b"
)

// PaletteSnapshot represents resolved colors for the active mode.
type PaletteSnapshot struct {
	AppBg     string
	Surface   string
	Border    string
	Primary   string
	Danger    string
	Accent    string
	Text      string
	TextMuted string
}

var dark = PaletteSnapshot{
	AppBg:     "#0f172a",
	Surface:   "#1e293b",
	Border:    "#334155",
	Primary:   "#3b82f6",
	Danger:    "#ef4444",
	Accent:    "#10b981",
	Text:      "#f1f5f9",
	TextMuted: "#94a3b8",
}

var light = PaletteSnapshot{
	AppBg:     ColorBg,
	Surface:   ColorSurface,
	Border:    ColorBorder,
	Primary:   ColorPrimary,
	Danger:    ColorDanger,
	Accent:    ColorAccent,
	Text:      ColorText,
	TextMuted: ColorTextMuted,
}

// Style names used with Style("primary.TButton") etc.
const (
	StylePrimaryButton = "primary.TButton"
	StyleDangerButton  = "danger.TButton"
	StyleReadoutLabel  = "readout.TLabel"
	StyleStatusLabel   = "status.TLabel"
)

// dark mode is the default for an image comparison tool
var darkMode = true

// PaletteFor returns the palette for the requested mode.
func PaletteFor(isDark bool) PaletteSnapshot {
	if isDark {
		return dark
	}
	return light
}

// InitStyles (re)applies styles for the current mode.
func InitStyles() { applyStyles(PaletteFor(darkMode), darkMode) }

// ToggleLabel is the caption for a button that switches away from the current mode.
func ToggleLabel(isDark bool) string {
	if isDark {
		return "Light theme"
	}
	return "Dark theme"
}

// SetDark switches mode and reapplies styles. Returns the new mode value.
func SetDark(d bool) bool {
	darkMode = d
	InitStyles()
	return darkMode
}

// IsDark reports current mode.
func IsDark() bool { return darkMode }

// ActivateTheme only succeeds with package main on the call stack; the style
// overrides below apply either way.
func applyStyles(p PaletteSnapshot, isDark bool) {
	if isDark {
		_ = ActivateTheme("azure dark")
	} else {
		_ = ActivateTheme("azure light")
	}
	App.Configure(Background(p.AppBg))

	StyleConfigure(StylePrimaryButton,
		Background(p.Primary),
		Foreground("white"),
		Padding("4p 3p"),
		Borderwidth(1),
		Relief("ridge"),
	)
	StyleConfigure(StyleDangerButton,
		Background(p.Danger),
		Foreground("white"),
		Padding("4p 3p"),
		Borderwidth(1),
		Relief("ridge"),
	)
	StyleConfigure(StyleReadoutLabel,
		Foreground(p.Primary),
		Background(p.Surface),
		Padding("2p 1p"),
	)
	StyleConfigure(StyleStatusLabel,
		Foreground(p.TextMuted),
		Background(p.AppBg),
		Padding("4p 2p"),
	)
}
