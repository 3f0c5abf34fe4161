package theme

// Theming for the picker window. Provides palette constants and InitStyles
// to activate a base theme and configure the semantic widget styles the
// views reference by name.

import (
	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Light palette.
const (
	ColorBg      = "#f6f7f9" // window background
	ColorSurface = "#ffffff" // readout and history panels
	ColorBorder  = "#cfd6dd"
	ColorPrimary = "#2563eb" // freeze button, accents
	ColorDanger  = "#dc2626" // exit button
	ColorLive    = "#10b981" // state label while tracking
	ColorText    = "#1f2937"
)

// style names used with Style("primary.TButton") etc.
const (
	StylePrimaryButton = "primary.TButton"
	StyleDangerButton  = "danger.TButton"
	StyleStateLabel    = "state.TLabel"
	StyleValueLabel    = "value.TLabel"
)

var darkMode bool

// InitStyles (re)applies styles for the current darkMode value.
func InitStyles() { applyStyles(darkMode) }

// SetDark switches between the light and dark palette and reapplies styles.
// Returns the new mode value.
func SetDark(dark bool) bool {
	darkMode = dark
	applyStyles(darkMode)
	return darkMode
}

// IsDark reports the current mode.
func IsDark() bool { return darkMode }

func applyStyles(dark bool) {
	_ = ActivateTheme("azure light") // baseline metrics
	if dark {
		App.Configure(Background("#111827"))
	} else {
		App.Configure(Background(ColorBg))
	}

	StyleConfigure(StylePrimaryButton,
		Background(func() string {
			if dark {
				return "#3b82f6"
			}
			return ColorPrimary
		}()),
		Foreground("white"),
		Padding("4p 3p"),
		Borderwidth(1),
		Relief("ridge"),
	)
	StyleConfigure(StyleDangerButton,
		Background(func() string {
			if dark {
				return "#ef4444"
			}
			return ColorDanger
		}()),
		Foreground("white"),
		Padding("4p 3p"),
		Borderwidth(1),
		Relief("ridge"),
	)
	StyleConfigure(StyleStateLabel,
		Foreground("white"),
		Background(func() string {
			if dark {
				return "#34d399"
			}
			return ColorLive
		}()),
		Padding("4p 2p"),
		Borderwidth(1),
		Relief("groove"),
	)
	StyleConfigure(StyleValueLabel,
		Foreground(func() string {
			if dark {
				return "#e5e7eb"
			}
			return ColorText
		}()),
		Padding("2p 1p"),
	)
}
