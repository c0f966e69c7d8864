package component

// Theme colors (ANSI 256) shared by components and pages.
const (
	ColorAccent    = "86"  // Cyan/green - titles, labels
	ColorHighlight = "205" // Magenta - focus, selected borders
	ColorDanger    = "196" // Red - errors
	ColorMuted     = "241" // Gray - hints, disabled text
	ColorText      = "252" // Light gray - body text
	ColorDim       = "238" // Dark gray - disabled borders
	ColorBlue      = "33"
	ColorBlueDark  = "25"
	ColorGray      = "240"
	ColorRed       = "160"
	ColorWhite     = "231"
)
