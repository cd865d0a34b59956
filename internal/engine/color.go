package engine

// Color is an identity tag for a grid cell's visual state.
// The platform layer maps these to terminal styles.
type Color uint8

const (
	ColorDefault Color = iota
	ColorShade         // dimmed cells: blink-off phase, bomb filler
	ColorGreen
	ColorRed
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
)
