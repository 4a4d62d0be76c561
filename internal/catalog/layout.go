package catalog

// Device classes used by Columns. Sizes are logical pixels.
const (
	tabletMinDimension = 600
	smallDeviceWidth   = 375
)

// Columns returns how many cards fit side by side on a screen of the given
// size: four on a landscape tablet, three on a portrait tablet, two on a
// phone.
func Columns(width, height int) int {
	isTablet := min(width, height) >= tabletMinDimension
	isLandscape := width > height

	switch {
	case isTablet && isLandscape:
		return 4
	case isTablet:
		return 3
	default:
		return 2
	}
}

// CardWidth returns the width of one card after gutters for the same
// device classes as Columns.
func CardWidth(width, height int) float64 {
	isTablet := min(width, height) >= tabletMinDimension
	isLandscape := width > height
	w := float64(width)

	switch {
	case isTablet && isLandscape:
		return (w - 80) / 4
	case isTablet:
		return (w - 64) / 3
	case width < smallDeviceWidth:
		return (w - 48) / 2
	default:
		return (w - 52) / 2
	}
}
