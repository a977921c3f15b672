// Package region clamps selection rectangles to screen bounds.
package region

// Region describes a selection using top-left origin and size in pixels.
type Region struct {
	X      int `json:"x" yaml:"x"`
	Y      int `json:"y" yaml:"y"`
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// ClampToScreen returns r moved and shrunk to fit a screenWidth x screenHeight screen.
// Position is clamped first; width/height are then limited to the space left
// from the clamped position, so a region near the right edge keeps only what fits.
func ClampToScreen(r Region, screenWidth, screenHeight int) Region {
	x := clamp(r.X, 0, screenWidth-1)
	y := clamp(r.Y, 0, screenHeight-1)
	return Region{
		X:      x,
		Y:      y,
		Width:  clamp(r.Width, 0, screenWidth-x),
		Height: clamp(r.Height, 0, screenHeight-y),
	}
}

// clamp returns max(lo, min(v, hi)); when hi < lo the result is lo.
func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
