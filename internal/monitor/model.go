// Package monitor describes display geometry and the shell's monitor list.
package monitor

import "slices"

// Screen describes a display as the shell sees it, in logical pixels.
type Screen struct {
	Name    string
	X       int
	Y       int
	Width   int
	Height  int
	Primary bool
}

// Info combines a screen's size with the compositor's name, position and scale.
type Info struct {
	Name   string  `json:"name" yaml:"name"`
	X      int     `json:"x" yaml:"x"`
	Y      int     `json:"y" yaml:"y"`
	Width  int     `json:"width" yaml:"width"`
	Height int     `json:"height" yaml:"height"`
	Scale  float64 `json:"scale" yaml:"scale"`
}

// BuildInfo assembles an Info from a screen and its compositor monitor.
func BuildInfo(screen Screen, m CompositorMonitor) Info {
	return Info{
		Name:   m.Name,
		X:      m.X,
		Y:      m.Y,
		Width:  screen.Width,
		Height: screen.Height,
		Scale:  m.Scale,
	}
}

// SortByOrder returns monitors ordered by customOrder.
// Names listed in customOrder come first in that order; the rest follow in
// their original relative order. The input slice is not modified.
func SortByOrder(monitors []Info, customOrder []string) []Info {
	if len(customOrder) == 0 {
		return monitors
	}
	sorted := slices.Clone(monitors)
	slices.SortStableFunc(sorted, func(a, b Info) int {
		ai := slices.Index(customOrder, a.Name)
		bi := slices.Index(customOrder, b.Name)
		switch {
		case ai == -1 && bi == -1:
			return 0
		case ai == -1:
			return 1
		case bi == -1:
			return -1
		}
		return ai - bi
	})
	return sorted
}

// InfoByName returns the monitor with the given name.
func InfoByName(list []Info, name string) (Info, bool) {
	for _, m := range list {
		if m.Name == name {
			return m, true
		}
	}
	return Info{}, false
}

// PrimaryFirst returns screens with the primary display moved to the front.
// Other screens keep their relative order; the input slice is not modified.
func PrimaryFirst(list []Screen) []Screen {
	out := slices.Clone(list)
	slices.SortStableFunc(out, func(a, b Screen) int {
		switch {
		case a.Primary == b.Primary:
			return 0
		case a.Primary:
			return -1
		}
		return 1
	})
	return out
}
