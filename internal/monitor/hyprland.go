package monitor

import (
	"encoding/json"
	"fmt"
	"math"
)

// CompositorMonitor matches one entry of `hyprctl monitors -j`.
type CompositorMonitor struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	X           int     `json:"x"`
	Y           int     `json:"y"`
	Scale       float64 `json:"scale"`
	Transform   int     `json:"transform"`
	Focused     bool    `json:"focused"`
	Disabled    bool    `json:"disabled"`
}

// ParseHyprctlMonitors decodes the JSON array printed by `hyprctl monitors -j`.
func ParseHyprctlMonitors(data []byte) ([]CompositorMonitor, error) {
	var list []CompositorMonitor
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("decode hyprctl monitors: %w", err)
	}
	return list, nil
}

// Enabled returns the monitors that are not disabled.
func Enabled(list []CompositorMonitor) []CompositorMonitor {
	out := make([]CompositorMonitor, 0, len(list))
	for _, m := range list {
		if !m.Disabled {
			out = append(out, m)
		}
	}
	return out
}

// LogicalScreen derives the logical screen for a compositor monitor.
// Pixel size is divided by scale, and rotated transforms swap the axes.
func LogicalScreen(m CompositorMonitor) Screen {
	scale := m.Scale
	if scale <= 0 {
		scale = 1
	}
	w := int(math.Round(float64(m.Width) / scale))
	h := int(math.Round(float64(m.Height) / scale))
	if m.Transform%2 == 1 {
		w, h = h, w
	}
	return Screen{Name: m.Name, X: m.X, Y: m.Y, Width: w, Height: h}
}
