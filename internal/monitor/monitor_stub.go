//go:build !windows

package monitor

import "fmt"

// ListScreens returns an error on non-Windows platforms.
func ListScreens() ([]Screen, error) {
	return nil, fmt.Errorf("ListScreens is only supported on Windows")
}
