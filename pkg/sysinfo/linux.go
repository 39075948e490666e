//go:build linux

// Package sysinfo reports the primary display geometry for the current platform.
package sysinfo

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// GetScreenDimensions returns the primary desktop dimension (width and height) in pixels.
func GetScreenDimensions() (int, int, error) {
	// xdpyinfo prints a line such as
	// "dimensions:    1920x1080 pixels (508x285 millimeters)"
	out, err := exec.Command("xdpyinfo").Output()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to get screen resolution: %w", err)
	}

	for _, line := range strings.Split(string(out), "\n") {
		if !strings.Contains(line, "dimensions:") {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) < 2 {
			continue
		}
		dimensions := strings.Split(parts[1], "x")
		if len(dimensions) != 2 {
			continue
		}
		width, werr := strconv.Atoi(dimensions[0])
		height, herr := strconv.Atoi(dimensions[1])
		if werr != nil || herr != nil {
			continue
		}
		return width, height, nil
	}

	return 0, 0, fmt.Errorf("failed to parse screen resolution")
}
