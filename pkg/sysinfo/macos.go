//go:build darwin

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
	// system_profiler prints a line such as "Resolution: 2560 x 1600 Retina"
	out, err := exec.Command("system_profiler", "SPDisplaysDataType").Output()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to get screen resolution: %w", err)
	}

	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "Resolution:") {
			continue
		}
		fields := strings.Fields(line)
		// Resolution: <w> x <h> ...
		if len(fields) < 4 || fields[2] != "x" {
			continue
		}
		width, werr := strconv.Atoi(fields[1])
		height, herr := strconv.Atoi(fields[3])
		if werr != nil || herr != nil {
			continue
		}
		return width, height, nil
	}

	return 0, 0, fmt.Errorf("failed to parse screen resolution")
}
