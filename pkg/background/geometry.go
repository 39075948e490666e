package background

import (
	"fmt"

	"github.com/cjelland/redwall/pkg/sysinfo"
)

// Geometry is the resolution of the primary display.
type Geometry struct {
	Width  int
	Height int
}

// Aspect returns the width to height ratio.
func (g Geometry) Aspect() float64 {
	return float64(g.Width) / float64(g.Height)
}

// GeometryDetector reports the current display geometry. It is queried fresh
// for every filtering decision since the resolution may change between runs.
type GeometryDetector interface {
	Detect() (Geometry, error)
}

// screenDetector reads the primary display resolution from the OS.
type screenDetector struct{}

// NewScreenDetector returns a GeometryDetector backed by the real display.
func NewScreenDetector() GeometryDetector {
	return &screenDetector{}
}

func (d *screenDetector) Detect() (Geometry, error) {
	w, h, err := sysinfo.GetScreenDimensions()
	if err != nil {
		return Geometry{}, fmt.Errorf("failed to detect display geometry: %w", err)
	}
	if w <= 0 || h <= 0 {
		return Geometry{}, fmt.Errorf("invalid display geometry %dx%d", w, h)
	}
	return Geometry{Width: w, Height: h}, nil
}
