package background

import (
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"
	"github.com/muesli/smartcrop"

	// reddit serves some previews as webp; register the decoder.
	_ "golang.org/x/image/webp"
)

// FitProcessor fits a pooled candidate to the display before it is handed to
// the OS wallpaper setter. Exact fits pass through, matching aspect ratios get
// a plain resize, and tolerable mismatches get a content aware crop first.
type FitProcessor struct {
	aspectThreshold float64
	resampler       imaging.ResampleFilter
}

// NewFitProcessor creates a processor using the same aspect tolerance the
// viability filter applies.
func NewFitProcessor() *FitProcessor {
	return &FitProcessor{
		aspectThreshold: AspectTolerance,
		resampler:       imaging.Lanczos,
	}
}

// FitFile opens srcPath, fits it to the geometry and writes the result to
// dstPath (format chosen by extension).
func (p *FitProcessor) FitFile(srcPath string, geo Geometry, dstPath string) error {
	img, err := imaging.Open(srcPath)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", srcPath, err)
	}

	fitted, err := p.Fit(img, geo)
	if err != nil {
		return err
	}

	if err := imaging.Save(fitted, dstPath); err != nil {
		return fmt.Errorf("failed to save fitted image: %w", err)
	}
	return nil
}

// Fit returns the image scaled and cropped to exactly the display geometry.
func (p *FitProcessor) Fit(img image.Image, geo Geometry) (image.Image, error) {
	imageWidth := img.Bounds().Dx()
	imageHeight := img.Bounds().Dy()
	imageAspect := float64(imageWidth) / float64(imageHeight)
	aspectDiff := math.Abs(imageAspect - geo.Aspect())

	switch {
	case imageWidth < geo.Width || imageHeight < geo.Height || aspectDiff > p.aspectThreshold:
		return nil, fmt.Errorf("image %dx%d not compatible with display %dx%d",
			imageWidth, imageHeight, geo.Width, geo.Height)
	case imageWidth == geo.Width && imageHeight == geo.Height:
		return img, nil
	case imageAspect == geo.Aspect():
		return imaging.Resize(img, geo.Width, geo.Height, p.resampler), nil
	default:
		return p.cropAndResize(img, geo)
	}
}

func (p *FitProcessor) cropAndResize(img image.Image, geo Geometry) (image.Image, error) {
	analyzer := smartcrop.NewAnalyzer(&fitResizer{resampler: p.resampler})
	topCrop, err := analyzer.FindBestCrop(img, geo.Width, geo.Height)
	if err != nil {
		return nil, fmt.Errorf("finding best crop: %w", err)
	}

	cropped := imaging.Crop(img, topCrop)
	return imaging.Resize(cropped, geo.Width, geo.Height, p.resampler), nil
}

// fitResizer adapts imaging to the smartcrop.Resizer interface.
type fitResizer struct {
	resampler imaging.ResampleFilter
}

func (r *fitResizer) Resize(img image.Image, width, height uint) image.Image {
	return imaging.Resize(img, int(width), int(height), r.resampler)
}
