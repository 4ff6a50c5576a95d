// Package fontscale quantizes user font-scale adjustments for text layers.
package fontscale

import "math"

// Quantize snaps a raw scale factor to the next tenth. The rounding is a
// ceiling, not nearest: 0.31 becomes 0.4. Downstream layout depends on
// this direction, so it must not be changed to round-to-nearest.
func Quantize(raw float64) float64 {
	return math.Ceil(raw*10) / 10
}

// Controller tracks the current font scale for one editing session.
// It quantizes values on write and derives the pixel font size from a
// configured base size. Bounds enforcement belongs to the adjustment
// control presenting Min and Max; the controller only quantizes.
type Controller struct {
	// Min and Max bound the adjustment control's range.
	Min, Max float64

	// BaseSize is the font size in pixels at scale 1.0.
	BaseSize float64

	scale    float64
	onChange func(raw float64)
}

// New creates a controller with the given bounds, base pixel size, and
// initial scale. The initial scale is quantized like any other write.
func New(min, max, baseSize, initial float64) *Controller {
	return &Controller{
		Min:      min,
		Max:      max,
		BaseSize: baseSize,
		scale:    Quantize(initial),
	}
}

// OnChange registers a callback invoked after every Set. The callback
// receives the caller's raw value, not the quantized one; observers that
// mirror a slider position need the unrounded input.
func (c *Controller) OnChange(fn func(raw float64)) {
	c.onChange = fn
}

// Set replaces the scale with the quantized form of raw and returns it.
func (c *Controller) Set(raw float64) float64 {
	c.scale = Quantize(raw)
	if c.onChange != nil {
		c.onChange(raw)
	}
	return c.scale
}

// Scale returns the current quantized scale.
func (c *Controller) Scale() float64 {
	return c.scale
}

// PixelSize returns the effective font size in pixels.
func (c *Controller) PixelSize() float64 {
	return c.BaseSize * c.scale
}
