package internal

import (
	"math"

	"github.com/fogleman/gg"
	"github.com/osuushi/closestpair/advanced"
)

const (
	// Padding around the points, in pixels
	drawPadding = 40
	// Longest side of the drawing, in pixels, before padding
	maxDrawSize = 2000
)

// Render the points, each with a disc of radius d/2 around it. If d is the
// closest pair distance, no two discs overlap, and at least two touch, which
// makes it easy to check a result by eye.
//
// scale is pixels per unit, but only up to the point where the drawing would
// exceed maxDrawSize. Past that, or if scale isn't positive, the drawing is
// scaled to fit.
func DrawPoints(points []advanced.Point, d advanced.Distance, scale float64) *gg.Context {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	if len(points) == 0 {
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	radius, ok := d.Value()
	if ok {
		radius /= 2
	}

	// Half extents, halved before subtracting so that huge ranges can't
	// overflow
	halfWidth := maxX/2 - minX/2 + radius
	halfHeight := maxY/2 - minY/2 + radius
	if math.IsInf(halfWidth, 0) || math.IsInf(halfHeight, 0) {
		// Only the discs can overflow, and they'd cover everything anyway
		ok, radius = false, 0
		halfWidth = maxX/2 - minX/2
		halfHeight = maxY/2 - minY/2
	}

	if math.IsNaN(scale) {
		scale = 0
	}
	halfExtent := math.Max(halfWidth, halfHeight)
	if halfExtent > 0 && (scale <= 0 || scale*halfExtent > maxDrawSize/2) {
		scale = maxDrawSize / 2 / halfExtent
	}
	if scale <= 0 || math.IsInf(scale, 0) {
		scale = 1
	}

	// Set up the context
	width := int(2*scale*halfWidth) + drawPadding*2
	height := int(2*scale*halfHeight) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(drawPadding, drawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min, leaving room for the discs
	c.Translate(-minX+radius, -minY+radius)

	if ok && radius > 0 {
		for _, p := range points {
			c.DrawCircle(p.X, p.Y, radius)
		}
		c.SetRGBA(0, 0.5, 0, 0.4)
		c.FillPreserve()
		c.SetRGB(0, 1, 1)
		c.SetLineWidth(1)
		c.Stroke()
	}

	// Dots are a fixed size on screen regardless of scale
	for _, p := range points {
		c.DrawCircle(p.X, p.Y, 2/scale)
	}
	c.SetRGB(1, 1, 1)
	c.Fill()

	// Caption, in device space
	c.Identity()
	c.SetRGB(1, 1, 1)
	c.DrawStringAnchored("d = "+d.String(), drawPadding/2, drawPadding/2, 0, 0.5)
	return c
}

func SavePointsPNG(path string, points []advanced.Point, d advanced.Distance, scale float64) error {
	return DrawPoints(points, d, scale).SavePNG(path)
}
