package internal

import (
	"fmt"
	"math"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"
)

// A curve for PlotCurves. X and Y must be the same length.
type Curve struct {
	Label string
	X, Y  []float64
}

const (
	plotWidth   = 800
	plotHeight  = 500
	plotMargin  = 60
	legendInset = 20
)

// Dashed red, green and blue, like the plot of the reference harness. Any
// further curves cycle through these.
var curveColors = [][3]float64{
	{1, 0.2, 0.2},
	{0.2, 0.8, 0.2},
	{0.3, 0.5, 1},
}

// Plot timing curves onto a chart with linear axes. The y axis starts at zero.
func PlotCurves(curves []Curve, xLabel, yLabel string) (*gg.Context, error) {
	minX, maxX := math.Inf(1), math.Inf(-1)
	maxY := 0.0
	for _, curve := range curves {
		if len(curve.X) != len(curve.Y) {
			return nil, errors.Errorf("curve %q has %d x values and %d y values", curve.Label, len(curve.X), len(curve.Y))
		}
		for i := range curve.X {
			minX = math.Min(minX, curve.X[i])
			maxX = math.Max(maxX, curve.X[i])
			maxY = math.Max(maxY, curve.Y[i])
		}
	}
	if math.IsInf(minX, 1) {
		return nil, errors.New("nothing to plot")
	}
	if maxX == minX {
		maxX = minX + 1
	}
	if maxY == 0 {
		maxY = 1
	}

	// Data to device coordinates. Device y grows downward.
	toDevice := func(x, y float64) (float64, float64) {
		px := plotMargin + (x-minX)/(maxX-minX)*(plotWidth-2*plotMargin)
		py := plotHeight - plotMargin - y/maxY*(plotHeight-2*plotMargin)
		return px, py
	}

	c := gg.NewContext(plotWidth, plotHeight)
	c.SetRGB(1, 1, 1)
	c.Clear()

	// Axes
	c.SetRGB(0, 0, 0)
	c.SetLineWidth(1)
	originX, originY := toDevice(minX, 0)
	endX, _ := toDevice(maxX, 0)
	_, topY := toDevice(minX, maxY)
	c.DrawLine(originX, originY, endX, originY)
	c.DrawLine(originX, originY, originX, topY)
	c.Stroke()
	c.DrawStringAnchored(fmt.Sprintf("%g", minX), originX, originY+12, 0.5, 0.5)
	c.DrawStringAnchored(fmt.Sprintf("%g", maxX), endX, originY+12, 0.5, 0.5)
	c.DrawStringAnchored(fmt.Sprintf("%.3g", maxY), originX-6, topY, 1, 0.5)
	c.DrawStringAnchored(xLabel, plotWidth/2, plotHeight-plotMargin/3, 0.5, 0.5)
	c.DrawStringAnchored(yLabel, plotMargin/3, plotMargin/2, 0, 0.5)

	c.SetDash(6, 4)
	c.SetLineWidth(2)
	for i, curve := range curves {
		color := curveColors[i%len(curveColors)]
		c.SetRGB(color[0], color[1], color[2])
		for j := range curve.X {
			px, py := toDevice(curve.X[j], curve.Y[j])
			if j == 0 {
				c.MoveTo(px, py)
			} else {
				c.LineTo(px, py)
			}
		}
		c.Stroke()

		// Legend entry
		legendY := float64(plotMargin + legendInset*i)
		c.DrawLine(plotWidth-plotMargin-140, legendY, plotWidth-plotMargin-110, legendY)
		c.Stroke()
		c.DrawStringAnchored(curve.Label, plotWidth-plotMargin-100, legendY, 0, 0.5)
	}
	return c, nil
}

func SavePlotPNG(path string, curves []Curve, xLabel, yLabel string) error {
	c, err := PlotCurves(curves, xLabel, yLabel)
	if err != nil {
		return err
	}
	return c.SavePNG(path)
}
