package bench

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/logrusorgru/aurora"
	"github.com/olekukonko/tablewriter"
	"github.com/osuushi/closestpair/internal"
)

// Write a table of mean and p99 timings, one row per size. When au has colors
// enabled, the fastest mean in each row is green and the slowest is red.
func (r *Report) WriteTable(w io.Writer, au aurora.Aurora) {
	tbl := tablewriter.NewWriter(w)
	header := []string{"n"}
	for _, s := range r.Series {
		header = append(header, s.Variant.String()+" mean", s.Variant.String()+" p99")
	}
	tbl.SetHeader(header)
	tbl.SetAlignment(tablewriter.ALIGN_RIGHT)

	for sizeIndex, n := range r.Sizes {
		fastest, slowest := r.extremes(sizeIndex)
		row := []string{strconv.Itoa(n)}
		for i := range r.Series {
			mean := formatSeconds(r.Mean(i, sizeIndex))
			switch {
			case len(r.Series) > 1 && i == fastest:
				mean = au.Green(mean).String()
			case len(r.Series) > 1 && i == slowest:
				mean = au.Red(mean).String()
			}
			row = append(row, mean, formatSeconds(r.Quantile(i, sizeIndex, 99)))
		}
		tbl.Append(row)
	}
	tbl.Render()
}

// Indexes of the series with the smallest and largest mean at a size.
func (r *Report) extremes(sizeIndex int) (fastest, slowest int) {
	for i := range r.Series {
		mean := r.Mean(i, sizeIndex)
		if mean < r.Mean(fastest, sizeIndex) {
			fastest = i
		}
		if mean > r.Mean(slowest, sizeIndex) {
			slowest = i
		}
	}
	return fastest, slowest
}

// Mean seconds against n for each variant, for PNG plotting.
func (r *Report) Curves() []internal.Curve {
	curves := make([]internal.Curve, len(r.Series))
	for i, s := range r.Series {
		curve := internal.Curve{Label: s.Variant.String()}
		for sizeIndex, n := range r.Sizes {
			curve.X = append(curve.X, float64(n))
			curve.Y = append(curve.Y, r.Mean(i, sizeIndex).Seconds())
		}
		curves[i] = curve
	}
	return curves
}

// ASCII plots of mean milliseconds against size, one per variant, for
// terminals that can't show images.
func (r *Report) Plot(height int) string {
	var plots []string
	for i, s := range r.Series {
		values := make([]float64, len(r.Sizes))
		for sizeIndex := range r.Sizes {
			values[sizeIndex] = float64(r.Mean(i, sizeIndex)) / float64(time.Millisecond)
		}
		caption := fmt.Sprintf("%s: mean ms for n = %s", s.Variant, joinInts(r.Sizes))
		plots = append(plots, asciigraph.Plot(values, asciigraph.Height(height), asciigraph.Caption(caption)))
	}
	return strings.Join(plots, "\n\n")
}

func formatSeconds(d time.Duration) string {
	return fmt.Sprintf("%.4fs", d.Seconds())
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}
