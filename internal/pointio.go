package internal

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/osuushi/closestpair/advanced"
	"github.com/pkg/errors"
)

// Read newline separated points in the form "x y". Blank lines and lines
// starting with # are skipped.
func ReadPoints(in io.Reader) ([]advanced.Point, error) {
	points := []advanced.Point{}
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading points")
	}
	return points, nil
}

func WritePoints(out io.Writer, points []advanced.Point) error {
	w := bufio.NewWriter(out)
	for _, p := range points {
		if _, err := fmt.Fprintf(w, "%s %s\n", formatFloat(p.X), formatFloat(p.Y)); err != nil {
			return err
		}
	}
	return w.Flush()
}

func parsePoint(line string) (advanced.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return advanced.Point{}, errors.Errorf("expected 2 coordinates, got %d in %q", len(parts), line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return advanced.Point{}, errors.Wrapf(err, "invalid x value %q", parts[0])
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return advanced.Point{}, errors.Wrapf(err, "invalid y value %q", parts[1])
	}
	return advanced.Point{X: x, Y: y}, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
