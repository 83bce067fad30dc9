package internal

import (
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/closestpair/advanced"
	"github.com/pkg/errors"
)

// This is not a full (or even correct) svg reader. It walks the document and
// collects the centers of circles, and the vertices of polygons and polylines,
// in document order. Transforms are ignored.
func ReadSVGPoints(in io.Reader) ([]advanced.Point, error) {
	root, err := svgparser.Parse(in, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	points := []advanced.Point{}
	var walk func(el *svgparser.Element) error
	walk = func(el *svgparser.Element) error {
		switch el.Name {
		case "circle", "ellipse":
			p, err := parseCenter(el)
			if err != nil {
				return err
			}
			points = append(points, p)
		case "polygon", "polyline":
			vertices, err := parsePointList(el.Attributes["points"])
			if err != nil {
				return errors.Wrapf(err, "in <%s>", el.Name)
			}
			points = append(points, vertices...)
		}
		for _, child := range el.Children {
			if err := walk(child); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(root); err != nil {
		return nil, err
	}
	return points, nil
}

func parseCenter(el *svgparser.Element) (advanced.Point, error) {
	var coordinates [2]float64
	for i, name := range []string{"cx", "cy"} {
		value, ok := el.Attributes[name]
		if !ok {
			// Missing center coordinates default to zero in svg
			continue
		}
		parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return advanced.Point{}, errors.Wrapf(err, "invalid %s value %q in <%s>", name, value, el.Name)
		}
		coordinates[i] = parsed
	}
	return advanced.Point{X: coordinates[0], Y: coordinates[1]}, nil
}

// Parse an svg points attribute. Coordinates may be separated by commas,
// whitespace, or both, so "0,0 1,1" and "0 0, 1 1" are the same.
func parsePointList(attribute string) ([]advanced.Point, error) {
	fields := strings.FieldsFunc(attribute, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates in %q", attribute)
	}
	points := make([]advanced.Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid x value %q", fields[i])
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid y value %q", fields[i+1])
		}
		points = append(points, advanced.Point{X: x, Y: y})
	}
	return points, nil
}
