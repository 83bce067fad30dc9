package internal

import (
	"strings"
	"testing"

	"github.com/osuushi/closestpair/advanced"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSVGPoints(t *testing.T) {
	svg := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10">
  <circle cx="1" cy="2" r="0.5"/>
  <g>
    <polygon points="0,0 4,0 4,3"/>
    <circle cx="7.5" r="1"/>
  </g>
  <polyline points="5 5, 6 6"/>
  <rect x="1" y="1" width="2" height="2"/>
</svg>`
	points, err := ReadSVGPoints(strings.NewReader(svg))
	require.NoError(t, err)
	assert.Equal(t, []advanced.Point{
		{X: 1, Y: 2},
		{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 3},
		{X: 7.5, Y: 0},
		{X: 5, Y: 5}, {X: 6, Y: 6},
	}, points)
}

func TestReadSVGPoints_Errors(t *testing.T) {
	_, err := ReadSVGPoints(strings.NewReader(`<svg><polygon points="0,0 1"/></svg>`))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "odd number of coordinates")

	_, err = ReadSVGPoints(strings.NewReader(`<svg><circle cx="x" cy="1"/></svg>`))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), `invalid cx value "x"`)
}

func TestParsePointList(t *testing.T) {
	points, err := parsePointList(" 0,0\n1,2\t3 4 ")
	require.NoError(t, err)
	assert.Equal(t, []advanced.Point{{X: 0, Y: 0}, {X: 1, Y: 2}, {X: 3, Y: 4}}, points)

	points, err = parsePointList("")
	require.NoError(t, err)
	assert.Empty(t, points)
}
