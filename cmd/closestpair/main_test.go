package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/logrusorgru/aurora"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolve(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "points.txt")
	require.NoError(t, os.WriteFile(input, []byte("0 0\n2 2\n2 4\n3 5\n4 5\n3 4\n3 2\n5 0\n"), 0o644))
	drawing := filepath.Join(dir, "points.png")

	for _, variant := range []string{"brute-force", "nlog2n", "nlogn"} {
		_, err := app.Parse([]string{"solve", input, "--variant", variant, "--draw", drawing})
		require.NoError(t, err)

		var out bytes.Buffer
		require.NoError(t, solve(&out, aurora.NewAurora(false)))
		assert.Equal(t, "1\n", out.String(), variant)
	}
	_, err := os.Stat(drawing)
	assert.NoError(t, err)
}

func TestSolve_SVG(t *testing.T) {
	input := filepath.Join(t.TempDir(), "points.svg")
	svg := `<svg><circle cx="0" cy="0" r="1"/><circle cx="3" cy="4" r="1"/></svg>`
	require.NoError(t, os.WriteFile(input, []byte(svg), 0o644))

	_, err := app.Parse([]string{"solve", input, "--format", "svg"})
	require.NoError(t, err)
	var out bytes.Buffer
	require.NoError(t, solve(&out, aurora.NewAurora(false)))
	assert.Equal(t, "5\n", out.String())
}

func TestSolve_Errors(t *testing.T) {
	input := filepath.Join(t.TempDir(), "points.txt")
	require.NoError(t, os.WriteFile(input, []byte("0 0\nNaN 1\n"), 0o644))

	_, err := app.Parse([]string{"solve", input})
	require.NoError(t, err)
	err = solve(&bytes.Buffer{}, aurora.NewAurora(false))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid input")

	_, err = app.Parse([]string{"solve", input, "--variant", "kdtree"})
	require.NoError(t, err)
	assert.EqualError(t, solve(&bytes.Buffer{}, aurora.NewAurora(false)), `unknown variant "kdtree"`)
}

func TestBench(t *testing.T) {
	plot := filepath.Join(t.TempDir(), "plot.png")
	_, err := app.Parse([]string{"bench", "--n=10", "--n=30", "--trials=2", "--ascii", "--plot", plot, "--variant=nlogn", "--variant=brute-force"})
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, runBench(&out, aurora.NewAurora(false)))
	assert.Contains(t, out.String(), "[n=0010] nlogn: ")
	assert.Contains(t, out.String(), "[n=0030] nlogn: ")
	assert.Contains(t, out.String(), "brute-force: mean ms")
	_, err = os.Stat(plot)
	assert.NoError(t, err)
}

func TestSolve_WideRangeDrawing(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "points.txt")
	require.NoError(t, os.WriteFile(input, []byte("0 0\n1000000000 0\n1000000000 1\n"), 0o644))
	drawing := filepath.Join(dir, "points.png")

	_, err := app.Parse([]string{"solve", input, "--draw", drawing, "--scale", "50"})
	require.NoError(t, err)
	var out bytes.Buffer
	require.NoError(t, solve(&out, aurora.NewAurora(false)))
	assert.Equal(t, "1\n", out.String())
	_, err = os.Stat(drawing)
	assert.NoError(t, err)
}

func TestSolve_ImgcatWithoutDraw(t *testing.T) {
	input := filepath.Join(t.TempDir(), "points.txt")
	require.NoError(t, os.WriteFile(input, []byte("0 0\n3 4\n"), 0o644))

	_, err := app.Parse([]string{"solve", input, "--imgcat"})
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, solve(&out, aurora.NewAurora(false)))
	assert.True(t, strings.HasPrefix(out.String(), "5\n"), out.String())
	assert.Contains(t, out.String(), "1337;File=")
}
