package internal

import (
	"io"

	imgcat "github.com/martinlindhe/imgcat/lib"
)

// Print an image file inline in the terminal. This only renders in terminals
// that speak the iTerm image protocol; others will show garbage.
func Show(path string, out io.Writer) error {
	return imgcat.CatFile(path, out)
}
