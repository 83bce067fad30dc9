package dbg

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	a := Name("run-a")
	assert.NotEmpty(t, a)
	assert.Equal(t, a, Name("run-a"))
	assert.Equal(t, "Ø", Name(nil))

	type key struct{ seed int64 }
	assert.Equal(t, Name(key{1}), Name(key{1}))
}

func TestLabel(t *testing.T) {
	label := Label()
	assert.NotEmpty(t, label)
	assert.True(t, unicode.IsUpper(rune(label[0])))
	for _, r := range label {
		assert.True(t, unicode.IsLetter(r), "unexpected %q in %q", r, label)
	}
}
