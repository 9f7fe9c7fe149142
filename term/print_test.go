package term

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	old, oldNoColor := Output, color.NoColor
	Output, color.NoColor = &buf, true
	t.Cleanup(func() { Output, color.NoColor = old, oldNoColor })
	return &buf
}

func TestAddBorder(t *testing.T) {
	box := addBorder("file not found", "Error")
	lines := strings.Split(strings.TrimSuffix(box, "\n"), "\n")
	assert.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "╔═ Error "))
	assert.Contains(t, lines[1], "file not found")
	width := len([]rune(lines[0]))
	for _, line := range lines {
		assert.Equal(t, width, len([]rune(line)), line)
	}
}

func TestError(t *testing.T) {
	buf := capture(t)
	code := 0
	oldExit := exit
	exit = func(c int) { code = c }
	t.Cleanup(func() { exit = oldExit })

	Error("boom")
	assert.Equal(t, 1, code)
	assert.Contains(t, buf.String(), "boom")
}

func TestPrefixes(t *testing.T) {
	buf := capture(t)
	Suc("Parsed %s.", "an extern")
	Err("Error: %s", "bad")
	assert.Contains(t, buf.String(), "Parsed an extern.\n")
	assert.Contains(t, buf.String(), "Error: bad\n")
}
