package repl

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.lolli.tech/lollipopkit/kl/config"
)

func newTestSession(t *testing.T, historyPath string) (*session, *bytes.Buffer) {
	t.Helper()
	oldNoColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = oldNoColor })

	var buf bytes.Buffer
	return newSession(config.Default(), &buf, historyPath), &buf
}

func TestBlockDepth(t *testing.T) {
	assert.Equal(t, 0, blockDepth("1+2"))
	assert.Equal(t, 1, blockDepth("def f(a"))
	assert.Equal(t, 2, blockDepth("f((1"))
	assert.Equal(t, 0, blockDepth("f(1, # (((\n2)"))
	assert.Equal(t, -1, blockDepth("1)"))
}

func TestFeed(t *testing.T) {
	s, out := newTestSession(t, "")

	assert.True(t, s.feed("def add(a b)"))
	assert.Equal(t, []string{"def add(a b)"}, s.blockLines)
	assert.True(t, s.feed("  a+b"))
	assert.Empty(t, s.blockLines)
	assert.True(t, s.feed("add(1,"))
	assert.Equal(t, []string{"add(1,"}, s.blockLines)
	assert.True(t, s.feed("  2*3)"))
	assert.Empty(t, s.blockLines)

	text := out.String()
	assert.Contains(t, text, "Parsed a function definition.\n  def add(a b) (a + b)\n")
	assert.Contains(t, text, "Parsed a top-level expression.\n  add(1, (2 * 3))\n")
}

func TestFeedErrors(t *testing.T) {
	s, out := newTestSession(t, "")
	assert.True(t, s.feed("extern 1; 4"))
	text := out.String()
	assert.Contains(t, text, "Error: stdin:1: syntax error, expected function name in prototype but got number 1\n")
	assert.Contains(t, text, "Error: stdin:1: unknown token encountered: ';'\n")
	assert.Contains(t, text, "Parsed a top-level expression.\n  4\n")
}

func TestEmptyLineForcesEval(t *testing.T) {
	s, out := newTestSession(t, "")
	assert.True(t, s.feed("1+"))
	assert.Equal(t, []string{"1+"}, s.blockLines)
	assert.Empty(t, out.String())

	assert.True(t, s.feed(""))
	assert.Empty(t, s.blockLines)
	assert.Contains(t, out.String(), "Error: stdin:1: unknown token encountered: EOF\n")
}

func TestMetaCommands(t *testing.T) {
	s, out := newTestSession(t, "")

	assert.True(t, s.feed(".help"))
	assert.Contains(t, out.String(), "`.exit`")

	assert.True(t, s.feed("f(1"))
	assert.True(t, s.feed(".reset"))
	assert.Empty(t, s.blockLines)

	assert.True(t, s.feed("x"))
	out.Reset()
	assert.True(t, s.feed(".history"))
	assert.Equal(t, "  1  x\n", out.String())

	assert.False(t, s.feed(".exit"))
}

func TestHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "kl_history.json")

	s, _ := newTestSession(t, path)
	s.feed("1+2")
	s.feed("f(x,")
	s.feed("  y)")
	s.feed("1+2")
	assert.Equal(t, []string{"f(x,", "  y)", "1+2"}, s.history)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"  y)"`)

	reloaded, _ := newTestSession(t, path)
	assert.Equal(t, s.history, reloaded.history)
}

func TestRun(t *testing.T) {
	s, out := newTestSession(t, "")
	input := "def one() 1\n.exit\nnever()\n"
	require.NoError(t, s.run(bufio.NewScanner(strings.NewReader(input))))
	assert.Contains(t, out.String(), "Parsed a function definition.")
	assert.NotContains(t, out.String(), "never")
}
