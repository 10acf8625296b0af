package cli

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShellHistory_PrevNext(t *testing.T) {
	h := newShellHistory(10)
	h.Add("show")
	h.Add("phase list")
	h.Add("cycle 1 1")

	line, ok := h.Prev()
	assert.True(t, ok)
	assert.Equal(t, "cycle 1 1", line)
	line, _ = h.Prev()
	assert.Equal(t, "phase list", line)
	line, _ = h.Prev()
	assert.Equal(t, "show", line)

	_, ok = h.Prev()
	assert.False(t, ok, "nothing older than the first entry")

	line, ok = h.Next()
	assert.True(t, ok)
	assert.Equal(t, "phase list", line)
	line, _ = h.Next()
	assert.Equal(t, "cycle 1 1", line)

	line, ok = h.Next()
	assert.False(t, ok)
	assert.Equal(t, "", line)
}

func TestShellHistory_AddResetsCursor(t *testing.T) {
	h := newShellHistory(10)
	h.Add("a")
	h.Add("b")
	h.Prev()
	h.Prev()

	h.Add("c")
	line, _ := h.Prev()
	assert.Equal(t, "c", line)
}

func TestShellHistory_SkipsBlankAndRepeats(t *testing.T) {
	h := newShellHistory(10)
	h.Add("")
	h.Add("show")
	h.Add("show")
	h.Add("options")
	h.Add("show")

	assert.Equal(t, []string{"show", "options", "show"}, h.Lines())
}

func TestShellHistory_KeepsNewestWithinLimit(t *testing.T) {
	h := newShellHistory(3)
	for i := 0; i < 5; i++ {
		h.Add(fmt.Sprintf("line %d", i))
	}
	assert.Equal(t, []string{"line 2", "line 3", "line 4"}, h.Lines())
}

func TestShellHistory_DefaultLimit(t *testing.T) {
	h := newShellHistory(0)
	for i := 0; i < maxHistoryLines+20; i++ {
		h.Add(fmt.Sprintf("cmd %d", i))
	}
	assert.Len(t, h.Lines(), maxHistoryLines)
}
