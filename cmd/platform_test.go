package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func stubNoTerminal(t *testing.T) {
	t.Helper()
	orig := termGetSize
	termGetSize = func(fd int) (int, int, error) {
		return 0, 0, errors.New("not a terminal")
	}
	t.Cleanup(func() { termGetSize = orig })
}

func TestDetectTerminalWidthFromGetSize(t *testing.T) {
	orig := termGetSize
	termGetSize = func(fd int) (int, int, error) {
		return 132, 43, nil
	}
	t.Cleanup(func() { termGetSize = orig })

	assert.Equal(t, 132, detectTerminalWidth())
}

func TestDetectTerminalWidthFallsBackToColumns(t *testing.T) {
	stubNoTerminal(t)
	t.Setenv("COLUMNS", "123")
	assert.Equal(t, 123, detectTerminalWidth())
}

func TestDetectTerminalWidthIgnoresBadColumns(t *testing.T) {
	stubNoTerminal(t)

	t.Setenv("COLUMNS", "zero")
	assert.Equal(t, defaultFallbackTermWidth, detectTerminalWidth())

	t.Setenv("COLUMNS", "-4")
	assert.Equal(t, defaultFallbackTermWidth, detectTerminalWidth())
}

func TestDetectTerminalWidthDefault(t *testing.T) {
	stubNoTerminal(t)
	t.Setenv("COLUMNS", "")
	assert.Equal(t, defaultFallbackTermWidth, detectTerminalWidth())
}
