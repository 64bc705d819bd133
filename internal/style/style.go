// Package style maps entry classifications to lipgloss styles. The engine
// only sees pre-rendered strings; all color decisions happen here.
package style

import (
	"charm.land/lipgloss/v2"

	"github.com/oakwood-commons/lsx/internal/entry"
)

// Theme holds the styles applied to entry names by classification.
type Theme struct {
	Directory  lipgloss.Style
	Symlink    lipgloss.Style
	Broken     lipgloss.Style
	Executable lipgloss.Style
	Plain      lipgloss.Style
}

// Colors are ANSI-256 color strings, typically from the config file. Empty
// fields keep the default palette.
type Colors struct {
	Directory  string
	Symlink    string
	Broken     string
	Executable string
}

// Default returns the standard palette: bold blue directories, bold cyan
// symlinks, bold red broken links, bold green executables.
func Default() Theme {
	return Theme{
		Directory:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Symlink:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		Broken:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		Executable: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		Plain:      lipgloss.NewStyle(),
	}
}

// NoColor returns a theme that renders every name unmodified.
func NoColor() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Directory:  plain,
		Symlink:    plain,
		Broken:     plain,
		Executable: plain,
		Plain:      plain,
	}
}

// FromColors builds a theme from config file overrides on top of the
// default palette.
func FromColors(c Colors) Theme {
	th := Default()
	if c.Directory != "" {
		th.Directory = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.Directory))
	}
	if c.Symlink != "" {
		th.Symlink = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.Symlink))
	}
	if c.Broken != "" {
		th.Broken = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.Broken))
	}
	if c.Executable != "" {
		th.Executable = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.Executable))
	}
	return th
}

// Render returns the entry's name in its classification style.
func (t Theme) Render(e *entry.Entry) string {
	return t.RenderText(e, e.Name)
}

// RenderText styles arbitrary text by the entry's classification. Used for
// symlink targets, which display the link text but take the target's style.
func (t Theme) RenderText(e *entry.Entry, text string) string {
	return t.styleFor(e).Render(text)
}

func (t Theme) styleFor(e *entry.Entry) lipgloss.Style {
	switch {
	case e.IsSymlink():
		if e.TargetExists() {
			return t.Symlink
		}
		return t.Broken
	case e.IsDir():
		return t.Directory
	case e.IsExecutable():
		return t.Executable
	default:
		return t.Plain
	}
}
