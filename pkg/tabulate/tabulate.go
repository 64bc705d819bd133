// Package tabulate lays displayable items out in a column grid that fits a
// maximum line width. The search enumerates one candidate layout per possible
// column count, sizes every candidate in a single pass over the items, and
// keeps the densest candidate that still fits. Rendering then pads each cell
// to its column width by display width, so items carrying ANSI styling line
// up as long as they report an honest width.
//
// The engine is parametric over the Cell capability. It does not sort, does
// not truncate, and holds no state between calls.
package tabulate

import (
	"errors"
	"strings"

	runewidth "github.com/mattn/go-runewidth"
)

// Cell is the capability an item needs to participate in a grid: a display
// width in terminal cells and a renderable form. The two may disagree in
// bytes (multi-byte runes, ANSI escapes) but DisplayWidth must be the number
// of cells String occupies on screen.
type Cell interface {
	DisplayWidth() int
	String() string
}

// Orientation selects the fill order of the grid.
type Orientation int

const (
	// Columns fills top-to-bottom down each column before advancing right.
	Columns Orientation = iota
	// Rows fills left-to-right across each row before advancing down.
	Rows
)

func (o Orientation) String() string {
	if o == Rows {
		return "rows"
	}
	return "columns"
}

const (
	// MinColumnWidth is one character of content plus the separator budget.
	MinColumnWidth = 3
	// SeparatorWidth is the gap between columns. The last column carries none.
	SeparatorWidth = 2
)

// ErrEmptyInput is returned by Fit when there is nothing to lay out. Callers
// should treat it as "print nothing", not as a failure.
var ErrEmptyInput = errors.New("tabulate: no items to lay out")

// Config is a candidate column layout. NumColumns and ColWidths describe the
// grid; lineLen and valid are search bookkeeping. A Config never outlives the
// Fit call that produced it being consumed by Render.
type Config struct {
	NumColumns int
	ColWidths  []int

	lineLen int
	valid   bool
}

// newConfigs builds one candidate per column count in 1..maxColumns, every
// column starting at the minimum width. A candidate whose minimum footprint
// already meets the budget is dead on arrival; it can only grow.
func newConfigs(maxColumns, maxLineLength int) []Config {
	configs := make([]Config, 0, maxColumns)
	for n := 1; n <= maxColumns; n++ {
		widths := make([]int, n)
		for i := range widths {
			widths[i] = MinColumnWidth
		}
		lineLen := n * MinColumnWidth
		configs = append(configs, Config{
			NumColumns: n,
			ColWidths:  widths,
			lineLen:    lineLen,
			valid:      lineLen < maxLineLength,
		})
	}
	return configs
}

// columnFor maps a linear item index to its column under the given column
// count and orientation. Fit and Render must agree on this mapping or
// columns end up sized for the wrong items, so both go through here (Render
// via the inverse, see indexAt).
func columnFor(idx, count, cols int, o Orientation) int {
	if o == Rows {
		return idx % cols
	}
	rows := (count + cols - 1) / cols
	return idx / rows
}

// indexAt is the inverse of columnFor: the linear item index occupying grid
// position (row, col), or count rows when the cell is unpopulated.
func indexAt(row, col, rows, cols int, o Orientation) int {
	if o == Rows {
		return row*cols + col
	}
	return row + col*rows
}

// Fit searches for the densest column layout of items that keeps every
// rendered line strictly under maxLineLength. When even a single column
// cannot fit (one item wider than the whole line) it degrades to the
// single-column candidate rather than failing, so output is always
// producible. The only error is ErrEmptyInput.
func Fit[T Cell](items []T, maxLineLength int, o Orientation) (Config, error) {
	if len(items) == 0 {
		return Config{}, ErrEmptyInput
	}

	maxColumns := max(1, maxLineLength/MinColumnWidth)
	maxColumns = min(maxColumns, len(items))
	configs := newConfigs(maxColumns, maxLineLength)

	for idx, item := range items {
		width := item.DisplayWidth()
		for ci := range configs {
			cfg := &configs[ci]
			if !cfg.valid {
				continue
			}
			col := columnFor(idx, len(items), cfg.NumColumns, o)
			realLen := width
			if col != cfg.NumColumns-1 {
				realLen += SeparatorWidth
			}
			if cfg.ColWidths[col] < realLen {
				cfg.lineLen += realLen - cfg.ColWidths[col]
				cfg.ColWidths[col] = realLen
				// Once a candidate overflows it stays dead: widths only grow.
				cfg.valid = cfg.lineLen < maxLineLength
			}
		}
	}

	chosen := 0
	for ci := len(configs) - 1; ci >= 0; ci-- {
		if configs[ci].valid {
			chosen = ci
			break
		}
	}
	return configs[chosen], nil
}

// Render emits items into the grid described by cfg, row by row. Each
// populated cell is right-padded with spaces to its column width by display
// width; unpopulated cells at the tail of the grid emit nothing. Rows are
// joined with single newlines and there is no trailing newline. Empty input
// renders as the empty string. Render never fails.
func Render[T Cell](items []T, cfg Config, o Orientation) string {
	if len(items) == 0 || cfg.NumColumns < 1 {
		return ""
	}

	rows := (len(items) + cfg.NumColumns - 1) / cfg.NumColumns
	var b strings.Builder
	for row := 0; row < rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < cfg.NumColumns; col++ {
			idx := indexAt(row, col, rows, cfg.NumColumns, o)
			if idx >= len(items) {
				continue
			}
			b.WriteString(items[idx].String())
			if pad := cfg.ColWidths[col] - items[idx].DisplayWidth(); pad > 0 {
				b.WriteString(strings.Repeat(" ", pad))
			}
		}
	}
	return b.String()
}

// Format is the one-shot Fit+Render. Empty input yields the empty string.
func Format[T Cell](items []T, maxLineLength int, o Orientation) string {
	cfg, err := Fit(items, maxLineLength, o)
	if err != nil {
		return ""
	}
	return Render(items, cfg, o)
}

// Text is a plain-string Cell whose display width is measured with
// go-runewidth, so multi-byte names size correctly.
type Text string

func (t Text) DisplayWidth() int { return runewidth.StringWidth(string(t)) }

func (t Text) String() string { return string(t) }
