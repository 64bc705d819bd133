// Package lister drives a listing run: it partitions the requested paths,
// reads directories, filters and sorts entries, and hands them to the long
// formatter or the tabulation engine. Unreadable paths are reported and
// skipped so one bad argument does not abort the rest of the listing.
package lister

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/go-logr/logr"

	"github.com/oakwood-commons/lsx/internal/config"
	"github.com/oakwood-commons/lsx/internal/entry"
	"github.com/oakwood-commons/lsx/internal/filter"
	"github.com/oakwood-commons/lsx/internal/longformat"
	"github.com/oakwood-commons/lsx/internal/style"
	"github.com/oakwood-commons/lsx/pkg/logger"
	"github.com/oakwood-commons/lsx/pkg/settings"
	"github.com/oakwood-commons/lsx/pkg/tabulate"
)

const defaultLineWidth = 80

// Options configure one listing run.
type Options struct {
	Paths      []string // defaults to ["."] when empty
	All        bool     // include dot-prefixed entries
	ByLines    bool     // fill rows left-to-right instead of columns
	Long       bool     // ls -l metadata lines
	Directory  bool     // list the paths themselves, not their contents
	OnePerLine bool     // one entry per line, no grid
	Width      int      // max line width; 0 falls back to defaultLineWidth
	Sort       string   // config.SortAscending, SortDescending, or SortNone
	Filter     *filter.Filter
	Theme      style.Theme
	Compare    func(a, b string) int // nil falls back to strings.Compare
}

// Lister runs a listing against a writer pair: entries on out, warnings on
// errW. Warnings also go to the structured logger.
type Lister struct {
	opts Options
	out  io.Writer
	errW io.Writer
	log  *logr.Logger
}

// New builds a lister. log may be nil.
func New(opts Options, out, errW io.Writer, log *logr.Logger) *Lister {
	if opts.Compare == nil {
		opts.Compare = strings.Compare
	}
	if opts.Width <= 0 {
		opts.Width = defaultLineWidth
	}
	if log == nil {
		log = logger.GetNoopLogger()
	}
	return &Lister{opts: opts, out: out, errW: errW, log: log}
}

// cell adapts an entry to the tabulation engine: the display width is the
// plain name's cell count while String carries the styled (possibly
// ANSI-wrapped) form.
type cell struct {
	*entry.Entry
	theme style.Theme
}

func (c cell) String() string {
	return c.theme.Render(c.Entry)
}

// Run executes the listing. File arguments come first as one block, then
// each directory's contents; headings appear when the output mixes blocks
// the reader could not otherwise tell apart.
func (l *Lister) Run() error {
	paths := l.opts.Paths
	if len(paths) == 0 {
		paths = []string{"."}
	}

	if l.opts.Directory {
		entries := make([]*entry.Entry, 0, len(paths))
		for _, path := range paths {
			e, err := entry.FromPath(path)
			if err != nil {
				l.warn(err, path)
				continue
			}
			entries = append(entries, e)
		}
		l.listEntries(entries)
		return nil
	}

	files, dirs, errs := entry.Split(paths)
	for _, err := range errs {
		l.warn(err, "")
	}

	hadFiles := len(files) > 0
	if hadFiles {
		l.listEntries(files)
	}
	if len(dirs) > 0 {
		if hadFiles {
			fmt.Fprintln(l.out)
		}
		headings := hadFiles || len(dirs) > 1
		l.listDirs(dirs, headings)
	}
	return nil
}

func (l *Lister) listDirs(dirs []*entry.Entry, headings bool) {
	for i, dir := range dirs {
		children, err := entry.ReadDir(dir.Path, l.opts.All, l.log)
		if err != nil {
			l.warn(err, dir.Name)
			continue
		}
		if headings {
			fmt.Fprintf(l.out, "%s:\n", dir.Name)
		}
		l.listEntries(children)
		if i != len(dirs)-1 {
			fmt.Fprintln(l.out)
		}
	}
}

func (l *Lister) listEntries(entries []*entry.Entry) {
	entries = l.applyFilter(entries)
	l.sortEntries(entries)

	switch {
	case l.opts.Long:
		if out := longformat.Format(entries, l.opts.Theme); out != "" {
			fmt.Fprintln(l.out, out)
		}
	case l.opts.OnePerLine:
		for _, e := range entries {
			fmt.Fprintln(l.out, l.opts.Theme.Render(e))
		}
	default:
		cells := make([]cell, len(entries))
		for i, e := range entries {
			cells[i] = cell{Entry: e, theme: l.opts.Theme}
		}
		// Empty input renders as nothing at all, not an empty line.
		if out := tabulate.Format(cells, l.opts.Width, l.orientation()); out != "" {
			fmt.Fprintln(l.out, out)
		}
	}
}

func (l *Lister) orientation() tabulate.Orientation {
	if l.opts.ByLines {
		return tabulate.Rows
	}
	return tabulate.Columns
}

func (l *Lister) applyFilter(entries []*entry.Entry) []*entry.Entry {
	if l.opts.Filter == nil {
		return entries
	}
	kept := entries[:0]
	for _, e := range entries {
		ok, err := l.opts.Filter.Match(e)
		if err != nil {
			l.warn(err, e.Name)
			continue
		}
		if ok {
			kept = append(kept, e)
		}
	}
	return kept
}

func (l *Lister) sortEntries(entries []*entry.Entry) {
	switch l.opts.Sort {
	case config.SortNone:
	case config.SortDescending:
		slices.SortStableFunc(entries, func(a, b *entry.Entry) int {
			return l.opts.Compare(b.Name, a.Name)
		})
	default:
		slices.SortStableFunc(entries, func(a, b *entry.Entry) int {
			return l.opts.Compare(a.Name, b.Name)
		})
	}
}

func (l *Lister) warn(err error, path string) {
	fmt.Fprintf(l.errW, "%s: %v\n", settings.CliBinaryName, err)
	if path != "" {
		l.log.V(1).Info("skipping path", logger.PathKey, path, "reason", err.Error())
	} else {
		l.log.V(1).Info("skipping path", "reason", err.Error())
	}
}
