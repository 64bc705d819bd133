// Package entry models the filesystem objects fed into the layout engine:
// a name as typed or found, the path it resolves through, and the Lstat
// metadata behind it.
package entry

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-logr/logr"
	runewidth "github.com/mattn/go-runewidth"

	"github.com/oakwood-commons/lsx/pkg/logger"
)

// Entry is one displayable filesystem object. Name is what gets printed
// (the argument as typed for CLI paths, the base name for directory
// children); Path is where the metadata came from. Info holds Lstat
// results, so symlinks describe themselves rather than their targets.
type Entry struct {
	Name string
	Path string
	Info fs.FileInfo
}

// FromPath builds an entry for a path given on the command line. The name
// keeps the path exactly as the user wrote it.
func FromPath(path string) (*Entry, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	return &Entry{Name: path, Path: path, Info: info}, nil
}

// fromRelative builds an entry for a path relative to a parent directory,
// used when resolving symlink targets written as relative links.
func fromRelative(parent, rel string) (*Entry, error) {
	abs := filepath.Join(parent, rel)
	info, err := os.Lstat(abs)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", abs, err)
	}
	return &Entry{Name: rel, Path: abs, Info: info}, nil
}

// DisplayWidth is the number of terminal cells the name occupies. Counted
// in cells via go-runewidth, not bytes, so multi-byte and wide runes size
// correctly in the grid.
func (e *Entry) DisplayWidth() int {
	return runewidth.StringWidth(e.Name)
}

// IsDir reports whether the entry itself is a directory (symlinks to
// directories are not).
func (e *Entry) IsDir() bool {
	return e.Info.IsDir()
}

// IsSymlink reports whether the entry is a symbolic link.
func (e *Entry) IsSymlink() bool {
	return e.Info.Mode()&fs.ModeSymlink != 0
}

// IsExecutable reports whether any execute bit is set on a non-directory.
func (e *Entry) IsExecutable() bool {
	return !e.IsDir() && e.Info.Mode()&0o111 != 0
}

// IsHidden reports whether the name is dot-prefixed.
func (e *Entry) IsHidden() bool {
	return strings.HasPrefix(e.Name, ".")
}

// TargetExists reports whether following the entry (and any chain of links)
// reaches something. True for non-links.
func (e *Entry) TargetExists() bool {
	_, err := os.Stat(e.Path)
	return err == nil
}

// LinkTarget resolves a symlink to an entry for its target. The target's
// name is the link text exactly as written; relative links resolve against
// the link's parent directory.
func (e *Entry) LinkTarget() (*Entry, error) {
	link, err := os.Readlink(e.Path)
	if err != nil {
		return nil, fmt.Errorf("readlink %s: %w", e.Path, err)
	}
	if filepath.IsAbs(link) {
		info, err := os.Lstat(link)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", link, err)
		}
		return &Entry{Name: link, Path: link, Info: info}, nil
	}
	return fromRelative(filepath.Dir(e.Path), link)
}

// ReadDir lists the children of a directory. Dot-prefixed names are skipped
// unless includeHidden; children whose metadata cannot be read are logged
// and skipped so one broken entry does not abort the listing. log may be
// nil.
func ReadDir(path string, includeHidden bool, log *logr.Logger) ([]*Entry, error) {
	dirents, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", path, err)
	}
	if log == nil {
		log = logger.GetNoopLogger()
	}

	entries := make([]*Entry, 0, len(dirents))
	for _, de := range dirents {
		name := de.Name()
		if !includeHidden && strings.HasPrefix(name, ".") {
			continue
		}
		info, err := de.Info()
		if err != nil {
			log.V(1).Info("skipping child", logger.PathKey, filepath.Join(path, name), "reason", err.Error())
			continue
		}
		entries = append(entries, &Entry{
			Name: name,
			Path: filepath.Join(path, name),
			Info: info,
		})
	}
	return entries, nil
}

// Split partitions command-line paths into file entries and directory
// entries, in argument order. Paths that cannot be stat'd are reported in
// errs and otherwise skipped.
func Split(paths []string) (files, dirs []*Entry, errs []error) {
	for _, path := range paths {
		e, err := FromPath(path)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if e.IsDir() {
			dirs = append(dirs, e)
		} else {
			files = append(files, e)
		}
	}
	return files, dirs, errs
}
