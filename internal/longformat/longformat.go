// Package longformat renders ls -l style metadata lines: type and
// permission bits, hard-link count, owner, group, size, modification time,
// and the styled name. Field widths are computed over the whole entry set
// before any line is written, the same way coreutils sizes its columns.
package longformat

import (
	"fmt"
	"io/fs"
	"os/user"
	"strconv"
	"strings"
	"time"

	"github.com/oakwood-commons/lsx/internal/entry"
	"github.com/oakwood-commons/lsx/internal/style"
)

// recentWindow is the age under which timestamps show time-of-day instead
// of the year, per the coreutils convention.
const recentWindow = 6 * 30 * 24 * time.Hour

type fieldWidths struct {
	nlinks int
	user   int
	group  int
	size   int
}

// formatter carries the per-call lookup caches and column widths. uid/gid
// lookups go through os/user once per id; directories full of files owned
// by the same user would otherwise repeat the same query per entry.
type formatter struct {
	widths fieldWidths
	users  map[uint32]string
	groups map[uint32]string
	now    time.Time
	theme  style.Theme
}

// Format renders one line per entry, joined by newlines with no trailing
// newline. Empty input renders the empty string.
func Format(entries []*entry.Entry, theme style.Theme) string {
	if len(entries) == 0 {
		return ""
	}

	f := &formatter{
		widths: fieldWidths{nlinks: 1, user: 1, group: 1, size: 1},
		users:  make(map[uint32]string),
		groups: make(map[uint32]string),
		now:    time.Now(),
		theme:  theme,
	}
	f.measure(entries)

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, f.line(e))
	}
	return strings.Join(lines, "\n")
}

func (f *formatter) measure(entries []*entry.Entry) {
	for _, e := range entries {
		nlink, uid, gid, ok := sysStat(e)
		if ok {
			f.widths.nlinks = max(f.widths.nlinks, len(strconv.FormatUint(nlink, 10)))
			f.widths.user = max(f.widths.user, len(f.userName(uid)))
			f.widths.group = max(f.widths.group, len(f.groupName(gid)))
		}
		f.widths.size = max(f.widths.size, len(strconv.FormatInt(displaySize(e), 10)))
	}
}

func (f *formatter) line(e *entry.Entry) string {
	nlink, uid, gid, _ := sysStat(e)
	var b strings.Builder
	b.WriteString(modeString(e.Info.Mode()))
	fmt.Fprintf(&b, " %*d", f.widths.nlinks, nlink)
	fmt.Fprintf(&b, " %-*s", f.widths.user, f.userName(uid))
	fmt.Fprintf(&b, " %-*s", f.widths.group, f.groupName(gid))
	fmt.Fprintf(&b, " %*d", f.widths.size, displaySize(e))
	b.WriteByte(' ')
	b.WriteString(f.timestamp(e.Info.ModTime()))
	b.WriteByte(' ')
	b.WriteString(f.name(e))
	return b.String()
}

// name renders the styled entry name; symlinks display as "name -> target"
// with the target text styled by the target's own metadata.
func (f *formatter) name(e *entry.Entry) string {
	styled := f.theme.Render(e)
	if !e.IsSymlink() {
		return styled
	}
	target, err := e.LinkTarget()
	if err != nil {
		return styled
	}
	return styled + " -> " + f.theme.RenderText(target, target.Name)
}

// timestamp formats a modification time the way ls does: month, day, and
// time-of-day for recent files; month, day, and year otherwise. Future
// timestamps are never "recent".
func (f *formatter) timestamp(mtime time.Time) string {
	local := mtime.Local()
	age := f.now.Sub(mtime)
	if age >= 0 && age < recentWindow {
		return local.Format("Jan _2 15:04")
	}
	return local.Format("Jan _2  2006")
}

func (f *formatter) userName(uid uint32) string {
	if name, ok := f.users[uid]; ok {
		return name
	}
	name := strconv.FormatUint(uint64(uid), 10)
	if u, err := user.LookupId(name); err == nil && u.Username != "" {
		name = u.Username
	}
	f.users[uid] = name
	return name
}

func (f *formatter) groupName(gid uint32) string {
	if name, ok := f.groups[gid]; ok {
		return name
	}
	name := strconv.FormatUint(uint64(gid), 10)
	if g, err := user.LookupGroupId(name); err == nil && g.Name != "" {
		name = g.Name
	}
	f.groups[gid] = name
	return name
}

// displaySize reports the size column value. Directories display as zero;
// their on-disk size is allocation detail, not content length.
func displaySize(e *entry.Entry) int64 {
	if e.IsDir() {
		return 0
	}
	return e.Info.Size()
}

// modeString renders the ten-character type and permission field.
func modeString(m fs.FileMode) string {
	var b strings.Builder
	b.WriteByte(typeChar(m))

	perms := []struct {
		bit fs.FileMode
		c   byte
	}{
		{0o400, 'r'}, {0o200, 'w'}, {0o100, 'x'},
		{0o040, 'r'}, {0o020, 'w'}, {0o010, 'x'},
		{0o004, 'r'}, {0o002, 'w'}, {0o001, 'x'},
	}
	for _, p := range perms {
		if m&p.bit != 0 {
			b.WriteByte(p.c)
		} else {
			b.WriteByte('-')
		}
	}
	return b.String()
}

func typeChar(m fs.FileMode) byte {
	switch {
	case m.IsDir():
		return 'd'
	case m&fs.ModeSymlink != 0:
		return 'l'
	case m&fs.ModeCharDevice != 0:
		return 'c'
	case m&fs.ModeDevice != 0:
		return 'b'
	case m&fs.ModeNamedPipe != 0:
		return 'p'
	case m&fs.ModeSocket != 0:
		return 's'
	case m.IsRegular():
		return '-'
	default:
		return '?'
	}
}
