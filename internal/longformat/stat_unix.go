//go:build unix

package longformat

import (
	"syscall"

	"github.com/oakwood-commons/lsx/internal/entry"
)

// sysStat extracts the unix-only metadata fields. ok is false when the
// underlying FileInfo carries no Stat_t (synthetic fs.FileInfo in tests,
// exotic filesystems).
func sysStat(e *entry.Entry) (nlink uint64, uid, gid uint32, ok bool) {
	st, ok := e.Info.Sys().(*syscall.Stat_t)
	if !ok || st == nil {
		return 1, 0, 0, false
	}
	return uint64(st.Nlink), st.Uid, st.Gid, true
}
