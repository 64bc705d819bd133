//go:build !unix

package longformat

import "github.com/oakwood-commons/lsx/internal/entry"

// sysStat has no link count or ownership to report off unix.
func sysStat(e *entry.Entry) (nlink uint64, uid, gid uint32, ok bool) {
	return 1, 0, 0, false
}
