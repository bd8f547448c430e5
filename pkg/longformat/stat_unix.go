//go:build linux || darwin
// +build linux darwin

package longformat

import (
	"io/fs"
	"syscall"
)

type meta struct {
	nlink uint64
	uid   uint32
	gid   uint32
}

func metaOf(info fs.FileInfo) meta {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return meta{nlink: 1}
	}

	return meta{
		nlink: uint64(st.Nlink),
		uid:   st.Uid,
		gid:   st.Gid,
	}
}
