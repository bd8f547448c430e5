//go:build !linux && !darwin
// +build !linux,!darwin

package longformat

import (
	"io/fs"
)

type meta struct {
	nlink uint64
	uid   uint32
	gid   uint32
}

// No stat metadata to report on platforms without Stat_t.
func metaOf(info fs.FileInfo) meta {
	return meta{nlink: 1}
}
