// Package longformat renders one detailed line per entry, the way ls -l does.
package longformat

import (
	"fmt"
	"io"
	"io/fs"
	"os/user"
	"strconv"
	"time"

	"tabls/pkg/entry"
)

// column widths sized to the widest value in the listing
type layout struct {
	nlinks int
	user   int
	group  int
	size   int
}

// Write renders the entries in long format: type and permission bits, link
// count, owner, group, size, modification time, display name.
func Write(w io.Writer, entries []entry.Entry) error {
	now := time.Now()
	l := fitLayout(entries)

	for _, e := range entries {
		m := metaOf(e.Info)
		_, err := fmt.Fprintf(w, "%c%s %*d %-*s %-*s %*d %s %s\n",
			typeChar(e.Info.Mode()),
			permString(e.Info.Mode()),
			l.nlinks, m.nlink,
			l.user, userName(m.uid),
			l.group, groupName(m.gid),
			l.size, sizeOf(e.Info),
			timestamp(e.Info.ModTime(), now),
			e.Display(),
		)
		if err != nil {
			return err
		}
	}

	return nil
}

func fitLayout(entries []entry.Entry) layout {
	var l layout
	for _, e := range entries {
		m := metaOf(e.Info)
		l.nlinks = max(l.nlinks, len(strconv.FormatUint(m.nlink, 10)))
		l.user = max(l.user, len(userName(m.uid)))
		l.group = max(l.group, len(groupName(m.gid)))
		l.size = max(l.size, len(strconv.FormatInt(sizeOf(e.Info), 10)))
	}
	return l
}

func typeChar(m fs.FileMode) byte {
	switch {
	case m.IsDir():
		return 'd'
	case m&fs.ModeSymlink != 0:
		return 'l'
	case m&fs.ModeCharDevice == fs.ModeCharDevice:
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

func permString(m fs.FileMode) string {
	const chars = "rwxrwxrwx"

	perm := m.Perm()
	buf := make([]byte, 9)
	for i := 0; i < 9; i++ {
		if perm&(1<<uint(8-i)) != 0 {
			buf[i] = chars[i]
		} else {
			buf[i] = '-'
		}
	}

	return string(buf)
}

// Directories report size 0 rather than their block size.
func sizeOf(info fs.FileInfo) int64 {
	if info.IsDir() {
		return 0
	}
	return info.Size()
}

const sixMonths = 6 * 30 * 24 * time.Hour

// timestamp renders recent times with hour and minute, old or future times
// with the year instead.
func timestamp(t, now time.Time) string {
	if !t.After(now) && now.Sub(t) < sixMonths {
		return t.Format("Jan _2 15:04")
	}
	return t.Format("Jan _2  2006")
}

func userName(uid uint32) string {
	id := strconv.FormatUint(uint64(uid), 10)
	if u, err := user.LookupId(id); err == nil {
		return u.Username
	}
	return id
}

func groupName(gid uint32) string {
	id := strconv.FormatUint(uint64(gid), 10)
	if g, err := user.LookupGroupId(id); err == nil {
		return g.Name
	}
	return id
}
