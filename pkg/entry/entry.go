// Package entry models the file system objects a listing renders.
package entry

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
)

// Entry is a single object to list. Name is what gets rendered: the path as
// the user spelled it for direct arguments, the base name for directory
// children.
type Entry struct {
	Name string
	Path string
	Info fs.FileInfo
}

// FromPath stats a path given on the command line. Symlinks are not
// followed, so a dangling link still lists.
func FromPath(path string) (Entry, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return Entry{}, fmt.Errorf("os.Lstat(%s): %s", path, err)
	}

	return Entry{Name: path, Path: path, Info: info}, nil
}

// FromDirEntry builds an Entry for a child of dir.
func FromDirEntry(dir string, de fs.DirEntry) (Entry, error) {
	info, err := de.Info()
	if err != nil {
		return Entry{}, fmt.Errorf("reading info of %s: %s", de.Name(), err)
	}

	return Entry{
		Name: de.Name(),
		Path: filepath.Join(dir, de.Name()),
		Info: info,
	}, nil
}

// Hidden reports whether the entry is a dotfile.
func (e Entry) Hidden() bool {
	return strings.HasPrefix(e.Name, ".")
}

// Width is the name's width in character cells. Color escapes never count
// because they are added only in Display.
func (e Entry) Width() int {
	return utf8.RuneCountInString(e.Name)
}

var dirName = color.New(color.FgBlue, color.Bold)
var liveLink = color.New(color.FgCyan, color.Bold)
var brokenLink = color.New(color.FgRed, color.Bold)

// Display returns the name colored by entry type: directories blue, live
// symlinks cyan, broken symlinks red. Plain files come back unchanged, as
// does everything when color is globally disabled.
func (e Entry) Display() string {
	switch {
	case e.Info.Mode()&fs.ModeSymlink != 0:
		if _, err := os.Stat(e.Path); err != nil {
			return brokenLink.Sprint(e.Name)
		}
		return liveLink.Sprint(e.Name)
	case e.Info.IsDir():
		return dirName.Sprint(e.Name)
	default:
		return e.Name
	}
}
