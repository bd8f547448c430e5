// Package listing orchestrates a run of the lister: it partitions the
// requested paths, sorts entries by the ambient locale, and renders them.
package listing

import (
	"fmt"
	"io"
	"os"
	"sort"

	"tabls/pkg/config"
	"tabls/pkg/entry"
	"tabls/pkg/locale"
	"tabls/pkg/log"
	"tabls/pkg/longformat"
	"tabls/pkg/tabulate"
)

// Lister renders listings according to its options.
type Lister struct {
	cfg     *config.Listing
	out     io.Writer
	compare func(a, b string) int
}

// New ...
func New(cfg *config.Listing, out io.Writer) *Lister {
	return &Lister{
		cfg:     cfg,
		out:     out,
		compare: locale.Comparer(),
	}
}

// Run lists every configured path: plain files first as one group, then each
// directory. It keeps going past unreadable paths and reports their failure
// at the end.
func (l *Lister) Run() error {
	files, dirs, failed := l.partition()

	if len(files) > 0 {
		if err := l.renderSorted(files); err != nil {
			return err
		}
	}

	headings := len(dirs) > 1 || (len(dirs) > 0 && len(files) > 0)
	for i, dir := range dirs {
		if i > 0 || len(files) > 0 {
			fmt.Fprintln(l.out)
		}
		if headings {
			fmt.Fprintf(l.out, "%s:\n", dir.Name)
		}

		children, err := l.readDir(dir)
		if err != nil {
			log.ErrorMsg("%s\n", err)
			failed++
			continue
		}
		if err := l.renderSorted(children); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d path(s) could not be read", failed)
	}
	return nil
}

// partition stats each requested path and splits the readable ones into
// plain files and directories.
func (l *Lister) partition() (files, dirs []entry.Entry, failed int) {
	for _, path := range l.cfg.Paths {
		e, err := entry.FromPath(path)
		if err != nil {
			log.ErrorMsg("%s\n", err)
			failed++
			continue
		}

		if e.Info.IsDir() {
			dirs = append(dirs, e)
		} else {
			files = append(files, e)
		}
	}
	return files, dirs, failed
}

func (l *Lister) readDir(dir entry.Entry) ([]entry.Entry, error) {
	children, err := os.ReadDir(dir.Path)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %s", dir.Name, err)
	}

	var entries []entry.Entry
	for _, de := range children {
		e, err := entry.FromDirEntry(dir.Path, de)
		if err != nil {
			log.ErrorMsg("%s\n", err)
			continue
		}
		if !l.cfg.All && e.Hidden() {
			continue
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func (l *Lister) renderSorted(entries []entry.Entry) error {
	sort.SliceStable(entries, func(i, j int) bool {
		return l.compare(entries[i].Name, entries[j].Name) < 0
	})

	switch {
	case l.cfg.Long:
		return longformat.Write(l.out, entries)
	case l.cfg.OnePerLine:
		for _, e := range entries {
			if _, err := fmt.Fprintln(l.out, e.Display()); err != nil {
				return err
			}
		}
		return nil
	default:
		cells := make([]tabulate.Cell, len(entries))
		for i, e := range entries {
			cells[i] = tabulate.Cell{Text: e.Display(), Cells: e.Width()}
		}

		orientation := tabulate.ByColumns
		if l.cfg.ByLines {
			orientation = tabulate.ByRows
		}
		return tabulate.New(l.cfg.Width, orientation).Write(l.out, cells)
	}
}
