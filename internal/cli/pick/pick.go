// Package pick lets the user choose files to rename with a fuzzy finder.
package pick

import (
	"fmt"
	"os"
	"slices"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/afero"

	"github.com/thoreinstein/modname/internal/errors"
	"github.com/thoreinstein/modname/internal/paths"
)

// FinderFunc shows items and returns the indexes the user selected.
// describe renders the preview for item i.
type FinderFunc func(items []string, describe func(i int) string) ([]int, error)

// Picker selects entries of a directory.
type Picker struct {
	fs   afero.Fs
	dir  string
	find FinderFunc
}

// Option configures a Picker.
type Option func(*Picker)

// WithFinder replaces the interactive fuzzy finder.
func WithFinder(find FinderFunc) Option {
	return func(p *Picker) {
		p.find = find
	}
}

// New creates a Picker over the entries of dir.
func New(fs afero.Fs, dir string, opts ...Option) *Picker {
	p := &Picker{
		fs:   fs,
		dir:  dir,
		find: findMulti,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Pick returns the selected paths in directory order. Aborting the finder
// or an empty directory yields no paths and no error.
func (p *Picker) Pick() ([]string, error) {
	infos, err := afero.ReadDir(p.fs, p.dir)
	if err != nil {
		return nil, errors.Wrapf(err, "listing %s", p.dir)
	}
	if len(infos) == 0 {
		return nil, nil
	}

	names := make([]string, len(infos))
	for i, info := range infos {
		names[i] = info.Name()
	}

	idx, err := p.find(names, func(i int) string {
		return describe(infos[i])
	})
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "file picker failed")
	}

	slices.Sort(idx)
	idx = slices.Compact(idx)

	picked := make([]string, 0, len(idx))
	for _, i := range idx {
		if i < 0 || i >= len(names) {
			return nil, errors.AssertionFailedf("picker returned index %d for %d entries", i, len(names))
		}
		picked = append(picked, p.path(names[i]))
	}
	return picked, nil
}

func (p *Picker) path(name string) string {
	if p.dir == "." {
		return name
	}
	joined, err := paths.Join(paths.TrimTrailingSeparators(p.dir), name)
	if err != nil {
		return p.dir + paths.Separator + name
	}
	if joined == name && paths.IsRooted(p.dir) {
		return paths.Separator + name
	}
	return joined
}

func describe(info os.FileInfo) string {
	kind := "file"
	if info.IsDir() {
		kind = "directory"
	}
	return fmt.Sprintf("Name: %s\nType: %s\nMode: %s\nSize: %d bytes\nModified: %s",
		info.Name(),
		kind,
		info.Mode(),
		info.Size(),
		info.ModTime().Format("2006-01-02 15:04"),
	)
}

func findMulti(items []string, preview func(i int) string) ([]int, error) {
	return fuzzyfinder.FindMulti(
		items,
		func(i int) string {
			return items[i]
		},
		fuzzyfinder.WithPromptString("rename> "),
		fuzzyfinder.WithHeader("Tab to select, Enter to confirm"),
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			return preview(i)
		}),
	)
}
