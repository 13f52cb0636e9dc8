// Package builder discovers the files under a set of root paths and hands
// them to a scanner factory.
//
// Roots are registered with AddPath and walked lazily when Scanner or Files
// is called. Every regular file reachable from a root is collected, whatever
// its extension or name. Symlinks to files are collected under the link's
// path; symlinks to directories are not followed, so traversal cannot cycle.
// A root that is itself a symlink is followed.
package builder

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"scanbuilder/internal/fileset"
	"scanbuilder/internal/filter"
	"scanbuilder/internal/logging"
)

// ErrInvalidRoot is returned when a registered root is empty, missing, or
// cannot be inspected or listed at traversal time.
var ErrInvalidRoot = errors.New("builder: invalid root")

// FileSet is the set of discovered file paths handed to a Factory.
type FileSet = fileset.Set

// Factory builds a scanner from the discovered files.
type Factory[S any] func(files FileSet) (S, error)

// Builder collects files under its roots and passes them to a Factory.
// It is not safe for concurrent use.
type Builder[S any] struct {
	factory Factory[S]
	roots   []string
	opts    options
}

// New returns a Builder that hands discovered files to factory.
// Panics if factory is nil.
func New[S any](factory Factory[S], opts ...Option) *Builder[S] {
	if factory == nil {
		panic("builder: factory cannot be nil")
	}
	o := options{fs: &nativeFS{}}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = logging.New("builder")
	}
	return &Builder[S]{factory: factory, opts: o}
}

// AddPath registers root for traversal and returns b for chaining.
// The filesystem is not touched until Files or Scanner is called.
func (b *Builder[S]) AddPath(root string) *Builder[S] {
	b.roots = append(b.roots, root)
	return b
}

// AddPaths registers several roots.
func (b *Builder[S]) AddPaths(roots ...string) *Builder[S] {
	b.roots = append(b.roots, roots...)
	return b
}

// Files walks every registered root and returns the discovered files.
func (b *Builder[S]) Files() (FileSet, error) {
	files := fileset.New()
	for _, root := range b.roots {
		if err := b.collectRoot(root, files); err != nil {
			return nil, err
		}
	}
	b.opts.logger.Debug("discovered files", "roots", len(b.roots), "files", files.Len())
	return files, nil
}

// Scanner walks every registered root and calls the factory once with the
// result. The factory's scanner and error are returned as is.
func (b *Builder[S]) Scanner() (S, error) {
	files, err := b.Files()
	if err != nil {
		var zero S
		return zero, err
	}
	return b.factory(files)
}

func (b *Builder[S]) collectRoot(root string, files fileset.Set) error {
	if strings.TrimSpace(root) == "" {
		return fmt.Errorf("%w %q: empty path", ErrInvalidRoot, root)
	}
	root = filepath.Clean(root)
	if b.opts.abs {
		abs, err := filepath.Abs(root)
		if err != nil {
			return fmt.Errorf("%w %q: %w", ErrInvalidRoot, root, err)
		}
		root = abs
	}

	info, err := b.opts.fs.Stat(root)
	if err != nil {
		return fmt.Errorf("%w %q: %w", ErrInvalidRoot, root, err)
	}
	b.opts.logger.Debug("walking root", "root", root, "dir", info.IsDir())

	var flt *filter.Filter
	if b.opts.filter.Enabled() {
		flt, err = filter.New(b.opts.fs, root, info.IsDir(), b.opts.filter)
		if err != nil {
			return err
		}
	}

	if info.IsDir() {
		return b.walkDir(root, ".", flt, files)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w %q: not a regular file or directory", ErrInvalidRoot, root)
	}
	b.addFile(root, path.Base(filepath.ToSlash(root)), flt, files)
	return nil
}

// walkDir descends dir depth-first. rel is dir relative to its root.
func (b *Builder[S]) walkDir(dir, rel string, flt *filter.Filter, files fileset.Set) error {
	entries, err := b.opts.fs.ReadDir(dir)
	if err != nil {
		if rel == "." {
			return fmt.Errorf("%w %q: %w", ErrInvalidRoot, dir, err)
		}
		return fmt.Errorf("builder: read dir %q: %w", dir, err)
	}
	for _, e := range entries {
		full := b.opts.fs.Join(dir, e.Name())
		entryRel := path.Join(rel, e.Name())
		mode := e.Mode()

		switch {
		case mode.IsDir():
			if flt.SkipDir(entryRel) {
				b.opts.logger.Debug("skipping directory", "path", full, "reason", "filtered")
				continue
			}
			if err := b.walkDir(full, entryRel, flt, files); err != nil {
				return err
			}
		case mode.IsRegular():
			b.addFile(full, entryRel, flt, files)
		case mode&os.ModeSymlink != 0:
			target, err := b.opts.fs.Stat(full)
			switch {
			case err != nil:
				b.opts.logger.Debug("skipping symlink", "path", full, "reason", "dangling", "err", err)
			case target.IsDir():
				b.opts.logger.Debug("skipping symlink", "path", full, "reason", "directory")
			case target.Mode().IsRegular():
				b.addFile(full, entryRel, flt, files)
			default:
				b.opts.logger.Debug("skipping symlink", "path", full, "reason", "irregular target")
			}
		default:
			b.opts.logger.Debug("skipping entry", "path", full, "mode", mode.String())
		}
	}
	return nil
}

func (b *Builder[S]) addFile(full, rel string, flt *filter.Filter, files fileset.Set) {
	if !flt.KeepFile(rel) {
		b.opts.logger.Debug("skipping file", "path", full, "reason", "filtered")
		return
	}
	files.Add(full)
}
