package builder

import (
	"github.com/charmbracelet/log"
	"github.com/go-git/go-billy/v5"

	"scanbuilder/internal/filter"
)

// Option configures a Builder.
type Option func(*options)

type options struct {
	fs     billy.Filesystem
	abs    bool
	filter filter.Options
	logger *log.Logger
}

// WithFilesystem walks fsys instead of the native filesystem.
func WithFilesystem(fsys billy.Filesystem) Option {
	return func(o *options) {
		if fsys != nil {
			o.fs = fsys
		}
	}
}

// WithAbsolutePaths resolves every root against the working directory before
// walking, so discovered paths are absolute. Meant for the native filesystem.
func WithAbsolutePaths() Option {
	return func(o *options) { o.abs = true }
}

// WithInclude keeps only files whose path relative to their root matches one
// of the doublestar patterns. A file root is matched by its base name.
func WithInclude(globs ...string) Option {
	return func(o *options) {
		o.filter.Include = append(o.filter.Include, globs...)
	}
}

// WithGitignore honours .gitignore and .git/info/exclude at the top of each
// directory root and skips .git directories.
func WithGitignore() Option {
	return func(o *options) { o.filter.Gitignore = true }
}

// WithLogger replaces the default stderr logger.
func WithLogger(logger *log.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
