// Package filter decides which discovered paths are kept. Paths are relative
// to the root being walked and use forward slashes. A nil *Filter keeps
// everything.
package filter

import (
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	ignore "github.com/sabhiram/go-gitignore"
)

// ErrBadPattern is returned for an include glob doublestar cannot parse.
var ErrBadPattern = errors.New("filter: bad include pattern")

// Options selects the rules a Filter applies.
type Options struct {
	// Include keeps only files matching at least one doublestar pattern.
	Include []string
	// Gitignore honours .gitignore and .git/info/exclude of a directory root
	// and prunes .git directories.
	Gitignore bool
}

// Enabled reports whether o would filter anything.
func (o Options) Enabled() bool {
	return len(o.Include) > 0 || o.Gitignore
}

// Filter holds the include and ignore rules of one root.
type Filter struct {
	patterns []string
	ign      *ignore.GitIgnore
	skipGit  bool
}

// New builds the filter for one root. dirRoot tells whether root is a
// directory; ignore files are only read for directory roots.
func New(fsys billy.Filesystem, root string, dirRoot bool, opts Options) (*Filter, error) {
	f := &Filter{}
	for _, g := range opts.Include {
		g = strings.TrimSpace(g)
		if g == "" {
			continue
		}
		if !doublestar.ValidatePattern(g) {
			return nil, fmt.Errorf("%w: %q", ErrBadPattern, g)
		}
		f.patterns = append(f.patterns, g)
	}
	if opts.Gitignore && dirRoot {
		f.skipGit = true
		f.ign = loadGitIgnore(fsys, root)
	}
	return f, nil
}

// KeepFile reports whether the file at rel belongs in the result.
func (f *Filter) KeepFile(rel string) bool {
	if f == nil {
		return true
	}
	if f.ign != nil && f.ign.MatchesPath(rel) {
		return false
	}
	if len(f.patterns) == 0 {
		return true
	}
	for _, p := range f.patterns {
		if ok, _ := doublestar.Match(p, rel); ok {
			return true
		}
	}
	return false
}

// SkipDir reports whether the directory at rel should not be descended.
func (f *Filter) SkipDir(rel string) bool {
	if f == nil || rel == "." {
		return false
	}
	if f.skipGit && path.Base(rel) == ".git" {
		return true
	}
	return f.ign != nil && f.ign.MatchesPath(rel+"/")
}

func loadGitIgnore(fsys billy.Filesystem, root string) *ignore.GitIgnore {
	var lines []string
	for _, name := range []string{
		fsys.Join(root, ".gitignore"),
		fsys.Join(root, ".git", "info", "exclude"),
	} {
		b, err := util.ReadFile(fsys, name)
		if err != nil {
			continue
		}
		lines = append(lines, strings.Split(string(b), "\n")...)
	}
	if len(lines) == 0 {
		return nil
	}
	return ignore.CompileIgnoreLines(lines...)
}
