package fs

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	gitignore "github.com/monochromegane/go-gitignore"

	"github.com/sokinpui/lineman/internal/cleaner"
)

const vcsDirName = ".git"

// Options tunes which entries a Walker enumerates.
type Options struct {
	// RespectGitignore skips entries matched by a .gitignore at the root.
	RespectGitignore bool
	// SkipVCS prevents descending into .git directories.
	SkipVCS bool
}

// Walker enumerates the regular files under a root directory whose extension
// is in a fixed set.
type Walker struct {
	root       string
	extensions []string
	opts       Options

	ignoreMatcher gitignore.IgnoreMatcher
	ignoreErr     error
}

// CheckRoot verifies that root exists and is a directory.
func CheckRoot(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return cleaner.NewError(cleaner.InvalidRootPath, root, err)
	}
	if !info.IsDir() {
		return cleaner.NewError(cleaner.InvalidRootPath, root, errors.New("not a directory"))
	}
	return nil
}

// ResolveRoot checks root and resolves any symlinks in it, so a linked root
// is walked like the directory it points to.
func ResolveRoot(root string) (string, error) {
	if err := CheckRoot(root); err != nil {
		return "", err
	}
	resolved, err := filepath.EvalSymlinks(root)
	if err != nil {
		return "", cleaner.NewError(cleaner.InvalidRootPath, root, err)
	}
	return resolved, nil
}

// NewWalker creates a Walker for root. A .gitignore that exists but cannot be
// read is reported as a traversal error when the walk starts.
func NewWalker(root string, extensions []string, opts Options) *Walker {
	w := &Walker{root: root, extensions: extensions, opts: opts}
	if !opts.RespectGitignore {
		return w
	}

	gitIgnorePath := filepath.Join(root, ".gitignore")
	if _, err := os.Lstat(gitIgnorePath); err != nil {
		return w
	}
	matcher, err := gitignore.NewGitIgnore(gitIgnorePath, root)
	if err != nil {
		w.ignoreErr = cleaner.NewError(cleaner.TraversalError, gitIgnorePath, err)
		return w
	}
	w.ignoreMatcher = matcher
	return w
}

// Walk calls visit for every matching file, in lexical order. Entries that
// cannot be read are passed to onErr and the walk continues; an unreadable
// directory's contents are skipped.
func (w *Walker) Walk(visit func(path string), onErr func(path string, err error)) {
	if w.ignoreErr != nil {
		onErr(filepath.Join(w.root, ".gitignore"), w.ignoreErr)
	}

	_ = filepath.WalkDir(w.root, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			onErr(path, cleaner.NewError(cleaner.TraversalError, path, err))
			return nil
		}

		isDir := d.IsDir()
		if path != w.root {
			if isDir && w.opts.SkipVCS && d.Name() == vcsDirName {
				return filepath.SkipDir
			}
			if w.ignoreMatcher != nil && w.ignoreMatcher.Match(path, isDir) {
				if isDir {
					return filepath.SkipDir
				}
				return nil
			}
		}

		if isDir || !d.Type().IsRegular() {
			return nil
		}
		if MatchExtension(path, w.extensions) {
			visit(path)
		}
		return nil
	})
}

// Extension returns the text after the last dot of path's base name. A base
// name with no dot, or whose only dot is its first character, has no
// extension.
func Extension(path string) (string, bool) {
	base := filepath.Base(path)
	i := strings.LastIndexByte(base, '.')
	if i <= 0 {
		return "", false
	}
	return base[i+1:], true
}

// MatchExtension reports whether path's extension equals one of extensions.
// The comparison is exact and case-sensitive.
func MatchExtension(path string, extensions []string) bool {
	ext, ok := Extension(path)
	if !ok {
		return false
	}
	return slices.Contains(extensions, ext)
}
