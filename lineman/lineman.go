package lineman

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/sokinpui/lineman/cli"
	"github.com/sokinpui/lineman/internal/cleaner"
	"github.com/sokinpui/lineman/internal/fs"
	"github.com/sokinpui/lineman/internal/ui"
	"github.com/sokinpui/lineman/model"
)

// App orchestrates a single cleaning run.
type App struct {
	cfg   *cli.Config
	clean func(path string, opts cleaner.Options) (cleaner.Outcome, error)
}

// DetailedError enhances a standard error with a stack trace.
type DetailedError struct {
	Err   error
	Stack []byte
}

func (e *DetailedError) Error() string {
	return e.Err.Error()
}

func (e *DetailedError) Unwrap() error {
	return e.Err
}

// New creates a new App instance.
func New(cfg *cli.Config) (*App, error) {
	if cfg == nil {
		return nil, errors.New("lineman: nil config")
	}
	return &App{cfg: cfg, clean: cleaner.Clean}, nil
}

// Execute walks the configured root and cleans every matching file, one at a
// time. Only an invalid root path is returned as an error; per-file and
// traversal failures are collected in the summary.
func (a *App) Execute() (summary model.Summary, err error) {
	// Centralized panic recovery.
	defer func() {
		if r := recover(); r != nil {
			err = &DetailedError{
				Err:   fmt.Errorf("internal panic: %v", r),
				Stack: debug.Stack(),
			}
		}
	}()

	root, err := fs.ResolveRoot(a.cfg.Path)
	if err != nil {
		return model.Summary{}, err
	}

	summary = model.Summary{Root: root}
	if len(a.cfg.Extensions) == 0 {
		summary.Message = "No extensions given. Nothing to process."
		return summary, nil
	}

	start := time.Now()
	walker := fs.NewWalker(root, a.cfg.Extensions, fs.Options{
		RespectGitignore: a.cfg.RespectGitignore,
		SkipVCS:          a.cfg.SkipVCS,
	})
	opts := cleaner.Options{NormalizeEOF: a.cfg.NormalizeEOF()}

	walker.Walk(func(path string) {
		summary.Checked++
		a.cleanFile(&summary, path, opts)
	}, func(path string, err error) {
		ui.Log.WithField("path", path).WithError(err).Debug("traversal error")
		summary.AddError(path, describe(err))
	})
	summary.Duration = time.Since(start)

	if a.cfg.Relative {
		relativizeSummaryPaths(&summary)
	}
	return summary, nil
}

// cleanFile runs the cleaner on one file and routes the result into the
// matching bucket. Files that needed no change go in none.
func (a *App) cleanFile(summary *model.Summary, path string, opts cleaner.Options) {
	log := ui.Log.WithField("path", path)

	out, err := a.clean(path, opts)
	switch {
	case err != nil:
		log.WithError(err).Debug("skipped")
		if errors.Is(err, cleaner.ErrFileNotCleaned) {
			ui.Warning("%s may be partially written; restore it from version control.", path)
		}
		summary.AddSkipped(path, describe(err))
	case out.Changed:
		log.WithFields(logrus.Fields{
			"lines":   out.LinesChanged,
			"dropped": out.BlankLinesDropped,
			"bytes":   out.BytesAfter - out.BytesBefore,
		}).Debug("cleaned")
		summary.AddCleaned(path)
	default:
		log.Debug("unchanged")
	}
}

// describe renders err without repeating the path it is reported under.
func describe(err error) string {
	var cerr *cleaner.Error
	if errors.As(err, &cerr) && cerr.Err != nil {
		return fmt.Sprintf("%s: %v", cerr.Kind, cerr.Err)
	}
	return err.Error()
}

// relativizeSummaryPaths rewrites the summary's paths relative to its root
// for cleaner display.
func relativizeSummaryPaths(summary *model.Summary) {
	makeRelative := func(p string) string {
		rel, err := filepath.Rel(summary.Root, p)
		if err != nil {
			return p // Fallback to the walked path
		}
		return rel
	}

	for i, p := range summary.Cleaned {
		summary.Cleaned[i] = makeRelative(p)
	}
	for i := range summary.Skipped {
		summary.Skipped[i].Path = makeRelative(summary.Skipped[i].Path)
	}
	for i := range summary.Errors {
		summary.Errors[i].Path = makeRelative(summary.Errors[i].Path)
	}
}
