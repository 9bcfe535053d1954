package lineman

import "github.com/sokinpui/lineman/internal/cleaner"

// SetCleanFunc replaces the per-file cleaner used by Execute.
func (a *App) SetCleanFunc(clean func(path string, opts cleaner.Options) (cleaner.Outcome, error)) {
	a.clean = clean
}
