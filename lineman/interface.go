package lineman

import (
	"fmt"

	"github.com/sokinpui/lineman/cli"
	"github.com/sokinpui/lineman/model"
)

// Config for using lineman as a library.
type Config struct {
	// File extensions to process, without the leading dot (e.g., 'txt', 'py').
	Extensions []string
	// Keep trailing blank lines and the final line's terminator as they are.
	DisableEOFNormalization bool
	// Skip files matched by the .gitignore at the root.
	RespectGitignore bool
	// Descend into .git directories too.
	IncludeVCS bool
	// Report absolute (walked) paths instead of root-relative ones.
	AbsolutePaths bool
}

// Clean cleans every matching file under root and returns the run summary.
func Clean(root string, config Config) (model.Summary, error) {
	cliCfg := &cli.Config{
		Path:             root,
		Extensions:       config.Extensions,
		DisableEOF:       config.DisableEOFNormalization,
		RespectGitignore: config.RespectGitignore,
		SkipVCS:          !config.IncludeVCS,
		Relative:         !config.AbsolutePaths,
	}

	app, err := New(cliCfg)
	if err != nil {
		return model.Summary{}, fmt.Errorf("failed to initialize lineman app: %w", err)
	}
	return app.Execute()
}
