package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
)

// Config holds all the command-line flag values.
type Config struct {
	Path             string
	Extensions       []string
	DisableEOF       bool
	RespectGitignore bool
	SkipVCS          bool
	Verbose          bool
	NoColor          bool
	Relative         bool
}

// NormalizeEOF reports whether end-of-file newline normalization is on.
func (c *Config) NormalizeEOF() bool {
	return !c.DisableEOF
}

// ErrHelp is returned when -h/--help was requested.
var ErrHelp = pflag.ErrHelp

// ParseFlags parses the process arguments.
func ParseFlags() (*Config, error) {
	return Parse(os.Args[1:], os.Stderr)
}

// Parse defines and parses command-line flags using pflag. Usage and parse
// errors are written to out.
func Parse(args []string, out io.Writer) (*Config, error) {
	cfg := &Config{}
	flags := pflag.NewFlagSet("lineman", pflag.ContinueOnError)
	flags.SetOutput(out)

	// Define flags
	flags.StringVarP(&cfg.Path, "path", "p", "", "The root path from which to begin processing (required).")
	flags.StringSliceVarP(&cfg.Extensions, "extensions", "e", []string{}, "File extensions to process, without the leading dot (e.g., 'txt', 'py'). Repeatable or comma-separated.")
	flags.BoolVar(&cfg.DisableEOF, "disable-eof-newline-normalization", false, "Keep trailing blank lines and the final line's terminator as they are.")
	flags.BoolVar(&cfg.RespectGitignore, "respect-gitignore", false, "Skip files matched by the .gitignore at the root path.")
	flags.BoolVar(&cfg.SkipVCS, "skip-vcs", true, "Do not descend into .git directories.")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Log every file that is checked.")
	flags.BoolVar(&cfg.NoColor, "no-color", false, "Disable colored output.")
	flags.BoolVar(&cfg.Relative, "relative", true, "Report paths relative to the root path.")

	flags.Usage = func() {
		fmt.Fprintln(out, "Usage: lineman --path <dir> --extensions <ext>... [flags]")
		fmt.Fprintln(out, "\nStrip trailing whitespace and normalize end-of-file newlines in text files.")
		fmt.Fprintln(out, "\nExample: lineman -p . -e go -e md")
		fmt.Fprintln(out, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	// Allow `-e txt py`: extra positional arguments are further extensions.
	cfg.Extensions = append(cfg.Extensions, flags.Args()...)

	if cfg.Path == "" {
		flags.Usage()
		return nil, errors.New("error: --path is required")
	}

	return cfg, nil
}
