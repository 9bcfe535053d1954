// Package cleaner rewrites a single file with trailing whitespace removed and,
// optionally, its end-of-file newlines normalized.
package cleaner

import (
	"bufio"
	"errors"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/sokinpui/lineman/internal/normalize"
)

var errNotText = errors.New("content is not valid UTF-8")

// openForRewrite opens an existing file for the in-place rewrite.
var openForRewrite = os.OpenFile

// Options controls how a file is cleaned.
type Options struct {
	// NormalizeEOF terminates the last line with a newline and drops any
	// trailing blank lines. When false, the file's tail is kept as is apart
	// from per-line whitespace trimming.
	NormalizeEOF bool
}

// Outcome describes what cleaning did to a file.
type Outcome struct {
	Changed           bool
	LinesChanged      int
	BlankLinesDropped int
	BytesBefore       int
	BytesAfter        int
}

// CleanContent applies the line transform and the end-of-file policy to
// content and returns the cleaned text. It does no I/O.
func CleanContent(content string, opts Options) (string, Outcome) {
	segments := normalize.Segments(content)
	cleaned := cleanSegments(segments, opts)

	out := Outcome{BytesBefore: len(content)}
	for i, seg := range cleaned {
		if seg != segments[i] {
			out.LinesChanged++
		}
	}
	out.BlankLinesDropped = len(segments) - len(cleaned)
	out.Changed = out.LinesChanged > 0 || out.BlankLinesDropped > 0

	result := strings.Join(cleaned, "")
	out.BytesAfter = len(result)
	return result, out
}

func cleanSegments(segments []string, opts Options) []string {
	cleaned := make([]string, len(segments))
	for i, seg := range segments {
		cleaned[i], _ = normalize.Line(seg, opts.NormalizeEOF)
	}
	if !opts.NormalizeEOF {
		return cleaned
	}

	end := len(cleaned)
	for end > 0 && normalize.IsBlank(cleaned[end-1]) {
		end--
	}
	return cleaned[:end]
}

// Clean reads the file at path, cleans it, and writes it back if anything
// changed. An unchanged file is never opened for writing.
//
// Failures are returned as *Error with Kind FileNotOpened or FileNotCleaned.
// A FileNotCleaned failure may happen after part of the content was written;
// the file is then left as it is.
func Clean(path string, opts Options) (Outcome, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Outcome{}, NewError(FileNotOpened, path, err)
	}
	if !utf8.Valid(data) {
		return Outcome{}, NewError(FileNotOpened, path, errNotText)
	}

	cleaned, out := CleanContent(string(data), opts)
	if !out.Changed {
		return out, nil
	}

	if err := rewrite(path, cleaned); err != nil {
		return out, NewError(FileNotCleaned, path, err)
	}
	return out, nil
}

// rewrite truncates the existing file in place so its mode and ownership are
// kept.
func rewrite(path, content string) (err error) {
	f, err := openForRewrite(path, os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	w := bufio.NewWriter(f)
	if _, err := w.WriteString(content); err != nil {
		return err
	}
	return w.Flush()
}
