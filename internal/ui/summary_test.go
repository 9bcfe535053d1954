package ui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/sokinpui/lineman/model"
)

func TestRenderSummary(t *testing.T) {
	SetNoColor(true)

	s := model.Summary{Checked: 5, Duration: 1500 * time.Microsecond}
	s.AddCleaned("a.txt")
	s.AddCleaned("sub/b.py")
	s.AddSkipped("bin.txt", "file not opened: content is not valid UTF-8")
	s.AddError("locked", "traversal error: permission denied")

	var buf bytes.Buffer
	PrintSummary(&buf, s)
	out := buf.String()

	for _, want := range []string{
		"--- Clean Summary ---",
		"Cleaned 2 file(s):\n  - a.txt\n  - sub/b.py\n",
		"Skipped 1 file(s):\n  - bin.txt (file not opened: content is not valid UTF-8)\n",
		"Traversal errors (1):\n  - locked (traversal error: permission denied)\n",
		"5 checked, 2 cleaned, 1 skipped, 1 errors in 2ms",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q\ngot:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Nothing to clean.") {
		t.Error("non-empty summary rendered as empty")
	}
}

func TestRenderEmptySummary(t *testing.T) {
	SetNoColor(true)

	out := RenderSummary(model.Summary{Checked: 3, Message: "All good."})
	for _, want := range []string{"All good.\n", "Nothing to clean.", "3 checked, 0 cleaned"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q\ngot:\n%s", want, out)
		}
	}
}
