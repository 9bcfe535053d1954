package normalize

import (
	"reflect"
	"testing"
)

func TestLineCleansBadLines(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"remove spaces", "some code    \n", "some code\n"},
		{"keep indentation, remove spaces", "    some code    \n", "    some code\n"},
		{"remove tab", "some code\t\n", "some code\n"},
		{"keep indentation, remove tab", "    some code\t\n", "    some code\n"},
		{"mixed trailing whitespace", "x = 1 \t \t\n", "x = 1\n"},
		{"add newline", "some code", "some code\n"},
		{"remove spaces, add newline", "some code    ", "some code\n"},
		{"whitespace only line", "    \n", "\n"},
		{"whitespace only, add newline", "    ", "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := Line(tt.in, true)
			if got != tt.want {
				t.Errorf("Line(%q, true) = %q, want %q", tt.in, got, tt.want)
			}
			if !changed {
				t.Errorf("Line(%q, true) reported unchanged", tt.in)
			}
		})
	}
}

func TestLineSkipsGoodLines(t *testing.T) {
	for _, flag := range []bool{true, false} {
		for _, in := range []string{"some code\n", "\n", "\tindented\n"} {
			got, changed := Line(in, flag)
			if got != in || changed {
				t.Errorf("Line(%q, %v) = (%q, %v), want (%q, false)", in, flag, got, changed, in)
			}
		}
	}
}

func TestLineWithoutEOFNormalization(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		changed bool
	}{
		{"main()", "main()", false},
		{"main()   ", "main()", true},
		{"main()\t", "main()", true},
		{"    ", "", true},
		{"", "", false},
		{"def f():   \n", "def f():\n", true},
	}

	for _, tt := range tests {
		got, changed := Line(tt.in, false)
		if got != tt.want || changed != tt.changed {
			t.Errorf("Line(%q, false) = (%q, %v), want (%q, %v)", tt.in, got, changed, tt.want, tt.changed)
		}
	}
}

func TestLineIsIdempotent(t *testing.T) {
	inputs := []string{"a  \n", "\t\n", "main()", "main()  ", "  x\t", "", "\n", "trailing \r\n"}
	for _, flag := range []bool{true, false} {
		for _, in := range inputs {
			once, _ := Line(in, flag)
			twice, changed := Line(once, flag)
			if changed || twice != once {
				t.Errorf("Line not idempotent for %q (eof=%v): %q -> %q", in, flag, once, twice)
			}
		}
	}
}

func TestLineKeepsCarriageReturn(t *testing.T) {
	got, changed := Line("text \r\n", true)
	if got != "text \r\n" || changed {
		t.Errorf("Line altered CRLF segment: got (%q, %v)", got, changed)
	}
}

func TestSegments(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"empty", "", nil},
		{"single unterminated", "main()", []string{"main()"}},
		{"single terminated", "main()\n", []string{"main()\n"}},
		{"blank tail", "a\n\n\n", []string{"a\n", "\n", "\n"}},
		{"unterminated tail", "a\nb", []string{"a\n", "b"}},
		{"only newlines", "\n\n", []string{"\n", "\n"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Segments(tt.content)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Segments(%q) = %q, want %q", tt.content, got, tt.want)
			}
		})
	}
}

func TestIsBlank(t *testing.T) {
	for _, s := range []string{"", "\n", "  \n", "\t", " \t \n"} {
		if !IsBlank(s) {
			t.Errorf("IsBlank(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"x\n", "  x", "\r\n"} {
		if IsBlank(s) {
			t.Errorf("IsBlank(%q) = true, want false", s)
		}
	}
}
