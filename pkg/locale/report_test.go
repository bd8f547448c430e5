package locale

import (
	"bytes"
	"regexp"
	"strings"
	"testing"
)

func TestReport_Shape(t *testing.T) {
	t.Setenv("LC_ALL", "C")

	var buf bytes.Buffer
	Report(&buf)

	shape := regexp.MustCompile(`^setlocale = .*\n(strcmp\([^)]+\) = -?\d+\n){3}$`)
	if !shape.MatchString(buf.String()) {
		t.Errorf("Report() output has unexpected shape:\n%s", buf.String())
	}
}

func TestReport_Lines(t *testing.T) {
	tests := []struct {
		name      string
		lcAll     string
		firstLine string
	}{
		{"C locale", "C", "setlocale = C"},
		{"named locale", "en_US.UTF-8", "setlocale = en_US.UTF-8"},
		{"unsupported locale", "garbage", "setlocale = "},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("LC_ALL", tc.lcAll)

			var buf bytes.Buffer
			Report(&buf)

			lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
			if len(lines) != 4 {
				t.Fatalf("Report() wrote %d lines, want 4:\n%s", len(lines), buf.String())
			}
			if lines[0] != tc.firstLine {
				t.Errorf("first line = %q, want %q", lines[0], tc.firstLine)
			}

			// The comparison signs hold no matter the locale.
			want := []string{
				"strcmp(Android, .android) = 1",
				"strcmp(Android, android-studio) = -1",
				"strcmp(.android, android-studio) = -1",
			}
			for i, line := range lines[1:] {
				if line != want[i] {
					t.Errorf("line %d = %q, want %q", i+2, line, want[i])
				}
			}
		})
	}
}
