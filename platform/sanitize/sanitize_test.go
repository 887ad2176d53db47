package sanitize

import "testing"

func TestStripHTML(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain text", "good bricks", "good bricks"},
		{"tags removed", "<b>good</b> bricks", "good bricks"},
		{"script removed", "<script>alert(1)</script>ok", "alert(1)ok"},
		{"encoded tag caught", "&lt;img src=x onerror=alert(1)&gt;", ""},
		{"entities decoded", "Tom &amp; Sons", "Tom & Sons"},
		{"whitespace trimmed", "  hello  ", "hello"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := StripHTML(tc.in); got != tc.want {
				t.Fatalf("StripHTML(%q): expected %q, got %q", tc.in, tc.want, got)
			}
		})
	}
}

func TestTextPtr(t *testing.T) {
	if TextPtr(nil) != nil {
		t.Fatal("expected nil passthrough")
	}

	in := "<i>nice</i>"
	got := TextPtr(&in)
	if got == nil || *got != "nice" {
		t.Fatalf("expected nice, got %v", got)
	}
}
