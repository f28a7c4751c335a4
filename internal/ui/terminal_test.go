package ui

import "testing"

func TestShouldUseColor_NoColorWins(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	if ShouldUseColor() {
		t.Error("expected NO_COLOR to disable color regardless of TTY")
	}
}

func TestTruncate(t *testing.T) {
	cases := []struct {
		in   string
		n    int
		want string
	}{
		{"short", 24, "short"},
		{"exactly-ten", 11, "exactly-ten"},
		{"a very long student name indeed", 10, "a very..."},
		{"abcd", 3, "abc"},
	}
	for _, c := range cases {
		if got := truncate(c.in, c.n); got != c.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", c.in, c.n, got, c.want)
		}
	}
}
