package main

import "testing"

func TestExportTarget(t *testing.T) {
	cases := []struct {
		format, output string
		wantOut        string
		wantErr        bool
	}{
		{"csv", "", "attendance_data.csv", false},
		{"jsonl", "", "attendance_data.jsonl", false},
		{"csv", "today.csv", "today.csv", false},
		{"xlsx", "", "", true},
		{"", "", "", true},
	}
	for _, c := range cases {
		out, write, err := exportTarget(c.format, c.output)
		if c.wantErr {
			if err == nil {
				t.Errorf("exportTarget(%q, %q): expected error", c.format, c.output)
			}
			continue
		}
		if err != nil {
			t.Errorf("exportTarget(%q, %q): %v", c.format, c.output, err)
			continue
		}
		if out != c.wantOut {
			t.Errorf("exportTarget(%q, %q) = %q, want %q", c.format, c.output, out, c.wantOut)
		}
		if write == nil {
			t.Errorf("exportTarget(%q, %q): nil writer", c.format, c.output)
		}
	}
}
