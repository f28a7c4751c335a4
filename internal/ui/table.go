package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/alfredjeanlab/rollcall/internal/model"
)

// WriteRosterTable renders the roster as a fixed-column text table.
func WriteRosterTable(w io.Writer, students []model.Student) {
	fmt.Fprintf(w, "%-10s %-24s %-6s %-8s %s\n",
		RenderMuted("ID"), RenderMuted("NAME"), RenderMuted("FP"), RenderMuted("STATUS"), RenderMuted("LAST SCAN"))

	for _, s := range students {
		status := s.Status.String()
		if s.Status == model.StatusPresent {
			status = RenderPresent(status)
		} else {
			status = RenderMuted(status)
		}
		fmt.Fprintf(w, "%-10s %-24s %-6d %-8s %s\n",
			RenderAccent(s.StudentID), truncate(s.Name, 24), s.FingerprintID, status, s.LastScan)
	}
	if len(students) == 0 {
		fmt.Fprintln(w, RenderMuted("(no students enrolled)"))
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 3 {
		return s[:n]
	}
	return strings.TrimSpace(s[:n-3]) + "..."
}
