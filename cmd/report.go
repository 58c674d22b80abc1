package cmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	headerColor = color.New(color.FgCyan, color.Bold)
	tableColor  = color.New(color.Bold)
	countColor  = color.New(color.FgGreen)
	emptyColor  = color.New(color.Faint)
)

// printReport writes the console summary of one replayed session.
func printReport(w io.Writer, r *ReplayResult) {
	headerColor.Fprintf(w, "=== %s ===\n", r.Name)
	fmt.Fprintf(w, "log:      %s\n", r.Path)
	fmt.Fprintf(w, "session:  %s\n", r.SessionID)
	fmt.Fprintf(w, "events:   %d\n", r.Events)
	printRows(w, "GetSolution", r.Get)
	printRows(w, "EnqueueSolution", r.Enqueue)
}

func printRows(w io.Writer, title string, rows []ReportRow) {
	tableColor.Fprintf(w, "%s (%d solutions)\n", title, len(rows))
	if len(rows) == 0 {
		emptyColor.Fprintln(w, "  (none)")
		return
	}
	for _, row := range rows {
		fmt.Fprintf(w, "  [%d] %-32s ", row.ID, row.Name)
		countColor.Fprintf(w, "x%d\n", row.Count)
	}
}
