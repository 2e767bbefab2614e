package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/fwojciec/kmlstat"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// writeSummary prints the per-kind counts followed by the element total.
func writeSummary(w io.Writer, s kmlstat.Summary) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "Type\tCount")
	for _, row := range s.Rows {
		fmt.Fprintf(tw, "%s\t%d\n", row.Kind, row.Count)
	}
	fmt.Fprintf(tw, "Total\t%d\n", s.Total)
	return tw.Flush()
}

// writeDetails prints the length table. The total row is shown only when
// there is at least one row.
func writeDetails(w io.Writer, d kmlstat.Details) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "Name\tType\tLength (km)")
	for _, row := range d.Rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", row.Name, row.Kind, kmlstat.FormatKm(row.Length))
	}
	if len(d.Rows) > 0 {
		fmt.Fprintf(tw, "Total Length\t\t%s\n", kmlstat.FormatKm(d.TotalLength))
	}
	return tw.Flush()
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	if n < 4 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}
