package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fwojciec/kmlstat"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	doc, err := deps.Documents.FindDocumentByID(deps.Ctx, c.ID)
	if err != nil {
		if kmlstat.ErrorCode(err) == kmlstat.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: document %q not found. Use 'kmlstat list' to see stored documents.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", kmlstat.ErrorMessage(err))
		}
		return err
	}

	if c.Markdown {
		report, err := markdownReport(doc, deps.Markdown)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", kmlstat.ErrorMessage(err))
			return err
		}
		_, err = io.WriteString(deps.Stdout, report)
		return err
	}

	fmt.Fprintf(deps.Stdout, "%s (%s)\nImported %s\n\n", doc.Name, doc.ID, doc.CreatedAt.Local().Format(time.DateTime))
	if err := writeSummary(deps.Stdout, kmlstat.Summarize(doc.Result)); err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout)
	return writeDetails(deps.Stdout, kmlstat.Detail(doc.Result))
}

// markdownReport renders a stored document as Markdown: a count table
// followed by one section per element with its converted description.
func markdownReport(doc *kmlstat.Document, conv kmlstat.Converter) (string, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", doc.Name)

	summary := kmlstat.Summarize(doc.Result)
	b.WriteString("| Type | Count |\n|------|------:|\n")
	for _, row := range summary.Rows {
		fmt.Fprintf(&b, "| %s | %d |\n", row.Kind, row.Count)
	}
	fmt.Fprintf(&b, "| **Total** | %d |\n", summary.Total)

	details := kmlstat.Detail(doc.Result)
	if len(details.Rows) > 0 {
		fmt.Fprintf(&b, "\nTotal length: %s km\n", kmlstat.FormatKm(details.TotalLength))
	}

	if len(doc.Result.Elements) > 0 {
		b.WriteString("\n## Elements\n")
	}
	for _, e := range doc.Result.Elements {
		popup := kmlstat.PopupFor(&e)
		fmt.Fprintf(&b, "\n### %s\n\n", popup.Title)
		fmt.Fprintf(&b, "- Type: %s\n- Points: %d\n", e.Kind, len(e.Coordinates))
		if popup.Length != "" {
			fmt.Fprintf(&b, "- %s\n", popup.Length)
		}

		desc, err := conv.Convert(e.Description)
		if err != nil {
			return "", err
		}
		if desc != "" {
			fmt.Fprintf(&b, "\n%s\n", desc)
		}
	}

	return b.String(), nil
}
