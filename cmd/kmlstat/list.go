package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/kmlstat"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := kmlstat.DocumentFilter{Limit: c.Limit}
	if c.Name != "" {
		filter.Name = &c.Name
	}

	docs, err := deps.Documents.FindDocuments(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", kmlstat.ErrorMessage(err))
		return err
	}

	if len(docs) == 0 {
		fmt.Fprintln(deps.Stdout, "No documents found. Use 'kmlstat import' to add one.")
		return nil
	}

	tw := newTable(deps.Stdout)
	fmt.Fprintln(tw, "ID\tName\tElements\tImported")
	for _, d := range docs {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", d.ID, d.Name, d.Result.Total(), d.CreatedAt.Local().Format(time.DateTime))
	}
	return tw.Flush()
}
