package main

import (
	"fmt"

	"github.com/fwojciec/kmlstat"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return kmlstat.Errorf(kmlstat.EINVALID, "use --force to confirm deletion")
	}

	doc, err := deps.Documents.FindDocumentByID(deps.Ctx, c.ID)
	if err != nil {
		if kmlstat.ErrorCode(err) == kmlstat.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: document %q not found. Use 'kmlstat list' to see stored documents.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", kmlstat.ErrorMessage(err))
		}
		return err
	}

	if err := deps.Documents.DeleteDocument(deps.Ctx, doc.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", kmlstat.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted document %q (%s)\n", doc.Name, doc.ID)
	return nil
}
