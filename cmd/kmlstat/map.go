package main

import (
	"fmt"
	"io"

	"github.com/fwojciec/kmlstat"
	"github.com/fwojciec/kmlstat/fs"
)

// Run executes the map command.
func (c *MapCmd) Run(deps *Dependencies) error {
	result, err := extractFile(deps, c.File)
	if err != nil {
		return err
	}

	output := c.Output
	if output == "" {
		output = fs.OutputPath(baseName(c.File), ".html")
	}

	shapes := kmlstat.Shapes(result.Elements)
	bounds := kmlstat.BoundsOf(result.Elements)
	if err := deps.Writer.WriteFile(output, func(w io.Writer) error {
		return deps.Renderer.Render(w, shapes, bounds)
	}); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", kmlstat.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Wrote map of %d elements to %s\n", len(shapes), output)
	return nil
}
