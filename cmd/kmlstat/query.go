package main

import (
	"fmt"

	"github.com/fwojciec/kmlstat"
	"github.com/fwojciec/kmlstat/rtree"
)

// descriptionWidth caps the description column.
const descriptionWidth = 48

// Run executes the query command.
func (c *QueryCmd) Run(deps *Dependencies) error {
	bounds, err := parseBBox(c.BBox)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", kmlstat.ErrorMessage(err))
		return err
	}

	result, err := extractFile(deps, c.File)
	if err != nil {
		return err
	}

	elements := rtree.NewIndex(result.Elements).Search(bounds)
	if len(elements) == 0 {
		fmt.Fprintln(deps.Stdout, "No elements in bounding box.")
		return nil
	}

	tw := newTable(deps.Stdout)
	fmt.Fprintln(tw, "Name\tType\tPoints\tDescription")
	for _, e := range elements {
		name := e.Name
		if name == "" {
			name = kmlstat.UnnamedLabel
		}
		desc, err := deps.Text.Convert(e.Description)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", name, e.Kind, len(e.Coordinates), truncate(desc, descriptionWidth))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "\n%d of %d elements\n", len(elements), result.Total())
	return nil
}

// parseBBox converts minLon,minLat,maxLon,maxLat into bounds.
func parseBBox(v []float64) (kmlstat.Bounds, error) {
	if len(v) != 4 {
		return kmlstat.Bounds{}, kmlstat.Errorf(kmlstat.EINVALID, "bbox needs 4 values (minLon,minLat,maxLon,maxLat), got %d", len(v))
	}
	b := kmlstat.Bounds{MinLon: v[0], MinLat: v[1], MaxLon: v[2], MaxLat: v[3]}
	if !b.Valid() {
		return kmlstat.Bounds{}, kmlstat.Errorf(kmlstat.EINVALID, "bbox minimums must not exceed maximums")
	}
	return b, nil
}
