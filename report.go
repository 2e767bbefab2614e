package kmlstat

import "strconv"

// UnnamedLabel is shown in place of an empty element name.
const UnnamedLabel = "Unnamed"

// Summary is the per-kind count table of a result.
type Summary struct {
	Rows  []SummaryRow
	Total int
}

// SummaryRow is one line of a Summary.
type SummaryRow struct {
	Kind  Kind
	Count int
}

// Summarize builds the count table for r. Rows follow Kinds() order and
// include only kinds that were counted. Total is the number of elements,
// not the sum of counts.
func Summarize(r *Result) Summary {
	s := Summary{Total: r.Total()}
	for _, k := range Kinds() {
		if n, ok := r.Counts[k]; ok {
			s.Rows = append(s.Rows, SummaryRow{Kind: k, Count: n})
		}
	}
	return s
}

// Details is the length table of a result.
type Details struct {
	Rows        []DetailRow
	TotalLength float64
}

// DetailRow is one line of Details.
type DetailRow struct {
	Name   string
	Kind   Kind
	Length float64
}

// Detail builds the length table for r from the elements that carry a
// length, in element order.
func Detail(r *Result) Details {
	var d Details
	for _, e := range r.Elements {
		if e.Length == nil {
			continue
		}
		name := e.Name
		if name == "" {
			name = UnnamedLabel
		}
		d.Rows = append(d.Rows, DetailRow{Name: name, Kind: e.Kind, Length: *e.Length})
		d.TotalLength += *e.Length
	}
	return d
}

// FormatKm formats a length in kilometers with two decimals.
func FormatKm(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// Popup is the summary shown for an element on a map.
type Popup struct {
	Title       string
	Description string
	Length      string
}

// PopupFor builds the popup of e. The title falls back to the kind when the
// element is unnamed; Length is empty for elements without a length.
func PopupFor(e *Element) Popup {
	p := Popup{Title: e.Name, Description: e.Description}
	if p.Title == "" {
		p.Title = string(e.Kind)
	}
	if e.Length != nil {
		p.Length = "Length: " + FormatKm(*e.Length) + " km"
	}
	return p
}
