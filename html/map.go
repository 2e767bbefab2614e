// Package html renders extracted elements as a standalone Leaflet map page.
package html

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/kmlstat"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Ensure MapRenderer implements kmlstat.Renderer at compile time.
var _ kmlstat.Renderer = (*MapRenderer)(nil)

// Leaflet assets and default view.
const (
	LeafletCSS   = "https://unpkg.com/leaflet@1.9.4/dist/leaflet.css"
	LeafletJS    = "https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"
	TileURL      = "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png"
	DefaultZoom  = 2
	DefaultTitle = "KML Map"
)

// mapScript draws the layers described by the view variable.
const mapScript = `const map = L.map('map').setView(view.center, view.zoom);
L.tileLayer(view.tiles, {attribution: '&copy; OpenStreetMap contributors'}).addTo(map);
for (const l of view.layers) {
  let layer;
  if (l.kind === 'marker') {
    layer = L.marker(l.points[0]);
  } else if (l.kind === 'path') {
    layer = L.polyline(l.points, {color: l.color});
  } else {
    layer = L.polygon(l.points, {color: l.color});
  }
  layer.bindPopup(l.popup).addTo(map);
}
if (view.bounds) {
  map.fitBounds(view.bounds);
}
`

// MapRenderer writes an HTML page that draws shapes on an OpenStreetMap
// base layer. Popup titles are escaped; description markup is kept but
// sanitized.
type MapRenderer struct {
	Title string

	policy *bluemonday.Policy
}

// NewMapRenderer creates a new MapRenderer.
func NewMapRenderer() *MapRenderer {
	return &MapRenderer{Title: DefaultTitle}
}

// layer is the JSON form of a shape. Points are [lat, lon] as Leaflet expects.
type layer struct {
	Kind   string       `json:"kind"`
	Points [][2]float64 `json:"points"`
	Color  string       `json:"color,omitempty"`
	Popup  string       `json:"popup"`
}

type view struct {
	Tiles  string         `json:"tiles"`
	Center [2]float64     `json:"center"`
	Zoom   int            `json:"zoom"`
	Bounds *[2][2]float64 `json:"bounds,omitempty"`
	Layers []layer        `json:"layers"`
}

// Render writes the map page to w.
func (r *MapRenderer) Render(w io.Writer, shapes []kmlstat.Shape, bounds kmlstat.Bounds) error {
	v := view{Tiles: TileURL, Zoom: DefaultZoom, Layers: []layer{}}
	if bounds.Valid() {
		v.Bounds = &[2][2]float64{
			{bounds.MinLat, bounds.MinLon},
			{bounds.MaxLat, bounds.MaxLon},
		}
	}

	policy := r.policy
	if policy == nil {
		policy = bluemonday.UGCPolicy()
	}

	for _, s := range shapes {
		l, ok, err := toLayer(s, policy)
		if err != nil {
			return err
		}
		if ok {
			v.Layers = append(v.Layers, l)
		}
	}

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode map data: %w", err)
	}

	title := r.Title
	if title == "" {
		title = DefaultTitle
	}

	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	doc.AppendChild(element(atom.Html, nil,
		element(atom.Head, nil,
			element(atom.Meta, []html.Attribute{{Key: "charset", Val: "utf-8"}}),
			element(atom.Title, nil, text(title)),
			element(atom.Link, []html.Attribute{{Key: "rel", Val: "stylesheet"}, {Key: "href", Val: LeafletCSS}}),
			element(atom.Style, nil, text("html, body, #map { height: 100%; margin: 0; }")),
		),
		element(atom.Body, nil,
			element(atom.Div, []html.Attribute{{Key: "id", Val: "map"}}),
			element(atom.Script, []html.Attribute{{Key: "src", Val: LeafletJS}}),
			element(atom.Script, nil, text("const view = "+string(data)+";\n"+mapScript)),
		),
	))

	if err := html.Render(w, doc); err != nil {
		return fmt.Errorf("failed to write map: %w", err)
	}
	return nil
}

// toLayer converts a shape, dropping coordinates that are not finite.
// Shapes left without points are skipped.
func toLayer(s kmlstat.Shape, policy *bluemonday.Policy) (layer, bool, error) {
	points := make([][2]float64, 0, len(s.Points))
	for _, c := range s.Points {
		if !c.IsFinite() {
			continue
		}
		points = append(points, [2]float64{c.Lat, c.Lon})
	}
	if len(points) == 0 {
		return layer{}, false, nil
	}

	popup, err := renderPopup(s.Popup, policy)
	if err != nil {
		return layer{}, false, err
	}

	return layer{
		Kind:   s.Kind.String(),
		Points: points,
		Color:  s.Color,
		Popup:  popup,
	}, true, nil
}

// renderPopup renders the popup as an h3 title followed by the description
// and length when present.
func renderPopup(p kmlstat.Popup, policy *bluemonday.Policy) (string, error) {
	nodes := []*html.Node{element(atom.H3, nil, text(p.Title))}
	if strings.TrimSpace(p.Description) != "" {
		desc, err := description(p.Description, policy)
		if err != nil {
			return "", err
		}
		nodes = append(nodes, desc)
	}
	if p.Length != "" {
		nodes = append(nodes, element(atom.P, nil, text(p.Length)))
	}

	var b strings.Builder
	for _, n := range nodes {
		if err := html.Render(&b, n); err != nil {
			return "", fmt.Errorf("failed to render popup: %w", err)
		}
	}
	return b.String(), nil
}

// description sanitizes markup and parses it into a div.
func description(markup string, policy *bluemonday.Policy) (*html.Node, error) {
	div := element(atom.Div, nil)
	children, err := html.ParseFragment(strings.NewReader(policy.Sanitize(markup)), div)
	if err != nil {
		return nil, fmt.Errorf("failed to parse description: %w", err)
	}
	for _, c := range children {
		div.AppendChild(c)
	}
	return div, nil
}

func element(a atom.Atom, attrs []html.Attribute, children ...*html.Node) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
	for _, c := range children {
		n.AppendChild(c)
	}
	return n
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
