// Package kmlstat extracts geometry from KML documents and derives
// per-element metrics: geometry kind, coordinates, geodesic path length and
// per-kind record counts.
//
// This package contains domain types, interfaces and the pure extraction
// pipeline following Ben Johnson's Standard Package Layout. Implementations
// live in subdirectories named after their primary dependency (e.g.,
// etree/, sqlite/, rtree/).
package kmlstat
