package main

import (
	"net/url"
	"path"

	kmlhttp "github.com/fwojciec/kmlstat/http"
)

// baseName returns p unchanged for local paths and the last path segment
// for URLs, so downloaded documents are named and mapped locally.
func baseName(p string) string {
	if !kmlhttp.IsURL(p) {
		return p
	}
	u, err := url.Parse(p)
	if err != nil || path.Base(u.Path) == "/" || path.Base(u.Path) == "." {
		return "document.kml"
	}
	return path.Base(u.Path)
}
