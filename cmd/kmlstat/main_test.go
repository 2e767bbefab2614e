package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	main "github.com/fwojciec/kmlstat/cmd/kmlstat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const trailKML = `<?xml version="1.0" encoding="UTF-8"?>
<kml xmlns="http://www.opengis.net/kml/2.2">
  <Document>
    <Placemark>
      <name>Hut</name>
      <description><![CDATA[<b>Sleeps</b> 12]]></description>
      <Point><coordinates>0.5,0.5</coordinates></Point>
    </Placemark>
    <Placemark>
      <name>Ridge</name>
      <LineString><coordinates>0,0 0,1</coordinates></LineString>
    </Placemark>
  </Document>
</kml>`

// writeKML writes content to name inside dir and returns the path.
func writeKML(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// run executes the CLI against a temporary database.
func run(t *testing.T, dbPath string, args ...string) (string, string, error) {
	t.Helper()
	m := main.NewMain()
	m.DBPath = dbPath
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	err := m.Run(context.Background(), args, stdout, stderr)
	return stdout.String(), stderr.String(), err
}

func TestMain_Run_Summary(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	good := writeKML(t, dir, "trail.kml", trailKML)
	bad := writeKML(t, dir, "broken.kml", "<kml><Placemark>")

	stdout, stderr, err := run(t, filepath.Join(dir, "unused.db"), "summary", good, bad)

	require.Error(t, err)
	assert.Contains(t, stdout, "Point")
	assert.Contains(t, stdout, "LineString")
	assert.Contains(t, stderr, "error: "+bad+": failed to parse KML document")

	// No database is created for file commands
	_, statErr := os.Stat(filepath.Join(dir, "unused.db"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestMain_Run_Details(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeKML(t, dir, "trail.kml", trailKML)

	stdout, _, err := run(t, filepath.Join(dir, "unused.db"), "details", path)

	require.NoError(t, err)
	assert.Regexp(t, `Ridge\s+LineString\s+111\.19`, stdout)
	assert.Regexp(t, `Total Length\s+111\.19`, stdout)
}

func TestMain_Run_RejectsNonKML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeKML(t, dir, "trail.gpx", trailKML)

	_, stderr, err := run(t, filepath.Join(dir, "unused.db"), "details", path)

	require.Error(t, err)
	assert.Contains(t, stderr, "only .kml files are supported")
}

func TestMain_Run_Map(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeKML(t, dir, "trail.kml", trailKML)

	stdout, _, err := run(t, filepath.Join(dir, "unused.db"), "--debug", "map", path)

	require.NoError(t, err)
	want := filepath.Join(dir, "trail.html")
	assert.Contains(t, stdout, want)

	page, err := os.ReadFile(want)
	require.NoError(t, err)
	assert.Contains(t, string(page), "leaflet")
	assert.Contains(t, string(page), "Ridge")
}

func TestMain_Run_Query(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeKML(t, dir, "trail.kml", trailKML)

	stdout, _, err := run(t, filepath.Join(dir, "unused.db"), "query", path, "--bbox=0.4,0.4,0.6,0.6")

	require.NoError(t, err)
	assert.Regexp(t, `Hut\s+Point\s+1\s+Sleeps 12`, stdout)
	assert.NotContains(t, stdout, "Ridge")
	assert.Contains(t, stdout, "1 of 2 elements")
}

func TestMain_Run_History(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	dbPath := filepath.Join(dir, "history.db")
	path := writeKML(t, dir, "trail.kml", trailKML)

	// Import
	stdout, _, err := run(t, dbPath, "import", path)
	require.NoError(t, err)
	match := regexp.MustCompile(`as (\S+) \(2 elements`).FindStringSubmatch(stdout)
	require.Len(t, match, 2, stdout)
	id := match[1]

	// Duplicate import is rejected
	_, stderr, err := run(t, dbPath, "import", path)
	require.Error(t, err)
	assert.Contains(t, stderr, "already imported as "+id)

	// List
	stdout, _, err = run(t, dbPath, "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, id)
	assert.Contains(t, stdout, "trail.kml")

	// Show
	stdout, _, err = run(t, dbPath, "show", id, "--markdown")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "# trail.kml\n"), stdout)
	assert.Contains(t, stdout, "**Sleeps** 12")

	// Delete
	_, _, err = run(t, dbPath, "delete", id, "--force")
	require.NoError(t, err)

	stdout, _, err = run(t, dbPath, "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "No documents found")
}
