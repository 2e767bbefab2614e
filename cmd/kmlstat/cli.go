package main

import (
	"context"
	"io"

	"github.com/fwojciec/kmlstat"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Reader    kmlstat.DocumentReader
	Writer    kmlstat.FileWriter
	Extractor kmlstat.ExtractionService
	Renderer  kmlstat.Renderer
	Text      kmlstat.Converter
	Markdown  kmlstat.Converter
	Documents kmlstat.DocumentService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Debug bool `help:"Log service calls to stderr"`

	Summary SummaryCmd `cmd:"" help:"Show element counts for KML files"`
	Details DetailsCmd `cmd:"" help:"Show path lengths for a KML file"`
	Map     MapCmd     `cmd:"" help:"Write an HTML map of a KML file"`
	Query   QueryCmd   `cmd:"" help:"List elements inside a bounding box"`
	Import  ImportCmd  `cmd:"" help:"Extract KML files and store the results"`
	List    ListCmd    `cmd:"" help:"List stored documents"`
	Show    ShowCmd    `cmd:"" help:"Show a stored document"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a stored document"`
}

// SummaryCmd is the "summary" subcommand.
type SummaryCmd struct {
	Files       []string `arg:"" help:"KML files"`
	Concurrency int      `short:"c" default:"4" help:"Files processed at once"`
}

// DetailsCmd is the "details" subcommand.
type DetailsCmd struct {
	File string `arg:"" help:"KML file"`
}

// MapCmd is the "map" subcommand.
type MapCmd struct {
	File   string `arg:"" help:"KML file"`
	Output string `short:"o" help:"Output path (default: FILE with .html extension)"`
}

// QueryCmd is the "query" subcommand.
type QueryCmd struct {
	File string    `arg:"" help:"KML file"`
	BBox []float64 `name:"bbox" required:"" help:"Bounding box as minLon,minLat,maxLon,maxLat"`
}

// ImportCmd is the "import" subcommand.
type ImportCmd struct {
	Files       []string `arg:"" help:"KML files"`
	Concurrency int      `short:"c" default:"4" help:"Files processed at once"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Name  string `help:"Only documents with this file name"`
	Limit int    `short:"n" help:"Maximum number of documents"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID       string `arg:"" help:"Document ID"`
	Markdown bool   `short:"m" help:"Render a Markdown report"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Document ID"`
	Force bool   `help:"Confirm deletion"`
}
