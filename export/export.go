// Package export writes extracted or translated content as JSON, JSON
// Lines, CSV or TSV rows, one row per content item.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/tsawler/bilingual/model"
)

// Format defines the available export formats
type Format int

const (
	// FormatJSON exports as a JSON array
	FormatJSON Format = iota
	// FormatJSONL exports as JSON Lines (one JSON object per line)
	FormatJSONL
	// FormatCSV exports as comma-separated values
	FormatCSV
	// FormatTSV exports as tab-separated values
	FormatTSV
)

// String returns a human-readable representation of the export format
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatJSONL:
		return "jsonl"
	case FormatCSV:
		return "csv"
	case FormatTSV:
		return "tsv"
	default:
		return "unknown"
	}
}

// FileExtension returns the typical file extension for this format
func (f Format) FileExtension() string {
	switch f {
	case FormatJSON:
		return ".json"
	case FormatJSONL:
		return ".jsonl"
	case FormatCSV:
		return ".csv"
	case FormatTSV:
		return ".tsv"
	default:
		return ".txt"
	}
}

// ParseFormat returns the format named s (json, jsonl, csv, tsv).
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "jsonl", "ndjson":
		return FormatJSONL, nil
	case "csv":
		return FormatCSV, nil
	case "tsv":
		return FormatTSV, nil
	default:
		return FormatJSON, fmt.Errorf("unsupported export format %q", s)
	}
}

// Config holds configuration options for export
type Config struct {
	// Format specifies the export format
	Format Format

	// PrettyPrint enables pretty printing for JSON formats
	PrettyPrint bool

	// IncludeHeader includes header row in CSV/TSV exports
	IncludeHeader bool

	// IncludeStyles adds the inline style column to CSV/TSV exports
	IncludeStyles bool
}

// DefaultConfig returns indented JSON.
func DefaultConfig() Config {
	return Config{
		Format:        FormatJSON,
		PrettyPrint:   true,
		IncludeHeader: true,
		IncludeStyles: false,
	}
}

// ConfigFor returns the default configuration for f.
func ConfigFor(f Format) Config {
	config := DefaultConfig()
	config.Format = f
	if f == FormatJSONL {
		config.PrettyPrint = false
	}
	return config
}

// Row is one exported item together with its position in the book.
type Row struct {
	ID         string            `json:"id"`
	OrderIndex int               `json:"order_index"`
	Chapter    int               `json:"chapter_number"`
	Type       model.ContentType `json:"type"`
	Original   string            `json:"original"`
	Translated string            `json:"translated,omitempty"`
	ClassName  string            `json:"className,omitempty"`
	TagName    string            `json:"tagName,omitempty"`
	Styles     string            `json:"styles,omitempty"`
}

// ContentRows converts extracted items. Translated is left empty.
func ContentRows(items []model.ContentItem) []Row {
	placements := model.Placements(items)
	rows := make([]Row, len(items))
	for i, item := range items {
		rows[i] = Row{
			ID:         item.ID,
			OrderIndex: placements[i].OrderIndex,
			Chapter:    placements[i].Chapter,
			Type:       item.Type,
			Original:   item.Content,
			ClassName:  item.ClassName,
			TagName:    item.TagName,
			Styles:     item.InlineStyle,
		}
	}
	return rows
}

// BilingualRows converts translated items. placements locate each item in
// the whole book and are matched by id, so pass model.Placements over the
// full extraction result when items is a chapter slice. Items without a
// placement are numbered from their position in items.
func BilingualRows(items []model.BilingualItem, placements []model.Placement) []Row {
	byID := make(map[string]model.Placement, len(placements))
	for _, p := range placements {
		byID[p.ItemID] = p
	}

	rows := make([]Row, len(items))
	chapter := 0
	for i, item := range items {
		if item.Type == model.Heading {
			chapter++
		}
		p, ok := byID[item.ID]
		if !ok {
			p = model.Placement{ItemID: item.ID, OrderIndex: i, Chapter: chapter}
		}
		rows[i] = Row{
			ID:         item.ID,
			OrderIndex: p.OrderIndex,
			Chapter:    p.Chapter,
			Type:       item.Type,
			Original:   item.Original,
			Translated: item.Translated,
			ClassName:  item.ClassName,
			TagName:    item.TagName,
			Styles:     item.Styles,
		}
	}
	return rows
}

// Exporter handles exporting rows to various formats
type Exporter struct {
	config Config
}

// NewExporter creates a new exporter with default configuration
func NewExporter() *Exporter {
	return &Exporter{
		config: DefaultConfig(),
	}
}

// NewExporterWithConfig creates an exporter with custom configuration
func NewExporterWithConfig(config Config) *Exporter {
	return &Exporter{
		config: config,
	}
}

// Export exports rows to the specified writer
func (e *Exporter) Export(rows []Row, w io.Writer) error {
	switch e.config.Format {
	case FormatJSON:
		return e.exportJSON(rows, w)
	case FormatJSONL:
		return e.exportJSONL(rows, w)
	case FormatCSV:
		return e.exportCSV(rows, w, ',')
	case FormatTSV:
		return e.exportCSV(rows, w, '\t')
	default:
		return fmt.Errorf("unsupported export format: %v", e.config.Format)
	}
}

// ExportToFile exports rows to a file
func (e *Exporter) ExportToFile(rows []Row, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	defer f.Close()

	return e.Export(rows, f)
}

// ExportToString exports rows to a string
func (e *Exporter) ExportToString(rows []Row) (string, error) {
	var buf bytes.Buffer
	if err := e.Export(rows, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// exportJSONL exports rows as JSON Lines (one JSON object per line)
func (e *Exporter) exportJSONL(rows []Row, w io.Writer) error {
	encoder := json.NewEncoder(w)
	if e.config.PrettyPrint {
		encoder.SetIndent("", "  ")
	}

	for i, row := range rows {
		if err := encoder.Encode(row); err != nil {
			return fmt.Errorf("encoding row %d: %w", i, err)
		}
	}

	return nil
}

// exportJSON exports rows as a JSON array
func (e *Exporter) exportJSON(rows []Row, w io.Writer) error {
	if rows == nil {
		rows = []Row{}
	}

	encoder := json.NewEncoder(w)
	if e.config.PrettyPrint {
		encoder.SetIndent("", "  ")
	}

	return encoder.Encode(rows)
}

// exportCSV exports rows as CSV or TSV
func (e *Exporter) exportCSV(rows []Row, w io.Writer, delimiter rune) error {
	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = delimiter

	if e.config.IncludeHeader {
		if err := csvWriter.Write(e.columns()); err != nil {
			return fmt.Errorf("writing CSV header: %w", err)
		}
	}

	for i, row := range rows {
		if err := csvWriter.Write(e.record(row)); err != nil {
			return fmt.Errorf("writing CSV row %d: %w", i, err)
		}
	}

	csvWriter.Flush()
	return csvWriter.Error()
}

func (e *Exporter) columns() []string {
	columns := []string{"id", "order_index", "chapter_number", "type", "original", "translated", "class_name", "tag_name"}
	if e.config.IncludeStyles {
		columns = append(columns, "styles")
	}
	return columns
}

func (e *Exporter) record(row Row) []string {
	record := []string{
		row.ID,
		strconv.Itoa(row.OrderIndex),
		strconv.Itoa(row.Chapter),
		string(row.Type),
		row.Original,
		row.Translated,
		row.ClassName,
		row.TagName,
	}
	if e.config.IncludeStyles {
		record = append(record, row.Styles)
	}
	return record
}
