package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsawler/bilingual/model"
)

func createTestItems() []model.ContentItem {
	return []model.ContentItem{
		{ID: "content-1", Type: model.Paragraph, Content: "A dedication.", TagName: "p"},
		{ID: "content-2", Type: model.Heading, Content: "Chapter One", TagName: "h1"},
		{ID: "content-3", Type: model.Paragraph, Content: "She said, \"hello\".", TagName: "p", ClassName: "dialogue", InlineStyle: "font-style: italic"},
		{ID: "content-4", Type: model.Heading, Content: "Chapter Two", TagName: "h1"},
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		f    Format
		ext  string
	}{
		{"json", FormatJSON, ".json"},
		{"jsonl", FormatJSONL, ".jsonl"},
		{"csv", FormatCSV, ".csv"},
		{"tsv", FormatTSV, ".tsv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.f.String())
			assert.Equal(t, tt.ext, tt.f.FileExtension())

			parsed, err := ParseFormat(strings.ToUpper(tt.name))
			require.NoError(t, err)
			assert.Equal(t, tt.f, parsed)
		})
	}

	_, err := ParseFormat("xml")
	assert.Error(t, err)
	assert.Equal(t, "unknown", Format(99).String())
}

func TestContentRows(t *testing.T) {
	rows := ContentRows(createTestItems())

	require.Len(t, rows, 4)
	assert.Equal(t, 0, rows[0].Chapter)
	assert.Equal(t, 1, rows[1].Chapter)
	assert.Equal(t, 1, rows[2].Chapter)
	assert.Equal(t, 2, rows[3].Chapter)
	assert.Equal(t, 2, rows[2].OrderIndex)
	assert.Equal(t, "font-style: italic", rows[2].Styles)
	assert.Empty(t, rows[2].Translated)
}

func TestBilingualRows(t *testing.T) {
	book := createTestItems()
	items, err := model.Bilingual(book[3:], []string{"Chapitre deux"})
	require.NoError(t, err)

	rows := BilingualRows(items, model.Placements(book))

	require.Len(t, rows, 1)
	assert.Equal(t, Row{ID: "content-4", OrderIndex: 3, Chapter: 2, Type: model.Heading, Original: "Chapter Two", Translated: "Chapitre deux", TagName: "h1"}, rows[0])
}

func TestBilingualRowsWithoutPlacements(t *testing.T) {
	items, err := model.Bilingual(createTestItems()[1:3], []string{"Chapitre un", "Elle a dit « bonjour »."})
	require.NoError(t, err)

	rows := BilingualRows(items, nil)

	require.Len(t, rows, 2)
	assert.Equal(t, 0, rows[0].OrderIndex)
	assert.Equal(t, 1, rows[0].Chapter)
	assert.Equal(t, 1, rows[1].OrderIndex)
	assert.Equal(t, 1, rows[1].Chapter)
	assert.Equal(t, "Elle a dit « bonjour ».", rows[1].Translated)
}

func TestExportJSON(t *testing.T) {
	out, err := NewExporter().ExportToString(ContentRows(createTestItems()))
	require.NoError(t, err)

	var rows []Row
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	assert.Len(t, rows, 4)
	assert.Contains(t, out, "\n  ")

	empty, err := NewExporter().ExportToString(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", empty)
}

func TestExportJSONL(t *testing.T) {
	out, err := NewExporterWithConfig(ConfigFor(FormatJSONL)).ExportToString(ContentRows(createTestItems()))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], `{"id":"content-1"`))
}

func TestExportCSV(t *testing.T) {
	out, err := NewExporterWithConfig(ConfigFor(FormatCSV)).ExportToString(ContentRows(createTestItems()))
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 5)
	assert.Equal(t, []string{"id", "order_index", "chapter_number", "type", "original", "translated", "class_name", "tag_name"}, records[0])
	assert.Equal(t, []string{"content-3", "2", "1", "paragraph", "She said, \"hello\".", "", "dialogue", "p"}, records[3])
}

func TestExportTSVWithStyles(t *testing.T) {
	cfg := ConfigFor(FormatTSV)
	cfg.IncludeStyles = true
	cfg.IncludeHeader = false

	out, err := NewExporterWithConfig(cfg).ExportToString(ContentRows(createTestItems()))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasSuffix(lines[2], "\tfont-style: italic"))
}

func TestExportUnsupported(t *testing.T) {
	_, err := NewExporterWithConfig(Config{Format: Format(42)}).ExportToString(nil)
	assert.Error(t, err)
}

func TestExportToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book"+FormatJSONL.FileExtension())

	require.NoError(t, NewExporterWithConfig(ConfigFor(FormatJSONL)).ExportToFile(ContentRows(createTestItems()), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 4, strings.Count(string(data), "\n"))
}
