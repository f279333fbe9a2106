package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/tsawler/bilingual"
	"github.com/tsawler/bilingual/export"
	"github.com/tsawler/bilingual/logger"
	"github.com/tsawler/bilingual/model"
	"github.com/tsawler/bilingual/translate"
)

func (a *app) extractCommand() *cobra.Command {
	var (
		output string
		format string
	)

	cmd := &cobra.Command{
		Use:   "extract <file.epub>",
		Short: "Extract title, author, styles and content as JSON",
		Long: `Extract the content of an EPUB book in reading order.

Examples:
  # Print the extraction result
  epubextract extract book.epub

  # Write it to a file, skipping non-linear spine items
  epubextract extract book.epub -o book.json --exclude-non-linear

  # One CSV row per item with order index and chapter number
  epubextract extract book.epub --format csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}

			result, warnings, err := bilingual.RequireContent(a.extractor(args[0]).Extract(cmd.Context()))
			a.logWarnings(warnings)
			if err != nil {
				return err
			}
			return a.writeTo(output, func(w io.Writer) error {
				if f == export.FormatJSON {
					return writeJSON(w, result)
				}
				return export.NewExporterWithConfig(export.ConfigFor(f)).Export(export.ContentRows(result.Content), w)
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format (json, jsonl, csv, tsv)")

	return cmd
}

func (a *app) chaptersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "chapters <file.epub>",
		Short: "List chapters as JSON",
		Long:  `List the chapters of an EPUB book. Each heading starts a chapter; content before the first heading is chapter 0.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			chapters, err := a.extractor(args[0]).Chapters(cmd.Context())
			if err != nil {
				return err
			}
			if chapters == nil {
				chapters = []model.Chapter{}
			}
			return writeJSON(a.out, chapters)
		},
	}
}

func (a *app) bilingualCommand() *cobra.Command {
	var (
		output  string
		format  string
		chapter int
	)

	cmd := &cobra.Command{
		Use:   "bilingual <file.epub>",
		Short: "Pair content with translations",
		Long: `Pair each content item with its translation, in the serving shape
{id, original, translated, type, className, tagName, styles}.

The built-in translator echoes the original text.

Examples:
  # All content as JSON
  epubextract bilingual book.epub

  # Chapter 3 as CSV
  epubextract bilingual book.epub --chapter 3 --format csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}

			result, warnings, err := bilingual.RequireContent(a.extractor(args[0]).Extract(cmd.Context()))
			a.logWarnings(warnings)
			if err != nil {
				return err
			}

			items := result.Content
			if cmd.Flags().Changed("chapter") {
				items = model.ChapterSlice(items, chapter)
				if items == nil {
					return fmt.Errorf("chapter %d not found", chapter)
				}
			}

			// Echo is local, no pacing
			cfg := a.cfg.AlignerConfig()
			cfg.RatePerSecond = -1
			aligner := translate.NewAligner(translate.Echo{}, cfg, a.log)

			translations, err := aligner.TranslateWithProgress(cmd.Context(), model.Texts(items), a.cfg.TranslateOptions(), func(p int) {
				a.log.Debug("Translation progress", logger.Int("percent", p))
			})
			if err != nil {
				return err
			}

			pairs, err := model.Bilingual(items, translations)
			if err != nil {
				return err
			}

			return a.writeTo(output, func(w io.Writer) error {
				if f == export.FormatJSON {
					return writeJSON(w, pairs)
				}
				rows := export.BilingualRows(pairs, model.Placements(result.Content))
				return export.NewExporterWithConfig(export.ConfigFor(f)).Export(rows, w)
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format (json, jsonl, csv, tsv)")
	cmd.Flags().IntVarP(&chapter, "chapter", "c", 0, "only this chapter (0 is the content before the first heading)")

	return cmd
}

// writeTo calls write with the named file, or with stdout when name is empty.
func (a *app) writeTo(name string, write func(io.Writer) error) error {
	if name == "" {
		return write(a.out)
	}

	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
