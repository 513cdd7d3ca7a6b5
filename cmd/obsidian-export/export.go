// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/obsidian-export/internal/export"
	"github.com/pdiddy/obsidian-export/internal/render"
)

var exportCmd = &cobra.Command{
	Use:   "export [notes...]",
	Short: "Export notes to PDF",
	Long: `Export normalizes each note, writes "<name> pandoc export.md" into the
note's Attachments directory, renders "<name>.pdf" there with pandoc, and
removes the temporary Markdown file. With --vault, every note under the
directory is exported and failures are summarized instead of stopping the run.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().String("vault", "", "export every note under this directory")
	exportCmd.Flags().String("pandoc", "", "pandoc binary (default \"pandoc\")")
	exportCmd.Flags().String("template", "", "pandoc template (default: eisvogel.tex next to this executable)")
	exportCmd.Flags().String("pdf-engine", "", "pandoc PDF engine (default \"xelatex\")")
	exportCmd.Flags().Bool("title", false, "add a title from the file name when the note has none")

	_ = viper.BindPFlag("pandoc.binary", exportCmd.Flags().Lookup("pandoc"))
	_ = viper.BindPFlag("pandoc.template", exportCmd.Flags().Lookup("template"))
	_ = viper.BindPFlag("pandoc.pdf_engine", exportCmd.Flags().Lookup("pdf-engine"))
	_ = viper.BindPFlag("default_title", exportCmd.Flags().Lookup("title"))

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	vault, _ := cmd.Flags().GetString("vault")
	if len(args) == 0 && vault == "" {
		return fmt.Errorf("provide one or more note paths, or --vault")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	pandoc := render.NewPandoc(cfg.Pandoc.Binary, cfg.Pandoc.PDFEngine, os.Stdout, os.Stderr)
	if err := pandoc.Available(); err != nil {
		return err
	}

	exporter, err := export.NewExporter(pandoc, cfg, os.Stdout)
	if err != nil {
		return err
	}

	notes := args
	if vault != "" {
		found, err := export.CollectNotes(vault, cfg.AttachmentsDir)
		if err != nil {
			return err
		}
		notes = append(notes, found...)
	}

	if len(notes) == 1 {
		_, err := exporter.ExportFile(notes[0])
		return err
	}

	result := exporter.ExportBatch(notes)
	if result.HasFailures() {
		return fmt.Errorf("%d note(s) failed export", result.Failed)
	}
	return nil
}
