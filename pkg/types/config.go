// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds configuration and result types shared by the export
// pipeline and the CLI.
package types

// PandocConfig holds settings for the pandoc renderer.
type PandocConfig struct {
	// Binary is the pandoc executable name or path (default "pandoc").
	Binary string `json:"binary" yaml:"binary" mapstructure:"binary"`

	// Template is the pandoc template path. Empty selects eisvogel.tex next
	// to the obsidian-export executable.
	Template string `json:"template" yaml:"template" mapstructure:"template"`

	// PDFEngine is passed as --pdf-engine (default "xelatex").
	PDFEngine string `json:"pdf_engine" yaml:"pdf_engine" mapstructure:"pdf_engine"`

	// ExtraFlags are appended to the fixed pandoc argument list.
	ExtraFlags []string `json:"extra_flags,omitempty" yaml:"extra_flags,omitempty" mapstructure:"extra_flags"`
}

// ExportConfig holds settings for exporting notes to PDF.
type ExportConfig struct {
	Pandoc PandocConfig `json:"pandoc" yaml:"pandoc" mapstructure:"pandoc"`

	// AttachmentsDir is the directory, relative to each note, that receives
	// the temporary Markdown file and the PDF (default "Attachments").
	AttachmentsDir string `json:"attachments_dir" yaml:"attachments_dir" mapstructure:"attachments_dir"`

	// DefaultTitle adds a title front matter field derived from the note
	// file name when the note does not declare one.
	DefaultTitle bool `json:"default_title" yaml:"default_title" mapstructure:"default_title"`
}

// DefaultAttachmentsDir is the output directory name used when
// ExportConfig.AttachmentsDir is empty.
const DefaultAttachmentsDir = "Attachments"

// ExportStatus is the outcome of exporting one note.
type ExportStatus string

const (
	ExportDone   ExportStatus = "exported"
	ExportFailed ExportStatus = "failed"
)
