// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export turns Obsidian notes into PDFs: it normalizes the note,
// writes the result to a temporary Markdown file in the note's attachments
// directory, renders it, and removes the temporary file.
package export

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/obsidian-export/internal/frontmatter"
	"github.com/pdiddy/obsidian-export/internal/normalize"
	"github.com/pdiddy/obsidian-export/internal/render"
	"github.com/pdiddy/obsidian-export/pkg/types"
)

// tempSuffix is appended to the note stem to name the intermediate Markdown file.
const tempSuffix = " pandoc export.md"

// Layout holds the output locations for one note. TempMarkdown and PDF are
// file names inside Dir.
type Layout struct {
	Dir          string
	TempMarkdown string
	PDF          string
}

// TempPath returns the full path of the intermediate Markdown file.
func (l Layout) TempPath() string { return filepath.Join(l.Dir, l.TempMarkdown) }

// PDFPath returns the full path of the rendered PDF.
func (l Layout) PDFPath() string { return filepath.Join(l.Dir, l.PDF) }

// Paths computes the layout for the note at notePath. An empty attachments
// name selects types.DefaultAttachmentsDir.
func Paths(notePath, attachments string) Layout {
	if attachments == "" {
		attachments = types.DefaultAttachmentsDir
	}
	stem := noteStem(notePath)
	return Layout{
		Dir:          filepath.Join(filepath.Dir(notePath), attachments),
		TempMarkdown: stem + tempSuffix,
		PDF:          stem + ".pdf",
	}
}

func noteStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Result describes a successful export.
type Result struct {
	Note string
	PDF  string
}

// BatchResult holds the outcome of a batch export run.
type BatchResult struct {
	Exported int
	Failed   int
}

// Total returns the number of notes processed.
func (r BatchResult) Total() int {
	return r.Exported + r.Failed
}

// HasFailures reports whether any note failed to export.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// Exporter runs the note-to-PDF pipeline against a Renderer.
type Exporter struct {
	renderer render.Renderer
	cfg      types.ExportConfig
	template string
	w        io.Writer
}

// NewExporter creates an Exporter that reports progress to w. A relative
// template path is resolved against the current directory, since the
// renderer runs inside each note's attachments directory.
func NewExporter(r render.Renderer, cfg types.ExportConfig, w io.Writer) (*Exporter, error) {
	tpl := cfg.Pandoc.Template
	if tpl == "" {
		tpl = render.DefaultTemplatePath()
	}
	abs, err := filepath.Abs(tpl)
	if err != nil {
		return nil, fmt.Errorf("resolving template %s: %w", tpl, err)
	}
	if w == nil {
		w = io.Discard
	}
	return &Exporter{renderer: r, cfg: cfg, template: abs, w: w}, nil
}

// Template returns the absolute template path passed to the renderer.
func (e *Exporter) Template() string { return e.template }

// ExportFile exports one note. The temporary Markdown file is removed
// whether or not rendering succeeded.
func (e *Exporter) ExportFile(notePath string) (res Result, err error) {
	data, err := os.ReadFile(notePath)
	if err != nil {
		return Result{}, fmt.Errorf("reading note %s: %w", notePath, err)
	}

	content := normalize.Normalize(string(data))
	if e.cfg.DefaultTitle {
		content, err = frontmatter.EnsureTitle(content, noteStem(notePath))
		if err != nil {
			return Result{}, fmt.Errorf("adding title to %s: %w", notePath, err)
		}
	}

	layout := Paths(notePath, e.cfg.AttachmentsDir)
	if err := os.MkdirAll(layout.Dir, 0o755); err != nil {
		return Result{}, fmt.Errorf("creating %s: %w", layout.Dir, err)
	}

	tmp := layout.TempPath()
	defer func() {
		if cerr := e.cleanup(tmp); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if err := os.WriteFile(tmp, []byte(content), 0o644); err != nil {
		return Result{}, fmt.Errorf("writing %s: %w", tmp, err)
	}

	req := render.Request{
		Input:    layout.TempMarkdown,
		Output:   layout.PDF,
		Template: e.template,
		Dir:      layout.Dir,
		Flags:    e.cfg.Pandoc.ExtraFlags,
	}
	if err := e.renderer.Render(req); err != nil {
		return Result{}, fmt.Errorf("rendering %s with %s: %w", notePath, e.renderer.Name(), err)
	}
	fmt.Fprintf(e.w, "PDF generated: %s\n", layout.PDF)

	return Result{Note: notePath, PDF: layout.PDFPath()}, nil
}

// cleanup removes the temporary file if it exists.
func (e *Exporter) cleanup(tmp string) error {
	if _, err := os.Stat(tmp); err != nil {
		return nil
	}
	if err := os.Remove(tmp); err != nil {
		return fmt.Errorf("removing %s: %w", tmp, err)
	}
	fmt.Fprintf(e.w, "Cleaned up temporary markdown file: %s\n", tmp)
	return nil
}

// ExportBatch exports each note in turn, printing per-note status and a
// summary to the Exporter's writer. Failures do not stop the batch.
func (e *Exporter) ExportBatch(notes []string) BatchResult {
	var result BatchResult
	for _, n := range notes {
		res, err := e.ExportFile(n)
		if err != nil {
			fmt.Fprintf(e.w, "%-9s %s (%v)\n", string(types.ExportFailed)+":", n, err)
			result.Failed++
			continue
		}
		fmt.Fprintf(e.w, "%-9s %s -> %s\n", string(types.ExportDone)+":", n, res.PDF)
		result.Exported++
	}
	fmt.Fprintf(e.w, "\nBatch summary: %d exported, %d failed (total: %d)\n",
		result.Exported, result.Failed, result.Total())
	return result
}

// CollectNotes returns the Markdown notes under root in lexical order.
// Hidden directories (such as .obsidian) and attachments directories are
// skipped, as are leftover temporary export files.
func CollectNotes(root, attachments string) ([]string, error) {
	if attachments == "" {
		attachments = types.DefaultAttachmentsDir
	}
	var notes []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			if path != root && (strings.HasPrefix(name, ".") || name == attachments) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.EqualFold(filepath.Ext(name), ".md") || strings.HasSuffix(name, tempSuffix) {
			return nil
		}
		notes = append(notes, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("collecting notes under %s: %w", root, err)
	}
	return notes, nil
}
