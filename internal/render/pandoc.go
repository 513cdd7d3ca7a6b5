// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render drives the external document converter that turns
// normalized Markdown into PDF. The converter is a collaborator behind the
// Renderer interface so the rest of the pipeline can be tested without it.
package render

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

const (
	// DefaultBinary is the pandoc executable looked up on PATH.
	DefaultBinary = "pandoc"
	// DefaultPDFEngine is the LaTeX engine pandoc uses to produce PDF.
	DefaultPDFEngine = "xelatex"
	// TemplateName is the eisvogel template file shipped next to the binary.
	TemplateName = "eisvogel.tex"
)

// Request describes one render invocation.
type Request struct {
	// Input is the Markdown file, relative to Dir or absolute.
	Input string
	// Output is the PDF file, relative to Dir or absolute.
	Output string
	// Template is the pandoc template path.
	Template string
	// Dir is the working directory for the converter. Extracted media lands here.
	Dir string
	// Flags are appended after the fixed argument list.
	Flags []string
}

// Renderer converts a Markdown file to PDF.
type Renderer interface {
	// Name returns the converter name, e.g. "pandoc".
	Name() string

	// Available returns nil when the converter binary can be found.
	Available() error

	// Render runs the converter to completion. A non-zero exit is reported
	// as a *RenderError.
	Render(req Request) error
}

// RenderError reports a failed converter run.
type RenderError struct {
	Binary string
	Args   []string
	Stderr string
	Err    error
}

func (e *RenderError) Error() string {
	msg := fmt.Sprintf("running %s: %v", e.Binary, e.Err)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += ": " + s
	}
	return msg
}

func (e *RenderError) Unwrap() error { return e.Err }

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	Run(dir, name string, args []string, stdout, stderr io.Writer) error
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) Run(dir, name string, args []string, stdout, stderr io.Writer) error {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}

// Pandoc renders PDFs with the pandoc command-line tool.
type Pandoc struct {
	bin    string
	engine string
	stdout io.Writer
	stderr io.Writer
	exec   executor
}

// NewPandoc returns a Pandoc renderer. Empty bin and engine fall back to
// DefaultBinary and DefaultPDFEngine. Converter output is forwarded to
// stdout and stderr; stderr is also captured into any RenderError.
func NewPandoc(bin, engine string, stdout, stderr io.Writer) *Pandoc {
	return newPandoc(bin, engine, stdout, stderr, &osExecutor{})
}

func newPandoc(bin, engine string, stdout, stderr io.Writer, exec executor) *Pandoc {
	if bin == "" {
		bin = DefaultBinary
	}
	if engine == "" {
		engine = DefaultPDFEngine
	}
	if stdout == nil {
		stdout = io.Discard
	}
	if stderr == nil {
		stderr = io.Discard
	}
	return &Pandoc{bin: bin, engine: engine, stdout: stdout, stderr: stderr, exec: exec}
}

func (p *Pandoc) Name() string { return filepath.Base(p.bin) }

func (p *Pandoc) Available() error {
	if _, err := p.exec.LookPath(p.bin); err != nil {
		return fmt.Errorf("%s not found on PATH: %w", p.bin, err)
	}
	return nil
}

// Args builds the pandoc argument list for req.
func (p *Pandoc) Args(req Request) []string {
	args := []string{
		req.Input,
		"-o", req.Output,
		"--from", "markdown",
		"--template=" + req.Template,
		"--listings",
		"--pdf-engine=" + p.engine,
		"--wrap=preserve",
		"--extract-media=.",
		"-f", "markdown-implicit_figures",
	}
	return append(args, req.Flags...)
}

func (p *Pandoc) Render(req Request) error {
	args := p.Args(req)
	var stderr bytes.Buffer
	if err := p.exec.Run(req.Dir, p.bin, args, p.stdout, io.MultiWriter(&stderr, p.stderr)); err != nil {
		return &RenderError{Binary: p.bin, Args: args, Stderr: stderr.String(), Err: err}
	}
	return nil
}

// DefaultTemplatePath returns TemplateName in the directory of the running
// executable, or TemplateName alone if the executable cannot be located.
func DefaultTemplatePath() string {
	exe, err := os.Executable()
	if err != nil {
		return TemplateName
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), TemplateName)
}
