//go:build mage

// Package main contains Mage build targets for obsidian-export developer tooling.
package main

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir  = "bin"
	binName = "obsidian-export"
	cmdPkg  = "./cmd/obsidian-export"
)

// Build compiles the CLI binary into bin/. The eisvogel template is looked up
// next to the binary, so copy eisvogel.tex into bin/ alongside it.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	if err := sh.RunV("go", "build", "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the unit tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Export builds the CLI and exports the note named by the NOTE environment
// variable, or every note under VAULT.
func Export() error {
	mg.Deps(Build)

	args := []string{"export"}
	if vault := os.Getenv("VAULT"); vault != "" {
		args = append(args, "--vault", vault)
	}
	if note := os.Getenv("NOTE"); note != "" {
		args = append(args, note)
	}
	if len(args) == 1 {
		return fmt.Errorf("set NOTE=<path> or VAULT=<dir>")
	}
	return sh.RunV(filepath.Join(binDir, binName), args...)
}

// Stats prints project metrics: Go production/test LOC and Markdown word count.
func Stats() error {
	var st stats
	if err := filepath.WalkDir(".", st.visit); err != nil {
		return err
	}
	fmt.Printf("Lines of code (Go, production): %d\n", st.prodLines)
	fmt.Printf("Lines of code (Go, tests):      %d\n", st.testLines)
	fmt.Printf("Words (Markdown):                %d\n", st.docWords)
	return nil
}

type stats struct {
	prodLines int
	testLines int
	docWords  int
}

// visit counts one file. Hidden directories, the example corpus and bin/ are skipped.
func (s *stats) visit(path string, d fs.DirEntry, err error) error {
	if err != nil {
		return err
	}
	if d.IsDir() {
		name := d.Name()
		if path != "." && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") || name == binDir) {
			return filepath.SkipDir
		}
		return nil
	}

	ext := filepath.Ext(path)
	if ext != ".go" && ext != ".md" && ext != ".yaml" && ext != ".yml" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	if ext != ".go" {
		s.docWords += len(bytes.Fields(data))
		return nil
	}
	n := 0
	for _, line := range bytes.Split(data, []byte("\n")) {
		if len(bytes.TrimSpace(line)) > 0 {
			n++
		}
	}
	if strings.HasSuffix(path, "_test.go") {
		s.testLines += n
	} else {
		s.prodLines += n
	}
	return nil
}
