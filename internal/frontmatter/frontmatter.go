// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package frontmatter reads and amends the YAML metadata block at the top of
// a note. Pandoc templates such as eisvogel take the title page fields from
// this block.
package frontmatter

import (
	"fmt"
	"strings"

	"go.yaml.in/yaml/v3"
)

const delim = "---"

// Block is a parsed front matter block.
type Block struct {
	// Fields holds the decoded YAML mapping.
	Fields map[string]any
	// Raw is the YAML text between the delimiters.
	Raw string
	// End is the byte offset in the source just past the closing delimiter line.
	End int
}

// Parse extracts the front matter block from content. It returns nil when
// content does not open with a "---" line followed by a closing "---" line.
func Parse(content string) (*Block, error) {
	first, rest, ok := strings.Cut(content, "\n")
	if !ok || strings.TrimRight(first, " \t\r") != delim {
		return nil, nil
	}

	offset := len(first) + 1
	var raw strings.Builder
	for {
		line, next, more := strings.Cut(rest, "\n")
		lineEnd := offset + len(line)
		if more {
			lineEnd++
		}
		if strings.TrimRight(line, " \t\r") == delim {
			b := &Block{Raw: raw.String(), End: lineEnd}
			if err := yaml.Unmarshal([]byte(b.Raw), &b.Fields); err != nil {
				return nil, fmt.Errorf("parsing front matter: %w", err)
			}
			if b.Fields == nil {
				b.Fields = map[string]any{}
			}
			return b, nil
		}
		if !more {
			return nil, nil
		}
		raw.WriteString(line)
		raw.WriteByte('\n')
		offset = lineEnd
		rest = next
	}
}

// EnsureTitle returns content with a title field set to title, unless the
// front matter already declares a title key. A block is created when the
// note has none.
func EnsureTitle(content, title string) (string, error) {
	b, err := Parse(content)
	if err != nil {
		return "", err
	}

	line, err := yaml.Marshal(map[string]string{"title": title})
	if err != nil {
		return "", fmt.Errorf("encoding title: %w", err)
	}

	if b == nil {
		return delim + "\n" + string(line) + delim + "\n\n" + content, nil
	}
	if _, ok := b.Fields["title"]; ok {
		return content, nil
	}

	// Insert right after the opening delimiter line.
	open := strings.Index(content, "\n") + 1
	return content[:open] + string(line) + content[open:], nil
}
