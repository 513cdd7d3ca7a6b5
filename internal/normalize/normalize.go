// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package normalize rewrites Obsidian-flavored Markdown into portable Markdown
// that pandoc parses without extensions. The rewrite is a pure function of its
// input: an ordered chain of regular-expression rules followed by two
// line-oriented reflow passes that put blank lines around headers and lists.
package normalize

import (
	"regexp"
	"strings"
	"unicode"
)

// Rule is a single pattern rewrite in the normalization chain.
type Rule struct {
	// Name identifies the rule in tests and diagnostics.
	Name string

	// Pattern is matched against the whole document.
	Pattern *regexp.Regexp

	// Replacement is a regexp template ($1, ${2}, ...) expanded per match.
	Replacement string

	// SkipEmbeds leaves matches that directly follow a '!' untouched, so
	// the bare link rule does not consume the brackets of an ![[embed]].
	SkipEmbeds bool
}

// Apply rewrites every match of the rule in s.
func (r Rule) Apply(s string) string {
	if !r.SkipEmbeds {
		return r.Pattern.ReplaceAllString(s, r.Replacement)
	}

	matches := r.Pattern.FindAllStringSubmatchIndex(s, -1)
	if len(matches) == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	last := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		if start > 0 && s[start-1] == '!' {
			continue
		}
		b.WriteString(s[last:start])
		b.Write(r.Pattern.ExpandString(nil, r.Replacement, s, m))
		last = end
	}
	b.WriteString(s[last:])
	return b.String()
}

// rules is the fixed rewrite chain. Order matters: link rules run before
// image rules, and header-space runs last so SpaceHeaders sees "# Title"
// even when the note had "#Title".
var rules = []Rule{
	{
		Name:        "piped-wikilink",
		Pattern:     regexp.MustCompile(`\[\[([^|\]]+)\|([^\]]+)\]\]`),
		Replacement: "[${2}](${1})",
	},
	{
		Name:        "wikilink",
		Pattern:     regexp.MustCompile(`\[\[([^\]]+)\]\]`),
		Replacement: "[${1}](${1})",
		SkipEmbeds:  true,
	},
	{
		Name:        "sized-image",
		Pattern:     regexp.MustCompile(`!\[(\d+)\]\(([^)]+)\)`),
		Replacement: "![](${2}){width=${1}px}",
	},
	{
		Name:        "sized-embed",
		Pattern:     regexp.MustCompile(`!\[\[([^|\]]+)\|(\d+)\]\]`),
		Replacement: "![](${1}){width=${2}px}",
	},
	{
		Name:        "embed",
		Pattern:     regexp.MustCompile(`!\[\[([^\]]+)\]\]`),
		Replacement: "![](${1})",
	},
	{
		Name:        "tip-callout",
		Pattern:     regexp.MustCompile(`(?i)> \[!tip\] (.+)`),
		Replacement: "> ${1}",
	},
	{
		Name:        "header-space",
		Pattern:     regexp.MustCompile(`(?m)^(#{1,6})([^#\s])`),
		Replacement: "${1} ${2}",
	},
}

// Rules returns the rewrite chain in application order. The returned slice
// is a copy.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// Normalize converts content to portable Markdown: line endings become "\n",
// then the rule chain, header spacing and list spacing run in that order.
// Blank lines inserted by the two passes are never deduplicated, so
// Normalize is not idempotent.
func Normalize(content string) string {
	content = newlines.Replace(content)
	content = ApplyRules(content)
	content = SpaceHeaders(content)
	return SpaceLists(content)
}

// ApplyRules runs only the regular-expression rewrite chain.
func ApplyRules(content string) string {
	for _, r := range rules {
		content = r.Apply(content)
	}
	return content
}

var newlines = strings.NewReplacer("\r\n", "\n", "\r", "\n")

var numberedItem = regexp.MustCompile(`^\s*\d+[).]\s`)

// IsHeader reports whether line, ignoring leading whitespace, starts with '#'.
func IsHeader(line string) bool {
	return strings.HasPrefix(trimLeft(line), "#")
}

// IsListItem reports whether line is a bullet ("- ") or numbered ("1. ",
// "2) ") list item once leading whitespace is removed.
func IsListItem(line string) bool {
	l := trimLeft(line)
	return strings.HasPrefix(l, "- ") || numberedItem.MatchString(l)
}

func trimLeft(s string) string {
	return strings.TrimLeftFunc(s, unicode.IsSpace)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
