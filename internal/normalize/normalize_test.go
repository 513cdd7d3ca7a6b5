// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ruleByName(t *testing.T, name string) Rule {
	t.Helper()
	for _, r := range Rules() {
		if r.Name == name {
			return r
		}
	}
	require.FailNow(t, "rule not found", name)
	return Rule{}
}

func TestRules_Order(t *testing.T) {
	var names []string
	for _, r := range Rules() {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{
		"piped-wikilink",
		"wikilink",
		"sized-image",
		"sized-embed",
		"embed",
		"tip-callout",
		"header-space",
	}, names)
}

func TestRules_ReturnsCopy(t *testing.T) {
	rs := Rules()
	rs[0].Replacement = "mutated"
	assert.NotEqual(t, "mutated", Rules()[0].Replacement)
}

func TestRuleApply(t *testing.T) {
	tests := []struct {
		rule  string
		input string
		want  string
	}{
		{"piped-wikilink", "[[a|b]]", "[b](a)"},
		{"piped-wikilink", "see [[Notes/Page|the page]] here", "see [the page](Notes/Page) here"},
		{"piped-wikilink", "![[img.png|200]]", "![200](img.png)"},
		{"piped-wikilink", "![[a|caption]]", "![caption](a)"},
		{"wikilink", "[[a]]", "[a](a)"},
		{"wikilink", "[[a]][[b]]", "[a](a)[b](b)"},
		{"wikilink", "![[img.png]]", "![[img.png]]"},
		{"sized-image", "![3](img.png)", "![](img.png){width=3px}"},
		{"sized-image", "![alt](img.png)", "![alt](img.png)"},
		{"sized-embed", "![[img.png|200]]", "![](img.png){width=200px}"},
		{"sized-embed", "![[img.png|wide]]", "![[img.png|wide]]"},
		{"embed", "![[img.png]]", "![](img.png)"},
		{"embed", "![[dir/my image.png]]", "![](dir/my image.png)"},
		{"tip-callout", "> [!TIP] hello", "> hello"},
		{"tip-callout", "> [!Tip] hello", "> hello"},
		{"tip-callout", "> [!tip] hello", "> hello"},
		{"tip-callout", "> [!tIp] hello", "> hello"},
		{"tip-callout", "> [!NOTE] hello", "> [!NOTE] hello"},
		{"tip-callout", "> [!TIP]", "> [!TIP]"},
		{"tip-callout", "> [!TIP] first\n> second", "> first\n> second"},
		{"header-space", "#Header", "# Header"},
		{"header-space", "###Deep", "### Deep"},
		{"header-space", "# Already", "# Already"},
		{"header-space", "a\n##Two\nb", "a\n## Two\nb"},
		{"header-space", "text #tag", "text #tag"},
		{"header-space", "#######x", "#######x"},
	}

	for _, tt := range tests {
		t.Run(tt.rule+"/"+tt.input, func(t *testing.T) {
			r := ruleByName(t, tt.rule)
			assert.Equal(t, tt.want, r.Apply(tt.input))
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "piped wiki-link",
			input: "[[a|b]]",
			want:  "[b](a)",
		},
		{
			name:  "bare wiki-link",
			input: "[[a]]",
			want:  "[a](a)",
		},
		{
			name:  "numeric alt becomes width",
			input: "![3](img.png)",
			want:  "![](img.png){width=3px}",
		},
		{
			name:  "sized embed",
			input: "![[img.png|200]]",
			want:  "![](img.png){width=200px}",
		},
		{
			name:  "plain embed",
			input: "![[img.png]]",
			want:  "![](img.png)",
		},
		{
			name:  "tip callout",
			input: "> [!TIP] hello",
			want:  "> hello",
		},
		{
			name:  "header gets space and trailing blank line",
			input: "#Header",
			want:  "# Header\n",
		},
		{
			name:  "blank line after header before body",
			input: "# Header\nBody text",
			want:  "# Header\n\nBody text",
		},
		{
			name:  "blank line before header after prose",
			input: "Intro\n# Header\nBody",
			want:  "Intro\n\n# Header\n\nBody",
		},
		{
			name:  "consecutive headers share one blank line",
			input: "# A\n# B",
			want:  "# A\n\n# B\n",
		},
		{
			name:  "numbered list after prose",
			input: "Intro\n1. item",
			want:  "Intro\n\n1. item",
		},
		{
			name:  "list run stays contiguous",
			input: "Intro\n1. one\n2) two\n- three\nOutro",
			want:  "Intro\n\n1. one\n2) two\n- three\n\nOutro",
		},
		{
			name:  "indented list items",
			input: "Intro\n  - nested\n    10. deep",
			want:  "Intro\n\n  - nested\n    10. deep",
		},
		{
			name:  "digit without separator space is not a list",
			input: "Intro\n1.5 is a number",
			want:  "Intro\n1.5 is a number",
		},
		{
			name:  "header and list passes both insert blanks",
			input: "# Title\n- a\n- b\nEnd",
			want:  "# Title\n\n\n- a\n- b\n\nEnd",
		},
		{
			name:  "plain prose is untouched",
			input: "just some text\nmore text",
			want:  "just some text\nmore text",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "embed with caption keeps caption as alt text",
			input: "![[a|caption]]",
			want:  "![caption](a)",
		},
		{
			name:  "sized embed via piped link and numeric alt",
			input: "see ![[img.png|200]] here",
			want:  "see ![](img.png){width=200px} here",
		},
		{
			name:  "CRLF line endings",
			input: "#A\r\nbody\r\n- item\r\nend",
			want:  "# A\n\nbody\n\n- item\n\nend",
		},
		{
			name:  "lone CR line endings",
			input: "text\r# H",
			want:  "text\n\n# H\n",
		},
		{
			name:  "mixed note",
			input: "#Lecture\nSee [[Robots|robot notes]].\n![[arm.png|300]]\n> [!tip] read chapter 2",
			want:  "# Lecture\n\nSee [robot notes](Robots).\n![](arm.png){width=300px}\n> read chapter 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalize_Deterministic(t *testing.T) {
	in := "#A\n[[x|y]]\n- item\ntext"
	assert.Equal(t, Normalize(in), Normalize(in))
}

func TestNormalize_NotIdempotent(t *testing.T) {
	once := Normalize("# H\nbody")
	require.Equal(t, "# H\n\nbody", once)

	twice := Normalize(once)
	assert.Equal(t, "# H\n\n\nbody", twice)
	assert.NotEqual(t, once, twice)

	list := Normalize("x\n- a\ny")
	require.Equal(t, "x\n\n- a\n\ny", list)
	assert.Equal(t, "x\n\n\n- a\n\n\ny", Normalize(list))
}

func TestIsHeader(t *testing.T) {
	assert.True(t, IsHeader("# h"))
	assert.True(t, IsHeader("   ## h"))
	assert.True(t, IsHeader("#tag"))
	assert.False(t, IsHeader("text # h"))
	assert.False(t, IsHeader(""))
}

func TestIsListItem(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"- item", true},
		{"   - item", true},
		{"-item", false},
		{"1. item", true},
		{"12) item", true},
		{"\t3. item", true},
		{"1.item", false},
		{"a. item", false},
		{"* item", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsListItem(tt.line), "line %q", tt.line)
	}
}

func TestSpaceHeaders_LeadingBlankLine(t *testing.T) {
	assert.Equal(t, "\n# H\n", SpaceHeaders("\n# H"))
}

func TestSpaceLists_TrailingItem(t *testing.T) {
	assert.Equal(t, "- a\n- b", SpaceLists("- a\n- b"))
}
