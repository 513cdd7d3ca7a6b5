// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

import "strings"

// headerState is carried across lines by SpaceHeaders.
type headerState struct {
	out []string
}

// lastBlank reports whether nothing has been emitted yet or the last emitted
// line is blank.
func (s *headerState) lastBlank() bool {
	return len(s.out) == 0 || isBlank(s.out[len(s.out)-1])
}

func (s *headerState) step(i int, line string) {
	header := IsHeader(line)
	if header && i > 0 && !s.lastBlank() {
		s.out = append(s.out, "")
	}
	s.out = append(s.out, line)
	if header {
		s.out = append(s.out, "")
	}
}

// SpaceHeaders inserts a blank line before every header whose preceding
// emitted line is not blank, and a blank line after every header.
func SpaceHeaders(content string) string {
	lines := strings.Split(content, "\n")
	st := headerState{out: make([]string, 0, len(lines))}
	for i, line := range lines {
		st.step(i, line)
	}
	return strings.Join(st.out, "\n")
}

// listState is carried across lines by SpaceLists. prevList reflects the
// classification of the previous input line, not of any inserted blank.
type listState struct {
	out      []string
	prevList bool
}

func (s *listState) step(lines []string, i int) {
	line := lines[i]
	list := IsListItem(line)
	if list && !s.prevList && i > 0 {
		s.out = append(s.out, "")
	}
	s.out = append(s.out, line)
	if list && i < len(lines)-1 && !IsListItem(lines[i+1]) {
		s.out = append(s.out, "")
	}
	s.prevList = list
}

// SpaceLists separates each run of list items from surrounding lines with a
// blank line before the run and after it.
func SpaceLists(content string) string {
	lines := strings.Split(content, "\n")
	st := listState{out: make([]string, 0, len(lines))}
	for i := range lines {
		st.step(lines, i)
	}
	return strings.Join(st.out, "\n")
}
