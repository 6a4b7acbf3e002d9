package parsing

import (
	"regexp"
	"strings"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// normalizeHeading lowercases a line and strips whitespace and trailing
// punctuation so "WORK  EXPERIENCE:" matches "work experience".
func normalizeHeading(line string) string {
	s := strings.ToLower(strings.TrimSpace(line))
	s = strings.TrimRight(s, ":.-–")
	return whitespaceRe.ReplaceAllString(s, " ")
}

type headerHit struct {
	key  string
	line int
}

// SplitSections divides resume text into named sections keyed by canonical
// section name. A heading is a line whose normalized form matches one of the
// known heading variants. Text before the first heading is not assigned a
// key; sections with no heading in the text are absent from the result.
func SplitSections(text string) map[string]string {
	lines := strings.Split(text, "\n")

	var hits []headerHit
	seen := map[string]bool{}
	for i, line := range lines {
		norm := normalizeHeading(line)
		if norm == "" {
			continue
		}
		for key, variants := range sectionHeaders {
			if seen[key] {
				continue
			}
			for _, v := range variants {
				if norm == v {
					hits = append(hits, headerHit{key: key, line: i})
					seen[key] = true
					break
				}
			}
		}
	}

	sections := make(map[string]string, len(hits))
	for idx, hit := range hits {
		start := hit.line + 1
		end := len(lines)
		if idx+1 < len(hits) {
			end = hits[idx+1].line
		}
		body := strings.TrimSpace(strings.Join(lines[start:end], "\n"))
		if body != "" {
			sections[hit.key] = body
		}
	}
	return sections
}
