package parsing

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/fairmatch/internal/types"
)

var (
	eduDateRangeRe = regexp.MustCompile(`(?i)(?:(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+)?(?:19|20)\d{2}\s*(?:-|–|to|until)\s*(?:(?:(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+)?(?:19|20)\d{2}|present|current|now)`)
	eduYearRe      = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
	gpaRe          = regexp.MustCompile(`(?i)(?:cgpa|gpa|grade)\s*[:\s]\s*([0-4](?:\.\d{1,2})?)\b`)
)

var degreeRe = buildDegreeRe()

func buildDegreeRe() *regexp.Regexp {
	quoted := make([]string, len(degreePrefixes))
	for i, p := range degreePrefixes {
		quoted[i] = regexp.QuoteMeta(p)
	}
	return regexp.MustCompile(`(?i)\b(?:` + strings.Join(quoted, "|") + `)\b[^,\n(]*`)
}

// ExtractEducation parses the education section into structured entries.
// Entries are separated by blank lines; within a block a new degree phrase
// starts a new entry.
func ExtractEducation(section string) []types.EducationEntry {
	var entries []types.EducationEntry
	for _, block := range splitBlocks(section) {
		for _, chunk := range splitAtDegrees(block) {
			if entry, ok := parseEducationChunk(chunk); ok {
				entries = append(entries, entry)
			}
		}
	}
	return entries
}

// splitBlocks divides text at runs of blank lines.
func splitBlocks(text string) []string {
	var blocks []string
	var current []string
	flush := func() {
		if len(current) > 0 {
			blocks = append(blocks, strings.Join(current, "\n"))
			current = nil
		}
	}
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()
	return blocks
}

// splitAtDegrees breaks a block into chunks whenever a later line begins a
// new degree phrase, so stacked qualifications become distinct entries.
func splitAtDegrees(block string) []string {
	lines := strings.Split(block, "\n")
	var chunks []string
	var current []string
	sawDegree := false
	for _, line := range lines {
		startsDegree := degreeRe.MatchString(line)
		if startsDegree && sawDegree && len(current) > 0 {
			chunks = append(chunks, strings.Join(current, "\n"))
			current = nil
			sawDegree = false
		}
		if startsDegree {
			sawDegree = true
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		chunks = append(chunks, strings.Join(current, "\n"))
	}
	return chunks
}

func parseEducationChunk(chunk string) (types.EducationEntry, bool) {
	var entry types.EducationEntry
	rest := chunk

	if dr := eduDateRangeRe.FindString(rest); dr != "" {
		entry.DateRange = strings.TrimSpace(dr)
		rest = strings.Replace(rest, dr, " ", 1)
	} else if y := eduYearRe.FindString(rest); y != "" {
		entry.DateRange = y
		rest = strings.Replace(rest, y, " ", 1)
	}

	if m := gpaRe.FindStringSubmatch(rest); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			entry.GPA = &v
		}
		rest = strings.Replace(rest, m[0], " ", 1)
	}

	if deg := degreeRe.FindString(rest); deg != "" {
		entry.Degree = strings.TrimSpace(strings.Trim(deg, " .,-"))
		entry.Field = degreeField(entry.Degree)
		rest = strings.Replace(rest, deg, " ", 1)
	}

	entry.Institution = collapseText(rest)

	if entry.Institution == "" && entry.Degree == "" {
		return types.EducationEntry{}, false
	}
	return entry, true
}

// degreeField pulls the field of study out of a degree phrase. "in" binds
// tighter than "of" so "Bachelor of Science in Computer Science" yields
// "Computer Science" rather than "Science in Computer Science".
func degreeField(degree string) string {
	lower := strings.ToLower(degree)
	for _, sep := range []string{" in ", " of "} {
		if idx := strings.LastIndex(lower, sep); idx >= 0 {
			return strings.TrimSpace(degree[idx+len(sep):])
		}
	}
	return ""
}

// collapseText joins leftover lines into a single cleaned string.
func collapseText(s string) string {
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(strings.Trim(strings.TrimSpace(s), ",.-–|"))
}
