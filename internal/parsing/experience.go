package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/fairmatch/internal/types"
)

var (
	expDateRangeRe = regexp.MustCompile(`(?i)(?:(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+)?(?:19|20)\d{2}\s*(?:-|–|to|until)\s*(?:(?:(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+)?(?:19|20)\d{2}|present|current|now)`)
	bulletRe       = regexp.MustCompile(`^[\s]*[•\-*➢❖]\s*`)
	locationRe     = regexp.MustCompile(`(?i)\b(?:in|at)\s+([^,•\n]+(?:,\s*[^,•\n]+)?)`)
	titleAtRe      = regexp.MustCompile(`(?i)\s+at\s+`)
)

// ExtractExperience parses the work-experience section into structured
// entries. Blank lines separate entries; an entry is kept only when a
// company could be identified.
func ExtractExperience(section string) []types.ExperienceEntry {
	var entries []types.ExperienceEntry
	for _, block := range splitBlocks(section) {
		if entry, ok := parseExperienceBlock(block); ok {
			entries = append(entries, entry)
		}
	}
	return entries
}

func parseExperienceBlock(block string) (types.ExperienceEntry, bool) {
	var entry types.ExperienceEntry

	entry.DateRange = strings.TrimSpace(expDateRangeRe.FindString(block))

	lines := strings.Split(block, "\n")
	var headerDone bool
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if bulletRe.MatchString(line) {
			resp := strings.TrimSpace(bulletRe.ReplaceAllString(line, ""))
			if resp != "" {
				entry.Responsibilities = append(entry.Responsibilities, resp)
			}
			headerDone = true
			continue
		}

		stripped := strings.TrimSpace(expDateRangeRe.ReplaceAllString(trimmed, ""))
		stripped = strings.Trim(stripped, " ,|-–")
		if stripped == "" {
			continue
		}

		switch {
		case entry.Company == "" && !headerDone:
			company, title := splitHeaderLine(stripped)
			entry.Company = company
			entry.Title = title
		case entry.Title == "" && !headerDone:
			entry.Title = stripped
		case entry.Location == "":
			if m := locationRe.FindStringSubmatch(trimmed); m != nil {
				entry.Location = strings.TrimSpace(m[1])
			} else {
				entry.Responsibilities = append(entry.Responsibilities, stripped)
			}
			headerDone = true
		default:
			entry.Responsibilities = append(entry.Responsibilities, stripped)
		}
	}

	if entry.Company == "" {
		return types.ExperienceEntry{}, false
	}
	return entry, true
}

// splitHeaderLine interprets the first line of an entry. "Company | Title"
// and "Title at Company" are recognized; otherwise the whole line is the
// company and the title comes from a later line.
func splitHeaderLine(line string) (company, title string) {
	if parts := strings.SplitN(line, "|", 2); len(parts) == 2 {
		return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	}
	if parts := titleAtRe.Split(line, 2); len(parts) == 2 {
		return strings.TrimSpace(parts[1]), strings.TrimSpace(parts[0])
	}
	return line, ""
}
