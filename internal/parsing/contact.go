package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/fairmatch/internal/types"
)

var (
	emailRe        = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	labeledPhoneRe = regexp.MustCompile(`(?i)(?:phone|tel|mobile|cell)\s*[:\s]\s*([+\d][\d\s.()\-]{7,})`)
	barePhoneRe    = regexp.MustCompile(`^\s*([+\d][\d\s.()\-]{7,})\s*$`)
	phoneStripRe   = regexp.MustCompile(`[^\d+]`)
	labeledSiteRe  = regexp.MustCompile(`(?i)(?:website|portfolio|blog)\s*[:\s]\s*((?:https?://)?[a-zA-Z0-9][a-zA-Z0-9.\-]*\.[a-zA-Z]{2,}(?:/\S*)?)`)
	bareSiteRe     = regexp.MustCompile(`(?i)^\s*((?:https?://)?(?:www\.)?[a-zA-Z0-9][a-zA-Z0-9\-]*\.[a-zA-Z]{2,}(?:/\S*)?)\s*$`)
	labeledAddrRe  = regexp.MustCompile(`(?i)(?:location|address)\s*[:\s]\s*(.+)`)
	bareAddrRe     = regexp.MustCompile(`^([A-Z][a-zA-Z\s]+,\s*[A-Z][a-zA-Z\s]*)$`)

	nameLineRe    = regexp.MustCompile(`^([A-Z][a-zA-Z.]*(?:\s+[A-Z][a-zA-Z.]*)+)$`)
	headingWordRe = regexp.MustCompile(`(?i)\b(?:resume|cv|curriculum|vitae|personal|profile|contact)\b`)
)

// ExtractContact fills the identity fields of profile from text. Each field
// is best-effort; misses leave the field empty.
func ExtractContact(text string, profile *types.CandidateProfile) {
	lines := strings.Split(text, "\n")

	profile.Name = extractName(lines)
	profile.Email = strings.ToLower(emailRe.FindString(text))
	profile.Phone = extractPhone(text, lines)
	profile.Website = extractWebsite(text, lines)
	profile.Address = extractAddress(lines)
}

// extractName takes the first plausible name line near the top of the text:
// two or more capitalized words that are not a document heading.
func extractName(lines []string) string {
	limit := len(lines)
	if limit > 10 {
		limit = 10
	}
	for _, line := range lines[:limit] {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || headingWordRe.MatchString(trimmed) {
			continue
		}
		if m := nameLineRe.FindStringSubmatch(trimmed); m != nil {
			return m[1]
		}
	}
	return ""
}

func extractPhone(text string, lines []string) string {
	raw := ""
	if m := labeledPhoneRe.FindStringSubmatch(text); m != nil {
		raw = m[1]
	} else {
		for _, line := range lines {
			if m := barePhoneRe.FindStringSubmatch(line); m != nil {
				raw = m[1]
				break
			}
		}
	}
	digits := phoneStripRe.ReplaceAllString(raw, "")
	if len(strings.TrimPrefix(digits, "+")) < 8 {
		return ""
	}
	return digits
}

func extractWebsite(text string, lines []string) string {
	raw := ""
	if m := labeledSiteRe.FindStringSubmatch(text); m != nil {
		raw = m[1]
	} else {
		for _, line := range lines {
			m := bareSiteRe.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			// A bare domain line must not be an email address.
			if strings.Contains(line, "@") {
				continue
			}
			raw = m[1]
			break
		}
	}
	if raw == "" {
		return ""
	}
	raw = strings.TrimPrefix(raw, "https://")
	raw = strings.TrimPrefix(raw, "http://")
	raw = strings.TrimPrefix(raw, "www.")
	return "https://" + raw
}

func extractAddress(lines []string) string {
	for _, line := range lines {
		if m := labeledAddrRe.FindStringSubmatch(line); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if m := bareAddrRe.FindStringSubmatch(trimmed); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}
