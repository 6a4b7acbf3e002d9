package parsing

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	langParenRe   = regexp.MustCompile(`([A-Z][a-z]+)\s*\(([^)]+)\)`)
	langColonRe   = regexp.MustCompile(`([A-Z][a-z]+)\s*:\s*([^,\n]+)`)
	langDashRe    = regexp.MustCompile(`([A-Z][a-z]+)\s*[-–]\s*([^,\n]+)`)
	langBareRe    = regexp.MustCompile(`(?m)^\s*[•\-*]?\s*([A-Z][a-z]+)\s*$`)
	langPercentRe = regexp.MustCompile(`(\d+)\s*%`)
)

var languageSet = buildLanguageSet()

func buildLanguageSet() map[string]string {
	set := make(map[string]string, len(validLanguages))
	for _, l := range validLanguages {
		set[strings.ToLower(l)] = l
	}
	return set
}

// ExtractLanguages parses the languages section into a map of language name
// to proficiency on a 0-100 scale. Qualitative levels use a fixed scale with
// 90 as the default; an explicit percentage always wins.
func ExtractLanguages(section string) map[string]int {
	langs := map[string]int{}

	record := func(name, qualifier string) {
		canonical, ok := languageSet[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return
		}
		if _, exists := langs[canonical]; exists {
			return
		}
		langs[canonical] = proficiencyValue(qualifier)
	}

	for _, re := range []*regexp.Regexp{langParenRe, langColonRe, langDashRe} {
		for _, m := range re.FindAllStringSubmatch(section, -1) {
			record(m[1], m[2])
		}
	}
	for _, m := range langBareRe.FindAllStringSubmatch(section, -1) {
		record(m[1], "")
	}

	return langs
}

// proficiencyValue resolves a qualifier to a 0-100 value. An explicit
// percentage overrides the qualitative scale; unrecognized qualifiers
// default to 90.
func proficiencyValue(qualifier string) int {
	if m := langPercentRe.FindStringSubmatch(qualifier); m != nil {
		v, err := strconv.Atoi(m[1])
		if err == nil {
			if v > 100 {
				v = 100
			}
			if v < 0 {
				v = 0
			}
			return v
		}
	}
	lower := strings.ToLower(qualifier)
	for _, level := range proficiencyLevels {
		if strings.Contains(lower, strings.ToLower(level.Word)) {
			return level.Value
		}
	}
	return 90
}
