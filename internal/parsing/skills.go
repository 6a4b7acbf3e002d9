package parsing

import (
	"regexp"
	"strings"
)

var (
	skillBulletRe   = regexp.MustCompile(`(?m)^\s*[•\-*]\s*([A-Za-z][A-Za-z0-9+#./&' \-]*?)\s*(?:$|[,;.])`)
	categoryLineRe  = regexp.MustCompile(`(?m)^\s*([A-Za-z][A-Za-z ]+?)\s*:\s*(.+)$`)
	categorySplitRe = regexp.MustCompile(`[,;/|•]+`)

	longDigitRunRe = regexp.MustCompile(`\d{5,}`)
	phoneLikeRe    = regexp.MustCompile(`\d{3,4}[\s\-]?\d{3,4}`)
	streetLikeRe   = regexp.MustCompile(`[A-Za-z]+\s[A-Za-z]+\s?\d+`)
	properNameRe   = regexp.MustCompile(`\b[A-Z][a-z]+\s[A-Z][a-z]+\b`)
)

var softSkillSet = buildSoftSkillSet()

func buildSoftSkillSet() map[string]struct{} {
	set := make(map[string]struct{}, len(softSkillVocab))
	for _, s := range softSkillVocab {
		set[NormalizeSkill(s)] = struct{}{}
	}
	return set
}

// ExtractSkills finds skills in text and classifies them as general or soft.
// Vocabulary matching runs over the whole text; bullet and "Category: items"
// extraction add free-form skills that pass the noise filters. Results are
// normalized lowercase and deduplicated in encounter order.
func ExtractSkills(text string) (general, soft []string) {
	seen := map[string]bool{}
	add := func(raw string) {
		skill := NormalizeSkill(raw)
		if skill == "" || seen[skill] {
			return
		}
		seen[skill] = true
		if _, isSoft := softSkillSet[skill]; isSoft {
			soft = append(soft, skill)
		} else {
			general = append(general, skill)
		}
	}

	for _, terms := range generalSkillVocab {
		for _, term := range terms {
			if containsWord(text, term) {
				add(term)
			}
		}
	}
	for _, term := range softSkillVocab {
		if containsWord(text, term) {
			add(term)
		}
	}

	for _, m := range skillBulletRe.FindAllStringSubmatch(text, -1) {
		if candidate := strings.TrimSpace(m[1]); plausibleSkill(candidate) {
			add(candidate)
		}
	}

	for _, m := range categoryLineRe.FindAllStringSubmatch(text, -1) {
		label := strings.ToLower(strings.TrimSpace(m[1]))
		if _, ok := skillCategoryLabels[label]; !ok {
			continue
		}
		for _, item := range categorySplitRe.Split(m[2], -1) {
			if candidate := strings.TrimSpace(item); plausibleSkill(candidate) {
				add(candidate)
			}
		}
	}

	return general, soft
}

// plausibleSkill filters out fragments that are clearly not skills: phone
// numbers, street addresses, person names, and strings of implausible length.
func plausibleSkill(s string) bool {
	if len(s) < 3 || len(s) >= 50 {
		return false
	}
	if longDigitRunRe.MatchString(s) || phoneLikeRe.MatchString(s) {
		return false
	}
	if streetLikeRe.MatchString(s) || properNameRe.MatchString(s) {
		return false
	}
	return true
}
