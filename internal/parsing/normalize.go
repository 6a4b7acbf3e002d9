package parsing

import (
	"regexp"
	"strings"
	"sync"
)

// skillAliases folds common variants onto one canonical lowercase form so
// that requirement matching is not defeated by spelling differences.
var skillAliases = map[string]string{
	"golang":          "go",
	"go lang":         "go",
	"js":              "javascript",
	"ts":              "typescript",
	"reactjs":         "react",
	"react.js":        "react",
	"vue":             "vue.js",
	"vuejs":           "vue.js",
	"node":            "node.js",
	"nodejs":          "node.js",
	"angularjs":       "angular",
	"k8s":             "kubernetes",
	"postgres":        "postgresql",
	"ms excel":        "excel",
	"microsoft excel": "excel",
	"ml":              "machine learning",
	"ai":              "artificial intelligence",
	"problem-solving": "problem solving",
	"time-management": "time management",
}

// NormalizeSkill lowercases a skill term and folds known aliases.
func NormalizeSkill(skill string) string {
	s := strings.ToLower(strings.TrimSpace(skill))
	if canonical, ok := skillAliases[s]; ok {
		return canonical
	}
	return s
}

var (
	boundaryMu    sync.Mutex
	boundaryCache = map[string]*regexp.Regexp{}
)

// wordPattern returns a case-insensitive pattern matching term as a whole
// word. Plain \b boundaries break on terms like "C++" and "C#", so the
// boundary is any character outside the skill alphabet.
func wordPattern(term string) *regexp.Regexp {
	boundaryMu.Lock()
	defer boundaryMu.Unlock()
	if re, ok := boundaryCache[term]; ok {
		return re
	}
	re := regexp.MustCompile(`(?i)(?:\A|[^a-zA-Z0-9+#])` + regexp.QuoteMeta(term) + `(?:[^a-zA-Z0-9+#]|\z)`)
	boundaryCache[term] = re
	return re
}

// containsWord reports whether term occurs in text as a whole word.
func containsWord(text, term string) bool {
	return wordPattern(term).MatchString(text)
}

// countWord counts whole-word occurrences of term in text.
func countWord(text, term string) int {
	return len(wordPattern(term).FindAllString(text, -1))
}
