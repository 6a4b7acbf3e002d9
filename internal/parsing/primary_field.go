package parsing

// IdentifyPrimaryField scores the text against each industry's keyword list
// and returns the highest-scoring field. Ties break in the fixed priority
// order of fieldTiePriority; a zero score for every field returns "".
func IdentifyPrimaryField(text string) string {
	best := ""
	bestScore := 0
	for _, field := range fieldTiePriority {
		score := 0
		for _, kw := range industryKeywords[field] {
			score += countWord(text, kw)
		}
		if score > bestScore {
			best = field
			bestScore = score
		}
	}
	return best
}
