package types

// RecommendationList represents ranked catalog recommendations for one
// candidate, ordered descending by score with stable ties.
type RecommendationList struct {
	RunID   string        `json:"run_id,omitempty"`
	Results []MatchResult `json:"results"`
}

// BoothRecommendation represents one booth's scored openings, ordered
// descending by score within the booth.
type BoothRecommendation struct {
	BoothID      string        `json:"booth_id,omitempty"`
	CompanyName  string        `json:"company_name"`
	BoothNumber  string        `json:"booth_number,omitempty"`
	HighestScore float64       `json:"highest_score_in_booth"`
	Openings     []MatchResult `json:"recommended_openings"`
}

// BoothRecommendationList represents ranked booth recommendations for one
// candidate, booths ordered descending by their highest opening score.
type BoothRecommendationList struct {
	RunID  string                `json:"run_id,omitempty"`
	Booths []BoothRecommendation `json:"booths"`
}
