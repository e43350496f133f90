package models

// IdeaSubmission is the payload describing one startup idea. Description is
// the only field the client requires; everything else may be empty.
type IdeaSubmission struct {
	Description  string `json:"description"`
	Location     string `json:"location"`
	Audience     string `json:"audience"`
	PricingModel string `json:"pricingModel"`
	Industry     string `json:"industry"`
}

// EvaluationVerdict is the structured evaluation returned for one submission.
// The JSON keys match the completion service contract exactly.
type EvaluationVerdict struct {
	SuccessScore     int      `json:"successScore"`
	Strengths        []string `json:"strengths"`
	Weaknesses       []string `json:"weaknesses"`
	MarketPotential  string   `json:"marketPotential"`
	Competition      string   `json:"competition"`
	LocationInsights string   `json:"locationInsights"`
	Improvements     []string `json:"improvements"`
	Monetization     []string `json:"monetization"`
	MVPSuggestion    string   `json:"mvpSuggestion"`
}

// ErrorResponse is the uniform failure body returned by the evaluation endpoint.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// ScoreTier maps a success score to the headline shown alongside it.
func ScoreTier(score int) string {
	switch {
	case score >= 80:
		return "Excellent potential"
	case score >= 70:
		return "Good foundation with room for improvement"
	default:
		return "Needs refinement but has potential"
	}
}
