package services

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"startupmentor/models"
)

// requiredVerdictFields is the fixed check order; the first missing field is
// the one reported.
var requiredVerdictFields = []string{
	"successScore",
	"strengths",
	"weaknesses",
	"marketPotential",
	"competition",
	"locationInsights",
	"improvements",
	"monetization",
	"mvpSuggestion",
}

// ParseVerdict parses raw completion text into a normalized EvaluationVerdict.
// It fails with *MalformedResponseError when the text is not a JSON object of
// the expected shape, and with *IncompleteResponseError when a required field
// is absent or empty. successScore accepts string numerals and is clamped into
// [0, 100]; a score that does not coerce to a finite number is treated as
// missing.
func ParseVerdict(raw string) (models.EvaluationVerdict, error) {
	var decoded map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return models.EvaluationVerdict{}, &MalformedResponseError{Err: err}
	}

	for _, field := range requiredVerdictFields {
		if !truthy(decoded[field]) {
			return models.EvaluationVerdict{}, &IncompleteResponseError{Field: field}
		}
	}

	score, ok := coerceScore(decoded["successScore"])
	if !ok {
		return models.EvaluationVerdict{}, &IncompleteResponseError{Field: "successScore"}
	}
	score = math.Min(100, math.Max(0, score))

	var verdict models.EvaluationVerdict
	if err := json.Unmarshal([]byte(raw), &struct {
		Strengths        *[]string `json:"strengths"`
		Weaknesses       *[]string `json:"weaknesses"`
		MarketPotential  *string   `json:"marketPotential"`
		Competition      *string   `json:"competition"`
		LocationInsights *string   `json:"locationInsights"`
		Improvements     *[]string `json:"improvements"`
		Monetization     *[]string `json:"monetization"`
		MVPSuggestion    *string   `json:"mvpSuggestion"`
	}{
		Strengths:        &verdict.Strengths,
		Weaknesses:       &verdict.Weaknesses,
		MarketPotential:  &verdict.MarketPotential,
		Competition:      &verdict.Competition,
		LocationInsights: &verdict.LocationInsights,
		Improvements:     &verdict.Improvements,
		Monetization:     &verdict.Monetization,
		MVPSuggestion:    &verdict.MVPSuggestion,
	}); err != nil {
		return models.EvaluationVerdict{}, &MalformedResponseError{Err: err}
	}
	verdict.SuccessScore = int(math.Round(score))

	return verdict, nil
}

// truthy mirrors the presence check of the evaluation contract: nil, false,
// zero numbers and empty strings count as missing. Arrays and objects count
// as present even when empty.
func truthy(v interface{}) bool {
	switch value := v.(type) {
	case nil:
		return false
	case bool:
		return value
	case float64:
		return value != 0
	case string:
		return value != ""
	default:
		return true
	}
}

// coerceScore turns the decoded successScore into a finite float64, accepting
// string numerals like "88".
func coerceScore(v interface{}) (float64, bool) {
	switch value := v.(type) {
	case float64:
		return value, !math.IsNaN(value) && !math.IsInf(value, 0)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
