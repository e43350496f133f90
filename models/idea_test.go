package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerdictJSONKeys(t *testing.T) {
	verdict := EvaluationVerdict{
		SuccessScore:     76,
		Strengths:        []string{"a"},
		Weaknesses:       []string{"b"},
		MarketPotential:  "c",
		Competition:      "d",
		LocationInsights: "e",
		Improvements:     []string{"f"},
		Monetization:     []string{"g"},
		MVPSuggestion:    "h",
	}

	data, err := json.Marshal(verdict)
	require.NoError(t, err)

	var keys map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &keys))
	for _, key := range []string{
		"successScore", "strengths", "weaknesses", "marketPotential",
		"competition", "locationInsights", "improvements", "monetization",
		"mvpSuggestion",
	} {
		assert.Contains(t, keys, key)
	}
	assert.Len(t, keys, 9)
}

func TestScoreTier(t *testing.T) {
	assert.Equal(t, "Excellent potential", ScoreTier(80))
	assert.Equal(t, "Excellent potential", ScoreTier(100))
	assert.Equal(t, "Good foundation with room for improvement", ScoreTier(70))
	assert.Equal(t, "Good foundation with room for improvement", ScoreTier(79))
	assert.Equal(t, "Needs refinement but has potential", ScoreTier(69))
	assert.Equal(t, "Needs refinement but has potential", ScoreTier(0))
}

func TestNormalizePricingModel(t *testing.T) {
	assert.Equal(t, "commission", NormalizePricingModel("commission"))
	assert.Equal(t, "other", NormalizePricingModel("barter"))
	assert.Equal(t, "", NormalizePricingModel(""))
}

func TestNormalizeIndustry(t *testing.T) {
	assert.Equal(t, "edtech", NormalizeIndustry("edtech"))
	assert.Equal(t, "other", NormalizeIndustry("space mining"))
	assert.Equal(t, "", NormalizeIndustry(""))
}
