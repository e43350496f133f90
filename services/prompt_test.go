package services

import (
	"fmt"
	"strings"
	"testing"

	"startupmentor/models"
)

func TestBuildPromptInterpolatesFieldsInOrder(t *testing.T) {
	submission := models.IdeaSubmission{
		Description:  "A marketplace for local tutors",
		Location:     "US",
		Audience:     "parents",
		PricingModel: "commission",
		Industry:     "edtech",
	}

	_, user := BuildPrompt(submission)

	labels := []struct {
		label string
		value string
	}{
		{"Description:", submission.Description},
		{"Location:", submission.Location},
		{"Target Audience:", submission.Audience},
		{"Pricing Model:", submission.PricingModel},
		{"Industry:", submission.Industry},
	}

	last := -1
	for _, l := range labels {
		line := fmt.Sprintf("%s %s", l.label, l.value)
		idx := strings.Index(user, line)
		if idx == -1 {
			t.Errorf("user message missing %q", line)
			continue
		}
		if idx <= last {
			t.Errorf("label %q out of order", l.label)
		}
		last = idx
	}
}

func TestBuildPromptSystemInstructionListsRequiredFields(t *testing.T) {
	system, _ := BuildPrompt(models.IdeaSubmission{Description: "anything"})

	for _, field := range requiredVerdictFields {
		if !strings.Contains(system, `"`+field+`"`) {
			t.Errorf("system instruction missing field name %q", field)
		}
	}

	// The rubric breakdown must never be requested as an output key.
	if strings.Contains(system, `"scoreBreakdown"`) || strings.Contains(system, `"breakdown"`) {
		t.Error("system instruction asks for a score breakdown in the output")
	}
	if !strings.Contains(system, "20 points") {
		t.Error("system instruction missing the 20-point factor weighting")
	}
	if !strings.Contains(system, "only a valid JSON object") {
		t.Error("system instruction missing the JSON-only directive")
	}
}

func TestBuildPromptIsDeterministic(t *testing.T) {
	submission := models.IdeaSubmission{
		Description: "Dog walking app",
		Location:    "Berlin",
	}

	system1, user1 := BuildPrompt(submission)
	system2, user2 := BuildPrompt(submission)

	if system1 != system2 || user1 != user2 {
		t.Error("BuildPrompt is not deterministic for identical submissions")
	}
}
