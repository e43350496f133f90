package services

import (
	"fmt"

	"startupmentor/models"
)

// systemInstruction is the fixed evaluator persona and rubric sent with every
// request. It pins down the nine output keys the validator expects, so the two
// must be kept in sync.
const systemInstruction = `You are an expert startup evaluator with deep knowledge of business models, market analysis, and startup success factors. Provide detailed, actionable feedback in a structured format.
As an expert startup evaluator, analyze the following startup idea and provide a detailed evaluation:

Please provide a structured evaluation with the following components:
1. A success score (0-100)
2. Key strengths (list 4-5 points)
3. Potential weaknesses (list 3-4 points)
4. Market potential analysis
5. Competition analysis
6. Location-specific insights
7. Improvement suggestions (list 4-5 points)
8. Monetization strategies (list 4-5 options)
9. MVP (Minimum Viable Product) suggestion

Format the response as a JSON object with these exact keys:
{
  "successScore": number,
  "strengths": string[],
  "weaknesses": string[],
  "marketPotential": string,
  "competition": string,
  "locationInsights": string,
  "improvements": string[],
  "monetization": string[],
  "mvpSuggestion": string
}

### Scoring Rubric (for successScore):
Base your score on the following 5 factors, each weighted equally at 20 points:
1. **Market Size & Growth Potential** - Evaluate the demand and future potential of the target market.
2. **Value Proposition & Differentiation** - How unique, innovative, or competitive the idea is.
3. **Feasibility & Execution** - Technical and operational viability within a reasonable time.
4. **Monetization Clarity** - Strength and variety of ways the idea can generate revenue.
5. **Target Audience Fit** - How well the idea meets a real, specific need or problem.

Each section is scored from 0 to 20. Add them together to get a successScore between 0-100. Avoid subjective variation between runs: use the same rubric each time. Return only the final score (not the factor totals) in the JSON.

You MUST return only a valid JSON object. Do not include any commentary or explanation outside the JSON.

Make sure to be accurate and provide a detailed evaluation. It is not about being nice, it is about being honest and helpful and giving valuable feedback.`

// userMessageTemplate interpolates the five submission fields verbatim, in
// fixed label order.
const userMessageTemplate = `This is my startup idea what do you think about it?

Description: %s
Location: %s
Target Audience: %s
Pricing Model: %s
Industry: %s
`

// BuildPrompt renders a submission into the system instruction and user
// message pair for the completion service. It is pure: the same submission
// always produces the same two messages.
func BuildPrompt(submission models.IdeaSubmission) (system string, user string) {
	user = fmt.Sprintf(userMessageTemplate,
		submission.Description,
		submission.Location,
		submission.Audience,
		submission.PricingModel,
		submission.Industry,
	)
	return systemInstruction, user
}
