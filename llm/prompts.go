package llm

import (
	"fmt"

	"github.com/remedia/remedia-api/consultation"
)

// BuildAnalysisPrompt renders the symptom analysis prompt. The provider is
// required to reply with JSON only, ranked by descending likelihood.
func BuildAnalysisPrompt(symptoms string) string {
	return fmt.Sprintf(`You are a medical triage assistant. A user describes their symptoms in free text.

Symptoms: %s

List the possible conditions these symptoms could indicate, ordered from most to least likely, with a likelihood score between 0 and 1 for each.

Respond with JSON only, in exactly this structure:
{
  "conditions": [
    {"condition": "condition name", "likelihood": 0.0}
  ]
}

Do not include any text outside the JSON. Do not include disclaimers.`, symptoms)
}

// BuildRemedyPrompt renders the remedy recommendation prompt from the second
// stage request.
func BuildRemedyPrompt(req consultation.RemedyRequest) string {
	return fmt.Sprintf(`You are a home remedy advisor. A user has the following symptoms and possible conditions, and wants home remedies they can prepare where they live.

Symptoms: %s
Location: %s
Possible conditions: %s

Suggest home remedies ordered from most to least effective, each with a short explanation. Optionally suggest secondary ingredients that improve the remedies, with the reasoning and, where relevant, a note on local availability.

Respond with JSON only, in exactly this structure:
{
  "remedies": [
    {"name": "remedy name", "explanation": "why it helps"}
  ],
  "optionalIngredients": [
    {"name": "ingredient name", "reasoning": "why it helps", "availabilityNote": "where to find it"}
  ]
}

Do not include any text outside the JSON. Do not include disclaimers.`, req.Symptoms, req.Location, req.PossibleConditions)
}
