// Package consultation holds the domain types and the two-stage request
// sequencing logic for a symptom consultation: one generative call mapping
// free-text symptoms to ranked conditions, and a dependent second call mapping
// symptoms, location and conditions to home remedy suggestions.
package consultation

import "strings"

// Condition is a single candidate condition ranked by the provider.
// Likelihood is a provider-supplied confidence in [0,1]; it is validated for
// range at parse time but never recalibrated. Names are not deduplicated.
type Condition struct {
	Name       string  `json:"condition"`
	Likelihood float64 `json:"likelihood"`
}

// Analysis is the result of the symptom analysis call, ordered by descending
// likelihood as ranked by the provider.
type Analysis struct {
	Conditions []Condition `json:"conditions"`
}

// PossibleConditions joins the condition names with ", " in their original,
// unreordered order. This exact string is carried into the remedy request.
func (a *Analysis) PossibleConditions() string {
	names := make([]string, 0, len(a.Conditions))
	for _, c := range a.Conditions {
		names = append(names, c.Name)
	}
	return strings.Join(names, ", ")
}

// Remedy is a single home remedy suggestion.
type Remedy struct {
	Name        string `json:"name"`
	Explanation string `json:"explanation"`
}

// OptionalIngredient is a secondary ingredient the provider may suggest
// alongside the remedies.
type OptionalIngredient struct {
	Name             string `json:"name"`
	Reasoning        string `json:"reasoning"`
	AvailabilityNote string `json:"availabilityNote,omitempty"`
}

// RemedyAdvice is the result of the remedy recommendation call. The remedy
// order is the provider's own ranking; display reordering happens separately
// and is never written back here.
type RemedyAdvice struct {
	Remedies            []Remedy             `json:"remedies"`
	OptionalIngredients []OptionalIngredient `json:"optionalIngredients,omitempty"`
}

// RemedyRequest carries the inputs of the second stage. PossibleConditions is
// the comma-joined condition names from the analysis result.
type RemedyRequest struct {
	Symptoms           string `json:"symptoms"`
	Location           string `json:"location"`
	PossibleConditions string `json:"possibleConditions"`
}
