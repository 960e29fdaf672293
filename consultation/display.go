package consultation

// DisplayRemedy is a remedy annotated for rendering. MostEffective marks the
// relocated top recommendation, which is rendered with a highlighted style.
type DisplayRemedy struct {
	Remedy
	MostEffective bool `json:"mostEffective"`
}

// DisplayOrder returns the display ordering of a remedies list. When more than
// one remedy is present, the first element (the provider's strongest
// recommendation) is moved to the end and marked MostEffective. With one or
// zero remedies the order is unchanged and nothing is marked. This is a pure
// display transform; the input slice is never modified and the result is never
// fed back into request payloads.
func DisplayOrder(remedies []Remedy) []DisplayRemedy {
	out := make([]DisplayRemedy, 0, len(remedies))

	if len(remedies) < 2 {
		for _, r := range remedies {
			out = append(out, DisplayRemedy{Remedy: r})
		}
		return out
	}

	for _, r := range remedies[1:] {
		out = append(out, DisplayRemedy{Remedy: r})
	}
	out = append(out, DisplayRemedy{Remedy: remedies[0], MostEffective: true})
	return out
}
