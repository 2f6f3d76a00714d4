package services

import "strings"

// ItemCountEstimator derives, from raw utterance text, an estimate of how
// many items the speaker intended to list. The estimate is independent of how
// many entities the NLU pipeline actually extracted; comparing the two is how
// the resolver detects under- or over-extraction.
//
// The heuristic counts list delimiters: the comma count, plus 2 when the text
// contains the word "and" (which joins two items), plus 1 otherwise.
// "Pizza, Taco and Burger" therefore estimates 1 + 2 = 3 items. The estimator
// returns at least 1 for any non-empty text.
type ItemCountEstimator struct{}

// NewItemCountEstimator creates a new ItemCountEstimator instance.
func NewItemCountEstimator() ItemCountEstimator {
	return ItemCountEstimator{}
}

// Estimate returns the delimiter-based item count for the utterance.
// Leading and trailing whitespace does not influence the result.
func (ItemCountEstimator) Estimate(text string) int {
	text = strings.TrimSpace(text)

	count := strings.Count(text, ",")
	if strings.Contains(text, " and ") {
		return count + 2
	}
	return count + 1
}
