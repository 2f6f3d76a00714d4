package order

import (
	"fmt"

	"waiterbot/internal/pkg/errs"
)

// Outcome classifies the result of resolving one ordering turn. Every
// classification is a value, not a raised fault; the conversation continues
// after any of them.
//
// Only FullSuccess and PartialSuccess mutate the order slot:
//
//	Empty ────append────> NonEmpty ────append────> NonEmpty
//	   └──────── TotalFailure / OverComplex / ────────┘
//	             RequestUnfulfillable / MissingEntity
//	             leave the slot untouched
type Outcome int

const (
	// UnknownOutcome represents an invalid or undefined outcome.
	// This value (0) helps catch uninitialized Outcome values.
	UnknownOutcome Outcome = iota

	// FullSuccess means every requested item was accepted and appended.
	FullSuccess

	// PartialSuccess means some requested items were accepted and appended
	// while the remainder could not be ordered.
	PartialSuccess

	// TotalFailure means none of the requested items is on the menu;
	// nothing was appended.
	TotalFailure

	// OverComplex means the additional-request order disagreed with the
	// delimiter heuristic or named unavailable items; the engine asks the
	// user to simplify. Nothing was appended.
	OverComplex

	// RequestUnfulfillable means the additional request itself (its
	// modifier/ingredient pairing) could not be honored; the order was not
	// placed and nothing was appended.
	RequestUnfulfillable

	// MissingEntity means a required entity for the requested operation was
	// absent or malformed in the NLU output.
	MissingEntity
)

// getOutcomeStrings returns a map of Outcome values to their string representations.
func getOutcomeStrings() map[Outcome]string {
	return map[Outcome]string{
		UnknownOutcome:       "Unknown",
		FullSuccess:          "FullSuccess",
		PartialSuccess:       "PartialSuccess",
		TotalFailure:         "TotalFailure",
		OverComplex:          "OverComplex",
		RequestUnfulfillable: "RequestUnfulfillable",
		MissingEntity:        "MissingEntity",
	}
}

// getValidOutcomeStrings returns a map of only valid Outcome values.
func getValidOutcomeStrings() map[Outcome]string {
	//nolint:exhaustive // UnknownOutcome is intentionally excluded as it's invalid
	return map[Outcome]string{
		FullSuccess:          "FullSuccess",
		PartialSuccess:       "PartialSuccess",
		TotalFailure:         "TotalFailure",
		OverComplex:          "OverComplex",
		RequestUnfulfillable: "RequestUnfulfillable",
		MissingEntity:        "MissingEntity",
	}
}

// Validate checks if the Outcome value is valid.
// UnknownOutcome (0) and any other values are invalid.
func (o Outcome) Validate() error {
	if _, ok := getValidOutcomeStrings()[o]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("outcome is invalid",
			fmt.Errorf("%d is not a valid outcome", o))
	}
	return nil
}

// String returns the human-readable name of the outcome.
// Implements fmt.Stringer and is safe on any Outcome value.
func (o Outcome) String() string {
	if str, ok := getOutcomeStrings()[o]; ok {
		return str
	}
	return "Unknown"
}

// MutatesOrder reports whether a resolution with this outcome appends items
// to the order slot. Failure outcomes never transition the slot.
func (o Outcome) MutatesOrder() bool {
	return o == FullSuccess || o == PartialSuccess
}
