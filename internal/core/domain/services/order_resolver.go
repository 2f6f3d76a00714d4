package services

import (
	"waiterbot/internal/core/domain/model/menu"
	"waiterbot/internal/core/domain/model/order"
	"waiterbot/internal/core/domain/model/turn"
)

// Resolution is the result of resolving one ordering turn: the outcome
// classification, the lines to append to the session's order (empty unless
// the outcome mutates the slot), and the counts the composer needs for
// singular/plural message forms.
type Resolution struct {
	// Outcome classifies the turn.
	Outcome order.Outcome

	// Lines are the order lines to append, in extraction order.
	Lines []order.Line

	// Available and Unavailable partition the requested dish names.
	Available   []string
	Unavailable []string

	// Requested is the delimiter-based estimate of how many items the
	// utterance names.
	Requested int

	// Extracted is the number of food entities the NLU pipeline produced.
	Extracted int
}

// Remaining returns how many requested items could not be ordered, based on
// the delimiter estimate. Never negative.
func (r Resolution) Remaining() int {
	remaining := r.Requested - len(r.Available)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// OrderResolver is the decision engine of the ordering flow. It combines the
// delimiter heuristic, the menu partition, and (for additional requests) the
// positional pairing into a single turn outcome.
//
// The resolver is a pure function of its inputs: it never touches the
// session's order slot itself. Callers append Resolution.Lines when the
// outcome mutates the order, so the engine stays testable without any
// session-store dependency.
//
// Extraction completeness (the extracted food count agreeing with the
// delimiter estimate) is the primary discriminator of the decision tree; the
// count-based remainder heuristic applies only when the two disagree.
type OrderResolver struct {
	catalog   menu.Catalog
	estimator ItemCountEstimator
	matcher   MenuMatcher
	augmentor RequestAugmentor
}

// NewOrderResolver creates an OrderResolver bound to the given immutable
// menu catalog.
func NewOrderResolver(catalog menu.Catalog) (OrderResolver, error) {
	if err := catalog.Validate(); err != nil {
		return OrderResolver{}, err
	}

	return OrderResolver{
		catalog:   catalog,
		estimator: NewItemCountEstimator(),
		matcher:   NewMenuMatcher(),
		augmentor: NewRequestAugmentor(),
	}, nil
}

// ResolveOrder resolves a plain order turn (no modifiers or ingredients).
//
// With C the delimiter estimate, E the extracted food count, and A the
// available count:
//   - A == 0: TotalFailure, nothing appended
//   - E == C and A == E: FullSuccess, all items appended
//   - E == C and 0 < A < E: PartialSuccess, the available items appended
//   - E != C and C > A: PartialSuccess, the available items appended
//   - E != C and C <= A: FullSuccess, the available items appended
func (r OrderResolver) ResolveOrder(t turn.Turn) (Resolution, error) {
	if err := t.Validate(); err != nil {
		return Resolution{}, err
	}

	foods := t.Values(turn.Food)
	available, unavailable, err := r.matcher.Partition(foods, r.catalog)
	if err != nil {
		return Resolution{}, err
	}

	res := Resolution{
		Available:   available,
		Unavailable: unavailable,
		Requested:   r.estimator.Estimate(t.Text()),
		Extracted:   len(foods),
	}

	if len(available) == 0 {
		res.Outcome = order.TotalFailure
		return res, nil
	}

	res.Lines, err = linesFromNames(available)
	if err != nil {
		return Resolution{}, err
	}

	if res.Extracted == res.Requested {
		if len(available) == res.Extracted {
			res.Outcome = order.FullSuccess
		} else {
			res.Outcome = order.PartialSuccess
		}
		return res, nil
	}

	if res.Requested > len(available) {
		res.Outcome = order.PartialSuccess
	} else {
		res.Outcome = order.FullSuccess
	}
	return res, nil
}

// ResolveAdditionalRequest resolves an order carrying modifier and ingredient
// entities ("Burger no pickles").
//
// The additional-request path is stricter than the plain path: the extracted
// food count must agree exactly with the delimiter estimate and every item
// must be available, otherwise the order is OverComplex and nothing is
// appended. Given agreement, the positional pairing is attempted; rejection
// (unbalanced sequences or off-whitelist ingredients) yields
// RequestUnfulfillable, again with no mutation.
func (r OrderResolver) ResolveAdditionalRequest(t turn.Turn) (Resolution, error) {
	if err := t.Validate(); err != nil {
		return Resolution{}, err
	}

	foods := t.Values(turn.Food)
	available, unavailable, err := r.matcher.Partition(foods, r.catalog)
	if err != nil {
		return Resolution{}, err
	}

	res := Resolution{
		Available:   available,
		Unavailable: unavailable,
		Requested:   r.estimator.Estimate(t.Text()),
		Extracted:   len(foods),
	}

	if res.Extracted != res.Requested || len(available) < res.Extracted {
		res.Outcome = order.OverComplex
		return res, nil
	}

	lines, pairErr := r.augmentor.Pair(foods, t.Values(turn.Modifier), t.Values(turn.Ingredient))
	if pairErr != nil {
		res.Outcome = order.RequestUnfulfillable
		return res, nil
	}

	res.Outcome = order.FullSuccess
	res.Lines = lines
	return res, nil
}

func linesFromNames(names []string) ([]order.Line, error) {
	lines := make([]order.Line, 0, len(names))
	for _, name := range names {
		line, err := order.NewLine(name)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}
