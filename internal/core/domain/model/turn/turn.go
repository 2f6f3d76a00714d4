// Package turn models one user turn of the conversation: the raw utterance
// text and the ordered list of entities the NLU pipeline extracted from it.
// Entity order is significant; the resolver pairs entities positionally, so
// the order of appearance in the utterance must be preserved per kind.
package turn

import (
	"errors"

	"waiterbot/internal/pkg/errs"
	"waiterbot/internal/pkg/guard"
)

// ErrTurnIsNotConstructed is returned when a Turn instance was not created
// through the NewTurn factory function.
var ErrTurnIsNotConstructed = errors.New("Turn must be created via NewTurn constructor")

// Turn is the engine's per-turn input: what the user said and which entities
// were recognized in it. A turn is immutable once constructed.
type Turn struct { //nolint:recvcheck //using for validation
	text     string
	entities []Entity

	guard guard.ConstructorGuard
}

// NewTurn creates a validated Turn. The utterance text is required; the
// entity list may be empty (the engine then rejects operations that need
// entities with a MissingEntity outcome rather than an error here).
func NewTurn(text string, entities []Entity) (Turn, error) {
	t := Turn{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setText(text),
		t.setEntities(entities),
	); err != nil {
		return Turn{}, err
	}

	return t, nil
}

// Validate ensures the Turn was created through NewTurn.
func (t Turn) Validate() error {
	return t.guard.Validate(ErrTurnIsNotConstructed)
}

// Text returns the raw utterance text.
func (t Turn) Text() string {
	return t.text
}

// Entities returns all extracted entities in order of appearance.
// The returned slice is a copy.
func (t Turn) Entities() []Entity {
	return append([]Entity(nil), t.entities...)
}

// Values returns the values of all entities of the given kind, preserving
// their order of appearance in the utterance.
func (t Turn) Values(kind Kind) []string {
	var values []string
	for _, e := range t.entities {
		if e.Kind() == kind {
			values = append(values, e.Value())
		}
	}
	return values
}

// First returns the value of the first entity of the given kind and whether
// one was present at all.
func (t Turn) First(kind Kind) (string, bool) {
	for _, e := range t.entities {
		if e.Kind() == kind {
			return e.Value(), true
		}
	}
	return "", false
}

func (t *Turn) setText(text string) error {
	if text == "" {
		return errs.NewValueIsRequiredError("text")
	}
	t.text = text
	return nil
}

func (t *Turn) setEntities(entities []Entity) error {
	for _, e := range entities {
		if err := e.Validate(); err != nil {
			return err
		}
	}
	t.entities = append([]Entity(nil), entities...)
	return nil
}
