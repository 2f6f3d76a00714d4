package turn

import (
	"errors"

	"waiterbot/internal/pkg/errs"
	"waiterbot/internal/pkg/guard"
)

// ErrEntityIsNotConstructed is returned when an Entity instance was not
// created through the NewEntity factory function.
var ErrEntityIsNotConstructed = errors.New("Entity must be created via NewEntity constructor")

// Entity is one typed value the NLU pipeline extracted from an utterance,
// e.g. a dish name or a weekday. It is an immutable value object.
type Entity struct { //nolint:recvcheck //using for validation
	kind  Kind
	value string

	guard guard.ConstructorGuard
}

// NewEntity creates a validated Entity. The kind must be one of the known
// entity kinds and the value must be non-empty.
func NewEntity(kind Kind, value string) (Entity, error) {
	entity := Entity{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		entity.setKind(kind),
		entity.setValue(value),
	); err != nil {
		return Entity{}, err
	}

	return entity, nil
}

// Validate ensures the Entity was created through NewEntity.
func (e Entity) Validate() error {
	return e.guard.Validate(ErrEntityIsNotConstructed)
}

// Kind returns the entity's kind.
func (e Entity) Kind() Kind {
	return e.kind
}

// Value returns the extracted surface text of the entity.
func (e Entity) Value() string {
	return e.value
}

func (e *Entity) setKind(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	e.kind = kind
	return nil
}

func (e *Entity) setValue(value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError("value")
	}
	e.value = value
	return nil
}
