// Package order contains the session-scoped order aggregate and its
// supporting value objects.
//
// The aggregate is the single piece of per-conversation mutable state in the
// system: an append-only sequence of order lines owned by exactly one session.
// It is created empty at conversation start, extended by successful
// resolutions, and cleared on confirm or reset. The host dialogue runtime
// serializes turns within a session, so the aggregate performs no locking of
// its own.
//
// The package also defines Outcome, the value-based classification of a
// turn's resolution. Outcomes are not errors: a partially failed order is a
// normal business result reported to the user as a message.
package order
