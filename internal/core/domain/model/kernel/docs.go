// Package kernel contains shared value objects used across the domain model.
// Its central type is UUID, the identifier of a conversation session. Every
// order slot is owned by exactly one session, so session identity is the one
// concept every layer of the engine agrees on.
package kernel
