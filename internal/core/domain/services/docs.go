// Package services provides the domain services that resolve one ordering
// turn of the conversation.
//
// The package includes:
//   - ItemCountEstimator: delimiter heuristic estimating how many items a
//     free-text utterance names
//   - MenuMatcher: case-insensitive partition of requested dishes into
//     available and unavailable against the menu catalog
//   - RequestAugmentor: positional pairing of foods, modifiers, and
//     ingredients for additional-request orders
//   - OrderResolver: the decision engine combining the above into a turn
//     outcome and the lines to append to the session's order
//   - ResponseComposer: mapping of outcomes to the literal user-facing
//     messages, in their fixed emission order
//   - MenuRenderer: markdown table rendering of the menu listing
//
// All services are stateless (the resolver holds only immutable reference
// data) and safe for concurrent use across sessions.
package services
