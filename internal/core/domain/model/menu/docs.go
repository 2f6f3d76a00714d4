// Package menu models the static reference data of the restaurant: the menu
// items themselves, the immutable catalog they live in, and the fixed
// whitelist of ingredients that additional requests may name.
//
// Everything in this package is loaded once at process start and never
// mutated afterwards, which makes all types safe for unsynchronized
// concurrent reads across sessions.
package menu
