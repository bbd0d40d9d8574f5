// Package engine is the top-level entry point of the tool. It validates raw
// input, builds the tree, aggregates it, and maps every failure to one of the
// two user-facing messages.
package engine
