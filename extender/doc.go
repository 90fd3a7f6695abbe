// Package extender implements the greedy match extender: from a
// Start/Match/Mismatch state it walks every graph successor whose symbol
// equals the next query character, without spending any score, recursing
// until no successor matches or the resulting state would duplicate one
// already in the tree.
package extender
