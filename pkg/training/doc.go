// Package training produces the randomized candidate lines drawn next to the
// ideal decision boundary, and selects which of them are visible.
//
// Candidate lines are not fitted to anything. Slopes are drawn from the
// half-steps between -2.5 and 2.5 and offsets from the integers between -20
// and 20, both in domain units. A Range, usually produced by a brush gesture,
// keeps the lines whose fractional index i/n lies strictly inside it.
package training
