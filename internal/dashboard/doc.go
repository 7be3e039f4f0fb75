// Package dashboard derives the displayable bin view from a fixed collection:
// a case-insensitive location filter, a stable sort, the sort-toggle state
// transition and the fill-level color classification.
//
// Every function here is pure. Inputs are never mutated.
package dashboard
