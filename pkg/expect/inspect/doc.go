// Package inspect formats values for assertion failure messages.
//
// Value renders a single-line form (quoted strings, "-0" for negative zero,
// go-spew for composites), Display additionally summarizes long composites,
// and Diff produces a unified diff of two values of the same type.
package inspect
