// Package expect is a fluent assertion library built around a registry of
// named members.
//
// A member is read from an assertion with Get and produces a *Link: a fresh
// assertion carrying every flag of the one it was read from. Members come in
// three kinds:
//   - properties (AddProperty): language chains like "to" and "be", or flag
//     setters like "not"; their links are navigable only
//   - methods (AddMethod): assertions such as "equal"; their links are invoked
//   - chainable methods (AddChainableMethod): both at once. Reading one runs
//     its chaining behavior; invoking the link runs the assertion. "include"
//     and "length" are examples: Get("length").Invoke(3) asserts, while
//     Get("length").Get("above").Invoke(2) uses length as a modifier.
//
// Invoking a link returns the method's result, or the link's own assertion
// when the method returned nil, so chains continue.
//
// Re-registering a name updates the existing record in place, so links that
// were read before the change run the new method when invoked.
//
// Registries are safe for concurrent use. Assertions and links are not and
// belong to the goroutine that created them.
package expect
