// Package chain provides a fluent, railway-style wrapper around expect links
// so assertions read as one expression without checking errors at each step.
//
// Key operations:
// - Start/Expect: begin a chain from an assertion or a subject
// - Get: read one or more members ("to", "be", "not", ...)
// - Invoke/Call: invoke the last member read, or read and invoke in one step
// - Then: run a custom check against the current assertion
// - Ensure: run side effects while the chain is healthy
// - Must: fail a test through testify's require when the chain broke
// - Finally: collapse the chain into a final value via handlers
package chain
