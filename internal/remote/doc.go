// Package remote is the Remote Source Adapter of the character catalog.
//
// # Overview
//
// A Source performs one fetch of the raw character list. HTTPSource issues a
// single GET against a fixed collection endpoint and decodes an ordered JSON
// array of RawCharacter records. There are no retries.
//
// # Error Handling
//
// Failures are classified exactly once, here, from the transport or status
// signal:
//
//   - no response received (dial, TLS, timeout, cancel) -> ErrNetworkUnavailable
//   - HTTP 404                                          -> ErrNotFound
//   - anything else (other status, malformed body)      -> ErrUnknown
//
// Use Classify to turn any returned error into a Kind with a fixed
// user-facing message.
package remote
