// Package services defines the [Service] interface for the record service's
// JSON API and implements it with an HTTP client.
//
// # Envelope
//
// Every response is an envelope {success, data?, message?}. A false success
// flag or a non-2xx status is treated uniformly as a failure whose message is
// surfaced to the user verbatim (with a generic fallback when absent), wrapped
// in [shared.ErrService].
//
// # Error Handling
//
// Transport failures — the request never reached the service — are rewritten
// to a single friendly message wrapped in [shared.ErrConnectivity], so the UI
// can distinguish "server said no" from "server not there".
//
// # Single-attempt loads
//
// The client carries no retry policy. Every load is one attempt; the caller
// renders an error state and moves on. Requests are rate limited with
// golang.org/x/time to be polite to the single-user service.
package services
