// package tasks implements the client-side workflows built on top of
// [services.Service]: the review engine that walks the selection queue, the
// sync monitor that polls background jobs, and the override editor for
// cross-reference and year corrections.
//
// Long-running operations report via channels so CLI and UI layers stay
// non-blocking; cross-cutting invalidation (an album changed, stats went
// stale) flows through [Hub].
package tasks
