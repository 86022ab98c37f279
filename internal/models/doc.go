// Package models defines the wire types exchanged with the record service.
//
// Every type mirrors one JSON payload of the service's API:
//   - [Album] : an owned, cataloged record, or the current album under review
//     (a review album additionally carries its listen id and status flags)
//   - [BigBoardEntry] : one row of the community ranking, owned or not
//   - [HistoryItem] : one past selection event with denormalized display fields
//   - [Stats] : aggregate collection counters shown on the home screen
//   - [SyncStatus] : progress of the currently running background job
//
// Timestamps are transmitted without an explicit zone and are interpreted as
// UTC. Missing years and ranks are transmitted as null and decode to zero;
// zero therefore means "unknown" throughout.
package models
