// Package repositories implements SQLite persistence for the landing site's domain entities.
//
// Each repository handles CRUD operations with atomic sequence generation for human-readable ordering.
// All repositories support soft deletes via deleted_at timestamps and exclude deleted records from queries by default.
//
// Key Implementations:
//   - [FeedbackRepository] : Visitor feedback from the landing form, with source filtering
//
// Sequence numbers provide stable, human-readable ordering (e.g., feedback #42) independent of UUIDs and creation timestamps.
// The [NextSequence] function atomically increments per-table sequence counters in dedicated sequence tables.
package repositories
