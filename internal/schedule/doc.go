// Package schedule owns the canonical side of the pipeline: persistence of
// date-keyed schedule documents, the injected venue-to-timezone table, and
// the materialization of stored wall-clock times into a sorted, future-only
// session list.
package schedule
