// Package extraction turns raw per-page text and tables from an official
// race-weekend timetable into structured day and event records.
//
// The package is organized around a small set of collaborating pieces:
//
//  1. Normalize: rule-based compound-word repair for text that lost its
//     inter-word spaces during table extraction
//  2. ExtractMetadata / ExtractDayInfo: pattern matching over page text
//  3. ParseRow: heuristic classification of one table row
//  4. Pipeline: per-page orchestration with best-effort error handling
//  5. Convert: reshaping the raw extraction into the canonical date-keyed
//     schedule document
//
// Extraction is deliberately permissive: a malformed page, table or row is
// logged and dropped, never allowed to abort the run. Only a failing
// document reader surfaces as an error to the caller.
package extraction
