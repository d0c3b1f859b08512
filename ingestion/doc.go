// Package ingestion provides pipeline orchestration for importing movie
// catalogs.
//
// The Pipeline type manages the import workflow:
//   - Parsing catalog CSV files into movie records
//   - Validating records and skipping unusable ones
//   - Normalizing storylines into token lists concurrently
//   - Adding records to storage with duplicate detection
//
// Normalization is performed concurrently using a worker pool. Invalid
// rows are counted and logged but do not fail the import.
package ingestion
