// Package model defines the data structures shared by the spelldigest
// packages.
//
// This package contains the following main types:
//   - Document: The text retrieved from the document source
//   - Target: A candidate word paired with its spell-check URL
//   - Outcome: The classified result of one spell-check probe
//   - Run: The aggregate state of a single pipeline run
//   - Summary: Counts and failure reasons derived from a Run
//
// Models live in their own package so that the pipeline, spellcheck, report
// and database packages can share them without import cycles. All exported
// types serialize to JSON for reports and the run history.
package model
