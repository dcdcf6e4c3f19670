// Package pipeline runs the spell-digest stages in sequence.
//
// A run is a fixed chain of steps over a shared *model.Run:
// fetch the document, tokenize it, build lookup targets, probe every
// target, and digest the misspelled words. Each step fills in its part of
// the Run. The first step that returns an error stops the pipeline; probe
// failures are not step errors and are recorded as Failed outcomes instead.
package pipeline
