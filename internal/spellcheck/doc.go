// Package spellcheck validates candidate words against the remote
// spell-check service.
//
// The flow is:
//
//	words --BuildTargets--> []model.Target --Executor.Run--> Result
//
// BuildTargets pairs each word with its lookup URL. The Executor probes every
// target through a fixed-width worker pool and classifies each response with
// Classify:
//
//	404          -> Unknown (the word is misspelled)
//	204          -> Known
//	anything else -> Failed (absorbed, never reaches the digest)
//
// Outcomes are collected as probes complete, so Result.Outcomes and
// Result.Misspelled follow completion order, not submission order.
package spellcheck
