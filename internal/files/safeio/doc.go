// Package safeio classifies filesystem failures for safe mode.
//
// Safe mode converts "expected environmental" failures (a directory vanished,
// access was denied, a path is too long, a device reported an I/O error) into
// empty listings. Everything else, including caller misuse of a sequence,
// still propagates.
//
// Key types:
//   - Kind: the failure category of an error
//   - Classifier: the default treewalk.ErrorClassifier built on Classify
package safeio
