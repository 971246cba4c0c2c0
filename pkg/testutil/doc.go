// Package testutil provides helpers shared by bkgen tests: scratch files,
// an isolated state directory for the logger, and assertions for contract
// violations.
package testutil
