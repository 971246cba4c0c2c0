// Package core wires the built-in target types and toolset writers into the
// registries the generator reads from.
//
// Call MustInitialize once at program start; TargetTypes and Toolsets then
// return the populated registries.
package core
