// Package target defines the contract between the generator and target-type
// plugins.
//
// A target-type declares its properties once and turns a resolved Target
// into BuildNodes, the backend-agnostic list of actions that toolset writers
// consume:
//
//	type Type interface {
//		Name() string
//		Description() string
//		Properties() []Property
//		BuildSubgraph(toolset Toolset, t *Target) []BuildNode
//	}
//
// BuildSubgraph must be a pure function of its arguments. Target-types are
// made available to the rest of the program through an explicit registry
// populated at start-up (see package core).
package target
