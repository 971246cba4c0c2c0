// Package node is the output tree used by the markup writers.
//
// A tree is assembled with three attachment forms:
//
//	n.AddNode(node.New("ImportGroup", node.A("Label", "PropertySheets")))
//	n.AddValue("LinkIncremental", node.Bool(true))
//	n.AddElement("Import", node.A("Project", "$(VCTargetsPath)\\Microsoft.Cpp.targets"))
//
// Anything else (empty names, nil children or values) aborts through
// errors.Violation. Rendering lives in package xmlfmt.
package node
