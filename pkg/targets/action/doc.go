// Package action implements the "action" target-type, which runs arbitrary
// commands: packaging files, installing, uploading, running tests and other
// tasks that do not fit the compile-and-link model.
//
// In a project manifest:
//
//	[[targets]]
//	id = "osx-bundle"
//	type = "action"
//	[targets.properties]
//	commands = [
//	  "mkdir -p Test.app/Contents/MacOS",
//	  "cp -f test Test.app/Contents/MacOS/test",
//	]
package action
