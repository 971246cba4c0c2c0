// Package vs writes Visual Studio 2010 solutions and Makefile-type C++
// projects.
//
// Every target becomes a project whose NMake build command line runs the
// target's build nodes. Project files are built as node trees and rendered
// with xmlfmt; the solution file is line-oriented text. All identifiers are
// derived with package guid so that regeneration is diff-free.
package vs
