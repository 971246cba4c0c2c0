// Package registry provides the generic name-keyed registry behind the
// target-type and toolset tables. Registries are filled explicitly at
// start-up (see package core); nothing registers itself through init().
package registry
