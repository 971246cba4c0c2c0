// Package generate drives a full generation run: for every configured
// toolset it asks each target's type for its build nodes and hands them to
// the toolset writer.
//
// Contract violations raised while building or rendering one toolset abort
// that toolset and are returned as errors with code ErrContractViolation.
package generate
