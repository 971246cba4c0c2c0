// Package expr holds the typed values that flow from a resolved project into
// the output writers, and the Formatter contract that turns them into
// backend-specific text.
//
// Values form a closed set: Literal, List, Bool, Reference and Concat. Each
// output backend supplies its own Policy; the markup backends reject any
// Reference because references must be expanded before markup is produced.
package expr
