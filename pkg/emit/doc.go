// Package emit writes generated documents to disk.
//
// All documents of a run are written as a single synthfs pipeline, so a
// failure part way through rolls back the files already written instead of
// leaving a mix of old and new build files.
package emit
